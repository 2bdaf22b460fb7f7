package response

import (
	"renthub/internal/usecase/queries"
)

type DisputeListResponse struct {
	Disputes []*queries.DisputeView `json:"disputes"`
	Reasons  []string               `json:"reasons,omitempty"`
}

func FromDisputes(disputes []*queries.DisputeView, reasons []string) DisputeListResponse {
	if disputes == nil {
		disputes = []*queries.DisputeView{}
	}
	return DisputeListResponse{Disputes: disputes, Reasons: reasons}
}

package response

import (
	"renthub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Item views already carry JSON tags shaped for the API; copy them through.

type ItemListResponse struct {
	Items []*queries.ItemListItem `json:"items"`
}

func FromItemList(items []*queries.ItemListItem) ItemListResponse {
	if items == nil {
		items = []*queries.ItemListItem{}
	}
	return ItemListResponse{Items: items}
}

type ItemDetailResponse struct {
	queries.ItemDetail
}

func FromItemDetail(detail *queries.ItemDetail) *ItemDetailResponse {
	resp := &ItemDetailResponse{}
	_ = copier.Copy(&resp.ItemDetail, detail)
	return resp
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

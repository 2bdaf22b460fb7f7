package queries

import (
	"renthub/internal/pkg/errs"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrAccessDenied = errs.New("access denied")
)

// DateRangeView is a blocked calendar range rendered for clients.
type DateRangeView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

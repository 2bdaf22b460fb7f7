package review

type RevieweeType string

const (
	RevieweeItem  RevieweeType = "item"
	RevieweeOwner RevieweeType = "owner"
)

func (t RevieweeType) String() string {
	return string(t)
}

func (t RevieweeType) IsValid() bool {
	switch t {
	case RevieweeItem, RevieweeOwner:
		return true
	default:
		return false
	}
}

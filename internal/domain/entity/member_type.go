package entity

// MemberTypeID identifies a membership tier.
type MemberTypeID string

const (
	MemberTypeBasic    MemberTypeID = "BASIC"
	MemberTypeBusiness MemberTypeID = "BUSINESS"
)

// IsValid reports whether id names a known tier.
func (id MemberTypeID) IsValid() bool {
	switch id {
	case MemberTypeBasic, MemberTypeBusiness:
		return true
	default:
		return false
	}
}

// MemberType is a membership tier referenced by profiles.
type MemberType struct {
	ID                 MemberTypeID `json:"id"`
	Discount           float64      `json:"discount"`
	PostsLimitPerMonth int          `json:"postsLimitPerMonth"`
}

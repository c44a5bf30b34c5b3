package models

// Role defines the user role type
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePublisher Role = "publisher"
	RoleUser      Role = "user"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePublisher, RoleUser:
		return true
	}
	return false
}

// MessageKind distinguishes contact-form submissions from content requests.
type MessageKind string

const (
	MessageKindContact MessageKind = "contact"
	MessageKindRequest MessageKind = "request"
)

// IsValid reports whether the kind is known.
func (k MessageKind) IsValid() bool {
	return k == MessageKindContact || k == MessageKindRequest
}

// RankEntity names an entity type participating in the rank ordering scheme.
type RankEntity string

const (
	RankEntityCategory    RankEntity = "category"
	RankEntitySubCategory RankEntity = "subcategory"
	RankEntityNote        RankEntity = "note"
)

package models

// ContactKind discriminates the two variants of a Contact.
type ContactKind int

const (
	// ContactStub is the fallback variant built from the raw search token.
	ContactStub ContactKind = iota
	// ContactResolved is the variant built from a unique directory match.
	ContactResolved
)

// Contact is a normalized identity attached to a catalog item.
// It is a tagged variant: either resolved from the directory service or a
// minimal stub carrying the raw token as both name and email. Every contact
// has a non-empty Name, Type, and Email regardless of variant.
type Contact struct {
	Kind ContactKind `json:"-"`

	Name  string `json:"name"`
	Type  string `json:"type"`
	Email string `json:"email"`

	// Fields below are populated only for the resolved variant. Active is
	// a pointer so an inactive person still serializes "active": false
	// while the stub variant omits the key entirely.
	OldPartyID     int64  `json:"oldPartyId,omitempty"`
	ContactType    string `json:"contactType,omitempty"`
	OnlineResource string `json:"onlineResource,omitempty"`
	Active         *bool  `json:"active,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	OrcID          string `json:"orcId,omitempty"`
}

// NewStubContact builds the stub variant for a token that could not be
// resolved to exactly one directory match.
func NewStubContact(token string) Contact {
	return Contact{
		Kind:  ContactStub,
		Name:  token,
		Type:  "Contact",
		Email: token,
	}
}

// IsStub reports whether the contact is the unresolved fallback variant.
func (c Contact) IsStub() bool {
	return c.Kind == ContactStub
}

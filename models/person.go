package models

import "time"

// Wire keys for Person fields. The same keys are used for draft mutation,
// document storage, and partial updates, so a value written by the wizard
// round-trips to the store unchanged.
const (
	PersonFieldName     = "name"
	PersonFieldAge      = "age"
	PersonFieldIndustry = "industry"
	PersonFieldHowMet   = "how_we_met"
)

// Person is a single tracked person. ID, CreatedAt and the owner fields are
// assigned by the document store on first persistence; a draft carries only
// the four user-entered fields.
type Person struct {
	// ID is the store-assigned document identifier.
	// Empty while the person exists only as a draft.
	ID string `json:"id,omitempty"`

	// Name is the person's display name.
	Name string `json:"name"`

	// Age is kept as entered, a text-encoded integer.
	Age string `json:"age"`

	// Industry is what the person does for a living.
	Industry string `json:"industry"`

	// HowMet is either one of [MeetingOptions] or free text.
	HowMet string `json:"how_we_met"`

	// CreatedAt is the store-assigned creation time.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// OwnerID and OwnerEmail identify the principal that created the record.
	OwnerID    int64  `json:"owner_id,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

// Persisted reports whether the person has been saved to the document store.
func (p Person) Persisted() bool {
	return p.ID != ""
}

// Fields returns the user-entered fields keyed by their wire names,
// ready for a document-store insert.
func (p Person) Fields() map[string]string {
	return map[string]string{
		PersonFieldName:     p.Name,
		PersonFieldAge:      p.Age,
		PersonFieldIndustry: p.Industry,
		PersonFieldHowMet:   p.HowMet,
	}
}

// ApplyField sets the field identified by key to value.
// Returns false if key is not a Person field.
func (p *Person) ApplyField(key, value string) bool {
	switch key {
	case PersonFieldName:
		p.Name = value
	case PersonFieldAge:
		p.Age = value
	case PersonFieldIndustry:
		p.Industry = value
	case PersonFieldHowMet:
		p.HowMet = value
	default:
		return false
	}
	return true
}

// PersonFromDocument rebuilds a Person from a stored document.
// Missing fields come back as empty strings.
func PersonFromDocument(doc Document) Person {
	return Person{
		ID:         doc.ID,
		Name:       doc.Fields[PersonFieldName],
		Age:        doc.Fields[PersonFieldAge],
		Industry:   doc.Fields[PersonFieldIndustry],
		HowMet:     doc.Fields[PersonFieldHowMet],
		CreatedAt:  doc.CreatedAt,
		OwnerID:    doc.OwnerID,
		OwnerEmail: doc.OwnerEmail,
	}
}

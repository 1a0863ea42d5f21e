package models

import "time"

// Wire keys for DateRecord fields.
const (
	DateFieldPersonID   = "person_id"
	DateFieldPersonName = "person_name"
	DateFieldDay        = "date"
	DateFieldDayEpochMS = "date_num"
	DateFieldActivity   = "activity"
	DateFieldLocation   = "location"
	DateFieldTimeOfDay  = "time_of_day"
	DateFieldRating     = "rating"
	DateFieldEmoji      = "emoji"
	DateFieldIcks       = "icks"
	DateFieldLiked      = "liked"
	DateFieldMutuals    = "mutuals"
)

// DateRecord is one attended date. PersonName is a snapshot of the referenced
// person's name taken when the draft was finalized; renaming the person later
// does not rewrite it.
type DateRecord struct {
	// ID is the store-assigned document identifier, empty for drafts.
	ID string `json:"id,omitempty"`

	// PersonID references the Person the date was with.
	PersonID string `json:"person_id"`

	// PersonName is the denormalized display name at finalization time.
	PersonName string `json:"person_name"`

	// Day is the calendar date as entered (free text).
	Day string `json:"date"`

	// DayEpochMS is the text-encoded epoch-millisecond shadow of Day,
	// kept for sorting. May be empty.
	DayEpochMS string `json:"date_num"`

	// Activity is one of [ActivityOptions] or free text.
	Activity string `json:"activity"`

	// Location is where the date took place.
	Location string `json:"location"`

	// TimeOfDay is one of [TimeOfDayOptions].
	TimeOfDay string `json:"time_of_day"`

	// Rating is a text-encoded integer 1-5.
	Rating string `json:"rating"`

	// Emoji is a single sentiment glyph.
	Emoji string `json:"emoji"`

	// Icks, Liked are free-text impressions.
	Icks  string `json:"icks"`
	Liked string `json:"liked"`

	// Mutuals is one of [MutualsOptions].
	Mutuals string `json:"mutuals"`

	// CreatedAt is the store-assigned creation time.
	CreatedAt time.Time `json:"created_at,omitzero"`

	OwnerID    int64  `json:"owner_id,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

// Persisted reports whether the record has been saved to the document store.
func (d DateRecord) Persisted() bool {
	return d.ID != ""
}

// Fields returns the user-entered fields keyed by their wire names.
func (d DateRecord) Fields() map[string]string {
	return map[string]string{
		DateFieldPersonID:   d.PersonID,
		DateFieldPersonName: d.PersonName,
		DateFieldDay:        d.Day,
		DateFieldDayEpochMS: d.DayEpochMS,
		DateFieldActivity:   d.Activity,
		DateFieldLocation:   d.Location,
		DateFieldTimeOfDay:  d.TimeOfDay,
		DateFieldRating:     d.Rating,
		DateFieldEmoji:      d.Emoji,
		DateFieldIcks:       d.Icks,
		DateFieldLiked:      d.Liked,
		DateFieldMutuals:    d.Mutuals,
	}
}

// ApplyField sets the field identified by key to value.
// Returns false if key is not a DateRecord field.
func (d *DateRecord) ApplyField(key, value string) bool {
	switch key {
	case DateFieldPersonID:
		d.PersonID = value
	case DateFieldPersonName:
		d.PersonName = value
	case DateFieldDay:
		d.Day = value
	case DateFieldDayEpochMS:
		d.DayEpochMS = value
	case DateFieldActivity:
		d.Activity = value
	case DateFieldLocation:
		d.Location = value
	case DateFieldTimeOfDay:
		d.TimeOfDay = value
	case DateFieldRating:
		d.Rating = value
	case DateFieldEmoji:
		d.Emoji = value
	case DateFieldIcks:
		d.Icks = value
	case DateFieldLiked:
		d.Liked = value
	case DateFieldMutuals:
		d.Mutuals = value
	default:
		return false
	}
	return true
}

// DateRecordFromDocument rebuilds a DateRecord from a stored document.
func DateRecordFromDocument(doc Document) DateRecord {
	return DateRecord{
		ID:         doc.ID,
		PersonID:   doc.Fields[DateFieldPersonID],
		PersonName: doc.Fields[DateFieldPersonName],
		Day:        doc.Fields[DateFieldDay],
		DayEpochMS: doc.Fields[DateFieldDayEpochMS],
		Activity:   doc.Fields[DateFieldActivity],
		Location:   doc.Fields[DateFieldLocation],
		TimeOfDay:  doc.Fields[DateFieldTimeOfDay],
		Rating:     doc.Fields[DateFieldRating],
		Emoji:      doc.Fields[DateFieldEmoji],
		Icks:       doc.Fields[DateFieldIcks],
		Liked:      doc.Fields[DateFieldLiked],
		Mutuals:    doc.Fields[DateFieldMutuals],
		CreatedAt:  doc.CreatedAt,
		OwnerID:    doc.OwnerID,
		OwnerEmail: doc.OwnerEmail,
	}
}

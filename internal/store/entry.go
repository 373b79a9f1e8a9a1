package store

import (
	"encoding/json"
	"time"

	"github.com/dmathew/go-giftsmart/internal/config"
)

// Entry is a single tracked birthday. The ID is assigned at creation and
// never changes; the stored year of Date is kept but carries no scheduling
// meaning. PreferredCardStyle is only meaningful for close friends by
// convention, which the store does not enforce.
type Entry struct {
	ID                 string
	Name               string
	Date               time.Time
	PhoneNumber        string
	CloseFriend        bool
	PreferredCardStyle string
	Notes              string
}

// Section is a derived, named bucket of entries. It is recomputed on every
// read and never persisted; mutations always go through the owning store.
type Section struct {
	Title   string
	Entries []Entry
}

// entryJSON is the persisted wire form of Entry. The date is stored as a
// plain ISO-8601 calendar date; optional fields are omitted when empty and
// default on decode rather than failing it.
type entryJSON struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Date               string `json:"date"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	CloseFriend        bool   `json:"is_close_friend,omitempty"`
	PreferredCardStyle string `json:"preferred_card_style,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// MarshalJSON encodes the entry in its persisted form.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		ID:                 e.ID,
		Name:               e.Name,
		Date:               e.Date.Format(config.DateFormatFullDash),
		PhoneNumber:        e.PhoneNumber,
		CloseFriend:        e.CloseFriend,
		PreferredCardStyle: e.PreferredCardStyle,
		Notes:              e.Notes,
	})
}

// UnmarshalJSON decodes the persisted form, applying declared defaults for
// any absent optional field.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(config.DateFormatFullDash, raw.Date)
	if err != nil {
		return err
	}

	*e = Entry{
		ID:                 raw.ID,
		Name:               raw.Name,
		Date:               date,
		PhoneNumber:        raw.PhoneNumber,
		CloseFriend:        raw.CloseFriend,
		PreferredCardStyle: raw.PreferredCardStyle,
		Notes:              raw.Notes,
	}
	return nil
}

package contacts

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmathew/go-giftsmart/internal/store"
)

// Candidate is a birthday-bearing contact pulled from a source, not yet a
// store entry: it has no id until the user confirms the import.
type Candidate struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// Birthday is the parsed date. Only month and day matter downstream;
	// for truncated vCard dates the year is a documented leap-year stand-in.
	Birthday time.Time

	// YearKnown indicates whether the source carried a year or just --MM-DD.
	YearKnown bool

	// Phone is the first phone number on the card, if any.
	Phone string
}

// Entry materializes the candidate as a store entry with a fresh id.
func (c Candidate) Entry() store.Entry {
	return store.Entry{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Date:        c.Birthday,
		PhoneNumber: c.Phone,
	}
}

package models

import "time"

// Place is a saved, named geographic location with user metadata.
//
// ID is an opaque identifier assigned by the store at creation time and is
// never changed afterwards. TabID references a [Tab]; readers must tolerate
// a dangling reference (the tab may have been deleted between two writes)
// and treat it as [TabOther].
type Place struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Note       string    `json:"note,omitempty"`
	Address    string    `json:"address,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	TabID      string    `json:"tab_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PlaceUpdate carries a partial set of place fields for an edit-and-resave
// operation. Nil pointers mean "leave the stored value untouched".
type PlaceUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Note       *string  `json:"note,omitempty"`
	Address    *string  `json:"address,omitempty"`
	PostalCode *string  `json:"postal_code,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	TabID      *string  `json:"tab_id,omitempty"`
}

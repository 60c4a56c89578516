// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Property represents one persisted property listing.
// The `json:"..."` tags tell Go's encoding/json package how to serialize/deserialize
// this struct to/from JSON. This is called a "struct tag" — metadata attached to fields.
//
// For example, when we marshal a Property to JSON:
//
//	p := Property{ID: "abc", Title: "Loft"}
//	json.Marshal(p) → {"id":"abc","title":"Loft",...}
//
// ID is assigned by the store on creation and never changes (or gets reused).
// CreatedAt is set once; UpdatedAt is refreshed on every successful update.
type Property struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PropertyDraft carries the three caller-supplied fields of a listing —
// what a create or update request provides before the store assigns
// identity and timestamps.
//
// WHY *float64 FOR PRICE?
// JSON cannot distinguish a missing number from zero once decoded into a
// plain float64. A pointer can: nil means the field was absent from the
// request, which the service must reject as a validation failure (a missing
// price is never "leave unchanged" or "free").
type PropertyDraft struct {
	Title    string   `json:"title"`
	Price    *float64 `json:"price"`
	Location string   `json:"location"`
}

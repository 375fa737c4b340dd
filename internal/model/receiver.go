package model

// Receiver represents an organisation or individual that claims surplus
// food. Receivers are reference data: this service reads them but never
// creates, updates, or deletes them.
type Receiver struct {
	ID      int64  `json:"id" db:"Receiver_ID"`
	Name    string `json:"name" db:"Name"`
	Type    string `json:"type,omitempty" db:"Type"`
	City    string `json:"city,omitempty" db:"City"`
	Contact string `json:"contact,omitempty" db:"Contact"`
}

package model

// Provider represents a food donor such as a restaurant or grocery store.
type Provider struct {
	ID      int64  `json:"id" db:"Provider_ID"`
	Name    string `json:"name" db:"Name"`
	Type    string `json:"type,omitempty" db:"Type"`
	Address string `json:"address,omitempty" db:"Address"`
	City    string `json:"city" db:"City"`
	Contact string `json:"contact,omitempty" db:"Contact"`
}

// ProviderRequest represents the request payload for registering a provider.
type ProviderRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city" validate:"required"`
	Contact string `json:"contact,omitempty"`
}

// ContactUpdateRequest represents the payload for replacing a provider's
// contact string. An empty contact is allowed and clears the field.
type ContactUpdateRequest struct {
	Contact string `json:"contact"`
}

// Option is an identity/name pair used to populate selection lists.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

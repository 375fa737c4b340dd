package model

// Food type values accepted on food listings.
const (
	FoodTypeVegetarian    = "Vegetarian"
	FoodTypeNonVegetarian = "Non-Vegetarian"
	FoodTypeVegan         = "Vegan"
	FoodTypeOther         = "Other"
)

// Meal type values accepted on food listings.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnacks    = "Snacks"
	MealTypeOther     = "Other"
)

// Quantity category buckets. Assigned once when a listing is created and
// stored as a snapshot; never recomputed afterwards.
const (
	QuantitySmall  = "Small"
	QuantityMedium = "Medium"
	QuantityLarge  = "Large"
)

// CategorizeQuantity buckets a quantity: Small below 5, Medium from 5 to
// 20 inclusive, Large above 20.
func CategorizeQuantity(quantity int) string {
	if quantity < 5 {
		return QuantitySmall
	}
	if quantity <= 20 {
		return QuantityMedium
	}
	return QuantityLarge
}

// FoodListing represents a batch of surplus food offered by a provider.
// DaysToExpiry and QuantityCategory are computed at insert time and kept
// as-is; time-sensitive reports derive freshness from ExpiryDate instead.
type FoodListing struct {
	ID               int64  `json:"id" db:"Food_ID"`
	FoodName         string `json:"foodName" db:"Food_Name"`
	Quantity         int    `json:"quantity" db:"Quantity"`
	ExpiryDate       string `json:"expiryDate" db:"Expiry_Date"`
	ProviderID       int64  `json:"providerId" db:"Provider_ID"`
	ProviderType     string `json:"providerType,omitempty" db:"Provider_Type"`
	Location         string `json:"location" db:"Location"`
	FoodType         string `json:"foodType,omitempty" db:"Food_Type"`
	MealType         string `json:"mealType,omitempty" db:"Meal_Type"`
	DaysToExpiry     int    `json:"daysToExpiry" db:"Days_To_Expiry"`
	QuantityCategory string `json:"quantityCategory" db:"Quantity_Category"`
}

// ListingRequest represents the request payload for creating a food listing.
type ListingRequest struct {
	FoodName     string `json:"foodName" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	ExpiryDate   string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	ProviderID   int64  `json:"providerId" validate:"required"`
	ProviderType string `json:"providerType,omitempty"`
	Location     string `json:"location" validate:"required"`
	FoodType     string `json:"foodType,omitempty" validate:"omitempty,oneof=Vegetarian Non-Vegetarian Vegan Other"`
	MealType     string `json:"mealType,omitempty" validate:"omitempty,oneof=Breakfast Lunch Dinner Snacks Other"`
}

// QuantityUpdateRequest represents the payload for adjusting the quantity
// of an existing listing.
type QuantityUpdateRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

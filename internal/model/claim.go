package model

// Claim status values.
const (
	ClaimPending   = "Pending"
	ClaimCompleted = "Completed"
	ClaimCancelled = "Cancelled"
)

// ValidClaimStatus reports whether s is one of the accepted claim states.
func ValidClaimStatus(s string) bool {
	switch s {
	case ClaimPending, ClaimCompleted, ClaimCancelled:
		return true
	}
	return false
}

// Claim links a receiver to a food listing. A listing carries at most one
// claim regardless of the claim's status; cancelling a claim does not free
// the listing for another claim unless the claim row is deleted.
type Claim struct {
	ID         int64  `json:"id" db:"Claim_ID"`
	FoodID     int64  `json:"foodId" db:"Food_ID"`
	ReceiverID int64  `json:"receiverId" db:"Receiver_ID"`
	Status     string `json:"status" db:"Status"`
}

// ClaimDetail is the admin view of a claim joined with the food and
// receiver names.
type ClaimDetail struct {
	ID           int64  `json:"id"`
	FoodID       int64  `json:"foodId"`
	FoodName     string `json:"foodName"`
	ReceiverID   int64  `json:"receiverId"`
	ReceiverName string `json:"receiverName"`
	Status       string `json:"status"`
}

// EligibleListing is a food listing open to a new claim: no claim of any
// status exists against it.
type EligibleListing struct {
	ID         int64  `json:"id"`
	FoodName   string `json:"foodName"`
	Location   string `json:"location"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiryDate"`
}

// ClaimRequest represents the request payload for claiming a listing.
// Status defaults to Pending when omitted.
type ClaimRequest struct {
	FoodID     int64  `json:"foodId" validate:"required"`
	ReceiverID int64  `json:"receiverId" validate:"required"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=Pending Completed Cancelled"`
}

// StatusUpdateRequest represents the payload for moving a claim to a new
// status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
}

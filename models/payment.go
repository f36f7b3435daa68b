package models

import "time"

// Payment transaction statuses. Stripe is the source of truth, these mirror
// the last state we saw.
const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPaid      = "paid"
	PaymentStatusUnpaid    = "unpaid"
	PaymentStatusExpired   = "expired"
)

// PaymentTransaction records one Stripe Checkout attempt for the premium
// upgrade.
type PaymentTransaction struct {
	ID            string            `json:"id" bson:"_id"`
	UserID        string            `json:"user_id" bson:"userID"`
	SessionID     string            `json:"session_id" bson:"sessionID"`
	Amount        int64             `json:"amount" bson:"amount"`
	Currency      string            `json:"currency" bson:"currency"`
	PaymentStatus string            `json:"payment_status" bson:"paymentStatus"`
	Metadata      map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updatedAt"`
}

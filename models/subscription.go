package models

import "time"

type Subscription string

const (
	Free    Subscription = "free" // basic
	Premium Subscription = "premium"
)

// UpsellOffer is the limited-time premium offer shown next to a freshly
// generated look.
type UpsellOffer struct {
	Plan             Subscription `json:"plan"`
	Installments     int          `json:"installments"`
	InstallmentPrice float64      `json:"installment_price"`
	FullPrice        float64      `json:"full_price"`
	Currency         string       `json:"currency"`
	Bonus            string       `json:"bonus"`
	ExpiresAt        time.Time    `json:"expires_at"`
}

// SecondsLeft is what the countdown badge shows, never negative.
func (o UpsellOffer) SecondsLeft(now time.Time) int {
	left := int(o.ExpiresAt.Sub(now).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

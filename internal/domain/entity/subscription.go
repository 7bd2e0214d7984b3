// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingCycle represents how often a subscription renews.
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleAnnually  BillingCycle = "annually"
)

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
)

// Subscription represents a recurring payment for a service.
type Subscription struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ServiceName  string
	Amount       decimal.Decimal
	BillingCycle BillingCycle
	RenewalDate  *time.Time // Optional
	Status       SubscriptionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(
	userID uuid.UUID,
	serviceName string,
	amount decimal.Decimal,
	billingCycle BillingCycle,
	renewalDate *time.Time,
	status SubscriptionStatus,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		ServiceName:  serviceName,
		Amount:       amount,
		BillingCycle: billingCycle,
		RenewalDate:  renewalDate,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsValidBillingCycle reports whether the given billing cycle is known.
func IsValidBillingCycle(c BillingCycle) bool {
	return c == BillingCycleMonthly || c == BillingCycleQuarterly || c == BillingCycleAnnually
}

// IsValidSubscriptionStatus reports whether the given status is known.
func IsValidSubscriptionStatus(s SubscriptionStatus) bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusCancelled || s == SubscriptionStatusPaused
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    VerificationStatus
		to      VerificationStatus
		allowed bool
	}{
		{"pending to approved", VerificationStatusPending, VerificationStatusApproved, true},
		{"pending to rejected", VerificationStatusPending, VerificationStatusRejected, true},
		{"pending to requires_changes", VerificationStatusPending, VerificationStatusRequiresChanges, true},
		{"rejected resubmit", VerificationStatusRejected, VerificationStatusPending, true},
		{"requires_changes resubmit", VerificationStatusRequiresChanges, VerificationStatusPending, true},
		{"approved back to review", VerificationStatusApproved, VerificationStatusPending, true},
		{"rejected to approved", VerificationStatusRejected, VerificationStatusApproved, false},
		{"requires_changes to rejected", VerificationStatusRequiresChanges, VerificationStatusRejected, false},
		{"approved to rejected", VerificationStatusApproved, VerificationStatusRejected, false},
		{"self transition", VerificationStatusPending, VerificationStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRestaurantVerification_IsEmpty(t *testing.T) {
	blank := &RestaurantVerification{Status: VerificationStatusPending}
	assert.True(t, blank.IsEmpty())

	partial := &RestaurantVerification{Name: "Bistro"}
	assert.False(t, partial.IsEmpty())

	// Description alone does not make an application filled in
	described := &RestaurantVerification{Description: "cozy place"}
	assert.True(t, described.IsEmpty())
}

func TestRestaurantVerification_ProfileFieldsChanged(t *testing.T) {
	v := &RestaurantVerification{
		Name:        "Bistro",
		Description: "cozy place",
		Address:     "1 Main St",
		Phone:       "+100200300",
		Email:       "owner@bistro.test",
	}

	assert.False(t, v.ProfileFieldsChanged("Bistro", "cozy place", "1 Main St", "+100200300", "owner@bistro.test"))
	assert.True(t, v.ProfileFieldsChanged("Bistro 2", "cozy place", "1 Main St", "+100200300", "owner@bistro.test"))
	assert.True(t, v.ProfileFieldsChanged("Bistro", "cozy place", "1 Main St", "+100200300", ""))
}

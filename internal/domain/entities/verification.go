package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents the review status of a restaurant application
type VerificationStatus string

const (
	VerificationStatusPending         VerificationStatus = "pending"
	VerificationStatusApproved        VerificationStatus = "approved"
	VerificationStatusRejected        VerificationStatus = "rejected"
	VerificationStatusRequiresChanges VerificationStatus = "requires_changes"
)

// Valid reports whether the status is a known value
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved,
		VerificationStatusRejected, VerificationStatusRequiresChanges:
		return true
	}
	return false
}

// verificationTransitions is the review state graph. Admin decisions move
// pending applications; resubmission brings rejected and requires_changes back
// to pending; post-approval profile edits move approved back to pending.
var verificationTransitions = map[VerificationStatus][]VerificationStatus{
	VerificationStatusPending:         {VerificationStatusApproved, VerificationStatusRejected, VerificationStatusRequiresChanges},
	VerificationStatusRejected:        {VerificationStatusPending},
	VerificationStatusRequiresChanges: {VerificationStatusPending},
	VerificationStatusApproved:        {VerificationStatusPending},
}

// CanTransitionTo reports whether the review graph allows moving to next
func (s VerificationStatus) CanTransitionTo(next VerificationStatus) bool {
	for _, allowed := range verificationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReReviewMarker is stored in AdminComment when an approved application is
// sent back to review because the owner changed profile fields.
const ReReviewMarker = "updated by user, requires re-review"

// RestaurantVerification is a restaurant ownership application. One per user.
// ReviewedAt records the moment of the last final decision (approve or
// reject); a request for changes does not touch it.
type RestaurantVerification struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"userId"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email,omitempty"`
	DocumentFile string             `json:"documentFile,omitempty"`
	Status       VerificationStatus `json:"status"`
	AdminComment string             `json:"adminComment,omitempty"`
	ReviewedBy   uuid.NullUUID      `json:"reviewedBy,omitempty"`
	ReviewedAt   null.Time          `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// IsEmpty reports whether the application has not been filled in yet.
// Registration with the owner flag creates such a blank application.
func (v *RestaurantVerification) IsEmpty() bool {
	return v.Name == "" && v.Address == "" && v.Phone == ""
}

// ProfileFieldsChanged compares the application against an edited profile and
// reports whether any reviewed field differs.
func (v *RestaurantVerification) ProfileFieldsChanged(name, description, address, phone, email string) bool {
	return v.Name != name ||
		v.Description != description ||
		v.Address != address ||
		v.Phone != phone ||
		v.Email != email
}

// SubmitVerificationInput represents the application form. DocumentFile is a
// reference to an already uploaded document, not the upload itself.
type SubmitVerificationInput struct {
	Name         string `json:"name" binding:"required,min=2,max=200"`
	Description  string `json:"description"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required,min=5,max=17"`
	Email        string `json:"email" binding:"omitempty,email"`
	DocumentFile string `json:"documentFile" binding:"omitempty,max=500"`
}

// ReviewVerificationInput represents an admin review decision payload
type ReviewVerificationInput struct {
	Comment string `json:"comment"`
}

// VerificationFilter narrows admin application listings
type VerificationFilter struct {
	Status VerificationStatus
}

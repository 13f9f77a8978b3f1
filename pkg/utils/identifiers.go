package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var identifierRandomRead = rand.Read

// GenerateUUIDv7 generates a new UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

// NewOrderNumber builds a human-readable order number:
// ORD-<YYYYMMDDHHMM>-<6 uppercase hex>. Uniqueness is enforced by the
// database; callers retry on collision.
func NewOrderNumber(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	if _, err := identifierRandomRead(suffix); err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return fmt.Sprintf("ORD-%s-%s",
		now.Format("200601021504"),
		strings.ToUpper(hex.EncodeToString(suffix)),
	), nil
}

// NewQRData builds a restaurant QR identifier: rest_<12 lowercase hex>
func NewQRData() (string, error) {
	suffix := make([]byte, 6)
	if _, err := identifierRandomRead(suffix); err != nil {
		return "", fmt.Errorf("failed to generate qr data: %w", err)
	}
	return "rest_" + hex.EncodeToString(suffix), nil
}

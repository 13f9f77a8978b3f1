package utils

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUIDv7(t *testing.T) {
	id := GenerateUUIDv7()
	assert.NotEqual(t, uuid.Nil, id)
}

func TestNewOrderNumber(t *testing.T) {
	ts := time.Date(2026, 3, 15, 14, 7, 42, 0, time.UTC)

	number, err := NewOrderNumber(ts)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-202603151407-[0-9A-F]{6}$`), number)

	other, err := NewOrderNumber(ts)
	require.NoError(t, err)
	assert.NotEqual(t, number, other)
}

func TestNewQRData(t *testing.T) {
	qr, err := NewQRData()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^rest_[0-9a-f]{12}$`), qr)

	other, err := NewQRData()
	require.NoError(t, err)
	assert.NotEqual(t, qr, other)
}

func TestIdentifiers_RandomError(t *testing.T) {
	orig := identifierRandomRead
	t.Cleanup(func() { identifierRandomRead = orig })

	identifierRandomRead = func([]byte) (int, error) {
		return 0, errors.New("no entropy")
	}

	_, err := NewOrderNumber(time.Now())
	assert.Error(t, err)

	_, err = NewQRData()
	assert.Error(t, err)
}

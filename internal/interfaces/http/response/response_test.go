package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/interfaces/http/response"
)

func performError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.Error(c, err)
	return w
}

func TestError_DomainSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrAlreadyExists, http.StatusConflict},
		{domainerrors.ErrDuplicateApplication, http.StatusConflict},
		{domainerrors.ErrInvalidTransition, http.StatusConflict},
		{domainerrors.ErrInvalidVerificationTransition, http.StatusConflict},
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainerrors.ErrForbidden, http.StatusForbidden},
		{domainerrors.ErrInvalidInput, http.StatusBadRequest},
		{domainerrors.ErrInvalidPricingInput, http.StatusBadRequest},
		{domainerrors.ErrDishUnavailable, http.StatusUnprocessableEntity},
		{domainerrors.ErrCrossRestaurantReference, http.StatusUnprocessableEntity},
		{domainerrors.ErrOrderAmountOutOfRange, http.StatusUnprocessableEntity},
		{domainerrors.ErrRestaurantInactive, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		w := performError(t, tc.err)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
	}
}

func TestError_AppError(t *testing.T) {
	w := performError(t, domainerrors.NotFound("order not found"))
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "order not found", body["message"])
}

func TestError_UnknownErrorIsInternal(t *testing.T) {
	w := performError(t, errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// Driver details must not leak
	assert.Equal(t, "internal server error", body["message"])
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Success(c, http.StatusCreated, gin.H{"id": "abc"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

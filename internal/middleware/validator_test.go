package middleware

import (
	"net/http"
	"testing"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReportsFailingFields(t *testing.T) {
	v := NewRequestValidator()

	seat := "A1234X"
	err := v.Validate(&dto.CreateBookingRequest{
		ShowID:         1,
		TicketHolderID: 2,
		SeatNumber:     &seat,
	})
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	msg, ok := he.Message.(string)
	require.True(t, ok)
	assert.Contains(t, msg, "Section failed on required")
	assert.Contains(t, msg, "SeatNumber failed on max")
}

func TestValidate_PassesValidRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(&dto.CreateBookingRequest{
		ShowID:         1,
		TicketHolderID: 2,
		Section:        "GA",
	}))
}

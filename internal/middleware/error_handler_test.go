package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandler_HTTPError(t *testing.T) {
	c, rec := newErrorContext()

	ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "booking not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking not found", resp.Message)
}

// Unhandled errors become an opaque 500; the detail stays in the log.
func TestErrorHandler_UnknownError(t *testing.T) {
	c, rec := newErrorContext()

	ErrorHandler(errors.New("pq: connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	c, rec := newErrorContext()
	require.NoError(t, c.String(http.StatusOK, "done"))

	ErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

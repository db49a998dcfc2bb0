package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as the API's {"message": ...} envelope.
// Anything that is not an *echo.HTTPError is a 500 with the detail logged
// rather than leaked to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	} else {
		log.Printf("unhandled error: %s %s: %v", c.Request().Method, c.Request().RequestURI, err)
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}

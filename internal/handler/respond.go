package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

// respond writes the uniform success envelope.
func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, model.Response{
		Status:  status,
		Success: true,
		Data:    data,
		Message: message,
	})
}

// respondError is the single translator from service errors to the
// failure envelope. Anything it cannot classify becomes a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
		message = "Invalid request."
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "Unauthorized request."
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		message = "Not found."
	case errors.Is(err, service.ErrConflict):
		// Duplicate unique fields answer 400 rather than 409, matching
		// the platform's historical behavior.
		status = http.StatusBadRequest
		message = "Already exists."
	}

	if msg := service.ErrorMessage(err); msg != "" {
		message = msg
	}

	c.JSON(status, model.ErrorResponse{
		Status:  status,
		Success: false,
		Message: message,
		Errors:  []string{},
		Data:    nil,
	})
}

package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"device-inventory-backend/internal/device"
	"device-inventory-backend/internal/mw"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	API     string    `json:"api"`
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		API:     c.Request.Method + " " + c.Request.URL.Path,
		Code:    status,
		Message: message,
		Time:    time.Now().UTC(),
	})
}

// statusFor maps a device service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, device.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, device.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, device.ErrConflict):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		var storageErr *device.StorageError
		if errors.As(err, &storageErr) {
			log.Printf("[%s] %s %s: %v: %v", mw.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err, storageErr.Err)
		} else {
			log.Printf("[%s] %s %s: %v", mw.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		}
	}
	respondError(c, status, err.Error())
}

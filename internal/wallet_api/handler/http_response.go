package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chari-wallet-mock/internal/wallet_api/middleware"
)

// Response is the envelope every successful endpoint wraps its payload in
type Response struct {
	Data       interface{} `json:"data"`
	CRequestID string      `json:"c_request_id,omitempty"`
}

// ErrorResponse is the flat error body shared by all failure modes. Unlike
// successes it carries no envelope: errorCode always repeats the HTTP status.
type ErrorResponse struct {
	ErrorCode        int    `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// RespondWithData sends a JSON response wrapping data in the standard envelope
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Data:       data,
		CRequestID: middleware.GetRequestID(c),
	})
}

// RespondWithError sends the flat error body
func RespondWithError(c *gin.Context, statusCode int, description string) {
	c.JSON(statusCode, ErrorResponse{
		ErrorCode:        statusCode,
		ErrorDescription: description,
	})
}

// RespondOK sends a 200 OK response with data
func RespondOK(c *gin.Context, data interface{}) {
	RespondWithData(c, http.StatusOK, data)
}

// RespondCreated sends a 201 Created response with data
func RespondCreated(c *gin.Context, data interface{}) {
	RespondWithData(c, http.StatusCreated, data)
}

// RespondNoContent sends a 204 No Content response. Used for status lookups
// of phone numbers that were never registered.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondBadRequest sends a 400 Bad Request response with an error
func RespondBadRequest(c *gin.Context, description string) {
	RespondWithError(c, http.StatusBadRequest, description)
}

// RespondNotFound sends a 404 Not Found response with an error
func RespondNotFound(c *gin.Context, description string) {
	if description == "" {
		description = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, description)
}

// RespondNotImplemented sends the 501 body unknown routes answer with
func RespondNotImplemented(c *gin.Context, method, path string) {
	RespondWithError(c, http.StatusNotImplemented, fmt.Sprintf("Endpoint not implemented: %s %s", method, path))
}

// RespondInternalError sends a 500 Internal Server Error response
func RespondInternalError(c *gin.Context) {
	RespondWithError(c, http.StatusInternalServerError, "Internal server error")
}

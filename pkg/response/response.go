package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/students-api/pkg/errors"
)

// ErrorBody is the contract for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the contract for successful writes.
type MessageBody struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

// JSON sends data as-is with cache suppression headers.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Message responds with a {"message": ...} body.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, MessageBody{Message: message})
}

// Created responds with HTTP 201 and the identifier assigned by the store.
func Created(c *gin.Context, message string, id int64) {
	JSON(c, http.StatusCreated, MessageBody{Message: message, ID: &id})
}

// Error converts err to its HTTP status and writes only the public message.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	JSON(c, appErr.Status, ErrorBody{Error: appErr.Message})
}

// Abort writes the error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// Attachment streams a rendered file download.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, contentType, body)
}

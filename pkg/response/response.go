// Package response carries the wire envelopes of the two HTTP surfaces.
// The task API speaks bare resources plus {"error": "..."} rejections; the
// submission API wraps everything in a success/message envelope. Both shapes
// are kept exactly as the browser clients expect them.
package response

import (
	"github.com/gin-gonic/gin"
)

// TaskError is the task-surface rejection body.
type TaskError struct {
	Error string `json:"error"`
}

// Envelope is the submission-surface body.
type Envelope struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Data     any               `json:"data,omitempty"`
	RecordID string            `json:"recordId,omitempty"`
	Count    *int              `json:"count,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// Task writes a task-surface payload as-is.
func Task(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// TaskFail writes a task-surface rejection.
func TaskFail(c *gin.Context, status int, message string) {
	c.JSON(status, TaskError{Error: message})
}

// OK writes a successful submission-surface envelope.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Created writes the validate-and-insert success envelope with the new
// record id alongside the data.
func Created(c *gin.Context, status int, message string, data any, recordID string) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data, RecordID: recordID})
}

// Listed writes a collection envelope with its count.
func Listed(c *gin.Context, status int, data any, count int) {
	c.JSON(status, Envelope{Success: true, Data: data, Count: &count})
}

// Fail writes a submission-surface rejection; errors may be nil.
func Fail(c *gin.Context, status int, message string, errors map[string]string) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errors})
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is any HTTP answer from the service.
type Response struct {
	Status int
	Body   []byte
}

// errorBody is the failure payload shape shared by all endpoints.
type errorBody struct {
	Message          string            `json:"message"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

func (r *Response) NotFound() bool {
	return r.Status == http.StatusNotFound
}

// DecodeJSON unmarshals the body into dst.
func (r *Response) DecodeJSON(dst any) error {
	if err := json.Unmarshal(r.Body, dst); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (r *Response) errorBody() errorBody {
	var eb errorBody
	if len(r.Body) > 0 {
		_ = json.Unmarshal(r.Body, &eb)
	}
	return eb
}

// Message returns the server's "message" field, or "".
func (r *Response) Message() string {
	return r.errorBody().Message
}

// ValidationErrors returns the server's per-field messages, or nil when the
// body carries none.
func (r *Response) ValidationErrors() map[string]string {
	ve := r.errorBody().ValidationErrors
	if len(ve) == 0 {
		return nil
	}
	return ve
}

// Err returns nil for 2xx and an *Error otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	eb := r.errorBody()
	return &Error{StatusCode: r.Status, Message: eb.Message, ValidationErrors: eb.ValidationErrors}
}

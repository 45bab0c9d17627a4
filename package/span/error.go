package span

import (
	"errors"
	"strings"
)

type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

type ErrorItem struct {
	Span    *Span   `json:"-"`
	Trace   *Caller `json:"trace,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"error,omitempty"`
}

// Error joins messages from the outermost layer inwards, ending with the cause.
func (r *Error) Error() string {
	parts := make([]string, 0, len(r.Items)+1)
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].Message != nil && *r.Items[i].Message != "" {
			parts = append(parts, *r.Items[i].Message)
		}
	}
	if cause := r.Unwrap(); cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (r *Error) Unwrap() error {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0].Error
}

// Message returns the innermost message, the one closest to the failure.
func (r *Error) Message() *string {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0].Message
}

func NewError(span *Span, message string, err error) error {
	trace := NewCaller()
	item := &ErrorItem{
		Span:    span,
		Trace:   trace,
		Message: &message,
		Error:   nil,
	}

	// * chain onto an existing span error
	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, item)
		return e
	}

	item.Error = err
	return &Error{
		Items: []*ErrorItem{item},
	}
}

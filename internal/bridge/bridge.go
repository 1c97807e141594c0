// Package bridge routes named requests from the UI layer to native handlers.
// It mirrors the method-channel model: a request carries a method name and
// an optional parameter map, and resolves to either a value or a named error.
package bridge

import "fmt"

// Error is a named failure returned across the UI boundary.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes understood by the frontend.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotImplemented  = "NOT_IMPLEMENTED"
)

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Response is the result of a single invocation. Exactly one of Value and
// Error is meaningful.
type Response struct {
	Value any    `json:"value,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Handler processes one named request.
type Handler func(args map[string]any) (any, *Error)

// Channel dispatches named requests to registered handlers. The hosting
// application owns its channels for its own lifetime; there is no global
// registry.
type Channel struct {
	name     string
	handlers map[string]Handler
}

// NewChannel creates an empty channel with the given name.
func NewChannel(name string) *Channel {
	return &Channel{
		name:     name,
		handlers: make(map[string]Handler),
	}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// Register installs a handler for a method, replacing any previous one.
func (c *Channel) Register(method string, h Handler) {
	c.handlers[method] = h
}

// Invoke dispatches a request to the handler registered for its method.
// An unrecognized method yields a NOT_IMPLEMENTED response.
func (c *Channel) Invoke(method string, args map[string]any) Response {
	h, ok := c.handlers[method]
	if !ok {
		return Response{Error: &Error{
			Code:    CodeNotImplemented,
			Message: fmt.Sprintf("method %q is not implemented on channel %q", method, c.name),
		}}
	}

	value, bridgeErr := h(args)
	if bridgeErr != nil {
		return Response{Error: bridgeErr}
	}
	return Response{Value: value}
}

// stringArg extracts a required string parameter, reporting INVALID_ARGUMENT
// when it is missing, not a string, or empty.
func stringArg(args map[string]any, name string) (string, *Error) {
	raw, ok := args[name]
	if !ok {
		return "", &Error{
			Code:    CodeInvalidArgument,
			Message: fmt.Sprintf("%s is required", name),
		}
	}

	value, ok := raw.(string)
	if !ok || value == "" {
		return "", &Error{
			Code:    CodeInvalidArgument,
			Message: fmt.Sprintf("%s must be a non-empty string", name),
		}
	}

	return value, nil
}

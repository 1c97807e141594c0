package app

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

type eventsHandler struct {
	ctx context.Context
}

func newEventsHandler(ctx context.Context) *eventsHandler {
	return &eventsHandler{ctx: ctx}
}

type autoStartState string

const (
	autoStartChannel                 = "autostart:action"
	autoStartEnabled  autoStartState = "enabled"
	autoStartDisabled autoStartState = "disabled"
	autoStartStale    autoStartState = "stale"
	autoStartError    autoStartState = "error"
)

type autoStartAction struct {
	Kind   autoStartState `json:"kind"`
	Target string         `json:"target,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (e *eventsHandler) OnAutoStartEnabled() {
	runtime.EventsEmit(e.ctx, autoStartChannel, autoStartAction{
		Kind: autoStartEnabled,
	})
}

func (e *eventsHandler) OnAutoStartDisabled() {
	runtime.EventsEmit(e.ctx, autoStartChannel, autoStartAction{
		Kind: autoStartDisabled,
	})
}

// OnAutoStartStale reports a record whose launch target no longer matches
// the running executable.
func (e *eventsHandler) OnAutoStartStale(target string) {
	runtime.EventsEmit(e.ctx, autoStartChannel, autoStartAction{
		Kind:   autoStartStale,
		Target: target,
	})
}

func (e *eventsHandler) OnAutoStartError(err error) {
	runtime.EventsEmit(e.ctx, autoStartChannel, autoStartAction{
		Kind:  autoStartError,
		Error: fmt.Sprint(err),
	})
}

package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers a notification event. It defaults to a no-op so headless code
// paths (tests, early startup) can emit freely.
var Emit = func(ctx context.Context, name string, evt SettingsEvent) {}

// EnableRuntimeEmitter routes events to the Wails frontend. Only success and
// error events become toasts; everything is mirrored into the runtime log.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt SettingsEvent) {
		if evt.Type == EventSuccess || evt.Type == EventError {
			runtime.EventsEmit(ctx, name, evt)
		}

		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt SettingsEvent)) {
	if f == nil {
		Emit = func(context.Context, string, SettingsEvent) {}
		return
	}
	Emit = f
}

package bridge

import "log"

// AutoStartChannelName is the channel the frontend invokes auto-start
// operations on.
const AutoStartChannelName = "com.toss/auto_start"

// AutoStartManager toggles and queries the OS-native login auto-start record.
type AutoStartManager interface {
	Enable(execPath string) error
	Disable() error
	IsEnabled() (bool, error)
}

// NewAutoStartChannel builds the auto-start request channel. The boundary
// contract is boolean-only: controller failures resolve to false rather than
// propagating as errors, and a query never fails outward.
func NewAutoStartChannel(m AutoStartManager) *Channel {
	c := NewChannel(AutoStartChannelName)

	c.Register("enableAutoStart", func(args map[string]any) (any, *Error) {
		appPath, bridgeErr := stringArg(args, "appPath")
		if bridgeErr != nil {
			return nil, bridgeErr
		}

		if err := m.Enable(appPath); err != nil {
			log.Printf("error enabling autostart: %v", err)
			return false, nil
		}
		return true, nil
	})

	c.Register("disableAutoStart", func(map[string]any) (any, *Error) {
		if err := m.Disable(); err != nil {
			log.Printf("error disabling autostart: %v", err)
			return false, nil
		}
		return true, nil
	})

	c.Register("isAutoStartEnabled", func(map[string]any) (any, *Error) {
		enabled, err := m.IsEnabled()
		if err != nil {
			// Unreachable state reads as "not enabled".
			log.Printf("error checking autostart state: %v", err)
			return false, nil
		}
		return enabled, nil
	})

	return c
}

package views

import (
	"github.com/dori/studydeck/internal/community"
	"github.com/dori/studydeck/internal/media"
	"github.com/dori/studydeck/internal/settings"
)

// StatusMsg shows an informational line in the footer
type StatusMsg struct {
	Message string
}

// ErrorMsg shows an error line in the footer
type ErrorMsg struct {
	Err error
}

// UnlockedMsg is sent when the gate accepts the PIN
type UnlockedMsg struct{}

// SettingsChangedMsg is sent after the settings panel saved new settings
type SettingsChangedMsg struct {
	Settings settings.Settings
}

// ResetMsg is sent after local storage was cleared; the root rebuilds all
// panel state and shows the gate again
type ResetMsg struct{}

// NotifyFailedMsg reports a desktop notification that could not be shown
type NotifyFailedMsg struct {
	Err error
}

// LockedMsg is sent when the dashboard is locked from the settings panel
type LockedMsg struct{}

// DailyImageMsg carries the daily image read off the update loop. The root
// delivers it to the daily panel whichever panel is showing.
type DailyImageMsg struct {
	Image media.Image
	Err   error
}

// PostImageMsg carries a community post whose image file was read off the
// update loop. The root delivers it to the community panel.
type PostImageMsg struct {
	Post community.NewPost
	Err  error
}

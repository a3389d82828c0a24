package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime toggles for overlays and shutdown
type SettingsData struct {
	Debug         bool
	ShowHelp      bool
	QuitRequested bool
}

var Settings = donburi.NewComponentType[SettingsData]()

package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles. This is a singleton component.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

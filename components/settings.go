package components

import "github.com/yohamta/donburi"

// SettingsData tracks the parameter panel and persistence bookkeeping.
type SettingsData struct {
	PanelOpen bool

	// Write-behind persistence: Dirty marks unsaved changes, SaveDelay
	// counts down ticks until the next flush.
	Dirty     bool
	SaveDelay int
}

var Settings = donburi.NewComponentType[SettingsData]()

package systems

import (
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the overlay, fullscreen and quit keys
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionHelp).JustPressed {
		settings.ShowHelp = !settings.ShowHelp
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.QuitRequested = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from the debug config
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:    cfg.Debug.Overlay,
			ShowHelp: cfg.Debug.ShowHelp,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

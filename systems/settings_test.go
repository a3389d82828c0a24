package systems

import (
	"testing"

	cfg "github.com/automoto/xmas-tree/config"
)

func TestUpdateSettings_Toggles(t *testing.T) {
	e := newTestWorld(t)
	settings := GetOrCreateSettings(e)
	debug, help := settings.Debug, settings.ShowHelp

	pressAction(e, cfg.ActionDebug)
	UpdateSettings(e)
	if settings.Debug == debug {
		t.Error("debug overlay should toggle")
	}

	releaseAll(e)
	pressAction(e, cfg.ActionHelp)
	UpdateSettings(e)
	if settings.ShowHelp == help {
		t.Error("help panel should toggle")
	}
	if settings.QuitRequested {
		t.Error("quit must not be requested")
	}

	releaseAll(e)
	pressAction(e, cfg.ActionQuit)
	UpdateSettings(e)
	if !settings.QuitRequested {
		t.Error("escape should request quit")
	}
}

func TestGetAction(t *testing.T) {
	e := newTestWorld(t)
	input := getOrCreateInput(e)

	pressAction(e, cfg.ActionPause)
	if s := GetAction(input, cfg.ActionPause); !s.Pressed || !s.JustPressed || s.JustReleased {
		t.Errorf("first frame = %+v", s)
	}

	pressAction(e, cfg.ActionPause)
	if s := GetAction(input, cfg.ActionPause); !s.Pressed || s.JustPressed {
		t.Errorf("held frame = %+v", s)
	}

	releaseAll(e)
	if s := GetAction(input, cfg.ActionPause); s.Pressed || !s.JustReleased {
		t.Errorf("release frame = %+v", s)
	}
}

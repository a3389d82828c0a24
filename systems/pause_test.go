package systems

import (
	"testing"

	cfg "github.com/automoto/xmas-tree/config"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdatePause_TogglesOnPress(t *testing.T) {
	e := newTestWorld(t)

	pressAction(e, cfg.ActionPause)
	UpdatePause(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("expected paused after pressing pause")
	}

	// Holding the key does not toggle again
	pressAction(e, cfg.ActionPause)
	UpdatePause(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("holding pause must not unpause")
	}

	releaseAll(e)
	UpdatePause(e)
	pressAction(e, cfg.ActionPause)
	UpdatePause(e)
	if GetOrCreatePause(e).IsPaused {
		t.Error("second press should unpause")
	}
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestWorld(t)
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)
	system(e)
	GetOrCreatePause(e).IsPaused = false
	system(e)

	if calls != 2 {
		t.Errorf("wrapped system ran %d times, want 2", calls)
	}
}

func TestPausedSceneFreezesFrame(t *testing.T) {
	e := newTestWorld(t)
	frame := WithPauseCheck(UpdateFrame)

	frame(e)
	GetOrCreatePause(e).IsPaused = true
	for i := 0; i < 10; i++ {
		frame(e)
	}

	if got := GetScene(e).Frame; got != 1 {
		t.Errorf("frame = %d, want 1", got)
	}
}

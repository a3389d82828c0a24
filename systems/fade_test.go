package systems

import "testing"

func TestUpdateFade(t *testing.T) {
	e := newTestWorld(t)
	fade := GetOrCreateFade(e)
	if fade.Alpha != 1 || fade.Done {
		t.Fatalf("fade should start opaque, got %+v", *fade)
	}

	prev := fade.Alpha
	for i := 0; i < 30; i++ {
		UpdateFade(e)
		if fade.Alpha > prev {
			t.Fatalf("tick %d: alpha rose from %v to %v", i, prev, fade.Alpha)
		}
		prev = fade.Alpha
	}
	if fade.Alpha >= 1 || fade.Alpha <= 0 {
		t.Errorf("half a second in, alpha = %v, want strictly between 0 and 1", fade.Alpha)
	}

	for i := 0; i < 120; i++ {
		UpdateFade(e)
	}
	if !fade.Done || fade.Alpha != 0 {
		t.Errorf("after the fade: %+v, want done at alpha 0", *fade)
	}
}

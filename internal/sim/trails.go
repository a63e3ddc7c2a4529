package sim

import "parking-sim/internal/common"

// Trails records the path of each wheel contact point while enabled.
// Order matches physics.WheelPoints.
type Trails struct {
	recording bool
	paths     [4][]common.Vec2
}

// Recording reports whether ticks are being recorded.
func (t *Trails) Recording() bool { return t.recording }

// SetRecording turns recording on or off. Turning it off drops the trails.
func (t *Trails) SetRecording(on bool) {
	t.recording = on
	if !on {
		t.Clear()
	}
}

// Record appends one point per wheel when recording.
func (t *Trails) Record(points [4]common.Vec2) {
	if !t.recording {
		return
	}
	for i, p := range points {
		t.paths[i] = append(t.paths[i], p)
	}
}

// Clear drops every recorded point.
func (t *Trails) Clear() {
	for i := range t.paths {
		t.paths[i] = nil
	}
}

// Paths exposes the recorded polylines. Callers must not modify them.
func (t *Trails) Paths() [4][]common.Vec2 { return t.paths }

// Package save persists simulator scenarios into numbered slots and parses
// them back with full validation, so a bad file never reaches live state.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"parking-sim/internal/lot"
)

// CurrentVersion is written into every snapshot. Files without a version
// field predate versioning and are read as version 1.
const CurrentVersion = 1

var (
	ErrSlotEmpty          = errors.New("save slot is empty")
	ErrSlotOccupied       = errors.New("save slot already holds a scenario")
	ErrInvalidSlot        = errors.New("no such save slot")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// ValidationError reports why a snapshot was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid snapshot: " + e.Reason
	}
	return fmt.Sprintf("invalid snapshot: %s: %s", e.Field, e.Reason)
}

// CarState is the persisted car pose.
type CarState struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Angle      float64 `json:"angle"`
	SteerAngle float64 `json:"steerAngle"`
	Speed      float64 `json:"speed"`
}

// Snapshot is a complete scenario: the car plus the wall list and its
// undo/redo stacks.
type Snapshot struct {
	Version     int        `json:"version"`
	Car         CarState   `json:"car"`
	Walls       []lot.Wall `json:"walls"`
	WallHistory []lot.Wall `json:"wallHistory"`
	RedoHistory []lot.Wall `json:"redoHistory"`
}

// Encode serializes s, stamping the current version.
func Encode(s Snapshot) ([]byte, error) {
	s.Version = CurrentVersion
	s.Walls = nonNil(s.Walls)
	s.WallHistory = nonNil(s.WallHistory)
	s.RedoHistory = nonNil(s.RedoHistory)
	return json.Marshal(s)
}

type rawCar struct {
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Angle      *float64 `json:"angle"`
	SteerAngle *float64 `json:"steerAngle"`
	Speed      *float64 `json:"speed"`
}

type rawWall struct {
	X1 *float64 `json:"x1"`
	Y1 *float64 `json:"y1"`
	X2 *float64 `json:"x2"`
	Y2 *float64 `json:"y2"`
}

type rawSnapshot struct {
	Version     *int       `json:"version"`
	Car         *rawCar    `json:"car"`
	Walls       *[]rawWall `json:"walls"`
	WallHistory *[]rawWall `json:"wallHistory"`
	RedoHistory *[]rawWall `json:"redoHistory"`
}

// Decode parses and validates a snapshot. Every field must be present and
// finite, and wallHistory must mirror walls. On failure the returned error
// is a *ValidationError or wraps ErrUnsupportedVersion.
func Decode(data []byte) (Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Snapshot{}, &ValidationError{Field: typeErr.Field, Reason: "wrong type " + typeErr.Value}
		}
		return Snapshot{}, &ValidationError{Reason: "malformed JSON: " + err.Error()}
	}

	version := CurrentVersion
	if raw.Version != nil {
		version = *raw.Version
	}
	if version != CurrentVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	car, err := decodeCar(raw.Car)
	if err != nil {
		return Snapshot{}, err
	}
	walls, err := decodeWalls("walls", raw.Walls)
	if err != nil {
		return Snapshot{}, err
	}
	history, err := decodeWalls("wallHistory", raw.WallHistory)
	if err != nil {
		return Snapshot{}, err
	}
	redo, err := decodeWalls("redoHistory", raw.RedoHistory)
	if err != nil {
		return Snapshot{}, err
	}

	if len(history) != len(walls) {
		return Snapshot{}, &ValidationError{Field: "wallHistory", Reason: "does not match walls"}
	}
	for i := range walls {
		if walls[i] != history[i] {
			return Snapshot{}, &ValidationError{Field: fmt.Sprintf("wallHistory[%d]", i), Reason: "does not match walls"}
		}
	}

	return Snapshot{
		Version:     version,
		Car:         car,
		Walls:       walls,
		WallHistory: history,
		RedoHistory: redo,
	}, nil
}

func decodeCar(c *rawCar) (CarState, error) {
	if c == nil {
		return CarState{}, &ValidationError{Field: "car", Reason: "missing"}
	}
	fields := []struct {
		name string
		v    *float64
	}{
		{"car.x", c.X},
		{"car.y", c.Y},
		{"car.angle", c.Angle},
		{"car.steerAngle", c.SteerAngle},
		{"car.speed", c.Speed},
	}
	for _, f := range fields {
		if err := checkNumber(f.name, f.v); err != nil {
			return CarState{}, err
		}
	}
	return CarState{X: *c.X, Y: *c.Y, Angle: *c.Angle, SteerAngle: *c.SteerAngle, Speed: *c.Speed}, nil
}

func decodeWalls(name string, list *[]rawWall) ([]lot.Wall, error) {
	if list == nil {
		return nil, &ValidationError{Field: name, Reason: "missing"}
	}
	var walls []lot.Wall
	for i, w := range *list {
		prefix := fmt.Sprintf("%s[%d].", name, i)
		for _, f := range []struct {
			name string
			v    *float64
		}{{"x1", w.X1}, {"y1", w.Y1}, {"x2", w.X2}, {"y2", w.Y2}} {
			if err := checkNumber(prefix+f.name, f.v); err != nil {
				return nil, err
			}
		}
		walls = append(walls, lot.Wall{X1: *w.X1, Y1: *w.Y1, X2: *w.X2, Y2: *w.Y2})
	}
	return walls, nil
}

func checkNumber(field string, v *float64) error {
	if v == nil {
		return &ValidationError{Field: field, Reason: "missing"}
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return &ValidationError{Field: field, Reason: "not a finite number"}
	}
	return nil
}

func nonNil(walls []lot.Wall) []lot.Wall {
	if walls == nil {
		return []lot.Wall{}
	}
	return walls
}

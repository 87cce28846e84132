// Package unit defines the measurement units a server can attach to
// OSCQuery endpoints.
//
// The OSCQuery proposal organizes units into categories (distance, angle,
// gain, time, speed) and serializes them as dotted "category.name" strings
// such as "distance.cm" or "speed.km/h". Unit values are comparable and
// usable as map keys; the zero Unit means "no unit".
package unit

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned by Parse for strings that name no known unit.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is one unit of measurement, scoped to its category.
// The zero value is invalid and means the unit is absent.
type Unit struct {
	category string
	name     string
}

// IsZero reports whether the unit is absent.
func (u Unit) IsZero() bool {
	return u.category == ""
}

// String returns the wire form, e.g. "distance.cm".
func (u Unit) String() string {
	return u.category + "." + u.name
}

// MarshalJSON encodes the unit as its dotted string form.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a dotted unit string.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Distance units.
type DistanceUnit string

const (
	Meter      DistanceUnit = "m"
	Kilometer  DistanceUnit = "km"
	Decimeter  DistanceUnit = "dm"
	Centimeter DistanceUnit = "cm"
	Millimeter DistanceUnit = "mm"
	Micrometer DistanceUnit = "um"
	Nanometer  DistanceUnit = "nm"
	Picometer  DistanceUnit = "pm"
	Inch       DistanceUnit = "inch"
	Feet       DistanceUnit = "feet"
	Mile       DistanceUnit = "mile"
	Pixels     DistanceUnit = "pixels"
)

// Angle units.
type AngleUnit string

const (
	Degree AngleUnit = "degree"
	Radian AngleUnit = "radian"
)

// Gain units. Linear maps a normalized range onto (-inf, 0dB]; Midigain
// follows the MIDI-adapted gain mapping; Decibel is clipped to a minimum
// headroom value while DecibelRaw is not.
type GainUnit string

const (
	Linear     GainUnit = "linear"
	Midigain   GainUnit = "midigain"
	Decibel    GainUnit = "db"
	DecibelRaw GainUnit = "db-raw"
)

// Time and pitch units.
type TimeUnit string

const (
	Second      TimeUnit = "second"
	Bark        TimeUnit = "bark"
	BPM         TimeUnit = "bpm"
	Cents       TimeUnit = "cents"
	Hertz       TimeUnit = "hz"
	Mel         TimeUnit = "mel"
	MIDINote    TimeUnit = "midinote"
	Millisecond TimeUnit = "ms"
	Speed       TimeUnit = "speed"
	Samples     TimeUnit = "samples"
)

// Speed units.
type SpeedUnit string

const (
	MetersPerSecond SpeedUnit = "m/s"
	MilesPerHour    SpeedUnit = "mph"
	KilometersPerHr SpeedUnit = "km/h"
	Knots           SpeedUnit = "kn"
	FeetPerSecond   SpeedUnit = "ft/s"
	FeetPerHour     SpeedUnit = "ft/h"
	PixelsPerSecond SpeedUnit = "pix/s"
)

// Distance builds a distance unit.
func Distance(u DistanceUnit) Unit { return Unit{category: "distance", name: string(u)} }

// Angle builds an angle unit.
func Angle(u AngleUnit) Unit { return Unit{category: "angle", name: string(u)} }

// Gain builds a gain unit.
func Gain(u GainUnit) Unit { return Unit{category: "gain", name: string(u)} }

// Time builds a time unit.
func Time(u TimeUnit) Unit { return Unit{category: "time", name: string(u)} }

// MotionSpeed builds a speed unit.
func MotionSpeed(u SpeedUnit) Unit { return Unit{category: "speed", name: string(u)} }

// known maps each category to the set of valid unit names within it.
var known = map[string]map[string]bool{
	"distance": setOf("m", "km", "dm", "cm", "mm", "um", "nm", "pm", "inch", "feet", "mile", "pixels"),
	"angle":    setOf("degree", "radian"),
	"gain":     setOf("linear", "midigain", "db", "db-raw"),
	"time":     setOf("second", "bark", "bpm", "cents", "hz", "mel", "midinote", "ms", "speed", "samples"),
	"speed":    setOf("m/s", "mph", "km/h", "kn", "ft/s", "ft/h", "pix/s"),
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Parse converts a dotted "category.name" string into a Unit.
// Only the first dot separates category from name ("speed.km/h").
func Parse(s string) (Unit, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			continue
		}
		category, name := s[:i], s[i+1:]
		names, ok := known[category]
		if !ok {
			return Unit{}, fmt.Errorf("%w: category %q", ErrUnknownUnit, category)
		}
		if !names[name] {
			return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
		}
		return Unit{category: category, name: name}, nil
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

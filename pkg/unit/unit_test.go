package unit

import (
	"encoding/json"
	"testing"
)

func TestUnitString(t *testing.T) {
	cases := []struct {
		name string
		unit Unit
		want string
	}{
		{"DistanceCm", Distance(Centimeter), "distance.cm"},
		{"DistanceKm", Distance(Kilometer), "distance.km"},
		{"AngleDegree", Angle(Degree), "angle.degree"},
		{"GainDbRaw", Gain(DecibelRaw), "gain.db-raw"},
		{"TimeSamples", Time(Samples), "time.samples"},
		{"SpeedKmh", MotionSpeed(KilometersPerHr), "speed.km/h"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.unit.String(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestUnitJSON(t *testing.T) {
	data, err := json.Marshal(MotionSpeed(MetersPerSecond))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"speed.m/s"` {
		t.Errorf("unexpected encoding: %s", data)
	}

	var u Unit
	if err := json.Unmarshal([]byte(`"distance.cm"`), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if u != Distance(Centimeter) {
		t.Errorf("expected distance.cm, got %s", u)
	}
}

func TestParseRoundTrip(t *testing.T) {
	units := []Unit{
		Distance(Meter),
		Angle(Radian),
		Gain(Decibel),
		Time(BPM),
		MotionSpeed(KilometersPerHr),
	}

	for _, u := range units {
		parsed, err := Parse(u.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", u, err)
		}
		if parsed != u {
			t.Errorf("round trip mismatch: %s != %s", parsed, u)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"invalid.string",
		"distance.lightyear",
		"nodots",
		"",
	}

	for _, s := range cases {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestZeroUnit(t *testing.T) {
	var u Unit
	if !u.IsZero() {
		t.Error("zero Unit should report IsZero")
	}
	if Distance(Meter).IsZero() {
		t.Error("constructed Unit should not report IsZero")
	}
}

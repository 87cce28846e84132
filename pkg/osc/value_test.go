package osc

import (
	"encoding/json"
	"testing"
)

func TestTypeTags(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		tag   string
	}{
		{"Int", Int(42), "i"},
		{"Long", Long(42), "l"},
		{"Float", Float(1.5), "f"},
		{"Double", Double(1.5), "d"},
		{"String", String("hi"), "s"},
		{"Blob", Blob{0x01}, "b"},
		{"Char", Char('x'), "c"},
		{"BoolTrue", Bool(true), "T"},
		{"BoolFalse", Bool(false), "F"},
		{"TimeTag", TimeTag(0), "t"},
		{"Nil", Nil{}, "N"},
		{"Impulse", Impulse{}, "I"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.TypeTag(); got != tc.tag {
				t.Errorf("expected tag %q, got %q", tc.tag, got)
			}
		})
	}
}

func TestTypeTagOf(t *testing.T) {
	tag := TypeTagOf([]Value{Float(0), Float(0), Int(0)})
	if tag != "ffi" {
		t.Errorf("expected tag ffi, got %s", tag)
	}

	if tag := TypeTagOf(nil); tag != "" {
		t.Errorf("expected empty tag for no values, got %q", tag)
	}
}

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"Int", Int(123), "123"},
		{"Float", Float(1.5), "1.5"},
		{"FloatWhole", Float(1.0), "1"},
		{"Double", Double(2.25), "2.25"},
		{"String", String("distance"), `"distance"`},
		{"Blob", Blob{1, 2, 255}, "[1,2,255]"},
		{"Char", Char('c'), `"c"`},
		{"BoolTrue", Bool(true), "true"},
		{"BoolFalse", Bool(false), "false"},
		{"Nil", Nil{}, "null"},
		{"Impulse", Impulse{}, "null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.value)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMarshalValueSlice(t *testing.T) {
	got, err := json.Marshal([]Value{Float(1), String("a"), Bool(true)})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(got) != `[1,"a",true]` {
		t.Errorf("unexpected encoding: %s", got)
	}
}

func TestFromArgument(t *testing.T) {
	cases := []struct {
		name string
		arg  any
		want Value
	}{
		{"int32", int32(7), Int(7)},
		{"int64", int64(7), Long(7)},
		{"float32", float32(1.5), Float(1.5)},
		{"float64", float64(1.5), Double(1.5)},
		{"string", "s", String("s")},
		{"bool", true, Bool(true)},
		{"nil", nil, Nil{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromArgument(tc.arg)
			if err != nil {
				t.Fatalf("FromArgument failed: %v", err)
			}
			if got.TypeTag() != tc.want.TypeTag() {
				t.Errorf("expected tag %s, got %s", tc.want.TypeTag(), got.TypeTag())
			}
		})
	}

	t.Run("blob", func(t *testing.T) {
		got, err := FromArgument([]byte{1, 2})
		if err != nil {
			t.Fatalf("FromArgument failed: %v", err)
		}
		if got.TypeTag() != "b" {
			t.Errorf("expected tag b, got %s", got.TypeTag())
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := FromArgument(struct{}{}); err == nil {
			t.Fatal("expected error for unsupported argument type")
		}
	})
}

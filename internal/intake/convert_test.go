// ABOUTME: Tests for raw token conversion.
// ABOUTME: Covers the skip sentinel, empty input, parse failures and list splitting.
package intake

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"", "", false},
		{"   ", "", false},
		{"skip", "", false},
		{"SKIP", "", false},
		{" Skip ", "", false},
		{"sKiP", "", false},
		{"skipping", "skipping", true},
		{" 42 ", "42", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSkipAndEmptyAreAbsentForEveryType(t *testing.T) {
	for _, input := range []string{"", "  ", "skip", "Skip", "SKIP", "\tskip\n"} {
		if v, o := ParseInt(input); v != nil || o != Skipped {
			t.Errorf("ParseInt(%q) = (%v, %s), want (nil, skipped)", input, v, o)
		}
		if v, o := ParseFloat(input); v != nil || o != Skipped {
			t.Errorf("ParseFloat(%q) = (%v, %s), want (nil, skipped)", input, v, o)
		}
		if v, o := ParseString(input); v != nil || o != Skipped {
			t.Errorf("ParseString(%q) = (%v, %s), want (nil, skipped)", input, v, o)
		}
		if v := ParseList(input); v != nil {
			t.Errorf("ParseList(%q) = %v, want nil", input, v)
		}
	}
}

func TestParseIntInvalid(t *testing.T) {
	for _, input := range []string{"abc", "sixty", "12.5", "1e3", "--1"} {
		v, o := ParseInt(input)
		if v != nil || o != Invalid {
			t.Errorf("ParseInt(%q) = (%v, %s), want (nil, invalid)", input, v, o)
		}
	}
}

func TestParseFloatInvalid(t *testing.T) {
	for _, input := range []string{"abc", "1.2.3", "NaN", "inf", "-Inf", "0x1p4", "0X10", "-0x1p-2", "0x1_0p0", "1_000.5"} {
		v, o := ParseFloat(input)
		if v != nil || o != Invalid {
			t.Errorf("ParseFloat(%q) = (%v, %s), want (nil, invalid)", input, v, o)
		}
	}
}

func TestParseValid(t *testing.T) {
	if v, o := ParseInt(" 28 "); o != Present || *v != 28 {
		t.Errorf("ParseInt(\" 28 \") = (%v, %s), want 28", v, o)
	}
	if v, o := ParseInt("-5"); o != Present || *v != -5 {
		t.Errorf("ParseInt(\"-5\") = (%v, %s), want -5 (no bound checks)", v, o)
	}
	if v, o := ParseFloat("45.2"); o != Present || *v != 45.2 {
		t.Errorf("ParseFloat(\"45.2\") = (%v, %s), want 45.2", v, o)
	}
	if v, o := ParseFloat("1e2"); o != Present || *v != 100 {
		t.Errorf("ParseFloat(\"1e2\") = (%v, %s), want 100", v, o)
	}
	if v, o := ParseFloat("65"); o != Present || *v != 65 {
		t.Errorf("ParseFloat(\"65\") = (%v, %s), want 65", v, o)
	}
	if v, o := ParseString("  Running "); o != Present || *v != "Running" {
		t.Errorf("ParseString = (%v, %s), want Running", v, o)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"weight_loss,muscle_gain,endurance", []string{"weight_loss", "muscle_gain", "endurance"}},
		{" running , yoga ", []string{"running", "yoga"}},
		{"single", []string{"single"}},
		{"a,,b,", []string{"a", "b"}},
		{"skip", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if Present.String() != "present" || Skipped.String() != "skipped" || Invalid.String() != "invalid" {
		t.Error("unexpected Outcome names")
	}
}

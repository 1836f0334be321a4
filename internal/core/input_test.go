package core

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		expected Action
	}{
		{"left", ActionLeft},
		{"right", ActionRight},
		{"down", ActionSoftDrop},
		{"soft_drop", ActionSoftDrop},
		{"rotate", ActionRotate},
		{"pause", ActionPause},
		{"start", ActionStart},
		{"restart", ActionStart},
		{"quit", ActionQuit},
		{"hard_drop", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAction(tc.name); got != tc.expected {
				t.Errorf("ParseAction(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

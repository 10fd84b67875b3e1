package main

import "testing"

func TestParseUIFlagDefaultsToAuto(t *testing.T) {
	flag := parseCmd.Flags().Lookup("ui")
	if flag == nil {
		t.Fatalf("parse has no --ui flag")
	}
	if flag.DefValue != string(uiModeAuto) {
		t.Fatalf("--ui default = %q, want %q", flag.DefValue, uiModeAuto)
	}
	mode, err := readUIMode(flag.DefValue)
	if err != nil || mode != uiModeAuto {
		t.Fatalf("readUIMode(%q) = %q, %v", flag.DefValue, mode, err)
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeAuto},
		{"auto", uiModeAuto},
		{" ON ", uiModeOn},
		{"always", uiModeOn},
		{"off", uiModeOff},
		{"never", uiModeOff},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if _, err := readUIMode("fancy"); err == nil {
		t.Fatalf("readUIMode accepted an unknown value")
	}
	if shouldUseTUI(uiModeOff) || !shouldUseTUI(uiModeOn) {
		t.Fatalf("explicit on/off ignored")
	}
}

package app

import "testing"

// TestDetermineLogLevel verifies the log level precedence rules.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"env level", Config{LogLevel: "warn"}, "warn"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both verbose and quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit beats verbose", Config{LogLevel: "error", Verbose: true}, "error"},
		{"invalid falls back", Config{LogLevel: "chatty"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestValidateLogLevel verifies level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%s) = %s", level, got)
		}
	}
	if got := validateLogLevel("nope"); got != "info" {
		t.Errorf("validateLogLevel(nope) = %s, want info", got)
	}
}

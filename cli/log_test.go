package cli

import (
	"os"
	"testing"

	"github.com/ardnew/argp/argp"
	"github.com/ardnew/argp/log"
)

func TestScanBool(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantValue bool
		wantOK    bool
	}{
		{"absent", []string{"flag"}, false, false},
		{"bare", []string{"--log-pretty"}, true, true},
		{"negated", []string{"--no-log-pretty"}, false, true},
		{"assigned_false", []string{"--log-pretty=false"}, false, true},
		{"negated_assigned_false", []string{"--no-log-pretty=false"}, true, true},
		{"invalid", []string{"--log-pretty=maybe"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := scanBool(argp.From(tt.args...), "log-pretty")
			if value != tt.wantValue || ok != tt.wantOK {
				t.Errorf("scanBool(%q) = (%v, %v), want (%v, %v)",
					tt.args, value, ok, tt.wantValue, tt.wantOK)
			}
		})
	}
}

func TestLogConfigScan(t *testing.T) {
	defer log.Config(log.WithDefaults(os.Stderr))

	var f logConfig

	args := []string{
		"flag", "--log-level", "debug", "--no-log-pretty",
		"--log-caller=true", "--", "--log-format=json",
	}

	f.scan(args)

	if f.Level != "debug" {
		t.Errorf("Level = %q, want %q", f.Level, "debug")
	}

	if f.Format != "" {
		t.Errorf("Format = %q, want it unset after --", f.Format)
	}

	if f.Pretty {
		t.Error("Pretty = true, want false")
	}

	if !f.Caller {
		t.Error("Caller = false, want true")
	}

	if len(args) != 7 || args[1] != "--log-level" {
		t.Errorf("scan modified its arguments: %q", args)
	}
}

func TestLogConfigVars(t *testing.T) {
	vars := (&logConfig{}).vars()

	for _, key := range []string{"logLevelEnum", "logFormatEnum"} {
		if vars[key] == "" {
			t.Errorf("vars()[%q] is empty", key)
		}
	}
}

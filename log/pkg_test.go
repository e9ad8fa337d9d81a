package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelDebug), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected output to contain message %q, got: %s", tt.msg, output)
			}
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_Caller_PointsAtCallSite(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithCaller(true))

	Info("where")

	if !strings.Contains(buf.String(), "pkg_test.go") {
		t.Errorf("expected source to name pkg_test.go, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelInfo + 2, "info+2"},
		{LevelError + 4, "error+4"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat(" TEXT ") != FormatText {
		t.Error("expected text")
	}
	if ParseFormat("json") != FormatJSON {
		t.Error("expected json")
	}
	if ParseFormat("yaml") != DefaultFormat {
		t.Error("expected default format for unknown name")
	}
}

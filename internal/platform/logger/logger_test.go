package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"debug":     zerolog.DebugLevel,
		"INFO":      zerolog.InfoLevel,
		"warn":      zerolog.WarnLevel,
		"warning":   zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"":          zerolog.InfoLevel,
		" garbage ": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")
	t.Setenv("SERVICE_NAME", "billing")
	o := FromEnv()
	if o.Level != "debug" || o.Format != "console" || !o.WithCaller || o.SampleEvery != 5 || o.Service != "billing" {
		t.Fatalf("FromEnv = %+v", o)
	}
}

// Init is process wide so every assertion on output lives in this one test
func TestInitAndRequestFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "json", Service: "paysystem-test", Writer: &buf,
		StaticFields: map[string]string{"build": "test"}})

	ctx := WithRequest(context.Background(), "req-1", "user-9")
	C(ctx).Info().Msg("scoped")
	Named("charges").Info().Msg("named")
	Get().Debug().Msg("filtered out")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), buf.String())
	}
	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first["request_id"] != "req-1" || first["user_id"] != "user-9" || first["service"] != "paysystem-test" {
		t.Fatalf("scoped line = %v", first)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second["component"] != "charges" || second["build"] != "test" {
		t.Fatalf("named line = %v", second)
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return root")
	}
}

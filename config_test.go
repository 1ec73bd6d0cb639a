package escapetime

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"escapetime/viewport"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1200 || cfg.MaxIter != 5000 || cfg.Palette != PaletteModulo {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestConfig_Workers(t *testing.T) {
	tests := []struct {
		workers, height, want int
	}{
		{4, 100, 4},
		{4, 2, 2},
		{0, 1, 1},
		{-1, 1 << 20, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		cfg := Config{Width: 1, Height: tt.height, Workers: tt.workers}
		if got := cfg.workers(); got != tt.want {
			t.Errorf("workers(%d, height %d) = %d, want %d", tt.workers, tt.height, got, tt.want)
		}
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := Render(context.Background(), smallConfig(8, 4, 10), viewport.Global); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"render started", "render finished", "workers="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"escapetime"
	"escapetime/rasterfile"
	"escapetime/viewport"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.cfg != escapetime.DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", opts.cfg)
	}
	if opts.window != viewport.Global {
		t.Errorf("window = %v, want global", opts.window)
	}
	if opts.output != "output.tga" {
		t.Errorf("output = %q", opts.output)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		check  func(t *testing.T, o options)
		wantIs error
	}{
		{
			name: "scale multiplies size",
			args: []string{"-size", "10x5", "-scale", "7"},
			check: func(t *testing.T, o options) {
				if o.cfg.Width != 70 || o.cfg.Height != 35 {
					t.Errorf("size = %dx%d, want 70x35", o.cfg.Width, o.cfg.Height)
				}
			},
		},
		{
			name: "explicit bounds",
			args: []string{"-bounds", "-1, 1, 0.5, -0.5", "-palette", "edward", "-iter", "0"},
			check: func(t *testing.T, o options) {
				want := viewport.Window{Left: -1, Right: 1, Top: 0.5, Bottom: -0.5}
				if o.window != want {
					t.Errorf("window = %v, want %v", o.window, want)
				}
				if o.cfg.Palette != escapetime.PaletteEdward || o.cfg.MaxIter != 0 {
					t.Errorf("cfg = %+v", o.cfg)
				}
			},
		},
		{
			name: "centre and span",
			args: []string{"-center", "0,0", "-span", "2", "-size", "20x10"},
			check: func(t *testing.T, o options) {
				want := viewport.Window{Left: -1, Right: 1, Top: 0.5, Bottom: -0.5}
				if o.window != want {
					t.Errorf("window = %v, want %v", o.window, want)
				}
			},
		},
		{
			name: "preset",
			args: []string{"-window", "small", "-o", "x.bmp"},
			check: func(t *testing.T, o options) {
				if o.window != viewport.Small || o.output != "x.bmp" {
					t.Errorf("window = %v, output = %q", o.window, o.output)
				}
			},
		},
		{name: "unknown palette", args: []string{"-palette", "rainbow"}, wantIs: escapetime.ErrUnknownPalette},
		{name: "unknown window", args: []string{"-window", "nowhere"}, wantIs: viewport.ErrInvalidViewport},
		{name: "degenerate bounds", args: []string{"-bounds", "1,1,1,-1"}, wantIs: viewport.ErrInvalidViewport},
		{name: "bad size", args: []string{"-size", "wide"}, wantIs: escapetime.ErrInvalidDimensions},
		{name: "zero scale", args: []string{"-scale", "0"}, wantIs: escapetime.ErrInvalidDimensions},
		{name: "negative iter", args: []string{"-iter", "-4"}, wantIs: escapetime.ErrInvalidIterations},
		{name: "png output", args: []string{"-o", "x.png"}, wantIs: rasterfile.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args, io.Discard)
			if tt.wantIs != nil {
				if !errors.Is(err, tt.wantIs) {
					t.Fatalf("parseArgs error = %v, want %v", err, tt.wantIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs: %v", err)
			}
			tt.check(t, opts)
		})
	}

	if _, err := parseArgs([]string{"-bounds", "1,2,3"}, io.Discard); err == nil {
		t.Error("three bounds accepted")
	}
	if _, err := parseArgs([]string{"extra"}, io.Discard); err == nil {
		t.Error("positional argument accepted")
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mandel.tga")
	var stdout, stderr bytes.Buffer

	args := []string{"-size", "32x20", "-iter", "100", "-o", out, "-v"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", err, stderr.String())
	}

	for _, want := range []string{"Computing the Mandelbrot set took", "Wrote " + out, "of the image are black", "The area of the Mandelbrot set is"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout.String())
		}
	}
	if !strings.Contains(stderr.String(), "render finished") {
		t.Errorf("debug log missing from stderr:\n%s", stderr.String())
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(18 + 32*20*3); info.Size() != want {
		t.Errorf("file size = %d, want %d", info.Size(), want)
	}
}

func TestRun_WriteFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "x.tga")
	err := run(context.Background(), []string{"-size", "4x4", "-iter", "4", "-o", out}, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("run succeeded writing into a missing directory")
	}
	if !strings.Contains(err.Error(), "rasterfile: create file") {
		t.Errorf("error = %v", err)
	}
}

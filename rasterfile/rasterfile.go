// Package rasterfile writes images as flat, uncompressed 24-bit truecolor
// files.
package rasterfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no writer.
	ErrUnsupportedFormat = errors.New("rasterfile: unsupported format")

	// ErrTooLarge is returned when the image does not fit the format header.
	ErrTooLarge = errors.New("rasterfile: image too large for format")

	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("rasterfile: empty image")
)

// Format is an output file format.
type Format int

const (
	// FormatTGA is Truevision TGA, image type 2 (uncompressed truecolor).
	FormatTGA Format = iota
	// FormatBMP is a Windows bitmap with 24 bits per pixel.
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatTGA:
		return "tga"
	case FormatBMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension. A missing
// extension means TGA.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga", "":
		return FormatTGA, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// rgbImage is implemented by images that can hand out channels without
// going through color.Color.
type rgbImage interface {
	RGBAt(x, y int) (r, g, b uint8)
}

// TGA header layout.
const (
	tgaHeaderSize    = 18
	tgaTypeTrueColor = 2
	tgaBitsPerPixel  = 24
	tgaTopLeft       = 0x20 // image descriptor bit 5: first row is the top row
)

// WriteTGA writes img as an uncompressed 24-bit TGA: an 18-byte header
// followed by rows from top to bottom, each pixel stored blue, green, red.
// Both dimensions must fit in 16 bits.
func WriteTGA(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return fmt.Errorf("%w: tga: %dx%d exceeds %d", ErrTooLarge, width, height, math.MaxUint16)
	}

	var hdr [tgaHeaderSize]byte
	hdr[2] = tgaTypeTrueColor
	binary.LittleEndian.PutUint16(hdr[12:14], uint16(width))
	binary.LittleEndian.PutUint16(hdr[14:16], uint16(height))
	hdr[16] = tgaBitsPerPixel
	hdr[17] = tgaTopLeft
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("rasterfile: write tga header: %w", err)
	}

	src, fast := img.(rgbImage)
	row := make([]byte, 3*width)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for i := 0; i < width; i++ {
			x := b.Min.X + i
			var r, g, bl uint8
			if fast {
				r, g, bl = src.RGBAt(x, y)
			} else {
				cr, cg, cb, _ := img.At(x, y).RGBA()
				r, g, bl = uint8(cr>>8), uint8(cg>>8), uint8(cb>>8)
			}
			row[3*i], row[3*i+1], row[3*i+2] = bl, g, r
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("rasterfile: write tga row %d: %w", y-b.Min.Y, err)
		}
	}
	return nil
}

// WriteBMP writes img as an uncompressed 24-bit BMP.
func WriteBMP(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("rasterfile: encode bmp: %w", err)
	}
	return nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatTGA:
		return WriteTGA(w, img)
	case FormatBMP:
		return WriteBMP(w, img)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rasterfile: create file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("rasterfile: flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rasterfile: close file: %w", err)
	}
	return nil
}

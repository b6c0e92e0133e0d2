// Package encode writes raster images to files.
package encode

import (
	"bufio"
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"wpgen/raster"
)

// Formats lists the supported output formats, also used as file extensions.
var Formats = []string{"png", "gif", "jpeg", "bmp", "tiff", "ppm", "pcx"}

// Supported reports whether format is one of Formats.
func Supported(format string) bool {
	return slices.Contains(Formats, format)
}

// Write encodes img to w.
func Write(w io.Writer, img raster.Image, format string) error {
	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, raster.AsImage(img)); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}
	case "gif":
		if err := gif.Encode(w, raster.AsImage(img), nil); err != nil {
			return fmt.Errorf("could not encode GIF: %w", err)
		}
	case "jpeg":
		if err := jpeg.Encode(w, raster.AsImage(img), &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("could not encode JPEG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, raster.AsImage(img)); err != nil {
			return fmt.Errorf("could not encode BMP: %w", err)
		}
	case "tiff":
		if err := tiff.Encode(w, raster.AsImage(img), nil); err != nil {
			return fmt.Errorf("could not encode TIFF: %w", err)
		}
	case "ppm":
		if err := writePPM(w, img); err != nil {
			return fmt.Errorf("could not encode PPM: %w", err)
		}
	case "pcx":
		if err := writePCX(w, img); err != nil {
			return fmt.Errorf("could not encode PCX: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

// Save writes img to dir/name.format. The data goes to a temporary file in
// dir first and is renamed into place only once fully written, so readers
// never see a partial file.
func Save(img raster.Image, format, dir, name string) (path string, err error) {
	if !Supported(format) {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}

	destName := fmt.Sprintf("%s.%s", name, format)
	outFile, err := os.CreateTemp(dir, destName+".*")
	if err != nil {
		return "", fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}

	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			path = filepath.Join(dir, destName)
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			path = ""
			os.Remove(outFile.Name())
		}
	}()

	bw := bufio.NewWriter(outFile)
	if err = Write(bw, img, format); err != nil {
		return "", fmt.Errorf("could not write %q: %w", destName, err)
	}
	if err = bw.Flush(); err != nil {
		return "", fmt.Errorf("could not write %q: %w", destName, err)
	}

	canRename = true
	return "", nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}

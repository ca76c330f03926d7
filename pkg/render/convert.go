package render

import (
	"bytes"
	"os/exec"
	"strconv"

	fberrors "github.com/ishidiag/fishbone/pkg/errors"
)

// converterBinary is the external SVG rasterizer, part of librsvg.
const converterBinary = "rsvg-convert"

// ToPDF converts SVG bytes to PDF.
// Needs librsvg installed: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale factor. A scale of
// 2.0 doubles the pixel dimensions of the SVG canvas.
// Needs librsvg installed: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "-z", strconv.FormatFloat(scale, 'f', 2, 64))
}

// ConverterAvailable reports whether the external converter is on PATH.
// Callers can check this up front instead of failing mid-render.
func ConverterAvailable() bool {
	_, err := exec.LookPath(converterBinary)
	return err == nil
}

func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !ConverterAvailable() {
		return nil, fberrors.New(fberrors.ErrCodeUnsupported,
			"%s export needs librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.Command(converterBinary, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeInternal, err, "%s: %s", converterBinary, stderr.String())
	}
	return stdout.Bytes(), nil
}

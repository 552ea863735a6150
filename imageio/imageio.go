// Package imageio moves rasters in and out of image files.
//
// Decoding understands PNG, GIF and JPEG through the standard library and
// BMP and TIFF through golang.org/x/image. Encoding picks the format from
// the file extension.
//
// Thresholding: a pixel whose luminance is at or above the threshold is
// blocked (true); Invert swaps that, for dark-on-light line art.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/floodfill/raster"
)

// Sentinel errors for image conversion.
var (
	// ErrUnknownFormat indicates an extension or format name with no encoder.
	ErrUnknownFormat = errors.New("imageio: unknown image format")
	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("imageio: image has no pixels")
	// ErrNilRaster indicates a nil Mask or Counts was passed.
	ErrNilRaster = errors.New("imageio: raster is nil")
)

// Format names an encoder.
type Format string

// Supported output formats.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	GIF  Format = "gif"
	JPEG Format = "jpeg"
)

// ParseFormat maps a format name or file extension (with or without the
// leading dot, any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "gif":
		return GIF, nil
	case "jpg", "jpeg":
		return JPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Decode reads an image in any supported format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	return img, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, format Format, img image.Image) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case GIF:
		return gif.Encode(w, img, nil)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Save encodes img into a new file at path, choosing the format from the
// extension.
func Save(path string, img image.Image) (err error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, format, img)
}

// ToMask thresholds img into a Mask the size of img's bounds.
// Column index is x - Bounds().Min.X, row index is y - Bounds().Min.Y.
func ToMask(img image.Image, threshold uint8, invert bool) (*raster.Mask, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	m, err := raster.NewMask(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for col := 0; col < b.Dx(); col++ {
		column := m.Column(col)
		for row := range column {
			g := color.GrayModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.Gray)
			column[row] = (g.Y >= threshold) != invert
		}
	}

	return m, nil
}

// MaskImage renders m as black (background) and white (blocked).
func MaskImage(m *raster.Mask) (*image.Gray, error) {
	if m == nil {
		return nil, ErrNilRaster
	}
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for col := 0; col < m.Width(); col++ {
		for row, v := range m.Column(col) {
			if v {
				img.Pix[row*img.Stride+col] = 0xff
			}
		}
	}

	return img, nil
}

// CountsImage renders c as a heat map: zero is black, the largest counter
// is white, everything else scales linearly in between.
func CountsImage(c *raster.Counts) (*image.Gray, error) {
	if c == nil {
		return nil, ErrNilRaster
	}
	img := image.NewGray(image.Rect(0, 0, c.Width(), c.Height()))
	hi := uint64(c.Max())
	if hi == 0 {
		return img, nil
	}
	for col := 0; col < c.Width(); col++ {
		for row, v := range c.Column(col) {
			img.Pix[row*img.Stride+col] = uint8(uint64(v) * 0xff / hi)
		}
	}

	return img, nil
}

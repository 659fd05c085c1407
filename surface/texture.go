package surface

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// defaultSVGSize is used when SVG viewBox has no size.
	defaultSVGSize = 512
	// maxRasterDim limits rasterized SVG so that huge viewBox values do not
	// exhaust memory.
	maxRasterDim = 4096
)

// Texture is an uploaded image together with its natural size.
type Texture struct {
	image *ebiten.Image
	Size  Vec2
}

// LoadTexture decodes encoded image and uploads it.
func LoadTexture(data []byte) (*Texture, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Texture{
		image: ebiten.NewImageFromImage(img),
		Size:  Vec2{float64(b.Dx()), float64(b.Dy())},
	}, nil
}

// Decode decodes raster (png, jpeg, gif, bmp, tiff, webp) or SVG image.
// Raster images are oriented according to their EXIF data.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("image data is empty")
	}
	if IsSVG(data) {
		return rasterizeSVG(data)
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect image type: %w", err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("unsupported image type '%s'", kind.MIME.Value)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", kind.Extension, err)
	}
	return img, nil
}

// IsSVG reports whether data looks like SVG document.
func IsSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg")) && !bytes.ContainsRune(head[:min(len(head), 16)], 0)
}

// rasterizeSVG renders SVG at its viewBox size on white background.
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse svg image: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 {
		w = defaultSVGSize
	}
	if h <= 0 {
		h = defaultSVGSize
	}
	if w > maxRasterDim || h > maxRasterDim {
		s := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
		w = max(int(math.Round(float64(w)*s)), 1)
		h = max(int(math.Round(float64(h)*s)), 1)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return dst, nil
}

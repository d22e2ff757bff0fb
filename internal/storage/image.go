package storage

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the formats admins actually upload.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxImageDim = 1024
	webpQuality = 80
)

// EncodeWebP decodes raw (png/jpeg/gif/webp), downscales anything
// larger than maxImageDim on its longest side, and re-encodes as webp.
func EncodeWebP(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// Not one of the stdlib formats; webp uploads land here.
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageDim && h <= maxImageDim {
		return img
	}

	if w >= h {
		h = h * maxImageDim / w
		w = maxImageDim
	} else {
		w = w * maxImageDim / h
		h = maxImageDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

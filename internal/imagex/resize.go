// Package imagex bounds photo payloads before they are persisted: decode,
// scale the long edge down to a fixed maximum, re-encode as JPEG.
package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxLongEdge is the longest side a stored photo may have, in pixels.
	MaxLongEdge = 900

	// JPEGQuality is the re-encode quality for stored photos.
	JPEGQuality = 80
)

// Thumbnail decodes a JPEG/PNG/GIF payload, scales it so the longer side does
// not exceed maxEdge (aspect ratio preserved; images already within bounds
// are not upscaled), and re-encodes it as JPEG.
func Thumbnail(data []byte, maxEdge int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	long := w
	if h > long {
		long = h
	}

	if long > maxEdge && long > 0 {
		scale := float64(maxEdge) / float64(long)
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, src, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return out.Bytes(), nil
}

// Dimensions reports the pixel size of an encoded image.
func Dimensions(data []byte) (w, h int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxImageEdge = 1600
	webpQuality  = 82
)

// ConvertImage re-encodes a JPEG or PNG payload to webp, shrinking it
// so its longest edge fits maxImageEdge. Non-image payloads (and
// already-webp uploads) are passed through untouched.
func ConvertImage(data []byte, contentType string) ([]byte, bool) {
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return nil, false
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	w, h := FitWithin(src.Bounds().Dx(), src.Bounds().Dy(), maxImageEdge)

	out := src
	if w != src.Bounds().Dx() || h != src.Bounds().Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, out, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, false
	}

	return buf.Bytes(), true
}

// FitWithin scales (w, h) down proportionally so that the longest edge
// is at most maxEdge. Dimensions already inside the bound are kept.
func FitWithin(w, h, maxEdge int) (int, int) {
	if w <= maxEdge && h <= maxEdge {
		return w, h
	}

	if w >= h {
		return maxEdge, h * maxEdge / w
	}
	return w * maxEdge / h, maxEdge
}

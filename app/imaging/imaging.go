package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

const (
	maxDimension = 1280
	jpegQuality  = 80
)

// Normalize validates that r holds a JPEG or PNG (sniffed, the client
// header is not trusted), downscales anything wider or taller than
// maxDimension and re-encodes the result as JPEG.
func Normalize(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	switch mime := http.DetectContentType(data); mime {
	case "image/jpeg", "image/png":
	default:
		return nil, fmt.Errorf("unsupported image type %s", mime)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleDown(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	nw, nh := maxDimension, maxDimension
	if w > h {
		nh = h * maxDimension / w
	} else {
		nw = w * maxDimension / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

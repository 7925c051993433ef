package cards

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	// Register decoders for the accepted logo formats.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// MaxLogoDimension is the longest side a stored logo may have. Larger
// logos are scaled down and re-encoded as PNG.
const MaxLogoDimension = 512

// Uploads declaring a larger canvas are rejected before decoding, since the
// decoders allocate the full pixel buffer from the header.
const (
	maxSourceDimension = 4096
	maxSourcePixels    = 16 << 20
)

// NormalizeLogo checks that a logo data URL holds the image type it claims
// and shrinks it to MaxLogoDimension. An empty logo is returned unchanged.
func NormalizeLogo(dataURL string) (string, error) {
	if dataURL == "" {
		return "", nil
	}

	mimeType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	if !validateMagicBytes(data, mimeType) {
		return "", fmt.Errorf("logo content does not match %s", mimeType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding logo header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 ||
		cfg.Width > maxSourceDimension || cfg.Height > maxSourceDimension ||
		cfg.Width*cfg.Height > maxSourcePixels {
		return "", fmt.Errorf("logo is %dx%d, larger than %dx%d", cfg.Width, cfg.Height, maxSourceDimension, maxSourceDimension)
	}
	if cfg.Width <= MaxLogoDimension && cfg.Height <= MaxLogoDimension {
		return dataURL, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding logo: %w", err)
	}

	// Keep the aspect ratio.
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newW, newH := MaxLogoDimension, MaxLogoDimension
	if w > h {
		newH = max(1, h*MaxLogoDimension/w)
	} else {
		newW = max(1, w*MaxLogoDimension/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("encoding logo: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeDataURL splits a base64 data URL into its MIME type and payload.
func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("logo is not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("logo data URL has no payload")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("logo data URL is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding logo payload: %w", err)
	}
	return strings.ToLower(mimeType), data, nil
}

// validateMagicBytes checks that the content's magic bytes match the
// declared MIME type.
func validateMagicBytes(data []byte, declaredMIME string) bool {
	switch declaredMIME {
	case "image/jpeg":
		return len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF
	case "image/png":
		return len(data) >= 8 &&
			data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 &&
			data[4] == 0x0D && data[5] == 0x0A && data[6] == 0x1A && data[7] == 0x0A
	case "image/gif":
		return len(data) >= 6 && string(data[:3]) == "GIF"
	case "image/webp":
		return len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP"
	default:
		return false
	}
}

package render

import (
	"encoding/base64"
	"log/slog"

	"github.com/skip2/go-qrcode"
)

// qrCodeDataURL renders content as a PNG QR code embedded in a data URL.
// Returns empty string on failure (content too long for a QR, etc.) so the
// caller can simply omit the image.
func qrCodeDataURL(content string) string {
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		slog.Debug("failed to generate QR code", "error", err)
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

package png

import "github.com/skip2/go-qrcode"

const defaultSize = 300

// Qr renders content as a PNG QR code, size pixels on a side.
func Qr(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

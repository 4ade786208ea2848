package lib

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrImageSize is the edge length in pixels of generated QR images. Large
// enough to scan from a printed label at arm's length.
const qrImageSize = 320

// EncodeQRPNG renders url into a PNG QR code. Pure function: no I/O, and the
// decoded payload of the image always equals url exactly. Storage is the
// caller's concern.
func EncodeQRPNG(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr image: %w", err)
	}
	return png, nil
}

// DataURI wraps PNG bytes as an inline data URI, the storage format for QR
// images: the image lives in the qr_codes row itself and can be dropped into
// an <img src> without a file store.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

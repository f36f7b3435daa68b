package invitations

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// EncodingError wraps a failure to render the QR image. Creation treats it as
// fatal: no invitation is stored without its QR code.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("qr encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// EncodeQR renders the given URL as a PNG QR code and returns it as a data
// URL, ready to drop into an <img> src.
func EncodeQR(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.High, qrImageSize)
	if err != nil {
		return "", &EncodingError{Err: err}
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

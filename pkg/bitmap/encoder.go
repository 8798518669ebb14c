package bitmap

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes src as a lossless PNG.
func Encode(src image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, src); err != nil {
		return nil, errors.Wrap(err, "png encode")
	}
	return buf.Bytes(), nil
}

// EncodeBase64 is Encode followed by standard base64.
func EncodeBase64(src image.Image) (string, error) {
	bs, err := Encode(src)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bs), nil
}

func Decode(bs []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "png decode")
	}
	return img, nil
}

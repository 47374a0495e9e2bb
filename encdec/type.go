package encdec

import "io"

// EncoderDecoder is an interface that defines methods for encoding and decoding data.
type EncoderDecoder interface {
	Encode(w io.Writer, value any) error
	Decode(r io.Reader, value any) error
}

// StringEncoderDecoder turns a message into another string and back.
// Both directions can fail, e.g. when a message does not fit any grid.
type StringEncoderDecoder interface {
	Encode(plain string) (string, error)
	Decode(encoded string) (string, error)
}

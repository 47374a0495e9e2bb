package spiralcode

import (
	"errors"

	"github.com/ppipada/spiralcode-go/spiralerrors"
)

// MinMessageLength is the shortest message Encode accepts.
const MinMessageLength = 2

// Failure markers substituted for lines a batch could not process.
const (
	EncodeFailurePrefix = "FE::"
	DecodeFailurePrefix = "FD::"
)

// Operation is the direction of a codec call.
type Operation string

const (
	OpEncode Operation = "encode"
	OpDecode Operation = "decode"
)

var (
	// ErrEmptyBatch is returned when a batch has no lines to process.
	ErrEmptyBatch = errors.New("batch has no messages to process")

	ErrSize       = spiralerrors.ErrSize
	ErrFormat     = spiralerrors.ErrFormat
	ErrEmptyInput = spiralerrors.ErrEmptyInput
)

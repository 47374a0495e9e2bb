// Package spiralcode hides a message in a square grid along an inward spiral
// and pads the rest of the grid with filler.
//
// Encode picks the smallest odd grid that holds the message (or validates an
// explicit size), writes the message along the spiral and dumps the grid
// row-major. Decode lays the string back out as a grid and replays the same
// spiral. This is obfuscation only, not encryption.
//
//	c, err := spiralcode.New()
//	encoded, err := c.Encode("HELLO")  // e.g. "QEXHOLJLB"
//	decoded, err := c.Decode(encoded)  // "HELLO"
package spiralcode

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppipada/spiralcode-go/encdec"
	"github.com/ppipada/spiralcode-go/filler"
	"github.com/ppipada/spiralcode-go/gridsize"
	"github.com/ppipada/spiralcode-go/spiralerrors"
	"github.com/ppipada/spiralcode-go/spiralgrid"
)

var _ encdec.StringEncoderDecoder = (*Codec)(nil)

// Codec encodes and decodes messages. Every call works on its own grid; the
// only state shared between calls is the filler source.
type Codec struct {
	filler     filler.Source
	alphabet   filler.Alphabet
	trimFiller bool
	logger     *zap.Logger
}

// Option defines a function type that applies a configuration option to the Codec.
type Option func(*Codec)

// WithFillerSource sets the source of filler bytes for unused cells.
func WithFillerSource(src filler.Source) Option {
	return func(c *Codec) {
		c.filler = src
	}
}

// WithTrimFiller makes Decode drop the trailing run of filler alphabet bytes.
// Only safe when messages never end in bytes from that alphabet.
func WithTrimFiller(trim bool) Option {
	return func(c *Codec) {
		c.trimFiller = trim
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// New initializes a Codec. Without options it draws uppercase filler from the
// process-wide random generator.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	if c.filler == nil {
		src, err := filler.NewRandom()
		if err != nil {
			return nil, err
		}
		c.filler = src
	}
	if c.logger == nil {
		return nil, errors.New("invalid logger")
	}

	c.alphabet = filler.Uppercase
	if a, ok := c.filler.(interface{ Alphabet() filler.Alphabet }); ok {
		c.alphabet = a.Alphabet()
	}
	return c, nil
}

// Encode hides message in the smallest grid that holds it.
func (c *Codec) Encode(message string) (string, error) {
	return c.EncodeWithSize(message, 0)
}

// EncodeWithSize hides message in a size x size grid. A size of 0 picks the
// minimum. The result is exactly size*size bytes long.
func (c *Codec) EncodeWithSize(message string, size int) (string, error) {
	if len(message) < MinMessageLength {
		return "", &spiralerrors.EmptyInputError{Length: len(message), Min: MinMessageLength}
	}

	n, err := gridsize.SizeFor(len(message), size)
	if err != nil {
		return "", fmt.Errorf("failed to size grid: %w", err)
	}

	grid, err := spiralgrid.New(n)
	if err != nil {
		return "", err
	}
	if err := grid.Write(message); err != nil {
		return "", fmt.Errorf("failed to write message: %w", err)
	}

	encoded := grid.Serialize(c.filler)
	c.logger.Debug("encoded message",
		zap.Int("length", len(message)),
		zap.Int("gridSize", n),
		zap.Int("capacity", gridsize.Capacity(n)),
	)
	return encoded, nil
}

// Decode reads a message back out of an encoded grid. The grid does not
// record the message length, so a message shorter than the grid capacity
// comes back followed by filler unless trimming is enabled.
func (c *Codec) Decode(encoded string) (string, error) {
	grid, err := spiralgrid.Load(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to load grid: %w", err)
	}

	decoded := grid.Read()
	if c.trimFiller {
		decoded = trimTrailing(decoded, c.alphabet)
	}
	c.logger.Debug("decoded message",
		zap.Int("encodedLength", len(encoded)),
		zap.Int("gridSize", grid.Size()),
		zap.Int("length", len(decoded)),
	)
	return decoded, nil
}

func trimTrailing(s string, a filler.Alphabet) string {
	end := len(s)
	for end > 0 && a.Contains(s[end-1]) {
		end--
	}
	return s[:end]
}

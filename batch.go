package spiralcode

import (
	"strings"

	"go.uber.org/zap"
)

// LineResult is the outcome for one line of a batch.
type LineResult struct {
	// 1-based position in the input.
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Failed bool   `json:"failed"`
	// Empty unless Failed.
	Error string `json:"error,omitempty"`
}

// BatchResult holds every line of an EncodeBatch or DecodeBatch call, in
// input order.
type BatchResult struct {
	Op    Operation    `json:"op"`
	Lines []LineResult `json:"lines"`
}

// Outputs returns one output line per input line.
func (b *BatchResult) Outputs() []string {
	out := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		out[i] = l.Output
	}
	return out
}

// Failures counts the lines replaced by a failure marker.
func (b *BatchResult) Failures() int {
	n := 0
	for _, l := range b.Lines {
		if l.Failed {
			n++
		}
	}
	return n
}

// EncodeAll encodes every line independently. Empty lines stay empty and a
// line that cannot be encoded becomes "FE::" followed by the line.
func (c *Codec) EncodeAll(lines []string) ([]string, error) {
	res, err := c.EncodeBatch(lines)
	if err != nil {
		return nil, err
	}
	return res.Outputs(), nil
}

// DecodeAll decodes every line independently. Empty lines stay empty and a
// line that cannot be decoded becomes "FD::" followed by the line.
func (c *Codec) DecodeAll(lines []string) ([]string, error) {
	res, err := c.DecodeBatch(lines)
	if err != nil {
		return nil, err
	}
	return res.Outputs(), nil
}

// EncodeBatch is EncodeAll with per-line detail.
func (c *Codec) EncodeBatch(lines []string) (*BatchResult, error) {
	return c.processAll(OpEncode, lines, c.Encode, EncodeFailurePrefix)
}

// DecodeBatch is DecodeAll with per-line detail.
func (c *Codec) DecodeBatch(lines []string) (*BatchResult, error) {
	return c.processAll(OpDecode, lines, c.Decode, DecodeFailurePrefix)
}

// IsFailureMarker reports whether a batch output line is a failure marker.
func IsFailureMarker(line string) bool {
	return strings.HasPrefix(line, EncodeFailurePrefix) ||
		strings.HasPrefix(line, DecodeFailurePrefix)
}

// FailureCount counts the failure markers among batch output lines.
func FailureCount(lines []string) int {
	n := 0
	for _, l := range lines {
		if IsFailureMarker(l) {
			n++
		}
	}
	return n
}

func (c *Codec) processAll(
	op Operation,
	lines []string,
	process func(string) (string, error),
	failurePrefix string,
) (*BatchResult, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyBatch
	}

	res := &BatchResult{Op: op, Lines: make([]LineResult, 0, len(lines))}
	for i, line := range lines {
		lr := LineResult{Line: i + 1, Input: line}
		if line == "" {
			res.Lines = append(res.Lines, lr)
			continue
		}

		out, err := process(line)
		if err != nil {
			c.logger.Warn("batch line failed",
				zap.String("op", string(op)),
				zap.Int("line", i+1),
				zap.Error(err),
			)
			lr.Output = failurePrefix + line
			lr.Failed = true
			lr.Error = err.Error()
		} else {
			lr.Output = out
		}
		res.Lines = append(res.Lines, lr)
	}

	c.logger.Info("batch processed",
		zap.String("op", string(op)),
		zap.Int("lines", len(lines)),
		zap.Int("failures", res.Failures()),
	)
	return res, nil
}

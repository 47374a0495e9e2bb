package gridsize

import (
	"fmt"

	"github.com/ppipada/spiralcode-go/spiralerrors"
)

const (
	// MinSize is the smallest usable grid dimension.
	MinSize = 3
	// MaxCells caps the number of cells, and therefore the encoded length.
	MaxCells = 999
	// MaxSize is the largest odd dimension whose square fits in MaxCells.
	MaxSize = 31
	// MaxMessageLength is the capacity of the largest grid.
	MaxMessageLength = (MaxSize*MaxSize + 1) / 2
)

// Capacity returns the number of cells the spiral visits in an n x n grid,
// i.e. the longest message that fits without truncation.
func Capacity(n int) int {
	return (n*n + 1) / 2
}

// MinimumSizeFor returns the smallest odd dimension >= MinSize whose capacity
// holds length characters.
func MinimumSizeFor(length int) (int, error) {
	n := max(ceilSqrt(length), MinSize)
	if n%2 == 0 {
		n++
	}
	for Capacity(n) < length {
		n += 2
	}
	if n*n > MaxCells {
		return 0, &spiralerrors.SizeError{
			Size:   n,
			Length: length,
			Reason: fmt.Sprintf("encoded length %d must be below %d", n*n, MaxCells+1),
		}
	}
	return n, nil
}

// Validate checks a grid dimension on its own and, when length > 0, against
// the message length it must hold.
func Validate(n, length int) error {
	switch {
	case n < MinSize:
		return &spiralerrors.SizeError{
			Size:   n,
			Length: length,
			Reason: fmt.Sprintf("minimum grid size is %dx%d", MinSize, MinSize),
		}
	case n%2 == 0:
		return &spiralerrors.SizeError{Size: n, Length: length, Reason: "grid size must be an odd number"}
	case n*n > MaxCells:
		return &spiralerrors.SizeError{
			Size:   n,
			Length: length,
			Reason: fmt.Sprintf("maximum grid size is %dx%d", MaxSize, MaxSize),
		}
	case Capacity(n) < length:
		return &spiralerrors.SizeError{
			Size:   n,
			Length: length,
			Reason: fmt.Sprintf("capacity %d is too small", Capacity(n)),
		}
	}
	return nil
}

// SizeFor resolves the grid dimension for a message. An explicit size of 0
// selects the minimum. The minimum is always computed first so that a message
// too long for any grid is reported before the explicit size is looked at.
func SizeFor(length, explicit int) (int, error) {
	minSize, err := MinimumSizeFor(length)
	if err != nil {
		return 0, err
	}
	if explicit == 0 {
		return minSize, nil
	}
	if err := Validate(explicit, length); err != nil {
		return 0, err
	}
	return explicit, nil
}

// ceilSqrt returns the smallest r with r*r >= x, for x >= 0.
func ceilSqrt(x int) int {
	if x <= 0 {
		return 0
	}
	r := FloorSqrt(x)
	if r*r < x {
		r++
	}
	return r
}

// FloorSqrt returns the largest r with r*r <= x, for x >= 0.
func FloorSqrt(x int) int {
	if x <= 0 {
		return 0
	}
	// Newton iteration on integers; converges from above.
	r := x
	for {
		next := (r + x/r) / 2
		if next >= r {
			return r
		}
		r = next
	}
}

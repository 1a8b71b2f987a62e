package fractal

import "errors"

// Sentinel errors for tree construction and the tree file codec.
// Branch on them with errors.Is; call sites attach context with %w.
var (
	// ErrBadDimension indicates a non-positive width, height, or target
	// leaf count.
	ErrBadDimension = errors.New("fractal: dimension must be positive")
	// ErrNotDivisible indicates a uniform grid count that does not evenly
	// divide the corresponding dimension.
	ErrNotDivisible = errors.New("fractal: dimension not divisible by count")
	// ErrExhausted indicates random growth ran out of splittable leaves
	// before reaching the target leaf count. No tree is returned.
	ErrExhausted = errors.New("fractal: leaf candidates exhausted before target")
	// ErrBadRecord indicates a tree file line that could not be parsed.
	ErrBadRecord = errors.New("fractal: malformed tree record")
	// ErrUnknownChild indicates a record referenced a child id that has not
	// appeared yet; children must precede their parents in the file.
	ErrUnknownChild = errors.New("fractal: child id referenced before definition")
	// ErrNoRoot indicates the file defined no node with id 1.
	ErrNoRoot = errors.New("fractal: no root node found")
)

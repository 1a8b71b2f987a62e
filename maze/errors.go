package maze

import "errors"

// Sentinel errors for graph generation and the graph file codec.
var (
	// ErrBadExpansion indicates a non-positive expansion factor.
	ErrBadExpansion = errors.New("maze: expansion must be positive")
	// ErrBadILFRange indicates an inverted or non-positive load range.
	ErrBadILFRange = errors.New("maze: invalid ideal load factor range")
	// ErrGeometryOverflow indicates too many out-of-range edge endpoints
	// during synthesis; the generation is abandoned, not retried.
	ErrGeometryOverflow = errors.New("maze: too many invalid edge endpoints")
	// ErrBadHeader indicates a graph file header that is not
	// `Width Height EdgeCount [RegionCount]`.
	ErrBadHeader = errors.New("maze: malformed graph header")
	// ErrBadRecord indicates an unparseable n/e/r line.
	ErrBadRecord = errors.New("maze: malformed graph record")
	// ErrCountMismatch indicates the parsed node, edge, or region count
	// differs from the header's declaration.
	ErrCountMismatch = errors.New("maze: record count does not match header")
)

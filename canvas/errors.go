package canvas

import "errors"

// ErrNoSurface is returned by Check for a nil surface.
var ErrNoSurface = errors.New("canvas: no drawing surface")

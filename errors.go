package vlist

import "errors"

// ErrInvalidConfig is returned by constructors when list geometry is
// unusable (non-positive item height, negative buffer). It is always
// raised at setup: a misconfigured list refuses to exist instead of
// silently rendering an empty window, which would be indistinguishable
// from a legitimately empty list.
var ErrInvalidConfig = errors.New("vlist: invalid configuration")

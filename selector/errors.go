package selector

import "errors"

var (
	// ErrOrder is reported when a part category would appear after a
	// category it must precede.
	ErrOrder = errors.New("selector parts out of order")
	// ErrCardinality is reported when a single-occurrence category
	// (element, id, pseudo-element) is added a second time.
	ErrCardinality = errors.New("selector part not repeatable")
)

package ddz

import "errors"

var (
	// ErrInvalidCard is returned for identifiers outside 1..54 and for
	// card tokens that cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")

	// ErrDuplicateCard is returned when one physical card appears twice in a hand.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrInvalidShape is returned when a shape-specific generator is handed a
	// target of a different shape. It signals caller misuse.
	ErrInvalidShape = errors.New("invalid shape for operation")
)

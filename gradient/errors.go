package gradient

import "errors"

var (
	// ErrInvalidHex is returned when a colour cannot be decoded, either because
	// a packed integer exceeds 0xFFFFFF or a hex string is malformed.
	ErrInvalidHex = errors.New("invalid hex colour")

	// ErrUnconfiguredGradient is returned by Build when the start or end colour
	// was never set.
	ErrUnconfiguredGradient = errors.New("gradient colours not configured")

	// ErrBuilderConsumed is returned by Build on a builder that was already
	// finalized.
	ErrBuilderConsumed = errors.New("gradient builder already consumed")
)

// This package defines the altered perception camera effects used
// by altercam and their oscillators.
//
// Effects are a closed set, so instead of an interface with one
// implementation per effect there's a single [Effect] type tagged
// by [Kind] and dispatched with a switch.
//
// All effects produce three outputs that the camera blends:
//   - A position offset in world units.
//   - A rotation offset in degrees.
//   - A size scale multiplier for the orthographic size.
// [Mushrooms] additionally accumulates a hue shift for color grading.
package effect

import (
	"fmt"
	"strings"
)

// Identifies one of the camera effects.
type Kind uint8

const (
	// Constant identity effect: no offsets, unit scale.
	None Kind = iota

	// Slow, wide sway with a gentle zoom breathing.
	Drunk

	// Faster and stronger sway than Drunk.
	Intoxicated

	// Uniform sway on both axes plus a continuous hue shift.
	Mushrooms

	kindEndSentinel
)

// Number of effect kinds.
const KindCount = int(kindEndSentinel)

// Returns all effect kinds in declaration order.
func Kinds() []Kind {
	return []Kind{None, Drunk, Intoxicated, Mushrooms}
}

// Returns whether the kind is one of the known effect kinds.
func (self Kind) Valid() bool {
	return self < kindEndSentinel
}

// Returns a string representation of the effect kind.
// Panics on unknown kinds.
func (self Kind) String() string {
	switch self {
	case None:
		return "None"
	case Drunk:
		return "Drunk"
	case Intoxicated:
		return "Intoxicated"
	case Mushrooms:
		return "Mushrooms"
	default:
		panic(fmt.Sprintf("invalid effect.Kind %d", uint8(self)))
	}
}

// Parses a kind name case-insensitively. Unlike [Kind.String](),
// unknown names return an error, as names typically come from
// configuration or command line flags.
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if strings.EqualFold(name, kind.String()) {
			return kind, nil
		}
	}
	return None, fmt.Errorf("effect: unknown kind %q", name)
}

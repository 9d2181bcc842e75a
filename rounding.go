package decimal

import (
	"errors"
	"fmt"
	"strings"
)

// RoundingMode specifies how a decimal is rounded when digits have to be
// discarded.
//
// The zero value is [Down].
type RoundingMode int

const (
	// Down rounds towards negative infinity (floor).
	Down RoundingMode = iota
	// Up rounds towards positive infinity (ceiling).
	Up
	// TowardsZero discards the fractional digits (truncation).
	TowardsZero
	// AwayFromZero rounds to the integer of larger magnitude, unless the
	// discarded digits are all zeros.
	AwayFromZero
	// HalfDown rounds to the nearest neighbour, ties towards negative infinity.
	HalfDown
	// HalfUp rounds to the nearest neighbour, ties towards positive infinity.
	HalfUp
	// HalfTowardsZero rounds to the nearest neighbour, ties towards zero.
	HalfTowardsZero
	// HalfAwayFromZero rounds to the nearest neighbour, ties away from zero.
	// Also known as commercial rounding.
	HalfAwayFromZero
	// ToEven rounds to the nearest neighbour, ties to the even neighbour.
	// Also known as banker's rounding.
	ToEven
	// ToOdd rounds to the nearest neighbour, ties to the odd neighbour.
	// It is not supported and always fails with [ErrUnsupportedMode].
	ToOdd
	// Stochastic breaks ties at random.
	// It is not supported and always fails with [ErrUnsupportedMode].
	Stochastic
)

var (
	// ErrUnsupportedMode is returned when rounding with [ToOdd] or [Stochastic].
	ErrUnsupportedMode = errors.New("unsupported rounding mode")
	// ErrInvalidMode is returned when rounding with a value that is not
	// one of the declared rounding modes.
	ErrInvalidMode = errors.New("invalid rounding mode")
)

var modeNames = [...]string{
	Down:             "Down",
	Up:               "Up",
	TowardsZero:      "TowardsZero",
	AwayFromZero:     "AwayFromZero",
	HalfDown:         "HalfDown",
	HalfUp:           "HalfUp",
	HalfTowardsZero:  "HalfTowardsZero",
	HalfAwayFromZero: "HalfAwayFromZero",
	ToEven:           "ToEven",
	ToOdd:            "ToOdd",
	Stochastic:       "Stochastic",
}

// Modes returns all rounding modes in declaration order,
// including the unsupported ones.
func Modes() []RoundingMode {
	modes := make([]RoundingMode, len(modeNames))
	for i := range modes {
		modes[i] = RoundingMode(i)
	}
	return modes
}

func (m RoundingMode) valid() bool {
	return m >= Down && int(m) < len(modeNames)
}

// IsSupported returns true if decimals can be rounded using m.
func (m RoundingMode) IsSupported() bool {
	return m.valid() && m != ToOdd && m != Stochastic
}

// check returns an error if m cannot be used for rounding.
func (m RoundingMode) check() error {
	switch {
	case !m.valid():
		return fmt.Errorf("%v: %w", m, ErrInvalidMode)
	case !m.IsSupported():
		return fmt.Errorf("%v: %w", m, ErrUnsupportedMode)
	}
	return nil
}

// String implements [fmt.Stringer] interface.
// It returns the name of the constant, for example "HalfAwayFromZero".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseRoundingMode converts a name to a rounding mode.
// Both the constant name ("HalfAwayFromZero") and its kebab-case form
// ("half-away-from-zero") are accepted, regardless of case.
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	for i, name := range modeNames {
		if strings.ToLower(name) == key {
			return RoundingMode(i), nil
		}
	}
	return 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidMode)
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%v: %w", m, ErrInvalidMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// incr reports whether the magnitude of a truncated quotient has to be
// incremented by one.
// neg is the sign of the rounded number, odd is the parity of the truncated
// quotient, r is the discarded remainder and h is exactly one half of
// the divisor.
func (m RoundingMode) incr(neg, odd bool, r, h fint) bool {
	if r == 0 {
		return false
	}

	// Directed rounding
	switch m {
	case Down:
		return neg
	case Up:
		return !neg
	case TowardsZero:
		return false
	case AwayFromZero:
		return true
	}

	// Nearest neighbour
	switch {
	case r < h:
		return false
	case r > h:
		return true
	}

	// Tie
	switch m {
	case HalfDown:
		return neg
	case HalfUp:
		return !neg
	case HalfTowardsZero:
		return false
	case HalfAwayFromZero:
		return true
	case ToEven:
		return odd
	}
	return false
}

// RoundInt returns d rounded to an integer using the given mode.
// The result has a scale of 0.
//
// Rounding to an integer never overflows: [MaxValue] and [MinValue]
// are returned unchanged by every supported mode.
//
// RoundInt returns an error if:
//   - the mode is [ToOdd] or [Stochastic] (see [ErrUnsupportedMode]);
//   - the mode is not a declared rounding mode (see [ErrInvalidMode]).
func (d Decimal) RoundInt(mode RoundingMode) (Decimal, error) {
	return d.RoundTo(0, mode)
}

// RoundTo returns d rounded to the specified number of digits after the
// decimal point using the given mode.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
// For financial calculations, the scale should be equal to the scale
// of the currency.
//
// RoundTo returns an error if:
//   - the mode is [ToOdd] or [Stochastic] (see [ErrUnsupportedMode]);
//   - the mode is not a declared rounding mode (see [ErrInvalidMode]);
//   - the scale is less than 0 or greater than [MaxScale];
//   - the integer part of the result has more than ([MaxPrec] - scale) digits.
func (d Decimal) RoundTo(scale int, mode RoundingMode) (Decimal, error) {
	if err := mode.check(); err != nil {
		return Decimal{}, fmt.Errorf("rounding %v: %w", d, err)
	}
	if scale < 0 || MaxScale < scale {
		return Decimal{}, fmt.Errorf("rounding %v to %v digit(s): %w", d, scale, errScaleRange)
	}

	var (
		coef fint
		ok   bool
	)

	coef = d.coef

	// Rescaling
	switch {
	case scale == d.Scale():
		return d, nil
	case scale < d.Scale():
		coef = coef.rsh(d.Scale()-scale, mode, d.IsNeg())
	case d.Scale() < scale:
		coef, ok = coef.lsh(scale - d.Scale())
		if !ok {
			return Decimal{}, fmt.Errorf("rounding %v to %v digit(s): the integer part of a %T can have at most %v digit(s), but it has %v digit(s): %w", d, scale, d, MaxPrec-scale, d.Prec()-d.Scale(), errCoefficientOverflow)
		}
	}

	return newDecimal(d.IsNeg(), coef, scale)
}

package decimal

import (
	"errors"
	"fmt"
)

// Decimal type is a representation of a finite floating-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the floating decimal point.
//   - Coefficient: an integer value of the decimal without the decimal point.
//
// The scale field determines the position of the decimal point in the coefficient.
// For example, a decimal value with a scale of 2 represents a value that has two
// digits after the decimal point.
// The coefficient field is the integer value of the decimal without the decimal point.
// For example, a decimal with a coefficient of 12345 and a scale of 2 represents
// the value 123.45.
// Such approach allows for multiple representations of the same numerical value.
// For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// One important aspect of the decimal is that it does not support
// special values such as NaN, Infinity, or signed zeros.
type Decimal struct {
	neg   bool // indicates whether the decimal is negative
	scale int8 // the position of the floating decimal point
	coef  fint // the coefficient of the decimal
}

const (
	MaxPrec  = 19      // maximum length of the coefficient in decimal digits
	MaxScale = MaxPrec // maximum number of digits after the decimal point
	maxCoef  = maxFint // maximum absolute value of the coefficient, which is equal to (10^MaxPrec - 1)
)

var (
	// MaxValue is the largest representable decimal, 9,999,999,999,999,999,999.
	MaxValue = Decimal{coef: maxCoef}
	// MinValue is the smallest representable decimal, -9,999,999,999,999,999,999.
	MinValue = Decimal{neg: true, coef: maxCoef}
)

var (
	errCoefficientOverflow = errors.New("coefficient overflow")
	errInvalidDecimal      = errors.New("invalid decimal")
	errScaleRange          = errors.New("scale out of range")
)

func newDecimal(neg bool, coef fint, scale int) (Decimal, error) {
	switch {
	case scale < 0 || scale > MaxScale:
		return Decimal{}, errScaleRange
	case coef > maxCoef:
		return Decimal{}, errCoefficientOverflow
	}
	if coef == 0 {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: int8(scale)}, nil
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is negative or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	var neg bool
	var abs fint
	if coef < 0 {
		neg = true
		abs = fint(-(coef + 1)) + 1 // -math.MinInt64 does not fit into int64
	} else {
		abs = fint(coef)
	}
	d, err := newDecimal(neg, abs, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting coefficient %v and scale %v: %w", coef, scale, err)
	}
	return d, nil
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Parse removes leading zeros from the integer part of the input string,
// but maintains trailing zeros in the fractional part to preserve scale.
//
// Parse returns an error:
//   - if the string does not represent a valid decimal number;
//   - if the coefficient has more than [MaxPrec] significant digits;
//   - if there are more than [MaxScale] digits after the decimal point.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

func parse(s string) (Decimal, error) {
	var (
		pos     int
		neg     bool
		coef    fint
		scale   int
		hascoef bool
		ok      bool
	)

	// Sign
	if pos < len(s) {
		switch s[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}

	// Integer
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		coef, ok = coef.fsa(1, s[pos]-'0')
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		pos++
		hascoef = true
	}

	// Fraction
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			coef, ok = coef.fsa(1, s[pos]-'0')
			if !ok {
				return Decimal{}, errCoefficientOverflow
			}
			pos++
			scale++
			hascoef = true
		}
	}

	if pos != len(s) || !hascoef {
		return Decimal{}, errInvalidDecimal
	}

	return newDecimal(neg, coef, scale)
}

// String implements [fmt.Stringer] interface and returns a string
// representation of the decimal.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var (
		buf   [24]byte
		pos   int
		coef  uint64
		scale int
	)

	pos = len(buf) - 1
	coef = d.Coef()
	scale = d.Scale()

	// Coefficient
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Prec returns number of digits in the coefficient.
func (d Decimal) Prec() int {
	return d.coef.prec()
}

// Coef returns the coefficient of the decimal.
// Also see method [Decimal.Prec].
func (d Decimal) Coef() uint64 {
	return uint64(d.coef)
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// MinScale returns the smallest scale that d can be rescaled to without rounding.
// Also see method [Decimal.Reduce].
func (d Decimal) MinScale() int {
	// Special case: no scale
	if d.Scale() == 0 || d.IsZero() {
		return 0
	}
	// General case
	z := d.coef.ntz()
	if z > d.Scale() {
		return 0
	}
	return d.Scale() - z
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.coef%pow10[d.Scale()] == 0
}

// Round returns d that is rounded to the specified number of digits after
// the decimal point using "half to even" rule.
// It is a shorthand for [Decimal.RoundTo] with [ToEven].
//
// Round panics if:
//   - the integer part of the result has more than ([MaxPrec] - scale) digits;
//   - the scale is less than 0 or greater than [MaxScale].
func (d Decimal) Round(scale int) Decimal {
	return d.mustRoundTo("Round", scale, ToEven)
}

// Quantize returns d that is rounded to the same scale as e.
// The sign and coefficient of e are ignored.
// Also see method [Decimal.Round].
//
// Quantize panics if the integer part of d has more than ([MaxPrec] - e.Scale()) digits.
func (d Decimal) Quantize(e Decimal) Decimal {
	return d.Round(e.Scale())
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
// It is a shorthand for [Decimal.RoundTo] with [TowardsZero].
//
// Trunc panics if:
//   - the integer part of the result has more than ([MaxPrec] - scale) digits;
//   - the scale is less than 0 or greater than [MaxScale].
func (d Decimal) Trunc(scale int) Decimal {
	return d.mustRoundTo("Trunc", scale, TowardsZero)
}

// Ceil returns d that is rounded up to the specified number of digits after
// the decimal point.
// It is a shorthand for [Decimal.RoundTo] with [Up].
// Also see method [Decimal.Floor].
//
// Ceil panics if:
//   - the integer part of the result has more than ([MaxPrec] - scale) digits;
//   - the scale is less than 0 or greater than [MaxScale].
func (d Decimal) Ceil(scale int) Decimal {
	return d.mustRoundTo("Ceil", scale, Up)
}

// Floor returns d that is rounded down to the specified number of digits after
// the decimal point.
// It is a shorthand for [Decimal.RoundTo] with [Down].
// Also see method [Decimal.Ceil].
//
// Floor panics if:
//   - the integer part of the result has more than ([MaxPrec] - scale) digits;
//   - the scale is less than 0 or greater than [MaxScale].
func (d Decimal) Floor(scale int) Decimal {
	return d.mustRoundTo("Floor", scale, Down)
}

func (d Decimal) mustRoundTo(name string, scale int, mode RoundingMode) Decimal {
	f, err := d.RoundTo(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.%v(%v) failed: %v", d, name, scale, err))
	}
	return f
}

// Reduce returns d with all trailing zeros removed.
func (d Decimal) Reduce() Decimal {
	return d.Trunc(d.MinScale())
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	return Decimal{neg: !d.neg, scale: d.scale, coef: d.coef}
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{scale: d.scale, coef: d.coef}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef == 0:
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.coef != 0 && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef == 0
}

// Add returns the exact sum of d and e.
// The scale of the result is the larger of the scales of d and e.
//
// Add returns an error if the coefficient of the sum has more than
// [MaxPrec] digits.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	f, err := add(d, e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

func add(d, e Decimal) (Decimal, error) {
	var (
		dcoef fint
		ecoef fint
		scale int
		ok    bool
	)

	dcoef, ecoef = d.coef, e.coef

	// Alignment
	scale = d.Scale()
	switch {
	case d.Scale() < e.Scale():
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		scale = e.Scale()
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
	}

	// Same signs
	if d.IsNeg() == e.IsNeg() {
		coef, ok := dcoef.add(ecoef)
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		return newDecimal(d.IsNeg(), coef, scale)
	}

	// Opposite signs
	neg := d.IsNeg()
	if dcoef < ecoef {
		neg = e.IsNeg()
	}
	return newDecimal(neg, dcoef.dist(ecoef), scale)
}

// Sub returns the exact difference between d and e.
// The scale of the result is the larger of the scales of d and e.
//
// Sub returns an error if the coefficient of the difference has more than
// [MaxPrec] digits.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	f, err := add(d, e.Neg())
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	switch cmpAbs(d, e) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	}
	return 0
}

// cmpAbs compares |d| and |e|.
func cmpAbs(d, e Decimal) int {
	var (
		dcoef fint
		ecoef fint
		ok    bool
	)

	dcoef, ecoef = d.coef, e.coef

	// Alignment.
	// If a coefficient cannot be aligned, it is larger than any coefficient.
	switch {
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return -1
		}
	case d.Scale() < e.Scale():
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return 1
		}
	}

	switch {
	case ecoef < dcoef:
		return 1
	case dcoef < ecoef:
		return -1
	}
	return 0
}

// Equal returns true if d and e are numerically equal,
// regardless of their scales.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

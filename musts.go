package decimal

import "fmt"

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", d, e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", d, e, err))
	}
	return f
}

// MustRoundInt is like [Decimal.RoundInt] but panics if the mode is not supported.
func (d Decimal) MustRoundInt(mode RoundingMode) Decimal {
	f, err := d.RoundInt(mode)
	if err != nil {
		panic(fmt.Sprintf("%q.RoundInt(%v) failed: %v", d, mode, err))
	}
	return f
}

// MustRoundTo is like [Decimal.RoundTo] but panics if computing error.
func (d Decimal) MustRoundTo(scale int, mode RoundingMode) Decimal {
	f, err := d.RoundTo(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.RoundTo(%v, %v) failed: %v", d, scale, mode, err))
	}
	return f
}

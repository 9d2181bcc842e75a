/*
Package decimal implements immutable decimal numbers and the rounding rules
commonly needed to bring monetary amounts to the precision of a currency.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned integer representing the numeric value of the decimal
    without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.
    The range of allowed values for the scale is from 0 to 19.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.

# Constraints

The coefficient has at most 19 digits, so the range of a decimal is determined
by its scale:

	| Example      | Scale | Minimum                              | Maximum                             |
	| ------------ | ----- | ------------------------------------ | ----------------------------------- |
	| Japanese Yen | 0     | -9,999,999,999,999,999,999           | 9,999,999,999,999,999,999           |
	| US Dollar    | 2     |    -99,999,999,999,999,999.99        |    99,999,999,999,999,999.99        |
	| Omani Rial   | 3     |     -9,999,999,999,999,999.999       |     9,999,999,999,999,999.999       |
	| Bitcoin      | 8     |            -99,999,999,999.99999999  |            99,999,999,999.99999999  |

[MaxValue] and [MinValue] are the largest and the smallest representable
decimals.

Special values such as NaN, Infinity, or negative zeros are not supported.

# Rounding

[RoundingMode] selects one of the following policies:

	| Mode             | Rule                                       |  1.5 | -1.5 |  2.5 | -2.5 |
	| ---------------- | ------------------------------------------ | ---- | ---- | ---- | ---- |
	| Down             | towards negative infinity                  |    1 |   -2 |    2 |   -3 |
	| Up               | towards positive infinity                  |    2 |   -1 |    3 |   -2 |
	| TowardsZero      | towards zero                               |    1 |   -1 |    2 |   -2 |
	| AwayFromZero     | away from zero                             |    2 |   -2 |    3 |   -3 |
	| HalfDown         | nearest, ties towards negative infinity    |    1 |   -2 |    2 |   -3 |
	| HalfUp           | nearest, ties towards positive infinity    |    2 |   -1 |    3 |   -2 |
	| HalfTowardsZero  | nearest, ties towards zero                 |    1 |   -1 |    2 |   -2 |
	| HalfAwayFromZero | nearest, ties away from zero               |    2 |   -2 |    3 |   -3 |
	| ToEven           | nearest, ties to even                      |    2 |   -2 |    2 |   -2 |
	| ToOdd            | not supported                              |      |      |      |      |
	| Stochastic       | not supported                              |      |      |      |      |

[Decimal.RoundInt] rounds to an integer and [Decimal.RoundTo] rounds to
a given number of digits after the decimal point.
Ties are detected exactly, by comparing the discarded digits with one half
in integer arithmetic.
Rounding to an integer never overflows: [MaxValue] and [MinValue] are already
integers and are returned unchanged.

[Decimal.Round], [Decimal.Trunc], [Decimal.Floor] and [Decimal.Ceil] are
shorthands for [ToEven], [TowardsZero], [Down] and [Up] respectively.

# Errors

Rounding returns an error in the following cases:

  - Unsupported mode.
    [ToOdd] and [Stochastic] are declared but not implemented.
    Rounding with them fails with [ErrUnsupportedMode] before any computation.

  - Invalid mode.
    Values outside the declared constants fail with [ErrInvalidMode].

  - Scale out of range.
    The requested scale is negative or greater than [MaxScale].

  - Overflow.
    Zero-padding to a larger scale needs more than [MaxPrec] digits.

Errors are never returned when rounding to an integer with a supported mode.
*/
package decimal

package common

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	RationalSeparator   = '/'
	RationalMinLength   = len("1/1")
	RationalEncodedSize = 16
)

var (
	ErrZeroDenominator = errors.New("rational denominator is zero")
	ErrInvalidFormat   = errors.New("invalid rational format")

	ZeroRat = NewRationalFromInt(0)
	OneRat  = NewRationalFromInt(1)
)

// Rational is an exact fraction n/d kept in lowest terms with d > 0, so two
// equal values always have identical fields and compare equal with ==.
//
// All arithmetic is done on int64 without overflow checks, callers must keep
// the magnitudes well below the int64 range.
type Rational struct {
	n int64
	d int64
}

func TryRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	g, neg, err := gcdReduce(num, den)
	if err != nil {
		return Rational{}, err
	}
	n := int64(abs64(num) / g)
	if neg {
		n = -n
	}
	return Rational{n: n, d: int64(abs64(den) / g)}, nil
}

func NewRational(num, den int64) Rational {
	r, err := TryRational(num, den)
	if err != nil {
		panic(fmt.Errorf("NewRational(%d, %d) %w", num, den, err))
	}
	return r
}

func NewRationalFromInt(n int64) Rational {
	return NewRational(n, 1)
}

func ParseRational(s string) (Rational, error) {
	if len(s) < RationalMinLength {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	i := strings.LastIndexByte(s, RationalSeparator)
	if i < 0 {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	num, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: numerator %q", ErrInvalidFormat, s[:i])
	}
	den, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: denominator %q", ErrInvalidFormat, s[i+1:])
	}
	return TryRational(num, den)
}

func (r Rational) Num() int64 {
	return r.n
}

func (r Rational) Den() int64 {
	return r.d
}

func (r Rational) Sign() int {
	switch {
	case r.n < 0:
		return -1
	case r.n > 0:
		return 1
	}
	return 0
}

func (r Rational) IsZero() bool {
	return r.n == 0
}

func (r Rational) Neg() Rational {
	return Rational{n: -r.n, d: r.d}
}

func (r Rational) Abs() Rational {
	if r.n < 0 {
		return r.Neg()
	}
	return r
}

// Reduce normalizes the fields in place, it is only needed after the fields
// have been set by something other than the constructors.
func (r *Rational) Reduce() error {
	v, err := TryRational(r.n, r.d)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rational) Reciprocal() (Rational, error) {
	return TryRational(r.d, r.n)
}

func (r Rational) Add(y Rational) Rational {
	return NewRational(r.n*y.d+y.n*r.d, r.d*y.d)
}

func (r Rational) Sub(y Rational) Rational {
	return NewRational(r.n*y.d-y.n*r.d, r.d*y.d)
}

func (r Rational) Mul(y Rational) Rational {
	return NewRational(r.n*y.n, r.d*y.d)
}

func (r Rational) Div(y Rational) (Rational, error) {
	return TryRational(r.n*y.d, r.d*y.n)
}

func (r Rational) Quo(y Rational) Rational {
	v, err := r.Div(y)
	if err != nil {
		panic(fmt.Errorf("Quo(%s, %s) %w", r, y, err))
	}
	return v
}

func (r Rational) Cmp(y Rational) int {
	if r == y {
		return 0
	}
	return r.Sub(y).Sign()
}

func (r Rational) Equal(y Rational) bool {
	return r == y
}

func (r Rational) Less(y Rational) bool {
	return r.Cmp(y) < 0
}

func SortRationals(rs []Rational) {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].Less(rs[j])
	})
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.n, r.d)
}

func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rational) UnmarshalText(b []byte) error {
	v, err := ParseRational(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return r.UnmarshalText([]byte(unquoted))
}

func (r Rational) MarshalMsgpack() ([]byte, error) {
	buf := make([]byte, RationalEncodedSize)
	binary.BigEndian.PutUint64(buf[:8], uint64(r.n))
	binary.BigEndian.PutUint64(buf[8:], uint64(r.d))
	return buf, nil
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != RationalEncodedSize {
		return fmt.Errorf("%w: msgpack size %d", ErrInvalidFormat, len(data))
	}
	num := int64(binary.BigEndian.Uint64(data[:8]))
	den := int64(binary.BigEndian.Uint64(data[8:]))
	v, err := TryRational(num, den)
	if err != nil {
		return err
	}
	if v.n != num || v.d != den {
		return fmt.Errorf("%w: unreduced %d/%d", ErrInvalidFormat, num, den)
	}
	*r = v
	return nil
}

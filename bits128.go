package bits128

import (
	"fmt"
	"math/big"
	"strings"

	"lukechampine.com/uint128"
)

// Size is the number of bits in a Bits128.
const Size = 128

const msbIndex = Size - 1

// Bits128 is a vector of exactly 128 bits. The zero value is the empty vector.
type Bits128 struct {
	value uint128.Uint128
}

func Empty() Bits128 {
	return Bits128{}
}

// New wraps v as is; every 128-bit pattern is a valid vector.
func New(v uint128.Uint128) Bits128 {
	return Bits128{value: v}
}

func FromUint64(v uint64) Bits128 {
	return Bits128{value: uint128.From64(v)}
}

func FromHiLo(hi uint64, lo uint64) Bits128 {
	return Bits128{value: uint128.New(lo, hi)}
}

// FromDecimal parses a base-10 representation of an unsigned 128-bit integer.
func FromDecimal(s string) (Bits128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Bits128{}, fmt.Errorf("%w: %q is not a decimal integer", ErrParse, s)
	}
	return FromBig(v)
}

// FromBig converts v, which must be in [0, 2^128). v is not modified.
func FromBig(v *big.Int) (Bits128, error) {
	if v.Sign() < 0 {
		return Bits128{}, fmt.Errorf("%w: %v is negative", ErrParse, v)
	}
	if v.BitLen() > Size {
		return Bits128{}, fmt.Errorf("%w: %v overflows %v bits", ErrParse, v, Size)
	}
	// uint128.FromBig shifts its argument in place
	return Bits128{value: uint128.FromBig(new(big.Int).Set(v))}, nil
}

// Raw returns the wrapped integer.
func (b Bits128) Raw() uint128.Uint128 {
	return b.value
}

func (b Bits128) Hi() uint64 {
	return b.value.Hi
}

func (b Bits128) Lo() uint64 {
	return b.value.Lo
}

func (b Bits128) Big() *big.Int {
	return b.value.Big()
}

// BitAt reports whether the bit at index is set.
// An index outside of [0, Size) returns an *IndexError.
func (b Bits128) BitAt(index uint) (bool, error) {
	if err := checkBounds(index); err != nil {
		return false, err
	}
	return b.isSet(index), nil
}

// Bit is the indexing form of BitAt. Like a slice index expression, it panics
// with an *IndexError when index is out of range.
func (b Bits128) Bit(index uint) bool {
	if err := checkBounds(index); err != nil {
		panic(err)
	}
	return b.isSet(index)
}

func (b Bits128) LeastSignificantBit() bool {
	return b.isSet(0)
}

func (b Bits128) MostSignificantBit() bool {
	return b.isSet(msbIndex)
}

// Flip toggles the bit at index in place.
// An out of range index returns an *IndexError and leaves b untouched.
func (b *Bits128) Flip(index uint) error {
	if err := checkBounds(index); err != nil {
		return err
	}
	b.value = b.value.Xor(bitMask(index))
	return nil
}

// SignificantLength returns the index of the highest set bit, or 0 when no
// bit is set. Use IsZero to tell the empty vector apart from one having only
// bit 0 set.
func (b Bits128) SignificantLength() uint {
	for i := uint(msbIndex); ; i-- {
		// rotating by msbIndex-i brings bit i to the top
		if b.value.RotateLeft(int(msbIndex-i)).Hi>>63 == 1 {
			return i
		}
		if i == 0 {
			return 0
		}
	}
}

func (b Bits128) IsZero() bool {
	return b.value.IsZero()
}

// OnesCount returns the number of set bits.
func (b Bits128) OnesCount() int {
	return b.value.OnesCount()
}

// String renders bits from SignificantLength down to 0, each followed by a
// comma: 5 is "[1,0,1,]" and the empty vector is "[0,]".
func (b Bits128) String() string {
	n := b.SignificantLength()

	var sb strings.Builder
	sb.Grow(2*int(n) + 4)
	sb.WriteByte('[')
	for i := int(n); i >= 0; i-- {
		if b.isSet(uint(i)) {
			sb.WriteString("1,")
		} else {
			sb.WriteString("0,")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b Bits128) GoString() string {
	return fmt.Sprintf("bits128.FromHiLo(%#x, %#x)", b.value.Hi, b.value.Lo)
}

func (b Bits128) isSet(index uint) bool {
	return b.value.Rsh(index).Lo&1 == 1
}

func bitMask(index uint) uint128.Uint128 {
	return uint128.From64(1).Lsh(index)
}

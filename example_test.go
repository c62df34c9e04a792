package bits128_test

import (
	"errors"
	"fmt"

	"github.com/astef/bits128"
)

func Example() {
	a, err := bits128.FromDecimal("50001") // 1100001101010001
	if err != nil {
		panic(err)
	}
	fmt.Println(a.LeastSignificantBit(), a.MostSignificantBit())
	fmt.Println(a.Bit(7), a.Bit(8))

	_ = a.Flip(11)
	fmt.Println(a.Raw())
	fmt.Printf("%#v\n", a)
	fmt.Println(a)
	fmt.Println(a.Bit(5), a.Bit(4))
	// Output:
	// true false
	// false true
	// 52049
	// bits128.FromHiLo(0x0, 0xcb51)
	// [1,1,0,0,1,0,1,1,0,1,0,1,0,0,0,1,]
	// false true
}

func ExampleBits128_SignificantLength() {
	fmt.Println(bits128.FromUint64(512).SignificantLength())
	fmt.Println(bits128.Empty().SignificantLength(), bits128.Empty().IsZero())
	fmt.Println(bits128.FromUint64(1).SignificantLength(), bits128.FromUint64(1).IsZero())
	// Output:
	// 9
	// 0 true
	// 0 false
}

func ExampleBits128_All() {
	for bit := range bits128.FromUint64(0b0110).All() {
		fmt.Print(bit, " ")
	}
	fmt.Println()
	// Output:
	// false true true
}

func ExampleBits128_Flip() {
	b := bits128.FromUint64(2403923381)
	if err := b.Flip(29); err != nil {
		panic(err)
	}
	fmt.Println(b.Raw())

	err := b.Flip(128)
	fmt.Println(errors.Is(err, bits128.ErrIndexOutOfRange))
	fmt.Println(err)
	// Output:
	// 2940794293
	// true
	// bits128: index out of range [128] with length 128
}

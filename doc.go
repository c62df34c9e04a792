/*
Fixed-width 128-bit vector with bit-level access, in-place flips and a
compact debug rendering.

	b := bits128.FromUint64(5) 	// [1,0,1,]
	b.Flip(1) 					// [1,1,1,]
	b.SignificantLength() 		// 2
	b.Bit(0) 					// true
	b.Flip(128) 				// ErrIndexOutOfRange

Bit 0 is the least significant one. Bits128 is a value type: the zero value is
the empty vector, copies are independent, and only Flip mutates its receiver.
*/
package bits128

package bits128

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("bits128: index out of range")

	ErrParse = errors.New("bits128: invalid value")
)

// IndexError reports a bit index outside of [0, Size).
type IndexError struct {
	Index uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bits128: index out of range [%v] with length %v", e.Index, Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func checkBounds(index uint) error {
	if index >= Size {
		return &IndexError{Index: index}
	}
	return nil
}

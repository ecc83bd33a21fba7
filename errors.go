package trie

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacters is returned when input holds a character outside the
// alphabet accepted by the operation. No state is changed when it is returned.
var ErrInvalidCharacters = errors.New("invalid characters")

var (
	errBadLetters       = fmt.Errorf("%w: input must only contain lowercase letters a-z", ErrInvalidCharacters)
	errBadLettersAndDot = fmt.Errorf("%w: input must only contain lowercase letters a-z and dots '.'", ErrInvalidCharacters)
)

package uniswap_v3_math

import "fmt"

type ErrorKind int

const (
	// KindUniswap3 is any library failure that is not arithmetic, e.g. a malformed log.
	KindUniswap3 ErrorKind = iota
	// KindMath covers overflow, underflow, division by zero and out-of-domain values.
	KindMath
)

func (k ErrorKind) String() string {
	switch k {
	case KindMath:
		return "MathError"
	default:
		return "Uniswap3Error"
	}
}

// Error is the only error type returned by the engine.
type Error struct {
	Kind    ErrorKind
	Message string
}

var (
	// ErrUniswap3 matches every error produced by this package.
	ErrUniswap3 = &Error{Kind: KindUniswap3, Message: "uniswap v3 error"}
	// ErrMath matches arithmetic and range errors only.
	ErrMath = &Error{Kind: KindMath, Message: "math error"}
)

func newError(format string, args ...interface{}) error {
	return &Error{Kind: KindUniswap3, Message: fmt.Sprintf(format, args...)}
}

func newMathError(message string) error {
	return &Error{Kind: KindMath, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Code() string {
	if e.Kind == KindMath {
		return "UNI3_ERR_MATH"
	}
	return "UNI3_ERR"
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	switch t {
	case ErrUniswap3:
		return true
	case ErrMath:
		return e.Kind == KindMath
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

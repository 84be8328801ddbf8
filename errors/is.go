package errors

import (
	"github.com/neuronlabs/fluent/errors/class"
)

// IsClass checks if the provided 'err' is an *Error with given class 'c'.
func IsClass(err error, c class.Class) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Class == c
}

// ClassOf gets the class of the provided 'err'. If the error is not an *Error
// the function returns zero valued class.
func ClassOf(err error) class.Class {
	e, ok := err.(*Error)
	if !ok {
		return class.Class(0)
	}
	return e.Class
}

package config

import (
	"github.com/ezrec/ldst/translate"
)

var f = translate.From

// ErrType reports a build script global of the wrong type.
type ErrType struct {
	Name string
	Want string
	Got  string
}

func (err *ErrType) Error() string {
	return f("%v: expected %v, got %v", err.Name, err.Want, err.Got)
}

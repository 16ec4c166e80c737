package mtl

import "errors"

var (
	// ErrNoMaterial indicates the input contained no newmtl statement, so the
	// document holds only the unnamed template material.
	ErrNoMaterial = errors.New("no material defined")
)

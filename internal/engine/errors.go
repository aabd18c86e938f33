package engine

import "errors"

var (
	// ErrEmptyInput is reported before extraction begins when the input
	// text is empty or all whitespace.
	ErrEmptyInput = errors.New("input is empty")

	// ErrNoDeclarations is reported when extraction completed but found no
	// type declarations at all; an empty diagram is meaningless to the
	// renderer, so the run fails instead.
	ErrNoDeclarations = errors.New("no type declarations found in input")
)

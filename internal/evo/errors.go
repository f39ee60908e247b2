package evo

import "errors"

var (
	ErrInvalidMutationKind  = errors.New("invalid mutation kind")
	ErrInvalidCrossoverKind = errors.New("invalid crossover kind")
	ErrDegenerateCitySet    = errors.New("degenerate city set")
	ErrInvalidConfig        = errors.New("invalid population configuration")
	ErrParentMismatch       = errors.New("parents are not permutations of the same length")
)

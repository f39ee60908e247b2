package evo

import (
	"fmt"
	"strings"
)

// CrossoverKind selects one of the permutation-preserving recombination operators.
type CrossoverKind int

const (
	OrderCrossover CrossoverKind = iota + 1
	PartiallyMappedCrossover
	CycleCrossover
)

// MutationKind selects the in-place perturbation applied to every child.
type MutationKind int

const (
	SwapMutation MutationKind = iota + 1
	InversionMutation
	EdgeExchangeMutation
	// RandomMutation picks one of the three concrete kinds per call.
	RandomMutation
)

var crossoverTags = map[string]CrossoverKind{
	"ox":               OrderCrossover,
	"order":            OrderCrossover,
	"pmx":              PartiallyMappedCrossover,
	"partially-mapped": PartiallyMappedCrossover,
	"cx":               CycleCrossover,
	"cycle":            CycleCrossover,
}

var mutationTags = map[string]MutationKind{
	"swap":          SwapMutation,
	"inversion":     InversionMutation,
	"inverse":       InversionMutation,
	"edge-exchange": EdgeExchangeMutation,
	"2-opt":         EdgeExchangeMutation,
	"random":        RandomMutation,
}

// ParseCrossoverKind accepts both short tags (ox, pmx, cx) and long names.
func ParseCrossoverKind(tag string) (CrossoverKind, error) {
	kind, ok := crossoverTags[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCrossoverKind, tag)
	}
	return kind, nil
}

func ParseMutationKind(tag string) (MutationKind, error) {
	kind, ok := mutationTags[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMutationKind, tag)
	}
	return kind, nil
}

func (k CrossoverKind) Valid() bool {
	return k >= OrderCrossover && k <= CycleCrossover
}

func (k CrossoverKind) String() string {
	switch k {
	case OrderCrossover:
		return "ox"
	case PartiallyMappedCrossover:
		return "pmx"
	case CycleCrossover:
		return "cx"
	default:
		return fmt.Sprintf("crossover(%d)", int(k))
	}
}

func (k MutationKind) Valid() bool {
	return k >= SwapMutation && k <= RandomMutation
}

func (k MutationKind) String() string {
	switch k {
	case SwapMutation:
		return "swap"
	case InversionMutation:
		return "inversion"
	case EdgeExchangeMutation:
		return "edge-exchange"
	case RandomMutation:
		return "random"
	default:
		return fmt.Sprintf("mutation(%d)", int(k))
	}
}

// AllCrossoverKinds returns the kinds in sweep order.
func AllCrossoverKinds() []CrossoverKind {
	return []CrossoverKind{OrderCrossover, PartiallyMappedCrossover, CycleCrossover}
}

// AllMutationKinds returns the kinds in sweep order.
func AllMutationKinds() []MutationKind {
	return []MutationKind{SwapMutation, InversionMutation, EdgeExchangeMutation, RandomMutation}
}

func checkKinds(crossover CrossoverKind, mutation MutationKind) error {
	if !crossover.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCrossoverKind, crossover)
	}
	if !mutation.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidMutationKind, mutation)
	}
	return nil
}

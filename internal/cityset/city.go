// Package cityset builds the immutable city sets tours are evolved over.
package cityset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

var (
	ErrDuplicateCity = errors.New("duplicate city id")
	ErrEmptyCityID   = errors.New("city id is required")
	ErrUnknownMap    = errors.New("unknown named map")
)

// City is a labelled point. Its fields are unexported so a city cannot change
// once it is shared across genomes.
type City struct {
	id   string
	name string
	x    float64
	y    float64
}

func NewCity(id, name string, x, y float64) *City {
	if name == "" {
		name = "City" + id
	}
	return &City{id: id, name: name, x: x, y: y}
}

func (c *City) ID() string   { return c.id }
func (c *City) Name() string { return c.name }
func (c *City) X() float64   { return c.x }
func (c *City) Y() float64   { return c.y }

// Position returns (x, y).
func (c *City) Position() (float64, float64) {
	return c.x, c.y
}

// Distance is the Euclidean distance between two cities.
func Distance(a, b *City) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

func (c *City) String() string {
	return c.id
}

// Set is an ordered collection of cities with unique ids.
type Set struct {
	name   string
	width  float64
	height float64
	cities []*City
}

// NewSet validates ids and copies the slice. The cities themselves are shared.
func NewSet(name string, cities []*City) (*Set, error) {
	seen := make(map[string]struct{}, len(cities))
	for i, c := range cities {
		if c == nil || c.id == "" {
			return nil, fmt.Errorf("city at index %d: %w", i, ErrEmptyCityID)
		}
		if _, ok := seen[c.id]; ok {
			return nil, fmt.Errorf("city %q: %w", c.id, ErrDuplicateCity)
		}
		seen[c.id] = struct{}{}
	}
	copied := make([]*City, len(cities))
	copy(copied, cities)
	return &Set{name: name, cities: copied}, nil
}

func (s *Set) Name() string { return s.name }
func (s *Set) Len() int     { return len(s.cities) }

// At returns the i-th city in construction order.
func (s *Set) At(i int) *City {
	return s.cities[i]
}

// Cities returns a copy of the ordered city slice.
func (s *Set) Cities() []*City {
	out := make([]*City, len(s.cities))
	copy(out, s.cities)
	return out
}

// Bounds returns the grid size a random set was drawn on, or the bounding box
// of the cities for sets built from coordinates.
func (s *Set) Bounds() (float64, float64) {
	if s.width > 0 || s.height > 0 {
		return s.width, s.height
	}
	var w, h float64
	for _, c := range s.cities {
		w = math.Max(w, math.Abs(c.x))
		h = math.Max(h, math.Abs(c.y))
	}
	return w, h
}

// Lookup finds a city by id.
func (s *Set) Lookup(id string) (*City, bool) {
	for _, c := range s.cities {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// Coincident reports whether every city sits on the same point, which makes
// every tour zero length.
func (s *Set) Coincident() bool {
	if len(s.cities) == 0 {
		return true
	}
	x, y := s.cities[0].Position()
	for _, c := range s.cities[1:] {
		if c.x != x || c.y != y {
			return false
		}
	}
	return true
}

// RandomGrid places n cities on integer coordinates in [0,width)x[0,height).
// Ids are "0".."n-1".
func RandomGrid(rng *rand.Rand, n, width, height int) (*Set, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if n < 0 {
		return nil, fmt.Errorf("city count must be >= 0: %d", n)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("map size must be positive: %dx%d", width, height)
	}
	cities := make([]*City, n)
	for i := range cities {
		x := rng.Intn(width)
		y := rng.Intn(height)
		id := strconv.Itoa(i)
		cities[i] = NewCity(id, "", float64(x), float64(y))
	}
	set, err := NewSet(fmt.Sprintf("random-%d", n), cities)
	if err != nil {
		return nil, err
	}
	set.width = float64(width)
	set.height = float64(height)
	return set, nil
}

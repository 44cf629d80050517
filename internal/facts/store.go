package facts

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

// ErrNoDistractor is returned by SampleDistractor when every value of a
// field is already excluded.
var ErrNoDistractor = errors.New("no distractor available")

// Store is an immutable in-memory table of entities with precomputed indices.
type Store struct {
	entities []Entity
	byName   map[string]*Entity
	names    []string
}

// New builds a Store from entities. The table must be non-empty, names must
// be unique and every attribute value must be non-empty.
func New(entities []Entity) (*Store, error) {
	if len(entities) == 0 {
		return nil, errors.New("empty fact table")
	}

	s := &Store{
		entities: make([]Entity, len(entities)),
		byName:   make(map[string]*Entity, len(entities)),
		names:    make([]string, 0, len(entities)),
	}
	copy(s.entities, entities)

	for i := range s.entities {
		e := &s.entities[i]
		if e.Name == "" {
			return nil, fmt.Errorf("entity %d: empty name", i)
		}
		if _, dup := s.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate entity %q", e.Name)
		}
		for _, f := range AllFields() {
			if v, _ := e.Value(f); v == "" {
				return nil, fmt.Errorf("entity %q: empty %s", e.Name, f)
			}
		}
		s.byName[e.Name] = e
		s.names = append(s.names, e.Name)
	}
	sort.Strings(s.names)

	return s, nil
}

// Len returns the number of entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// EntityNames returns all entity names in sorted order.
func (s *Store) EntityNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Entities returns the entities in table order.
func (s *Store) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// AttributeValue returns the value of field for the named entity.
func (s *Store) AttributeValue(entity string, field Field) (string, error) {
	if !field.Valid() {
		return "", &NotFoundError{Entity: entity, Field: field}
	}
	e, ok := s.byName[entity]
	if !ok {
		return "", &NotFoundError{Entity: entity, Field: field}
	}
	v, _ := e.Value(field)
	return v, nil
}

// DistinctValues returns the distinct values of field in table order.
func (s *Store) DistinctValues(field Field) []string {
	seen := make(map[string]bool, len(s.entities))
	var out []string
	for _, e := range s.entities {
		v, ok := e.Value(field)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// SampleDistractor returns the field value of a uniformly random entity
// whose value is not in exclude. Entities are drawn from the complement
// set directly, so the call never loops.
func (s *Store) SampleDistractor(rng *rand.Rand, field Field, exclude map[string]bool) (string, error) {
	if !field.Valid() {
		return "", &NotFoundError{Field: field}
	}

	candidates := make([]string, 0, len(s.entities))
	for _, e := range s.entities {
		v, _ := e.Value(field)
		if !exclude[v] {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoDistractor
	}
	return candidates[rng.IntN(len(candidates))], nil
}

package flake

import (
	"sort"
	"time"
)

// Input is a single locked dependency and when its pinned revision was made
type Input struct {
	Name         string
	LastModified time.Time
}

// InputSet maps input names to their last-modified instants. It is never
// empty and never changes after construction.
type InputSet struct {
	inputs map[string]time.Time
}

// NewInputSet builds an InputSet from a name to instant mapping.
// Returns ErrNoInputs when the mapping is empty.
func NewInputSet(inputs map[string]time.Time) (*InputSet, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	copied := make(map[string]time.Time, len(inputs))
	for name, ts := range inputs {
		copied[name] = ts.UTC()
	}
	return &InputSet{inputs: copied}, nil
}

// Len returns the number of inputs
func (s *InputSet) Len() int {
	return len(s.inputs)
}

// Get returns the last-modified instant of a named input
func (s *InputSet) Get(name string) (time.Time, bool) {
	ts, ok := s.inputs[name]
	return ts, ok
}

// Inputs returns all inputs sorted by name
func (s *InputSet) Inputs() []Input {
	result := make([]Input, 0, len(s.inputs))
	for name, ts := range s.inputs {
		result = append(result, Input{Name: name, LastModified: ts})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Latest returns the most recent last-modified instant
func (s *InputSet) Latest() time.Time {
	return s.LatestInput().LastModified
}

// LatestInput returns the most recently modified input.
// Ties go to the name that sorts first.
func (s *InputSet) LatestInput() Input {
	all := s.Inputs()
	latest := all[0]
	for _, in := range all[1:] {
		if in.LastModified.After(latest.LastModified) {
			latest = in
		}
	}
	return latest
}

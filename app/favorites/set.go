package favorites

import "sort"

// Set is a set of country codes. The zero value is not usable; use NewSet.
type Set struct {
	codes map[string]struct{}
}

// NewSet builds a set from codes, ignoring duplicates.
func NewSet(codes ...string) *Set {
	s := &Set{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		s.codes[c] = struct{}{}
	}
	return s
}

func (s *Set) Has(code string) bool {
	_, ok := s.codes[code]
	return ok
}

func (s *Set) Add(code string) { s.codes[code] = struct{}{} }

func (s *Set) Remove(code string) { delete(s.codes, code) }

// Toggle flips membership of code and reports whether it is now a member.
func (s *Set) Toggle(code string) bool {
	if s.Has(code) {
		s.Remove(code)
		return false
	}
	s.Add(code)
	return true
}

func (s *Set) Len() int { return len(s.codes) }

// Codes returns the members in ascending order.
func (s *Set) Codes() []string {
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return NewSet(s.Codes()...)
}

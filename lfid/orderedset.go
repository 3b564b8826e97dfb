package lfid

import "slices"

// nhSet is a sorted slice of FibNextHop ordered by FibNextHop.Less,
// giving O(log n) insert-position search, O(n) lookup by nhId and O(1)
// positional access for perDst / upwardPerDst. A slice is preferred
// over a tree here: per-destination sets are small (bounded by node
// degree), so the O(n) scan and insert shift costs stay small.
type nhSet []FibNextHop

// indexOf returns the position of nhId in the set and whether it
// exists.
func (s nhSet) indexOf(nhId NodeId) (int, bool) {
	for i, nh := range s {
		if nh.nhId == nhId {
			return i, true
		}
	}
	return -1, false
}

// insert adds nh in sorted position, returning false if an entry with
// the same nhId already exists (caller must treat that as fatal).
func (s *nhSet) insert(nh FibNextHop) bool {
	if _, ok := s.indexOf(nh.nhId); ok {
		return false
	}
	pos, _ := slices.BinarySearchFunc(*s, nh, func(a, b FibNextHop) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	*s = slices.Insert(*s, pos, nh)
	return true
}

// erase removes the entry with the given nhId, returning false if it
// was not present.
func (s *nhSet) erase(nhId NodeId) bool {
	pos, ok := s.indexOf(nhId)
	if !ok {
		return false
	}
	*s = slices.Delete(*s, pos, pos+1)
	return true
}

// clone returns an independent copy of the set.
func (s nhSet) clone() nhSet {
	return slices.Clone(s)
}

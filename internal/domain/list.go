package domain

import "sort"

// List is a named, ordered collection of todos.
// Lists are not stored with an ID; callers address them by position.
type List struct {
	Name  string `json:"name"`
	Todos []Todo `json:"todos"`
}

// Count returns the number of todos in the list.
func (l List) Count() int { return len(l.Todos) }

// Remaining returns the number of incomplete todos.
func (l List) Remaining() int {
	n := 0
	for _, t := range l.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// IsComplete reports whether the list has at least one todo and none left
// to do. An empty list is never complete.
func (l List) IsComplete() bool {
	return l.Count() > 0 && l.Remaining() == 0
}

// Lists is the per-session list collection, in creation order.
type Lists []List

// At returns a pointer to the list at index i, or false when out of range.
func (ls Lists) At(i int) (*List, bool) {
	if i < 0 || i >= len(ls) {
		return nil, false
	}
	return &ls[i], true
}

// IndexedList pairs a list with its position in the collection.
type IndexedList struct {
	List  List
	Index int
}

// SortLists orders lists for display with incomplete lists before complete
// ones. The sort is stable and every entry keeps its original index, since
// all mutations address lists by that index rather than display position.
func SortLists(ls Lists) []IndexedList {
	out := make([]IndexedList, len(ls))
	for i, l := range ls {
		out[i] = IndexedList{List: l, Index: i}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return completeKey(out[a].List) < completeKey(out[b].List)
	})
	return out
}

func completeKey(l List) int {
	if l.IsComplete() {
		return 1
	}
	return 0
}

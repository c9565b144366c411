package listview

// Selection is the set of row keys a bulk action operates on. Membership is
// independent of the visible page: "select all" covers the whole filtered
// row set, not just the rows currently on screen.
type Selection map[string]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Selection) Add(key string) {
	s[key] = struct{}{}
}

func (s Selection) Remove(key string) {
	delete(s, key)
}

// Toggle flips membership of key and reports whether it is now selected.
func (s Selection) Toggle(key string) bool {
	if s.Has(key) {
		s.Remove(key)
		return false
	}
	s.Add(key)
	return true
}

func (s Selection) Len() int {
	return len(s)
}

func (s Selection) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

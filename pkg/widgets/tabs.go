package widgets

// Tabs tracks which of a fixed set of tabs is selected.
type Tabs struct {
	Labels []string

	selected int
	changed  Notifier[int]
}

// OnChange sets the selection observer. A later call replaces it.
func (t *Tabs) OnChange(fn func(int)) { t.changed.Subscribe(fn) }

// Selected returns the selected index.
func (t *Tabs) Selected() int { return t.selected }

// Label returns the selected label, or "" with no tabs.
func (t *Tabs) Label() string {
	if t.selected < len(t.Labels) {
		return t.Labels[t.selected]
	}
	return ""
}

// Select selects tab i and notifies when the selection changes. Out of
// range indexes are ignored.
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.Labels) {
		return false
	}
	if i == t.selected {
		return true
	}
	t.selected = i
	t.changed.Notify(i)
	return true
}

// Next selects the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.Labels) > 0 {
		t.Select((t.selected + 1) % len(t.Labels))
	}
}

package listview

// Controller holds the mutable query state of one list view and enforces the
// state-sync rules in one place: changing the tab or the search term resets
// the page to 1 and clears the bulk selection in the same update. The source
// views each did this by hand (or forgot to); here it cannot be skipped.
type Controller[T any] struct {
	pipeline  *Pipeline[T]
	key       func(T) string
	query     Query
	selection Selection
}

// NewController wraps a pipeline with query state. key extracts the row key
// bulk selection is tracked by.
func NewController[T any](pipeline *Pipeline[T], key func(T) string) *Controller[T] {
	return &Controller[T]{
		pipeline:  pipeline,
		key:       key,
		query:     Query{Tab: SentinelTab(), Page: 1},
		selection: NewSelection(),
	}
}

func (c *Controller[T]) Query() Query {
	return c.query
}

// SelectTab switches the tab filter. Page resets to 1 and any bulk selection
// is dropped: rows selected under the old filter may no longer be visible.
func (c *Controller[T]) SelectTab(tab Tab) {
	if tab == c.query.Tab {
		return
	}
	c.query.Tab = tab
	c.query.Page = 1
	c.selection = NewSelection()
}

// SetSearch updates the search term with the same reset semantics as
// SelectTab.
func (c *Controller[T]) SetSearch(term string) {
	if term == c.query.Search {
		return
	}
	c.query.Search = term
	c.query.Page = 1
	c.selection = NewSelection()
}

// SetPage requests a page. The value is clamped when the view is computed,
// so an out-of-range request is harmless.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.query.Page = page
}

// View computes the current page over items and syncs the stored page index
// with the clamped result.
func (c *Controller[T]) View(items []T) Page[T] {
	page := c.pipeline.Apply(items, c.query)
	c.query.Page = page.PageIndex
	return page
}

// Selection returns the current bulk selection.
func (c *Controller[T]) Selection() Selection {
	return c.selection
}

// ToggleRow flips selection of a single row key.
func (c *Controller[T]) ToggleRow(key string) bool {
	return c.selection.Toggle(key)
}

// ToggleAll implements the "select all" checkbox: if every row in the
// current filtered set is already selected it clears the selection,
// otherwise it selects exactly the filtered set.
func (c *Controller[T]) ToggleAll(items []T) {
	filtered := c.pipeline.Filter(items, c.query)

	allSelected := len(filtered) > 0
	for _, item := range filtered {
		if !c.selection.Has(c.key(item)) {
			allSelected = false
			break
		}
	}

	c.selection = NewSelection()
	if allSelected {
		return
	}
	for _, item := range filtered {
		c.selection.Add(c.key(item))
	}
}

package deck

// Navigator keeps current position in the list of pages and moves it forward
// and backward one reveal step (or page) at a time. It is not safe for
// concurrent use.
type Navigator struct {
	entries []PageEntry
	index   int
}

func NewNavigator(entries []PageEntry) *Navigator {
	return &Navigator{entries: entries}
}

// Len returns number of pages.
func (n *Navigator) Len() int {
	return len(n.entries)
}

// Index returns index of the current page.
func (n *Navigator) Index() int {
	return n.index
}

// Current returns current page entry or nil when there are no pages.
func (n *Navigator) Current() *PageEntry {
	if len(n.entries) == 0 {
		return nil
	}
	return &n.entries[n.index]
}

// Next reveals next step of the current page or moves to the next page when
// everything is revealed. Only pages with MaxStep above 1 are stepped
// through, a page with MaxStep 1 is left right away. Step of the page being
// left is kept, coming back shows it as it was left.
func (n *Navigator) Next() {
	cur := n.Current()
	if cur == nil {
		return
	}
	switch {
	case cur.MaxStep > 1 && cur.Step < cur.MaxStep:
		cur.Step++
	case n.index+1 < len(n.entries):
		n.index++
	}
}

// Prev hides last revealed step of the current page or moves to the previous
// page when nothing is revealed.
func (n *Navigator) Prev() {
	cur := n.Current()
	if cur == nil {
		return
	}
	switch {
	case cur.Step > 0:
		cur.Step--
	case n.index > 0:
		n.index--
	}
}

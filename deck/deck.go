// Package deck turns a document into a sequence of pages with reveal state
// and drives navigation over it.
package deck

import "deck/document"

// PageEntry is a page together with its reveal state. Step is in [0, MaxStep].
type PageEntry struct {
	Page    document.Page
	MaxStep int
	Step    int
}

// Flatten produces one entry per document page, in document order, with
// nothing revealed beyond step 0.
func Flatten(doc *document.Document) []PageEntry {
	if doc == nil {
		return nil
	}
	entries := make([]PageEntry, 0, len(doc.Pages))
	for _, p := range doc.Pages {
		entries = append(entries, PageEntry{Page: p, MaxStep: p.MaxStep()})
	}
	return entries
}

// SceneRange is a half open range of linear scene numbers occupied by a
// page: every reveal step of the page is a separate scene.
type SceneRange struct {
	Start int
	End   int
}

// Threshold returns scene number at which content with given order becomes
// visible.
func (r SceneRange) Threshold(order int) int {
	return r.Start + order
}

// Contains reports whether scene belongs to the range.
func (r SceneRange) Contains(scene int) bool {
	return scene >= r.Start && scene < r.End
}

// Scenes lays pages out on a single scene axis. Ranges are consecutive, page
// with MaxStep m occupies m+1 scenes. The second result is total number of
// scenes.
func Scenes(entries []PageEntry) ([]SceneRange, int) {
	ranges := make([]SceneRange, 0, len(entries))
	total := 0
	for _, e := range entries {
		r := SceneRange{Start: total, End: total + e.MaxStep + 1}
		ranges = append(ranges, r)
		total = r.End
	}
	return ranges, total
}

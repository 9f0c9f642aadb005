package history

import (
	"sync"

	"voxscribe/internal/app/model"
)

// Browser is the stateful search-and-page view over a Store. The current page
// is re-clamped whenever the filtered count changes, so it never points past
// the last page.
type Browser struct {
	store *Store
	size  int

	mu       sync.Mutex
	query    string
	page     int
	filtered []model.HistoryEntry
}

// NewBrowser starts on page 1 with an empty query.
func NewBrowser(store *Store, pageSize int) *Browser {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	b := &Browser{store: store, size: pageSize, page: 1}
	b.filtered = store.Search("")
	return b
}

// SetQuery applies a new search and re-clamps the current page.
func (b *Browser) SetQuery(query string) Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = query
	b.filtered = b.store.Search(query)
	b.page = ClampPage(b.page, len(b.filtered), b.size)
	return b.currentLocked()
}

// GoTo moves to page number, clamped to the available pages.
func (b *Browser) GoTo(number int) Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = ClampPage(number, len(b.filtered), b.size)
	return b.currentLocked()
}

// Next moves forward one page, stopping at the last page.
func (b *Browser) Next() Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = ClampPage(b.page+1, len(b.filtered), b.size)
	return b.currentLocked()
}

// Prev moves back one page, stopping at page 1.
func (b *Browser) Prev() Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = ClampPage(b.page-1, len(b.filtered), b.size)
	return b.currentLocked()
}

// Current returns the page being displayed.
func (b *Browser) Current() Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentLocked()
}

// Query returns the active search.
func (b *Browser) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

func (b *Browser) currentLocked() Page {
	return Paginate(b.filtered, b.page, b.size)
}

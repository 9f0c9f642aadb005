package history

import (
	"fmt"

	"voxscribe/internal/app/model"
)

// DefaultPageSize is the number of entries shown per page.
const DefaultPageSize = 10

// Page is one page of a filtered list.
type Page struct {
	Items      []model.HistoryEntry
	Number     int
	Size       int
	Total      int
	TotalPages int
	// Start and End are the zero-based half-open bounds of Items in the list.
	Start int
	End   int
}

// Empty reports the "no results" case.
func (p Page) Empty() bool {
	return p.Total == 0
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

// Summary renders the pagination caption.
func (p Page) Summary() string {
	if p.Empty() {
		return "No transcriptions found"
	}
	return fmt.Sprintf("Showing %d to %d of %d transcriptions", p.Start+1, p.End, p.Total)
}

// TotalPages returns ceil(count/size); zero for an empty list.
func TotalPages(count, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	return (count + size - 1) / size
}

// ClampPage pulls number into [1, TotalPages(count, size)]. An empty list
// clamps to page 1.
func ClampPage(number, count, size int) int {
	last := TotalPages(count, size)
	if number > last {
		number = last
	}
	if number < 1 {
		number = 1
	}
	return number
}

// Paginate returns page number of filtered, clamping out-of-range numbers.
func Paginate(filtered []model.HistoryEntry, number, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(filtered)
	number = ClampPage(number, total, size)

	start := (number - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}

	return Page{
		Items:      append([]model.HistoryEntry(nil), filtered[start:end]...),
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: TotalPages(total, size),
		Start:      start,
		End:        end,
	}
}

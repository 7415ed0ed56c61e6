// Package query derives display-ready subsets of the employee collection:
// name search, then fixed-size pages. The filtering and paging primitives
// are pure functions over a snapshot; View adds the transient UI state
// (search text, current page) that drives them.
package query

import (
	"strings"

	"github.com/imcagla7/employee-management/internal/employee"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 10

// Filter returns the records whose first or last name contains search,
// case-insensitively. Empty or whitespace-only search returns the snapshot
// unmodified in order. No other fields participate in matching.
func Filter(records []employee.Employee, search string) []employee.Employee {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return records
	}

	var out []employee.Employee
	for _, e := range records {
		if strings.Contains(strings.ToLower(e.FirstName), q) ||
			strings.Contains(strings.ToLower(e.LastName), q) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages returns ceil(count/pageSize), never less than 1 so an empty
// result set still renders as "1 / 1".
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PageSlice returns the records on the given 1-based page.
func PageSlice(records []employee.Employee, page, pageSize int) []employee.Employee {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Source is the record store surface the view reads from.
type Source interface {
	All() []employee.Employee
	Subscribe(fn func()) int
	Unsubscribe(handle int)
}

// View holds the transient list-screen state over a record source. It
// subscribes to the source; any mutation resets the current page to 1, the
// same reset a search-text change performs, so a shrinking result set never
// leaves the view on a page past the end.
type View struct {
	source   Source
	search   string
	page     int
	pageSize int
	sub      int
}

// NewView creates a view over source with the default page size.
func NewView(source Source) *View {
	v := &View{
		source:   source,
		page:     1,
		pageSize: DefaultPageSize,
	}
	v.sub = source.Subscribe(func() { v.page = 1 })
	return v
}

// Close unsubscribes the view from its source.
func (v *View) Close() {
	v.source.Unsubscribe(v.sub)
}

// Search returns the current search text.
func (v *View) Search() string { return v.search }

// SetSearch updates the search text and resets to the first page.
func (v *View) SetSearch(q string) {
	v.search = q
	v.page = 1
}

// Page returns the current 1-based page.
func (v *View) Page() int { return v.page }

// PageSize returns the page size.
func (v *View) PageSize() int { return v.pageSize }

// SetPageSize changes the page size and resets to the first page.
func (v *View) SetPageSize(n int) {
	if n < 1 {
		n = DefaultPageSize
	}
	v.pageSize = n
	v.page = 1
}

// Filtered returns the full filtered set for the current search text.
func (v *View) Filtered() []employee.Employee {
	return Filter(v.source.All(), v.search)
}

// TotalPages returns the page count for the current filtered set.
func (v *View) TotalPages() int {
	return TotalPages(len(v.Filtered()), v.pageSize)
}

// Records returns the current page of the filtered set.
func (v *View) Records() []employee.Employee {
	return PageSlice(v.Filtered(), v.page, v.pageSize)
}

// HasPrev reports whether a previous page exists.
func (v *View) HasPrev() bool { return v.page > 1 }

// HasNext reports whether a next page exists.
func (v *View) HasNext() bool { return v.page < v.TotalPages() }

// Prev moves one page back; a no-op on the first page.
func (v *View) Prev() {
	if v.HasPrev() {
		v.page--
	}
}

// Next moves one page forward; a no-op on the last page.
func (v *View) Next() {
	if v.HasNext() {
		v.page++
	}
}

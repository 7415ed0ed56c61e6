package query

import (
	"fmt"
	"testing"

	"github.com/imcagla7/employee-management/internal/employee"
)

func makeEmployees(n int) []employee.Employee {
	out := make([]employee.Employee, n)
	for i := range out {
		out[i] = employee.Employee{
			ID:        int64(i + 1),
			FirstName: fmt.Sprintf("First%02d", i+1),
			LastName:  fmt.Sprintf("Last%02d", i+1),
		}
	}
	return out
}

// fakeSource is an in-memory Source with a manual notify trigger.
type fakeSource struct {
	records []employee.Employee
	subs    map[int]func()
	next    int
}

func newFakeSource(records []employee.Employee) *fakeSource {
	return &fakeSource{records: records, subs: make(map[int]func())}
}

func (f *fakeSource) All() []employee.Employee {
	out := make([]employee.Employee, len(f.records))
	copy(out, f.records)
	return out
}

func (f *fakeSource) Subscribe(fn func()) int {
	h := f.next
	f.next++
	f.subs[h] = fn
	return h
}

func (f *fakeSource) Unsubscribe(handle int) { delete(f.subs, handle) }

func (f *fakeSource) notify() {
	for _, fn := range f.subs {
		fn()
	}
}

func TestFilterEmptySearchReturnsAllInOrder(t *testing.T) {
	records := makeEmployees(5)

	for _, search := range []string{"", "   "} {
		got := Filter(records, search)
		if len(got) != len(records) {
			t.Fatalf("search %q: got %d records, want %d", search, len(got), len(records))
		}
		for i := range records {
			if got[i].ID != records[i].ID {
				t.Fatalf("search %q: order changed at %d", search, i)
			}
		}
	}
}

func TestFilterMatchesFirstOrLastNameOnly(t *testing.T) {
	records := []employee.Employee{
		{ID: 1, FirstName: "Ahmet", LastName: "Demir", EmailAddress: "zelda@example.com"},
		{ID: 2, FirstName: "Elif", LastName: "Ahmetoglu"},
		{ID: 3, FirstName: "Mehmet", LastName: "Kaya"},
	}

	got := Filter(records, "  ahmet ")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("filter ahmet: got %+v, want records 1 and 2", got)
	}

	// email is not searched
	if got := Filter(records, "zelda"); len(got) != 0 {
		t.Fatalf("filter on email text matched %d records, want 0", len(got))
	}
}

func TestFilterNoMatchYieldsEmptyAndOnePage(t *testing.T) {
	records := makeEmployees(7)

	got := Filter(records, "nobody")
	if len(got) != 0 {
		t.Fatalf("filter: got %d records, want 0", len(got))
	}
	if pages := TotalPages(len(got), DefaultPageSize); pages != 1 {
		t.Fatalf("total pages for empty set: got %d, want 1", pages)
	}
}

func TestPaginationWith23Records(t *testing.T) {
	v := NewView(newFakeSource(makeEmployees(23)))
	defer v.Close()

	if got := v.TotalPages(); got != 3 {
		t.Fatalf("total pages: got %d, want 3", got)
	}
	if got := len(v.Records()); got != 10 {
		t.Fatalf("page 1: got %d records, want 10", got)
	}

	v.Next()
	if got := len(v.Records()); got != 10 {
		t.Fatalf("page 2: got %d records, want 10", got)
	}

	v.Next()
	if v.Page() != 3 {
		t.Fatalf("page: got %d, want 3", v.Page())
	}
	if got := len(v.Records()); got != 3 {
		t.Fatalf("page 3: got %d records, want 3", got)
	}
	if v.HasNext() {
		t.Fatal("HasNext on the last page")
	}

	v.Next() // no-op past the end
	if v.Page() != 3 {
		t.Fatalf("next past the end moved to page %d", v.Page())
	}
}

func TestPrevDisabledOnFirstPage(t *testing.T) {
	v := NewView(newFakeSource(makeEmployees(15)))
	defer v.Close()

	if v.HasPrev() {
		t.Fatal("HasPrev on page 1")
	}
	v.Prev()
	if v.Page() != 1 {
		t.Fatalf("prev on page 1 moved to page %d", v.Page())
	}
}

func TestSearchChangeResetsPage(t *testing.T) {
	v := NewView(newFakeSource(makeEmployees(23)))
	defer v.Close()

	v.Next()
	v.Next()
	if v.Page() != 3 {
		t.Fatalf("page: got %d, want 3", v.Page())
	}

	v.SetSearch("First0")
	if v.Page() != 1 {
		t.Fatalf("page after search change: got %d, want 1", v.Page())
	}
}

func TestMutationNotificationResetsPage(t *testing.T) {
	src := newFakeSource(makeEmployees(23))
	v := NewView(src)
	defer v.Close()

	v.Next()
	v.Next()

	// simulate a store mutation: records shrink, change fires
	src.records = src.records[:3]
	src.notify()

	if v.Page() != 1 {
		t.Fatalf("page after change notification: got %d, want 1", v.Page())
	}
	if got := len(v.Records()); got != 3 {
		t.Fatalf("records after shrink: got %d, want 3", got)
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	src := newFakeSource(makeEmployees(23))
	v := NewView(src)

	v.Next()
	v.Close()
	src.notify()

	if v.Page() != 2 {
		t.Fatalf("closed view still observed the source: page %d", v.Page())
	}
}

func TestPageSliceBounds(t *testing.T) {
	records := makeEmployees(4)

	tests := []struct {
		page, size, want int
	}{
		{1, 10, 4},
		{2, 10, 0},
		{1, 2, 2},
		{2, 2, 2},
		{3, 2, 0},
		{0, 2, 2}, // page below 1 is treated as 1
	}
	for _, tt := range tests {
		if got := len(PageSlice(records, tt.page, tt.size)); got != tt.want {
			t.Errorf("PageSlice(page=%d, size=%d): got %d records, want %d",
				tt.page, tt.size, got, tt.want)
		}
	}
}

package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/imcagla7/employee-management/internal/employee"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

func validDraft(first, last string) employee.Employee {
	return employee.Employee{
		FirstName:        first,
		LastName:         last,
		DateOfEmployment: "2023-05-01",
		DateOfBirth:      "1991-02-11",
		PhoneNumber:      "+905321112233",
		EmailAddress:     first + "@example.com",
		Department:       employee.DepartmentTech,
		Position:         employee.PositionJunior,
	}
}

func openTestStore(t *testing.T) (*Store, *zfilesystem.MemFS) {
	t.Helper()
	fsys := zfilesystem.NewMemFS()
	s, err := Open(fsys)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s, fsys
}

// openEmptyStore starts from a persisted empty collection, so tests control
// exactly what is in the store.
func openEmptyStore(t *testing.T) (*Store, *zfilesystem.MemFS) {
	t.Helper()
	fsys := zfilesystem.NewMemFS()
	if err := fsys.WriteFile("employees.json", []byte("[]"), 0o600); err != nil {
		t.Fatalf("write empty blob: %v", err)
	}
	s, err := Open(fsys)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s, fsys
}

func TestFirstRunSeedsAndPersists(t *testing.T) {
	s, fsys := openTestStore(t)

	all := s.All()
	if len(all) == 0 {
		t.Fatal("first run: collection is empty, want seed dataset")
	}

	data, err := fsys.ReadFile("employees.json")
	if err != nil {
		t.Fatal("seed dataset not persisted on first run")
	}

	var persisted []employee.Employee
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("unmarshal persisted blob: %v", err)
	}
	if len(persisted) != len(all) {
		t.Fatalf("persisted %d records, in-memory %d", len(persisted), len(all))
	}
}

func TestCorruptBlobFallsBackToSeedAndPersists(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	if err := fsys.WriteFile("employees.json", []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}

	s, err := Open(fsys)
	if err != nil {
		t.Fatalf("open store with corrupt blob: %v", err)
	}

	if len(s.All()) == 0 {
		t.Fatal("corrupt blob: want seed dataset fallback")
	}

	// the corrupt blob is overwritten so the next open parses cleanly
	data, err := fsys.ReadFile("employees.json")
	if err != nil {
		t.Fatalf("read recovered blob: %v", err)
	}
	var persisted []employee.Employee
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("recovered blob still corrupt: %v", err)
	}
}

func TestAddAssignsIDAndPersists(t *testing.T) {
	s, fsys := openEmptyStore(t)

	notified := 0
	s.Subscribe(func() { notified++ })

	rec, err := s.Add(validDraft("Ada", "Lovelace"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("add: identifier not assigned")
	}
	if notified != 1 {
		t.Fatalf("change notifications: got %d, want 1", notified)
	}

	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatalf("get after add: %v", err)
	}
	if got != rec {
		t.Fatalf("get after add: got %+v, want %+v", got, rec)
	}

	data, err := fsys.ReadFile("employees.json")
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	var persisted []employee.Employee
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("unmarshal blob: %v", err)
	}
	if len(persisted) != 1 || persisted[0] != rec {
		t.Fatalf("persisted blob: got %+v, want [%+v]", persisted, rec)
	}
}

func TestAddSequenceKeepsIDsUnique(t *testing.T) {
	s, _ := openTestStore(t)

	for i := 0; i < 25; i++ {
		if _, err := s.Add(validDraft("Bulk", "Add")); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := s.Delete(s.All()[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Add(validDraft("After", "Delete")); err != nil {
		t.Fatalf("add after delete: %v", err)
	}

	seen := make(map[int64]bool)
	for _, e := range s.All() {
		if seen[e.ID] {
			t.Fatalf("duplicate identifier %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestEditMergesSuppliedFieldsOnly(t *testing.T) {
	s, _ := openEmptyStore(t)

	rec, err := s.Add(validDraft("Ada", "Lovelace"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	phone := "+905419998877"
	if err := s.Edit(rec.ID, Update{PhoneNumber: &phone}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PhoneNumber != phone {
		t.Errorf("PhoneNumber: got %q, want %q", got.PhoneNumber, phone)
	}

	want := rec
	want.PhoneNumber = phone
	if got != want {
		t.Errorf("edit touched other fields: got %+v, want %+v", got, want)
	}
}

func TestEditUnknownIDIsNotFoundWithoutNotification(t *testing.T) {
	s, _ := openEmptyStore(t)

	notified := 0
	s.Subscribe(func() { notified++ })

	name := "Ghost"
	err := s.Edit(999, Update{FirstName: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit unknown id: got %v, want ErrNotFound", err)
	}
	if notified != 0 {
		t.Fatalf("change notifications: got %d, want 0", notified)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s, _ := openEmptyStore(t)

	a, _ := s.Add(validDraft("Ada", "Lovelace"))
	b, _ := s.Add(validDraft("Grace", "Hopper"))

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.Get(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: got %v, want ErrNotFound", err)
	}
	all := s.All()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("collection after delete: got %+v, want only %d", all, b.ID)
	}

	if err := s.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: got %v, want ErrNotFound", err)
	}
	if len(s.All()) != 1 {
		t.Fatal("double delete changed the collection")
	}
}

func TestReopenReproducesCollection(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	if err := fsys.WriteFile("employees.json", []byte("[]"), 0o600); err != nil {
		t.Fatalf("write empty blob: %v", err)
	}

	s1, err := Open(fsys)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := s1.Add(validDraft("Ada", "Lovelace")); err != nil {
		t.Fatalf("add: %v", err)
	}
	b, _ := s1.Add(validDraft("Grace", "Hopper"))
	phone := "+905301234567"
	if err := s1.Edit(b.ID, Update{PhoneNumber: &phone}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := s1.SetLanguage("tr"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	want := s1.All()

	s2, err := Open(fsys)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	got := s2.All()
	if len(got) != len(want) {
		t.Fatalf("reopen: %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if s2.Language() != "tr" {
		t.Errorf("language after reopen: got %q, want tr", s2.Language())
	}
}

func TestAllReturnsIndependentCopy(t *testing.T) {
	s, _ := openTestStore(t)

	snap := s.All()
	snap[0].FirstName = "Mutated"

	if s.All()[0].FirstName == "Mutated" {
		t.Fatal("mutating a snapshot reached the canonical collection")
	}
}

func TestSetLanguageIdempotentNotification(t *testing.T) {
	s, _ := openTestStore(t)

	notified := 0
	s.Subscribe(func() { notified++ })

	if err := s.SetLanguage("tr"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if err := s.SetLanguage("tr"); err != nil {
		t.Fatalf("set language again: %v", err)
	}

	if notified != 1 {
		t.Fatalf("change notifications: got %d, want 1", notified)
	}
	if s.Language() != "tr" {
		t.Fatalf("language: got %q, want tr", s.Language())
	}
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.SetLanguage("xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("set unknown language: got %v, want ErrUnsupportedLanguage", err)
	}
	if s.Language() != "en" {
		t.Fatalf("language after rejected set: got %q, want en", s.Language())
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s, _ := openEmptyStore(t)

	first, second := 0, 0
	h := s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	if _, err := s.Add(validDraft("Ada", "Lovelace")); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Unsubscribe(h)
	if _, err := s.Add(validDraft("Grace", "Hopper")); err != nil {
		t.Fatalf("add: %v", err)
	}

	if first != 1 {
		t.Errorf("unsubscribed observer: got %d notifications, want 1", first)
	}
	if second != 2 {
		t.Errorf("active observer: got %d notifications, want 2", second)
	}
}

// failFS wraps a MemFS and fails every write once armed.
type failFS struct {
	zfilesystem.ReadWriteFileFS
	failWrites bool
}

func (f *failFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if f.failWrites {
		return errors.New("quota exceeded")
	}
	return f.ReadWriteFileFS.WriteFile(path, data, perm)
}

func TestPersistenceFailureSurfacesAndRollsBack(t *testing.T) {
	fsys := &failFS{ReadWriteFileFS: zfilesystem.NewMemFS()}
	if err := fsys.WriteFile("employees.json", []byte("[]"), 0o600); err != nil {
		t.Fatalf("write empty blob: %v", err)
	}

	s, err := Open(fsys)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	notified := 0
	s.Subscribe(func() { notified++ })

	fsys.failWrites = true

	if _, err := s.Add(validDraft("Ada", "Lovelace")); err == nil {
		t.Fatal("add with failing persistence: want error")
	}
	if len(s.All()) != 0 {
		t.Fatal("failed add left a record in the collection")
	}
	if err := s.SetLanguage("tr"); err == nil {
		t.Fatal("set language with failing persistence: want error")
	}
	if s.Language() != "en" {
		t.Fatalf("failed SetLanguage mutated state: got %q", s.Language())
	}
	if notified != 0 {
		t.Fatalf("failed mutations notified %d times, want 0", notified)
	}

	fsys.failWrites = false
	if _, err := s.Add(validDraft("Ada", "Lovelace")); err != nil {
		t.Fatalf("add after recovery: %v", err)
	}
	if notified != 1 {
		t.Fatalf("notifications after recovery: got %d, want 1", notified)
	}
}

func TestAddScenarioFromEmptySeed(t *testing.T) {
	s, fsys := openEmptyStore(t)

	notified := 0
	s.Subscribe(func() { notified++ })

	rec, err := s.Add(validDraft("Ada", "Lovelace"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(s.All()) != 1 {
		t.Fatalf("collection length: got %d, want 1", len(s.All()))
	}
	if rec.ID == 0 {
		t.Fatal("identifier is zero")
	}
	if notified != 1 {
		t.Fatalf("change notifications: got %d, want 1", notified)
	}

	data, err := fsys.ReadFile("employees.json")
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	var persisted []employee.Employee
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("decode blob: %v", err)
	}
	if len(persisted) != 1 || persisted[0] != rec {
		t.Fatalf("persisted blob: got %+v, want [%+v]", persisted, rec)
	}
}

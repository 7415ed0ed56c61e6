// Package store owns the canonical employee collection and the current UI
// language, persisted as plain JSON blobs on a filesystem. Every mutation is
// written through before observers are notified, so a subscriber that
// re-reads the store always sees durable state.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/imcagla7/employee-management/internal/employee"
	"github.com/imcagla7/employee-management/internal/i18n"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

const (
	employeesFile = "employees.json"
	languageFile  = "language"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("employee not found")

// ErrUnsupportedLanguage is returned by SetLanguage for unknown codes.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Store is the single writable source of truth for employee records.
type Store struct {
	mu        sync.Mutex
	fs        zfilesystem.ReadWriteFileFS
	employees []employee.Employee
	nextID    int64
	language  string

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Open loads the store from fsys. A missing collection blob initializes the
// seed dataset and persists it; an unparseable blob falls back to the seed
// dataset and overwrites the corrupt blob so the next open does not re-hit
// the failure. A missing or unknown language code falls back to the default.
func Open(fsys zfilesystem.ReadWriteFileFS) (*Store, error) {
	s := &Store{
		fs:   fsys,
		subs: make(map[int]func()),
	}

	if err := s.loadEmployees(); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s.loadLanguage()

	return s, nil
}

func (s *Store) loadEmployees() error {
	data, err := s.fs.ReadFile(employeesFile)
	if err != nil {
		// first run — seed and persist
		s.employees = seedEmployees()
		s.nextID = maxID(s.employees) + 1
		return s.persistEmployees()
	}

	var emps []employee.Employee
	if err := json.Unmarshal(data, &emps); err != nil {
		// corrupt blob — recover with the seed dataset and persist it
		s.employees = seedEmployees()
		s.nextID = maxID(s.employees) + 1
		return s.persistEmployees()
	}

	s.employees = emps
	s.nextID = maxID(emps) + 1
	return nil
}

func (s *Store) loadLanguage() {
	s.language = i18n.Default
	data, err := s.fs.ReadFile(languageFile)
	if err != nil {
		return
	}
	if code := string(data); i18n.Supported(code) {
		s.language = code
	}
}

func (s *Store) persistEmployees() error {
	data, err := json.MarshalIndent(s.employees, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal employees: %w", err)
	}
	if err := s.fs.WriteFile(employeesFile, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", employeesFile, err)
	}
	return nil
}

// All returns an independent copy of the full collection in insertion order.
func (s *Store) All() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id int64) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, ErrNotFound
}

// Add assigns a fresh identifier to draft, appends it, persists, and
// notifies subscribers. The stored record is returned. Identifiers come from
// a monotonic counter, so rapid successive adds never collide. A persistence
// failure rolls the append back and is returned to the caller.
func (s *Store) Add(draft employee.Employee) (employee.Employee, error) {
	s.mu.Lock()

	draft.ID = s.nextID
	s.employees = append(s.employees, draft)

	if err := s.persistEmployees(); err != nil {
		s.employees = s.employees[:len(s.employees)-1]
		s.mu.Unlock()
		return employee.Employee{}, fmt.Errorf("add employee: %w", err)
	}
	s.nextID++
	s.mu.Unlock()

	s.notify()
	return draft, nil
}

// Update carries the fields an edit supplies. Nil fields are left unchanged
// on the record.
type Update struct {
	FirstName        *string
	LastName         *string
	DateOfEmployment *string
	DateOfBirth      *string
	PhoneNumber      *string
	EmailAddress     *string
	Department       *employee.Department
	Position         *employee.Position
}

func (u Update) apply(e employee.Employee) employee.Employee {
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.DateOfEmployment != nil {
		e.DateOfEmployment = *u.DateOfEmployment
	}
	if u.DateOfBirth != nil {
		e.DateOfBirth = *u.DateOfBirth
	}
	if u.PhoneNumber != nil {
		e.PhoneNumber = *u.PhoneNumber
	}
	if u.EmailAddress != nil {
		e.EmailAddress = *u.EmailAddress
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	return e
}

// Edit merges upd onto the record matching id, persists, and notifies.
// An unknown id returns ErrNotFound without persisting or notifying.
func (s *Store) Edit(id int64, upd Update) error {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	prev := s.employees[idx]
	s.employees[idx] = upd.apply(prev)

	if err := s.persistEmployees(); err != nil {
		s.employees[idx] = prev
		s.mu.Unlock()
		return fmt.Errorf("edit employee %d: %w", id, err)
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Delete removes the record matching id, persists, and notifies. An unknown
// id returns ErrNotFound without persisting or notifying. Deletion is
// irreversible; there is no tombstone.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	prev := s.employees
	next := make([]employee.Employee, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.employees = next

	if err := s.persistEmployees(); err != nil {
		s.employees = prev
		s.mu.Unlock()
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int64) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Language returns the current UI language code.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage switches the UI language, persists it, and notifies. Setting
// the current value again is a no-op with no notification; unknown codes
// return ErrUnsupportedLanguage.
func (s *Store) SetLanguage(code string) error {
	if !i18n.Supported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	s.mu.Lock()
	if code == s.language {
		s.mu.Unlock()
		return nil
	}

	prev := s.language
	s.language = code
	if err := s.fs.WriteFile(languageFile, []byte(code), 0o600); err != nil {
		s.language = prev
		s.mu.Unlock()
		return fmt.Errorf("write %s: %w", languageFile, err)
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Subscribe registers fn to run after every successful mutation and returns
// a handle for Unsubscribe. Notifications carry no payload; subscribers
// re-pull state via All or Get.
func (s *Store) Subscribe(fn func()) int {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	h := s.nextSub
	s.nextSub++
	s.subs[h] = fn
	return h
}

// Unsubscribe removes the subscriber registered under handle.
func (s *Store) Unsubscribe(handle int) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	delete(s.subs, handle)
}

// notify runs outside the store lock so subscribers can read back in.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func maxID(emps []employee.Employee) int64 {
	var max int64
	for _, e := range emps {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

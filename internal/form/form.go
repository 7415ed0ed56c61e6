// Package form implements the add/edit draft and its validation state
// machine. The engine holds field values as entered, validates them all on
// submit (never fail-fast), and reports violations as a field→message-key
// mapping the UI renders through the translation table. It never touches
// the record store; the container commits once the engine reaches
// StateCommitted.
package form

import (
	"regexp"
	"strings"
	"time"

	"github.com/imcagla7/employee-management/internal/employee"
	"github.com/imcagla7/employee-management/internal/store"
)

// Field names, also the keys of the error mapping.
const (
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldDateOfEmployment = "dateOfEmployment"
	FieldDateOfBirth      = "dateOfBirth"
	FieldPhoneNumber      = "phoneNumber"
	FieldEmailAddress     = "emailAddress"
	FieldDepartment       = "department"
	FieldPosition         = "position"
)

// Fields lists all field names in form order.
func Fields() []string {
	return []string{
		FieldFirstName,
		FieldLastName,
		FieldDateOfEmployment,
		FieldDateOfBirth,
		FieldPhoneNumber,
		FieldEmailAddress,
		FieldDepartment,
		FieldPosition,
	}
}

// State is the draft lifecycle position.
type State int

const (
	// StateEditing accepts field changes and submit attempts.
	StateEditing State = iota
	// StateConfirmPending means an edit-mode draft validated cleanly and
	// waits for explicit user confirmation before committing.
	StateConfirmPending
	// StateCommitted is terminal; the container may now invoke the store.
	StateCommitted
)

const dateLayout = "2006-01-02"

var (
	// national mobile numbers: optional country-code prefix, then a
	// leading 5 and nine further digits
	phonePattern = regexp.MustCompile(`^(\+90|0)?5[0-9]{9}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Engine holds one draft through its lifecycle. A fresh engine is created
// for every add/edit entry; StateCommitted ends the draft's relevance.
type Engine struct {
	values  map[string]string
	errors  map[string]string
	state   State
	editing bool
	id      int64
}

// New returns an engine with an empty draft for creating a record.
func New() *Engine {
	return &Engine{
		values: make(map[string]string, len(Fields())),
		errors: make(map[string]string),
	}
}

// NewEdit returns an engine prefilled from an existing record. A successful
// submit will additionally require Confirm before the draft commits.
func NewEdit(rec employee.Employee) *Engine {
	e := New()
	e.editing = true
	e.id = rec.ID
	e.values[FieldFirstName] = rec.FirstName
	e.values[FieldLastName] = rec.LastName
	e.values[FieldDateOfEmployment] = rec.DateOfEmployment
	e.values[FieldDateOfBirth] = rec.DateOfBirth
	e.values[FieldPhoneNumber] = rec.PhoneNumber
	e.values[FieldEmailAddress] = rec.EmailAddress
	e.values[FieldDepartment] = string(rec.Department)
	e.values[FieldPosition] = string(rec.Position)
	return e
}

// Editing reports whether the draft was prefilled from an existing record.
func (e *Engine) Editing() bool { return e.editing }

// ID returns the record identifier an edit-mode draft belongs to.
func (e *Engine) ID() int64 { return e.id }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Value returns the current value of the named field.
func (e *Engine) Value(field string) string { return e.values[field] }

// SetField stores a field value and eagerly clears that field's error.
// Errors are not re-validated until the next submit attempt.
func (e *Engine) SetField(field, value string) {
	e.values[field] = value
	delete(e.errors, field)
	if e.state == StateConfirmPending {
		e.state = StateEditing
	}
}

// Errors returns the field→message-key mapping from the last submit.
// An empty mapping means the draft validated cleanly.
func (e *Engine) Errors() map[string]string { return e.errors }

// Submit validates every field and reports whether the draft is valid.
// Valid add-mode drafts go straight to StateCommitted; valid edit-mode
// drafts move to StateConfirmPending and wait for Confirm or Decline.
func (e *Engine) Submit() bool {
	e.errors = e.validate()
	if len(e.errors) > 0 {
		e.state = StateEditing
		return false
	}

	if e.editing {
		e.state = StateConfirmPending
	} else {
		e.state = StateCommitted
	}
	return true
}

// Confirm approves a pending edit, moving the draft to StateCommitted.
func (e *Engine) Confirm() {
	if e.state == StateConfirmPending {
		e.state = StateCommitted
	}
}

// Decline aborts a pending edit with no state change to the draft values
// or errors; the engine returns to StateEditing.
func (e *Engine) Decline() {
	if e.state == StateConfirmPending {
		e.state = StateEditing
	}
}

func (e *Engine) validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(e.values[FieldFirstName]) == "" {
		errs[FieldFirstName] = "firstNameRequired"
	}
	if strings.TrimSpace(e.values[FieldLastName]) == "" {
		errs[FieldLastName] = "lastNameRequired"
	}

	validateDate(errs, FieldDateOfEmployment, e.values[FieldDateOfEmployment], "dateOfEmploymentRequired")
	validateDate(errs, FieldDateOfBirth, e.values[FieldDateOfBirth], "dateOfBirthRequired")

	phone := strings.TrimSpace(e.values[FieldPhoneNumber])
	switch {
	case phone == "":
		errs[FieldPhoneNumber] = "phoneNumberRequired"
	case !phonePattern.MatchString(phone):
		errs[FieldPhoneNumber] = "invalidPhone"
	}

	email := strings.TrimSpace(e.values[FieldEmailAddress])
	switch {
	case email == "":
		errs[FieldEmailAddress] = "emailAddressRequired"
	case !emailPattern.MatchString(email):
		errs[FieldEmailAddress] = "invalidEmail"
	}

	if !employee.Department(e.values[FieldDepartment]).Valid() {
		errs[FieldDepartment] = "departmentRequired"
	}
	if !employee.Position(e.values[FieldPosition]).Valid() {
		errs[FieldPosition] = "positionRequired"
	}

	return errs
}

func validateDate(errs map[string]string, field, value, requiredKey string) {
	v := strings.TrimSpace(value)
	if v == "" {
		errs[field] = requiredKey
		return
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		errs[field] = "invalidDate"
	}
}

// Employee builds the record a valid draft describes, fields trimmed. The
// identifier is zero in add mode; the store assigns it.
func (e *Engine) Employee() employee.Employee {
	return employee.Employee{
		ID:               e.id,
		FirstName:        strings.TrimSpace(e.values[FieldFirstName]),
		LastName:         strings.TrimSpace(e.values[FieldLastName]),
		DateOfEmployment: strings.TrimSpace(e.values[FieldDateOfEmployment]),
		DateOfBirth:      strings.TrimSpace(e.values[FieldDateOfBirth]),
		PhoneNumber:      strings.TrimSpace(e.values[FieldPhoneNumber]),
		EmailAddress:     strings.TrimSpace(e.values[FieldEmailAddress]),
		Department:       employee.Department(e.values[FieldDepartment]),
		Position:         employee.Position(e.values[FieldPosition]),
	}
}

// Update builds the store merge for an edit-mode draft. Every field is
// supplied; the draft started from the full record, so unchanged fields
// merge back as themselves.
func (e *Engine) Update() store.Update {
	rec := e.Employee()
	return store.Update{
		FirstName:        &rec.FirstName,
		LastName:         &rec.LastName,
		DateOfEmployment: &rec.DateOfEmployment,
		DateOfBirth:      &rec.DateOfBirth,
		PhoneNumber:      &rec.PhoneNumber,
		EmailAddress:     &rec.EmailAddress,
		Department:       &rec.Department,
		Position:         &rec.Position,
	}
}

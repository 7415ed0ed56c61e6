// Package employee defines the employee record and its enumerated fields.
package employee

// Department is the organizational unit an employee belongs to.
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Departments lists the valid department values in display order.
func Departments() []Department {
	return []Department{DepartmentAnalytics, DepartmentTech}
}

// Valid reports whether d is one of the enumerated departments.
func (d Department) Valid() bool {
	return d == DepartmentAnalytics || d == DepartmentTech
}

// Position is an employee's seniority level.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Positions lists the valid position values in display order.
func Positions() []Position {
	return []Position{PositionJunior, PositionMedior, PositionSenior}
}

// Valid reports whether p is one of the enumerated positions.
func (p Position) Valid() bool {
	return p == PositionJunior || p == PositionMedior || p == PositionSenior
}

// Employee is one directory record. The JSON field names are the persisted
// blob schema and must stay stable across releases; dates are stored as
// "2006-01-02" strings.
type Employee struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	PhoneNumber      string     `json:"phoneNumber"`
	EmailAddress     string     `json:"emailAddress"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// FullName returns "First Last" for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

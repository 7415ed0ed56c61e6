package store

import "github.com/imcagla7/employee-management/internal/employee"

// seedEmployees returns the dataset a fresh store starts with. Each call
// returns a new slice so callers can never alias the canonical collection.
func seedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:               1,
			FirstName:        "Ahmet",
			LastName:         "Sourcer",
			DateOfEmployment: "2022-09-23",
			DateOfBirth:      "1990-01-01",
			PhoneNumber:      "+905321234567",
			EmailAddress:     "ahmet@sourtimes.org",
			Department:       employee.DepartmentAnalytics,
			Position:         employee.PositionJunior,
		},
		{
			ID:               2,
			FirstName:        "Elif",
			LastName:         "Demir",
			DateOfEmployment: "2021-03-15",
			DateOfBirth:      "1992-07-19",
			PhoneNumber:      "+905439876543",
			EmailAddress:     "elif.demir@example.com",
			Department:       employee.DepartmentTech,
			Position:         employee.PositionMedior,
		},
		{
			ID:               3,
			FirstName:        "Mehmet",
			LastName:         "Kaya",
			DateOfEmployment: "2018-11-02",
			DateOfBirth:      "1985-12-30",
			PhoneNumber:      "05051112233",
			EmailAddress:     "mehmet.kaya@example.com",
			Department:       employee.DepartmentTech,
			Position:         employee.PositionSenior,
		},
	}
}

package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employee accumulates hour and credit totals across every shift row
// that references the same person.
type Employee struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	SpreadCredits  decimal.Decimal

	// MatchedTip is the ledger amount claimed for this employee during
	// row generation, zero when no ledger entry matched.
	MatchedTip decimal.Decimal
}

// FullName returns "First Last" with blank parts dropped.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeSet holds aggregated employees keyed by employee number or
// normalized full name, preserving first-seen order.
type EmployeeSet struct {
	byKey map[string]*Employee
	order []string
}

// NewEmployeeSet creates an empty set.
func NewEmployeeSet() *EmployeeSet {
	return &EmployeeSet{byKey: make(map[string]*Employee)}
}

// Get returns the employee for key, or nil.
func (s *EmployeeSet) Get(key string) *Employee {
	return s.byKey[key]
}

// Add inserts an employee under key. Keys already present keep their
// original entry and position.
func (s *EmployeeSet) Add(key string, e *Employee) {
	if _, ok := s.byKey[key]; ok {
		return
	}
	s.byKey[key] = e
	s.order = append(s.order, key)
}

// All returns employees in insertion order.
func (s *EmployeeSet) All() []*Employee {
	out := make([]*Employee, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// Keys returns the set's keys in insertion order.
func (s *EmployeeSet) Keys() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of distinct employees.
func (s *EmployeeSet) Len() int {
	return len(s.order)
}

// NormalizeName lowercases a name, collapses internal whitespace, and
// trims it. Ledger keys and name-based employee keys both use this
// form so the two sides compare exactly.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

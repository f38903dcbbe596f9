package model

import "github.com/shopspring/decimal"

// TipsMap maps normalized ledger names to summed dollar amounts,
// preserving the order names first appeared in the ledger. The matcher
// scans keys in that order, so order is part of the matching contract.
type TipsMap struct {
	amounts map[string]decimal.Decimal
	order   []string
}

// NewTipsMap creates an empty map.
func NewTipsMap() *TipsMap {
	return &TipsMap{amounts: make(map[string]decimal.Decimal)}
}

// Add sums amount into the entry for key, creating it if needed.
func (m *TipsMap) Add(key string, amount decimal.Decimal) {
	if _, ok := m.amounts[key]; !ok {
		m.order = append(m.order, key)
	}
	m.amounts[key] = m.amounts[key].Add(amount)
}

// Amount returns the summed amount for key.
func (m *TipsMap) Amount(key string) (decimal.Decimal, bool) {
	amt, ok := m.amounts[key]
	return amt, ok
}

// Has reports whether key is present.
func (m *TipsMap) Has(key string) bool {
	_, ok := m.amounts[key]
	return ok
}

// Keys returns keys in insertion order.
func (m *TipsMap) Keys() []string {
	return append([]string(nil), m.order...)
}

// Len returns the number of distinct names.
func (m *TipsMap) Len() int {
	return len(m.order)
}

// Total sums every entry.
func (m *TipsMap) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amt := range m.amounts {
		total = total.Add(amt)
	}
	return total
}

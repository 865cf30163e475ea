package service

import "fmt"

// Money is an amount in cents. Billing never produces fractional cents
// because partial hours are not billed.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

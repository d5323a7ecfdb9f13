package metrics

import "github.com/san-kum/atomsim/internal/sim"

// Contacts counts overlapping nucleus pairs summed over all frames.
type Contacts struct {
	name  string
	total int
}

func NewContacts() *Contacts {
	return &Contacts{name: "contacts"}
}

func (c *Contacts) Name() string { return c.name }

func (c *Contacts) Observe(f sim.Frame) {
	c.total += f.Contacts
}

func (c *Contacts) Value() float64 {
	return float64(c.total)
}

func (c *Contacts) Reset() {
	c.total = 0
}

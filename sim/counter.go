package sim

import "fmt"

// CounterState is the lifecycle state of a service counter.
type CounterState string

const (
	CounterFree CounterState = "free"
	CounterBusy CounterState = "busy"
)

// ServiceCounter serves one visitor at a time.
// A Busy counter counts its remaining minutes down on every Tick and becomes
// Free once they reach zero.
type ServiceCounter struct {
	ID        int
	state     CounterState
	remaining int
	category  Category // valid only while Busy
	handled   [NumCategories]int
}

// NewServiceCounter returns a Free counter.
func NewServiceCounter(id int) *ServiceCounter {
	return &ServiceCounter{ID: id, state: CounterFree}
}

// IsFree reports whether the counter can accept a visitor.
func (c *ServiceCounter) IsFree() bool {
	return c.state == CounterFree
}

// State returns the current lifecycle state.
func (c *ServiceCounter) State() CounterState {
	return c.state
}

// Remaining returns the minutes left on the current visitor, 0 when Free.
func (c *ServiceCounter) Remaining() int {
	return c.remaining
}

// Category returns the category of the visitor being served.
// ok is false when the counter is Free.
func (c *ServiceCounter) Category() (category Category, ok bool) {
	if c.state != CounterBusy {
		return 0, false
	}
	return c.category, true
}

// Handled returns how many visitors of each category this counter has taken.
func (c *ServiceCounter) Handled() [NumCategories]int {
	return c.handled
}

// Assign starts serving v. The counter MUST be Free.
func (c *ServiceCounter) Assign(v Visitor) {
	if c.state != CounterFree {
		panic(fmt.Sprintf("Assign: counter %d is busy with %s (%d min left)", c.ID, c.category, c.remaining))
	}
	if v.ServiceDuration <= 0 {
		panic(fmt.Sprintf("Assign: visitor %v has non-positive service duration", v))
	}
	if !v.Category.Valid() {
		panic(fmt.Sprintf("Assign: visitor %v has unknown category", v))
	}
	c.state = CounterBusy
	c.remaining = v.ServiceDuration
	c.category = v.Category
	c.handled[v.Category]++
}

// Tick advances the counter by one minute.
// Returns true when this tick finished the current visitor.
// A Free counter is left untouched.
func (c *ServiceCounter) Tick() bool {
	if c.state != CounterBusy {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = CounterFree
		return true
	}
	return false
}

func (c *ServiceCounter) String() string {
	if c.state == CounterBusy {
		return fmt.Sprintf("Counter(%d, busy, %s, %dmin left)", c.ID, c.category, c.remaining)
	}
	return fmt.Sprintf("Counter(%d, free)", c.ID)
}

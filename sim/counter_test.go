package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceCounter_New_IsFree(t *testing.T) {
	c := NewServiceCounter(0)
	assert.True(t, c.IsFree())
	assert.Equal(t, CounterFree, c.State())
	assert.Equal(t, 0, c.Remaining())
	_, ok := c.Category()
	assert.False(t, ok)
}

func TestServiceCounter_Assign_BecomesBusy(t *testing.T) {
	// GIVEN a free counter
	c := NewServiceCounter(1)

	// WHEN an old man needing 8 minutes is assigned
	c.Assign(NewVisitor(OldMan, 8, Offline))

	// THEN the counter is busy with 8 minutes remaining
	assert.False(t, c.IsFree())
	assert.Equal(t, 8, c.Remaining())
	cat, ok := c.Category()
	assert.True(t, ok)
	assert.Equal(t, OldMan, cat)
	// AND its handled tally counts the visitor
	assert.Equal(t, [NumCategories]int{0, 0, 1}, c.Handled())
}

func TestServiceCounter_Tick_CompletesAfterServiceDuration(t *testing.T) {
	c := NewServiceCounter(0)
	c.Assign(NewVisitor(Adult, 3, Electronic))

	assert.False(t, c.Tick())
	assert.False(t, c.Tick())
	assert.False(t, c.IsFree())
	assert.Equal(t, 1, c.Remaining())

	assert.True(t, c.Tick(), "third tick must finish a 3-minute visitor")
	assert.True(t, c.IsFree())
	assert.Equal(t, 0, c.Remaining())
}

func TestServiceCounter_Tick_FreeIsNoOp(t *testing.T) {
	// GIVEN a counter that served one visitor and is free again
	c := NewServiceCounter(0)
	c.Assign(NewVisitor(Child, 1, Offline))
	c.Tick()
	before := *c

	// WHEN ticking repeatedly
	for i := 0; i < 5; i++ {
		assert.False(t, c.Tick())
	}

	// THEN nothing changed
	assert.Equal(t, before, *c)
}

func TestServiceCounter_Assign_Busy_Panics(t *testing.T) {
	c := NewServiceCounter(2)
	c.Assign(NewVisitor(Adult, 4, Electronic))

	assert.PanicsWithValue(t, "Assign: counter 2 is busy with adult (4 min left)", func() {
		c.Assign(NewVisitor(Child, 5, Offline))
	})
}

func TestServiceCounter_Assign_InvalidVisitor_Panics(t *testing.T) {
	assert.Panics(t, func() { NewServiceCounter(0).Assign(NewVisitor(Adult, 0, Offline)) })
	assert.Panics(t, func() { NewServiceCounter(0).Assign(NewVisitor(Category(9), 3, Offline)) })
}

func TestServiceCounter_String(t *testing.T) {
	c := NewServiceCounter(3)
	assert.Equal(t, "Counter(3, free)", c.String())
	c.Assign(NewVisitor(OldMan, 7, Offline))
	assert.Equal(t, "Counter(3, busy, old-man, 7min left)", c.String())
}

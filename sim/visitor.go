// Defines the Visitor struct that models a single person visiting the institution.
// Tracks the visitor category, the minutes of service they need, and which queue they joined.

package sim

import (
	"fmt"
)

// Category is the closed set of visitor kinds. The zero value is Child.
type Category int

const (
	Child Category = iota
	Adult
	OldMan

	// NumCategories is the number of Category values; sizes per-category arrays.
	NumCategories = 3
)

// Categories lists every Category in declaration order.
var Categories = [NumCategories]Category{Child, Adult, OldMan}

var categoryLabels = [NumCategories]string{
	Child:  "child",
	Adult:  "adult",
	OldMan: "old-man",
}

// String returns the lowercase label for c, or "category(N)" for out-of-range values.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryLabels[c]
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Child && c <= OldMan
}

// ParseCategory maps a label produced by Category.String back to its value.
func ParseCategory(label string) (Category, error) {
	for _, c := range Categories {
		if categoryLabels[c] == label {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown visitor category %q", label)
}

// Channel is the queue discipline a visitor arrived through.
type Channel int

const (
	// Electronic visitors booked ahead and are always served before Offline ones.
	Electronic Channel = iota
	// Offline visitors walked in.
	Offline
)

func (ch Channel) String() string {
	switch ch {
	case Electronic:
		return "electronic"
	case Offline:
		return "offline"
	default:
		return fmt.Sprintf("channel(%d)", int(ch))
	}
}

// Visitor is one person waiting for, or receiving, service.
// ServiceDuration is always positive once a Visitor is observable outside the generator.
type Visitor struct {
	Category        Category
	ServiceDuration int // minutes of counter time needed
	Channel         Channel
}

// NewVisitor constructs a Visitor with all fields set.
func NewVisitor(category Category, duration int, channel Channel) Visitor {
	return Visitor{Category: category, ServiceDuration: duration, Channel: channel}
}

// String provides a compact representation for debug logging.
func (v Visitor) String() string {
	return fmt.Sprintf("Visitor(%s, %dmin, %s)", v.Category, v.ServiceDuration, v.Channel)
}

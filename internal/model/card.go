package model

import (
	"fmt"
	"time"
)

// DeadlineFormat is the calendar-date layout used for card deadlines.
const DeadlineFormat = "2006-01-02"

// Priority bounds for a card. 0 means no priority.
const (
	MinPriority = 0
	MaxPriority = 5
)

// Card - a single task. Name is its identity within the owning list.
type Card struct {
	Name        string
	Description string
	Deadline    string // DeadlineFormat date, empty means no deadline
	Priority    int
}

// NewCard returns a card with the given name and no optional fields set.
func NewCard(name string) *Card {
	return &Card{Name: name}
}

// SetDescription replaces the card description. Empty clears it.
func (c *Card) SetDescription(desc string) {
	c.Description = desc
}

// SetDeadline sets the deadline from a DeadlineFormat date string.
// An empty string clears the deadline.
func (c *Card) SetDeadline(date string) error {
	if date == "" {
		c.Deadline = ""
		return nil
	}
	if _, err := time.Parse(DeadlineFormat, date); err != nil {
		return fmt.Errorf("invalid deadline %q: want %s date", date, DeadlineFormat)
	}
	c.Deadline = date
	return nil
}

// SetPriority sets the card priority. Values outside [MinPriority, MaxPriority]
// are rejected here; display of already-persisted out-of-range values clamps
// instead (see PriorityLabel).
func (c *Card) SetPriority(p int) error {
	if p < MinPriority || p > MaxPriority {
		return fmt.Errorf("priority %d out of range %d..%d", p, MinPriority, MaxPriority)
	}
	c.Priority = p
	return nil
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var priorityLabels = [...]string{"None", "Lowest", "Low", "Medium", "High", "Highest"}

// PriorityLabel maps a priority value to its display label. The mapping is
// total: out-of-range values clamp to the nearest bound.
func PriorityLabel(p int) string {
	if p < MinPriority {
		p = MinPriority
	}
	if p > MaxPriority {
		p = MaxPriority
	}
	return priorityLabels[p]
}

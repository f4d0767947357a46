package model

import (
	"fmt"

	"BoardKeeper/internal/apperrors"
)

// List - a named, ordered column of cards. Name is its identity within the
// owning board. At most one list per board carries the Completed flag; that
// invariant is enforced by Board.SetCompleted.
type List struct {
	Name      string
	Cards     []*Card
	Completed bool
}

// NewList returns an empty list with the given name.
func NewList(name string) *List {
	return &List{Name: name, Cards: make([]*Card, 0)}
}

// CreateCard creates a card with the given name and appends it to the list.
func (l *List) CreateCard(name string) (*Card, error) {
	if name == "" {
		return nil, fmt.Errorf("card name must not be empty")
	}
	if l.FindCard(name) != nil {
		return nil, fmt.Errorf("card %q: %w", name, apperrors.ErrDuplicateName)
	}
	c := NewCard(name)
	l.Cards = append(l.Cards, c)
	return c, nil
}

// AddCard appends an existing card, re-checking name uniqueness.
func (l *List) AddCard(c *Card) error {
	if l.FindCard(c.Name) != nil {
		return fmt.Errorf("card %q: %w", c.Name, apperrors.ErrDuplicateName)
	}
	l.Cards = append(l.Cards, c)
	return nil
}

// InsertCard inserts a card at index, clamped to the valid range.
// Relative order of the other cards is preserved.
func (l *List) InsertCard(c *Card, index int) error {
	if l.FindCard(c.Name) != nil {
		return fmt.Errorf("card %q: %w", c.Name, apperrors.ErrDuplicateName)
	}
	if index < 0 {
		index = 0
	}
	if index > len(l.Cards) {
		index = len(l.Cards)
	}
	l.Cards = append(l.Cards, nil)
	copy(l.Cards[index+1:], l.Cards[index:])
	l.Cards[index] = c
	return nil
}

// RemoveCard detaches the named card and returns it.
func (l *List) RemoveCard(name string) (*Card, error) {
	for i, c := range l.Cards {
		if c.Name == name {
			l.Cards = append(l.Cards[:i], l.Cards[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("card %q: %w", name, apperrors.ErrNotFound)
}

// FindCard returns the named card, or nil.
func (l *List) FindCard(name string) *Card {
	for _, c := range l.Cards {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// RenameCard renames a card, re-checking uniqueness within the list.
func (l *List) RenameCard(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("card name must not be empty")
	}
	c := l.FindCard(oldName)
	if c == nil {
		return fmt.Errorf("card %q: %w", oldName, apperrors.ErrNotFound)
	}
	if newName != oldName && l.FindCard(newName) != nil {
		return fmt.Errorf("card %q: %w", newName, apperrors.ErrDuplicateName)
	}
	c.Name = newName
	return nil
}

package model

import (
	"fmt"

	"BoardKeeper/internal/apperrors"
)

// Board - a named collection of ordered lists. Name is its identity within
// the owning workspace. A board with zero lists is valid.
type Board struct {
	Name  string
	Lists []*List
}

// NewBoard returns an empty board with the given name.
func NewBoard(name string) *Board {
	return &Board{Name: name, Lists: make([]*List, 0)}
}

// CreateList creates an empty list with the given name and appends it.
func (b *Board) CreateList(name string) (*List, error) {
	if name == "" {
		return nil, fmt.Errorf("list name must not be empty")
	}
	if b.FindList(name) != nil {
		return nil, fmt.Errorf("list %q: %w", name, apperrors.ErrDuplicateName)
	}
	l := NewList(name)
	b.Lists = append(b.Lists, l)
	return l, nil
}

// AddList appends an existing list, re-checking name uniqueness.
func (b *Board) AddList(l *List) error {
	if b.FindList(l.Name) != nil {
		return fmt.Errorf("list %q: %w", l.Name, apperrors.ErrDuplicateName)
	}
	b.Lists = append(b.Lists, l)
	return nil
}

// RemoveList detaches the named list and returns it.
func (b *Board) RemoveList(name string) (*List, error) {
	for i, l := range b.Lists {
		if l.Name == name {
			b.Lists = append(b.Lists[:i], b.Lists[i+1:]...)
			return l, nil
		}
	}
	return nil, fmt.Errorf("list %q: %w", name, apperrors.ErrNotFound)
}

// FindList returns the named list, or nil.
func (b *Board) FindList(name string) *List {
	for _, l := range b.Lists {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// RenameList renames a list, re-checking uniqueness within the board.
func (b *Board) RenameList(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("list name must not be empty")
	}
	l := b.FindList(oldName)
	if l == nil {
		return fmt.Errorf("list %q: %w", oldName, apperrors.ErrNotFound)
	}
	if newName != oldName && b.FindList(newName) != nil {
		return fmt.Errorf("list %q: %w", newName, apperrors.ErrDuplicateName)
	}
	l.Name = newName
	return nil
}

// MoveList moves the named list to index, clamped to the valid range.
// Relative order of the other lists is preserved.
func (b *Board) MoveList(name string, index int) error {
	l, err := b.RemoveList(name)
	if err != nil {
		return err
	}
	if index < 0 {
		index = 0
	}
	if index > len(b.Lists) {
		index = len(b.Lists)
	}
	b.Lists = append(b.Lists, nil)
	copy(b.Lists[index+1:], b.Lists[index:])
	b.Lists[index] = l
	return nil
}

// MoveCard moves a card between two lists of this board, inserting it at
// index in the destination (clamped). Source order of the remaining cards
// is preserved.
func (b *Board) MoveCard(fromList, toList, cardName string, index int) error {
	src := b.FindList(fromList)
	if src == nil {
		return fmt.Errorf("list %q: %w", fromList, apperrors.ErrNotFound)
	}
	dst := b.FindList(toList)
	if dst == nil {
		return fmt.Errorf("list %q: %w", toList, apperrors.ErrNotFound)
	}
	if src != dst && dst.FindCard(cardName) != nil {
		return fmt.Errorf("card %q: %w", cardName, apperrors.ErrDuplicateName)
	}
	c, err := src.RemoveCard(cardName)
	if err != nil {
		return err
	}
	return dst.InsertCard(c, index)
}

// SetCompleted marks the named list as the board's completed list. The flag
// is cleared on every other list first, so the board never holds two
// completed lists, even transiently.
func (b *Board) SetCompleted(name string) error {
	target := b.FindList(name)
	if target == nil {
		return fmt.Errorf("list %q: %w", name, apperrors.ErrNotFound)
	}
	for _, l := range b.Lists {
		l.Completed = false
	}
	target.Completed = true
	return nil
}

// ClearCompleted removes the completed flag from every list of the board.
func (b *Board) ClearCompleted() {
	for _, l := range b.Lists {
		l.Completed = false
	}
}

// CompletedListName returns the name of the completed list, or "".
func (b *Board) CompletedListName() string {
	for _, l := range b.Lists {
		if l.Completed {
			return l.Name
		}
	}
	return ""
}

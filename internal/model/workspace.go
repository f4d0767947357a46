package model

import (
	"fmt"
	"time"

	"BoardKeeper/internal/apperrors"
)

// Workspace - the top-level named container: an ordered sequence of boards,
// the index of the board shown on next open, and the recycle bin.
type Workspace struct {
	Name               string
	LastEdited         time.Time
	Boards             []*Board
	SelectedBoardIndex int
	Bin                Bin
}

// NewWorkspace returns a workspace holding a single empty default board.
func NewWorkspace(name string) *Workspace {
	w := &Workspace{
		Name:       name,
		LastEdited: time.Now().UTC(),
		Boards:     make([]*Board, 0, 1),
		Bin:        NewBin(),
	}
	w.Boards = append(w.Boards, NewBoard(name+" Board"))
	return w
}

// Touch updates the last-edited timestamp. Called by the store before
// every save.
func (w *Workspace) Touch() {
	w.LastEdited = time.Now().UTC()
}

// CreateBoard creates an empty board with the given name and appends it.
func (w *Workspace) CreateBoard(name string) (*Board, error) {
	if name == "" {
		return nil, fmt.Errorf("board name must not be empty")
	}
	if w.FindBoard(name) != nil {
		return nil, fmt.Errorf("board %q: %w", name, apperrors.ErrDuplicateName)
	}
	b := NewBoard(name)
	w.Boards = append(w.Boards, b)
	w.clampSelected()
	return b, nil
}

// AddBoard appends an existing board, re-checking name uniqueness.
func (w *Workspace) AddBoard(b *Board) error {
	if w.FindBoard(b.Name) != nil {
		return fmt.Errorf("board %q: %w", b.Name, apperrors.ErrDuplicateName)
	}
	w.Boards = append(w.Boards, b)
	w.clampSelected()
	return nil
}

// RemoveBoard deletes the named board outright. Boards are not
// bin-recoverable; only lists and cards are.
func (w *Workspace) RemoveBoard(name string) error {
	for i, b := range w.Boards {
		if b.Name == name {
			w.Boards = append(w.Boards[:i], w.Boards[i+1:]...)
			w.clampSelected()
			return nil
		}
	}
	return fmt.Errorf("board %q: %w", name, apperrors.ErrNotFound)
}

// FindBoard returns the named board, or nil.
func (w *Workspace) FindBoard(name string) *Board {
	for _, b := range w.Boards {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// RenameBoard renames a board, re-checking uniqueness within the workspace.
func (w *Workspace) RenameBoard(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("board name must not be empty")
	}
	b := w.FindBoard(oldName)
	if b == nil {
		return fmt.Errorf("board %q: %w", oldName, apperrors.ErrNotFound)
	}
	if newName != oldName && w.FindBoard(newName) != nil {
		return fmt.Errorf("board %q: %w", newName, apperrors.ErrDuplicateName)
	}
	b.Name = newName
	return nil
}

// SelectBoard makes the board at index the one shown on next open.
// The index is clamped to the valid range.
func (w *Workspace) SelectBoard(index int) {
	w.SelectedBoardIndex = index
	w.clampSelected()
}

// SelectedBoard returns the currently selected board, or nil if the
// workspace has no boards.
func (w *Workspace) SelectedBoard() *Board {
	if len(w.Boards) == 0 {
		return nil
	}
	w.clampSelected()
	return w.Boards[w.SelectedBoardIndex]
}

// clampSelected keeps 0 <= SelectedBoardIndex < len(Boards) whenever the
// boards sequence is non-empty.
func (w *Workspace) clampSelected() {
	if len(w.Boards) == 0 {
		w.SelectedBoardIndex = 0
		return
	}
	if w.SelectedBoardIndex < 0 {
		w.SelectedBoardIndex = 0
	}
	if w.SelectedBoardIndex >= len(w.Boards) {
		w.SelectedBoardIndex = len(w.Boards) - 1
	}
}

package store

import (
	"fmt"

	"BoardKeeper/internal/apperrors"
	"BoardKeeper/internal/crypto"
	"BoardKeeper/internal/fsutil"
	"BoardKeeper/internal/model"
)

// ItemKind discriminates bin items for restore and purge.
type ItemKind string

const (
	KindList ItemKind = "list"
	KindCard ItemKind = "card"
)

// fallbackListName is where restored cards land when their original list and
// board are both gone.
const fallbackListName = "Restored"

// Session is an open workspace: the in-memory tree, its document location
// and the encryption material for the lifetime of the session. Mutating
// operations auto-save; callers never invoke an explicit save step.
// Not safe for concurrent use; one logical caller per session.
type Session struct {
	store    *Store
	ws       *model.Workspace
	location string

	password string
	salt     []byte
	key      []byte
}

// Workspace returns the in-memory workspace tree.
func (s *Session) Workspace() *model.Workspace { return s.ws }

// Location returns the path of the backing document.
func (s *Session) Location() string { return s.location }

// Encrypted reports whether saves of this session produce ciphertext.
func (s *Session) Encrypted() bool { return s.password != "" }

// Save serializes the workspace, encrypts it when a password is set and
// atomically replaces the backing document. On failure the previous document
// is left intact on disk while the in-memory mutation stays applied; the
// caller decides whether to retry or warn.
func (s *Session) Save() error {
	s.ws.Touch()
	data, err := model.MarshalWorkspace(s.ws)
	if err != nil {
		return err
	}
	if s.password != "" {
		data, err = crypto.EncryptWithKey(data, s.salt, s.key)
		if err != nil {
			return err
		}
	}
	if err := fsutil.WriteFileAtomic(s.location, data, 0o600); err != nil {
		// The mutation stays applied in memory; only persistence failed.
		s.store.log.Errorw("save failed, previous document left intact",
			"location", s.location, "error", err)
		return apperrors.IO("save workspace", err)
	}
	return nil
}

// SetPassword sets, changes or (with an empty string) removes the session
// password, re-derives the cached key and rewrites the document in its new
// form. Returns whether the document is now encrypted, so the caller can
// update the registry flag.
func (s *Session) SetPassword(password string) (bool, error) {
	if password == "" {
		s.password = ""
		s.wipeKey()
	} else {
		salt, err := crypto.NewSalt()
		if err != nil {
			return s.Encrypted(), err
		}
		s.password = password
		s.salt = salt
		s.key = crypto.DeriveKey(password, salt)
	}
	return s.Encrypted(), s.Save()
}

// Close drops the password and derived key from memory. The session must
// not be used afterwards.
func (s *Session) Close() {
	s.password = ""
	s.wipeKey()
	s.ws = nil
}

func (s *Session) wipeKey() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
	s.salt = nil
}

// SoftDeleteList detaches a list from its board into the bin and saves.
func (s *Session) SoftDeleteList(boardName, listName string) error {
	b := s.ws.FindBoard(boardName)
	if b == nil {
		return fmt.Errorf("board %q: %w", boardName, apperrors.ErrNotFound)
	}
	l, err := b.RemoveList(listName)
	if err != nil {
		return err
	}
	s.ws.Bin.AddList(l, boardName)
	return s.Save()
}

// SoftDeleteCard detaches a card from its list into the bin and saves.
func (s *Session) SoftDeleteCard(boardName, listName, cardName string) error {
	b := s.ws.FindBoard(boardName)
	if b == nil {
		return fmt.Errorf("board %q: %w", boardName, apperrors.ErrNotFound)
	}
	l := b.FindList(listName)
	if l == nil {
		return fmt.Errorf("list %q: %w", listName, apperrors.ErrNotFound)
	}
	c, err := l.RemoveCard(cardName)
	if err != nil {
		return err
	}
	s.ws.Bin.AddCard(c, boardName, listName)
	return s.Save()
}

// RestoreItem moves a bin item back into the tree and saves. When the
// original container no longer exists the item goes to a deterministic
// fallback instead of failing: a restored list lands on the selected board,
// a restored card on the first list of its source board, or failing that a
// "Restored" list on the selected board. Name collisions at the destination
// get a numbered suffix.
func (s *Session) RestoreItem(name string, kind ItemKind) error {
	switch kind {
	case KindList:
		if err := s.restoreList(name); err != nil {
			return err
		}
	case KindCard:
		if err := s.restoreCard(name); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown bin item kind %q", kind)
	}
	return s.Save()
}

// PurgeItem permanently removes a bin item and saves. Purging a list also
// purges the binned cards that were deleted out of it.
func (s *Session) PurgeItem(name string, kind ItemKind) error {
	var ok bool
	switch kind {
	case KindList:
		ok = s.ws.Bin.PurgeList(name)
	case KindCard:
		ok = s.ws.Bin.PurgeCard(name)
	default:
		return fmt.Errorf("unknown bin item kind %q", kind)
	}
	if !ok {
		return fmt.Errorf("bin %s %q: %w", kind, name, apperrors.ErrNotFound)
	}
	return s.Save()
}

func (s *Session) restoreList(name string) error {
	entry, ok := s.ws.Bin.TakeList(name)
	if !ok {
		return fmt.Errorf("bin list %q: %w", name, apperrors.ErrNotFound)
	}
	board := s.ws.FindBoard(entry.SourceBoard)
	if board == nil {
		board = s.ws.SelectedBoard()
	}
	if board == nil {
		b, err := s.ws.CreateBoard(entry.SourceBoard)
		if err != nil {
			return err
		}
		board = b
	}
	// The board may have gained a completed list in the meantime; the
	// restored one yields rather than breaking the single-flag invariant.
	if board.CompletedListName() != "" {
		entry.List.Completed = false
	}
	entry.List.Name = uniqueName(entry.List.Name, func(n string) bool {
		return board.FindList(n) != nil
	})
	return board.AddList(entry.List)
}

func (s *Session) restoreCard(name string) error {
	entry, ok := s.ws.Bin.TakeCard(name)
	if !ok {
		return fmt.Errorf("bin card %q: %w", name, apperrors.ErrNotFound)
	}
	list := s.findRestoreList(entry)
	if list == nil {
		l, err := s.createFallbackList()
		if err != nil {
			return err
		}
		list = l
	}
	entry.Card.Name = uniqueName(entry.Card.Name, func(n string) bool {
		return list.FindCard(n) != nil
	})
	return list.AddCard(entry.Card)
}

// findRestoreList picks the destination for a restored card: the original
// list, else the first list of the original board, else nil.
func (s *Session) findRestoreList(entry model.DeletedCard) *model.List {
	board := s.ws.FindBoard(entry.SourceBoard)
	if board == nil {
		return nil
	}
	if l := board.FindList(entry.SourceList); l != nil {
		return l
	}
	if len(board.Lists) > 0 {
		return board.Lists[0]
	}
	return nil
}

func (s *Session) createFallbackList() (*model.List, error) {
	board := s.ws.SelectedBoard()
	if board == nil {
		b, err := s.ws.CreateBoard(fallbackListName)
		if err != nil {
			return nil, err
		}
		board = b
	}
	if l := board.FindList(fallbackListName); l != nil {
		return l, nil
	}
	return board.CreateList(fallbackListName)
}

// uniqueName returns name, or name with the smallest numbered suffix that
// makes taken return false.
func uniqueName(name string, taken func(string) bool) string {
	if !taken(name) {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		if !taken(candidate) {
			return candidate
		}
	}
}

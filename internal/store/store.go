package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"BoardKeeper/internal/apperrors"
	"BoardKeeper/internal/crypto"
	"BoardKeeper/internal/fsutil"
	"BoardKeeper/internal/model"
)

// Store is the only component that reads or writes workspace documents.
// A location is the path of a workspace's backing document file; the
// registry allocates locations and hands them to the store.
type Store struct {
	log *zap.SugaredLogger
}

// New returns a store logging through the given sugared logger.
func New(log *zap.SugaredLogger) *Store {
	return &Store{log: log}
}

// Load reads the document at location, decrypts it when it is ciphertext
// (a password is then required) and parses it into a workspace session.
func (s *Store) Load(location, password string) (*Session, error) {
	raw, err := os.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("document %q: %w", location, apperrors.ErrNotFound)
		}
		return nil, apperrors.IO("read document", err)
	}

	sess := &Session{store: s, location: location}
	plain := raw
	if crypto.IsCiphertext(raw) {
		if password == "" {
			return nil, fmt.Errorf("document %q is encrypted, password required: %w",
				location, apperrors.ErrDecryptionFailed)
		}
		salt, err := crypto.Salt(raw)
		if err != nil {
			return nil, err
		}
		// Derive once and keep the key for the whole session; every
		// subsequent auto-save reuses it instead of re-running the KDF.
		key := crypto.DeriveKey(password, salt)
		plain, err = crypto.DecryptWithKey(raw, key)
		if err != nil {
			return nil, err
		}
		sess.password = password
		sess.salt = salt
		sess.key = key
	}

	ws, err := model.UnmarshalWorkspace(plain)
	if err != nil {
		return nil, err
	}
	sess.ws = ws
	return sess, nil
}

// Create writes a fresh plaintext workspace document (one empty default
// board) at location. Used by the registry when a workspace is created.
func (s *Store) Create(location, name string) (*model.Workspace, error) {
	ws := model.NewWorkspace(name)
	data, err := model.MarshalWorkspace(ws)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(location), 0o700); err != nil {
		return nil, apperrors.IO("create document dir", err)
	}
	if err := fsutil.WriteFileAtomic(location, data, 0o600); err != nil {
		return nil, apperrors.IO("write document", err)
	}
	s.log.Infow("workspace document created", "name", name, "location", location)
	return ws, nil
}

// Remove deletes the backing document at location. Irreversible.
func (s *Store) Remove(location string) error {
	if err := os.Remove(location); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("document %q: %w", location, apperrors.ErrNotFound)
		}
		return apperrors.IO("remove document", err)
	}
	return nil
}

// Probe checks that location holds a minimally parseable document: either an
// encrypted blob with a valid header or something JSON-shaped. The registry
// uses it to self-heal dangling entries without needing any password.
func (s *Store) Probe(location string) error {
	f, err := os.Open(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("document %q: %w", location, apperrors.ErrNotFound)
		}
		return apperrors.IO("probe document", err)
	}
	defer f.Close()

	head := make([]byte, 64)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return apperrors.Malformed("", fmt.Errorf("document %q is empty or unreadable", location))
	}
	head = head[:n]
	if crypto.IsCiphertext(head) {
		return nil
	}
	if trimmed := bytes.TrimLeft(head, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		return nil
	}
	return apperrors.Malformed("", fmt.Errorf("document %q has an unrecognized header", location))
}

package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"BoardKeeper/internal/apperrors"
	"BoardKeeper/internal/fsutil"
	"BoardKeeper/internal/store"
)

// Entry describes one registered workspace.
type Entry struct {
	Name      string
	Location  string
	Encrypted bool
}

type indexEntry struct {
	Location  string `json:"location"`
	Encrypted bool   `json:"encrypted,omitempty"`
}

// Registry is the process-wide catalog of workspaces, backed by a master
// index file. Every mutation re-persists the index with the same atomic
// replace discipline the store uses for documents.
type Registry struct {
	indexPath string
	dataDir   string
	store     *store.Store
	log       *zap.SugaredLogger
	entries   map[string]indexEntry
}

// Open reads the master index at indexPath. A missing index means an empty
// registry; an unreadable or corrupt index is logged and replaced by an
// empty one rather than blocking startup.
func Open(indexPath, dataDir string, st *store.Store, log *zap.SugaredLogger) (*Registry, error) {
	r := &Registry{
		indexPath: indexPath,
		dataDir:   dataDir,
		store:     st,
		log:       log,
		entries:   make(map[string]indexEntry),
	}
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, nil
		}
		return nil, apperrors.IO("read registry index", err)
	}
	if err := json.Unmarshal(raw, &r.entries); err != nil {
		log.Warnw("registry index is corrupt, starting fresh", "path", indexPath, "error", err)
		r.entries = make(map[string]indexEntry)
		if err := r.persist(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) persist() error {
	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.indexPath), 0o700); err != nil {
		return apperrors.IO("create registry dir", err)
	}
	if err := fsutil.WriteFileAtomic(r.indexPath, data, 0o600); err != nil {
		return apperrors.IO("write registry index", err)
	}
	return nil
}

// Create registers a new workspace: allocates a fresh document location,
// writes an empty workspace document there and persists the index.
func (r *Registry) Create(name string) (Entry, error) {
	if name == "" {
		return Entry{}, fmt.Errorf("workspace name must not be empty")
	}
	if _, ok := r.entries[name]; ok {
		return Entry{}, fmt.Errorf("workspace %q: %w", name, apperrors.ErrDuplicateName)
	}
	location := filepath.Join(r.dataDir, uuid.NewString()+".json")
	if _, err := r.store.Create(location, name); err != nil {
		return Entry{}, err
	}
	r.entries[name] = indexEntry{Location: location}
	if err := r.persist(); err != nil {
		// Roll back so a half-created workspace is not left behind.
		delete(r.entries, name)
		_ = r.store.Remove(location)
		return Entry{}, err
	}
	r.log.Infow("workspace created", "name", name, "location", location)
	return Entry{Name: name, Location: location}, nil
}

// Rename changes a workspace's registered name. The backing document keeps
// its location; locations are opaque, so nothing references the old name.
func (r *Registry) Rename(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("workspace name must not be empty")
	}
	e, ok := r.entries[oldName]
	if !ok {
		return fmt.Errorf("workspace %q: %w", oldName, apperrors.ErrNotFound)
	}
	if _, ok := r.entries[newName]; ok && newName != oldName {
		return fmt.Errorf("workspace %q: %w", newName, apperrors.ErrDuplicateName)
	}
	delete(r.entries, oldName)
	r.entries[newName] = e
	return r.persist()
}

// Delete removes the registry entry and the backing document. Irreversible:
// workspaces are not bin-recoverable.
func (r *Registry) Delete(name string) error {
	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("workspace %q: %w", name, apperrors.ErrNotFound)
	}
	if err := r.store.Remove(e.Location); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	delete(r.entries, name)
	if err := r.persist(); err != nil {
		return err
	}
	r.log.Infow("workspace deleted", "name", name)
	return nil
}

// Get returns the entry for a registered workspace.
func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("workspace %q: %w", name, apperrors.ErrNotFound)
	}
	return Entry{Name: name, Location: e.Location, Encrypted: e.Encrypted}, nil
}

// SetEncrypted records whether a workspace's document is encrypted. The
// store performs the actual re-encryption; the registry only tracks the
// resulting state so the UI knows when to prompt for a password.
func (r *Registry) SetEncrypted(name string, encrypted bool) error {
	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("workspace %q: %w", name, apperrors.ErrNotFound)
	}
	e.Encrypted = encrypted
	r.entries[name] = e
	return r.persist()
}

// ListAll returns all valid entries sorted by name. Entries whose backing
// document is missing or fails the minimal header check are dropped and the
// index rewritten: a single bad entry must not block listing the rest.
func (r *Registry) ListAll() []Entry {
	var out []Entry
	dropped := false
	for name, e := range r.entries {
		if err := r.store.Probe(e.Location); err != nil {
			r.log.Warnw("dropping workspace with unusable document",
				"name", name, "location", e.Location, "error", err)
			delete(r.entries, name)
			dropped = true
			continue
		}
		out = append(out, Entry{Name: name, Location: e.Location, Encrypted: e.Encrypted})
	}
	if dropped {
		if err := r.persist(); err != nil {
			r.log.Errorw("failed to rewrite registry index after cleanup", "error", err)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

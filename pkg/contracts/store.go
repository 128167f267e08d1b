package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store abstracts contract persistence for the API layer.
type Store interface {
	Create(ctx context.Context, c *Contract) error
	Get(ctx context.Context, id uuid.UUID) (*Contract, error)
	List(ctx context.Context) ([]*Contract, error)
	Update(ctx context.Context, id uuid.UUID, c *Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStore keeps one JSON file per contract under a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
	now func() time.Time
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithClock overrides the timestamp source. Test hook.
func WithClock(now func() time.Time) FileStoreOption {
	return func(fs *FileStore) {
		if now != nil {
			fs.now = now
		}
	}
}

// NewFileStore creates the backing directory if needed.
func NewFileStore(dir string, opts ...FileStoreOption) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(ErrStoreIO, err)
	}
	fs := &FileStore{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(fs)
	}
	return fs, nil
}

func (fs *FileStore) path(id uuid.UUID) string {
	return filepath.Join(fs.dir, id.String()+".json")
}

// Create assigns an ID and timestamps, validates, and persists.
func (fs *FileStore) Create(_ context.Context, c *Contract) error {
	if err := c.validate(); err != nil {
		return err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := fs.now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return fs.write(c)
}

// Get loads a contract by ID.
func (fs *FileStore) Get(_ context.Context, id uuid.UUID) (*Contract, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.read(id)
}

// List returns all contracts, newest first.
func (fs *FileStore) List(_ context.Context) ([]*Contract, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries, err := filepath.Glob(filepath.Join(fs.dir, "*.json"))
	if err != nil {
		return nil, errors.Join(ErrStoreIO, err)
	}

	out := make([]*Contract, 0, len(entries))
	for _, path := range entries {
		id, err := uuid.Parse(filepath.Base(path[:len(path)-len(".json")]))
		if err != nil {
			// Stray file in the contracts directory, not ours.
			continue
		}
		c, err := fs.read(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a contract's content, preserving its identity and
// creation time and bumping UpdatedAt.
func (fs *FileStore) Update(_ context.Context, id uuid.UUID, c *Contract) error {
	if err := c.validate(); err != nil {
		return err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	existing, err := fs.read(id)
	if err != nil {
		return err
	}
	c.ID = id
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = fs.now().UTC()
	return fs.write(c)
}

// Delete removes a contract.
func (fs *FileStore) Delete(_ context.Context, id uuid.UUID) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path(id)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrContractNotFound
		}
		return errors.Join(ErrStoreIO, err)
	}
	return nil
}

func (fs *FileStore) write(c *Contract) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Join(ErrStoreIO, err)
	}
	if err := os.WriteFile(fs.path(c.ID), data, 0o644); err != nil {
		return errors.Join(ErrStoreIO, err)
	}
	return nil
}

func (fs *FileStore) read(id uuid.UUID) (*Contract, error) {
	data, err := os.ReadFile(fs.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrContractNotFound
		}
		return nil, errors.Join(ErrStoreIO, err)
	}
	var c Contract
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(ErrStoreIO, err)
	}
	return &c, nil
}

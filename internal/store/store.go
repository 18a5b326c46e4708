package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/domain"
)

var (
	// ErrNotFound signals an absent record; callers distinguish it from
	// real storage failures with errors.Is.
	ErrNotFound = errors.New("account not found")
	// ErrCorruptRecord signals a record that exists but cannot be parsed.
	// It is never masked with a default: the caller must reject the
	// operation rather than silently lose data.
	ErrCorruptRecord = errors.New("corrupt account record")
)

// FileStore persists one JSON document per account under a root directory.
// The file name is the account id, which is already a hex hash, so no user
// input ever reaches a filesystem path.
type FileStore struct {
	root string
	log  zerolog.Logger
}

func New(root string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{root: root, log: log}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.root, id+".json")
}

// Load reads the record for an id. An absent record is ErrNotFound, not a
// storage failure.
func (s *FileStore) Load(ctx context.Context, id string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read account record: %w", err)
	}

	var acc domain.Account
	if err := json.Unmarshal(data, &acc); err != nil {
		s.log.Error().Err(err).Str("account_id", id).Msg("unparsable account record")
		return nil, fmt.Errorf("%w: %s", ErrCorruptRecord, id)
	}
	return &acc, nil
}

// Save persists the full record, replacing any prior version. The document
// is written to a temp file in the same directory and renamed into place,
// so a crash mid-write never leaves a truncated record behind.
func (s *FileStore) Save(ctx context.Context, acc *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(acc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account record: %w", err)
	}

	tmp, err := os.CreateTemp(s.root, "."+acc.ID+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write account record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync account record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp record: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(acc.ID)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace account record: %w", err)
	}
	return nil
}

// Delete removes the persisted record. Deleting an absent record is
// ErrNotFound.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete account record: %w", err)
	}
	return nil
}

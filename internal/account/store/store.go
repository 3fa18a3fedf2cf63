// Package store keeps each account in its own text file under a data directory.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/codec"
	enc "github.com/MrJamesThe3rd/tally/internal/encoding"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const (
	fileExt  = ".txt"
	dirPerm  = 0o755
	filePerm = 0o600
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// path returns the file holding account id.
func (s *Store) path(id string) (string, error) {
	if err := ledger.ValidateID(id); err != nil {
		return "", err
	}

	return filepath.Join(s.dir, id+fileExt), nil
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path, err := s.path(id)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("checking account file: %w", err)
	}

	return true, nil
}

func (s *Store) Load(ctx context.Context, id string) (*ledger.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", account.ErrNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("opening account file: %w", err)
	}
	defer f.Close()

	r, charset, err := enc.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading account file: %w", err)
	}

	if charset != enc.UTF8 {
		slog.InfoContext(ctx, "decoding account file", "account", id, "charset", charset)
	}

	acc, err := codec.Decode(r, id)
	if err != nil {
		return nil, fmt.Errorf("decoding account %s: %w", id, err)
	}

	return acc, nil
}

// Save rewrites the account file in full, creating the data directory if
// needed. Readers see either the old or the new file, never a partial one.
func (s *Store) Save(ctx context.Context, acc *ledger.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(acc.Username())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, acc); err != nil {
		return fmt.Errorf("encoding account: %w", err)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}

	slog.DebugContext(ctx, "account saved", "account", acc.Username(), "entries", len(acc.Entries()))

	return nil
}

// writeFile writes data next to path and renames it into place.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp account file: %w", err)
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return fmt.Errorf("writing account file: %w", err)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return fmt.Errorf("setting account file mode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("closing account file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("replacing account file: %w", err)
	}

	return nil
}

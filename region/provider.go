package region

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Provider maps a region coordinate to a handle, creating the backing
// storage on first use.
type Provider interface {
	GetRegion(pos Position) (*Region, error)
}

// FolderProvider maps regions to files named "r.<rx>.<rz>.mca" under a
// configured root directory, matching spec.md §4.5 and the corpus's own
// naming (pkg/world/anvil.SaveRegion: fmt.Sprintf("r.%d.%d.mca", rx, rz)).
type FolderProvider struct {
	root string
	log  *slog.Logger

	mu   sync.Mutex
	live map[string]uuid.UUID // path -> handle ID of the last Open, for diagnostics only
}

// NewFolderProvider creates a provider rooted at dir. dir is created if it
// does not already exist. If log is nil, a discard logger is used.
func NewFolderProvider(dir string, log *slog.Logger) (*FolderProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("region: create region directory %s: %w", dir, err)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	return &FolderProvider{root: dir, log: log, live: make(map[string]uuid.UUID)}, nil
}

// GetRegion opens (creating if absent) the region file for pos. A freshly
// created file is padded to exactly 8192 zero bytes before the header is
// parsed, satisfying the "header sectors are zero-filled on creation"
// lifecycle rule in spec.md §3.
//
// FolderProvider does not cache handles and does not take OS file locks
// (spec.md §5); it only tracks, for diagnostics, whether a handle for the
// same path is already open and logs a warning if so. It is the caller's
// responsibility to ensure at most one live handle per region exists.
func (p *FolderProvider) GetRegion(pos Position) (*Region, error) {
	path := filepath.Join(p.root, pos.FileName())

	file, err := os.OpenFile(path, os.O_RDWR, 0o644)
	created := false
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("region: open %s: %w", path, err)
		}
		file, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("region: create %s: %w", path, err)
		}
		if err := file.Truncate(headerSectors * sectorSize); err != nil {
			file.Close()
			return nil, fmt.Errorf("region: pad new region %s: %w", path, err)
		}
		created = true
	}

	r, err := openRegion(path, file, p.log)
	if err != nil {
		file.Close()
		return nil, err
	}

	p.mu.Lock()
	if prev, ok := p.live[path]; ok {
		p.log.Warn("region opened while a previous handle for the same file is still tracked",
			"path", path, "new_handle", r.id, "previous_handle", prev)
	}
	p.live[path] = r.id
	p.mu.Unlock()

	r.onClose = func() {
		p.mu.Lock()
		if p.live[path] == r.id {
			delete(p.live, path)
		}
		p.mu.Unlock()
	}

	if created {
		p.log.Info("created region file", "path", path)
	}
	return r, nil
}

// HasRegion reports whether a region file already exists for pos, without
// creating it.
func (p *FolderProvider) HasRegion(pos Position) bool {
	_, err := os.Stat(filepath.Join(p.root, pos.FileName()))
	return err == nil
}

// OpenFile opens an existing region file directly by path, bypassing any
// Provider. It is meant for tools that operate on a single .mca file named
// on the command line rather than on a world directory.
func OpenFile(path string) (*Region, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("region: open %s: %w", path, err)
	}
	r, err := openRegion(path, file, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1})))
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

package mode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oshokin/regatta-starter/internal/config"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
)

// Repository defines persistence operations for the selected mode.
type Repository interface {
	Load(ctx context.Context) (race.Mode, error)
	Save(ctx context.Context, m race.Mode) error
}

// record is the on-disk JSON representation of the selection.
type record struct {
	// Mode is the selected mode index.
	Mode uint8 `json:"mode"`
	// UpdatedAt is when the selection last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// FileRepository persists the selected mode to a JSON file on disk, so the
// controller comes back up in the mode it was last left in.
type FileRepository struct {
	// path is the filesystem location of the JSON mode file.
	path string
	// mu protects concurrent access to the mode file.
	mu sync.Mutex
}

// ErrNotFound is returned when the mode file does not exist yet.
var ErrNotFound = errors.New("mode not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the selected mode from disk.
func (r *FileRepository) Load(_ context.Context) (race.Mode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, ErrNotFound
		}

		return 0, fmt.Errorf("read mode file: %w", err)
	}

	var rec record
	if err = json.Unmarshal(contents, &rec); err != nil {
		return 0, fmt.Errorf("decode mode file: %w", err)
	}

	return race.Mode(rec.Mode), nil
}

// Save writes the selected mode to disk.
func (r *FileRepository) Save(_ context.Context, m race.Mode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(record{
		Mode:      uint8(m),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode mode: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write mode file: %w", err)
	}

	return nil
}

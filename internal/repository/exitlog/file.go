package exitlog

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
)

// Repository records timer completion instants.
type Repository interface {
	Append(ctx context.Context, at time.Time) error
	Load(ctx context.Context) ([]time.Time, error)
}

// FileRepository appends completion instants to a text file.
type FileRepository struct {
	// path is the filesystem location of the log file.
	path string
	// mu serialises writers within the process.
	mu sync.Mutex
}

// ErrNotFound is returned when the log file does not exist yet.
var ErrNotFound = errors.New("exit log not found")

// NewFileRepository creates a repository backed by the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Append writes at as a new line, creating the file if needed.
func (r *FileRepository) Append(_ context.Context, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("open exit log: %w", err)
	}

	if _, err = f.WriteString(at.Format(time.RFC3339) + "\n"); err != nil {
		_ = f.Close()

		return fmt.Errorf("write exit log: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close exit log: %w", err)
	}

	return nil
}

// Load returns every recorded instant in file order.
func (r *FileRepository) Load(_ context.Context) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read exit log: %w", err)
	}

	var (
		result  []time.Time
		scanner = bufio.NewScanner(bytes.NewReader(contents))
		line    int
	)

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		at, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return nil, fmt.Errorf("decode exit log line %d: %w", line, err)
		}

		result = append(result, at)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan exit log: %w", err)
	}

	return result, nil
}

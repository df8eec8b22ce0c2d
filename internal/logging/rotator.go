package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RotateOptions bound the size and number of log files kept.
type RotateOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// RotatingFile is an io.Writer appending to <dir>/<name>.log. When a write
// would push the file past MaxSizeMB it is renamed with a timestamp suffix
// and a fresh file is started. Old backups are pruned by count and age.
type RotatingFile struct {
	mu         sync.Mutex
	dir        string
	name       string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int

	file *os.File
	size int64
	now  func() time.Time
}

// NewRotatingFile opens (or creates) the log file for name in dir.
func NewRotatingFile(dir, name string, opts RotateOptions) (*RotatingFile, error) {
	if opts.MaxSizeMB <= 0 {
		return nil, fmt.Errorf("max size must be positive, got %d MB", opts.MaxSizeMB)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &RotatingFile{
		dir:        dir,
		name:       name + ".log",
		maxSize:    int64(opts.MaxSizeMB) << 20,
		maxAge:     time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		maxBackups: opts.MaxBackups,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *RotatingFile) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	backup := r.Path() + "." + r.now().Format("20060102-150405.000")
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	r.prune()
	return r.open()
}

// prune drops backups older than maxAge, then the oldest beyond maxBackups.
func (r *RotatingFile) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	type backup struct {
		path    string
		modTime time.Time
	}
	var kept []backup
	cutoff := r.now().Add(-r.maxAge)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(r.dir, e.Name())
		if r.maxAge > 0 && info.ModTime().Before(cutoff) {
			_ = os.Remove(path)
			continue
		}
		kept = append(kept, backup{path: path, modTime: info.ModTime()})
	}

	if r.maxBackups <= 0 || len(kept) <= r.maxBackups {
		return
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].modTime.Before(kept[j].modTime) })
	for _, b := range kept[:len(kept)-r.maxBackups] {
		_ = os.Remove(b.path)
	}
}

// Close closes the active file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

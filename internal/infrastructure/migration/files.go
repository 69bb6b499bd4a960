package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.(up|down)\.sql$`)

// File describes one migration pair on disk
type File struct {
	Version  uint
	Name     string
	UpPath   string
	DownPath string
}

// List returns the migration pairs found in dir ordered by version.
// A missing directory yields an empty list.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []File{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	byVersion := make(map[uint]*File)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := migrationFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		v, err := strconv.ParseUint(match[1], 10, 32)
		if err != nil {
			continue
		}
		f, ok := byVersion[uint(v)]
		if !ok {
			f = &File{Version: uint(v), Name: match[2]}
			byVersion[uint(v)] = f
		}
		path := filepath.Join(dir, entry.Name())
		if match[3] == "up" {
			f.UpPath = path
		} else {
			f.DownPath = path
		}
	}

	files := make([]File, 0, len(byVersion))
	for _, f := range byVersion {
		files = append(files, *f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, nil
}

// Create writes an empty up/down pair numbered after the highest existing
// version.
func Create(dir, name string) (*File, error) {
	clean := sanitizeName(name)
	if clean == "" {
		return nil, fmt.Errorf("invalid migration name %q", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	existing, err := List(dir)
	if err != nil {
		return nil, err
	}
	var next uint = 1
	if n := len(existing); n > 0 {
		next = existing[n-1].Version + 1
	}

	base := fmt.Sprintf("%06d_%s", next, clean)
	f := &File{
		Version:  next,
		Name:     clean,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}
	if err := os.WriteFile(f.UpPath, []byte("-- "+name+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write up migration: %w", err)
	}
	if err := os.WriteFile(f.DownPath, []byte("-- rollback "+name+"\n"), 0o644); err != nil {
		_ = os.Remove(f.UpPath)
		return nil, fmt.Errorf("failed to write down migration: %w", err)
	}
	return f, nil
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			s := b.String()
			if len(s) > 0 && s[len(s)-1] != '_' {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

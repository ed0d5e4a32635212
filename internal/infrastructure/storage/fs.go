package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sumplete/internal/domain"
)

// FS stores puzzles as pretty-printed JSON under dir, bucketed by grid
// size (dir/4x4/<id>.json). Flat files directly in dir are read for
// compatibility with hand-placed puzzles.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func sizeDir(n int) string { return fmt.Sprintf("%dx%d", n, n) }

func (s *FS) pathFor(id string, size int) string {
	return filepath.Join(s.dir, sizeDir(size), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	if p.Size < 1 {
		return errors.New("invalid puzzle: missing size")
	}
	target := s.pathFor(p.ID, p.Size)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("missing puzzle id")
	}
	var data []byte
	for _, dir := range s.buckets() {
		path := filepath.Join(dir, id+".json")
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Size == 0 {
		out.Size = len(out.Values)
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, dir := range s.buckets() {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var m struct {
				ID        string `json:"id"`
				Name      string `json:"name,omitempty"`
				Size      int    `json:"size"`
				CreatedAt int64  `json:"createdAt"`
			}
			if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:        m.ID,
				Name:      m.Name,
				Size:      m.Size,
				CreatedAt: m.CreatedAt,
			})
		}
	}
	return out, nil
}

// buckets returns every NxN subdirectory plus the flat root, scanned in
// name order.
func (s *FS) buckets() []string {
	dirs := []string{}
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() && isSizeDir(e.Name()) {
				dirs = append(dirs, filepath.Join(s.dir, e.Name()))
			}
		}
	}
	return append(dirs, s.dir)
}

func isSizeDir(name string) bool {
	parts := strings.SplitN(name, "x", 2)
	if len(parts) != 2 || parts[0] == "" || parts[0] != parts[1] {
		return false
	}
	for _, ch := range parts[0] {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

package runstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
	newID       func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator is useful for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  false,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveRun(run domain.RunArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	toSave.StartedAt = toSave.StartedAt.UTC()
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}

	slug := slugify(fmt.Sprintf("dec%d %s part%d", run.Day, run.Title, int(run.Part)))
	filename := fmt.Sprintf("%s_%s_%s.json", toSave.StartedAt.Format("20060102T150405Z"), slug, shortID(toSave.ID))
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, filename, toSave); err != nil {
			return toSave.ID, &domain.OpError{
				Op:   "runstore.index",
				Kind: domain.KindExecution,
				Path: filepath.Join(dir, indexFile),
				Err:  err,
			}
		}
	}

	return toSave.ID, nil
}

func (s *JSONStore) appendIndex(dir, filename string, run domain.RunArtifact) error {
	line, err := json.Marshal(domain.RunRef{
		ID:        run.ID,
		File:      filename,
		Day:       run.Day,
		Part:      run.Part,
		Answer:    run.Answer,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListRuns returns index entries oldest first. A missing index means no runs.
func (s *JSONStore) ListRuns() ([]domain.RunRef, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.RunRef{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "runstore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer f.Close()

	out := []domain.RunRef{}
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		var ref domain.RunRef
		if err := json.Unmarshal(sc.Bytes(), &ref); err != nil {
			return nil, &domain.OpError{Op: "runstore.list", Kind: domain.KindInvalidInput, Path: path, Line: n, Err: err}
		}
		out = append(out, ref)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "runstore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return out, nil
}

// LoadRun returns the raw artifact JSON for id or a unique prefix of it.
func (s *JSONStore) LoadRun(id string) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("run id is empty: %w", domain.ErrInvalidInput),
		}
	}

	refs, err := s.ListRuns()
	if err != nil {
		return nil, err
	}

	var match *domain.RunRef
	for i := range refs {
		if !strings.HasPrefix(refs[i].ID, id) {
			continue
		}
		if match != nil && match.ID != refs[i].ID {
			return nil, &domain.OpError{
				Op:   "runstore.load",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("run id prefix %q is ambiguous: %w", id, domain.ErrInvalidInput),
			}
		}
		match = &refs[i]
	}
	if match == nil {
		return nil, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("run %q: %w", id, domain.ErrNotFound),
		}
	}

	path := filepath.Join(s.dir(), match.File)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{Op: "runstore.load", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	return b, nil
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

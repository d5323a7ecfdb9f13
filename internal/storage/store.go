package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/atomsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

type Store struct {
	baseDir string
	logger  *slog.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, logger: slog.Default()}
}

func (s *Store) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Atoms     []string           `json:"atoms"`
	Contacts  int                `json:"contacts"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes the run metadata and, when the result kept its frames, one
// CSV row per atom per frame. It returns the new run id.
func (s *Store) Save(scenario string, seed int64, result *sim.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("save %s: nil result", scenario)
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%d", scenario, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	atoms := make([]string, len(result.Final.Atoms))
	for i, a := range result.Final.Atoms {
		atoms[i] = a.Name
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: now,
		Seed:      seed,
		Frames:    result.FramesRun,
		Atoms:     atoms,
		Contacts:  result.Contacts,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result.Frames); err != nil {
		return "", fmt.Errorf("write frames: %w", err)
	}

	s.logger.Info("run saved", "id", runID, "frames", result.FramesRun, "rows", len(Rows(result.Frames)))
	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadRows(runID string) ([]Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []Row{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return []Row{}, nil
		}
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return rows, nil
}

package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

type snapshotDoc struct {
	Persons []personRecord `yaml:"persons"`
	Tasks   []taskRecord   `yaml:"tasks"`
}

type personRecord struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone,omitempty"`
	Email   string `yaml:"email,omitempty"`
	Address string `yaml:"address,omitempty"`
}

type taskRecord struct {
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Assignment  string `yaml:"assignment"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
	Date        string `yaml:"date,omitempty"`
	Added       uint64 `yaml:"added"`
}

// SnapshotStore keeps the task book in a single YAML file.
type SnapshotStore struct {
	path string
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Load returns an empty snapshot when the file does not exist yet.
func (s *SnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			zap.L().Info("no task book file, starting empty", zap.String("path", s.path))
			return domain.Snapshot{}, nil
		}
		return domain.Snapshot{}, err
	}

	var doc snapshotDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return mapDocToSnapshot(doc)
}

// Save writes to a temporary file and renames it over the old one.
func (s *SnapshotStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	b, err := yaml.Marshal(mapSnapshotToDoc(snapshot))
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".taskbook-*.yaml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func mapSnapshotToDoc(snapshot domain.Snapshot) snapshotDoc {
	doc := snapshotDoc{
		Persons: make([]personRecord, 0, len(snapshot.Persons)),
		Tasks:   make([]taskRecord, 0, len(snapshot.Tasks)),
	}
	for _, p := range snapshot.Persons {
		doc.Persons = append(doc.Persons, personRecord{
			Name:    p.Name.String(),
			Phone:   p.Phone,
			Email:   p.Email,
			Address: p.Address,
		})
	}
	for _, record := range snapshot.Tasks {
		t := record.Task
		doc.Tasks = append(doc.Tasks, taskRecord{
			Kind:        t.Kind().String(),
			Name:        t.Name().String(),
			Assignment:  string(t.Assignment()),
			Description: t.Description().String(),
			Done:        t.IsDone(),
			Date:        t.DateString(),
			Added:       record.Added,
		})
	}
	return doc
}

func mapDocToSnapshot(doc snapshotDoc) (domain.Snapshot, error) {
	snapshot := domain.Snapshot{
		Persons: make([]domain.Person, 0, len(doc.Persons)),
		Tasks:   make([]domain.TaskRecord, 0, len(doc.Tasks)),
	}
	for i, row := range doc.Persons {
		name, err := domain.ParseName(row.Name)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("person %d: %w", i+1, err)
		}
		snapshot.Persons = append(snapshot.Persons, domain.NewPerson(name, row.Phone, row.Email, row.Address))
	}
	for i, row := range doc.Tasks {
		task, err := domain.RestoreTask(row.Kind, row.Name, row.Assignment, row.Description, row.Done, row.Date)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("task %d: %w", i+1, err)
		}
		snapshot.Tasks = append(snapshot.Tasks, domain.TaskRecord{Task: task, Added: row.Added})
	}
	return snapshot, nil
}

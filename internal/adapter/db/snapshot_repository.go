package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	createPersonsTable = `
CREATE TABLE IF NOT EXISTS persons (
  position INT UNSIGNED NOT NULL,
  name VARCHAR(255) NOT NULL,
  phone VARCHAR(64) NOT NULL DEFAULT '',
  email VARCHAR(255) NOT NULL DEFAULT '',
  address VARCHAR(512) NOT NULL DEFAULT '',
  PRIMARY KEY (position),
  UNIQUE KEY uq_persons_name (name)
)`
	createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
  position INT UNSIGNED NOT NULL,
  kind ENUM('todo', 'deadline', 'event') NOT NULL,
  name VARCHAR(255) NOT NULL,
  assignment ENUM('TO', 'FROM') NOT NULL,
  description TEXT NOT NULL,
  done BOOLEAN NOT NULL DEFAULT FALSE,
  date DATE NULL,
  added BIGINT UNSIGNED NOT NULL,
  PRIMARY KEY (position)
)`

	listPersonsQuery = `SELECT position, name, phone, email, address FROM persons ORDER BY position`
	listTasksQuery   = `SELECT position, kind, name, assignment, description, done, date, added FROM tasks ORDER BY position`

	insertPersonQuery = `
INSERT INTO persons (position, name, phone, email, address)
VALUES (:position, :name, :phone, :email, :address)`
	insertTaskQuery = `
INSERT INTO tasks (position, kind, name, assignment, description, done, date, added)
VALUES (:position, :kind, :name, :assignment, :description, :done, :date, :added)`
)

// SnapshotRepository stores the task book in MySQL. Every save replaces the
// stored rows inside one transaction.
type SnapshotRepository struct {
	db *sqlx.DB
}

type personRow struct {
	Position int    `db:"position"`
	Name     string `db:"name"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	Address  string `db:"address"`
}

type taskRow struct {
	Position    int          `db:"position"`
	Kind        string       `db:"kind"`
	Name        string       `db:"name"`
	Assignment  string       `db:"assignment"`
	Description string       `db:"description"`
	Done        bool         `db:"done"`
	Date        sql.NullTime `db:"date"`
	Added       uint64       `db:"added"`
}

var _ ports.SnapshotStore = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the tables if they do not exist.
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{createPersonsTable, createTasksTable} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *SnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	var persons []personRow
	if err := r.db.SelectContext(ctx, &persons, listPersonsQuery); err != nil {
		return domain.Snapshot{}, err
	}
	var tasks []taskRow
	if err := r.db.SelectContext(ctx, &tasks, listTasksQuery); err != nil {
		return domain.Snapshot{}, err
	}

	snapshot := domain.Snapshot{
		Persons: make([]domain.Person, 0, len(persons)),
		Tasks:   make([]domain.TaskRecord, 0, len(tasks)),
	}
	for _, row := range persons {
		person, err := mapPersonRowToDomainPerson(row)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snapshot.Persons = append(snapshot.Persons, person)
	}
	for _, row := range tasks {
		record, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snapshot.Tasks = append(snapshot.Tasks, record)
	}
	return snapshot, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot domain.Snapshot) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to roll back snapshot save", zap.Error(rbErr))
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM persons"); err != nil {
		return err
	}
	for i, p := range snapshot.Persons {
		if _, err = tx.NamedExecContext(ctx, insertPersonQuery, mapDomainPersonToRow(i, p)); err != nil {
			return err
		}
	}
	for i, record := range snapshot.Tasks {
		if _, err = tx.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(i, record)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func mapDomainPersonToRow(position int, p domain.Person) personRow {
	return personRow{
		Position: position,
		Name:     p.Name.String(),
		Phone:    p.Phone,
		Email:    p.Email,
		Address:  p.Address,
	}
}

func mapDomainTaskToRow(position int, record domain.TaskRecord) taskRow {
	t := record.Task
	row := taskRow{
		Position:    position,
		Kind:        t.Kind().String(),
		Name:        t.Name().String(),
		Assignment:  string(t.Assignment()),
		Description: t.Description().String(),
		Done:        t.IsDone(),
		Added:       record.Added,
	}
	if date, ok := t.Date(); ok {
		row.Date = sql.NullTime{Time: date.Time(), Valid: true}
	}
	return row
}

func mapPersonRowToDomainPerson(row personRow) (domain.Person, error) {
	name, err := domain.ParseName(row.Name)
	if err != nil {
		return domain.Person{}, fmt.Errorf("person at position %d: %w", row.Position, err)
	}
	return domain.NewPerson(name, row.Phone, row.Email, row.Address), nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.TaskRecord, error) {
	date := ""
	if row.Date.Valid {
		date = row.Date.Time.Format(domain.DateLayout)
	}
	task, err := domain.RestoreTask(row.Kind, row.Name, row.Assignment, row.Description, row.Done, date)
	if err != nil {
		return domain.TaskRecord{}, fmt.Errorf("task at position %d: %w", row.Position, err)
	}
	return domain.TaskRecord{Task: task, Added: row.Added}, nil
}

package watch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status tracks an upload attempt through its lifecycle.
type Status string

const (
	StatusPending  Status = "pending"
	StatusUploaded Status = "uploaded"
	StatusFailed   Status = "failed"
)

// Entry is one journaled upload attempt.
type Entry struct {
	ID         string     `json:"id"`
	File       string     `json:"file"`
	Checksum   string     `json:"checksum,omitempty"`
	Status     Status     `json:"status"`
	ReceiptID  int64      `json:"receipt_id,omitempty"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Journal persists one JSON record per upload attempt so a crashed or
// restarted watcher can show what happened to every file it touched.
type Journal struct {
	dir string
}

func NewJournal(dir string) *Journal {
	return &Journal{dir: dir}
}

// Begin records a new pending attempt for the given file. The checksum
// is the hex SHA-256 of the file content at read time.
func (j *Journal) Begin(file, checksum string) (*Entry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entry ID: %w", err)
	}
	entry := &Entry{
		ID:        id.String(),
		File:      file,
		Checksum:  checksum,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	if err := j.save(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Uploaded reports whether content with the given checksum has already
// been uploaded. Lets a restarted watcher skip files that landed on the
// server but were never archived.
func (j *Journal) Uploaded(checksum string) (bool, error) {
	if checksum == "" {
		return false, nil
	}
	entries, err := j.List(StatusUploaded)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.Checksum == checksum {
			return true, nil
		}
	}
	return false, nil
}

// Finish marks an attempt as uploaded.
func (j *Journal) Finish(entry *Entry, receiptID int64) error {
	now := time.Now()
	entry.Status = StatusUploaded
	entry.ReceiptID = receiptID
	entry.FinishedAt = &now
	return j.save(entry)
}

// Fail marks an attempt as failed, keeping the cause for later review.
func (j *Journal) Fail(entry *Entry, cause error) error {
	now := time.Now()
	entry.Status = StatusFailed
	entry.FinishedAt = &now
	if cause != nil {
		entry.Error = cause.Error()
	}
	return j.save(entry)
}

// Get loads a single entry by ID.
func (j *Journal) Get(id string) (*Entry, error) {
	data, err := os.ReadFile(j.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("journal entry %s not found", id)
		}
		return nil, fmt.Errorf("failed to read journal entry: %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse journal entry: %w", err)
	}
	return &entry, nil
}

// List returns entries, newest first. A non-empty status narrows the
// result. Unreadable records are skipped rather than failing the whole
// listing.
func (j *Journal) List(status Status) ([]*Entry, error) {
	dirents, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal dir: %w", err)
	}

	var entries []*Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			continue
		}
		entry, err := j.Get(strings.TrimSuffix(d.Name(), ".json"))
		if err != nil {
			continue
		}
		if status != "" && entry.Status != status {
			continue
		}
		entries = append(entries, entry)
	}

	// V7 IDs sort chronologically, so newest first is a reverse sort.
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].ID > entries[b].ID
	})
	return entries, nil
}

// Prune removes finished entries older than the cutoff. Pending
// entries are kept regardless of age.
func (j *Journal) Prune(olderThan time.Time) (int, error) {
	entries, err := j.List("")
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, entry := range entries {
		if entry.Status == StatusPending || entry.FinishedAt == nil {
			continue
		}
		if entry.FinishedAt.After(olderThan) {
			continue
		}
		if err := os.Remove(j.path(entry.ID)); err != nil {
			return removed, fmt.Errorf("failed to prune journal entry: %w", err)
		}
		removed++
	}
	return removed, nil
}

func (j *Journal) save(entry *Entry) error {
	if err := os.MkdirAll(j.dir, 0755); err != nil {
		return fmt.Errorf("failed to create journal dir: %w", err)
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}
	if err := os.WriteFile(j.path(entry.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write journal entry: %w", err)
	}
	return nil
}

func (j *Journal) path(id string) string {
	return filepath.Join(j.dir, id+".json")
}

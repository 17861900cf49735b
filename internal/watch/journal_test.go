package watch

import (
	"errors"
	"testing"
	"time"
)

func TestJournal_Lifecycle(t *testing.T) {
	journal := NewJournal(t.TempDir())

	entry, err := journal.Begin("lunch.pdf", "abc123")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if entry.Status != StatusPending {
		t.Errorf("Expected status %q, got %q", StatusPending, entry.Status)
	}
	if entry.File != "lunch.pdf" {
		t.Errorf("Expected file lunch.pdf, got %q", entry.File)
	}
	if entry.Checksum != "abc123" {
		t.Errorf("Expected checksum abc123, got %q", entry.Checksum)
	}

	if err := journal.Finish(entry, 42); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	loaded, err := journal.Get(entry.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Status != StatusUploaded {
		t.Errorf("Expected status %q, got %q", StatusUploaded, loaded.Status)
	}
	if loaded.ReceiptID != 42 {
		t.Errorf("Expected receipt ID 42, got %d", loaded.ReceiptID)
	}
	if loaded.FinishedAt == nil {
		t.Error("Expected FinishedAt to be set")
	}
}

func TestJournal_FailKeepsCause(t *testing.T) {
	journal := NewJournal(t.TempDir())

	entry, err := journal.Begin("taxi.jpg", "")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := journal.Fail(entry, errors.New("server unreachable")); err != nil {
		t.Fatalf("Fail failed: %v", err)
	}

	loaded, err := journal.Get(entry.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Status != StatusFailed {
		t.Errorf("Expected status %q, got %q", StatusFailed, loaded.Status)
	}
	if loaded.Error != "server unreachable" {
		t.Errorf("Expected error message to be kept, got %q", loaded.Error)
	}
}

func TestJournal_ListNewestFirstWithFilter(t *testing.T) {
	journal := NewJournal(t.TempDir())

	first, err := journal.Begin("a.pdf", "sum-a")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := journal.Finish(first, 1); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	second, err := journal.Begin("b.pdf", "sum-b")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := journal.Fail(second, errors.New("boom")); err != nil {
		t.Fatalf("Fail failed: %v", err)
	}

	third, err := journal.Begin("c.pdf", "sum-c")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	all, err := journal.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(all))
	}
	if all[0].ID != third.ID {
		t.Errorf("Expected newest entry first, got %s", all[0].File)
	}

	failed, err := journal.List(StatusFailed)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(failed) != 1 || failed[0].File != "b.pdf" {
		t.Errorf("Expected only b.pdf to be failed, got %v", failed)
	}
}

func TestJournal_UploadedByChecksum(t *testing.T) {
	journal := NewJournal(t.TempDir())

	entry, err := journal.Begin("dup.pdf", "deadbeef")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	// Pending attempts do not count as uploaded.
	done, err := journal.Uploaded("deadbeef")
	if err != nil {
		t.Fatalf("Uploaded failed: %v", err)
	}
	if done {
		t.Error("Expected pending checksum to read as not uploaded")
	}

	if err := journal.Finish(entry, 9); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	done, err = journal.Uploaded("deadbeef")
	if err != nil {
		t.Fatalf("Uploaded failed: %v", err)
	}
	if !done {
		t.Error("Expected finished checksum to read as uploaded")
	}

	done, err = journal.Uploaded("")
	if err != nil {
		t.Fatalf("Uploaded failed: %v", err)
	}
	if done {
		t.Error("Expected empty checksum to never match")
	}
}

func TestJournal_ListMissingDir(t *testing.T) {
	journal := NewJournal("/nonexistent/journal/dir")

	entries, err := journal.List("")
	if err != nil {
		t.Fatalf("Expected missing dir to list as empty, got error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestJournal_PruneKeepsPending(t *testing.T) {
	journal := NewJournal(t.TempDir())

	done, err := journal.Begin("old.pdf", "sum-old")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := journal.Finish(done, 7); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if _, err := journal.Begin("inflight.pdf", "sum-inflight"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	removed, err := journal.Prune(time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 entry pruned, got %d", removed)
	}

	remaining, err := journal.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].File != "inflight.pdf" {
		t.Errorf("Expected only the pending entry to survive, got %v", remaining)
	}
}

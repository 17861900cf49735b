package fexport

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLocalStore_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	artifact, err := store.Save(ctx, "invoices/test.csv", strings.NewReader("a,b\n1,2\n"), "text/csv", nil)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if artifact.Size != 8 {
		t.Errorf("Expected size 8, got %d", artifact.Size)
	}

	rc, err := store.Open(ctx, "invoices/test.csv")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("Unexpected content %q", data)
	}

	if err := store.Delete(ctx, "invoices/test.csv"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Open(ctx, "invoices/test.csv"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "invoices/test.csv"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestLocalStore_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	for _, key := range []string{"../outside.txt", "/etc/passwd", "a/../../b"} {
		if _, err := store.Save(ctx, key, strings.NewReader("x"), "text/plain", nil); !errors.Is(err, ErrBadKey) {
			t.Errorf("Expected ErrBadKey for %q, got %v", key, err)
		}
	}
}

func TestLocalStore_ListAndDeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	files := []string{"invoices/a.csv", "invoices/b.csv", "reports/r.pdf"}
	for _, key := range files {
		if _, err := store.Save(ctx, key, strings.NewReader("x"), "", nil); err != nil {
			t.Fatalf("Save %s failed: %v", key, err)
		}
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 artifacts, got %d", len(all))
	}

	invoices, err := store.List(ctx, "invoices/")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("Expected 2 invoice artifacts, got %d", len(invoices))
	}

	if err := store.DeletePrefix(ctx, "invoices/"); err != nil {
		t.Fatalf("DeletePrefix failed: %v", err)
	}
	remaining, _ := store.List(ctx, "")
	if len(remaining) != 1 || remaining[0].Key != "reports/r.pdf" {
		t.Errorf("Expected only the report left, got %+v", remaining)
	}
}

func TestLocalStore_ListEmptyRoot(t *testing.T) {
	ctx := context.Background()
	// Root that was never created.
	store := NewLocalStore(t.TempDir() + "/never-created")

	artifacts, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List on a missing root failed: %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("Expected no artifacts, got %d", len(artifacts))
	}
}

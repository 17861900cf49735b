// Package fexport renders account data to CSV, XLSX and PDF files and
// keeps the results in a local artifact store so past exports can be
// listed and cleaned.
package fexport

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Artifact describes one stored export file.
type Artifact struct {
	Key         string            `json:"key"`  // store-relative key, e.g. "invoices/invoices-20260823-101500.csv"
	Path        string            `json:"path"` // absolute location on disk
	Size        int64             `json:"size"`
	ContentType string            `json:"content_type"`
	CreatedAt   time.Time         `json:"created_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Store is the persistence interface for export artifacts.
type Store interface {
	// Save writes the artifact under key, creating parent directories
	// as needed. key is "{resource}/{filename}".
	Save(ctx context.Context, key string, reader io.Reader, contentType string, metadata map[string]string) (*Artifact, error)

	// Open retrieves an artifact's content by key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// List returns all artifacts whose key starts with prefix, newest
	// first. An empty prefix lists everything.
	List(ctx context.Context, prefix string) ([]*Artifact, error)

	// Delete removes a single artifact.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every artifact under prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// ResourceKey builds the store key for an export file.
func ResourceKey(resource, filename string) string {
	return resource + "/" + filename
}

// DefaultRoot is the store location when no exportDir is configured.
func DefaultRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "fintrack", "exports"), nil
}

package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config controls the receipt inbox watcher. Values come from
// FINTRACK_WATCH_* environment variables, with a .env file loaded
// first when one is present.
type Config struct {
	// InboxDir is the directory watched for dropped receipt files.
	InboxDir string `envconfig:"INBOX_DIR"`

	// ArchiveDir receives files after a successful upload. Defaults
	// to <inbox>/processed.
	ArchiveDir string `envconfig:"ARCHIVE_DIR"`

	// JournalDir holds one JSON record per upload attempt.
	JournalDir string `envconfig:"JOURNAL_DIR"`

	// Settle is how long a file must stay quiet before it is
	// considered fully written and picked up.
	Settle time.Duration `envconfig:"SETTLE" default:"2s"`

	// Concurrency caps simultaneous uploads.
	Concurrency int `envconfig:"CONCURRENCY" default:"2"`

	// Category is attached to every upload when set, e.g. "office".
	Category string `envconfig:"CATEGORY"`

	// KeepFailed leaves files that failed to upload in the inbox so
	// a later run retries them. When false they move to
	// <inbox>/failed instead.
	KeepFailed bool `envconfig:"KEEP_FAILED" default:"true"`
}

// LoadConfig reads the watcher environment. A missing .env file is
// not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("FINTRACK_WATCH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read watcher environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.InboxDir == "" {
		return fmt.Errorf("inbox directory is not set")
	}
	abs, err := filepath.Abs(c.InboxDir)
	if err != nil {
		return fmt.Errorf("failed to resolve inbox directory: %w", err)
	}
	c.InboxDir = abs

	if c.ArchiveDir == "" {
		c.ArchiveDir = filepath.Join(c.InboxDir, "processed")
	}
	if c.JournalDir == "" {
		dir, err := DefaultJournalDir()
		if err != nil {
			return err
		}
		c.JournalDir = dir
	}
	if c.Settle <= 0 {
		c.Settle = 2 * time.Second
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 2
	}
	return nil
}

// DefaultJournalDir returns the per-user journal location.
func DefaultJournalDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "fintrack", "watch"), nil
}

// Package watch implements the receipt inbox daemon. It watches a
// directory for dropped receipt files, uploads each one once it has
// settled, journals the outcome, and moves handled files out of the
// inbox.
package watch

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fintracklabs/fintrack/pkg/flog"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

// Uploader is the slice of the SDK the watcher needs.
type Uploader interface {
	Upload(ctx context.Context, req fsdk.UploadReceiptRequest) (*fsdk.Receipt, error)
}

// Service runs the inbox watcher.
type Service struct {
	cfg      *Config
	uploader Uploader
	journal  *Journal
	log      *flog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool

	sem chan struct{}
	wg  sync.WaitGroup
}

// New validates the config and builds a Service.
func New(cfg *Config, uploader Uploader, log *flog.Logger) (*Service, error) {
	if uploader == nil {
		return nil, fmt.Errorf("uploader is required")
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if log == nil {
		log = flog.NewDefault()
	}
	return &Service{
		cfg:      cfg,
		uploader: uploader,
		journal:  NewJournal(cfg.JournalDir),
		log:      log,
		pending:  make(map[string]*time.Timer),
		sem:      make(chan struct{}, cfg.Concurrency),
	}, nil
}

// Journal exposes the upload journal backing this service.
func (s *Service) Journal() *Journal {
	return s.journal
}

// Run watches the inbox until the context is cancelled. Files already
// sitting in the inbox are picked up on start.
func (s *Service) Run(ctx context.Context) error {
	info, err := os.Stat(s.cfg.InboxDir)
	if err != nil {
		return fmt.Errorf("inbox directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("inbox path %s is not a directory", s.cfg.InboxDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.cfg.InboxDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.cfg.InboxDir, err)
	}

	s.log.Info("watching inbox", "dir", s.cfg.InboxDir)
	s.scanExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				s.shutdown()
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create || event.Op&fsnotify.Write == fsnotify.Write {
				s.schedule(ctx, event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				s.shutdown()
				return nil
			}
			s.log.Warn("watch error", "error", err)
		}
	}
}

// scanExisting schedules files that were dropped while the watcher was
// not running.
func (s *Service) scanExisting(ctx context.Context) {
	dirents, err := os.ReadDir(s.cfg.InboxDir)
	if err != nil {
		s.log.Warn("failed to scan inbox", "error", err)
		return
	}
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		s.schedule(ctx, filepath.Join(s.cfg.InboxDir, d.Name()))
	}
}

// schedule arms (or rearms) the settle timer for a file. The upload
// only starts once the file has been quiet for the settle window, so
// partially written files are not picked up.
func (s *Service) schedule(ctx context.Context, path string) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || !fsdk.SupportedReceiptFile(base) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if t, ok := s.pending[path]; ok {
		t.Reset(s.cfg.Settle)
		return
	}
	s.pending[path] = time.AfterFunc(s.cfg.Settle, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		delete(s.pending, path)
		s.wg.Add(1)
		s.mu.Unlock()

		defer s.wg.Done()
		s.sem <- struct{}{}
		defer func() { <-s.sem }()
		s.process(ctx, path)
	})
}

// shutdown stops pending timers and waits for in-flight uploads.
func (s *Service) shutdown() {
	s.mu.Lock()
	s.closed = true
	for path, t := range s.pending {
		t.Stop()
		delete(s.pending, path)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Service) process(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		// File moved away before its timer fired.
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("failed to read receipt", "file", path, "error", err)
		return
	}

	name := filepath.Base(path)
	sum := fmt.Sprintf("%x", sha256.Sum256(data))

	if done, err := s.journal.Uploaded(sum); err == nil && done {
		// Uploaded on a previous run but never archived.
		s.log.Info("receipt already uploaded, archiving", "file", name)
		s.moveTo(path, s.cfg.ArchiveDir)
		return
	}

	entry, err := s.journal.Begin(name, sum)
	if err != nil {
		s.log.Warn("failed to journal upload", "file", name, "error", err)
	}

	receipt, err := s.uploader.Upload(ctx, fsdk.UploadReceiptRequest{
		Filename: name,
		Data:     data,
		Category: s.cfg.Category,
	})
	if err != nil {
		s.log.Error("upload failed", "file", name, "error", err)
		if entry != nil {
			_ = s.journal.Fail(entry, err)
		}
		if !s.cfg.KeepFailed {
			s.moveTo(path, filepath.Join(s.cfg.InboxDir, "failed"))
		}
		return
	}

	s.log.Info("receipt uploaded", "file", name, "receipt_id", receipt.ID)
	if entry != nil {
		_ = s.journal.Finish(entry, receipt.ID)
	}
	s.moveTo(path, s.cfg.ArchiveDir)
}

// moveTo relocates a handled file, renaming on collision so a
// same-named receipt dropped twice keeps both archive copies.
func (s *Service) moveTo(path, dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.log.Warn("failed to create archive dir", "dir", dir, "error", err)
		return
	}
	dst := filepath.Join(dir, filepath.Base(path))
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(dst)
		dst = strings.TrimSuffix(dst, ext) + "-" + time.Now().Format("20060102150405") + ext
	}
	if err := os.Rename(path, dst); err != nil {
		s.log.Warn("failed to move file", "file", path, "error", err)
	}
}

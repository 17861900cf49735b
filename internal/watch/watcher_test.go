package watch

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fintracklabs/fintrack/pkg/flog"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

type fakeUploader struct {
	mu   sync.Mutex
	reqs []fsdk.UploadReceiptRequest
	err  error
}

func (f *fakeUploader) Upload(_ context.Context, req fsdk.UploadReceiptRequest) (*fsdk.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.reqs = append(f.reqs, req)
	return &fsdk.Receipt{ID: int64(len(f.reqs)), Filename: req.Filename}, nil
}

func (f *fakeUploader) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

func (f *fakeUploader) request(i int) fsdk.UploadReceiptRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reqs[i]
}

func newTestService(t *testing.T, uploader Uploader) (*Service, *Config) {
	t.Helper()
	cfg := &Config{
		InboxDir:    t.TempDir(),
		JournalDir:  t.TempDir(),
		Settle:      50 * time.Millisecond,
		Concurrency: 2,
		Category:    "office",
		KeepFailed:  true,
	}
	svc, err := New(cfg, uploader, flog.NewQuiet())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return svc, cfg
}

func startService(t *testing.T, svc *Service) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("Run returned unexpected error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Run did not stop after cancel")
		}
	})
	// Give the watcher a moment to register before tests drop files.
	time.Sleep(50 * time.Millisecond)
	return cancel
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestService_UploadsDroppedFile(t *testing.T) {
	uploader := &fakeUploader{}
	svc, cfg := newTestService(t, uploader)
	startService(t, svc)

	path := filepath.Join(cfg.InboxDir, "lunch.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 receipt"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	waitFor(t, "upload", func() bool { return uploader.count() == 1 })

	req := uploader.request(0)
	if req.Filename != "lunch.pdf" {
		t.Errorf("Expected filename lunch.pdf, got %q", req.Filename)
	}
	if string(req.Data) != "%PDF-1.4 receipt" {
		t.Errorf("Expected file content to be uploaded, got %q", req.Data)
	}
	if req.Category != "office" {
		t.Errorf("Expected configured category, got %q", req.Category)
	}

	archived := filepath.Join(cfg.ArchiveDir, "lunch.pdf")
	waitFor(t, "archive move", func() bool {
		_, err := os.Stat(archived)
		return err == nil
	})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to leave the inbox after upload")
	}

	waitFor(t, "journal entry", func() bool {
		entries, err := svc.Journal().List(StatusUploaded)
		return err == nil && len(entries) == 1
	})
	entries, err := svc.Journal().List(StatusUploaded)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if entries[0].File != "lunch.pdf" || entries[0].ReceiptID != 1 {
		t.Errorf("Unexpected journal entry: %+v", entries[0])
	}
}

func TestService_PicksUpExistingFiles(t *testing.T) {
	uploader := &fakeUploader{}
	svc, cfg := newTestService(t, uploader)

	path := filepath.Join(cfg.InboxDir, "backlog.jpg")
	if err := os.WriteFile(path, []byte("image-bytes"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	startService(t, svc)

	waitFor(t, "backlog upload", func() bool { return uploader.count() == 1 })
	if got := uploader.request(0).Filename; got != "backlog.jpg" {
		t.Errorf("Expected backlog.jpg, got %q", got)
	}
}

func TestService_IgnoresUnsupportedFiles(t *testing.T) {
	uploader := &fakeUploader{}
	svc, cfg := newTestService(t, uploader)
	startService(t, svc)

	for _, name := range []string{"notes.txt", ".partial.pdf", "data.csv"} {
		p := filepath.Join(cfg.InboxDir, name)
		if err := os.WriteFile(p, []byte("ignore me"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}

	time.Sleep(4 * cfg.Settle)
	if n := uploader.count(); n != 0 {
		t.Errorf("Expected no uploads for unsupported files, got %d", n)
	}
	if _, err := os.Stat(filepath.Join(cfg.InboxDir, "notes.txt")); err != nil {
		t.Errorf("Expected unsupported file to stay in the inbox: %v", err)
	}
}

func TestService_FailedUploadStaysInInbox(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("server unreachable")}
	svc, cfg := newTestService(t, uploader)
	startService(t, svc)

	path := filepath.Join(cfg.InboxDir, "broken.png")
	if err := os.WriteFile(path, []byte("image-bytes"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	waitFor(t, "failed journal entry", func() bool {
		entries, err := svc.Journal().List(StatusFailed)
		return err == nil && len(entries) == 1
	})

	entries, err := svc.Journal().List(StatusFailed)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if entries[0].Error != "server unreachable" {
		t.Errorf("Expected failure cause in journal, got %q", entries[0].Error)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected failed file to stay in the inbox for retry: %v", err)
	}
}

func TestService_DebouncesRewrites(t *testing.T) {
	uploader := &fakeUploader{}
	svc, cfg := newTestService(t, uploader)
	startService(t, svc)

	path := filepath.Join(cfg.InboxDir, "slow.pdf")
	// Simulate a slow writer appending in chunks.
	for i := 0; i < 3; i++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			t.Fatalf("Failed to open file: %v", err)
		}
		if _, err := f.WriteString("chunk;"); err != nil {
			t.Fatalf("Failed to write chunk: %v", err)
		}
		f.Close()
		time.Sleep(cfg.Settle / 4)
	}

	waitFor(t, "settled upload", func() bool { return uploader.count() >= 1 })
	time.Sleep(2 * cfg.Settle)
	if n := uploader.count(); n != 1 {
		t.Errorf("Expected exactly one upload after settle, got %d", n)
	}
	if got := string(uploader.request(0).Data); got != "chunk;chunk;chunk;" {
		t.Errorf("Expected full file content, got %q", got)
	}
}

func TestService_SkipsContentUploadedOnPreviousRun(t *testing.T) {
	uploader := &fakeUploader{}
	svc, cfg := newTestService(t, uploader)

	// A previous run uploaded these bytes but crashed before archiving.
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte("image-bytes")))
	entry, err := svc.Journal().Begin("orphan.jpg", sum)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := svc.Journal().Finish(entry, 5); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	path := filepath.Join(cfg.InboxDir, "orphan.jpg")
	if err := os.WriteFile(path, []byte("image-bytes"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	startService(t, svc)

	archived := filepath.Join(cfg.ArchiveDir, "orphan.jpg")
	waitFor(t, "archive without re-upload", func() bool {
		_, err := os.Stat(archived)
		return err == nil
	})
	if n := uploader.count(); n != 0 {
		t.Errorf("Expected no re-upload of journaled content, got %d", n)
	}
}

func TestNew_RequiresInboxDir(t *testing.T) {
	_, err := New(&Config{}, &fakeUploader{}, flog.NewQuiet())
	if err == nil {
		t.Fatal("Expected error for missing inbox dir")
	}
}

package files

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ondrasimku/upload-service-go/internal/config"
	"github.com/ondrasimku/upload-service-go/internal/domain"
	"github.com/ondrasimku/upload-service-go/internal/log"
	"github.com/ondrasimku/upload-service-go/internal/storage"
	"github.com/ondrasimku/upload-service-go/internal/storage/local"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "volume")
	st := local.NewLocalStorage(root)
	return NewService(st, NewAllowList(config.DefaultAllowedExtensions), time.Second, log.Discard()), root
}

func TestUploadAllowedExtensions(t *testing.T) {
	svc, root := newTestService(t)
	ctx := context.Background()

	names := []string{"notes.txt", "Photo.JPG", "data.Csv", "bundle.ZIP"}
	for _, name := range names {
		res, err := svc.Upload(ctx, name, strings.NewReader("payload"))
		if err != nil {
			t.Fatalf("Upload(%q) failed: %v", name, err)
		}
		if res.Filename != name {
			t.Errorf("expected stored name %q, got %q", name, res.Filename)
		}
		if res.Path != filepath.Join(root, name) {
			t.Errorf("unexpected path %q", res.Path)
		}
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, f := range listed {
		seen[f.Name] = true
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("%s missing from listing", name)
		}
	}
}

func TestUploadDisallowedExtension(t *testing.T) {
	svc, root := newTestService(t)

	for _, name := range []string{"README", "script.sh", "trailing.", "image.webp"} {
		_, err := svc.Upload(context.Background(), name, strings.NewReader("x"))
		if domain.KindOf(err) != domain.KindDisallowedExtension {
			t.Errorf("Upload(%q) error = %v, want DisallowedExtension", name, err)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected nothing written, found %d entries", len(entries))
	}
}

func TestUploadEmptyFilename(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Upload(context.Background(), "", strings.NewReader("x"))
	if domain.KindOf(err) != domain.KindEmptyFilename {
		t.Errorf("expected EmptyFilename, got %v", err)
	}
}

func TestUploadTwiceKeepsBoth(t *testing.T) {
	svc, root := newTestService(t)
	ctx := context.Background()

	first, err := svc.Upload(ctx, "report.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first upload failed: %v", err)
	}
	second, err := svc.Upload(ctx, "report.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}

	if first.Filename != "report.pdf" {
		t.Errorf("expected report.pdf, got %q", first.Filename)
	}
	if !strings.HasPrefix(second.Filename, "report_") || filepath.Ext(second.Filename) != ".pdf" {
		t.Errorf("expected report_<timestamp>.pdf, got %q", second.Filename)
	}

	for name, want := range map[string]string{first.Filename: "one", second.Filename: "two"} {
		content, err := os.ReadFile(filepath.Join(root, name))
		if err != nil || string(content) != want {
			t.Errorf("%s: got %q, %v; want %q", name, content, err, want)
		}
	}
}

func TestUploadSanitizesName(t *testing.T) {
	svc, root := newTestService(t)
	ctx := context.Background()

	res, err := svc.Upload(ctx, "../../escape.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if res.Filename != "escape.txt" || filepath.Dir(res.Path) != root {
		t.Errorf("upload escaped storage root: %+v", res)
	}

	res, err = svc.Upload(ctx, "文档.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if !strings.HasPrefix(res.Filename, "upload_") || filepath.Ext(res.Filename) != ".pdf" {
		t.Errorf("expected generated name, got %q", res.Filename)
	}
}

func TestUploadStorageUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volume")
	if err := os.WriteFile(path, []byte("not a dir"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	svc := NewService(local.NewLocalStorage(path), NewAllowList([]string{"txt"}), time.Second, log.Discard())

	_, err := svc.Upload(context.Background(), "a.txt", strings.NewReader("x"))
	if domain.KindOf(err) != domain.KindStorageUnavailable {
		t.Fatalf("expected StorageUnavailable, got %v", err)
	}

	var uploadErr *domain.UploadError
	if !errors.As(err, &uploadErr) || !strings.HasPrefix(uploadErr.Message, "Failed to access volume directory: ") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestListMissingDirectory(t *testing.T) {
	svc, _ := newTestService(t)

	files, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty list, got %v", files)
	}
}

func TestHealthHealthy(t *testing.T) {
	svc, root := newTestService(t)

	report := svc.Health(context.Background())
	if report.Status != domain.HealthHealthy || !report.Accessible {
		t.Fatalf("expected healthy, got %+v", report)
	}
	if report.VolumePath != root {
		t.Errorf("expected path %q, got %q", root, report.VolumePath)
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("health check should create the directory: %v", err)
	}
}

func TestHealthDegraded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volume")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	svc := NewService(local.NewLocalStorage(path), NewAllowList([]string{"txt"}), time.Second, log.Discard())

	report := svc.Health(context.Background())
	if report.Status != domain.HealthDegraded || report.Accessible {
		t.Fatalf("expected degraded, got %+v", report)
	}
	if report.Message == "" {
		t.Errorf("expected diagnostic message")
	}
}

type stuckStorage struct {
	panicOnEnsure bool
}

func (s *stuckStorage) Root() string { return "/stuck" }

func (s *stuckStorage) Ensure(ctx context.Context) error {
	if s.panicOnEnsure {
		panic("boom")
	}
	<-ctx.Done()
	time.Sleep(10 * time.Millisecond)
	return nil
}

func (s *stuckStorage) Save(context.Context, io.Reader, storage.SaveOptions) (storage.FileInfo, error) {
	return storage.FileInfo{}, errors.New("not implemented")
}

func (s *stuckStorage) List(context.Context) ([]storage.FileInfo, error) {
	return nil, nil
}

func TestHealthUnhealthy(t *testing.T) {
	for _, st := range []*stuckStorage{{}, {panicOnEnsure: true}} {
		svc := NewService(st, NewAllowList([]string{"txt"}), 20*time.Millisecond, log.Discard())

		report := svc.Health(context.Background())
		if report.Status != domain.HealthUnhealthy {
			t.Errorf("expected unhealthy, got %+v", report)
		}
		if report.Err == nil {
			t.Errorf("expected error on unhealthy report")
		}
		if report.VolumePath != "/stuck" {
			t.Errorf("unexpected path %q", report.VolumePath)
		}
	}
}

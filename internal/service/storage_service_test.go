package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AdityaANS/dsa-progress-tracker/internal/config"
)

func newLocalStorage(t *testing.T) *StorageService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()
	return NewStorageService(cfg)
}

func TestUploadStoresUnderUserPath(t *testing.T) {
	svc := newLocalStorage(t)

	data := "fake image bytes"
	url, err := svc.Upload(context.Background(), "u1", "solution.png",
		strings.NewReader(data), int64(len(data)), "image/png")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if !strings.Contains(url, "/uploads/u1/") {
		t.Errorf("URL should be per-user and time-qualified, got %q", url)
	}
	if !strings.HasSuffix(url, "-solution.png") {
		t.Errorf("URL should keep the original filename, got %q", url)
	}

	local := svc.Provider.(*LocalStorageProvider)
	matches, err := filepath.Glob(filepath.Join(local.Config.LocalPath, "uploads", "u1", "*-solution.png"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected exactly one stored object, got %v (%v)", matches, err)
	}

	stored, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("failed to read stored object: %v", err)
	}
	if string(stored) != data {
		t.Errorf("stored bytes differ: %q", stored)
	}
}

func TestUploadGeneratesNameWhenMissing(t *testing.T) {
	svc := newLocalStorage(t)

	url, err := svc.Upload(context.Background(), "u1", "",
		strings.NewReader("x"), 1, "application/octet-stream")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if strings.HasSuffix(url, "-") {
		t.Errorf("empty filename should get a generated name, got %q", url)
	}
}

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AdityaANS/dsa-progress-tracker/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider is the generic object storage interface.
type StorageProvider interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	GetURL(objectName string) string
}

// LocalStorageProvider writes objects to the local filesystem.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, objectName)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	if err != nil {
		return "", err
	}

	return p.GetURL(objectName), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, objectName string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, objectName))
}

func (p *LocalStorageProvider) GetURL(objectName string) string {
	if p.Config.PublicBase != "" {
		return strings.TrimSuffix(p.Config.PublicBase, "/") + "/" + objectName
	}
	return "/uploads/" + objectName
}

// MinioStorageProvider stores objects in a MinIO bucket.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(objectName), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, objectName string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, objectName, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(objectName string) string {
	scheme := "http"
	if p.Config.MinioSecure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, p.Config.MinioEndpoint, p.Config.MinioBucket, objectName)
}

// StorageService uploads solve images under a per-user, time-qualified
// path and returns a resolvable URL.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	if cfg.Storage.Type == "minio" {
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider}
}

// Upload stores the file under uploads/{userID}/{millis}-{filename}.
func (s *StorageService) Upload(ctx context.Context, userID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = uuid.New().String()
	}
	objectName := fmt.Sprintf("uploads/%s/%d-%s", userID, time.Now().UnixMilli(), name)
	return s.Provider.Upload(ctx, objectName, reader, size, contentType)
}

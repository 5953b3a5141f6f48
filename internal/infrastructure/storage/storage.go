package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"talent-match/internal/config"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"go.uber.org/zap"
)

// Store persists uploaded files and returns a URL the file can be fetched from.
type Store interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

func New(cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sas := strings.TrimSpace(cfg.AzureContainerSASURL); sas != "" {
		return NewAzureBlob(sas)
	}
	logger.Info("azure blob storage not configured, storing uploads on disk", zap.String("dir", cfg.LocalDir))
	return NewLocal(cfg.LocalDir, "/uploads")
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectName prefixes the sanitized file name with the upload time in milliseconds.
func ObjectName(filename string, now time.Time) string {
	base := unsafeName.ReplaceAllString(filepath.Base(filename), "_")
	if base == "" || base == "." || base == "_" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

type AzureBlob struct {
	client *container.Client
	now    func() time.Time
}

func NewAzureBlob(containerSASURL string) (*AzureBlob, error) {
	client, err := container.NewClientWithNoCredential(containerSASURL, nil)
	if err != nil {
		return nil, fmt.Errorf("azure container client: %w", err)
	}
	return &AzureBlob{client: client, now: time.Now}, nil
}

func (a *AzureBlob) Put(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	bb := a.client.NewBlockBlobClient(ObjectName(filename, a.now()))

	opts := &blockblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}
	if _, err := bb.UploadBuffer(ctx, data, opts); err != nil {
		return "", fmt.Errorf("upload blob: %w", err)
	}
	return stripQuery(bb.URL()), nil
}

// stripQuery drops the SAS token so it is never persisted.
func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	return u.String()
}

type Local struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

func NewLocal(dir, urlPrefix string) (*Local, error) {
	if dir = strings.TrimSpace(dir); dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/"), now: time.Now}, nil
}

func (l *Local) Dir() string { return l.dir }

func (l *Local) Put(_ context.Context, filename, _ string, data []byte) (string, error) {
	name := ObjectName(filename, l.now())
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.urlPrefix + "/" + name, nil
}

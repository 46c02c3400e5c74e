// Package storage holds the object store abstraction used for exported
// resume PDFs. Objects are streamed; nothing touches local disk.
package storage

import (
	"context"
	"io"
	"mime"
	"strings"
	"time"
)

// MetaDownloadName is the user metadata key carrying the file name offered
// to browsers when an export is downloaded.
const MetaDownloadName = "download-name"

// ContentDisposition formats a Content-Disposition value with the file name
// always quoted. Names that are not plain ASCII fall back to the RFC 2231
// form produced by mime.FormatMediaType.
func ContentDisposition(kind, filename string) string {
	v := mime.FormatMediaType(kind, map[string]string{"filename": filename})
	if strings.HasSuffix(v, "filename="+filename) {
		return kind + `; filename="` + filename + `"`
	}
	return v
}

// PutObjectOptions define optional parameters for uploading objects.
// Size must be the exact byte count, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object store.
type Storage interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get streams an object's content alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL. When filename is not
	// empty the response is served as an attachment with that name.
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
}

package model

import "time"

// Export describes a rendered resume PDF kept in object storage.
// It carries artifact metadata only, never the resume fields themselves.
type Export struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	Pages       int       `json:"pages"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`

	// DownloadURL is a presigned link filled in on creation; it is not stored.
	DownloadURL string `json:"download_url,omitempty"`
}

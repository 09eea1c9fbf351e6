package models

import "time"

// Document is a file attached to a record of a collection.
type Document struct {
	ID          string    `json:"id"`
	Collection  string    `json:"collection"`
	RecordID    string    `json:"recordId"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	SizeLabel   string    `json:"sizeLabel"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Upload is an incoming file before validation.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
}

// UploadLimits constrains the attachments of one collection.
type UploadLimits struct {
	MaxFiles        int      `json:"maxFiles"`
	MaxFileSizeMB   int      `json:"maxFileSizeMB"`
	AcceptedFormats []string `json:"acceptedFormats"`
}

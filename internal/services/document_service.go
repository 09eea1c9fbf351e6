package services

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dashkit/internal/catalog"
	"dashkit/internal/config"
	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	"dashkit/internal/store"
	"dashkit/internal/utils"
)

// DocumentService keeps attachment metadata per collection record.
type DocumentService struct {
	KV       store.KV
	Registry *catalog.Registry
	Uploads  config.UploadsConfig
	Now      func() time.Time

	mu sync.Mutex
}

func documentsKey(collection, recordID string) string {
	return "documents:" + collection + ":" + recordID
}

// Limits returns the upload limits of collection.
func (s *DocumentService) Limits(collection string) models.UploadLimits {
	maxFiles := s.Uploads.MaxFiles
	if n, ok := s.Uploads.MaxFilesBy[collection]; ok && n > 0 {
		maxFiles = n
	}
	return models.UploadLimits{
		MaxFiles:        maxFiles,
		MaxFileSizeMB:   s.Uploads.MaxFileSizeMB,
		AcceptedFormats: slices.Clone(s.Uploads.AcceptedFormats),
	}
}

func (s *DocumentService) record(ctx context.Context, collection, recordID string) error {
	l, err := s.Registry.Get(collection)
	if err != nil {
		return err
	}
	_, err = l.Get(ctx, recordID)
	return err
}

func (s *DocumentService) load(ctx context.Context, collection, recordID string) ([]models.Document, error) {
	return store.GetJSONOr(ctx, s.KV, documentsKey(collection, recordID), []models.Document{})
}

// List returns the documents attached to one record.
func (s *DocumentService) List(ctx context.Context, collection, recordID string) ([]models.Document, error) {
	if err := s.record(ctx, collection, recordID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, collection, recordID)
}

// CheckUpload validates one file against limits.
func CheckUpload(u models.Upload, limits models.UploadLimits) error {
	if u.Size > int64(limits.MaxFileSizeMB)*1024*1024 {
		return domain.ValidationError{Msg: fmt.Sprintf("\"%s\" exceeds the %d MB limit.", u.Name, limits.MaxFileSizeMB)}
	}
	if !acceptedFormat(u, limits.AcceptedFormats) {
		return domain.ValidationError{Msg: fmt.Sprintf("\"%s\" has an unsupported format.", u.Name)}
	}
	return nil
}

// acceptedFormat matches "type/*" wildcards, ".ext" suffixes and exact
// content types.
func acceptedFormat(u models.Upload, formats []string) bool {
	for _, f := range formats {
		switch {
		case strings.HasSuffix(f, "/*"):
			major, _, _ := strings.Cut(f, "/")
			if strings.HasPrefix(u.ContentType, major) {
				return true
			}
		case strings.HasPrefix(f, "."):
			if strings.HasSuffix(strings.ToLower(u.Name), f) {
				return true
			}
		case u.ContentType == f:
			return true
		}
	}
	return false
}

// Add attaches uploads to a record. Either every upload is attached or
// none is.
func (s *DocumentService) Add(ctx context.Context, collection, recordID string, uploads []models.Upload, by string) ([]models.Document, error) {
	if err := s.record(ctx, collection, recordID); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, domain.ValidationError{Field: "file", Msg: "no files uploaded"}
	}
	limits := s.Limits(collection)

	s.mu.Lock()
	defer s.mu.Unlock()
	docs, err := s.load(ctx, collection, recordID)
	if err != nil {
		return nil, err
	}
	if len(docs)+len(uploads) > limits.MaxFiles {
		return nil, domain.ValidationError{Msg: fmt.Sprintf("You can upload at most %d files.", limits.MaxFiles)}
	}
	for _, u := range uploads {
		if err := CheckUpload(u, limits); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}
	added := make([]models.Document, 0, len(uploads))
	for _, u := range uploads {
		added = append(added, models.Document{
			ID:          uuid.NewString(),
			Collection:  collection,
			RecordID:    recordID,
			Name:        path.Base(u.Name),
			ContentType: u.ContentType,
			Size:        u.Size,
			SizeLabel:   utils.FormatSize(u.Size),
			UploadedBy:  by,
			UploadedAt:  now,
		})
	}
	if err := store.SetJSON(ctx, s.KV, documentsKey(collection, recordID), append(docs, added...)); err != nil {
		return nil, err
	}
	return added, nil
}

// Remove detaches one document.
func (s *DocumentService) Remove(ctx context.Context, collection, recordID, docID string) error {
	if err := s.record(ctx, collection, recordID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, err := s.load(ctx, collection, recordID)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(docs, func(d models.Document) bool { return d.ID == docID })
	if i < 0 {
		return domain.NotFoundError{Resource: "document " + docID}
	}
	return store.SetJSON(ctx, s.KV, documentsKey(collection, recordID), slices.Delete(docs, i, i+1))
}

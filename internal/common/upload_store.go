package common

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"openflights/insight/internal/constants"
	"openflights/insight/internal/dataset"
)

// UploadStore keeps the rows a session has uploaded. Entries expire with
// the session; nothing is written back to storage.
type UploadStore struct {
	cache CacheInterface
	ttl   time.Duration
}

func NewUploadStore(cache CacheInterface, ttl time.Duration) *UploadStore {
	return &UploadStore{cache: cache, ttl: ttl}
}

func uploadKey(sessionID string) string {
	return string(constants.CachePrefixSessionUpload) + sessionID
}

// Save replaces the session's upload with rows. Saving no rows clears it.
func (s *UploadStore) Save(sessionID string, rows dataset.Dataset) error {
	if rows.Len() == 0 {
		s.Delete(sessionID)
		return nil
	}
	var buf bytes.Buffer
	if err := rows.WriteCSV(&buf); err != nil {
		return fmt.Errorf("encode upload: %w", err)
	}
	s.cache.Set(uploadKey(sessionID), buf.String(), s.ttl)
	return nil
}

// Load returns the session's upload, or false when there is none.
func (s *UploadStore) Load(sessionID string) (dataset.Dataset, bool, error) {
	if sessionID == "" {
		return dataset.Dataset{}, false, nil
	}
	val, found := s.cache.Get(uploadKey(sessionID))
	if !found {
		return dataset.Dataset{}, false, nil
	}

	text, ok := val.(string)
	if !ok {
		return dataset.Dataset{}, false, fmt.Errorf("session upload has type %T", val)
	}
	up, err := dataset.ParseUpload("session.csv", strings.NewReader(text))
	if err != nil {
		return dataset.Dataset{}, false, err
	}
	return up.Rows, true, nil
}

// Delete discards the session's upload.
func (s *UploadStore) Delete(sessionID string) {
	s.cache.Delete(uploadKey(sessionID))
}

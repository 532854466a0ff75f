package storage

import (
	"context"
	"io"
	"path"
)

// ContentTypeJSON is the content type of archived match sheets.
const ContentTypeJSON = "application/json"

// UploadResult describes a stored object.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores objects under a key and resolves their public address.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	GetPublicURL(key string) string
}

// MatchSheetKey is the object key of a locked match's archived sheet.
func MatchSheetKey(groupID, matchID string) string {
	return path.Join("matches", groupID, matchID+".json")
}

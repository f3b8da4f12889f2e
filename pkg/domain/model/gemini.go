package model

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// UploadFileInput carries a file destined for the Gemini Files API. Reader is
// consumed exactly once by the upload.
type UploadFileInput struct {
	UserID      types.UserID `json:"-"`
	DisplayName string       `json:"display_name"`
	MIMEType    string       `json:"mime_type"`
	Size        int64        `json:"size"`
	Reader      io.Reader    `json:"-"`
}

func (x *UploadFileInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.DisplayName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "display name is empty")
	}
	if x.MIMEType == "" {
		return goerr.Wrap(types.ErrValidationFailed, "MIME type is empty")
	}
	if x.Reader == nil {
		return goerr.Wrap(types.ErrValidationFailed, "file content is empty")
	}
	return nil
}

// UploadedFile is the stable projection of a Gemini Files API response.
type UploadedFile struct {
	Name      string `json:"name"`
	URI       string `json:"uri"`
	MIMEType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	State     string `json:"state,omitempty"`
}

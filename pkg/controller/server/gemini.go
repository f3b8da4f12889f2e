package server

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/safe"
)

// uploadGeminiFile accepts a multipart form with a "file" part and an
// optional "display_name" field. The file name is used when no display
// name is given.
func uploadGeminiFile(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			respondError(w, r, "fail to read uploaded file",
				goerr.Wrap(types.ErrValidationFailed, "file part is required",
					goerr.V("cause", err.Error())))
			return
		}
		defer safe.Close(file)

		displayName := r.FormValue("display_name")
		if displayName == "" {
			displayName = header.Filename
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		input := &model.UploadFileInput{
			UserID:      userIDFrom(r.Context()),
			DisplayName: displayName,
			MIMEType:    mimeType,
			Size:        header.Size,
			Reader:      file,
		}

		uploaded, err := uc.UploadGeminiFile(r.Context(), input)
		if err != nil {
			respondError(w, r, "fail to upload file", err)
			return
		}

		respondJSON(w, http.StatusCreated, uploaded)
	}
}

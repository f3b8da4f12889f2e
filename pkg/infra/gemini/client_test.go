package gemini_test

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/infra/gemini"
)

func TestNew(t *testing.T) {
	_, err := gemini.New("")
	gt.Error(t, err)

	client, err := gemini.New("test-key")
	gt.NoError(t, err)
	gt.V(t, client != nil).Equal(true)
}

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/upload/v1beta/files")
		gt.V(t, r.URL.Query().Get("key")).Equal("test-key")

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		gt.NoError(t, err)
		gt.V(t, mediaType).Equal("multipart/related")

		mr := multipart.NewReader(r.Body, params["boundary"])

		// First part is metadata JSON
		meta, err := mr.NextPart()
		gt.NoError(t, err)
		raw, err := io.ReadAll(meta)
		gt.NoError(t, err)
		gt.S(t, string(raw)).Contains("notes.pdf")

		// Second part is the file content
		file, err := mr.NextPart()
		gt.NoError(t, err)
		gt.V(t, file.Header.Get("Content-Type")).Equal("application/pdf")
		content, err := io.ReadAll(file)
		gt.NoError(t, err)
		gt.V(t, string(content)).Equal("fake pdf bytes")

		fmt.Fprint(w, `{
			"file": {
				"name": "files/abc-123",
				"uri": "https://generativelanguage.googleapis.com/v1beta/files/abc-123",
				"mimeType": "application/pdf",
				"sizeBytes": "14",
				"state": "ACTIVE"
			}
		}`)
	}))
	defer srv.Close()

	client, err := gemini.New("test-key", gemini.WithBaseURL(srv.URL))
	gt.NoError(t, err)

	uploaded, err := client.UploadFile(context.Background(), &model.UploadFileInput{
		UserID:      "user-1",
		DisplayName: "notes.pdf",
		MIMEType:    "application/pdf",
		Reader:      strings.NewReader("fake pdf bytes"),
	})
	gt.NoError(t, err)
	gt.V(t, uploaded.Name).Equal("files/abc-123")
	gt.V(t, uploaded.MIMEType).Equal("application/pdf")
	gt.V(t, uploaded.SizeBytes).Equal(int64(14))
	gt.V(t, uploaded.State).Equal("ACTIVE")
}

func TestUploadFileServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := gemini.New("test-key", gemini.WithBaseURL(srv.URL))
	gt.NoError(t, err)

	_, err = client.UploadFile(context.Background(), &model.UploadFileInput{
		UserID:      "user-1",
		DisplayName: "notes.pdf",
		MIMEType:    "application/pdf",
		Reader:      strings.NewReader("x"),
	})
	gt.Error(t, err)
}

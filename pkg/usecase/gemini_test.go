package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra"
	"github.com/secondbrain-app/secondbrain/pkg/usecase"
)

type stubGenAI struct {
	uploaded *model.UploadedFile
}

func (x *stubGenAI) UploadFile(ctx context.Context, input *model.UploadFileInput) (*model.UploadedFile, error) {
	return x.uploaded, nil
}

func TestUploadGeminiFile(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured is a validation failure", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.UploadGeminiFile(ctx, &model.UploadFileInput{
			UserID:      "alice",
			DisplayName: "doc.pdf",
			MIMEType:    "application/pdf",
			Reader:      strings.NewReader("x"),
		})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
	})

	t.Run("delegates to the configured client", func(t *testing.T) {
		stub := &stubGenAI{uploaded: &model.UploadedFile{Name: "files/xyz"}}
		uc := usecase.New(infra.New(infra.WithGenAI(stub)))

		uploaded, err := uc.UploadGeminiFile(ctx, &model.UploadFileInput{
			UserID:      "alice",
			DisplayName: "doc.pdf",
			MIMEType:    "application/pdf",
			Reader:      strings.NewReader("x"),
		})
		gt.NoError(t, err)
		gt.V(t, uploaded.Name).Equal("files/xyz")
	})

	t.Run("input validation runs before upload", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGenAI(&stubGenAI{})))

		_, err := uc.UploadGeminiFile(ctx, &model.UploadFileInput{UserID: "alice"})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
	})
}

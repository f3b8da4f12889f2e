package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
	"github.com/secondbrain-app/secondbrain/pkg/utils/safe"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client uploads files to the Gemini Files API via multipart media upload.
type Client struct {
	apiKey     types.GeminiAPIKey
	baseURL    string
	httpClient HTTPClient
}

var _ interfaces.GenAI = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(apiKey types.GeminiAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Gemini API key is empty")
	}

	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type fileMetadata struct {
	DisplayName string `json:"display_name"`
}

type uploadRequest struct {
	File fileMetadata `json:"file"`
}

type uploadResponse struct {
	File struct {
		Name      string `json:"name"`
		URI       string `json:"uri"`
		MIMEType  string `json:"mimeType"`
		SizeBytes string `json:"sizeBytes"`
		State     string `json:"state"`
	} `json:"file"`
}

func (x *Client) UploadFile(ctx context.Context, input *model.UploadFileInput) (*model.UploadedFile, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := mw.CreatePart(metaHeader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create metadata part")
	}
	if err := json.NewEncoder(metaPart).Encode(uploadRequest{
		File: fileMetadata{DisplayName: input.DisplayName},
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to encode file metadata")
	}

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Type", input.MIMEType)
	filePart, err := mw.CreatePart(fileHeader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create file part")
	}
	if _, err := io.Copy(filePart, input.Reader); err != nil {
		return nil, goerr.Wrap(err, "failed to copy file content")
	}
	if err := mw.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize multipart body")
	}

	url := fmt.Sprintf("%s/upload/v1beta/files?key=%s", x.baseURL, string(x.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+mw.Boundary())
	req.Header.Set("X-Goog-Upload-Protocol", "multipart")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload file to Gemini")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, goerr.New("Gemini file upload failed",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to decode Gemini upload response")
	}

	size, _ := strconv.ParseInt(parsed.File.SizeBytes, 10, 64)

	logging.From(ctx).Info("uploaded file to Gemini",
		slog.String("name", parsed.File.Name),
		slog.String("displayName", input.DisplayName),
		slog.Int64("sizeBytes", size),
	)

	return &model.UploadedFile{
		Name:      parsed.File.Name,
		URI:       parsed.File.URI,
		MIMEType:  parsed.File.MIMEType,
		SizeBytes: size,
		State:     parsed.File.State,
	}, nil
}

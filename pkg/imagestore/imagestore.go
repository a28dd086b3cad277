package imagestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader sends a profile image to the external image host and returns
// the stable HTTPS URL it is served from. Upload failures must never
// abort the operation that triggered them; callers log and move on.
type Uploader interface {
	Upload(ownerID string, filename string, data []byte) (string, error)
}

// Config holds the image host endpoint and credentials.
type Config struct {
	BaseURL string // e.g. "https://images.example.org/upload"
	APIKey  string
	Timeout time.Duration
}

type httpUploader struct {
	cfg    Config
	client *http.Client
}

func NewHTTPUploader(cfg Config) Uploader {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &httpUploader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (u *httpUploader) Upload(ownerID string, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("owner_id", ownerID); err != nil {
		return "", err
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, u.cfg.BaseURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+u.cfg.APIKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("image host returned %d: %s", resp.StatusCode, payload)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("image host returned empty url")
	}

	return parsed.URL, nil
}

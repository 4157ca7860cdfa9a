package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"shopora-be/internal/logger"

	"go.uber.org/zap"
)

const cloudinaryBaseURL = "https://api.cloudinary.com"

// Uploader stores an image and returns its hosted URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

type cloudinaryUploader struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	now        func() time.Time
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) Uploader {
	if cloudName == "" || apiKey == "" {
		logger.L().Warn("Cloudinary credentials are empty")
	}

	return &cloudinaryUploader{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now: time.Now,
	}
}

// signature is the hex SHA-1 over the sorted signed params plus the
// API secret, per Cloudinary's signed-upload scheme.
func (c *cloudinaryUploader) signature(timestamp string) string {
	h := sha1.Sum([]byte("timestamp=" + timestamp + c.apiSecret))
	return hex.EncodeToString(h[:])
}

func (c *cloudinaryUploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("uploader", "cloudinary"),
		zap.String("filename", filename),
	)

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := w.WriteField("api_key", c.apiKey); err != nil {
		return "", err
	}
	if err := w.WriteField("timestamp", timestamp); err != nil {
		return "", err
	}
	if err := w.WriteField("signature", c.signature(timestamp)); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", cloudinaryBaseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return "", err
	}
	req.Header.Add("Content-Type", w.FormDataContentType())

	log.Info("Uploading image to Cloudinary")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Cloudinary request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return "", fmt.Errorf("failed to read cloudinary response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Cloudinary returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return "", fmt.Errorf("cloudinary error: %s", string(bodyBytes))
	}

	var res struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Cloudinary response", zap.Error(err))
		return "", err
	}

	hosted := res.SecureURL
	if hosted == "" {
		hosted = res.URL
	}
	if hosted == "" {
		return "", fmt.Errorf("cloudinary response missing url")
	}

	log.Info("Image uploaded", zap.String("url", hosted))

	return hosted, nil
}

// HTTP client for the Cloudinary upload API.
//
// Environment:
//   - CLOUDINARY_CLOUD_NAME
//   - CLOUDINARY_API_KEY
//   - CLOUDINARY_API_SECRET
//   - CLOUDINARY_BASE_URL (default: https://api.cloudinary.com/v1_1)

package client

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vidstream/backend/internal/config"
)

// publicIDPattern extracts the public id from a delivery URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v123/abc.jpg -> abc
var publicIDPattern = regexp.MustCompile(`/v[\w\d]+/([^/]+?)\.(jpg|jpeg|png|gif|bmp|tiff|webp|svg|mp4|mov|mkv|avi|flv|wmv|mp3|wav|ogg|webm|pdf|txt|csv|json)(\?.*)?$`)

type MediaClient struct {
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// UploadResult is the subset of the upload response this backend uses.
type UploadResult struct {
	PublicID string  `json:"public_id"`
	URL      string  `json:"secure_url"`
	Duration float64 `json:"duration"`
}

func NewMediaClient(cfg config.MediaConfig) (*MediaClient, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("missing CLOUDINARY_CLOUD_NAME/CLOUDINARY_API_KEY/CLOUDINARY_API_SECRET")
	}
	return &MediaClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// Upload sends a signed multipart upload. resourceType is "image",
// "video" or "auto".
func (c *MediaClient) Upload(ctx context.Context, file io.Reader, filename, resourceType string) (*UploadResult, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{"timestamp": timestamp}

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"signature": c.sign(params),
	}
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/%s/upload", c.baseURL, c.cloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("media upload failed: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("media upload failed: empty url in response")
	}
	return &result, nil
}

// Destroy deletes an uploaded asset by public id.
func (c *MediaClient) Destroy(ctx context.Context, publicID, resourceType string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"public_id": publicID,
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"signature": c.sign(params),
	}
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/%s/destroy", c.baseURL, c.cloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("media destroy failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("media destroy failed: status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}

// sign produces the API signature: sha1 of the sorted query string plus
// the API secret.
func (c *MediaClient) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

// PublicIDFromURL recovers the public id from a stored delivery URL.
func PublicIDFromURL(url string) string {
	match := publicIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

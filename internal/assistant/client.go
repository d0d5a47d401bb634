package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const apiPrefix = "/api/assistant"

type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	cfg ClientConfig
}

func New(cfg ClientConfig) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	cfg.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	return &Client{cfg: cfg}
}

var _ API = (*Client)(nil)

func (c *Client) GetConfig(ctx context.Context) (Config, error) {
	var out Config
	if err := c.doJSON(ctx, http.MethodGet, "/config", nil, &out); err != nil {
		return Config{}, fmt.Errorf("get config: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateConfig(ctx context.Context, upd ConfigUpdate) error {
	body, err := json.Marshal(upd)
	if err != nil {
		return fmt.Errorf("marshal config update: %w", err)
	}
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/config", body, &out); err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("update config: rejected by assistant")
	}
	return nil
}

func (c *Client) Chat(ctx context.Context, message, sessionID string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"message":    message,
		"session_id": sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat turn: %w", err)
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/chat", body, &out); err != nil {
		return "", fmt.Errorf("chat turn: %w", err)
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", fmt.Errorf("chat turn: empty response")
	}
	return out.Response, nil
}

func (c *Client) UploadDocument(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/document/upload"), &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &out); err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}
	return out.Message, nil
}

func (c *Client) ClearDocuments(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/document/clear", nil, &out); err != nil {
		return "", fmt.Errorf("clear documents: %w", err)
	}
	return out.Message, nil
}

func (c *Client) endpoint(path string) string {
	return c.cfg.BaseURL + apiPrefix + path
}

func (c *Client) doJSON(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("assistant status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

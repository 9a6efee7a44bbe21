package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client talks to the hosted media service. The image endpoint accepts
// pictures only; the raw endpoint takes arbitrary files (floor plans,
// brochures). Both return a hosted secure URL.
type Client struct {
	http     *resty.Client
	imageURL string
	rawURL   string
	preset   string
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// File is one pending upload.
type File struct {
	Name   string
	Reader io.Reader
}

func NewClient() *Client {
	return &Client{
		http:     resty.New().SetTimeout(60 * time.Second),
		imageURL: os.Getenv("MEDIA_UPLOAD_URL"),
		rawURL:   os.Getenv("MEDIA_RAW_UPLOAD_URL"),
		preset:   os.Getenv("MEDIA_UPLOAD_PRESET"),
	}
}

func (c *Client) UploadImage(ctx context.Context, f File) (string, error) {
	return c.upload(ctx, c.imageURL, f)
}

func (c *Client) UploadRaw(ctx context.Context, f File) (string, error) {
	return c.upload(ctx, c.rawURL, f)
}

func (c *Client) upload(ctx context.Context, endpoint string, f File) (string, error) {
	var result uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", f.Name, f.Reader).
		SetFormData(map[string]string{
			"upload_preset": c.preset,
			"public_id":     uuid.NewString(),
		}).
		SetResult(&result).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", f.Name, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("upload %s: media service returned %s", f.Name, resp.Status())
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload %s: media service returned no URL", f.Name)
	}
	return result.SecureURL, nil
}

// UploadAll pushes every file concurrently and waits for the whole batch.
// URLs come back in input order. Any single failure fails the batch; there
// is no partial result.
func (c *Client) UploadAll(ctx context.Context, files []File, raw bool) ([]string, error) {
	urls := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f File) {
			defer wg.Done()
			if raw {
				urls[i], errs[i] = c.UploadRaw(ctx, f)
			} else {
				urls[i], errs[i] = c.UploadImage(ctx, f)
			}
		}(i, f)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return urls, nil
}

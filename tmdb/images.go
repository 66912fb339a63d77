package tmdb

import (
	"context"
	"strings"
)

// ImageURL composes the address of an image from a size ("w500",
// "original") and the file path returned in API payloads. The secure base is
// used when TLS is enabled.
func (c *Client) ImageURL(size, filePath string) string {
	base := c.cfg.Methods.ImageBaseURL
	if c.cfg.UseTLS {
		base = c.cfg.Methods.SecureImageBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + size + "/" + strings.TrimPrefix(filePath, "/")
}

// DownloadImage saves an image to fileName and returns the absolute path
// of the written file.
func (c *Client) DownloadImage(ctx context.Context, size, filePath, fileName string) Result[string] {
	return c.DownloadURL(ctx, c.ImageURL(size, filePath), fileName)
}

// GetImageBytes reads an image into memory.
func (c *Client) GetImageBytes(ctx context.Context, size, filePath string) Result[[]byte] {
	return c.ReadURL(ctx, c.ImageURL(size, filePath))
}

// DownloadURL saves the body at an already composed image address to fileName.
func (c *Client) DownloadURL(ctx context.Context, url, fileName string) Result[string] {
	res := c.transport.Download(ctx, url, fileName, c.options())
	if res.Err != nil {
		return Result[string]{SourceURL: res.SourceURL, Err: res.Err}
	}
	return Result[string]{SourceURL: res.SourceURL, Value: res.FilePath}
}

// ReadURL reads the body at an already composed image address into memory.
func (c *Client) ReadURL(ctx context.Context, url string) Result[[]byte] {
	res := c.transport.Read(ctx, url, c.options())
	if res.Err != nil {
		return Result[[]byte]{SourceURL: res.SourceURL, Err: res.Err}
	}
	return Result[[]byte]{SourceURL: res.SourceURL, Value: res.Bytes}
}

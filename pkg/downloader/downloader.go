// Package downloader fetches remote HWSD source granules so they can be
// converted locally. HTTP(S) and S3 hrefs are supported.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	xlog "github.com/stactools-packages/hwsd/internal/log"
)

// ProgressFunc receives the running byte count of a transfer. total is
// -1 when the size is unknown.
type ProgressFunc func(downloaded, total int64)

// IsRemote reports whether the href needs to be downloaded before local
// tools can read it.
func IsRemote(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "s3":
		return true
	default:
		return false
	}
}

// Download fetches the granule at href into destPath.
func Download(ctx context.Context, href, destPath string) error {
	return DownloadWithProgress(ctx, href, destPath, nil)
}

// DownloadWithProgress fetches the granule at href into destPath,
// reporting transfer progress. A partial file is removed on error.
func DownloadWithProgress(ctx context.Context, href, destPath string, progress ProgressFunc) error {
	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("parse source href: %w", err)
	}

	logger := xlog.WithComponent("downloader")
	logger.Info().Str("href", href).Str("dest", destPath).Msg("fetching source granule")

	switch u.Scheme {
	case "http", "https":
		return downloadHTTP(ctx, href, destPath, progress)
	case "s3":
		return downloadS3(ctx, u, destPath, progress)
	default:
		return fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

func downloadHTTP(ctx context.Context, href, destPath string, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", href, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", href, resp.StatusCode)
	}

	return writeBody(ctx, destPath, resp.Body, resp.ContentLength, progress)
}

func downloadS3(ctx context.Context, u *url.URL, destPath string, progress ProgressFunc) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")

	result, err := s3.NewFromConfig(cfg).GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("fetch s3://%s/%s: %w", bucket, key, err)
	}
	defer result.Body.Close()

	total := int64(-1)
	if result.ContentLength != nil {
		total = *result.ContentLength
	}
	return writeBody(ctx, destPath, result.Body, total, progress)
}

func writeBody(ctx context.Context, destPath string, body io.Reader, total int64, progress ProgressFunc) (err error) {
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer func() {
		out.Close()
		if err != nil {
			_ = os.Remove(destPath)
		}
	}()

	if progress != nil {
		progress(0, total)
	}

	if _, err = copyWithProgress(ctx, out, body, total, progress); err != nil {
		return fmt.Errorf("write destination file: %w", err)
	}
	return nil
}

func copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total int64, progress ProgressFunc) (int64, error) {
	buf := make([]byte, 32*1024)
	var written int64

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			w, writeErr := dst.Write(buf[:n])
			if writeErr != nil {
				return written, writeErr
			}
			if w != n {
				return written, io.ErrShortWrite
			}
			written += int64(w)
			if progress != nil {
				progress(written, total)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return written, nil
			}
			return written, readErr
		}
	}
}

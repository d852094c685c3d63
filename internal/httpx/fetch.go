package httpx

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FetchText GETs url and returns the body as clean UTF-8 text. It asks for
// brotli alongside gzip; setting Accept-Encoding by hand switches off the
// transport's automatic gzip handling, so both encodings are decoded here.
// The result then has BOMs stripped and UTF-16 decoded, which Sheets and
// Excel exports produce depending on the download path.
func FetchText(ctx context.Context, client *http.Client, url string, cfg RetryConfig) (string, error) {
	resp, body, err := Do(ctx, client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.8")
		req.Header.Set("Accept-Encoding", "br, gzip")
		return req, nil
	}, cfg)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		if err != nil {
			return "", err
		}
		body = decoded
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		decoded, err := io.ReadAll(zr)
		if err != nil {
			return "", err
		}
		body = decoded
	}

	return normalizeCharset(body)
}

// normalizeCharset converts UTF-16 (with BOM) payloads to UTF-8 and strips
// a leading UTF-8 BOM.
func normalizeCharset(body []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	utf8Bytes, _, err := transform.Bytes(decoder, body)
	if err != nil {
		return "", err
	}
	return string(utf8Bytes), nil
}

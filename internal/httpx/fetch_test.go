package httpx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func TestFetchTextPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("a,b,c\n1,2,3\n"))
	}))
	defer srv.Close()

	got, err := FetchText(context.Background(), srv.Client(), srv.URL, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("FetchText returned error: %v", err)
	}
	if got != "a,b,c\n1,2,3\n" {
		t.Errorf("Unexpected body: %q", got)
	}
}

func TestFetchTextBrotli(t *testing.T) {
	var compressed bytes.Buffer
	bw := brotli.NewWriter(&compressed)
	bw.Write([]byte("a,b\n1,2\n"))
	bw.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		w.Write(compressed.Bytes())
	}))
	defer srv.Close()

	got, err := FetchText(context.Background(), srv.Client(), srv.URL, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("FetchText returned error: %v", err)
	}
	if got != "a,b\n1,2\n" {
		t.Errorf("Unexpected decoded body: %q", got)
	}
}

func TestFetchTextStripsBOM(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\xef\xbb\xbfa,b\n"))
	}))
	defer srv.Close()

	got, err := FetchText(context.Background(), srv.Client(), srv.URL, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("FetchText returned error: %v", err)
	}
	if got != "a,b\n" {
		t.Errorf("Expected BOM stripped, got %q", got)
	}
}

func TestFetchTextDecodesUTF16(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	utf16Body, _, err := transform.Bytes(encoder, []byte("a,b\n1,2\n"))
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(utf16Body)
	}))
	defer srv.Close()

	got, err := FetchText(context.Background(), srv.Client(), srv.URL, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("FetchText returned error: %v", err)
	}
	if got != "a,b\n1,2\n" {
		t.Errorf("Expected UTF-16 body decoded to UTF-8, got %q", got)
	}
}

func TestFetchTextHTTPErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := FetchText(context.Background(), srv.Client(), srv.URL, DefaultRetryConfig())
	if err == nil {
		t.Fatal("Expected error for 403 response")
	}
}

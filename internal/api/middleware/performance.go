package middleware

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"sync"
)

// passThrough reports whether the response must not be buffered or
// compressed: audio is already compressed and event streams never end.
func passThrough(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/voice/") || strings.HasPrefix(r.URL.Path, "/api/stream/")
}

const (
	cacheReference = "public, max-age=3600, must-revalidate"
	cacheCatalog   = "public, max-age=1800, must-revalidate"
	cachePrivate   = "private, no-cache, must-revalidate"
)

// cachePolicy maps a request to its Cache-Control value. Writes are never
// stored and anything user-scoped stays private.
func cachePolicy(r *http.Request) string {
	path := r.URL.Path
	switch {
	case r.Method != http.MethodGet && r.Method != http.MethodHead:
		return "no-store"
	case strings.HasPrefix(path, "/api/health/emergency-contacts/"), path == "/api/voice/supported-languages":
		return cacheReference
	case path == "/api/health/health-tips", path == "/api/health/symptoms/common":
		return cacheCatalog
	default:
		return cachePrivate
	}
}

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		gz, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		return gz
	},
}

// bufferedResponse holds the handler output until headers can be decided.
type bufferedResponse struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func bodyETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:12]) + `"`
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// ResponseOptimization sets Cache-Control, answers conditional GETs with
// 304 and gzips bodies for clients that accept it. Streams and audio are
// passed through untouched.
func ResponseOptimization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cachePolicy(r))
		if passThrough(r) {
			next.ServeHTTP(w, r)
			return
		}

		buf := &bufferedResponse{ResponseWriter: w}
		next.ServeHTTP(buf, r)
		if buf.status == 0 {
			buf.status = http.StatusOK
		}
		body := buf.body.Bytes()

		if buf.status == http.StatusOK && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
			etag := bodyETag(body)
			w.Header().Set("ETag", etag)
			if r.Header.Get("If-None-Match") == etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}

		if !acceptsGzip(r) || len(body) == 0 {
			w.WriteHeader(buf.status)
			_, _ = w.Write(body)
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
		w.WriteHeader(buf.status)

		gz := gzipWriterPool.Get().(*gzip.Writer)
		defer gzipWriterPool.Put(gz)
		gz.Reset(w)
		_, _ = gz.Write(body)
		_ = gz.Close()
	})
}

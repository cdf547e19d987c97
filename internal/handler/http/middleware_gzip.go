package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled: avatar and cover uploads make the request
// path allocation-heavy enough without a fresh flate state per request.
var (
	gzipWriters = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaders = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip-encoded request bodies and, when
// the client advertises gzip in Accept-Encoding, compresses the response.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(req.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			// The header is stripped so downstream code sees a plain body.
			req.Body = &pooledBody{
				Reader: zr,
				release: func() {
					zr.Close()
					gzipReaders.Put(zr)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&compressedResponseWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// pooledBody is a request body whose underlying gzip.Reader goes back to the
// pool on Close.
type pooledBody struct {
	io.Reader
	release func()
}

func (b *pooledBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

type compressedResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *compressedResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}

func (w *compressedResponseWriter) Close() error {
	return w.zw.Close()
}

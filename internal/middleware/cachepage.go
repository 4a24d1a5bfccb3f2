package middleware

import (
	"bytes"
	"net/http"
	"time"

	"scribe/internal/cache"

	"github.com/gin-gonic/gin"
)

// bodyCaptureWriter tees everything written to the client into a buffer.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage replays the whole rendered response stored under key for the TTL
// window, byte for byte, even if the underlying data changed in between.
// Writes never invalidate the entry; it leaves by expiry or an explicit Clear.
func CachePage(pages *cache.Cache, key string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if body, ok := pages.Get(key); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			pages.Set(key, w.buf.Bytes(), ttl)
		}
	}
}

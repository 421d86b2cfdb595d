// Package middleware holds the HTTP middleware of the directory server.
// Directory reads are highly cacheable: listings change only when an admin
// creates a record, so a short-TTL Redis cache in front of the GET routes
// absorbs most of the map UI's polling.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/atxserves/community-directory/internal/config"
)

// captureWriter tees the response body into a buffer, up to a byte limit,
// while forwarding everything to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if remain := cw.limit - cw.size; remain > 0 {
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// cacheKey hashes the concrete request path plus raw query under the
// configured prefix. The concrete path, not the route template, so that
// different param values on one route get distinct entries.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	tail := c.Request().URL.Path + "?" + c.Request().URL.RawQuery
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodeEntry packs [4 bytes status][4 bytes content-type length]
// [content-type][body], enough to replay the response as the handler
// produced it.
func encodeEntry(status int, contentType string, body []byte) []byte {
	ct := []byte(contentType)
	out := make([]byte, 8+len(ct)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(ct)))
	copy(out[8:], ct)
	copy(out[8+len(ct):], body)
	return out
}

func decodeEntry(bs []byte) (status int, contentType string, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, "", nil, false
	}
	ctLen := int(binary.BigEndian.Uint32(bs[4:8]))
	if len(bs) < 8+ctLen {
		return 0, "", nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	return status, string(bs[8 : 8+ctLen]), bs[8+ctLen:], true
}

// NewResponseCache returns an Echo middleware serving successful responses
// from Redis for cfg.TTL. With caching disabled or rdb nil it passes every
// request straight through. Only 200 responses within the body size limit
// are stored.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, contentType, body, ok := decodeEntry(bs); ok {
					if contentType != "" {
						c.Response().Header().Set(echo.HeaderContentType, contentType)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					_, _ = c.Response().Write(body)
					return nil
				}
			}

			cw := &captureWriter{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          int64(cfg.MaxBodyBytes),
			}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && cw.size <= cw.limit {
				contentType := c.Response().Header().Get(echo.HeaderContentType)
				// Detached context: the request may already be done.
				_ = rdb.SetEx(context.Background(), key, encodeEntry(cw.status, contentType, cw.buf.Bytes()), cfg.TTL).Err()
			}
			return nil
		}
	}
}

package server

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrfansi/xendit-go/internal/logger"
)

// requireAuth checks HTTP Basic credentials: the secret key as username and
// an empty password. An unset SecretKey accepts any key.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, _, ok := c.Request.BasicAuth()
		if !ok || key == "" {
			abortWithError(c, http.StatusUnauthorized, ErrCodeInvalidKey, "API key is required")
			return
		}
		if s.config.SecretKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(s.config.SecretKey)) != 1 {
			s.log.Warn("rejected api key", zap.String("key", logger.MaskAPIKey(key)))
			abortWithError(c, http.StatusUnauthorized, ErrCodeInvalidKey, "API key is invalid")
			return
		}
		c.Next()
	}
}

// requestLogger logs each request at a level chosen by its status and
// counts it on the sandbox registry
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			s.log.Error("request", fields...)
		case status >= 400:
			s.log.Warn("request", fields...)
		default:
			s.log.Info("request", fields...)
		}
	}
}

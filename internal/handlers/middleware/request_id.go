package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/docdesk/internal/domain/ports"
)

const (
	// RequestIDHeader é o header de correlação de requisições
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey guarda o ID da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
	// LoggerContextKey guarda o logger da requisição no contexto do Gin
	LoggerContextKey = "logger"
)

// RequestLogger atribui um ID a cada requisição e registra o acesso
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		reqLogger := logger.With("request_id", requestID)
		c.Set(RequestIDContextKey, requestID)
		c.Set(LoggerContextKey, reqLogger)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		reqLogger.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Logger retorna o logger da requisição, ou fallback se não houver
func Logger(c *gin.Context, fallback ports.Logger) ports.Logger {
	if l, ok := c.Get(LoggerContextKey); ok {
		if logger, ok := l.(ports.Logger); ok {
			return logger
		}
	}
	return fallback
}

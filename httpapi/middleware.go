package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const requestIdHeader = "X-Request-Id"

// RequestIdMiddleware keeps an incoming X-Request-Id or assigns a new one and
// echoes it back on the response.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(requestIdHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		c.Set("requestId", requestId)
		c.Header(requestIdHeader, requestId)
		c.Next()
	}
}

// ---------------------------

func ZerologLogger(metrics *httpMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ---------------------------
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		// ---------------------------
		// Process request
		c.Next()
		// ---------------------------
		// Stop timer and gather information
		timeStamp := time.Now()
		latency := timeStamp.Sub(start)

		method := c.Request.Method
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()
		bodySize := c.Writer.Size()

		if raw != "" {
			path = path + "?" + raw
		}
		// ---------------------------
		log.Info().Time("timeStamp", timeStamp).
			Dur("latency", latency).
			Str("clientIP", c.ClientIP()).
			Str("method", method).
			Str("path", path).
			Int("statusCode", statusCode).
			Str("errorMessage", errorMessage).
			Int("bodySize", bodySize).
			Str("requestId", c.GetString("requestId")).
			Msg("HTTPAPI")
		// ---------------------------
		if metrics != nil {
			// Unmatched routes share one label
			hname := c.FullPath()
			if hname == "" {
				hname = "unknown"
			}
			ssCode := strconv.Itoa(statusCode)
			reqSize := c.Request.ContentLength
			if reqSize < 0 {
				reqSize = 0
			}
			metrics.requestCount.WithLabelValues(ssCode, method, hname).Inc()
			metrics.requestDuration.WithLabelValues(ssCode, method, hname).Observe(latency.Seconds())
			metrics.requestSize.WithLabelValues(ssCode, method, hname).Observe(float64(reqSize))
			metrics.responseSize.WithLabelValues(ssCode, method, hname).Observe(float64(bodySize))
		}
	}
}

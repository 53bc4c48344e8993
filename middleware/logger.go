package middleware

import (
	"encoding/json"
	"os"
	"time"

	"tonotes/utils"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware writes one JSON line per request. Bodies and credentials
// are never logged.
func LoggerMiddleware() gin.HandlerFunc {
	hostname, _ := os.Hostname()
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		browser, osName, device := utils.ParseUserAgent(param.Request.UserAgent())
		requestID, _ := param.Keys[ContextRequestID].(string)
		userID, _ := param.Keys[ContextUserID].(string)

		level := "info"
		if param.StatusCode >= 500 {
			level = "error"
		}

		entry := struct {
			Timestamp string  `json:"ts"`
			Level     string  `json:"level"`
			Hostname  string  `json:"host"`
			RequestID string  `json:"request_id,omitempty"`
			UserID    string  `json:"user_id,omitempty"`
			ClientIP  string  `json:"ip"`
			Method    string  `json:"method"`
			Path      string  `json:"path"`
			Status    int     `json:"status"`
			LatencyMs float64 `json:"latency_ms"`
			Browser   string  `json:"browser"`
			OS        string  `json:"os"`
			Device    string  `json:"device"`
			BodySize  int     `json:"size"`
			Error     string  `json:"error,omitempty"`
		}{
			Timestamp: param.TimeStamp.UTC().Format(time.RFC3339Nano),
			Level:     level,
			Hostname:  hostname,
			RequestID: requestID,
			UserID:    userID,
			ClientIP:  param.ClientIP,
			Method:    param.Method,
			Path:      param.Path,
			Status:    param.StatusCode,
			LatencyMs: float64(param.Latency) / float64(time.Millisecond),
			Browser:   browser,
			OS:        osName,
			Device:    device,
			BodySize:  param.BodySize,
			Error:     param.ErrorMessage,
		}
		b, _ := json.Marshal(entry)
		return string(b) + "\n"
	})
}

// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const redactedValue = "REDACTED"

// sensitiveQueryParams never reach the access log in clear text.
var sensitiveQueryParams = []string{accessTokenQueryParam}

// RequestLogger returns gin's access logger with credentials in the query
// string redacted.
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatAccessLog,
	})
}

func formatAccessLog(param gin.LogFormatterParams) string {
	latency := param.Latency
	if latency > time.Minute {
		latency = latency.Truncate(time.Second)
	}
	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		param.StatusCode,
		latency,
		param.ClientIP,
		param.Method,
		redactPath(param.Path),
		param.ErrorMessage,
	)
}

// redactPath replaces the values of sensitive query parameters in a logged
// request path.
func redactPath(path string) string {
	base, rawQuery, found := strings.Cut(path, "?")
	if !found {
		return path
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		// An unparseable query could still hide a token.
		return base + "?" + redactedValue
	}

	changed := false
	for _, name := range sensitiveQueryParams {
		if _, ok := query[name]; ok {
			query.Set(name, redactedValue)
			changed = true
		}
	}
	if !changed {
		return path
	}
	return base + "?" + query.Encode()
}

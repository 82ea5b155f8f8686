package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"parkwash/internal/pkg/response"
)

// requestLine is one structured log record for a finished request.
type requestLine struct {
	event      string
	status     int
	method     string
	route      string
	requestID  string
	employeeID int64
	role       string
	latency    time.Duration
}

func newRequestLine(c *gin.Context, event string, start time.Time) requestLine {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return requestLine{
		event:      event,
		status:     c.Writer.Status(),
		method:     c.Request.Method,
		route:      route,
		requestID:  c.GetString(ContextRequestID),
		employeeID: c.GetInt64(ContextEmployeeID),
		role:       c.GetString(ContextRole),
		latency:    time.Since(start),
	}
}

func (l requestLine) print(extra string) {
	msg := fmt.Sprintf("%s request_id=%s status=%d method=%s route=%s employee_id=%d role=%s latency=%s",
		l.event, l.requestID, l.status, l.method, l.route, l.employeeID, l.role, l.latency)
	if extra != "" {
		msg += " " + extra
	}
	log.Print(msg)
}

// ErrorLogger recovers panics into the 500 envelope and logs failed
// requests. Successful writes are logged as operator actions so a drawer
// discrepancy can be traced back to the requests that touched it.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				c.Abort()
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				newRequestLine(c, "request_panic", start).
					print(fmt.Sprintf("error=%q stack=%q", fmt.Sprint(recovered), debug.Stack()))
				return
			}

			line := newRequestLine(c, "request_error", start)
			switch {
			case len(c.Errors) > 0:
				for _, e := range c.Errors {
					line.print(fmt.Sprintf("error=%q", e.Error()))
				}
			case line.status >= http.StatusInternalServerError:
				line.print("")
			case isWrite(line.method) && line.status < http.StatusBadRequest:
				line.event = "operator_action"
				line.print("")
			}
		}()

		c.Next()
	}
}

func isWrite(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

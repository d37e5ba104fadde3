package handler // handler defines the HTTP handlers behind the REST surface

import (
	"errors"  // sentinel for getUserID failures
	"strconv" // id parsing
	"time"    // request date parsing

	"github.com/labstack/echo/v4"
)

// dateLayouts are the accepted formats for date fields in request
// bodies.  The dashboard UI sends bare dates; API clients tend to
// send full RFC 3339 timestamps.  Both are fine.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses a request date in any accepted layout.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// pathID parses a numeric id from a path parameter.  A malformed id
// parses to 0, which no record ever carries, so the lookup falls
// through to the same not-found answer as an unknown id.
func pathID(c echo.Context, name string) uint64 {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return id
}

// queryID parses an optional numeric id from a query parameter.  An
// absent parameter yields (nil, true); a present but non-numeric one
// yields (nil, false) so the handler can reject the request instead
// of silently dropping the filter.
func queryID(c echo.Context, name string) (*uint64, bool) {
	s := c.QueryParam(name)
	if s == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// getUserID extracts the authenticated user's id from the context,
// where JWTAuth stored it.  JWT numeric claims decode as float64, so
// several representations are handled.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

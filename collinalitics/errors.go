package collinalitics

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrorResponse reports an error caused by a non-2xx API response.
//
// The message is taken from the response body where possible: Django
// REST Framework wraps errors as {"detail": "..."}, so that field is
// preferred, falling back to the raw body text. Body read or parse
// failures are swallowed; the status line alone is still reported.
type ErrorResponse struct {
	Response *http.Response // HTTP response that caused this error
	Message  string         // error message, best effort
}

func (r *ErrorResponse) Error() string {
	if r.Message != "" {
		return fmt.Sprintf("%v %v; %d %v",
			r.Response.Request.Method, sanitizeURL(r.Response.Request.URL),
			r.Response.StatusCode, r.Message)
	}
	return fmt.Sprintf("%v %v; %d",
		r.Response.Request.Method, sanitizeURL(r.Response.Request.URL),
		r.Response.StatusCode)
}

// NotFoundError reports that every slug lookup strategy was exhausted
// without finding a matching item. It is distinct from ErrorResponse so
// callers can render a 404-style view rather than a generic failure.
type NotFoundError struct {
	Resource string // singular resource name, e.g. "project"
	Slug     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Slug)
}

// sanitizeURL redacts the userinfo portion of a URL, if present.
func sanitizeURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	if u.User != nil {
		redacted := *u
		redacted.User = url.UserPassword("REDACTED", "REDACTED")
		return &redacted
	}
	return u
}

// CheckResponse checks the API response for errors, and returns them if
// present. A response is considered an error if it has a status code
// outside the 200 range. API error bodies usually carry a "detail"
// field; anything else is reported verbatim.
func CheckResponse(r *http.Response) error {
	if c := r.StatusCode; 200 <= c && c <= 299 {
		return nil
	}

	errorResponse := &ErrorResponse{Response: r}

	data, err := io.ReadAll(r.Body)
	if err == nil && len(data) > 0 {
		var body struct {
			Detail  string `json:"detail"`
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(data, &body); jsonErr == nil && (body.Detail != "" || body.Message != "") {
			errorResponse.Message = body.Detail
			if errorResponse.Message == "" {
				errorResponse.Message = body.Message
			}
		} else {
			errorResponse.Message = strings.TrimSpace(string(data))
		}
	}

	return errorResponse
}

// isRouteMiss reports whether err indicates the detail-by-slug route is
// unsupported (404 or 405) rather than a real backend fault. Only these
// two statuses allow the slug resolver to fall through to its next
// strategy; everything else is terminal.
func isRouteMiss(err error) bool {
	var errResp *ErrorResponse
	if !errors.As(err, &errResp) {
		return false
	}
	code := errResp.Response.StatusCode
	return code == http.StatusNotFound || code == http.StatusMethodNotAllowed
}

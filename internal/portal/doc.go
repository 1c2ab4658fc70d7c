// Package portal implements the HTTP client for the school attendance
// service.
//
// All requests share a 5 second timeout; callers decide how a failure
// degrades (the session controller treats allow-list failures as
// unauthorized, the pollers keep the previous snapshot and retry).
// Non-2xx responses map to *HTTPError, transport failures to wrapped
// errors from net/http.
package portal

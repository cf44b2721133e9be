// Package models contains data types and constants for the helpline service API.
package models

// DefaultBaseURL is the API root used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000/api"

// Endpoint paths, relative to the configured base URL.
const (
	PathChat         = "/chat"
	PathResources    = "/resources"
	PathConversation = "/conversations/%s"
	PathAnalysis     = "/conversations/%s/analysis"
)

// HeaderRequestID carries a per-request identifier for server-side correlation.
const HeaderRequestID = "X-Request-ID"

// DefaultHeaders returns the headers sent with every request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"User-Agent":   "helpline-cli",
	}
}

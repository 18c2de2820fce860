package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func requiredQuery(r *http.Request, key string) (value string, errMsg string) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", key + " query is required"
	}
	return raw, ""
}

func optionalQuery(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// parseTripID accepts only canonical UUIDs and returns them lower-cased.
func parseTripID(r *http.Request) (string, string) {
	raw := strings.TrimSpace(r.PathValue("id"))
	if raw == "" {
		return "", "trip id is required"
	}

	id, err := uuid.Parse(raw)
	if err != nil || len(raw) != 36 {
		return "", "trip id must be a UUID"
	}
	return id.String(), ""
}

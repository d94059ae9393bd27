package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes to the
// connection string unless the caller already set it. Both URL-style
// (postgres://...) and key/value DSN strings are handled.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		query := parsed.Query()
		if query.Get("disable_prepared_binary_result") != "" {
			return raw
		}
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.Contains(trimmed, "=") {
		return raw
	}
	if strings.Contains(trimmed, "disable_prepared_binary_result=") {
		return raw
	}
	return trimmed + " disable_prepared_binary_result=yes"
}

// dbNameFromURL extracts the database name for log fields. It returns
// an empty string when the connection string has no recognizable name.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

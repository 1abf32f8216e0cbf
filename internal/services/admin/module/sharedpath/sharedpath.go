// Package sharedpath splits admin route suffixes into path segments.
package sharedpath

import (
	"fmt"
	"net/url"
	"strings"
)

// SplitEscapedPathParts splits an escaped route suffix into unescaped,
// non-empty segments. An escaped slash stays inside its segment.
func SplitEscapedPathParts(path string) ([]string, error) {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		decoded, err := url.PathUnescape(part)
		if err != nil {
			return nil, fmt.Errorf("unescape path segment %q: %w", part, err)
		}
		decoded = strings.TrimSpace(decoded)
		if decoded == "" {
			continue
		}
		parts = append(parts, decoded)
	}
	return parts, nil
}

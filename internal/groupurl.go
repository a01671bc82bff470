package internal

import (
	"net/url"
	"strings"
)

// ParseGroupURL extracts the full group path from a target URL, relative to
// the instance base URL. It returns an empty string when the target does not
// reference a group, e.g. when it is the bare instance root.
//
// A leading "groups" path segment is not part of the group path and is
// stripped. GitLab separates resource suffixes from the group path with a
// "-" segment; anything from that marker on is ignored.
func ParseGroupURL(target *url.URL, base *url.URL) string {
	path := strings.TrimPrefix(target.Path, strings.TrimSuffix(base.Path, "/"))

	segments := []string{}
	for _, segment := range strings.Split(path, "/") {
		if segment == "-" {
			break
		}
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) > 0 && segments[0] == "groups" {
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return ""
	}

	return strings.Join(segments, "/")
}

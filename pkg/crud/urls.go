package crud

import "strings"

var actionSuffixes = []string{"create", "edit", "delete"}

// ListURL derives the list view URL a mutation redirects back to. The
// configured BasePath wins; otherwise known action suffixes and a trailing
// record id are trimmed off the request path.
func ListURL(res Resource, requestPath string) string {
	if base := strings.TrimSpace(res.BasePath); base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		return base
	}
	return trimActionPath(requestPath)
}

func trimActionPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}

	for _, action := range actionSuffixes {
		marker := "/" + action
		if idx := strings.Index(path, marker+"/"); idx >= 0 {
			path = path[:idx]
			break
		}
		if strings.HasSuffix(path, marker) {
			path = path[:len(path)-len(marker)]
			break
		}
	}

	path = strings.TrimRight(path, "/")
	if segments := strings.Split(path, "/"); len(segments) > 0 {
		if last := segments[len(segments)-1]; isDigits(last) {
			path = strings.Join(segments[:len(segments)-1], "/")
		}
	}

	if path == "" {
		return "/"
	}
	return path + "/"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

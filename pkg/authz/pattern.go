package authz

import "strings"

// Match reports whether an ant-style pattern matches path. A trailing "/**"
// matches the prefix itself and everything below it, "*" matches exactly one
// path segment, anything else must match literally.
func Match(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == base || strings.HasPrefix(path, base+"/")
	}

	if !strings.Contains(pattern, "*") {
		return pattern == path
	}

	patternSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if seg == "*" {
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

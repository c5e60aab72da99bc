package cache

import (
	"net/url"
	"strings"
)

const keySeparator = "::"

// Key identifies a query, e.g. Key{"blogs"} or Key{"blog", "42"}.
type Key []string

func (k Key) String() string {
	escaped := make([]string, 0, len(k))
	for _, part := range k {
		escaped = append(escaped, url.QueryEscape(part))
	}
	return strings.Join(escaped, keySeparator)
}

// HasPrefix compares element-wise, so Key{"blogs"} is not a prefix of Key{"blog", "1"}.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func parseKey(s string) Key {
	var k Key
	for _, part := range strings.Split(s, keySeparator) {
		if unescaped, err := url.QueryUnescape(part); err == nil {
			k = append(k, unescaped)
		} else {
			k = append(k, part)
		}
	}
	return k
}

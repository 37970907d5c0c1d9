package models

import "strings"

// Slugify derives a URL-safe slug from a title: lowercase, runs of anything
// that is not a letter or digit collapse to a single hyphen.
func Slugify(title string) string {
	title = strings.TrimSpace(strings.ToLower(title))

	var result strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range title {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			result.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				result.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9-]{3,80}$`)

// Route segments a blog slug would shadow.
var reservedSlugs = map[string]struct{}{
	"admin":       {},
	"api":         {},
	"auth":        {},
	"blog":        {},
	"bookings":    {},
	"dashboard":   {},
	"favorites":   {},
	"health":      {},
	"login":       {},
	"metrics":     {},
	"motorcycles": {},
	"register":    {},
	"reviews":     {},
	"shops":       {},
	"swagger":     {},
}

// ValidateSlug validates blog post slug format and reserved names.
func ValidateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 3-80 characters and contain only lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	if _, exists := reservedSlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}

	return nil
}

// Slugify derives a URL-safe slug from a title. Used when a blog post is
// created without an explicit slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

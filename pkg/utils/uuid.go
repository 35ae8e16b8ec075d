package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]")
	repeatDashes = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = repeatDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateSKU builds a stock keeping unit from a category prefix and product name,
// e.g. ("Beverages", "Cold Coffee", 3) -> "BEV-COLD-COFFEE-003"
func GenerateSKU(category, name string, seq int) string {
	prefix := strings.ToUpper(Slugify(category))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		prefix = "GEN"
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, strings.ToUpper(Slugify(name)), seq)
}

// GenerateOrderNumber returns a zero padded, human readable order number
func GenerateOrderNumber(seq int) string {
	return fmt.Sprintf("ORD-%06d", seq)
}

// GenerateReferenceNo generates a unique reference number
func GenerateReferenceNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

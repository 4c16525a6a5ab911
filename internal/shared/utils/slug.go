package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a title into a URL-safe slug.
// "Año de Diseño" -> "ano-de-diseno"
func GenerateSlug(input string) string {
	// Step 1: Fold accented characters to ASCII
	ascii := RemoveDiacritics(input)

	// Step 2: Lowercase
	lower := strings.ToLower(ascii)

	// Step 3: Replace spaces with hyphens
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Step 4: Drop everything outside a-z, 0-9, hyphens
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")

	// Step 5: Collapse consecutive hyphens
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")

	// Step 6: Trim leading/trailing hyphens
	return strings.Trim(normalized, "-")
}

// RemoveDiacritics folds accented Latin characters to their base
// letter. Covers the Spanish and Portuguese ranges that show up in
// titles and names.
func RemoveDiacritics(input string) string {
	mappings := map[rune]rune{
		'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a', 'ã': 'a', 'å': 'a',
		'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
		'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
		'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o', 'õ': 'o',
		'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
		'ý': 'y', 'ÿ': 'y',
		'ñ': 'n', 'ç': 'c',

		'Á': 'A', 'À': 'A', 'Ä': 'A', 'Â': 'A', 'Ã': 'A', 'Å': 'A',
		'É': 'E', 'È': 'E', 'Ë': 'E', 'Ê': 'E',
		'Í': 'I', 'Ì': 'I', 'Ï': 'I', 'Î': 'I',
		'Ó': 'O', 'Ò': 'O', 'Ö': 'O', 'Ô': 'O', 'Õ': 'O',
		'Ú': 'U', 'Ù': 'U', 'Ü': 'U', 'Û': 'U',
		'Ý': 'Y',
		'Ñ': 'N', 'Ç': 'C',
	}

	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}

	return string(result)
}

package book

import (
	"strings"
	"unicode"
)

// TitleCase derives a human-readable chapter or page title from a raw file or
// directory name. The leading run of non-letter runes is stripped (dropping
// ordering prefixes such as "01-" or "3_"), underscores become spaces, and the
// first letter of every word is upper-cased. The remainder of each word is
// left untouched so camel-case names like "WritingIsGood" survive intact.
func TitleCase(rawName string) string {
	trimmedName := strings.TrimLeftFunc(rawName, func(currentRune rune) bool {
		return !unicode.IsLetter(currentRune)
	})
	spacedName := strings.ReplaceAll(trimmedName, "_", " ")

	var titleBuilder strings.Builder
	titleBuilder.Grow(len(spacedName))
	atWordStart := true
	for _, currentRune := range spacedName {
		if currentRune == ' ' {
			atWordStart = true
			titleBuilder.WriteRune(currentRune)
			continue
		}
		if atWordStart && unicode.IsLetter(currentRune) {
			titleBuilder.WriteRune(unicode.ToUpper(currentRune))
			atWordStart = false
			continue
		}
		titleBuilder.WriteRune(currentRune)
	}
	return titleBuilder.String()
}

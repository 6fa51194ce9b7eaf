package betaface

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics removes diacritical marks from a string (e.g., "Jiří" -> "Jiri").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// uploadFilename returns the ASCII file name sent in the multipart header.
// Windows separators are honoured on every platform.
func uploadFilename(imagePath string) string {
	name := filepath.Base(imagePath)
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}

	name = removeDiacritics(name)
	name = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == '"' {
			return '_'
		}
		return r
	}, name)

	if name == "" || name == "." || name == string(filepath.Separator) {
		return "image"
	}
	return name
}

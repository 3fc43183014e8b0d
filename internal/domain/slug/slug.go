// Package slug genera identificadores legibles para URL a partir de nombres
// y construye los patrones de búsqueda por nombre usados como alternativa al slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Caracteres que se eliminan sin dejar separador: "Tom's" -> "toms".
	removed   = regexp.MustCompile(`[*+~.()'"!:@]`)
	separator = regexp.MustCompile(`[^a-z0-9]+`)

	// Letras y símbolos que NFD no descompone y que se transliteran en lugar de perderse.
	transliteration = strings.NewReplacer(
		"&", "and", "%", "percent", "$", "dollar", "|", "or", "<", "less", ">", "greater",
		"€", "euro", "£", "pound", "¥", "yen", "¢", "cent", "©", "c", "®", "r", "♥", "love",
		"ß", "ss", "ẞ", "SS",
		"Æ", "AE", "æ", "ae", "Œ", "OE", "œ", "oe",
		"Ø", "O", "ø", "o", "Đ", "DJ", "đ", "dj", "Ð", "D", "ð", "d",
		"Þ", "TH", "þ", "th", "Ł", "L", "ł", "l", "Ħ", "H", "ħ", "h",
		"ı", "i", "Ĳ", "IJ", "ĳ", "ij", "ª", "a", "º", "o",
	)
)

// Generate convierte un nombre en slug: transliterado ("&" -> "and", "ß" -> "ss"), sin acentos,
// minúsculas, sin los caracteres de la lista negra y con cualquier otra secuencia no
// alfanumérica reducida a un guion.
// Una entrada vacía o compuesta solo por caracteres especiales devuelve "".
func Generate(name string) string {
	text := transliteration.Replace(name)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, text); err == nil {
		text = out
	}

	text = strings.ToLower(text)
	text = removed.ReplaceAllString(text, "")
	text = separator.ReplaceAllString(text, "-")

	return strings.Trim(text, "-")
}

// Valid indica si s ya está en forma canónica.
func Valid(s string) bool {
	return s != "" && Generate(s) == s
}

// NameText reconstruye el texto del nombre a partir del slug (guiones -> espacios).
func NameText(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// NamePattern devuelve la expresión regular "el nombre empieza por" derivada del slug.
// La insensibilidad a mayúsculas la aplica el almacén ($regex con opción "i" o ~* en PostgreSQL).
func NamePattern(s string) string {
	return "^" + regexp.QuoteMeta(NameText(s))
}

// ExactNamePattern como NamePattern pero anclado al final: el nombre es exactamente el texto
// del slug (se toleran espacios finales).
func ExactNamePattern(s string) string {
	return NamePattern(s) + `\s*$`
}

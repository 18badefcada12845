package photos

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNotSlug    = regexp.MustCompile(`[^a-z0-9\s-]`)
	reSpaces     = regexp.MustCompile(`\s+`)
	rePhotoNum   = regexp.MustCompile(`photo-(\d+)\.`)
	imageExtsSet = map[string]struct{}{".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {}}
)

// Slug normaliza el nombre del perro para usarlo como carpeta del bucket:
// "Jóia" -> "joia", "Tim Tim" -> "tim-tim".
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		s = strings.ToLower(name)
	}
	s = reNotSlug.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return reSpaces.ReplaceAllString(s, "-")
}

// SlotToNumber: el slot 0 es la foto 01; desde el slot 1 se salta el 02
// (era el logo en el sitio original): 1 -> 03, 2 -> 04...
func SlotToNumber(slot int) int {
	if slot <= 0 {
		return 1
	}
	return slot + 2
}

// NextSlot devuelve el primer slot libre dado el número de foto más alto existente.
func NextSlot(maxNumber int) int {
	switch {
	case maxNumber <= 0:
		return 0
	case maxNumber == 1:
		return 1
	default:
		return maxNumber - 1
	}
}

// Filename arma "photo-NN.jpg".
func Filename(n int) string {
	return fmt.Sprintf("photo-%02d.jpg", n)
}

// NumberOf extrae NN de "photo-NN.ext". 0 si no matchea.
func NumberOf(name string) int {
	m := rePhotoNum.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Key arma "{slug}/{archivo}".
func Key(slug, filename string) string {
	return slug + "/" + filename
}

func isImage(name string) bool {
	_, ok := imageExtsSet[strings.ToLower(path.Ext(name))]
	return ok
}

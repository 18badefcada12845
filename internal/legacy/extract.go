package legacy

import (
	"regexp"
	"strings"

	"shelter-dogs/internal/domain/dogs/profile"
)

var (
	reSexStart = regexp.MustCompile(`(?i)^-?\s*Sexo\s*:`)
	reNavStop  = regexp.MustCompile(`(?i)^(?:(?:Home|Blog|Adoptar|Contacto|Instagram|Facebook|Twitter|Partilhar|Tweet|Pin|Email|Comentários|Publicado em|Ver mais|Seguinte|Anterior|Arquivo|Newsletter|Subscrever)\b|Tags:|Categorias:)`)
	reLeadDash = regexp.MustCompile(`^[-–—]\s*`)
	reTailJunk = regexp.MustCompile(`[;\s\-–—]+$`)

	reStaticPhoto = regexp.MustCompile(`https://static\.tildacdn\.(?:com|net)/[^"'\s<>]+\.(?:jpg|jpeg|png|JPG|JPEG|PNG)`)
	reOptimPhoto  = regexp.MustCompile(`https://optim\.tildacdn\.(?:com|net)/[^"'\s<>]+\.(?:jpg|jpeg|png|webp|JPG|JPEG|PNG)[^"'\s<>]*`)
	reTildID      = regexp.MustCompile(`/(tild[a-f0-9]{4}-[a-f0-9-]+)/`)
	reOptimFile   = regexp.MustCompile(`/([^/]+\.(?:jpg|jpeg|png|JPG|JPEG|PNG))(?:\.\w+)?$`)
)

// ExtractDescription toma el bloque de ficha del texto de la página: empieza
// en la línea "Sexo:" y corta en el primer marcador de navegación. Cada línea
// pierde el guion inicial y el ";" o guiones finales.
func ExtractDescription(text string) string {
	var out []string
	in := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !in && reSexStart.MatchString(line) {
			in = true
		}
		if !in {
			continue
		}
		if reNavStop.MatchString(line) {
			break
		}
		if line == "" {
			continue
		}

		l := strings.TrimSpace(reLeadDash.ReplaceAllString(line, ""))
		l = strings.TrimSpace(reTailJunk.ReplaceAllString(l, ""))
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// ExtractPhotoURLs devuelve las fotos de tamaño completo, sin repetir y en
// orden de aparición. Las URLs "optim" se convierten a su versión "static".
func ExtractPhotoURLs(page string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}

	for _, u := range reStaticPhoto.FindAllString(page, -1) {
		add(u)
	}
	for _, u := range reOptimPhoto.FindAllString(page, -1) {
		id := reTildID.FindStringSubmatch(u)
		m := reOptimFile.FindStringSubmatch(u)
		if id == nil || m == nil {
			continue
		}
		add("https://static.tildacdn.com/" + id[1] + "/" + m[1])
	}
	return out
}

// SexFromDescription: "Masculino" => male, "Feminino" => female, si no "".
func SexFromDescription(desc string) profile.Sex {
	switch {
	case strings.Contains(desc, "Masculino"):
		return profile.SexMale
	case strings.Contains(desc, "Feminino"):
		return profile.SexFemale
	default:
		return ""
	}
}

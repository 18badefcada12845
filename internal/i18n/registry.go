package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Registry agrupa los catálogos por locale. Se construye al arrancar y no cambia.
type Registry struct {
	catalogs map[Locale]*Catalog
}

// Load construye y valida los catálogos embebidos. Si falta alguna key falla
// (el proceso no debería arrancar con un catálogo incompleto).
func Load() (*Registry, error) {
	return newRegistry(builtinMessages)
}

// MustLoad es Load para main/tests: panic si los catálogos están incompletos.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

func newRegistry(src map[Locale]map[Key]string) (*Registry, error) {
	r := &Registry{catalogs: make(map[Locale]*Catalog, len(src))}
	for _, loc := range []Locale{LocalePT, LocaleEN} {
		msgs, ok := src[loc]
		if !ok {
			return nil, fmt.Errorf("%w: locale=%s not provided", ErrIncompleteCatalog, loc)
		}
		c, err := NewCatalog(loc, msgs)
		if err != nil {
			return nil, err
		}
		r.catalogs[loc] = c
	}
	return r, nil
}

// Catalog devuelve el catálogo del locale. Para locales del enum siempre existe.
func (r *Registry) Catalog(loc Locale) (*Catalog, error) {
	c, ok := r.catalogs[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}
	return c, nil
}

// Base devuelve el catálogo del locale de persistencia.
func (r *Registry) Base() *Catalog {
	return r.catalogs[BaseLocale]
}

var matcher = language.NewMatcher([]language.Tag{
	language.Portuguese, // primero = default
	language.English,
})

// Negotiate elige el locale de presentación:
// 1) ?lang=pt|en  2) Accept-Language  3) BaseLocale.
func Negotiate(r *http.Request) Locale {
	if v := strings.TrimSpace(r.URL.Query().Get("lang")); v != "" {
		if loc, err := ParseLocale(v); err == nil {
			return loc
		}
	}
	return FromAcceptLanguage(r.Header.Get("Accept-Language"))
}

// FromAcceptLanguage resuelve un header Accept-Language contra los locales soportados.
func FromAcceptLanguage(header string) Locale {
	if strings.TrimSpace(header) == "" {
		return BaseLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return BaseLocale
	}
	if idx == 1 {
		return LocaleEN
	}
	return LocalePT
}

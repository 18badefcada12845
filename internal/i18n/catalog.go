package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Locale es el enum cerrado de idiomas soportados.
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

// BaseLocale es el idioma en que se persisten las descripciones.
const BaseLocale = LocalePT

var (
	ErrUnknownLocale     = errors.New("unknown locale")
	ErrIncompleteCatalog = errors.New("incomplete catalog")
)

// ParseLocale normaliza "PT", " en " etc. Devuelve error si no es un locale soportado.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocalePT:
		return LocalePT, nil
	case LocaleEN:
		return LocaleEN, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
}

// Catalog es la tabla key -> texto de un locale.
// Es inmutable: se construye una vez (NewCatalog) y sólo se lee.
type Catalog struct {
	locale   Locale
	messages map[Key]string
}

// NewCatalog copia messages y valida que estén todas las RequiredKeys (no vacías).
func NewCatalog(locale Locale, messages map[Key]string) (*Catalog, error) {
	if _, err := ParseLocale(string(locale)); err != nil {
		return nil, err
	}

	copied := make(map[Key]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}

	var missing []string
	for _, k := range RequiredKeys {
		if strings.TrimSpace(copied[k]) == "" {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: locale=%s missing=%s", ErrIncompleteCatalog, locale, strings.Join(missing, ","))
	}

	return &Catalog{locale: locale, messages: copied}, nil
}

func (c *Catalog) Locale() Locale { return c.locale }

// T devuelve el texto de la key. Las keys requeridas siempre existen (validado en NewCatalog).
func (c *Catalog) T(k Key) string {
	return c.messages[k]
}

package profile

import (
	"strings"

	"shelter-dogs/internal/i18n"
)

// Localize traduce una descripción escrita en el locale base al locale de target,
// línea por línea, sin pasar por Profile. Es sólo para mostrar: no hay inversa.
//
// Texto libre (edad, raza, historia...) se deja tal cual; sólo se traducen
// frases fijas, etiquetas y los valores cerrados de sexo/porte.
func Localize(text string, base, target *i18n.Catalog) string {
	t := newTable(base)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		out = append(out, t.localizeLine(raw, target))
	}
	return strings.Join(out, "\n")
}

func (t table) localizeLine(raw string, target *i18n.Catalog) string {
	line := strings.TrimSpace(raw)
	if line == "" {
		return raw
	}

	if k, ok := t.social[line]; ok {
		return target.T(k)
	}

	if keys, ok := t.medicalLine(line); ok {
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, target.T(k))
		}
		return strings.Join(parts, ", ")
	}

	if label, value, ok := splitLabel(line); ok {
		if lk, known := t.labels[strings.ToLower(label)]; known {
			if vk, closed := t.values[value]; closed {
				value = target.T(vk)
			}
			return labelLine(target.T(lk), value)
		}
	}

	return raw
}

// Package profile codifica el perfil estructurado de un perro en el texto
// de descripción persistido (una línea por dato, en el locale base) y lo
// decodifica de vuelta para editarlo.
//
// Encode, Decode y Localize son funciones puras: no hacen I/O ni guardan estado,
// así que se pueden llamar en paralelo con el mismo *i18n.Catalog.
package profile

import (
	"strings"

	"shelter-dogs/internal/i18n"
)

// MaxLines es el máximo de líneas que produce Encode: nueve grupos en orden fijo,
// donde sociabilidad aporta cuatro líneas (6 etiquetas + 4 + médica + historia).
const MaxLines = 12

// Encode genera la descripción en el orden fijo:
// sexo, edad, fecha de entrada, raza, porte, personalidad,
// 4 líneas de sociabilidad, línea médica, historia.
// Los campos vacíos/unknown se omiten salvo porte y sociabilidad, que siempre van.
func Encode(p Profile, c *i18n.Catalog) string {
	lines := make([]string, 0, MaxLines)

	if k, ok := sexKeys[p.Sex]; ok {
		lines = append(lines, labelLine(c.T(i18n.KeyLabelSex), c.T(k)))
	}
	if v := oneLine(p.Age); v != "" {
		lines = append(lines, labelLine(c.T(i18n.KeyLabelAge), v))
	}
	if v := oneLine(p.EntryDate); v != "" {
		lines = append(lines, labelLine(c.T(i18n.KeyLabelEntryDate), v))
	}
	if v := oneLine(p.Breed); v != "" {
		lines = append(lines, labelLine(c.T(i18n.KeyLabelBreed), v))
	}

	sizeKey, ok := sizeKeys[p.Size]
	if !ok {
		sizeKey = i18n.KeySizeMedium
	}
	lines = append(lines, labelLine(c.T(i18n.KeyLabelSize), c.T(sizeKey)))

	if v := oneLine(p.Personality); v != "" {
		lines = append(lines, labelLine(c.T(i18n.KeyLabelPersonality), v))
	}

	for _, a := range Audiences {
		lines = append(lines, c.T(socialKey(a, p.Sociability.Get(a))))
	}

	var medical []string
	for _, f := range MedicalFlags {
		if p.Medical.Has(f) {
			medical = append(medical, c.T(medicalKeys[f]))
		}
	}
	if len(medical) > 0 {
		lines = append(lines, strings.Join(medical, ", "))
	}

	if v := oneLine(p.Story); v != "" {
		lines = append(lines, labelLine(c.T(i18n.KeyLabelStory), v))
	}

	return strings.Join(lines, "\n")
}

// Result es la salida detallada de DecodeDetailed.
type Result struct {
	Profile Profile
	// Unmatched son las líneas que no encajaron en la gramática (prosa libre).
	Unmatched []string
}

// Decode reconstruye el perfil a partir de la descripción. Nunca falla:
// lo que no se reconoce termina como prosa en Story (si Story quedó vacío).
func Decode(text string, c *i18n.Catalog, defaults Profile) Profile {
	return DecodeDetailed(text, c, defaults).Profile
}

// DecodeDetailed es Decode devolviendo además las líneas no reconocidas.
//
// Sexo, edad y porte se reconocen pero no se copian al perfil: esos datos
// salen de las columnas del registro (defaults).
func DecodeDetailed(text string, c *i18n.Catalog, defaults Profile) Result {
	t := newTable(c)
	p := defaults
	var prose []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if k, ok := t.social[line]; ok {
			e := socialKeys[k]
			p.Sociability.Set(e.audience, e.state)
			continue
		}

		if keys, ok := t.medicalLine(line); ok {
			for _, k := range keys {
				for f, fk := range medicalKeys {
					if fk == k {
						p.Medical.Set(f)
					}
				}
			}
			continue
		}

		if label, value, ok := splitLabel(line); ok {
			if k, known := t.labels[strings.ToLower(label)]; known {
				switch k {
				case i18n.KeyLabelPersonality:
					p.Personality = value
				case i18n.KeyLabelStory:
					p.Story = value
				case i18n.KeyLabelBreed:
					p.Breed = value
				case i18n.KeyLabelEntryDate:
					p.EntryDate = value
				}
				continue
			}
		}

		prose = append(prose, line)
	}

	if len(prose) > 0 && strings.TrimSpace(p.Story) == "" {
		p.Story = strings.Join(prose, " ")
	}

	return Result{Profile: p, Unmatched: prose}
}

// oneLine colapsa espacios y saltos de línea: la gramática es de una línea por campo.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

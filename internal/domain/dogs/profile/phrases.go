package profile

import (
	"strings"

	"shelter-dogs/internal/i18n"
)

type socialEntry struct {
	audience Audience
	state    Sociability
}

var socialKeys = map[i18n.Key]socialEntry{
	i18n.KeySocialHumansCompatible:   {AudienceHumans, Compatible},
	i18n.KeySocialHumansIncompatible: {AudienceHumans, Incompatible},
	i18n.KeySocialHumansUnknown:      {AudienceHumans, Unknown},

	i18n.KeySocialMaleDogsCompatible:   {AudienceMaleDogs, Compatible},
	i18n.KeySocialMaleDogsIncompatible: {AudienceMaleDogs, Incompatible},
	i18n.KeySocialMaleDogsUnknown:      {AudienceMaleDogs, Unknown},

	i18n.KeySocialFemaleDogsCompatible:   {AudienceFemaleDogs, Compatible},
	i18n.KeySocialFemaleDogsIncompatible: {AudienceFemaleDogs, Incompatible},
	i18n.KeySocialFemaleDogsUnknown:      {AudienceFemaleDogs, Unknown},

	i18n.KeySocialCatsCompatible:   {AudienceCats, Compatible},
	i18n.KeySocialCatsIncompatible: {AudienceCats, Incompatible},
	i18n.KeySocialCatsUnknown:      {AudienceCats, Unknown},
}

func socialKey(a Audience, s Sociability) i18n.Key {
	for k, e := range socialKeys {
		if e.audience == a && e.state == s {
			return k
		}
	}
	return ""
}

var medicalKeys = map[MedicalFlag]i18n.Key{
	Chipped:    i18n.KeyMedicalChipped,
	Vaccinated: i18n.KeyMedicalVaccinated,
	Sterilized: i18n.KeyMedicalSterilized,
}

var labelKeys = []i18n.Key{
	i18n.KeyLabelSex,
	i18n.KeyLabelAge,
	i18n.KeyLabelEntryDate,
	i18n.KeyLabelBreed,
	i18n.KeyLabelSize,
	i18n.KeyLabelPersonality,
	i18n.KeyLabelStory,
}

// Valores cerrados que se traducen dentro de una línea "Etiqueta: valor".
var valueKeys = []i18n.Key{
	i18n.KeySexMale,
	i18n.KeySexFemale,
	i18n.KeySizeSmall,
	i18n.KeySizeMedium,
	i18n.KeySizeLarge,
}

var sexKeys = map[Sex]i18n.Key{
	SexMale:   i18n.KeySexMale,
	SexFemale: i18n.KeySexFemale,
}

var sizeKeys = map[Size]i18n.Key{
	SizeSmall:  i18n.KeySizeSmall,
	SizeMedium: i18n.KeySizeMedium,
	SizeLarge:  i18n.KeySizeLarge,
}

// table es el índice inverso (texto -> key) de un catálogo.
// Es chico (27 entradas); se arma por llamada y no se comparte.
type table struct {
	social  map[string]i18n.Key
	medical map[string]i18n.Key
	labels  map[string]i18n.Key // etiqueta en minúsculas
	values  map[string]i18n.Key
}

func newTable(c *i18n.Catalog) table {
	t := table{
		social:  make(map[string]i18n.Key, len(socialKeys)),
		medical: make(map[string]i18n.Key, len(medicalKeys)),
		labels:  make(map[string]i18n.Key, len(labelKeys)),
		values:  make(map[string]i18n.Key, len(valueKeys)),
	}
	for k := range socialKeys {
		t.social[c.T(k)] = k
	}
	for _, k := range medicalKeys {
		t.medical[c.T(k)] = k
	}
	for _, k := range labelKeys {
		t.labels[strings.ToLower(c.T(k))] = k
	}
	for _, k := range valueKeys {
		t.values[c.T(k)] = k
	}
	return t
}

// medicalLine devuelve las keys si TODOS los tokens separados por coma son frases médicas.
func (t table) medicalLine(line string) ([]i18n.Key, bool) {
	parts := strings.Split(line, ",")
	keys := make([]i18n.Key, 0, len(parts))
	for _, p := range parts {
		k, ok := t.medical[strings.TrimSpace(p)]
		if !ok {
			return nil, false
		}
		keys = append(keys, k)
	}
	return keys, true
}

// splitLabel separa "Etiqueta: valor" por el primer ':'.
func splitLabel(line string) (label, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	label = strings.TrimSpace(line[:idx])
	if label == "" {
		return "", "", false
	}
	return label, strings.TrimSpace(line[idx+1:]), true
}

func labelLine(label, value string) string {
	return label + ": " + value
}

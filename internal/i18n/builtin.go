package i18n

// Textos del sitio original (pt) y su traducción (en).
// Sexo en pt usa "Masculino"/"Feminino" porque así viene el contenido legado.
var builtinMessages = map[Locale]map[Key]string{
	LocalePT: {
		KeySexMale:   "Masculino",
		KeySexFemale: "Feminino",

		KeySizeSmall:  "Pequeno",
		KeySizeMedium: "Médio",
		KeySizeLarge:  "Grande",

		KeySocialHumansCompatible:   "Sociável com pessoas",
		KeySocialHumansIncompatible: "Não sociável com pessoas",
		KeySocialHumansUnknown:      "Não sabemos se é sociável com pessoas",

		KeySocialMaleDogsCompatible:   "Sociável com cães machos",
		KeySocialMaleDogsIncompatible: "Não sociável com cães machos",
		KeySocialMaleDogsUnknown:      "Não sabemos se é sociável com cães machos",

		KeySocialFemaleDogsCompatible:   "Sociável com cadelas",
		KeySocialFemaleDogsIncompatible: "Não sociável com cadelas",
		KeySocialFemaleDogsUnknown:      "Não sabemos se é sociável com cadelas",

		KeySocialCatsCompatible:   "Sociável com gatos",
		KeySocialCatsIncompatible: "Não sociável com gatos",
		KeySocialCatsUnknown:      "Não sabemos se é sociável com gatos",

		KeyMedicalChipped:    "Chipado",
		KeyMedicalVaccinated: "Vacinado",
		KeyMedicalSterilized: "Esterilizado",

		KeyLabelSex:         "Sexo",
		KeyLabelAge:         "Idade",
		KeyLabelEntryDate:   "Data de entrada",
		KeyLabelBreed:       "Raça",
		KeyLabelSize:        "Porte",
		KeyLabelPersonality: "Personalidade",
		KeyLabelStory:       "História",
	},
	LocaleEN: {
		KeySexMale:   "Male",
		KeySexFemale: "Female",

		KeySizeSmall:  "Small",
		KeySizeMedium: "Medium",
		KeySizeLarge:  "Large",

		KeySocialHumansCompatible:   "Good with people",
		KeySocialHumansIncompatible: "Not good with people",
		KeySocialHumansUnknown:      "Not sure if good with people",

		KeySocialMaleDogsCompatible:   "Good with male dogs",
		KeySocialMaleDogsIncompatible: "Not good with male dogs",
		KeySocialMaleDogsUnknown:      "Not sure if good with male dogs",

		KeySocialFemaleDogsCompatible:   "Good with female dogs",
		KeySocialFemaleDogsIncompatible: "Not good with female dogs",
		KeySocialFemaleDogsUnknown:      "Not sure if good with female dogs",

		KeySocialCatsCompatible:   "Good with cats",
		KeySocialCatsIncompatible: "Not good with cats",
		KeySocialCatsUnknown:      "Not sure if good with cats",

		KeyMedicalChipped:    "Chipped",
		KeyMedicalVaccinated: "Vaccinated",
		KeyMedicalSterilized: "Sterilized",

		KeyLabelSex:         "Sex",
		KeyLabelAge:         "Age",
		KeyLabelEntryDate:   "Entry date",
		KeyLabelBreed:       "Breed",
		KeyLabelSize:        "Size",
		KeyLabelPersonality: "Personality",
		KeyLabelStory:       "Story",
	},
}

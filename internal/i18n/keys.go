package i18n

// Key identifica un mensaje fijo del catálogo.
type Key string

// Valores cerrados (columnas duplicadas fuera de la descripción).
const (
	KeySexMale   Key = "sex.male"
	KeySexFemale Key = "sex.female"

	KeySizeSmall  Key = "size.small"
	KeySizeMedium Key = "size.medium"
	KeySizeLarge  Key = "size.large"
)

// Frases de sociabilidad: 4 audiencias x 3 estados.
const (
	KeySocialHumansCompatible   Key = "social.humans.compatible"
	KeySocialHumansIncompatible Key = "social.humans.incompatible"
	KeySocialHumansUnknown      Key = "social.humans.unknown"

	KeySocialMaleDogsCompatible   Key = "social.male_dogs.compatible"
	KeySocialMaleDogsIncompatible Key = "social.male_dogs.incompatible"
	KeySocialMaleDogsUnknown      Key = "social.male_dogs.unknown"

	KeySocialFemaleDogsCompatible   Key = "social.female_dogs.compatible"
	KeySocialFemaleDogsIncompatible Key = "social.female_dogs.incompatible"
	KeySocialFemaleDogsUnknown      Key = "social.female_dogs.unknown"

	KeySocialCatsCompatible   Key = "social.cats.compatible"
	KeySocialCatsIncompatible Key = "social.cats.incompatible"
	KeySocialCatsUnknown      Key = "social.cats.unknown"
)

// Frases médicas. No existe frase negativa: ausencia = no.
const (
	KeyMedicalChipped    Key = "medical.chipped"
	KeyMedicalVaccinated Key = "medical.vaccinated"
	KeyMedicalSterilized Key = "medical.sterilized"
)

// Etiquetas de las líneas "Etiqueta: valor".
const (
	KeyLabelSex         Key = "label.sex"
	KeyLabelAge         Key = "label.age"
	KeyLabelEntryDate   Key = "label.entry_date"
	KeyLabelBreed       Key = "label.breed"
	KeyLabelSize        Key = "label.size"
	KeyLabelPersonality Key = "label.personality"
	KeyLabelStory       Key = "label.story"
)

// RequiredKeys lista todas las keys que un catálogo debe traer.
// Un catálogo incompleto es un defecto, no hay fallback en runtime.
var RequiredKeys = []Key{
	KeySexMale, KeySexFemale,
	KeySizeSmall, KeySizeMedium, KeySizeLarge,

	KeySocialHumansCompatible, KeySocialHumansIncompatible, KeySocialHumansUnknown,
	KeySocialMaleDogsCompatible, KeySocialMaleDogsIncompatible, KeySocialMaleDogsUnknown,
	KeySocialFemaleDogsCompatible, KeySocialFemaleDogsIncompatible, KeySocialFemaleDogsUnknown,
	KeySocialCatsCompatible, KeySocialCatsIncompatible, KeySocialCatsUnknown,

	KeyMedicalChipped, KeyMedicalVaccinated, KeyMedicalSterilized,

	KeyLabelSex, KeyLabelAge, KeyLabelEntryDate, KeyLabelBreed,
	KeyLabelSize, KeyLabelPersonality, KeyLabelStory,
}

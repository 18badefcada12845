package profile

// Sex del perro.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex acepta "" como unknown; cualquier otro valor desconocido también es unknown.
func ParseSex(s string) Sex {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s)
	default:
		return SexUnknown
	}
}

// Size (porte) del perro.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ParseSize valida el porte. ok=false si no es uno de los tres valores.
func ParseSize(s string) (Size, bool) {
	switch Size(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return Size(s), true
	default:
		return "", false
	}
}

// Sociability es tri-estado por audiencia.
type Sociability string

const (
	Compatible   Sociability = "compatible"
	Incompatible Sociability = "incompatible"
	Unknown      Sociability = "unknown"
)

// ParseSociability: "" o valores desconocidos => Unknown.
func ParseSociability(s string) Sociability {
	switch Sociability(s) {
	case Compatible, Incompatible:
		return Sociability(s)
	default:
		return Unknown
	}
}

// Audience es el destinatario de una línea de sociabilidad.
type Audience int

const (
	AudienceHumans Audience = iota
	AudienceMaleDogs
	AudienceFemaleDogs
	AudienceCats
)

// Audiences en el orden en que se codifican.
var Audiences = []Audience{AudienceHumans, AudienceMaleDogs, AudienceFemaleDogs, AudienceCats}

type Social struct {
	Humans     Sociability
	MaleDogs   Sociability
	FemaleDogs Sociability
	Cats       Sociability
}

func (s Social) Get(a Audience) Sociability {
	var v Sociability
	switch a {
	case AudienceHumans:
		v = s.Humans
	case AudienceMaleDogs:
		v = s.MaleDogs
	case AudienceFemaleDogs:
		v = s.FemaleDogs
	case AudienceCats:
		v = s.Cats
	}
	// fuera del enum ("" incluido) => Unknown
	return ParseSociability(string(v))
}

func (s *Social) Set(a Audience, v Sociability) {
	switch a {
	case AudienceHumans:
		s.Humans = v
	case AudienceMaleDogs:
		s.MaleDogs = v
	case AudienceFemaleDogs:
		s.FemaleDogs = v
	case AudienceCats:
		s.Cats = v
	}
}

// MedicalFlag identifica un flag médico.
type MedicalFlag int

const (
	Chipped MedicalFlag = iota
	Vaccinated
	Sterilized
)

// MedicalFlags en el orden en que se codifican.
var MedicalFlags = []MedicalFlag{Chipped, Vaccinated, Sterilized}

type Medical struct {
	Chipped    bool
	Vaccinated bool
	Sterilized bool
}

func (m Medical) Has(f MedicalFlag) bool {
	switch f {
	case Chipped:
		return m.Chipped
	case Vaccinated:
		return m.Vaccinated
	case Sterilized:
		return m.Sterilized
	}
	return false
}

func (m *Medical) Set(f MedicalFlag) {
	switch f {
	case Chipped:
		m.Chipped = true
	case Vaccinated:
		m.Vaccinated = true
	case Sterilized:
		m.Sterilized = true
	}
}

// Profile es la forma estructurada de la descripción (lo que edita el admin).
// Sex, Age y Size también viven en columnas propias del registro.
type Profile struct {
	Sex         Sex
	Age         string
	EntryDate   string
	Breed       string
	Size        Size
	Personality string
	Sociability Social
	Medical     Medical
	Story       string
}

// Default es el perfil "vacío": todo unknown/false, porte medium (default del formulario).
func Default() Profile {
	return Profile{
		Sex:  SexUnknown,
		Size: SizeMedium,
		Sociability: Social{
			Humans:     Unknown,
			MaleDogs:   Unknown,
			FemaleDogs: Unknown,
			Cats:       Unknown,
		},
	}
}

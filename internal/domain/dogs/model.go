package dogs

import (
	"time"

	"shelter-dogs/internal/domain/dogs/profile"
)

// Dog es el registro persistido. Size, Sex y Age son columnas propias;
// todo lo demás del perfil vive dentro de Description.
type Dog struct {
	ID   string
	Name string

	Size profile.Size // small, medium, large
	Sex  profile.Sex  // male, female o "" (sin dato)
	Age  string

	Description string
	PhotoURL    string
	Adopted     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter: campos vacíos/nil no filtran. Orden siempre por nombre.
type ListFilter struct {
	Size    profile.Size
	Sex     profile.Sex
	Query   string // substring del nombre, sin distinguir mayúsculas
	Adopted *bool
	Limit   int
}

// Counts para el panel de administración.
type Counts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Adopted   int `json:"adopted"`
}

// sexColumn: unknown no se guarda.
func sexColumn(s profile.Sex) profile.Sex {
	if s == profile.SexMale || s == profile.SexFemale {
		return s
	}
	return ""
}

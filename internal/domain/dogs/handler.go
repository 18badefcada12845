package dogs

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"shelter-dogs/internal/domain/dogs/profile"
	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/i18n"
)

const maxUploadMemory = 32 << 20

// RegisterRoutes monta las rutas públicas (sin auth).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc))
		dr.Get("/featured", featuredDogsHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
	})
}

// RegisterAdminRoutes monta el CRUD. El router ya exige claims antes de llegar acá.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", adminListHandler(svc))
		dr.Post("/", createDogHandler(svc))
		dr.Get("/{dogID}", getFormHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
		dr.Post("/{dogID}/adopted", toggleAdoptedHandler(svc))

		dr.Post("/{dogID}/photos", uploadPhotosHandler(svc))
		dr.Delete("/{dogID}/photos/{name}", deletePhotoHandler(svc))
	})
}

type dogResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        string    `json:"size"`
	Sex         *string   `json:"sex"`
	Age         string    `json:"age"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photo_url"`
	IsAdopted   bool      `json:"is_adopted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type dogDetailResponse struct {
	dogResponse
	Locale string   `json:"locale"`
	Photos []string `json:"photos"`
}

type dogListResponse struct {
	Locale string        `json:"locale"`
	Items  []dogResponse `json:"items"`
}

type adminListResponse struct {
	Counts Counts        `json:"counts"`
	Items  []dogResponse `json:"items"`
}

type sociabilityPayload struct {
	Humans     string `json:"humans"`
	MaleDogs   string `json:"male_dogs"`
	FemaleDogs string `json:"female_dogs"`
	Cats       string `json:"cats"`
}

type medicalPayload struct {
	Chipped    bool `json:"chipped"`
	Vaccinated bool `json:"vaccinated"`
	Sterilized bool `json:"sterilized"`
}

// dogFormRequest es el formulario de alta/edición.
type dogFormRequest struct {
	Name        string             `json:"name"`
	Sex         string             `json:"sex"`  // male, female, "" (sin dato)
	Size        string             `json:"size"` // small, medium, large (default medium)
	Age         string             `json:"age"`
	EntryDate   string             `json:"entry_date"`
	Breed       string             `json:"breed"`
	Personality string             `json:"personality"`
	Sociability sociabilityPayload `json:"sociability"`
	Medical     medicalPayload     `json:"medical"`
	Story       string             `json:"story"`
}

type photoResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type dogFormResponse struct {
	Dog       dogResponse     `json:"dog"`
	Form      dogFormRequest  `json:"form"`
	Unmatched []string        `json:"unmatched_lines"`
	Photos    []photoResponse `json:"photos"`
}

// listDogsHandler godoc
// @Summary Listar perros disponibles
// @Description Lista los perros no adoptados ordenados por nombre. La descripción se traduce al idioma negociado (`?lang=pt|en`, luego `Accept-Language`, default pt).
// @Tags dogs
// @Produce json
// @Param size query string false "small, medium o large"
// @Param sex query string false "male o female"
// @Param q query string false "Búsqueda por nombre"
// @Param lang query string false "pt o en"
// @Success 200 {object} dogListResponse
// @Failure 400 {string} string "invalid filter"
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := i18n.Negotiate(r)
		q := r.URL.Query()
		items, err := svc.ListPublic(r.Context(), PublicFilter{
			Size:  q.Get("size"),
			Sex:   q.Get("sex"),
			Query: q.Get("q"),
		}, loc)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dogListResponse{Locale: string(loc), Items: toDogResponses(items)})
	}
}

// featuredDogsHandler godoc
// @Summary Perros destacados
// @Description Primeros 6 perros disponibles (por nombre) para la portada.
// @Tags dogs
// @Produce json
// @Param size query string false "small, medium o large"
// @Param lang query string false "pt o en"
// @Success 200 {object} dogListResponse
// @Failure 400 {string} string "invalid filter"
// @Router /dogs/featured [get]
func featuredDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := i18n.Negotiate(r)
		items, err := svc.Featured(r.Context(), r.URL.Query().Get("size"), loc)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dogListResponse{Locale: string(loc), Items: toDogResponses(items)})
	}
}

// getDogHandler godoc
// @Summary Ficha pública de un perro
// @Description Devuelve el perro con todas sus fotos y la descripción traducida.
// @Tags dogs
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param lang query string false "pt o en"
// @Success 200 {object} dogDetailResponse
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := i18n.Negotiate(r)
		d, err := svc.PublicDetail(r.Context(), chi.URLParam(r, "dogID"), loc)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dogDetailResponse{
			dogResponse: toDogResponse(d.Dog),
			Locale:      string(loc),
			Photos:      d.Photos,
		})
	}
}

// adminListHandler godoc
// @Summary Listar todos los perros (admin)
// @Description Incluye adoptados. Devuelve contadores total/disponibles/adoptados.
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param q query string false "Búsqueda por nombre"
// @Success 200 {object} adminListResponse
// @Failure 401 {string} string "unauthorized"
// @Router /admin/dogs [get]
func adminListHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ListAdmin(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, adminListResponse{Counts: res.Counts, Items: toDogResponses(res.Dogs)})
	}
}

// createDogHandler godoc
// @Summary Crear perro
// @Description Genera la descripción (en portugués) a partir del formulario.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body dogFormRequest true "Formulario"
// @Success 201 {object} dogResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "dog name already in use"
// @Router /admin/dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dogFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// getFormHandler godoc
// @Summary Formulario de edición
// @Description Reconstruye el formulario desde la descripción guardada. Las líneas que no se reconocieron vuelven en `unmatched_lines`.
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogFormResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /admin/dogs/{dogID} [get]
func getFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Form(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}

		ph := make([]photoResponse, 0, len(v.Photos))
		for _, p := range v.Photos {
			ph = append(ph, photoResponse{Name: p.Name, URL: p.URL, Size: p.Size})
		}
		unmatched := v.Unmatched
		if unmatched == nil {
			unmatched = []string{}
		}
		writeJSON(w, http.StatusOK, dogFormResponse{
			Dog:       toDogResponse(v.Dog),
			Form:      toFormRequest(v.Dog.Name, v.Profile),
			Unmatched: unmatched,
			Photos:    ph,
		})
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Regenera la descripción completa. Si cambia el nombre se mueven las fotos.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param payload body dogFormRequest true "Formulario"
// @Success 200 {object} dogResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Failure 409 {string} string "dog name already in use"
// @Router /admin/dogs/{dogID} [put]
func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dogFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Description Borra las fotos del bucket y después el registro.
// @Tags admin
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /admin/dogs/{dogID} [delete]
func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// toggleAdoptedHandler godoc
// @Summary Marcar/desmarcar adoptado
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /admin/dogs/{dogID}/adopted [post]
func toggleAdoptedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.ToggleAdopted(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// uploadPhotosHandler godoc
// @Summary Subir fotos
// @Description Multipart con uno o más archivos en el campo `photos`. Se redimensionan a 1200px y se guardan como JPEG.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param photos formData file true "Fotos"
// @Success 201 {array} photoResponse
// @Failure 400 {string} string "invalid multipart"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Failure 422 {string} string "no photo could be uploaded"
// @Router /admin/dogs/{dogID}/photos [post]
func uploadPhotosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			http.Error(w, "invalid multipart", http.StatusBadRequest)
			return
		}
		headers := r.MultipartForm.File["photos"]
		if len(headers) == 0 {
			http.Error(w, "photos required", http.StatusBadRequest)
			return
		}

		files := make([]photos.Upload, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, "invalid multipart", http.StatusBadRequest)
				return
			}
			defer func(f multipart.File) { _ = f.Close() }(f)
			files = append(files, photos.Upload{Filename: fh.Filename, Body: f})
		}

		uploaded, err := svc.AddPhotos(r.Context(), chi.URLParam(r, "dogID"), files)
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]photoResponse, 0, len(uploaded))
		for _, p := range uploaded {
			out = append(out, photoResponse{Name: p.Name, URL: p.URL, Size: p.Size})
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// deletePhotoHandler godoc
// @Summary Borrar una foto
// @Description Si era la foto principal la reemplaza la primera que quede.
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param name path string true "Archivo, p.ej. photo-03.jpg"
// @Success 200 {object} dogResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /admin/dogs/{dogID}/photos/{name} [delete]
func deletePhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.DeletePhoto(r.Context(), chi.URLParam(r, "dogID"), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func (req dogFormRequest) toInput() FormInput {
	p := profile.Default()
	p.Sex = profile.ParseSex(strings.TrimSpace(req.Sex))
	if sz := strings.TrimSpace(req.Size); sz != "" {
		// tamaño inválido => lo rechaza el service
		p.Size = profile.Size(sz)
	}
	p.Age = req.Age
	p.EntryDate = strings.TrimSpace(req.EntryDate)
	p.Breed = strings.TrimSpace(req.Breed)
	p.Personality = strings.TrimSpace(req.Personality)
	p.Story = strings.TrimSpace(req.Story)

	p.Sociability.Set(profile.AudienceHumans, profile.ParseSociability(req.Sociability.Humans))
	p.Sociability.Set(profile.AudienceMaleDogs, profile.ParseSociability(req.Sociability.MaleDogs))
	p.Sociability.Set(profile.AudienceFemaleDogs, profile.ParseSociability(req.Sociability.FemaleDogs))
	p.Sociability.Set(profile.AudienceCats, profile.ParseSociability(req.Sociability.Cats))

	p.Medical = profile.Medical{
		Chipped:    req.Medical.Chipped,
		Vaccinated: req.Medical.Vaccinated,
		Sterilized: req.Medical.Sterilized,
	}

	return FormInput{Name: req.Name, Profile: p}
}

func toFormRequest(name string, p profile.Profile) dogFormRequest {
	sex := ""
	if p.Sex == profile.SexMale || p.Sex == profile.SexFemale {
		sex = string(p.Sex)
	}
	return dogFormRequest{
		Name:        name,
		Sex:         sex,
		Size:        string(p.Size),
		Age:         p.Age,
		EntryDate:   p.EntryDate,
		Breed:       p.Breed,
		Personality: p.Personality,
		Sociability: sociabilityPayload{
			Humans:     string(p.Sociability.Get(profile.AudienceHumans)),
			MaleDogs:   string(p.Sociability.Get(profile.AudienceMaleDogs)),
			FemaleDogs: string(p.Sociability.Get(profile.AudienceFemaleDogs)),
			Cats:       string(p.Sociability.Get(profile.AudienceCats)),
		},
		Medical: medicalPayload{
			Chipped:    p.Medical.Chipped,
			Vaccinated: p.Medical.Vaccinated,
			Sterilized: p.Medical.Sterilized,
		},
		Story: p.Story,
	}
}

func toDogResponse(d Dog) dogResponse {
	var sex *string
	if d.Sex != "" {
		s := string(d.Sex)
		sex = &s
	}
	return dogResponse{
		ID:          d.ID,
		Name:        d.Name,
		Size:        string(d.Size),
		Sex:         sex,
		Age:         d.Age,
		Description: d.Description,
		PhotoURL:    d.PhotoURL,
		IsAdopted:   d.Adopted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDogResponses(items []Dog) []dogResponse {
	out := make([]dogResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDogResponse(d))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, photos.ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, ErrConflict.Error(), http.StatusConflict)
	case errors.Is(err, photos.ErrNoUploads):
		http.Error(w, photos.ErrNoUploads.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

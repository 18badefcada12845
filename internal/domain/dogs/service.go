package dogs

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"shelter-dogs/internal/domain/dogs/profile"
	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/i18n"
	"shelter-dogs/internal/platform/logger"
	"shelter-dogs/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
	ErrConflict     = errors.New("dog name already in use")
)

const (
	FeaturedLimit     = 6
	DetailPhotosLimit = 50
)

type Service struct {
	repo     Repository
	photos   *photos.Service
	catalogs *i18n.Registry
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewService(repo Repository, ph *photos.Service, catalogs *i18n.Registry, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		photos:   ph,
		catalogs: catalogs,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// FormInput es lo que manda el formulario de administración.
type FormInput struct {
	Name    string
	Profile profile.Profile
}

// FormView es el formulario reconstruido desde el registro.
type FormView struct {
	Dog       Dog
	Profile   profile.Profile
	Unmatched []string
	Photos    []photos.Photo
}

// Detail es la vista pública de un perro.
type Detail struct {
	Dog    Dog
	Photos []string
}

type AdminList struct {
	Dogs   []Dog
	Counts Counts
}

func (s *Service) validate(in FormInput) (FormInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || photos.Slug(in.Name) == "" {
		return in, ErrInvalidInput
	}
	if in.Profile.Size == "" {
		in.Profile.Size = profile.SizeMedium
	}
	if _, ok := profile.ParseSize(string(in.Profile.Size)); !ok {
		return in, ErrInvalidInput
	}
	in.Profile.Sex = profile.ParseSex(string(in.Profile.Sex))
	in.Profile.Age = strings.TrimSpace(in.Profile.Age)
	return in, nil
}

// ensureNameFree: la carpeta de fotos es el slug del nombre, así que dos
// perros cuyos nombres dan el mismo slug ("Bóbi" y "Bobi") chocan.
func (s *Service) ensureNameFree(ctx context.Context, name, selfID string) error {
	slug := photos.Slug(name)
	all, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID != selfID && photos.Slug(other.Name) == slug {
			return ErrConflict
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in FormInput) (Dog, error) {
	in, err := s.validate(in)
	if err != nil {
		return Dog{}, err
	}
	if err := s.ensureNameFree(ctx, in.Name, ""); err != nil {
		return Dog{}, err
	}

	now := s.now().UTC()
	d := Dog{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Size:        in.Profile.Size,
		Sex:         sexColumn(in.Profile.Sex),
		Age:         in.Profile.Age,
		Description: profile.Encode(in.Profile, s.catalogs.Base()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	s.log.Info("dog created", map[string]any{"dog_id": d.ID, "name": d.Name})
	return d, nil
}

// Update regenera la descripción completa desde el formulario. Si cambia el
// nombre, las fotos se mueven a la carpeta nueva.
func (s *Service) Update(ctx context.Context, id string, in FormInput) (Dog, error) {
	in, err := s.validate(in)
	if err != nil {
		return Dog{}, err
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if err := s.ensureNameFree(ctx, in.Name, d.ID); err != nil {
		return Dog{}, err
	}

	oldSlug, newSlug := photos.Slug(d.Name), photos.Slug(in.Name)
	moved := oldSlug != newSlug
	if moved {
		if err := s.photos.Move(ctx, oldSlug, newSlug); err != nil {
			return Dog{}, fmt.Errorf("dogs: move photos: %w", err)
		}
		if d.PhotoURL != "" {
			list, err := s.photos.List(ctx, newSlug)
			if err != nil {
				s.moveBack(ctx, d.ID, newSlug, oldSlug)
				return Dog{}, err
			}
			d.PhotoURL = pickMain(list, path.Base(d.PhotoURL))
		}
	}

	d.Name = in.Name
	d.Size = in.Profile.Size
	d.Sex = sexColumn(in.Profile.Sex)
	d.Age = in.Profile.Age
	d.Description = profile.Encode(in.Profile, s.catalogs.Base())
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, d); err != nil {
		// el registro sigue con el nombre viejo: las fotos vuelven a su carpeta
		if moved {
			s.moveBack(ctx, d.ID, newSlug, oldSlug)
		}
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) moveBack(ctx context.Context, dogID, from, to string) {
	if err := s.photos.Move(ctx, from, to); err != nil {
		s.log.Error("photo move rollback failed", map[string]any{"dog_id": dogID, "from": from, "to": to, "err": err})
	}
}

func (s *Service) Get(ctx context.Context, id string) (Dog, error) {
	if strings.TrimSpace(id) == "" {
		return Dog{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Form decodifica la descripción sobre las columnas. Las líneas que no
// matchean ninguna regla se devuelven aparte para avisar en la UI.
func (s *Service) Form(ctx context.Context, id string) (FormView, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return FormView{}, err
	}

	defaults := profile.Default()
	defaults.Sex = profile.ParseSex(string(d.Sex))
	defaults.Age = d.Age
	if sz, ok := profile.ParseSize(string(d.Size)); ok {
		defaults.Size = sz
	}

	res := profile.DecodeDetailed(d.Description, s.catalogs.Base(), defaults)
	s.metrics.UnmatchedLines(len(res.Unmatched))

	list, err := s.photos.List(ctx, photos.Slug(d.Name))
	if err != nil {
		return FormView{}, err
	}
	return FormView{Dog: d, Profile: res.Profile, Unmatched: res.Unmatched, Photos: list}, nil
}

// ListAdmin lista todos (adoptados incluidos) con búsqueda por nombre.
func (s *Service) ListAdmin(ctx context.Context, query string) (AdminList, error) {
	all, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return AdminList{}, err
	}

	var c Counts
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Dog, 0, len(all))
	for _, d := range all {
		c.Total++
		if d.Adopted {
			c.Adopted++
		} else {
			c.Available++
		}
		if q == "" || strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return AdminList{Dogs: out, Counts: c}, nil
}

type PublicFilter struct {
	Size  string
	Sex   string
	Query string
}

// ListPublic: sólo disponibles, descripción traducida a loc.
func (s *Service) ListPublic(ctx context.Context, f PublicFilter, loc i18n.Locale) ([]Dog, error) {
	lf, err := publicFilter(f.Size, f.Sex)
	if err != nil {
		return nil, err
	}
	lf.Query = strings.TrimSpace(f.Query)
	return s.listLocalized(ctx, lf, loc)
}

// Featured devuelve los primeros perros disponibles para la portada.
func (s *Service) Featured(ctx context.Context, size string, loc i18n.Locale) ([]Dog, error) {
	lf, err := publicFilter(size, "")
	if err != nil {
		return nil, err
	}
	lf.Limit = FeaturedLimit
	return s.listLocalized(ctx, lf, loc)
}

func publicFilter(size, sex string) (ListFilter, error) {
	available := false
	lf := ListFilter{Adopted: &available}
	if size = strings.TrimSpace(size); size != "" {
		sz, ok := profile.ParseSize(size)
		if !ok {
			return ListFilter{}, ErrInvalidInput
		}
		lf.Size = sz
	}
	if sex = strings.TrimSpace(sex); sex != "" {
		sx := profile.ParseSex(sex)
		if sx == profile.SexUnknown {
			return ListFilter{}, ErrInvalidInput
		}
		lf.Sex = sx
	}
	return lf, nil
}

func (s *Service) listLocalized(ctx context.Context, lf ListFilter, loc i18n.Locale) ([]Dog, error) {
	items, err := s.repo.List(ctx, lf)
	if err != nil {
		return nil, err
	}
	target, err := s.catalogs.Catalog(loc)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Description = profile.Localize(items[i].Description, s.catalogs.Base(), target)
	}
	return items, nil
}

// PublicDetail devuelve el perro con la descripción traducida y sus fotos.
func (s *Service) PublicDetail(ctx context.Context, id string, loc i18n.Locale) (Detail, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	target, err := s.catalogs.Catalog(loc)
	if err != nil {
		return Detail{}, err
	}
	d.Description = profile.Localize(d.Description, s.catalogs.Base(), target)

	list, err := s.photos.List(ctx, photos.Slug(d.Name))
	if err != nil {
		return Detail{}, err
	}
	if len(list) > DetailPhotosLimit {
		list = list[:DetailPhotosLimit]
	}
	urls := make([]string, 0, len(list))
	for _, p := range list {
		urls = append(urls, p.URL)
	}
	return Detail{Dog: d, Photos: urls}, nil
}

func (s *Service) ToggleAdopted(ctx context.Context, id string) (Dog, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	d.Adopted = !d.Adopted
	d.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// Delete borra primero las fotos y después el registro.
func (s *Service) Delete(ctx context.Context, id string) error {
	d, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.photos.DeleteAll(ctx, photos.Slug(d.Name))
	if err != nil {
		return fmt.Errorf("dogs: delete photos: %w", err)
	}
	if err := s.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	s.log.Info("dog deleted", map[string]any{"dog_id": d.ID, "photos": n})
	return nil
}

// AddPhotos sube fotos; si el perro no tiene foto principal usa la primera subida.
func (s *Service) AddPhotos(ctx context.Context, id string, files []photos.Upload) ([]photos.Photo, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	uploaded, err := s.photos.Upload(ctx, photos.Slug(d.Name), files)
	if err != nil {
		return nil, err
	}
	if d.PhotoURL == "" {
		d.PhotoURL = photos.MainURL(uploaded)
		d.UpdatedAt = s.now().UTC()
		if err := s.repo.Update(ctx, d); err != nil {
			return nil, err
		}
	}
	return uploaded, nil
}

// DeletePhoto borra una foto; si era la principal, la reemplaza la primera que quede.
func (s *Service) DeletePhoto(ctx context.Context, id, name string) (Dog, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	slug := photos.Slug(d.Name)
	if err := s.photos.Delete(ctx, slug, name); err != nil {
		if errors.Is(err, photos.ErrInvalidInput) {
			return Dog{}, ErrInvalidInput
		}
		return Dog{}, err
	}

	if d.PhotoURL != "" && path.Base(d.PhotoURL) == name {
		list, err := s.photos.List(ctx, slug)
		if err != nil {
			return Dog{}, err
		}
		d.PhotoURL = photos.MainURL(list)
		d.UpdatedAt = s.now().UTC()
		if err := s.repo.Update(ctx, d); err != nil {
			return Dog{}, err
		}
	}
	return d, nil
}

// SetDescriptionByName lo usa la importación del sitio viejo. Texto vacío no pisa nada.
func (s *Service) SetDescriptionByName(ctx context.Context, name, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrInvalidInput
	}
	d, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	d.Description = description
	d.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, d)
}

func (s *Service) SetSexByName(ctx context.Context, name string, sex profile.Sex) error {
	if sexColumn(sex) == "" {
		return ErrInvalidInput
	}
	d, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	d.Sex = sex
	d.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, d)
}

// EnsureWithPhoto crea el perro si no existe (importación de fotos) y fija
// la foto principal. created=true si era nuevo.
func (s *Service) EnsureWithPhoto(ctx context.Context, name string, size profile.Size, photoURL string) (Dog, bool, error) {
	name = strings.TrimSpace(name)
	d, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		if photoURL != "" {
			d.PhotoURL = photoURL
			d.UpdatedAt = s.now().UTC()
			if err := s.repo.Update(ctx, d); err != nil {
				return Dog{}, false, err
			}
		}
		return d, false, nil
	case !errors.Is(err, ErrNotFound):
		return Dog{}, false, err
	}

	p := profile.Default()
	if size != "" {
		p.Size = size
	}
	d, err = s.Create(ctx, FormInput{Name: name, Profile: p})
	if err != nil {
		return Dog{}, false, err
	}
	if photoURL != "" {
		d.PhotoURL = photoURL
		if err := s.repo.Update(ctx, d); err != nil {
			return Dog{}, false, err
		}
	}
	return d, true, nil
}

func pickMain(list []photos.Photo, name string) string {
	for _, p := range list {
		if p.Name == name {
			return p.URL
		}
	}
	return photos.MainURL(list)
}

package legacy

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"shelter-dogs/internal/domain/dogs"
	"shelter-dogs/internal/domain/dogs/profile"
	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/platform/logger"
)

var reLocalPhoto = regexp.MustCompile(`(?i)\.(jpe?g|png|webp)$`)

// DogStore es lo que la importación necesita del dominio de perros.
type DogStore interface {
	SetDescriptionByName(ctx context.Context, name, description string) error
	SetSexByName(ctx context.Context, name string, sex profile.Sex) error
	EnsureWithPhoto(ctx context.Context, name string, size profile.Size, photoURL string) (dogs.Dog, bool, error)
}

type PhotoStore interface {
	PutNumbered(ctx context.Context, slug string, n int, body io.Reader) (photos.Photo, error)
	DeleteLegacyLogos(ctx context.Context, maxSize int64) ([]string, error)
}

type Importer struct {
	dogs   DogStore
	photos PhotoStore
	log    logger.Logger
}

func NewImporter(d DogStore, p PhotoStore, log logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{dogs: d, photos: p, log: log}
}

type Report struct {
	Updated int `json:"updated"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
	Photos  int `json:"photos"`
}

// ImportDescriptions pisa la descripción por nombre. Las vacías se saltan.
func (im *Importer) ImportDescriptions(ctx context.Context, recs []DescriptionRecord) Report {
	var rep Report
	for _, r := range recs {
		if strings.TrimSpace(r.Description) == "" {
			rep.Skipped++
			continue
		}
		if err := im.dogs.SetDescriptionByName(ctx, r.Name, r.Description); err != nil {
			im.log.Warn("description import failed", map[string]any{"dog": r.Name, "err": err})
			rep.Failed++
			continue
		}
		rep.Updated++
	}
	return rep
}

// BackfillSex completa la columna sex a partir del texto scrapeado.
func (im *Importer) BackfillSex(ctx context.Context, recs []DescriptionRecord) Report {
	var rep Report
	for _, r := range recs {
		sex := SexFromDescription(r.Description)
		if sex == "" {
			rep.Skipped++
			continue
		}
		if err := im.dogs.SetSexByName(ctx, r.Name, sex); err != nil {
			im.log.Warn("sex backfill failed", map[string]any{"dog": r.Name, "err": err})
			rep.Failed++
			continue
		}
		rep.Updated++
	}
	return rep
}

// UploadPhotos sube las fotos de cada carpeta local ({dir}/{porte}/{slug}) con
// la misma numeración local (photo-01, photo-02...) y crea el perro si falta.
func (im *Importer) UploadPhotos(ctx context.Context, dir string, entries []Entry) (Report, error) {
	var rep Report
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		files, err := localPhotos(DogDir(dir, e))
		if err != nil {
			return rep, err
		}
		if len(files) == 0 {
			im.log.Warn("no local photos", map[string]any{"dog": e.Name})
			rep.Skipped++
			continue
		}

		slug := photos.Slug(e.Name)
		mainURL := ""
		for i, f := range files {
			p, err := im.putFile(ctx, slug, i+1, f)
			if err != nil {
				im.log.Warn("photo upload failed", map[string]any{"dog": e.Name, "file": f, "err": err})
				continue
			}
			if mainURL == "" {
				mainURL = p.URL
			}
			rep.Photos++
		}
		if mainURL == "" {
			rep.Failed++
			continue
		}

		_, created, err := im.dogs.EnsureWithPhoto(ctx, e.Name, e.Size, mainURL)
		if err != nil {
			im.log.Warn("dog upsert failed", map[string]any{"dog": e.Name, "err": err})
			rep.Failed++
			continue
		}
		if created {
			rep.Created++
		} else {
			rep.Updated++
		}
	}
	return rep, nil
}

func (im *Importer) putFile(ctx context.Context, slug string, n int, path string) (photos.Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return photos.Photo{}, err
	}
	defer f.Close()
	return im.photos.PutNumbered(ctx, slug, n, f)
}

// DeleteLogos borra los logos colados como photo-02.jpg.
func (im *Importer) DeleteLogos(ctx context.Context) ([]string, error) {
	return im.photos.DeleteLegacyLogos(ctx, photos.LegacyLogoMaxSize)
}

func localPhotos(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() || !reLocalPhoto.MatchString(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

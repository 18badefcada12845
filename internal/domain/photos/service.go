package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"shelter-dogs/internal/platform/imaging"
	"shelter-dogs/internal/platform/logger"
	"shelter-dogs/internal/platform/metrics"
	"shelter-dogs/internal/ports/blob"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoUploads    = errors.New("no photo could be uploaded")
)

const (
	// LegacyLogoName era el logo del sitio viejo, colado como segunda foto.
	LegacyLogoName = "photo-02.jpg"
	// LegacyLogoMaxSize: por debajo de este tamaño un photo-02 es el logo.
	LegacyLogoMaxSize int64 = 20000

	maxAttempts  = 3
	retryBackoff = 500 * time.Millisecond
)

type Photo struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	URL    string `json:"url"`
	Size   int64  `json:"size"`
}

type Upload struct {
	Filename string
	Body     io.Reader
}

type Service struct {
	store   blob.Store
	log     logger.Logger
	metrics *metrics.Metrics

	convert func(io.Reader) ([]byte, error)
	sleep   func(context.Context, time.Duration) error
}

func NewService(store blob.Store, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		log:     log,
		metrics: m,
		convert: func(r io.Reader) ([]byte, error) {
			return imaging.ToJPEG(r, imaging.DefaultMaxWidth, imaging.DefaultQuality)
		},
		sleep: sleepCtx,
	}
}

// List devuelve las fotos del perro ordenadas por nombre.
func (s *Service) List(ctx context.Context, slug string) ([]Photo, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrInvalidInput
	}
	objs, err := s.store.List(ctx, slug+"/")
	if err != nil {
		return nil, err
	}

	out := make([]Photo, 0, len(objs))
	for _, o := range objs {
		name := path.Base(o.Key)
		if !isImage(name) {
			continue
		}
		out = append(out, Photo{
			Key:    o.Key,
			Name:   name,
			Number: NumberOf(name),
			URL:    s.store.PublicURL(o.Key),
			Size:   o.Size,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Upload convierte cada archivo a JPEG y lo guarda en el siguiente slot libre.
// Los archivos que fallan se saltan (se loguean); si fallan todos, ErrNoUploads.
func (s *Service) Upload(ctx context.Context, slug string, files []Upload) ([]Photo, error) {
	if strings.TrimSpace(slug) == "" || len(files) == 0 {
		return nil, ErrInvalidInput
	}

	existing, err := s.List(ctx, slug)
	if err != nil {
		return nil, err
	}
	maxNum := 0
	for _, p := range existing {
		if p.Number > maxNum {
			maxNum = p.Number
		}
	}

	slot := NextSlot(maxNum)
	out := make([]Photo, 0, len(files))
	for _, f := range files {
		name := Filename(SlotToNumber(slot))
		p, err := s.put(ctx, slug, name, f.Body)
		if err != nil {
			s.log.Warn("photo upload failed", map[string]any{"slug": slug, "file": f.Filename, "err": err})
			continue
		}
		out = append(out, p)
		slot++
	}

	if len(out) == 0 {
		return nil, ErrNoUploads
	}
	return out, nil
}

// PutNumbered sube con un número fijo (importación desde carpetas locales
// que ya vienen numeradas).
func (s *Service) PutNumbered(ctx context.Context, slug string, n int, body io.Reader) (Photo, error) {
	if strings.TrimSpace(slug) == "" || n <= 0 {
		return Photo{}, ErrInvalidInput
	}
	return s.put(ctx, slug, Filename(n), body)
}

func (s *Service) put(ctx context.Context, slug, name string, body io.Reader) (Photo, error) {
	data, err := s.convert(body)
	if err != nil {
		s.metrics.PhotoUploaded(false)
		return Photo{}, err
	}

	key := Key(slug, name)
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = s.store.Put(ctx, key, bytes.NewReader(data), "image/jpeg")
		if lastErr == nil {
			break
		}
		if attempt == maxAttempts {
			break
		}
		s.log.Debug("photo put retry", map[string]any{"key": key, "attempt": attempt, "err": lastErr})
		if err := s.sleep(ctx, retryBackoff*time.Duration(attempt)); err != nil {
			lastErr = err
			break
		}
	}
	if lastErr != nil {
		s.metrics.PhotoUploaded(false)
		return Photo{}, fmt.Errorf("photos: put %s: %w", key, lastErr)
	}

	s.metrics.PhotoUploaded(true)
	return Photo{
		Key:    key,
		Name:   name,
		Number: NumberOf(name),
		URL:    s.store.PublicURL(key),
		Size:   int64(len(data)),
	}, nil
}

// Delete borra una foto. El nombre no puede traer separadores.
func (s *Service) Delete(ctx context.Context, slug, name string) error {
	if strings.TrimSpace(slug) == "" || !validName(name) {
		return ErrInvalidInput
	}
	return s.store.Delete(ctx, Key(slug, name))
}

// DeleteAll borra todas las fotos del perro y devuelve cuántas eran.
func (s *Service) DeleteAll(ctx context.Context, slug string) (int, error) {
	list, err := s.List(ctx, slug)
	if err != nil {
		return 0, err
	}
	if len(list) == 0 {
		return 0, nil
	}
	keys := make([]string, 0, len(list))
	for _, p := range list {
		keys = append(keys, p.Key)
	}
	if err := s.store.Delete(ctx, keys...); err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Move copia las fotos de un slug a otro (renombre del perro) y borra las viejas.
func (s *Service) Move(ctx context.Context, from, to string) error {
	if from == to {
		return nil
	}
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return ErrInvalidInput
	}
	list, err := s.List(ctx, from)
	if err != nil {
		return err
	}

	moved := make([]string, 0, len(list))
	for _, p := range list {
		if err := s.copy(ctx, p.Key, Key(to, p.Name)); err != nil {
			return err
		}
		moved = append(moved, p.Key)
	}
	if len(moved) == 0 {
		return nil
	}
	return s.store.Delete(ctx, moved...)
}

func (s *Service) copy(ctx context.Context, src, dst string) error {
	rc, err := s.store.Get(ctx, src)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := s.store.Put(ctx, dst, rc, "image/jpeg"); err != nil {
		return fmt.Errorf("photos: copy %s -> %s: %w", src, dst, err)
	}
	return nil
}

// DeleteLegacyLogos borra los photo-02.jpg más chicos que maxSize en todo el
// bucket. Devuelve las keys borradas.
func (s *Service) DeleteLegacyLogos(ctx context.Context, maxSize int64) ([]string, error) {
	if maxSize <= 0 {
		maxSize = LegacyLogoMaxSize
	}
	objs, err := s.store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, o := range objs {
		if path.Base(o.Key) == LegacyLogoName && o.Size < maxSize {
			keys = append(keys, o.Key)
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}
	if err := s.store.Delete(ctx, keys...); err != nil {
		return nil, err
	}
	s.log.Info("legacy logos deleted", map[string]any{"count": len(keys)})
	return keys, nil
}

// MainURL: URL de la primera foto, "" si no hay.
func MainURL(list []Photo) string {
	if len(list) == 0 {
		return ""
	}
	return list[0].URL
}

func validName(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return isImage(name)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

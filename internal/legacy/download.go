package legacy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/platform/httpclient"
	"shelter-dogs/internal/platform/logger"
)

var reExt = regexp.MustCompile(`(?i)\.(jpg|jpeg|png)`)

// Downloader baja fichas y fotos a {Dir}/{porte}/{slug}/.
type Downloader struct {
	HTTP        *httpclient.Client
	Log         logger.Logger
	Dir         string
	Concurrency int
	Retry       httpclient.Retry

	now func() time.Time
}

func NewDownloader(dir string, log logger.Logger) *Downloader {
	return &Downloader{
		HTTP:        httpclient.New(DefaultTimeout),
		Log:         log,
		Dir:         dir,
		Concurrency: 3,
		Retry:       httpclient.Retry{Attempts: 3, Wait: time.Second},
		now:         time.Now,
	}
}

type ManifestDog struct {
	Name   string `json:"name"`
	Size   string `json:"size"`
	Photos int    `json:"photos"`
	URL    string `json:"url"`
}

type Manifest struct {
	DownloadedAt time.Time     `json:"downloadedAt"`
	TotalDogs    int           `json:"totalDogs"`
	TotalPhotos  int           `json:"totalPhotos"`
	Failures     []string      `json:"failures"`
	Dogs         []ManifestDog `json:"dogs"`
}

// DogDir es la carpeta local de un perro.
func (d *Downloader) DogDir(e Entry) string {
	return DogDir(d.Dir, e)
}

func DogDir(base string, e Entry) string {
	return filepath.Join(base, SizeFolder(e.Size), photos.Slug(e.Name))
}

// Download procesa todas las entradas y escribe manifest.json.
func (d *Downloader) Download(ctx context.Context, entries []Entry) (Manifest, error) {
	for _, f := range SizeFolders {
		if err := os.MkdirAll(filepath.Join(d.Dir, f), 0o755); err != nil {
			return Manifest{}, err
		}
	}

	results := make([]*ManifestDog, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}
	for i, e := range entries {
		g.Go(func() error {
			md, err := d.downloadDog(gctx, e)
			if err != nil {
				d.Log.Warn("dog download failed", map[string]any{"dog": e.Name, "err": err})
				return nil
			}
			results[i] = md
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Manifest{}, err
	}

	m := Manifest{DownloadedAt: d.now().UTC(), Failures: []string{}, Dogs: []ManifestDog{}}
	for i, r := range results {
		if r == nil {
			m.Failures = append(m.Failures, entries[i].Name)
			continue
		}
		m.Dogs = append(m.Dogs, *r)
		m.TotalPhotos += r.Photos
	}
	m.TotalDogs = len(m.Dogs)

	if err := WriteJSON(filepath.Join(d.Dir, "manifest.json"), m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

var errNoData = errors.New("no photos nor description found")

func (d *Downloader) downloadDog(ctx context.Context, e Entry) (*ManifestDog, error) {
	page, err := d.HTTP.GetBytes(ctx, e.URL, d.Retry)
	if err != nil {
		return nil, err
	}
	urls := ExtractPhotoURLs(string(page))
	text, err := HTMLToText(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	desc := ExtractDescription(text)
	if len(urls) == 0 && desc == "" {
		return nil, errNoData
	}

	dir := d.DogDir(e)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if desc == "" {
		desc = "(sem descrição)"
	}
	info := strings.Join([]string{
		"Nome: " + e.Name,
		"Tamanho: " + SizeFolder(e.Size),
		"URL: " + e.URL,
		"",
		desc,
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, "info.txt"), []byte(info), 0o644); err != nil {
		return nil, err
	}

	got := 0
	for i, u := range urls {
		name := fmt.Sprintf("photo-%02d.%s", i+1, photoExt(u))
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			got++
			continue
		}
		b, err := d.HTTP.GetBytes(ctx, u, d.Retry)
		if err != nil {
			d.Log.Warn("photo download failed", map[string]any{"dog": e.Name, "url": u, "err": err})
			continue
		}
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return nil, err
		}
		got++
	}

	return &ManifestDog{Name: e.Name, Size: string(e.Size), Photos: got, URL: e.URL}, nil
}

func photoExt(u string) string {
	m := reExt.FindStringSubmatch(u)
	if m == nil {
		return "jpg"
	}
	return strings.ToLower(m[1])
}

package legacy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-dogs/internal/domain/dogs/profile"
	"shelter-dogs/internal/platform/httpclient"
	"shelter-dogs/internal/platform/logger"
)

// siteTransport sirve respuestas fijas por URL, sin red.
type siteTransport map[string]string

func (s siteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	body, ok := s[r.URL.String()]
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
		body = "not found"
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    r,
	}, nil
}

func TestDownloader_WritesFoldersInfoAndManifest(t *testing.T) {
	site := siteTransport{
		"https://site.test/joia":                                                        dogPage,
		"https://static.tildacdn.com/tild3131-aaaa/IMG_1.JPG":                           "jpeg-1",
		"https://static.tildacdn.com/tild6330-3638-4539-b061-306333333230/IMG_5771.JPG": "jpeg-2",
		"https://site.test/vazio":                                                       "<p>nada</p>",
	}
	dir := t.TempDir()
	d := NewDownloader(dir, logger.Nop())
	d.HTTP = httpclient.NewWithTransport(time.Second, site)
	d.Retry = httpclient.Retry{Attempts: 1}
	d.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	entries := []Entry{
		{Name: "Jóia", URL: "https://site.test/joia", Size: profile.SizeMedium},
		{Name: "Vazio", URL: "https://site.test/vazio", Size: profile.SizeSmall},
	}
	m, err := d.Download(context.Background(), entries)
	require.NoError(t, err)

	assert.Equal(t, 1, m.TotalDogs)
	assert.Equal(t, 2, m.TotalPhotos)
	assert.Equal(t, []string{"Vazio"}, m.Failures)

	base := filepath.Join(dir, "medios", "joia")
	b, err := os.ReadFile(filepath.Join(base, "photo-02.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-2", string(b))

	info, err := os.ReadFile(filepath.Join(base, "info.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(info), "Nome: Jóia\nTamanho: medios\n"))
	assert.Contains(t, string(info), "Sexo: Feminino")

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	var onDisk Manifest
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, m.TotalPhotos, onDisk.TotalPhotos)
	assert.True(t, onDisk.DownloadedAt.Equal(m.DownloadedAt))

	// segunda corrida: las fotos ya existen y no se vuelven a pedir
	delete(site, "https://static.tildacdn.com/tild3131-aaaa/IMG_1.JPG")
	m, err = d.Download(context.Background(), entries[:1])
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalPhotos)
}

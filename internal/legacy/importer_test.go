package legacy

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blobmem "shelter-dogs/internal/adapters/blob/memory"
	"shelter-dogs/internal/adapters/storage/memory"
	"shelter-dogs/internal/domain/dogs"
	"shelter-dogs/internal/domain/dogs/profile"
	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/i18n"
	"shelter-dogs/internal/platform/logger"
)

type fixture struct {
	dogs   *dogs.Service
	photos *photos.Service
	blobs  *blobmem.Store
	imp    *Importer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	blobs := blobmem.NewStore("https://cdn.test/dog-photos")
	ph := photos.NewService(blobs, logger.Nop(), nil)
	svc := dogs.NewService(memory.NewDogRepo(), ph, i18n.MustLoad(), logger.Nop(), nil)
	return fixture{dogs: svc, photos: ph, blobs: blobs, imp: NewImporter(svc, ph, logger.Nop())}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestImporter_DescriptionsAndSex(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.dogs.Create(ctx, dogs.FormInput{Name: "Jóia", Profile: profile.Default()})
	require.NoError(t, err)

	recs := []DescriptionRecord{
		{Name: "Jóia", Description: "Sexo: Feminino\nIdade: 3 anos"},
		{Name: "Sem Texto", Description: ""},
		{Name: "Fantasma", Description: "Sexo: Masculino"},
	}

	rep := f.imp.ImportDescriptions(ctx, recs)
	assert.Equal(t, Report{Updated: 1, Skipped: 1, Failed: 1}, rep)

	rep = f.imp.BackfillSex(ctx, recs)
	assert.Equal(t, Report{Updated: 1, Skipped: 1, Failed: 1}, rep)

	list, err := f.dogs.ListAdmin(ctx, "jó")
	require.NoError(t, err)
	require.Len(t, list.Dogs, 1)
	assert.Equal(t, profile.SexFemale, list.Dogs[0].Sex)
	assert.Equal(t, "Sexo: Feminino\nIdade: 3 anos", list.Dogs[0].Description)
}

func TestImporter_UploadPhotosCreatesDogsAndKeepsLocalNumbering(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	dir := t.TempDir()

	tim := Entry{Name: "Tim Tim", Size: profile.SizeLarge}
	base := DogDir(dir, tim)
	writePNG(t, filepath.Join(base, "photo-01.png"), 1600, 900)
	writePNG(t, filepath.Join(base, "photo-02.png"), 40, 40)
	require.NoError(t, os.WriteFile(filepath.Join(base, "info.txt"), []byte("Nome: Tim Tim"), 0o644))

	rep, err := f.imp.UploadPhotos(ctx, dir, []Entry{tim, {Name: "Sem Fotos", Size: profile.SizeSmall}})
	require.NoError(t, err)
	assert.Equal(t, Report{Created: 1, Skipped: 1, Photos: 2}, rep)

	list, err := f.photos.List(ctx, "tim-tim")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "photo-01.jpg", list[0].Name)
	assert.Equal(t, "photo-02.jpg", list[1].Name)

	admin, err := f.dogs.ListAdmin(ctx, "tim")
	require.NoError(t, err)
	require.Len(t, admin.Dogs, 1)
	assert.Equal(t, profile.SizeLarge, admin.Dogs[0].Size)
	assert.Equal(t, "https://cdn.test/dog-photos/tim-tim/photo-01.jpg", admin.Dogs[0].PhotoURL)

	// el photo-02 diminuto es el logo del sitio viejo
	deleted, err := f.imp.DeleteLogos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tim-tim/photo-02.jpg"}, deleted)

	// segunda pasada: actualiza, no duplica
	rep, err = f.imp.UploadPhotos(ctx, dir, []Entry{tim})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Updated)
	assert.Equal(t, 0, rep.Created)
}

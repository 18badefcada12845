package dogs_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
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

func newService(t *testing.T) (*dogs.Service, *photos.Service) {
	t.Helper()
	ph := photos.NewService(blobmem.NewStore("https://cdn.test"), logger.Nop(), nil)
	return dogs.NewService(memory.NewDogRepo(), ph, i18n.MustLoad(), logger.Nop(), nil), ph
}

func pngUpload(t *testing.T) photos.Upload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10))))
	return photos.Upload{Filename: "x.png", Body: &buf}
}

func fullProfile() profile.Profile {
	p := profile.Default()
	p.Sex = profile.SexMale
	p.Age = "2 anos"
	p.EntryDate = "03/2024"
	p.Breed = "Rafeiro"
	p.Size = profile.SizeSmall
	p.Personality = "Brincalhão"
	p.Sociability = profile.Social{
		Humans:     profile.Compatible,
		MaleDogs:   profile.Incompatible,
		FemaleDogs: profile.Compatible,
		Cats:       profile.Unknown,
	}
	p.Medical = profile.Medical{Chipped: true, Vaccinated: true}
	p.Story = "Encontrado na estrada."
	return p
}

func TestService_CreateThenFormRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	d, err := svc.Create(ctx, dogs.FormInput{Name: "  Bolinha ", Profile: fullProfile()})
	require.NoError(t, err)
	assert.Equal(t, "Bolinha", d.Name)
	assert.Equal(t, profile.SizeSmall, d.Size)
	assert.Equal(t, profile.SexMale, d.Sex)
	assert.Equal(t, "2 anos", d.Age)
	assert.False(t, d.Adopted)
	assert.True(t, strings.HasPrefix(d.Description, "Sexo: Masculino\n"))

	v, err := svc.Form(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Unmatched)
	if diff := cmp.Diff(fullProfile(), v.Profile); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Create(ctx, dogs.FormInput{Name: "   ", Profile: profile.Default()})
	assert.ErrorIs(t, err, dogs.ErrInvalidInput)

	p := profile.Default()
	p.Size = "huge"
	_, err = svc.Create(ctx, dogs.FormInput{Name: "Rex", Profile: p})
	assert.ErrorIs(t, err, dogs.ErrInvalidInput)

	p.Size = ""
	d, err := svc.Create(ctx, dogs.FormInput{Name: "Rex", Profile: p})
	require.NoError(t, err)
	assert.Equal(t, profile.SizeMedium, d.Size)
	assert.Equal(t, profile.Sex(""), d.Sex)

	_, err = svc.Create(ctx, dogs.FormInput{Name: "rex", Profile: p})
	assert.ErrorIs(t, err, dogs.ErrConflict)
}

func TestService_FormUsesColumnsAndReportsProse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	d, err := svc.Create(ctx, dogs.FormInput{Name: "Mel", Profile: profile.Default()})
	require.NoError(t, err)
	// texto legado importado tal cual del sitio viejo
	require.NoError(t, svc.SetDescriptionByName(ctx, "mel", "Sexo: Feminino\nIdade: 9 anos\nMuito meiga.\nGosta de passear."))
	require.NoError(t, svc.SetSexByName(ctx, "Mel", profile.SexFemale))

	v, err := svc.Form(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.SexFemale, v.Profile.Sex)
	// la edad sale de la columna, no del texto
	assert.Equal(t, "", v.Profile.Age)
	assert.Equal(t, "Muito meiga. Gosta de passear.", v.Profile.Story)
	assert.Equal(t, []string{"Muito meiga.", "Gosta de passear."}, v.Unmatched)
}

func TestService_PublicListingFiltersAndLocalizes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	mk := func(name string, size profile.Size, sex profile.Sex) dogs.Dog {
		p := profile.Default()
		p.Size, p.Sex = size, sex
		d, err := svc.Create(ctx, dogs.FormInput{Name: name, Profile: p})
		require.NoError(t, err)
		return d
	}
	mk("Zeca", profile.SizeLarge, profile.SexMale)
	adopted := mk("Amora", profile.SizeSmall, profile.SexFemale)
	mk("Bidu", profile.SizeSmall, profile.SexMale)
	mk("Canela", profile.SizeSmall, profile.SexFemale)

	_, err := svc.ToggleAdopted(ctx, adopted.ID)
	require.NoError(t, err)

	all, err := svc.ListPublic(ctx, dogs.PublicFilter{}, i18n.LocaleEN)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bidu", all[0].Name)
	assert.Contains(t, all[0].Description, "Sex: Male")
	assert.Contains(t, all[0].Description, "Not sure if good with people")

	small, err := svc.ListPublic(ctx, dogs.PublicFilter{Size: "small", Sex: "female"}, i18n.LocalePT)
	require.NoError(t, err)
	require.Len(t, small, 1)
	assert.Equal(t, "Canela", small[0].Name)

	q, err := svc.ListPublic(ctx, dogs.PublicFilter{Query: "ZE"}, i18n.LocalePT)
	require.NoError(t, err)
	require.Len(t, q, 1)

	_, err = svc.ListPublic(ctx, dogs.PublicFilter{Sex: "other"}, i18n.LocalePT)
	assert.ErrorIs(t, err, dogs.ErrInvalidInput)

	admin, err := svc.ListAdmin(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, dogs.Counts{Total: 4, Available: 3, Adopted: 1}, admin.Counts)
}

func TestService_FeaturedLimit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	for _, n := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		_, err := svc.Create(ctx, dogs.FormInput{Name: "Dog " + n, Profile: profile.Default()})
		require.NoError(t, err)
	}
	got, err := svc.Featured(ctx, "", i18n.LocalePT)
	require.NoError(t, err)
	require.Len(t, got, dogs.FeaturedLimit)
	assert.Equal(t, "Dog A", got[0].Name)
}

func TestService_PhotosLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, ph := newService(t)

	d, err := svc.Create(ctx, dogs.FormInput{Name: "Jóia", Profile: profile.Default()})
	require.NoError(t, err)

	up, err := svc.AddPhotos(ctx, d.ID, []photos.Upload{pngUpload(t), pngUpload(t)})
	require.NoError(t, err)
	require.Len(t, up, 2)

	d, err = svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/joia/photo-01.jpg", d.PhotoURL)

	// renombrar mueve la carpeta y conserva la principal
	d, err = svc.Update(ctx, d.ID, dogs.FormInput{Name: "Jóia Bela", Profile: profile.Default()})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/joia-bela/photo-01.jpg", d.PhotoURL)
	old, err := ph.List(ctx, "joia")
	require.NoError(t, err)
	assert.Empty(t, old)

	// borrar la principal promueve la siguiente
	d, err = svc.DeletePhoto(ctx, d.ID, "photo-01.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/joia-bela/photo-03.jpg", d.PhotoURL)

	_, err = svc.DeletePhoto(ctx, d.ID, "../x.jpg")
	assert.ErrorIs(t, err, dogs.ErrInvalidInput)

	detail, err := svc.PublicDetail(ctx, d.ID, i18n.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.test/joia-bela/photo-03.jpg"}, detail.Photos)

	require.NoError(t, svc.Delete(ctx, d.ID))
	left, err := ph.List(ctx, "joia-bela")
	require.NoError(t, err)
	assert.Empty(t, left)
	_, err = svc.Get(ctx, d.ID)
	assert.ErrorIs(t, err, dogs.ErrNotFound)
}

func TestService_EnsureWithPhoto(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	d, created, err := svc.EnsureWithPhoto(ctx, "Capitão", profile.SizeLarge, "https://cdn.test/capitao/photo-01.jpg")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, profile.SizeLarge, d.Size)

	again, created, err := svc.EnsureWithPhoto(ctx, "capitão", profile.SizeLarge, "https://cdn.test/capitao/photo-03.jpg")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, d.ID, again.ID)
	assert.Equal(t, "https://cdn.test/capitao/photo-03.jpg", again.PhotoURL)
}

func TestService_RejectsNamesSharingPhotoFolder(t *testing.T) {
	ctx := context.Background()
	svc, ph := newService(t)

	bobi, err := svc.Create(ctx, dogs.FormInput{Name: "Bóbi", Profile: profile.Default()})
	require.NoError(t, err)
	_, err = svc.AddPhotos(ctx, bobi.ID, []photos.Upload{pngUpload(t)})
	require.NoError(t, err)

	for _, name := range []string{"Bobi", "BOBI", "Bobi!", " bóbi "} {
		_, err := svc.Create(ctx, dogs.FormInput{Name: name, Profile: profile.Default()})
		assert.ErrorIs(t, err, dogs.ErrConflict, name)
	}

	rex, err := svc.Create(ctx, dogs.FormInput{Name: "Rex", Profile: profile.Default()})
	require.NoError(t, err)
	_, err = svc.Update(ctx, rex.ID, dogs.FormInput{Name: "Bobi?", Profile: profile.Default()})
	assert.ErrorIs(t, err, dogs.ErrConflict)

	// mismo slug que el propio perro: no es conflicto
	_, err = svc.Update(ctx, bobi.ID, dogs.FormInput{Name: "Bóbi!", Profile: profile.Default()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rex.ID))
	left, err := ph.List(ctx, "bobi")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

// failingUpdates es un repo cuyo Update falla siempre.
type failingUpdates struct {
	dogs.Repository
}

func (failingUpdates) Update(context.Context, dogs.Dog) error {
	return errors.New("db down")
}

func TestService_UpdateFailureKeepsPhotosInPlace(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDogRepo()
	ph := photos.NewService(blobmem.NewStore("https://cdn.test"), logger.Nop(), nil)
	svc := dogs.NewService(repo, ph, i18n.MustLoad(), logger.Nop(), nil)

	d, err := svc.Create(ctx, dogs.FormInput{Name: "Luna", Profile: profile.Default()})
	require.NoError(t, err)
	_, err = svc.AddPhotos(ctx, d.ID, []photos.Upload{pngUpload(t), pngUpload(t)})
	require.NoError(t, err)

	broken := dogs.NewService(failingUpdates{repo}, ph, i18n.MustLoad(), logger.Nop(), nil)
	_, err = broken.Update(ctx, d.ID, dogs.FormInput{Name: "Luna Nova", Profile: profile.Default()})
	require.Error(t, err)

	moved, err := ph.List(ctx, "luna-nova")
	require.NoError(t, err)
	assert.Empty(t, moved)

	v, err := svc.Form(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luna", v.Dog.Name)
	require.Len(t, v.Photos, 2)
	assert.Equal(t, v.Photos[0].URL, v.Dog.PhotoURL)
}

package photos

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-dogs/internal/adapters/blob/memory"
	"shelter-dogs/internal/platform/logger"
	"shelter-dogs/internal/ports/blob"
)

// flakyStore falla los primeros N Put.
type flakyStore struct {
	blob.Store
	failures int
	puts     int
}

func (f *flakyStore) Put(ctx context.Context, key string, r io.Reader, ct string) error {
	f.puts++
	if f.failures > 0 {
		f.failures--
		return errors.New("transient")
	}
	return f.Store.Put(ctx, key, r, ct)
}

func newTestService(store blob.Store) *Service {
	s := NewService(store, logger.Nop(), nil)
	// sin decodificar imágenes reales
	s.convert = func(r io.Reader) ([]byte, error) {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if bytes.HasPrefix(b, []byte("bad")) {
			return nil, errors.New("not an image")
		}
		return b, nil
	}
	s.sleep = func(context.Context, time.Duration) error { return nil }
	return s
}

func upload(name, body string) Upload {
	return Upload{Filename: name, Body: strings.NewReader(body)}
}

func TestService_UploadNumbersSkipLogoSlot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore("https://cdn.example")
	svc := newTestService(store)

	got, err := svc.Upload(ctx, "rex", []Upload{upload("a.jpg", "a"), upload("b.png", "b"), upload("c.webp", "c")})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "photo-01.jpg", got[0].Name)
	assert.Equal(t, "photo-03.jpg", got[1].Name)
	assert.Equal(t, "photo-04.jpg", got[2].Name)
	assert.Equal(t, "https://cdn.example/rex/photo-01.jpg", got[0].URL)
	assert.Equal(t, "image/jpeg", store.ContentType("rex/photo-03.jpg"))

	more, err := svc.Upload(ctx, "rex", []Upload{upload("d.jpg", "d")})
	require.NoError(t, err)
	assert.Equal(t, "photo-05.jpg", more[0].Name)

	list, err := svc.List(ctx, "rex")
	require.NoError(t, err)
	assert.Len(t, list, 4)
	assert.Equal(t, got[0].URL, MainURL(list))
}

func TestService_UploadSkipsBadFiles(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memory.NewStore(""))

	got, err := svc.Upload(ctx, "mel", []Upload{upload("x.jpg", "bad"), upload("y.jpg", "ok")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "photo-01.jpg", got[0].Name)

	_, err = svc.Upload(ctx, "mel", []Upload{upload("z.jpg", "bad")})
	assert.ErrorIs(t, err, ErrNoUploads)

	_, err = svc.Upload(ctx, "", []Upload{upload("z.jpg", "ok")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_PutRetries(t *testing.T) {
	ctx := context.Background()

	flaky := &flakyStore{Store: memory.NewStore(""), failures: 2}
	svc := newTestService(flaky)
	_, err := svc.PutNumbered(ctx, "rex", 1, strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, 3, flaky.puts)

	broken := &flakyStore{Store: memory.NewStore(""), failures: 10}
	svc = newTestService(broken)
	_, err = svc.PutNumbered(ctx, "rex", 1, strings.NewReader("img"))
	assert.Error(t, err)
	assert.Equal(t, maxAttempts, broken.puts)
}

func TestService_DeleteValidatesName(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore("")
	svc := newTestService(store)
	_, err := svc.PutNumbered(ctx, "rex", 1, strings.NewReader("img"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "rex", "../other/photo-01.jpg"), ErrInvalidInput)
	assert.ErrorIs(t, svc.Delete(ctx, "rex", "notes.txt"), ErrInvalidInput)
	require.NoError(t, svc.Delete(ctx, "rex", "photo-01.jpg"))

	list, err := svc.List(ctx, "rex")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_MoveAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore("")
	svc := newTestService(store)
	_, err := svc.Upload(ctx, "joia", []Upload{upload("a.jpg", "a"), upload("b.jpg", "b")})
	require.NoError(t, err)

	require.NoError(t, svc.Move(ctx, "joia", "joia-bela"))
	old, err := svc.List(ctx, "joia")
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := svc.List(ctx, "joia-bela")
	require.NoError(t, err)
	require.Len(t, moved, 2)
	assert.Equal(t, []string{"photo-01.jpg", "photo-03.jpg"}, []string{moved[0].Name, moved[1].Name})

	n, err := svc.DeleteAll(ctx, "joia-bela")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_DeleteLegacyLogos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore("")
	require.NoError(t, store.Put(ctx, "rex/photo-02.jpg", strings.NewReader("tiny"), "image/jpeg"))
	require.NoError(t, store.Put(ctx, "mel/photo-02.jpg", bytes.NewReader(make([]byte, 30000)), "image/jpeg"))
	require.NoError(t, store.Put(ctx, "mel/photo-01.jpg", strings.NewReader("tiny"), "image/jpeg"))

	svc := newTestService(store)
	keys, err := svc.DeleteLegacyLogos(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"rex/photo-02.jpg"}, keys)

	left, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, left, 2)
}

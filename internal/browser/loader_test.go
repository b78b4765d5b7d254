package browser

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T, settings Settings) *Loader {
	t.Helper()
	loader := NewLoader(settings)
	gock.InterceptClient(loader.HTTPClient())
	t.Cleanup(func() {
		gock.RestoreClient(loader.HTTPClient())
		gock.Off()
	})
	return loader
}

func TestLoaderLoadHTTP(t *testing.T) {
	loader := newTestLoader(t, DefaultSettings())
	gock.New(testOrigin).
		Get("/guides").
		MatchHeader("Accept", "text/html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString("<h1>가이드</h1>")

	var progress []int
	page, err := loader.Load(context.Background(), testOrigin+"/guides", func(p int) {
		progress = append(progress, p)
	})
	require.NoError(t, err)

	assert.Equal(t, "<h1>가이드</h1>", string(page.Body))
	assert.Equal(t, testOrigin+"/guides", page.URL)
	require.NotEmpty(t, progress)
	assert.Equal(t, progressConnected, progress[0])
	assert.Equal(t, progressBodyRead, progress[len(progress)-1])
	assert.True(t, gock.IsDone())
}

func TestLoaderHTTPError(t *testing.T) {
	loader := newTestLoader(t, DefaultSettings())
	gock.New(testOrigin).Get("/missing").Reply(404).BodyString("not found")

	_, err := loader.Load(context.Background(), testOrigin+"/missing", nil)
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestLoaderRefusesFileAccess(t *testing.T) {
	loader := NewLoader(DefaultSettings())

	_, err := loader.Load(context.Background(), "file:///data/data/kr.iwneis.neishelper/shared_prefs/x.xml", nil)
	assert.ErrorIs(t, err, ErrFileAccessDenied)
}

func TestLoaderAllowsFileAccessWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>offline</p>"), 0o644))

	settings := DefaultSettings()
	settings.AllowFileAccess = true
	loader := NewLoader(settings)

	page, err := loader.Load(context.Background(), "file://"+path, nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>offline</p>", string(page.Body))
}

func TestLoaderUnsupportedScheme(t *testing.T) {
	loader := NewLoader(DefaultSettings())

	_, err := loader.Load(context.Background(), "ftp://example.com/file", nil)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestReadWithProgress(t *testing.T) {
	body := bytes.Repeat([]byte("a"), readChunkSize*4)

	var progress []int
	data, err := readWithProgress(bytes.NewReader(body), int64(len(body)), func(p int) {
		progress = append(progress, p)
	})
	require.NoError(t, err)
	assert.Len(t, data, len(body))

	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}
	assert.Equal(t, progressBodyRead, progress[len(progress)-1])

	// Unknown length only reports the end of the range
	progress = nil
	_, err = readWithProgress(bytes.NewReader(body), -1, func(p int) {
		progress = append(progress, p)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{progressBodyRead}, progress)
}

func TestLoaderOffersRedirects(t *testing.T) {
	loader := newTestLoader(t, DefaultSettings())
	gock.New(testOrigin).Get("/out").Reply(302).SetHeader("Location", "https://www.neis.go.kr/")

	var offered []string
	ctx := WithRedirectHandler(context.Background(), func(target string) bool {
		offered = append(offered, target)
		return true
	})

	_, err := loader.Load(ctx, testOrigin+"/out", nil)
	assert.ErrorIs(t, err, ErrRedirectHandled)
	assert.Equal(t, []string{"https://www.neis.go.kr/"}, offered)
}

func TestLoaderFollowsUnhandledRedirects(t *testing.T) {
	loader := newTestLoader(t, DefaultSettings())
	gock.New(testOrigin).Get("/old").Reply(301).SetHeader("Location", testOrigin+"/new")
	gock.New(testOrigin).Get("/new").Reply(200).BodyString("<p>new</p>")

	ctx := WithRedirectHandler(context.Background(), func(string) bool { return false })
	page, err := loader.Load(ctx, testOrigin+"/old", nil)
	require.NoError(t, err)
	assert.Equal(t, testOrigin+"/new", page.URL)
}

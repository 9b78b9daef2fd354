package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storbeck/dictforge/internal/classify"
)

var sampleURLs = []string{
	"http://example.com/img/logo.png",
	"http://example.com/admin/login.php",
	"http://example.com/api/v1/users",
	"http://example.com/js/main.js",
	"http://example.com/css/style.css",
	"http://example.com/beta/dashboard",
}

var sampleTerms = []string{"admin", "api", "beta", "dashboard", "login.php", "users", "v1"}

func newBuilder() *Builder {
	return NewBuilder(classify.Default())
}

func TestSingleSource(t *testing.T) {
	b := newBuilder()
	b.Add(sampleURLs)

	assert.Equal(t, sampleTerms, b.Terms())
	assert.Equal(t, len(sampleTerms), b.Len())
}

func TestEmptySourceIgnored(t *testing.T) {
	b := newBuilder()
	b.Add(nil)
	b.Add(sampleURLs)

	assert.Equal(t, sampleTerms, b.Terms())
}

func TestOrderInsensitive(t *testing.T) {
	first := []string{"http://a.com/zeta/one", "http://a.com/alpha/two"}
	second := []string{"http://a.com/mid/three"}

	b1 := newBuilder()
	b1.Add(first)
	b1.Add(second)

	b2 := newBuilder()
	b2.Add(second)
	b2.Add(first)

	assert.Equal(t, b1.Terms(), b2.Terms())
}

func TestIdempotent(t *testing.T) {
	b1 := newBuilder()
	b1.Add(sampleURLs)

	b2 := newBuilder()
	b2.Add(sampleURLs)

	assert.Equal(t, b1.Terms(), b2.Terms())
}

func TestDedupAcrossSources(t *testing.T) {
	b := newBuilder()
	b.Add([]string{"http://example.com/admin/login.php"})
	b.Add([]string{"http://example.com/admin/login.php"})

	assert.Equal(t, []string{"admin", "login.php"}, b.Terms())
}

func TestMalformedEntrySkipped(t *testing.T) {
	b := newBuilder()
	b.Add([]string{
		"http://example.com/admin",
		"not a url :::",
		"http://example.com/api",
	})

	assert.Equal(t, []string{"admin", "api"}, b.Terms())
}

// A static-asset URL is dropped whole: its parent directories never
// become terms, while the same directories reached through a
// non-asset URL do.
func TestStaticAssetURLDropsParents(t *testing.T) {
	b := newBuilder()
	b.Add([]string{"http://example.com/img/logo.png"})
	assert.Zero(t, b.Len())

	b.Add([]string{"http://example.com/img/gallery.php"})
	assert.Equal(t, []string{"gallery.php", "img"}, b.Terms())
}

// Static-looking segments in the middle of an actionable URL are still
// filtered individually.
func TestStaticMiddleSegmentFiltered(t *testing.T) {
	b := newBuilder()
	b.Add([]string{"http://example.com/download.zip/info"})

	assert.Equal(t, []string{"info"}, b.Terms())
}

func TestAllSourcesEmpty(t *testing.T) {
	b := newBuilder()
	b.Add(nil)
	b.Add([]string{})

	assert.Zero(t, b.Len())
	assert.Empty(t, b.Terms())
}

// Percent-encoded and trailing-slash variants are kept verbatim: no
// decoding or normalization happens beyond dropping empty components.
func TestNoNormalization(t *testing.T) {
	b := newBuilder()
	b.Add([]string{
		"http://example.com/admin",
		"http://example.com/admin/",
		"http://example.com/%61dmin",
	})

	assert.Equal(t, []string{"%61dmin", "admin"}, b.Terms())
}

func TestWriteFile(t *testing.T) {
	b := newBuilder()
	b.Add(sampleURLs)

	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, b.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "admin\napi\nbeta\ndashboard\nlogin.php\nusers\nv1\n", string(data))
}

func TestWriteFileEmpty(t *testing.T) {
	b := newBuilder()

	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, b.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	cases := map[string]string{
		"photo.png":               "photo",
		"/a/b/archive.tar.gz":     "archive.tar",
		"noext":                   "noext",
		".hidden":                 ".hidden",
		"dir/.hidden.png":         ".hidden",
		filepath.Join("x", "y.Z"): "y",
	}
	for in, want := range cases {
		assert.Equal(t, want, Stem(in), in)
	}
}

func TestRequestPaths(t *testing.T) {
	req := ConversionRequest{SourcePath: "/in/photo.PNG", TargetFormat: "jpg", DestDir: "/out"}
	assert.Equal(t, filepath.Join("/out", "photo.jpg"), req.OutputPath())
	assert.Equal(t, filepath.Join("/out", "photo_fallback.png"), req.FallbackPath())
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	touch := func(rel string) string {
		p := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
		return p
	}
	b := touch("album/b.JPG")
	a := touch("album/a.png")
	touch("album/readme.txt")
	touch("album/.cache/c.png")
	nested := touch("album/sub/d.tiff")
	loose := touch("loose.txt")
	missing := filepath.Join(dir, "nope.png")

	got, err := ExpandPaths([]string{loose, filepath.Join(dir, "album"), missing})
	require.NoError(t, err)
	assert.Equal(t, []string{loose, a, b, nested, missing}, got)
}

func TestExpandPathsEmpty(t *testing.T) {
	got, err := ExpandPaths(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/manifest"
)

// testConfig returns a config rooted at a fixture directory.
func testConfig(base string) *config.Config {
	return &config.Config{
		Base: base,
		Resumes: config.ResumesConfig{
			Roots:    []string{"resources", ".private/resources"},
			Output:   "data/resumes.json",
			Strategy: "first",
		},
		Themes: config.ThemesConfig{
			Roots:  []string{"css", ".private/css"},
			Output: "data/themes.json",
			Bundle: "theme.css",
		},
	}
}

func writeFixture(t *testing.T, base string, content string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{base}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGenerate_BothManifests(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, base, `{"name":"Alice"}`, "resources", "alice", "resume.json")
	writeFixture(t, base, "png-bytes", "resources", "alice", "photo.png")
	writeFixture(t, base, "@media print { body {} }", "css", "dark", "theme.css")

	cfg := testConfig(base)
	require.NoError(t, generate(cfg, true, true))

	var resumes manifest.ResumeManifest
	data, err := os.ReadFile(filepath.Join(base, "data", "resumes.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &resumes))

	assert.Equal(t, manifest.Version, resumes.Version)
	assert.Equal(t, 1, resumes.TotalResumes)
	assert.Len(t, resumes.Resumes, resumes.TotalResumes)
	assert.Equal(t, "resources/alice/resume.json", resumes.Resumes["alice"].JSONFile)
	assert.Equal(t, "resources/alice/photo.png", resumes.Resumes["alice"].PNGFile)
	assert.True(t, resumes.Resumes["alice"].HasPNGPhoto)

	var themes manifest.ThemeManifest
	data, err = os.ReadFile(filepath.Join(base, "data", "themes.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &themes))

	assert.Equal(t, 1, themes.TotalThemes)
	assert.True(t, themes.Themes["dark"].HasMediaQueryPrint)
}

func TestGenerate_IdempotentExceptTimestamp(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, base, `{"name":"Alice"}`, "resources", "alice", "resume.json")
	writeFixture(t, base, "png-bytes", "resources", "alice", "photo.png")

	cfg := testConfig(base)
	outPath := filepath.Join(base, "data", "resumes.json")

	require.NoError(t, generate(cfg, true, false))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, generate(cfg, true, false))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var a, b manifest.ResumeManifest
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))

	// Everything except the generated timestamp is identical.
	a.Generated = ""
	b.Generated = ""
	assert.Equal(t, a, b)
}

func TestGenerate_EmptyTree(t *testing.T) {
	base := t.TempDir()

	cfg := testConfig(base)
	require.NoError(t, generate(cfg, true, true))

	var resumes manifest.ResumeManifest
	data, err := os.ReadFile(filepath.Join(base, "data", "resumes.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &resumes))

	assert.Zero(t, resumes.TotalResumes)
	assert.NotNil(t, resumes.Resumes)
}

func TestGenerate_WriteFailure(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, base, `{"name":"Alice"}`, "resources", "alice", "resume.json")
	writeFixture(t, base, "png-bytes", "resources", "alice", "photo.png")

	// Occupy the output directory path with a regular file.
	require.NoError(t, os.WriteFile(filepath.Join(base, "data"), []byte("not a dir"), 0o644))

	cfg := testConfig(base)
	assert.Error(t, generate(cfg, true, false))
}

func TestGenerate_InvalidStrategy(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Resumes.Strategy = "nearest"

	assert.Error(t, generate(cfg, true, false))
}

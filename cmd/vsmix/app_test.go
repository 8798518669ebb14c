package main

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsmixer/pkg/bitmap"
	"vsmixer/pkg/split"
)

func writePNG(t *testing.T, fs afero.Fs, name string, c color.NRGBA) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0644))
}

func setup(t *testing.T) (afero.Fs, *bytes.Buffer, *bytes.Buffer, stdio) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "a.png", color.NRGBA{R: 255, A: 255})
	writePNG(t, fs, "b.png", color.NRGBA{B: 255, A: 255})
	var out, errOut bytes.Buffer
	return fs, &out, &errOut, stdio{out: &out, err: &errOut}
}

func TestWrongArgCount(t *testing.T) {
	for _, args := range [][]string{nil, {"a.png"}, {"a.png", "b.png", "c.png", "d.png"}} {
		fs, out, errOut, std := setup(t)
		assert.Equal(t, 0, run(args, fs, std))
		assert.Contains(t, errOut.String(), usageLine)
		assert.Empty(t, out.String())
	}
}

func TestBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--partition", "hexagon", "a.png", "b.png"},
		{"--size", "0", "a.png", "b.png"},
		{"--glitter-min", "250", "--glitter-max", "10", "a.png", "b.png"},
		{"--no-such-flag", "a.png", "b.png"},
	} {
		fs, out, errOut, std := setup(t)
		assert.Equal(t, 0, run(args, fs, std), strings.Join(args, " "))
		assert.Contains(t, errOut.String(), usageLine)
		assert.Empty(t, out.String())
	}
}

func TestHelp(t *testing.T) {
	fs, _, errOut, std := setup(t)
	assert.Equal(t, 0, run([]string{"--help"}, fs, std))
	assert.Contains(t, errOut.String(), "--partition")
}

func TestBase64Output(t *testing.T) {
	fs, out, _, std := setup(t)
	require.Equal(t, 0, run([]string{"--size", "64", "--seed", "3", "a.png", "b.png"}, fs, std))

	printed := strings.TrimSpace(out.String())
	side, err := afero.ReadFile(fs, "base64.txt")
	require.NoError(t, err)
	assert.Equal(t, printed, string(side))

	bs, err := base64.StdEncoding.DecodeString(printed)
	require.NoError(t, err)
	img, err := bitmap.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestFileOutput(t *testing.T) {
	fs, out, _, std := setup(t)
	args := []string{"--width", "80", "--height", "40", "--partition", "diagonal", "--scale", "fit", "--label", "", "a.png", "b.png", "out/vs.png"}
	require.Equal(t, 0, run(args, fs, std))
	assert.Empty(t, out.String())

	bs, err := afero.ReadFile(fs, "out/vs.png")
	require.NoError(t, err)
	img, err := bitmap.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 40), img.Bounds())

	exists, err := afero.Exists(fs, "base64.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDryRun(t *testing.T) {
	fs, out, _, std := setup(t)
	require.Equal(t, 0, run([]string{"--dry-run", "--size", "32", "a.png", "b.png", "vs.png"}, fs, std))
	assert.Empty(t, out.String())

	exists, err := afero.Exists(fs, "vs.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMissingSource(t *testing.T) {
	fs, out, errOut, std := setup(t)
	assert.Equal(t, 1, run([]string{"--size", "32", "a.png", "missing.png", "vs.png"}, fs, std))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "missing.png")

	exists, err := afero.Exists(fs, "vs.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestParseDefaults(t *testing.T) {
	o, err := parse([]string{"a.png", "b.png"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, [2]string{"a.png", "b.png"}, o.sources)
	assert.Equal(t, 1000, o.params.Width)
	assert.Equal(t, 1000, o.params.Height)
	assert.Equal(t, split.Triangle, o.params.Partition)
	assert.Equal(t, split.Stretch, o.params.Scale)
	assert.Equal(t, "VS", o.params.Label)
	assert.Empty(t, o.params.Output)
}

package sink

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vsmixer/pkg/bitmap"
	"vsmixer/pkg/proto"
	"vsmixer/pkg/raster"
)

func canvas() *raster.Canvas {
	c := raster.NewCanvas(3, 2)
	c.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 10, B: 5, A: 255})
	return c
}

func onlyFile(t *testing.T, fs afero.Fs, dir string) string {
	infos, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	return infos[0].Name()
}

func TestFileSink(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFile(fs, "out/dir/vs.png", zap.NewNop())
	require.NoError(t, s.Write(canvas()))

	// no temp file left behind
	assert.Equal(t, "vs.png", onlyFile(t, fs, "out/dir"))

	bs, err := afero.ReadFile(fs, "out/dir/vs.png")
	require.NoError(t, err)
	img, err := bitmap.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 5, A: 255}, color.NRGBAModel.Convert(img.At(1, 1)))
}

func TestFileSinkReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := NewFile(fs, "vs.png", zap.NewNop()).Write(canvas())

	var ee *proto.EncodeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "vs.png", ee.Target)
}

func TestBase64Sink(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	require.NoError(t, NewBase64(fs, &out, DefaultSideFile, zap.NewNop()).Write(canvas()))

	printed := strings.TrimSuffix(out.String(), "\n")
	side, err := afero.ReadFile(fs, DefaultSideFile)
	require.NoError(t, err)
	assert.Equal(t, printed, string(side))

	bs, err := base64.StdEncoding.DecodeString(printed)
	require.NoError(t, err)
	img, err := bitmap.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, canvas().Bounds(), img.Bounds())
}

func TestBase64SinkWithoutSideFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	require.NoError(t, NewBase64(fs, &out, "", zap.NewNop()).Write(canvas()))

	assert.NotEmpty(t, out.String())
	exists, err := afero.Exists(fs, DefaultSideFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMock(t *testing.T) {
	m := Mock(zap.NewNop())
	c := canvas()
	require.NoError(t, m.Write(c))
	assert.Same(t, c, m.(*Mocker).Last())
	assert.Equal(t, "mock", m.Name())
}

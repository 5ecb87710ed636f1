package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zorbgame/zorb/internal/sprite"
	"github.com/zorbgame/zorb/internal/tilemap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const components = `package: demo
components:
  - name: Pos
  - name: Health
    type: uint16
  - name: PathCache
    ref: true
    capacity: Paths
`

func TestGenECS(t *testing.T) {
	src, err := genECS([]byte(components))
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "components_gen.go", src, parser.AllErrors)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by xtask gen-ecs. DO NOT EDIT.")
	assert.Contains(t, out, "package demo")
	assert.Contains(t, out, "func (w *World) HealthFor(e EntityID) (uint16, bool) {")
	assert.Contains(t, out, "func (w *World) PathCacheFor(e EntityID) *PathCache {")
	assert.Contains(t, out, "func (w *World) SetPathCacheFor(e EntityID, v *PathCache) {")
	assert.Contains(t, out, `core.NewStore[PathCache]("path cache", c.Paths)`)
	assert.Contains(t, out, `core.NewStore[Pos]("pos", c.Entities)`)
	assert.Contains(t, out, "func (b Builder) WithHealth(v uint16) Builder {")
	assert.Contains(t, out, "ecs: unset path cache on entity %d that has none")
}

func TestGenECSRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"package":    "package: 1x\ncomponents: [{name: Pos}]\n",
		"empty":      "package: demo\ncomponents: []\n",
		"unexported": "package: demo\ncomponents: [{name: pos}]\n",
		"duplicate":  "package: demo\ncomponents: [{name: Pos}, {name: Pos}]\n",
		"yaml":       "package: [",
	} {
		_, err := genECS([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "pos", label("Pos"))
	assert.Equal(t, "sprite anims", label("SpriteAnims"))
	assert.Equal(t, "spriteAnims", lowerFirst("SpriteAnims"))
}

func TestGenECSCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "components.yaml")
	out := filepath.Join(dir, "components_gen.go")
	require.NoError(t, os.WriteFile(in, []byte(components), 0o644))

	_, err := execute(t, "gen-ecs", "-i", in, "-o", out)
	require.NoError(t, err)
	want, err := genECS([]byte(components))
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	_, err = execute(t, "gen-ecs", "-i", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGenTiles(t *testing.T) {
	var want bytes.Buffer
	require.NoError(t, tilemap.WriteTable(&want))

	got, err := execute(t, "gen-tiles", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, want.String(), got)

	_, err = execute(t, "gen-tiles", "extra")
	assert.Error(t, err)
}

const export = `{
  "frames": [
    {"filename": "walk#0#body", "duration": 100,
     "frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}},
    {"filename": "walk#1#body", "duration": 120,
     "frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 1, "w": 16, "h": 15}}
  ],
  "meta": {
    "frameTags": [{"name": "walk", "direction": "forward"}],
    "layers": [{"name": "body"}]
  }
}`

func TestAse2Res(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "zorb.json")
	require.NoError(t, os.WriteFile(in, []byte(export), 0o644))

	_, err := execute(t, "ase2res", in)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "zorb.res.json"))
	require.NoError(t, err)
	f, err := sprite.Decode("zorb.res.json", data)
	require.NoError(t, err)
	assert.Equal(t, "zorb.png", f.Texture)
	require.Len(t, f.Cels, 2)
	walk := f.Animations["walk"]
	assert.Equal(t, []string{"body"}, walk.Layers)
	require.Len(t, walk.Keyframes, 2)
	assert.Equal(t, uint16(120), walk.Keyframes[1].Duration)

	_, err = execute(t, "ase2res")
	assert.Error(t, err)
}

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel([]byte(`
level:
  name: tiny
  enemy_health: 10
  rows:
    - "E.W"
    - "PBI"
`))
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Name)
	assert.Equal(t, uint32(10), lvl.EnemyHealth)
	assert.Equal(t, 3, lvl.Columns())
	assert.Equal(t, 2, lvl.RowCount())

	cells := lvl.Cells()
	require.Len(t, cells, 6)
	assert.Equal(t, Cell{Col: 2, Row: 0, Kind: CellWall}, cells[2])
	assert.Equal(t, Cell{Col: 1, Row: 1, Kind: CellBase}, cells[4])
}

func TestParseLevelRejects(t *testing.T) {
	cases := map[string]string{
		"no name":   "level:\n  rows: [\"B\"]\n",
		"no rows":   "level:\n  name: x\n",
		"ragged":    "level:\n  name: x\n  rows: [\"B..\", \"..\"]\n",
		"unknown":   "level:\n  name: x\n  rows: [\"B?\"]\n",
		"no base":   "level:\n  name: x\n  rows: [\"..\"]\n",
		"two bases": "level:\n  name: x\n  rows: [\"BB\"]\n",
		"bad yaml":  "level: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLevel([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "l.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  name: x\n  rows: [\"B\"]\n"), 0o644))
	lvl, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "x", lvl.Name)

	_, err = LoadLevel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedLevelsParse(t *testing.T) {
	for _, name := range []string{"level1.yaml", "level2.yaml"} {
		_, err := LoadLevel(filepath.Join("..", "..", "levels", name))
		assert.NoError(t, err, name)
	}
}

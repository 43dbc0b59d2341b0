package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	curve "github.com/tphakala/go-curve"
)

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []curve.Point
		wantErr bool
	}{
		{name: "empty", input: "  "},
		{
			name:  "single",
			input: "0.5:0.25",
			want:  []curve.Point{{X: 0.5, Y: 0.25}},
		},
		{
			name:  "spaces",
			input: " 0.2 : 0.2 , 0.8:1 ",
			want:  []curve.Point{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 1}},
		},
		{name: "missing separator", input: "0.5", wantErr: true},
		{name: "bad x", input: "a:0.5", wantErr: true},
		{name: "bad y", input: "0.5:b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoints(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLookups(t *testing.T) {
	got, err := ParseLookups("0, 0.35,1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.35, 1}, got)

	got, err = ParseLookups("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseLookups("0.1,x")
	require.Error(t, err)
}

func TestDecodePointsFile(t *testing.T) {
	data := []byte(`
variant: monotonic
points:
  - {x: 0.2, y: 0.2}
  - {x: 0.5, y: 0.8, lockY: true}
`)
	pf, err := DecodePointsFile(data)
	require.NoError(t, err)
	assert.Equal(t, "monotonic", pf.Variant)
	assert.Equal(t, []curve.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.5, Y: 0.8, YLocked: true},
	}, pf.CurvePoints())
}

func TestDecodePointsFileErrors(t *testing.T) {
	_, err := DecodePointsFile([]byte("variant: bezier\n"))
	require.ErrorIs(t, err, curve.ErrUnknownVariant)

	_, err = DecodePointsFile([]byte("points: [1, 2"))
	require.Error(t, err)
}

func TestBuildEditorSkipsConflicts(t *testing.T) {
	cfg := curve.Config{Width: 40, Height: 40}
	ed, err := BuildEditor(cfg, []curve.Point{
		{X: 0.25, Y: 0.5},
		{X: 0.75, Y: 0.5},
		{X: 0.5, Y: 0.5},
		{X: 0.5, Y: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ed.Len())
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: linear\npoints:\n  - {x: 0.8, y: 0.3}\n"), 0o644))

	pts, v, err := Resolve("0.2:0.2", path, "")
	require.NoError(t, err)
	assert.Equal(t, curve.VariantLinear, v)
	assert.Equal(t, []curve.Point{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.3}}, pts)

	_, v, err = Resolve("", path, "monotonic")
	require.NoError(t, err)
	assert.Equal(t, curve.VariantMonotonic, v, "explicit variant wins over the file")

	_, v, err = Resolve("0.5:0.5", "", "")
	require.NoError(t, err)
	assert.Equal(t, curve.VariantNatural, v)
}

func TestResolveErrors(t *testing.T) {
	_, _, err := Resolve("0.5", "", "")
	require.Error(t, err)

	_, _, err = Resolve("", filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.ErrorContains(t, err, "failed to read points file")

	_, _, err = Resolve("0.5:0.5", "", "cubic")
	require.ErrorIs(t, err, curve.ErrUnknownVariant)
}

func TestAddPointsCountsPlaced(t *testing.T) {
	ed, err := curve.New(&curve.Config{Width: 40, Height: 40})
	require.NoError(t, err)

	added := AddPoints(ed, []curve.Point{
		{X: 0.25, Y: 0.5},
		{X: 0.75, Y: 0.5},
		{X: 0.5, Y: 0.5},
		{X: 0.5, Y: 0.5},
	})
	assert.Equal(t, 3, added)
	assert.Equal(t, 3, ed.Len())
}

package geojson_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	orbjson "github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/geojson"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// noElevationDoc is a hand-built document without the elevations property,
// as produced by external tooling.
const noElevationDoc = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[2, 3], [10, 11]]},
      "properties": {"locked": false}
    }
  ]
}`

const pointOnlyDoc = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [2, 3]},
      "properties": {}
    }
  ]
}`

// TestWriteReadRoundTrip verifies coordinates, elevations, and the locked
// flag all survive a write/read cycle.
func TestWriteReadRoundTrip(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(0, 0, 5)
	p.AddPointZ(3, 4, 17)
	p.AddPointZ(9, 4, 2)
	p.Locked = true

	var buf bytes.Buffer
	require.NoError(t, geojson.Write(&buf, p), "writing a route should succeed")

	got, err := geojson.Read(&buf, nil)
	require.NoError(t, err, "reading the written document should succeed")
	require.Equal(t, p.Len(), got.Len(), "point count must survive the round trip")
	assert.True(t, got.Locked, "locked flag must survive the round trip")
	for i := range p.Points {
		assert.Equal(t, p.Points[i], got.Points[i], "point %d must survive the round trip", i)
	}
}

// TestWriteUnlockedFlag covers the locked=false case, which must not fall
// back to the reader's default.
func TestWriteUnlockedFlag(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(0, 0, 1)
	p.AddPointZ(5, 5, 1)
	p.Locked = false

	var buf bytes.Buffer
	require.NoError(t, geojson.Write(&buf, p))

	got, err := geojson.Read(&buf, nil)
	require.NoError(t, err)
	assert.False(t, got.Locked, "an unlocked route must read back unlocked")
}

// TestWriteSummaryProperties checks the derived figures stored on the
// feature for downstream tooling.
func TestWriteSummaryProperties(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(0, 0, 5)
	p.AddPointZ(3, 4, 17)

	var buf bytes.Buffer
	require.NoError(t, geojson.Write(&buf, p))

	fc, err := orbjson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err, "output must be a parseable FeatureCollection")
	require.Len(t, fc.Features, 1, "a route writes exactly one feature")

	props := fc.Features[0].Properties
	assert.Equal(t, 2.0, props.MustFloat64("pointCount"), "point count property")
	assert.Equal(t, 13.0, props.MustFloat64("distance"), "3-4-12 box diagonal is 13")
	assert.Equal(t, 12.0, props.MustFloat64("gain"), "gain property")
	assert.Equal(t, 0.0, props.MustFloat64("loss"), "loss property")
	assert.True(t, props.MustBool("locked", false), "locked property")
}

// TestReadSamplesMissingElevations verifies the source fallback when a
// document carries no elevations property.
func TestReadSamplesMissingElevations(t *testing.T) {
	src := dem.NewUniform(20, 20, 4.5)
	p, err := geojson.Read(strings.NewReader(noElevationDoc), src)
	require.NoError(t, err, "reading with a source should succeed")
	require.Equal(t, 2, p.Len())
	assert.False(t, p.Locked, "stored locked flag wins over the default")
	for i, pt := range p.Points {
		assert.Equal(t, 4.5, pt.Z, "point %d should sample the source", i)
	}
}

// TestReadWithoutSourceOrElevations is the unreadable case: no stored
// elevations and nothing to sample from.
func TestReadWithoutSourceOrElevations(t *testing.T) {
	_, err := geojson.Read(strings.NewReader(noElevationDoc), nil)
	assert.Error(t, err, "no stored elevations and no source cannot build a route")
}

// TestReadNoLineStringFeature verifies the sentinel for documents without a
// route geometry.
func TestReadNoLineStringFeature(t *testing.T) {
	_, err := geojson.Read(strings.NewReader(pointOnlyDoc), nil)
	assert.ErrorIs(t, err, geojson.ErrNoRoute, "point-only documents hold no route")
}

// TestReadMalformedDocument verifies parse failures surface as errors.
func TestReadMalformedDocument(t *testing.T) {
	_, err := geojson.Read(strings.NewReader("{not json"), nil)
	assert.Error(t, err, "malformed JSON must not parse")
}

// TestWriteNilPath guards the writer against a missing route.
func TestWriteNilPath(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, geojson.Write(&buf, nil), "nil path must not serialize")
}

// TestFileRoundTrip covers the file-based convenience wrappers.
func TestFileRoundTrip(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(1, 2, 3)
	p.AddPointZ(4, 6, 9)

	path := filepath.Join(t.TempDir(), "route.geojson")
	require.NoError(t, geojson.WriteFile(path, p), "WriteFile should succeed")

	got, err := geojson.ReadFile(path, nil)
	require.NoError(t, err, "ReadFile should succeed")
	require.Equal(t, 2, got.Len())
	assert.Equal(t, p.Points, got.Points, "points must survive the file round trip")
}

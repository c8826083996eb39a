// Package geojson persists routes as GeoJSON feature collections.
//
// A route serializes to a single LineString feature. GeoJSON positions stay
// planar; elevations ride along as a feature property so the 3-D polyline
// survives a round trip.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// ErrNoRoute reports a document without a LineString feature to read.
var ErrNoRoute = errors.New("geojson: no LineString route feature")

// Write encodes p as a FeatureCollection holding one LineString feature.
// The locked flag, per-point elevations, and summary figures (point count,
// distance, gain, loss) are stored as feature properties.
func Write(w io.Writer, p *route.Path) error {
	if p == nil {
		return errors.New("geojson: nil path")
	}

	line := make(orb.LineString, 0, p.Len())
	elevations := make([]float64, 0, p.Len())
	for _, pt := range p.Points {
		line = append(line, orb.Point{pt.X, pt.Y})
		elevations = append(elevations, pt.Z)
	}
	gain, loss := p.ElevationGainLoss()

	feature := orbjson.NewFeature(line)
	feature.Properties["locked"] = p.Locked
	feature.Properties["elevations"] = elevations
	feature.Properties["pointCount"] = p.Len()
	feature.Properties["distance"] = p.TotalDistance()
	feature.Properties["gain"] = gain
	feature.Properties["loss"] = loss

	fc := orbjson.NewFeatureCollection()
	fc.Append(feature)

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding route: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing route: %w", err)
	}
	return nil
}

// Read decodes the first LineString feature from r into a path bound to src.
// Stored elevations are preferred; when the document carries none, each
// point's z is sampled from src instead.
func Read(r io.Reader, src dem.Source) (*route.Path, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading route: %w", err)
	}
	fc, err := orbjson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing route GeoJSON: %w", err)
	}

	for _, feature := range fc.Features {
		line, ok := feature.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		return pathFromFeature(feature, line, src)
	}
	return nil, ErrNoRoute
}

// WriteFile writes p to path, creating or truncating the file.
func WriteFile(path string, p *route.Path) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a route from the GeoJSON file at path.
func ReadFile(path string, src dem.Source) (*route.Path, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, src)
}

func pathFromFeature(feature *orbjson.Feature, line orb.LineString, src dem.Source) (*route.Path, error) {
	p := route.New(src)
	p.Locked = feature.Properties.MustBool("locked", true)

	elevations := elevationProperty(feature.Properties, len(line))
	for i, pt := range line {
		if elevations != nil {
			p.AddPointZ(pt[0], pt[1], elevations[i])
			continue
		}
		if err := p.AddPoint(pt[0], pt[1]); err != nil {
			return nil, fmt.Errorf("sampling elevation for point %d: %w", i, err)
		}
	}
	return p, nil
}

// elevationProperty extracts the stored elevation list when its length
// matches the geometry. Anything else is treated as absent.
func elevationProperty(props orbjson.Properties, want int) []float64 {
	raw, ok := props["elevations"].([]interface{})
	if !ok || len(raw) != want {
		return nil
	}
	out := make([]float64, want)
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return nil
		}
		out[i] = f
	}
	return out
}

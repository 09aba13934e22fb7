// Package fleet exposes the ARGO float fixtures behind the dashboard.
package fleet

import (
	"math"
	"sort"

	"github.com/ppiankov/floatchat/internal/model"
)

const earthRadiusKm = 6371.0

// Fleet is a read-only set of floats and the alerts raised against them
type Fleet struct {
	floats []model.Float
	alerts []model.Alert
	byID   map[string]int
}

// New builds a fleet from the given floats and alerts
func New(floats []model.Float, alerts []model.Alert) *Fleet {
	f := &Fleet{
		floats: append([]model.Float(nil), floats...),
		alerts: append([]model.Alert(nil), alerts...),
		byID:   make(map[string]int, len(floats)),
	}
	for i, fl := range f.floats {
		f.byID[fl.ID] = i
	}
	return f
}

// Default returns the demo fleet
func Default() *Fleet {
	return New(demoFloats(), demoAlerts())
}

// Floats returns all floats in fleet order
func (f *Fleet) Floats() []model.Float {
	out := make([]model.Float, len(f.floats))
	for i, fl := range f.floats {
		out[i] = cloneFloat(fl)
	}
	return out
}

// Alerts returns all alerts
func (f *Fleet) Alerts() []model.Alert {
	return append([]model.Alert(nil), f.alerts...)
}

// Float looks up a float by id
func (f *Fleet) Float(id string) (model.Float, bool) {
	i, ok := f.byID[id]
	if !ok {
		return model.Float{}, false
	}
	return cloneFloat(f.floats[i]), true
}

// Has reports whether a float id is known
func (f *Fleet) Has(id string) bool {
	_, ok := f.byID[id]
	return ok
}

// ByRegion returns the floats deployed in a region
func (f *Fleet) ByRegion(region string) []model.Float {
	return f.filter(func(fl model.Float) bool { return fl.Region == region })
}

// ByStatus returns the floats in a given operational state
func (f *Fleet) ByStatus(status model.FloatStatus) []model.Float {
	return f.filter(func(fl model.Float) bool { return fl.Status == status })
}

func (f *Fleet) filter(keep func(model.Float) bool) []model.Float {
	var out []model.Float
	for _, fl := range f.floats {
		if keep(fl) {
			out = append(out, cloneFloat(fl))
		}
	}
	return out
}

// Neighbor is a float and its distance from a query point
type Neighbor struct {
	Float      model.Float `json:"float"`
	DistanceKm float64     `json:"distance_km"`
}

// Nearest returns up to n floats ordered by great-circle distance.
// n <= 0 returns every float.
func (f *Fleet) Nearest(lat, lng float64, n int) []Neighbor {
	out := make([]Neighbor, len(f.floats))
	for i, fl := range f.floats {
		out[i] = Neighbor{
			Float:      cloneFloat(fl),
			DistanceKm: Haversine(lat, lng, fl.Lat, fl.Lng),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Haversine returns the great-circle distance in kilometers
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// SurfaceReading is the shallowest sample of a profile
type SurfaceReading struct {
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
}

// SurfaceReading returns the first profile sample for a float
func (f *Fleet) SurfaceReading(id string) (SurfaceReading, bool) {
	i, ok := f.byID[id]
	if !ok {
		return SurfaceReading{}, false
	}
	p := f.floats[i].Profile
	if len(p.Temperature) == 0 || len(p.Salinity) == 0 {
		return SurfaceReading{}, false
	}
	return SurfaceReading{Temperature: p.Temperature[0], Salinity: p.Salinity[0]}, true
}

// Summary aggregates the dashboard overview numbers
func (f *Fleet) Summary() model.FleetSummary {
	s := model.FleetSummary{
		Total:    len(f.floats),
		ByStatus: make(map[model.FloatStatus]int),
		ByRegion: make(map[string]int),
	}

	var tempSum, salSum float64
	var samples int
	for _, fl := range f.floats {
		s.ByStatus[fl.Status]++
		s.ByRegion[fl.Region]++
		if len(fl.Profile.Temperature) > 0 && len(fl.Profile.Salinity) > 0 {
			tempSum += fl.Profile.Temperature[0]
			salSum += fl.Profile.Salinity[0]
			samples++
		}
	}

	if samples > 0 {
		s.MeanSurfaceTemp = tempSum / float64(samples)
		s.MeanSurfaceSalinity = salSum / float64(samples)
	}
	return s
}

func cloneFloat(fl model.Float) model.Float {
	out := fl
	out.Profile.Depth = append([]float64(nil), fl.Profile.Depth...)
	out.Profile.Temperature = append([]float64(nil), fl.Profile.Temperature...)
	out.Profile.Salinity = append([]float64(nil), fl.Profile.Salinity...)
	return out
}

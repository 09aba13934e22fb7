package model

import "time"

// Float is an ARGO profiling float and its latest profile
type Float struct {
	ID         string      `json:"id" yaml:"id"`
	Lat        float64     `json:"lat" yaml:"lat"`
	Lng        float64     `json:"lng" yaml:"lng"`
	Profile    Profile     `json:"profile" yaml:"profile"`
	Region     string      `json:"region" yaml:"region"`
	Status     FloatStatus `json:"status" yaml:"status"`
	LastUpdate time.Time   `json:"last_update" yaml:"last_update"`
}

// Profile is a vertical sample; the three slices are index-aligned by depth
type Profile struct {
	Depth       []float64 `json:"depth" yaml:"depth"`             // meters
	Temperature []float64 `json:"temperature" yaml:"temperature"` // °C
	Salinity    []float64 `json:"salinity" yaml:"salinity"`       // PSU
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// FloatStatus is the operational state of a float
type FloatStatus string

const (
	FloatActive   FloatStatus = "active"
	FloatAnomaly  FloatStatus = "anomaly"
	FloatInactive FloatStatus = "inactive"
)

// Location is a latitude/longitude pair in decimal degrees
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// FleetSummary backs the dashboard overview cards
type FleetSummary struct {
	Total               int                 `json:"total"`
	ByStatus            map[FloatStatus]int `json:"by_status"`
	ByRegion            map[string]int      `json:"by_region"`
	MeanSurfaceTemp     float64             `json:"mean_surface_temp"`
	MeanSurfaceSalinity float64             `json:"mean_surface_salinity"`
}

package fleet

import (
	"time"

	"github.com/ppiankov/floatchat/internal/model"
)

var standardDepths = []float64{0, 10, 50, 100, 200, 500, 1000}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func demoFloat(id string, lat, lng float64, temp, sal []float64, region string, status model.FloatStatus, updated string) model.Float {
	return model.Float{
		ID:  id,
		Lat: lat,
		Lng: lng,
		Profile: model.Profile{
			Depth:       append([]float64(nil), standardDepths...),
			Temperature: temp,
			Salinity:    sal,
			Timestamp:   ts("2025-09-15T00:00:00Z"),
		},
		Region:     region,
		Status:     status,
		LastUpdate: ts(updated),
	}
}

func demoFloats() []model.Float {
	return []model.Float{
		demoFloat("ARGO001", 15.5, 68.7,
			[]float64{28.5, 27.8, 25.2, 22.1, 18.5, 12.3, 8.7},
			[]float64{35.2, 35.1, 34.9, 34.8, 34.7, 34.6, 34.5},
			"Arabian Sea", model.FloatActive, "2025-09-15T06:30:00Z"),
		demoFloat("ARGO002", 12.3, 76.8,
			[]float64{29.2, 28.1, 24.8, 21.5, 17.9, 11.8, 8.2},
			[]float64{35.0, 34.9, 34.8, 34.7, 34.6, 34.5, 34.4},
			"Arabian Sea", model.FloatAnomaly, "2025-09-15T06:15:00Z"),
		demoFloat("ARGO003", 8.2, 77.3,
			[]float64{31.1, 29.8, 26.5, 23.2, 19.8, 13.5, 9.1},
			[]float64{34.8, 34.7, 34.6, 34.5, 34.4, 34.3, 34.2},
			"Indian Ocean", model.FloatActive, "2025-09-15T06:45:00Z"),
		demoFloat("ARGO004", 20.1, 65.5,
			[]float64{27.8, 26.9, 23.4, 20.1, 16.8, 10.9, 7.8},
			[]float64{35.4, 35.3, 35.1, 35.0, 34.9, 34.8, 34.7},
			"Arabian Sea", model.FloatActive, "2025-09-15T06:00:00Z"),
		demoFloat("ARGO005", 5.8, 79.2,
			[]float64{30.5, 29.2, 25.8, 22.7, 18.9, 12.8, 8.9},
			[]float64{34.9, 34.8, 34.7, 34.6, 34.5, 34.4, 34.3},
			"Indian Ocean", model.FloatActive, "2025-09-15T06:20:00Z"),
		demoFloat("ARGO006", 18.7, 72.9,
			[]float64{32.1, 30.5, 27.2, 24.1, 20.3, 14.2, 9.8},
			[]float64{35.1, 35.0, 34.9, 34.8, 34.7, 34.6, 34.5},
			"Arabian Sea", model.FloatAnomaly, "2025-09-15T06:10:00Z"),
	}
}

func demoAlerts() []model.Alert {
	return []model.Alert{
		{
			ID:        "ALT001",
			FloatID:   "ARGO002",
			Type:      model.AlertTemperatureAnomaly,
			Message:   "Rapid temperature increase detected in surface waters (+2.3°C above normal)",
			Timestamp: ts("2025-09-15T06:15:00Z"),
			Severity:  model.SeverityHigh,
			Location:  model.Location{Lat: 12.3, Lng: 76.8},
		},
		{
			ID:        "ALT002",
			FloatID:   "ARGO006",
			Type:      model.AlertSalinitySpike,
			Message:   "Unusual salinity spike in mixed layer (35.8 PSU, +0.6 above climatology)",
			Timestamp: ts("2025-09-15T06:10:00Z"),
			Severity:  model.SeverityMedium,
			Location:  model.Location{Lat: 18.7, Lng: 72.9},
		},
	}
}

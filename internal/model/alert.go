package model

import "time"

// Alert is an anomaly raised against a float
type Alert struct {
	ID        string        `json:"id"`
	FloatID   string        `json:"float_id"`
	Type      AlertType     `json:"type"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Severity  AlertSeverity `json:"severity"`
	Location  Location      `json:"location"`
}

// AlertType classifies the anomaly
type AlertType string

const (
	AlertTemperatureAnomaly AlertType = "temperature_anomaly"
	AlertSalinitySpike      AlertType = "salinity_spike"
)

// AlertSeverity ranks alerts for triage
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// AlertStatus tracks operator handling: active -> acknowledged -> resolved
type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

// Recipient is a party notified when an alert is sent
type Recipient struct {
	Name   string `json:"name"`
	Active bool   `json:"active"` // false means standby
}

// Dispatch records an alert sent to recipients
type Dispatch struct {
	Alert      Alert       `json:"alert"`
	Recipients []Recipient `json:"recipients"`
	SentAt     time.Time   `json:"sent_at"`
}

// AlertStats counts alerts by severity and status
type AlertStats struct {
	Total      int                   `json:"total"`
	BySeverity map[AlertSeverity]int `json:"by_severity"`
	ByStatus   map[AlertStatus]int   `json:"by_status"`
}

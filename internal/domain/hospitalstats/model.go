package hospitalstats

import "time"

// Stats holds the hospital-wide figures for one calendar day. There is
// at most one row per day.
type Stats struct {
	ID                 int       `json:"id"`
	Date               time.Time `json:"date"`
	TotalBeds          int       `json:"totalBeds"`
	OccupiedBeds       int       `json:"occupiedBeds"`
	AvgStayDuration    int       `json:"avgStayDuration"`
	EmergencyVisits    int       `json:"emergencyVisits"`
	ScheduledSurgeries int       `json:"scheduledSurgeries"`
}

// Patch carries a partial update. Nil fields are left untouched. The
// date itself is immutable; a different day is a different row.
type Patch struct {
	TotalBeds          *int `json:"totalBeds"`
	OccupiedBeds       *int `json:"occupiedBeds"`
	AvgStayDuration    *int `json:"avgStayDuration"`
	EmergencyVisits    *int `json:"emergencyVisits"`
	ScheduledSurgeries *int `json:"scheduledSurgeries"`
}

// DateKey normalizes a timestamp to its UTC calendar day, the map key
// for the stats collection.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

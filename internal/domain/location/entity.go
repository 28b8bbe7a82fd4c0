package location

import (
	"fmt"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
)

// PointKind distinguishes the two marker sources on the map.
type PointKind string

const (
	KindDisaster   PointKind = "disaster"
	KindAttendance PointKind = "attendance"
)

// Point is one marker on the posko map.
type Point struct {
	Kind           PointKind    `json:"kind"`
	Name           string       `json:"nama"`
	Label          string       `json:"label"`
	Position       geo.Position `json:"position"`
	DistanceMeters float64      `json:"distanceMeters"`
	MapsURL        string       `json:"mapsUrl"`
	ReportedAt     string       `json:"reportedAt"`
}

// MapsURL is the Google Maps link for a position, the same one the map
// markers open.
func MapsURL(pos geo.Position) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", pos.Latitude, pos.Longitude)
}

// Snapshot is the assembled map state, rebuilt in the background.
type Snapshot struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	Posko       geo.Position `json:"posko"`
	Points      []Point      `json:"points"`
}

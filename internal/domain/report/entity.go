package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
)

// DisasterReport is one submitted disaster report row from the published
// sheet.
type DisasterReport struct {
	Timestamp    time.Time
	Name         string
	MemberID     string
	DisasterType string
	OccurredAt   string
	Location     string
	Victims      string
	Description  string
	Coordinates  string
}

// Position parses the Coordinates field ("<lat>, <lon>"). Rows submitted
// without location access carry free text there and report false.
func (r *DisasterReport) Position() (geo.Position, bool) {
	return ParseCoordinates(r.Coordinates)
}

// ActivityReport is one submitted activity report row from the published
// sheet.
type ActivityReport struct {
	Timestamp  time.Time
	Name       string
	MemberID   string
	Activity   string
	Place      string
	OccurredAt string
}

// ParseCoordinates parses a "<lat>, <lon>" pair written by the apps.
func ParseCoordinates(s string) (geo.Position, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return geo.Position{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return geo.Position{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return geo.Position{}, false
	}
	return geo.Position{Latitude: lat, Longitude: lon}, true
}

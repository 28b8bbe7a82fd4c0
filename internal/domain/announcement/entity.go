package announcement

import (
	"time"
)

type Announcement struct {
	Date     time.Time
	RawDate  string
	Title    string
	Body     string
	Category string
}

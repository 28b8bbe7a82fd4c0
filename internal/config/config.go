package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Sheets SheetsConfig
	Forms  FormsConfig
	Piket  PiketConfig
	Posko  PoskoConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
	DataDir  string
}

// SheetsConfig holds the published CSV export URLs, one per data domain.
type SheetsConfig struct {
	Announcements   string
	Members         string
	Officers        string
	Attendance      string
	DisasterReports string
	ActivityReports string
}

// FormsConfig holds the Apps Script submission endpoint URLs.
type FormsConfig struct {
	Attendance     string
	DisasterReport string
	ActivityReport string
}

// PiketConfig holds the attendance (piket) time windows.
type PiketConfig struct {
	ClockInWindow  Window
	ClockOutWindow Window
}

// PoskoConfig holds the coordinates of the base post, used to annotate
// map entries with a distance.
type PoskoConfig struct {
	Latitude  float64
	Longitude float64
}

// Window is a time-of-day range. The end bound is inclusive.
type Window struct {
	From Clock
	To   Clock
}

// Clock is a minute-resolution time of day.
type Clock struct {
	Hour   int
	Minute int
}

// Contains reports whether t's time of day falls inside the window.
func (w Window) Contains(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= w.From.Hour*60+w.From.Minute && minutes <= w.To.Hour*60+w.To.Minute
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.From.Hour, w.From.Minute, w.To.Hour, w.To.Minute)
}

// ParseWindow parses a window in "HH:MM-HH:MM" form.
func ParseWindow(s string) (Window, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("invalid window %q: want HH:MM-HH:MM", s)
	}
	from, err := parseClock(parts[0])
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	to, err := parseClock(parts[1])
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	return Window{From: from, To: to}, nil
}

func parseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		DataDir:  getEnv("DATA_DIR", "./data"),
	}

	config.Sheets = SheetsConfig{
		Announcements:   getEnv("SHEET_ANNOUNCEMENTS_URL", ""),
		Members:         getEnv("SHEET_MEMBERS_URL", ""),
		Officers:        getEnv("SHEET_OFFICERS_URL", ""),
		Attendance:      getEnv("SHEET_ATTENDANCE_URL", ""),
		DisasterReports: getEnv("SHEET_DISASTER_REPORTS_URL", ""),
		ActivityReports: getEnv("SHEET_ACTIVITY_REPORTS_URL", ""),
	}

	config.Forms = FormsConfig{
		Attendance:     getEnv("FORM_ATTENDANCE_URL", ""),
		DisasterReport: getEnv("FORM_DISASTER_REPORT_URL", ""),
		ActivityReport: getEnv("FORM_ACTIVITY_REPORT_URL", ""),
	}

	clockIn, err := ParseWindow(getEnv("PIKET_CLOCK_IN_WINDOW", "15:00-19:59"))
	if err != nil {
		return nil, fmt.Errorf("invalid PIKET_CLOCK_IN_WINDOW: %w", err)
	}
	clockOut, err := ParseWindow(getEnv("PIKET_CLOCK_OUT_WINDOW", "20:30-22:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid PIKET_CLOCK_OUT_WINDOW: %w", err)
	}
	config.Piket = PiketConfig{
		ClockInWindow:  clockIn,
		ClockOutWindow: clockOut,
	}

	poskoLat, err := strconv.ParseFloat(getEnv("POSKO_LATITUDE", "-6.1149"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid POSKO_LATITUDE: %w", err)
	}
	poskoLon, err := strconv.ParseFloat(getEnv("POSKO_LONGITUDE", "106.1502"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid POSKO_LONGITUDE: %w", err)
	}
	config.Posko = PoskoConfig{
		Latitude:  poskoLat,
		Longitude: poskoLon,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"SHEET_ANNOUNCEMENTS_URL", c.Sheets.Announcements},
		{"SHEET_MEMBERS_URL", c.Sheets.Members},
		{"SHEET_OFFICERS_URL", c.Sheets.Officers},
		{"SHEET_ATTENDANCE_URL", c.Sheets.Attendance},
		{"SHEET_DISASTER_REPORTS_URL", c.Sheets.DisasterReports},
		{"SHEET_ACTIVITY_REPORTS_URL", c.Sheets.ActivityReports},
		{"FORM_ATTENDANCE_URL", c.Forms.Attendance},
		{"FORM_DISASTER_REPORT_URL", c.Forms.DisasterReport},
		{"FORM_ACTIVITY_REPORT_URL", c.Forms.ActivityReport},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s is required", field.key)
		}
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

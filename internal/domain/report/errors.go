package report

import "errors"

// Report domain errors
var (
	ErrNoRecapData = errors.New("belum ada data absensi untuk direkap")
	ErrRecapFailed = errors.New("gagal membuat rekap absensi")
)

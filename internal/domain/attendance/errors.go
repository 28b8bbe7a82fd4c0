package attendance

import "errors"

// Attendance domain errors. Messages are surfaced to the app as-is, so
// they are written in Indonesian like the rest of the user-facing text.
var (
	// Clock-in errors
	ErrAlreadyClockedIn     = errors.New("anda sudah melakukan absen datang hari ini")
	ErrOutsideClockInWindow = errors.New("absen datang hanya dapat dilakukan pada jam piket")
	ErrLocationUnavailable  = errors.New("lokasi tidak terdeteksi, pastikan GPS aktif")

	// Clock-out errors
	ErrNotClockedIn          = errors.New("anda belum melakukan absen datang")
	ErrInvalidClockIn        = errors.New("data absen datang tidak lengkap, silakan ulangi absen datang")
	ErrAlreadyClockedOut     = errors.New("anda sudah melakukan absen pulang hari ini")
	ErrOutsideClockOutWindow = errors.New("absen pulang hanya dapat dilakukan pada jam pulang piket")

	// Submit errors
	ErrNotClockedOut       = errors.New("absen pulang harus dilakukan sebelum mengirim laporan")
	ErrAttendanceSubmitted = errors.New("absensi hari ini sudah terkirim")
)

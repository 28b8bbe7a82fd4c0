package response

import (
	"errors"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/appscript"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/photo"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A rejection from the form backend carries a message meant for the
	// volunteer; pass it through word for word.
	var submissionErr *appscript.SubmissionError
	if errors.As(err, &submissionErr) {
		BadRequest(w, submissionErr.Message, nil)
		return
	}

	switch {
	// Attendance workflow errors: wrong state
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrAttendanceSubmitted),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrNotClockedOut),
		errors.Is(err, attendance.ErrInvalidClockIn):
		Conflict(w, err.Error())

	// Attendance workflow errors: preconditions not met
	case errors.Is(err, attendance.ErrOutsideClockInWindow),
		errors.Is(err, attendance.ErrOutsideClockOutWindow),
		errors.Is(err, attendance.ErrLocationUnavailable):
		BadRequest(w, err.Error(), nil)

	// Report errors
	case errors.Is(err, report.ErrNoRecapData):
		NotFound(w, err.Error())

	case errors.Is(err, photo.ErrNotAnImage):
		BadRequest(w, "Berkas yang diunggah bukan gambar", nil)

	case errors.Is(err, sheets.ErrUnavailable):
		BadGateway(w, "Sumber data sedang tidak dapat diakses")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

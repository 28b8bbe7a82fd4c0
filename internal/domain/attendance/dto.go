package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	Name       string                `json:"nama"`
	MemberID   string                `json:"nia"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}

	if validator.IsEmpty(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "nia",
			Message: "nia is required",
		})
	} else if !validator.IsValidNIA(strings.TrimSpace(r.MemberID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "nia",
			Message: "nia must be 4-20 digits",
		})
	}

	if err := validatePhoto(r.FileHeader); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validatePhoto(r.FileHeader); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AutosaveRequest carries the identity fields as the volunteer types them.
type AutosaveRequest struct {
	Name     string `json:"nama"`
	MemberID string `json:"nia"`
}

func validatePhoto(fh *multipart.FileHeader) *validator.ValidationError {
	if fh == nil {
		return &validator.ValidationError{
			Field:   "foto",
			Message: "attendance photo is required",
		}
	}

	filename := fh.Filename
	idx := strings.LastIndex(filename, ".")
	ext := ""
	if idx >= 0 {
		ext = strings.ToLower(filename[idx:])
	}
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return &validator.ValidationError{
			Field:   "foto",
			Message: "invalid file type: only jpg, jpeg, png, webp allowed",
		}
	}
	if fh.Size > 10<<20 { // 10MB
		return &validator.ValidationError{
			Field:   "foto",
			Message: "attendance photo size must not exceed 10MB",
		}
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

// StatusResponse describes the daily record and what the app should let
// the volunteer do next.
type StatusResponse struct {
	Date            string  `json:"date"`
	State           State   `json:"state"`
	CanClockIn      bool    `json:"canClockIn"`
	CanClockOut     bool    `json:"canClockOut"`
	CanSubmit       bool    `json:"canSubmit"`
	ClockInWindow   string  `json:"clockInWindow"`
	ClockOutWindow  string  `json:"clockOutWindow"`
	Location        string  `json:"location"`
	LocationStatus  string  `json:"locationStatus"`
	LocationMessage string  `json:"locationMessage"`
	Record          *Record `json:"record,omitempty"`
}

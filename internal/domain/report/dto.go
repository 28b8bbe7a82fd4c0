package report

import (
	"mime/multipart"
	"strings"

	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

const maxReportPhotos = 3

type DisasterReportRequest struct {
	Name         string                  `json:"nama"`
	MemberID     string                  `json:"nia"`
	DisasterType string                  `json:"jenisBencana"`
	OccurredAt   string                  `json:"waktuKejadian"`
	Location     string                  `json:"lokasiBencana"`
	Victims      string                  `json:"korban"`
	Description  string                  `json:"keterangan"`
	Coordinates  string                  `json:"koordinat"`
	Files        []multipart.File        `json:"-"`
	FileHeaders  []*multipart.FileHeader `json:"-"`
}

func (r *DisasterReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, requireIdentity(r.Name, r.MemberID)...)

	if validator.IsEmpty(r.DisasterType) {
		errs = append(errs, validator.ValidationError{
			Field:   "jenisBencana",
			Message: "jenisBencana is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "lokasiBencana",
			Message: "lokasiBencana is required",
		})
	}

	errs = append(errs, requirePhotos(r.FileHeaders)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActivityReportRequest struct {
	Name        string                  `json:"nama"`
	MemberID    string                  `json:"nia"`
	Activity    string                  `json:"kegiatan"`
	Place       string                  `json:"tempat"`
	OccurredAt  string                  `json:"waktu"`
	Files       []multipart.File        `json:"-"`
	FileHeaders []*multipart.FileHeader `json:"-"`
}

func (r *ActivityReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, requireIdentity(r.Name, r.MemberID)...)

	if validator.IsEmpty(r.Activity) {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan is required",
		})
	}

	if validator.IsEmpty(r.Place) {
		errs = append(errs, validator.ValidationError{
			Field:   "tempat",
			Message: "tempat is required",
		})
	}

	errs = append(errs, requirePhotos(r.FileHeaders)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func requireIdentity(name, memberID string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}

	if validator.IsEmpty(memberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "nia",
			Message: "nia is required",
		})
	} else if !validator.IsValidNIA(strings.TrimSpace(memberID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "nia",
			Message: "nia must be 4-20 digits",
		})
	}

	return errs
}

func requirePhotos(fhs []*multipart.FileHeader) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(fhs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "foto1",
			Message: "foto1 is required",
		})
	}

	if len(fhs) > maxReportPhotos {
		errs = append(errs, validator.ValidationError{
			Field:   "foto",
			Message: "maksimal 3 foto per laporan",
		})
	}

	return errs
}

// ========================================
// RESPONSES
// ========================================

type SubmitReportResponse struct {
	Message string `json:"message"`
	// ReferenceID is generated per submission so a report can be traced
	// back in the sheet.
	ReferenceID string `json:"referenceId"`
}

// RecapResponse carries a generated attendance recap workbook.
type RecapResponse struct {
	Filename string
	Content  []byte
}

type DisasterReportResponse struct {
	Timestamp    string `json:"timestamp"`
	Name         string `json:"nama"`
	MemberID     string `json:"nia"`
	DisasterType string `json:"jenisBencana"`
	OccurredAt   string `json:"waktuKejadian"`
	Location     string `json:"lokasiBencana"`
	Victims      string `json:"korban"`
	Description  string `json:"keterangan"`
	Coordinates  string `json:"koordinat"`
}

type ListDisasterReportResponse struct {
	Reports []DisasterReportResponse `json:"reports"`
}

package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
)

// unknownMonthSheet collects rows whose timestamp could not be read.
const unknownMonthSheet = "Tanpa Tanggal"

var recapHeader = []string{"Tanggal", "Nama", "NIA", "Lokasi", "Waktu Datang"}

// AttendanceRecap implements report.ReportService.
func (s *ReportServiceImpl) AttendanceRecap(ctx context.Context) (report.RecapResponse, error) {
	entries, err := s.history.ListEntries(ctx)
	if err != nil {
		return report.RecapResponse{}, fmt.Errorf("failed to load attendance history: %w", err)
	}
	if len(entries) == 0 {
		return report.RecapResponse{}, report.ErrNoRecapData
	}

	byMonth := map[string][]attendance.Entry{}
	for _, e := range entries {
		key := unknownMonthSheet
		if !e.Timestamp.IsZero() {
			key = e.Timestamp.In(s.loc).Format("2006-01")
		}
		byMonth[key] = append(byMonth[key], e)
	}

	months := make([]string, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	// Chronological sheets, unreadable rows last. The sheet names sort
	// lexically because they are zero-padded.
	sort.Slice(months, func(i, j int) bool {
		if months[i] == unknownMonthSheet {
			return false
		}
		if months[j] == unknownMonthSheet {
			return true
		}
		return months[i] < months[j]
	})

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
	}

	for i, month := range months {
		sheet := month
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &recapHeader); err != nil {
			return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
		}
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
		}
		if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
			return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
		}
		if err := f.SetColWidth(sheet, "B", "D", 26); err != nil {
			return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
		}

		rows := byMonth[month]
		sort.SliceStable(rows, func(a, b int) bool {
			return rows[a].Timestamp.Before(rows[b].Timestamp)
		})
		for r, e := range rows {
			date := ""
			if !e.Timestamp.IsZero() {
				date = e.Timestamp.In(s.loc).Format("02/01/2006")
			}
			row := []any{date, e.Name, e.MemberID, e.Location, e.ClockInTime}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.RecapResponse{}, fmt.Errorf("%w: %v", report.ErrRecapFailed, err)
	}

	return report.RecapResponse{
		Filename: fmt.Sprintf("rekap-absensi-%s.xlsx", s.now().In(s.loc).Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}

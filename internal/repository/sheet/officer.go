package sheet

import (
	"context"
	"fmt"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/member"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/csvutil"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
)

// Column order of the published command-structure sheet.
const (
	offColNama = iota
	offColJabatan
	offColFoto
)

type officerRepository struct {
	client *sheets.Client
	url    string
}

func NewOfficerRepository(client *sheets.Client, url string) member.OfficerRepository {
	return &officerRepository{client: client, url: url}
}

// List implements member.OfficerRepository.
func (r *officerRepository) List(ctx context.Context) ([]member.Officer, error) {
	rows, err := r.client.Fetch(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch officer sheet: %w", err)
	}

	officers := make([]member.Officer, 0, len(rows))
	for _, row := range rows {
		o := member.Officer{
			Name:     csvutil.Field(row, offColNama),
			Position: csvutil.Field(row, offColJabatan),
			PhotoURL: csvutil.Field(row, offColFoto),
		}
		if o.Name == "" {
			continue
		}
		officers = append(officers, o)
	}

	return officers, nil
}

package sheet

import (
	"context"
	"fmt"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/member"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/csvutil"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
)

// Column order of the published member sheet.
const (
	memColFoto = iota
	memColNama
	memColNIA
	memColKecamatan
)

type memberRepository struct {
	client *sheets.Client
	url    string
}

func NewMemberRepository(client *sheets.Client, url string) member.MemberRepository {
	return &memberRepository{client: client, url: url}
}

// List implements member.MemberRepository.
func (r *memberRepository) List(ctx context.Context) ([]member.Member, error) {
	rows, err := r.client.Fetch(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member sheet: %w", err)
	}

	members := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		m := member.Member{
			PhotoURL: csvutil.Field(row, memColFoto),
			Name:     csvutil.Field(row, memColNama),
			MemberID: csvutil.Field(row, memColNIA),
			District: csvutil.Field(row, memColKecamatan),
		}
		if m.Name == "" {
			continue
		}
		members = append(members, m)
	}

	return members, nil
}

package member

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/member"
)

type MemberServiceImpl struct {
	members  member.MemberRepository
	officers member.OfficerRepository
}

func NewMemberService(members member.MemberRepository, officers member.OfficerRepository) member.MemberService {
	return &MemberServiceImpl{members: members, officers: officers}
}

// List implements member.MemberService.
func (s *MemberServiceImpl) List(ctx context.Context, query string) (member.ListMemberResponse, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		slog.Warn("member sheet unavailable, serving sample data", "error", err)
		return member.ListMemberResponse{
			Members:  filterMembers(sampleMembers(), query),
			Total:    len(sampleMembers()),
			Fallback: true,
		}, nil
	}

	all := make([]member.MemberResponse, 0, len(members))
	for _, m := range members {
		all = append(all, member.MemberResponse{
			PhotoURL: m.PhotoURL,
			Name:     m.Name,
			MemberID: m.MemberID,
			District: m.District,
		})
	}

	return member.ListMemberResponse{
		Members: filterMembers(all, query),
		Total:   len(all),
	}, nil
}

// Officers implements member.MemberService.
func (s *MemberServiceImpl) Officers(ctx context.Context) (member.ListOfficerResponse, error) {
	officers, err := s.officers.List(ctx)
	if err != nil {
		slog.Warn("officer sheet unavailable, serving sample data", "error", err)
		return member.ListOfficerResponse{
			Officers: sampleOfficers(),
			Fallback: true,
		}, nil
	}

	resp := member.ListOfficerResponse{
		Officers: make([]member.OfficerResponse, 0, len(officers)),
	}
	for _, o := range officers {
		resp.Officers = append(resp.Officers, member.OfficerResponse{
			Name:     o.Name,
			Position: o.Position,
			PhotoURL: o.PhotoURL,
		})
	}

	return resp, nil
}

func filterMembers(members []member.MemberResponse, query string) []member.MemberResponse {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return members
	}

	matched := make([]member.MemberResponse, 0, len(members))
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), query) ||
			strings.Contains(strings.ToLower(m.MemberID), query) ||
			strings.Contains(strings.ToLower(m.District), query) {
			matched = append(matched, m)
		}
	}
	return matched
}

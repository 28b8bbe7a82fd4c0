package member

import "github.com/tagana-serang/fieldops-backend-go/internal/domain/member"

// Offline fallback datasets for when the published sheets cannot be
// reached.

func sampleMembers() []member.MemberResponse {
	return []member.MemberResponse{
		{Name: "Budi Santoso", MemberID: "123225425", District: "Ciomas"},
		{Name: "Siti Aminah", MemberID: "123225426", District: "Baros"},
		{Name: "Agus Supriatna", MemberID: "123225427", District: "Padarincang"},
		{Name: "Dewi Lestari", MemberID: "123225428", District: "Anyar"},
	}
}

func sampleOfficers() []member.OfficerResponse {
	return []member.OfficerResponse{
		{Name: "H. Ahmad Fauzi", Position: "Koordinator"},
		{Name: "Rina Marlina", Position: "Sekretaris"},
		{Name: "Dedi Kurniawan", Position: "Bendahara"},
	}
}

package member

import (
	"context"
)

// MemberService defines business logic for the member directory.
type MemberService interface {
	// List returns members, optionally filtered by a case-insensitive
	// substring match on name, member number, or district.
	List(ctx context.Context, query string) (ListMemberResponse, error)

	// Officers returns the posko command structure in sheet order.
	Officers(ctx context.Context) (ListOfficerResponse, error)
}

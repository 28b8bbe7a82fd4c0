package member

import (
	"context"
)

// MemberRepository reads member rows from the published sheet.
type MemberRepository interface {
	List(ctx context.Context) ([]Member, error)
}

// OfficerRepository reads the posko command structure sheet.
type OfficerRepository interface {
	List(ctx context.Context) ([]Officer, error)
}

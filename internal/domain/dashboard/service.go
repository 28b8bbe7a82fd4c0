package dashboard

import "context"

// DashboardService aggregates counts across the published sheets for the
// home dashboard. Every sheet is best-effort: a sheet that cannot be
// fetched contributes zeros rather than failing the whole page.
type DashboardService interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}

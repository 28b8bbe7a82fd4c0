package report

import "context"

// DisasterRepository reads submitted disaster reports from the published
// sheet.
type DisasterRepository interface {
	List(ctx context.Context) ([]DisasterReport, error)
}

// ActivityRepository reads submitted activity reports from the published
// sheet.
type ActivityRepository interface {
	List(ctx context.Context) ([]ActivityReport, error)
}

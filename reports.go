package client

import (
	"context"

	"github.com/historial/historial-client/guard"
	"github.com/historial/historial-client/internal/api"
)

// Summary retrieves the reporting service's pre-aggregated summary for the
// Reports view. Admin-gated; the groupings come back as-is, and display
// ordering (equipment by descending count) is applied by stats.EquipmentRanking.
func (c *Client) Summary(ctx context.Context) (*ReportSummary, error) {
	if !c.guard.Allows(guard.ActionViewReports) {
		return nil, ErrAdminRequired
	}
	return api.Summary(ctx, c.http, c.baseURL)
}

// ReportByEquipment is the reporting service's per-equipment drill-down.
func (c *Client) ReportByEquipment(ctx context.Context, equipment string) ([]Activity, error) {
	if !c.guard.Allows(guard.ActionViewReports) {
		return nil, ErrAdminRequired
	}
	return api.ReportByEquipment(ctx, c.http, c.baseURL, equipment)
}

// ReportByKind is the reporting service's per-kind drill-down.
func (c *Client) ReportByKind(ctx context.Context, kind Kind) ([]Activity, error) {
	if !c.guard.Allows(guard.ActionViewReports) {
		return nil, ErrAdminRequired
	}
	return api.ReportByKind(ctx, c.http, c.baseURL, kind)
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/historial/historial-client/internal/errors"
	"github.com/historial/historial-client/internal/types"
)

// Summary retrieves the pre-aggregated activity summary. The groupings are
// consumed as-is; nothing is re-derived client-side.
func Summary(ctx context.Context, httpClient *http.Client, baseURL string) (*types.ReportSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/reports/summary", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("report summary", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("report summary", resp)
	}

	var summary types.ReportSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ReportByEquipment is the reporting service's per-equipment drill-down.
func ReportByEquipment(ctx context.Context, httpClient *http.Client, baseURL, equipment string) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "report by equipment",
		fmt.Sprintf("%s/api/reports/equipo/%s", baseURL, url.PathEscape(equipment)))
}

// ReportByKind is the reporting service's per-kind drill-down.
func ReportByKind(ctx context.Context, httpClient *http.Client, baseURL string, kind types.Kind) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "report by type",
		fmt.Sprintf("%s/api/reports/type/%s", baseURL, url.PathEscape(string(kind))))
}

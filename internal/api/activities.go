package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/historial/historial-client/internal/errors"
	"github.com/historial/historial-client/internal/types"
)

// The activity service serializes timestamps as zone-less LocalDateTime;
// the date-range query expects the same layout.
const dateTimeLayout = "2006-01-02T15:04:05"

// ListActivities retrieves the full record set.
func ListActivities(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "list activities", fmt.Sprintf("%s/api/activities", baseURL))
}

// ActivitiesByKind is the server-side kind filter.
func ActivitiesByKind(ctx context.Context, httpClient *http.Client, baseURL string, kind types.Kind) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "list activities by type",
		fmt.Sprintf("%s/api/activities/type/%s", baseURL, url.PathEscape(string(kind))))
}

// ActivitiesByCategory is the server-side category filter.
func ActivitiesByCategory(ctx context.Context, httpClient *http.Client, baseURL string, category types.Category) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "list activities by category",
		fmt.Sprintf("%s/api/activities/category/%s", baseURL, url.PathEscape(string(category))))
}

// ActivitiesByEquipment is the server-side equipment filter.
func ActivitiesByEquipment(ctx context.Context, httpClient *http.Client, baseURL, equipment string) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "list activities by equipment",
		fmt.Sprintf("%s/api/activities/equipo/%s", baseURL, url.PathEscape(equipment)))
}

// ActivitiesByFicha lists the records filed by one technician.
func ActivitiesByFicha(ctx context.Context, httpClient *http.Client, baseURL, numFicha string) ([]types.Activity, error) {
	return listActivities(ctx, httpClient, "list activities by ficha",
		fmt.Sprintf("%s/api/activities/ficha/%s", baseURL, url.PathEscape(numFicha)))
}

// ActivitiesByDateRange is the server-side date window filter.
func ActivitiesByDateRange(ctx context.Context, httpClient *http.Client, baseURL string, start, end time.Time) ([]types.Activity, error) {
	q := url.Values{}
	q.Set("startDate", start.Format(dateTimeLayout))
	q.Set("endDate", end.Format(dateTimeLayout))
	return listActivities(ctx, httpClient, "list activities by date range",
		fmt.Sprintf("%s/api/activities/date-range?%s", baseURL, q.Encode()))
}

func listActivities(ctx context.Context, httpClient *http.Client, op, fullURL string) ([]types.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp)
	}

	var records []types.Activity
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetActivity retrieves a single record by ID.
func GetActivity(ctx context.Context, httpClient *http.Client, baseURL string, id int64) (*types.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/activities/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("get activity", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("get activity", resp)
	}

	var record types.Activity
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateActivity persists a draft. The service assigns id and createdAt and
// returns the stored record.
func CreateActivity(ctx context.Context, httpClient *http.Client, baseURL string, draft types.ActivityDraft) (*types.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/activities", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("create activity", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError("create activity", resp)
	}

	var record types.Activity
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateActivity replaces an existing record's fields.
func UpdateActivity(ctx context.Context, httpClient *http.Client, baseURL string, id int64, draft types.ActivityDraft) (*types.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/activities/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("update activity", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("update activity", resp)
	}

	var record types.Activity
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteActivity removes a record. Backend returns 204 No Content on success.
func DeleteActivity(ctx context.Context, httpClient *http.Client, baseURL string, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/api/activities/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errors.NewTransport("delete activity", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError("delete activity", resp)
	}
	return nil
}

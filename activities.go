package client

import (
	"context"
	"strings"
	"time"

	"github.com/historial/historial-client/guard"
	"github.com/historial/historial-client/internal/api"
	"github.com/historial/historial-client/internal/types"
)

// ListActivities retrieves the full record set visible to the session. On
// failure the error surfaces as-is; the SDK keeps no cache, so callers keep
// showing their last-good slice.
func (c *Client) ListActivities(ctx context.Context) ([]Activity, error) {
	return api.ListActivities(ctx, c.http, c.baseURL)
}

// GetActivity retrieves a single record by ID.
func (c *Client) GetActivity(ctx context.Context, id int64) (*Activity, error) {
	return api.GetActivity(ctx, c.http, c.baseURL, id)
}

// CreateActivity validates the draft's mandatory fields and persists it. The
// returned record carries the server-assigned id and timestamp; it is not
// merged into any local state, so re-fetch to refresh a list.
func (c *Client) CreateActivity(ctx context.Context, draft ActivityDraft) (*Activity, error) {
	if err := types.ValidateDraft(draft); err != nil {
		return nil, err
	}
	return api.CreateActivity(ctx, c.http, c.baseURL, draft)
}

// UpdateActivity replaces an existing record's fields after the same
// validation as create.
func (c *Client) UpdateActivity(ctx context.Context, id int64, draft ActivityDraft) (*Activity, error) {
	if err := types.ValidateDraft(draft); err != nil {
		return nil, err
	}
	return api.UpdateActivity(ctx, c.http, c.baseURL, id, draft)
}

// DeleteActivity removes a record. A nil id is a no-op returning nil; a
// malformed call site must never turn into a request. Deleting records is
// admin-gated.
func (c *Client) DeleteActivity(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	if !c.guard.Allows(guard.ActionDeleteActivity) {
		return ErrAdminRequired
	}
	return api.DeleteActivity(ctx, c.http, c.baseURL, *id)
}

// ActivitiesByKind is the server-side kind filter (pass-through query).
func (c *Client) ActivitiesByKind(ctx context.Context, kind Kind) ([]Activity, error) {
	return api.ActivitiesByKind(ctx, c.http, c.baseURL, kind)
}

// ActivitiesByCategory is the server-side category filter.
func (c *Client) ActivitiesByCategory(ctx context.Context, category Category) ([]Activity, error) {
	return api.ActivitiesByCategory(ctx, c.http, c.baseURL, category)
}

// ActivitiesByEquipment is the server-side equipment filter.
func (c *Client) ActivitiesByEquipment(ctx context.Context, equipment string) ([]Activity, error) {
	return api.ActivitiesByEquipment(ctx, c.http, c.baseURL, equipment)
}

// ActivitiesByFicha lists the records filed by one technician.
func (c *Client) ActivitiesByFicha(ctx context.Context, numFicha string) ([]Activity, error) {
	return api.ActivitiesByFicha(ctx, c.http, c.baseURL, numFicha)
}

// ActivitiesByDateRange is the server-side date window filter.
func (c *Client) ActivitiesByDateRange(ctx context.Context, start, end time.Time) ([]Activity, error) {
	return api.ActivitiesByDateRange(ctx, c.http, c.baseURL, start, end)
}

// FilterActivities narrows an already-fetched record set. Pure and stable:
// equal inputs yield equal output in the original relative order. The kind
// filter and the search filter compose by conjunction; the zero filter (or
// KindAll with an empty search) is the identity.
func FilterActivities(records []Activity, f ActivityFilter) []Activity {
	out := make([]Activity, 0, len(records))
	search := strings.ToLower(f.Search)
	for _, r := range records {
		if f.Kind != "" && f.Kind != KindAll && r.Kind != f.Kind {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Equipment), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

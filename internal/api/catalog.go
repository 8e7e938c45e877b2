package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/models"
)

// Catalog is the CRUD client of one resource path. T is the record pointer
// type, e.g. *models.Sport.
type Catalog[T models.Record] struct {
	client   *Client
	resource string
}

// NewCatalog binds a resource path to a record type
func NewCatalog[T models.Record](c *Client, resource string) *Catalog[T] {
	return &Catalog[T]{client: c, resource: resource}
}

// Resource returns the path segment this catalog serves
func (cat *Catalog[T]) Resource() string {
	return cat.resource
}

// List returns every record
func (cat *Catalog[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := cat.client.getJSON(ctx, "/"+cat.resource, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one record
func (cat *Catalog[T]) Get(ctx context.Context, id int) (T, error) {
	var out T
	if err := cat.client.getJSON(ctx, cat.path(id), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Create validates rec locally and creates it. Nothing is sent when
// validation fails.
func (cat *Catalog[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	if err := rec.Validate(); err != nil {
		return out, err
	}
	if err := cat.client.postJSON(ctx, "/"+cat.resource, rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update validates rec locally and replaces the stored record
func (cat *Catalog[T]) Update(ctx context.Context, rec T) (T, error) {
	var out T
	if err := rec.Validate(); err != nil {
		return out, err
	}
	if err := cat.client.putJSON(ctx, cat.path(rec.RecordKey()), rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Delete removes one record
func (cat *Catalog[T]) Delete(ctx context.Context, id int) error {
	return cat.client.delete(ctx, cat.path(id))
}

// BulkResult reports the outcome of a bulk delete per item
type BulkResult struct {
	Deleted []int
	Failed  map[int]error
}

// OK reports whether every item was deleted
func (r BulkResult) OK() bool {
	return len(r.Failed) == 0
}

// BulkDelete deletes each id independently. Failures do not stop the
// remaining deletes and successful deletes are never undone.
func (cat *Catalog[T]) BulkDelete(ctx context.Context, ids []int) BulkResult {
	return bulkDelete(ctx, ids, cat.Delete)
}

func bulkDelete(ctx context.Context, ids []int, del func(context.Context, int) error) BulkResult {
	res := BulkResult{Failed: make(map[int]error)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			res.Failed[id] = err
			continue
		}
		if err := del(ctx, id); err != nil {
			res.Failed[id] = err
			continue
		}
		res.Deleted = append(res.Deleted, id)
	}
	return res
}

func (cat *Catalog[T]) path(id int) string {
	return fmt.Sprintf("/%s/%d", cat.resource, id)
}

// ============================================================================
// Typed catalogs
// ============================================================================

// Categories lists the age brackets offered by category_id pickers
func (c *Client) Categories() *Catalog[*models.Category] {
	return NewCatalog[*models.Category](c, models.ResourceCategories)
}

// ConsultingRooms is the room catalog appointments are booked into
func (c *Client) ConsultingRooms() *Catalog[*models.ConsultingRoom] {
	return NewCatalog[*models.ConsultingRoom](c, models.ResourceConsultingRooms)
}

// Sports is the sport catalog sports groups reference
func (c *Client) Sports() *Catalog[*models.Sport] {
	return NewCatalog[*models.Sport](c, models.ResourceSports)
}

// SportsGroups is the group catalog schedules reference
func (c *Client) SportsGroups() *Catalog[*models.SportsGroup] {
	return NewCatalog[*models.SportsGroup](c, models.ResourceSportsGroups)
}

// Responsibles is the catalog of professionals who attend appointments
func (c *Client) Responsibles() *Catalog[*models.ResponsibleParty] {
	return NewCatalog[*models.ResponsibleParty](c, models.ResourceResponsibles)
}

// Appointments serves booked appointments through the generic endpoints
func (c *Client) Appointments() *Catalog[*models.Appointment] {
	return NewCatalog[*models.Appointment](c, models.ResourceAppointments)
}

// Records returns an untyped catalog for a resource path chosen at runtime,
// as the CLI does. Records decode into the resource's model type.
func (c *Client) Records(resource string) (*RecordCatalog, error) {
	if _, err := models.NewRecord(resource); err != nil {
		return nil, err
	}
	return &RecordCatalog{client: c, resource: resource}, nil
}

// RecordCatalog is a Catalog whose record type is picked by resource path
type RecordCatalog struct {
	client   *Client
	resource string
}

// List returns every record of the resource
func (rc *RecordCatalog) List(ctx context.Context) ([]models.Record, error) {
	var raw []json.RawMessage
	if err := rc.client.getJSON(ctx, "/"+rc.resource, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Record, 0, len(raw))
	for _, item := range raw {
		rec, _ := models.NewRecord(rc.resource)
		if err := json.Unmarshal(item, rec); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", rc.resource, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Get returns one record of the resource
func (rc *RecordCatalog) Get(ctx context.Context, id int) (models.Record, error) {
	rec, _ := models.NewRecord(rc.resource)
	if err := rc.client.getJSON(ctx, rc.path(id), rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Create validates and creates rec
func (rc *RecordCatalog) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	out, _ := models.NewRecord(rc.resource)
	if err := rc.client.postJSON(ctx, "/"+rc.resource, rec, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update validates rec and replaces the stored record
func (rc *RecordCatalog) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	out, _ := models.NewRecord(rc.resource)
	if err := rc.client.putJSON(ctx, rc.path(rec.RecordKey()), rec, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one record
func (rc *RecordCatalog) Delete(ctx context.Context, id int) error {
	return rc.client.delete(ctx, rc.path(id))
}

// BulkDelete deletes every id independently
func (rc *RecordCatalog) BulkDelete(ctx context.Context, ids []int) BulkResult {
	return bulkDelete(ctx, ids, rc.Delete)
}

func (rc *RecordCatalog) path(id int) string {
	return fmt.Sprintf("/%s/%d", rc.resource, id)
}

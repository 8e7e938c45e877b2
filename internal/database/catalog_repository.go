package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/models"
)

// CatalogRepo stores every catalog resource in one table as JSON documents.
// The record's own id is kept in sync with the row id.
type CatalogRepo struct {
	db *sql.DB
}

// reference is a JSON field of one resource pointing at another resource
type reference struct {
	resource string
	field    string
}

// references lists, per resource, the records that point at it. Deleting a
// referenced record fails with ErrInUse.
var references = map[string][]reference{
	models.ResourceSports:       {{models.ResourceSportsGroups, "sport_id"}},
	models.ResourceCategories:   {{models.ResourceSportsGroups, "category_id"}},
	models.ResourceSportsGroups: {{models.ResourceSchedules, "sports_group_id"}},
}

// ListRecords returns every record of resource in insertion order
func (r *CatalogRepo) ListRecords(ctx context.Context, resource string) ([]models.Record, error) {
	if !models.IsCatalogResource(resource) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownResource, resource)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payload FROM catalog_records WHERE resource = ? ORDER BY id`, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", resource, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var id int
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", resource, err)
		}
		rec, err := decodePayload(resource, id, payload)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetRecord returns one record
func (r *CatalogRepo) GetRecord(ctx context.Context, resource string, id int) (models.Record, error) {
	if !models.IsCatalogResource(resource) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownResource, resource)
	}
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM catalog_records WHERE resource = ? AND id = ?`, resource, id).Scan(&payload)
	if err != nil {
		return nil, notFound(err, resource, id)
	}
	return decodePayload(resource, id, payload)
}

// CreateRecord stores rec and returns it with its new id
func (r *CatalogRepo) CreateRecord(ctx context.Context, resource string, rec models.Record) (models.Record, error) {
	if !models.IsCatalogResource(resource) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownResource, resource)
	}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_records (resource, payload) VALUES (?, '{}')`, resource)
		if err != nil {
			return fmt.Errorf("failed to insert %s: %w", resource, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		rec.SetRecordKey(int(id))
		return writePayload(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateRecord replaces the stored document of rec
func (r *CatalogRepo) UpdateRecord(ctx context.Context, resource string, rec models.Record) (models.Record, error) {
	if !models.IsCatalogResource(resource) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownResource, resource)
	}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM catalog_records WHERE resource = ? AND id = ?`, resource, rec.RecordKey()).Scan(&one)
		if err != nil {
			return notFound(err, resource, rec.RecordKey())
		}
		return writePayload(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteRecord removes one record unless another record references it
func (r *CatalogRepo) DeleteRecord(ctx context.Context, resource string, id int) error {
	if !models.IsCatalogResource(resource) {
		return fmt.Errorf("%w: %s", models.ErrUnknownResource, resource)
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, ref := range references[resource] {
			var n int
			err := tx.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM catalog_records
				 WHERE resource = ? AND json_extract(payload, '$.' || ?) = ?`,
				ref.resource, ref.field, id).Scan(&n)
			if err != nil {
				return fmt.Errorf("failed to check references: %w", err)
			}
			if n > 0 {
				return fmt.Errorf("%s %d used by %d %s: %w", resource, id, n, ref.resource, ErrInUse)
			}
		}
		if err := appointmentReferences(ctx, tx, resource, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM catalog_records WHERE resource = ? AND id = ?`, resource, id)
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", resource, err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return fmt.Errorf("%s %d: %w", resource, id, ErrNotFound)
		}
		return nil
	})
}

// appointmentReferences blocks deleting rooms and professionals that still
// have appointments
func appointmentReferences(ctx context.Context, tx *sql.Tx, resource string, id int) error {
	var column string
	switch resource {
	case models.ResourceConsultingRooms:
		column = "consulting_room_id"
	case models.ResourceResponsibles:
		column = "responsible_id"
	default:
		return nil
	}
	var n int
	if err := tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM appointments WHERE %s = ?`, column), id).Scan(&n); err != nil {
		return fmt.Errorf("failed to check appointments: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%s %d has %d appointments: %w", resource, id, n, ErrInUse)
	}
	return nil
}

func writePayload(ctx context.Context, tx *sql.Tx, rec models.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE catalog_records SET payload = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(payload), rec.RecordKey())
	return err
}

func decodePayload(resource string, id int, payload string) (models.Record, error) {
	rec, err := models.NewRecord(resource)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), rec); err != nil {
		return nil, fmt.Errorf("failed to decode %s %d: %w", resource, id, err)
	}
	rec.SetRecordKey(id)
	return rec, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/models"
)

// ReportRepo aggregates appointments for the statistics endpoints.
type ReportRepo struct {
	db *sql.DB
}

const professionalStatQuery = `
	SELECT COALESCE(json_extract(c.payload, '$.first_name') || ' ' || json_extract(c.payload, '$.last_name'),
		'#' || a.responsible_id), COUNT(*)
	FROM appointments a
	LEFT JOIN catalog_records c ON c.id = a.responsible_id AND c.resource = 'responsibles'
	GROUP BY a.responsible_id
	ORDER BY COUNT(*) DESC, 1`

var statQueries = map[models.StatDimension]string{
	models.ByStatus:       `SELECT status, COUNT(*) FROM appointments GROUP BY status ORDER BY status`,
	models.ByMonth:        `SELECT strftime('%Y-%m', starts_at), COUNT(*) FROM appointments GROUP BY 1 ORDER BY 1`,
	models.ByArea:         `SELECT area, COUNT(*) FROM appointments GROUP BY area ORDER BY COUNT(*) DESC, area`,
	models.ByProfessional: professionalStatQuery,
}

// CountAppointments counts appointments grouped by one dimension
func (r *ReportRepo) CountAppointments(ctx context.Context, by models.StatDimension) ([]models.StatCount, error) {
	query, ok := statQueries[by]
	if !ok {
		return nil, fmt.Errorf("unknown stat dimension %q", by)
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments by %s: %w", by, err)
	}
	defer rows.Close()

	out := make([]models.StatCount, 0)
	for rows.Next() {
		var s models.StatCount
		if err := rows.Scan(&s.Label, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

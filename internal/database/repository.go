package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*AthleteRepo
	*ProgramRepo
	*CatalogRepo
	*AppointmentRepo
	*ReportRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		AthleteRepo:     &AthleteRepo{db: db},
		ProgramRepo:     &ProgramRepo{db: db},
		CatalogRepo:     &CatalogRepo{db: db},
		AppointmentRepo: &AppointmentRepo{db: db},
		ReportRepo:      &ReportRepo{db: db},
	}
}

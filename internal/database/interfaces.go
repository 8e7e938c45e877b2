package database

import (
	"context"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// AthleteReader defines read operations for athletes.
type AthleteReader interface {
	ListAthletes(ctx context.Context) ([]*models.Athlete, error)
	GetAthlete(ctx context.Context, id types.AthleteID) (*models.Athlete, error)
}

// AthleteWriter defines write operations for athletes.
type AthleteWriter interface {
	CreateAthlete(ctx context.Context, a *models.Athlete) (*models.Athlete, error)
}

// ProgramReader defines read operations for programs and their membership.
type ProgramReader interface {
	ListPrograms(ctx context.Context) ([]*models.Program, error)
}

// ProgramWriter defines write operations for programs and assignments.
type ProgramWriter interface {
	CreateProgram(ctx context.Context, name, description string) (*models.Program, error)
	AssignAthlete(ctx context.Context, athlete types.AthleteID, program types.ProgramID, position int) error
}

// CatalogRepository stores the generic catalog resources.
type CatalogRepository interface {
	ListRecords(ctx context.Context, resource string) ([]models.Record, error)
	GetRecord(ctx context.Context, resource string, id int) (models.Record, error)
	CreateRecord(ctx context.Context, resource string, rec models.Record) (models.Record, error)
	UpdateRecord(ctx context.Context, resource string, rec models.Record) (models.Record, error)
	DeleteRecord(ctx context.Context, resource string, id int) error
}

// AppointmentRepository stores appointments.
type AppointmentRepository interface {
	ListAppointments(ctx context.Context) ([]*models.Appointment, error)
	GetAppointment(ctx context.Context, id types.AppointmentID) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, a *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, a *models.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id types.AppointmentID) error
}

// ReportReader aggregates appointments.
type ReportReader interface {
	CountAppointments(ctx context.Context, by models.StatDimension) ([]models.StatCount, error)
}

// DataStore defines the unified interface for all data operations needed by
// the development server. Consumers can depend on the smaller interfaces.
type DataStore interface {
	AthleteReader
	AthleteWriter
	ProgramReader
	ProgramWriter
	CatalogRepository
	AppointmentRepository
	ReportReader
}

package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// Seed fills an empty database with demo data. A database that already has
// athletes is left alone.
func Seed(ctx context.Context, repo *Repository) error {
	existing, err := repo.ListAthletes(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	athletes := []*models.Athlete{
		{FirstName: "Ana", LastName: "Torres", SecondLastName: "Ríos", Age: 16, Category: "Juvenil", Sport: "Natación", CURP: "TORA100101MJCRSN07"},
		{FirstName: "Bruno", LastName: "Díaz", SecondLastName: "León", Age: 19, Category: "Primera", Sport: "Atletismo"},
		{FirstName: "Carla", LastName: "Vega", SecondLastName: "Mora", Age: 14, Category: "Infantil", Sport: "Natación"},
		{FirstName: "Diego", LastName: "Herrera", Age: 21, Category: "Primera", Sport: "Fútbol"},
		{FirstName: "Elena", LastName: "Campos", SecondLastName: "Núñez", Age: 17, Category: "Juvenil", Sport: "Voleibol"},
		{FirstName: "Fernando", LastName: "Ibarra", Age: 15, Category: "Juvenil", Sport: "Atletismo"},
	}
	ids := make([]types.AthleteID, 0, len(athletes))
	for _, a := range athletes {
		created, err := repo.CreateAthlete(ctx, a)
		if err != nil {
			return fmt.Errorf("failed to seed athlete: %w", err)
		}
		ids = append(ids, created.ID)
	}

	programs := []struct {
		name, description string
		members           []types.AthleteID
	}{
		{"Fuerza", "Acondicionamiento de fuerza", []types.AthleteID{ids[1], ids[3]}},
		{"Rehabilitación", "Recuperación de lesiones", []types.AthleteID{ids[4]}},
		{"Nutrición", "Plan alimenticio", nil},
	}
	for _, p := range programs {
		created, err := repo.CreateProgram(ctx, p.name, p.description)
		if err != nil {
			return fmt.Errorf("failed to seed program: %w", err)
		}
		for i, athlete := range p.members {
			if err := repo.AssignAthlete(ctx, athlete, created.ID, i); err != nil {
				return fmt.Errorf("failed to seed assignment: %w", err)
			}
		}
	}

	catalog := []struct {
		resource string
		record   models.Record
	}{
		{models.ResourceCategories, &models.Category{Name: "Infantil", MinAge: 8, MaxAge: 14}},
		{models.ResourceCategories, &models.Category{Name: "Juvenil", MinAge: 15, MaxAge: 18}},
		{models.ResourceSports, &models.Sport{Name: "Natación"}},
		{models.ResourceSports, &models.Sport{Name: "Atletismo"}},
		{models.ResourceConsultingRooms, &models.ConsultingRoom{Name: "Consultorio 1", Floor: 1, Capacity: 2}},
		{models.ResourceConsultingRooms, &models.ConsultingRoom{Name: "Gimnasio", Floor: 0, Capacity: 12}},
		{models.ResourceResponsibles, &models.ResponsibleParty{FirstName: "Laura", LastName: "Méndez", Specialty: "Nutrición", Email: "laura@clinica.mx"}},
		{models.ResourceResponsibles, &models.ResponsibleParty{FirstName: "Raúl", LastName: "Ortega", Specialty: "Fisioterapia", Email: "raul@clinica.mx"}},
	}
	created := make(map[string][]int)
	for _, c := range catalog {
		rec, err := repo.CreateRecord(ctx, c.resource, c.record)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", c.resource, err)
		}
		created[c.resource] = append(created[c.resource], rec.RecordKey())
	}

	rooms := created[models.ResourceConsultingRooms]
	pros := created[models.ResourceResponsibles]
	base := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, -2, 0).Add(9 * time.Hour)
	areas := []string{"Nutrición", "Fisioterapia", "Psicología"}
	statuses := []models.AppointmentStatus{models.StatusCompleted, models.StatusCompleted, models.StatusNoShow, models.StatusScheduled}
	for i := 0; i < 12; i++ {
		appt := &models.Appointment{
			AthleteID:        ids[i%len(ids)],
			ConsultingRoomID: types.CatalogIDFromInt(rooms[i%len(rooms)]),
			ResponsibleID:    types.CatalogIDFromInt(pros[i%len(pros)]),
			Area:             areas[i%len(areas)],
			StartsAt:         base.AddDate(0, 0, i*5),
			DurationMinutes:  45,
			Status:           statuses[i%len(statuses)],
		}
		if _, err := repo.CreateAppointment(ctx, appt); err != nil {
			return fmt.Errorf("failed to seed appointment: %w", err)
		}
	}

	slog.Info("seeded demo data", "athletes", len(ids), "programs", len(programs))
	return nil
}

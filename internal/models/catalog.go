package models

import (
	"fmt"
	"regexp"

	"github.com/thenoetrevino/plantel/internal/types"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// Record is implemented by every entity served through the generic catalog
// endpoints
type Record interface {
	RecordKey() int
	SetRecordKey(id int)
	DisplayName() string
	Validate() error
}

// NewRecord returns an empty record for the given resource path
func NewRecord(resource string) (Record, error) {
	switch resource {
	case ResourceCategories:
		return &Category{}, nil
	case ResourceConsultingRooms:
		return &ConsultingRoom{}, nil
	case ResourceSports:
		return &Sport{}, nil
	case ResourceSportsGroups:
		return &SportsGroup{}, nil
	case ResourceSchedules:
		return &Schedule{}, nil
	case ResourceResponsibles:
		return &ResponsibleParty{}, nil
	case ResourceAppointments:
		return &Appointment{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
}

// ============================================================================
// CATEGORY
// ============================================================================

// Category is an age bracket athletes compete in
type Category struct {
	ID     types.CatalogID `json:"id"`
	Name   string          `json:"name"`
	MinAge int             `json:"min_age"`
	MaxAge int             `json:"max_age"`
}

func (c *Category) RecordKey() int      { return c.ID.ToInt() }
func (c *Category) SetRecordKey(id int) { c.ID = types.CatalogIDFromInt(id) }
func (c *Category) DisplayName() string { return c.Name }

func (c *Category) Validate() error {
	var errs validation.Errors
	errs.Add(validation.Required("name", c.Name))
	errs.Add(validation.MaxLength("name", c.Name, 60))
	errs.Add(validation.IntRange("min_age", c.MinAge, 0, 100))
	errs.Add(validation.IntRange("max_age", c.MaxAge, 0, 100))
	if c.MinAge > c.MaxAge {
		errs.Add(&validation.FieldError{Field: "max_age", Message: "must not be lower than min_age"})
	}
	return errs.Err()
}

// ============================================================================
// CONSULTING ROOM
// ============================================================================

// ConsultingRoom is a physical room appointments are booked into
type ConsultingRoom struct {
	ID       types.CatalogID `json:"id"`
	Name     string          `json:"name"`
	Floor    int             `json:"floor"`
	Capacity int             `json:"capacity"`
}

func (r *ConsultingRoom) RecordKey() int      { return r.ID.ToInt() }
func (r *ConsultingRoom) SetRecordKey(id int) { r.ID = types.CatalogIDFromInt(id) }
func (r *ConsultingRoom) DisplayName() string { return r.Name }

func (r *ConsultingRoom) Validate() error {
	var errs validation.Errors
	errs.Add(validation.Required("name", r.Name))
	errs.Add(validation.IntRange("floor", r.Floor, -2, 20))
	errs.Add(validation.IntRange("capacity", r.Capacity, 1, 50))
	return errs.Err()
}

// ============================================================================
// SPORT
// ============================================================================

// Sport is a discipline practiced by athletes
type Sport struct {
	ID          types.CatalogID `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

func (s *Sport) RecordKey() int      { return s.ID.ToInt() }
func (s *Sport) SetRecordKey(id int) { s.ID = types.CatalogIDFromInt(id) }
func (s *Sport) DisplayName() string { return s.Name }

func (s *Sport) Validate() error {
	var errs validation.Errors
	errs.Add(validation.Required("name", s.Name))
	errs.Add(validation.MaxLength("name", s.Name, 60))
	errs.Add(validation.MaxLength("description", s.Description, 500))
	return errs.Err()
}

// ============================================================================
// SPORTS GROUP
// ============================================================================

// SportsGroup is a team or squad of one sport and category
type SportsGroup struct {
	ID         types.CatalogID `json:"id"`
	Name       string          `json:"name"`
	SportID    types.CatalogID `json:"sport_id"`
	CategoryID types.CatalogID `json:"category_id"`
}

func (g *SportsGroup) RecordKey() int      { return g.ID.ToInt() }
func (g *SportsGroup) SetRecordKey(id int) { g.ID = types.CatalogIDFromInt(id) }
func (g *SportsGroup) DisplayName() string { return g.Name }

func (g *SportsGroup) Validate() error {
	var errs validation.Errors
	errs.Add(validation.Required("name", g.Name))
	errs.Add(validation.PositiveID("sport_id", g.SportID.ToInt()))
	errs.Add(validation.PositiveID("category_id", g.CategoryID.ToInt()))
	return errs.Err()
}

// ============================================================================
// SCHEDULE
// ============================================================================

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Schedule is a weekly training slot of a sports group
type Schedule struct {
	ID            types.CatalogID `json:"id"`
	SportsGroupID types.CatalogID `json:"sports_group_id"`
	Weekday       int             `json:"weekday"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
}

func (s *Schedule) RecordKey() int      { return s.ID.ToInt() }
func (s *Schedule) SetRecordKey(id int) { s.ID = types.CatalogIDFromInt(id) }

func (s *Schedule) DisplayName() string {
	return fmt.Sprintf("day %d %s-%s", s.Weekday, s.StartTime, s.EndTime)
}

func (s *Schedule) Validate() error {
	var errs validation.Errors
	errs.Add(validation.PositiveID("sports_group_id", s.SportsGroupID.ToInt()))
	errs.Add(validation.IntRange("weekday", s.Weekday, 1, 7))
	startOK := clockPattern.MatchString(s.StartTime)
	endOK := clockPattern.MatchString(s.EndTime)
	if !startOK {
		errs.Add(&validation.FieldError{Field: "start_time", Message: "must be HH:MM"})
	}
	if !endOK {
		errs.Add(&validation.FieldError{Field: "end_time", Message: "must be HH:MM"})
	}
	// zero-padded HH:MM compares correctly as a string
	if startOK && endOK && s.EndTime <= s.StartTime {
		errs.Add(&validation.FieldError{Field: "end_time", Message: "must be after start_time"})
	}
	return errs.Err()
}

// ============================================================================
// RESPONSIBLE PARTY
// ============================================================================

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ResponsibleParty is a professional who attends appointments
type ResponsibleParty struct {
	ID        types.CatalogID `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Specialty string          `json:"specialty"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
}

func (p *ResponsibleParty) RecordKey() int      { return p.ID.ToInt() }
func (p *ResponsibleParty) SetRecordKey(id int) { p.ID = types.CatalogIDFromInt(id) }

func (p *ResponsibleParty) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

func (p *ResponsibleParty) Validate() error {
	var errs validation.Errors
	errs.Add(validation.Required("first_name", p.FirstName))
	errs.Add(validation.Required("last_name", p.LastName))
	errs.Add(validation.Required("specialty", p.Specialty))
	if !emailPattern.MatchString(p.Email) {
		errs.Add(&validation.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	return errs.Err()
}

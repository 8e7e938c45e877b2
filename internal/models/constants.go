package models

// ============================================================================
// CATALOG RESOURCE PATHS
// ============================================================================

// Resource paths as exposed by the REST API
const (
	ResourceCategories      = "categories"
	ResourceConsultingRooms = "consulting-rooms"
	ResourceSports          = "sports"
	ResourceSportsGroups    = "sports-groups"
	ResourceSchedules       = "schedules"
	ResourceResponsibles    = "responsibles"
	ResourceAppointments    = "appointments"
)

// CatalogResources lists the generic catalog resources in display order.
// Appointments have a typed table of their own and are not part of it.
var CatalogResources = []string{
	ResourceCategories,
	ResourceConsultingRooms,
	ResourceSports,
	ResourceSportsGroups,
	ResourceSchedules,
	ResourceResponsibles,
}

// IsCatalogResource reports whether path names a generic catalog resource
func IsCatalogResource(path string) bool {
	for _, r := range CatalogResources {
		if r == path {
			return true
		}
	}
	return false
}

// ============================================================================
// APPOINTMENT STATUS
// ============================================================================

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the known statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ============================================================================
// REPORT DIMENSIONS
// ============================================================================

// StatDimension is a grouping the backend aggregates appointment counts by
type StatDimension string

const (
	ByStatus       StatDimension = "status"
	ByMonth        StatDimension = "month"
	ByArea         StatDimension = "area"
	ByProfessional StatDimension = "professional"
)

// StatDimensions lists every supported grouping
var StatDimensions = []StatDimension{ByStatus, ByMonth, ByArea, ByProfessional}

// Valid reports whether d is a supported grouping
func (d StatDimension) Valid() bool {
	for _, known := range StatDimensions {
		if d == known {
			return true
		}
	}
	return false
}

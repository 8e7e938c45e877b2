package types

// ID types give each integer key a meaning of its own so an athlete id can
// never be passed where a program id is expected.

// AthleteID identifies an athlete as reported by the backend
type AthleteID int

// ProgramID identifies a program (one board column)
type ProgramID int

// CatalogID identifies a record in one of the catalog resources
// (categories, consulting rooms, sports, ...)
type CatalogID int

// AppointmentID identifies a booked appointment
type AppointmentID int

// ToInt converts type alias back to int for SQL and JSON boundaries
func (id AthleteID) ToInt() int {
	return int(id)
}

func (id ProgramID) ToInt() int {
	return int(id)
}

func (id CatalogID) ToInt() int {
	return int(id)
}

func (id AppointmentID) ToInt() int {
	return int(id)
}

// FromInt creates type aliases from int values
func AthleteIDFromInt(i int) AthleteID {
	return AthleteID(i)
}

func ProgramIDFromInt(i int) ProgramID {
	return ProgramID(i)
}

func CatalogIDFromInt(i int) CatalogID {
	return CatalogID(i)
}

func AppointmentIDFromInt(i int) AppointmentID {
	return AppointmentID(i)
}

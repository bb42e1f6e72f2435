package domain

// EmployerProfile represents a resort's own description of itself.
type EmployerProfile struct {
	EmployerID        string
	Name              string
	Region            string
	ContactName       string
	ContactPhone      string
	ContactEmail      string
	LodgingOffered    bool
	LodgingFacilities []string
}

// LodgingProfile describes worker housing. Its presence alone means lodging is provided.
type LodgingProfile struct {
	EmployerID string
	Images     []string
	Capacity   int
	RoomTypes  []RoomType
}

// RoomType is one row of the lodging price table.
type RoomType struct {
	Name         string
	MonthlyPrice int
}

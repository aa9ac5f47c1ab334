package gorm

// Route is a persisted flight route. Derived fields are never stored.
type Route struct {
	RouteID              int    `gorm:"column:route_id;primaryKey;autoIncrement"`
	Airline              string `gorm:"column:airline;type:varchar(10)"`
	AirlineID            *int   `gorm:"column:airline_id"`
	SourceAirport        string `gorm:"column:source_airport;type:varchar(10)"`
	SourceAirportID      *int   `gorm:"column:source_airport_id"`
	DestinationAirport   string `gorm:"column:destination_airport;type:varchar(10)"`
	DestinationAirportID *int   `gorm:"column:destination_airport_id"`
	Codeshare            string `gorm:"column:codeshare;type:varchar(10)"`
	Equipment            string `gorm:"column:equipment;type:varchar(100)"`
	DistanceKM           *int   `gorm:"column:distance_km"`
	EcoScore             *int   `gorm:"column:eco_score;default:0"`
	Stops                *int   `gorm:"column:stops;default:0"`
	AircraftType         string `gorm:"column:aircraft_type;type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "routes"
}

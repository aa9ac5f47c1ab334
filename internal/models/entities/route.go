package entities

import "openflights/insight/internal/dataset"

// RouteRow is one row of the routes table as scanned by sqlx.
type RouteRow struct {
	RouteID              int     `db:"route_id"`
	Airline              *string `db:"airline"`
	AirlineID            *int    `db:"airline_id"`
	SourceAirport        *string `db:"source_airport"`
	SourceAirportID      *int    `db:"source_airport_id"`
	DestinationAirport   *string `db:"destination_airport"`
	DestinationAirportID *int    `db:"destination_airport_id"`
	Codeshare            *string `db:"codeshare"`
	Equipment            *string `db:"equipment"`
	DistanceKM           *int    `db:"distance_km"`
	EcoScore             *int    `db:"eco_score"`
	Stops                *int    `db:"stops"`
	AircraftType         *string `db:"aircraft_type"`
}

// ToRoute converts a stored row into a dataset route. Derived fields are
// left empty for the calculator.
func (r RouteRow) ToRoute() dataset.Route {
	id := r.RouteID
	return dataset.Route{
		RouteID:              &id,
		Airline:              str(r.Airline),
		AirlineID:            r.AirlineID,
		SourceAirport:        str(r.SourceAirport),
		SourceAirportID:      r.SourceAirportID,
		DestinationAirport:   str(r.DestinationAirport),
		DestinationAirportID: r.DestinationAirportID,
		Codeshare:            str(r.Codeshare),
		Equipment:            str(r.Equipment),
		DistanceKM:           r.DistanceKM,
		EcoScore:             r.EcoScore,
		Stops:                r.Stops,
		AircraftType:         str(r.AircraftType),
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

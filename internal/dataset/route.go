package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
)

// Route is one flight route. Nil pointers are missing values.
type Route struct {
	RouteID              *int     `json:"route_id"`
	Airline              string   `json:"airline"`
	AirlineID            *int     `json:"airline_id"`
	SourceAirport        string   `json:"source_airport"`
	SourceAirportID      *int     `json:"source_airport_id"`
	DestinationAirport   string   `json:"destination_airport"`
	DestinationAirportID *int     `json:"destination_airport_id"`
	Codeshare            string   `json:"codeshare"`
	Equipment            string   `json:"equipment"`
	DistanceKM           *int     `json:"distance_km"`
	FlightDuration       *int     `json:"flight_duration"`
	EcoScore             *int     `json:"eco_score"`
	Stops                *int     `json:"stops"`
	AircraftType         string   `json:"aircraft_type"`
	DistanceCategory     Category `json:"distance_category"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// values returns the route fields in Columns order, ready for series.New.
func (r Route) values() []interface{} {
	return []interface{}{
		intValue(r.RouteID),
		r.Airline,
		intValue(r.AirlineID),
		r.SourceAirport,
		intValue(r.SourceAirportID),
		r.DestinationAirport,
		intValue(r.DestinationAirportID),
		r.Codeshare,
		r.Equipment,
		intValue(r.DistanceKM),
		intValue(r.FlightDuration),
		intValue(r.EcoScore),
		intValue(r.Stops),
		r.AircraftType,
		string(r.DistanceCategory),
	}
}

// set assigns a frame cell to the field backing the named column. Only the
// frame's own NA marker makes a string field empty; literal text such as
// "NA" is kept.
func (r *Route) set(column string, e series.Element) {
	switch column {
	case ColRouteID:
		r.RouteID = cellInt(e)
	case ColAirline:
		r.Airline = cellString(e)
	case ColAirlineID:
		r.AirlineID = cellInt(e)
	case ColSourceAirport:
		r.SourceAirport = cellString(e)
	case ColSourceAirportID:
		r.SourceAirportID = cellInt(e)
	case ColDestinationAirport:
		r.DestinationAirport = cellString(e)
	case ColDestinationAirportID:
		r.DestinationAirportID = cellInt(e)
	case ColCodeshare:
		r.Codeshare = cellString(e)
	case ColEquipment:
		r.Equipment = cellString(e)
	case ColDistanceKM:
		r.DistanceKM = cellInt(e)
	case ColFlightDuration:
		r.FlightDuration = cellInt(e)
	case ColEcoScore:
		r.EcoScore = cellInt(e)
	case ColStops:
		r.Stops = cellInt(e)
	case ColAircraftType:
		r.AircraftType = cellString(e)
	case ColDistanceCategory:
		r.DistanceCategory = Category(cellString(e))
	}
}

// intValue maps nil to an untyped nil so gota stores it as NaN.
func intValue(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func cellString(e series.Element) string {
	if e.IsNA() {
		return ""
	}
	return strings.TrimSpace(e.String())
}

func cellInt(e series.Element) *int {
	if e.IsNA() {
		return nil
	}
	return parseInt(e.String())
}

// isMissing reports the null spellings accepted in numeric upload cells.
func isMissing(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", "NaN", "NA", "nan", "null", "NULL", "<nil>":
		return true
	}
	return false
}

// parseInt accepts integral and decimal notation; anything else is missing.
func parseInt(raw string) *int {
	if isMissing(raw) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	v := int(math.Round(f))
	return &v
}

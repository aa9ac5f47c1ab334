package dataset

import "github.com/go-gota/gota/series"

// Column names as exposed by the dataset and expected in uploaded files.
const (
	ColRouteID              = "route_id"
	ColAirline              = "Airline"
	ColAirlineID            = "Airline_ID"
	ColSourceAirport        = "Source_airport"
	ColSourceAirportID      = "Source_airport_ID"
	ColDestinationAirport   = "Destination_airport"
	ColDestinationAirportID = "Destination_airport_ID"
	ColCodeshare            = "Codeshare"
	ColEquipment            = "Equipment"
	ColDistanceKM           = "distance_km"
	ColFlightDuration       = "flight_duration"
	ColEcoScore             = "eco_score"
	ColStops                = "stops"
	ColAircraftType         = "aircraft_type"
	ColDistanceCategory     = "distance_category"
)

// Column describes one column of the route dataset.
type Column struct {
	Name string
	Type series.Type
}

// Columns is the fixed, ordered column set of every Dataset.
var Columns = []Column{
	{ColRouteID, series.Int},
	{ColAirline, series.String},
	{ColAirlineID, series.Int},
	{ColSourceAirport, series.String},
	{ColSourceAirportID, series.Int},
	{ColDestinationAirport, series.String},
	{ColDestinationAirportID, series.Int},
	{ColCodeshare, series.String},
	{ColEquipment, series.String},
	{ColDistanceKM, series.Int},
	{ColFlightDuration, series.Int},
	{ColEcoScore, series.Int},
	{ColStops, series.Int},
	{ColAircraftType, series.String},
	{ColDistanceCategory, series.String},
}

// ColumnNames returns the ordered column names.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

package constants

const (
	LoadAllRoutes = `
	SELECT route_id, airline, airline_id, source_airport, source_airport_id,
	       destination_airport, destination_airport_id, codeshare, equipment,
	       distance_km, eco_score, stops, aircraft_type
	FROM routes
	ORDER BY route_id
	`
)

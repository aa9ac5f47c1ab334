package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	gormlib "gorm.io/gorm"

	"openflights/insight/internal/constants"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/db"
	"openflights/insight/internal/metrics"
	"openflights/insight/internal/models/entities"
	"openflights/insight/internal/models/gorm"
)

// RouteRepository reads routes through sqlx and writes them through GORM.
type RouteRepository struct {
	reader  *sqlx.DB
	orm     *gormlib.DB
	metrics *metrics.MetricsRegistry
}

// NewRouteRepository creates a new route repository. orm may be nil for
// read-only callers and metricsReg may be nil.
func NewRouteRepository(reader *sqlx.DB, orm *gormlib.DB, metricsReg *metrics.MetricsRegistry) *RouteRepository {
	return &RouteRepository{reader: reader, orm: orm, metrics: metricsReg}
}

// LoadAll returns every stored route ordered by route_id. The connection is
// acquired for this call only and released before returning.
func (r *RouteRepository) LoadAll(ctx context.Context) (ds dataset.Dataset, err error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveQuery(constants.QueryLoadRoutes, time.Since(start).Seconds(), err)
	}()

	conn, err := r.reader.Connx(ctx)
	if err != nil {
		return dataset.Dataset{}, db.Wrap("acquire connection", err)
	}
	defer conn.Close()

	var rows []entities.RouteRow
	if err := conn.SelectContext(ctx, &rows, constants.LoadAllRoutes); err != nil {
		return dataset.Dataset{}, db.Wrap("load routes", err)
	}

	routes := make([]dataset.Route, len(rows))
	for i, row := range rows {
		routes[i] = row.ToRoute()
	}
	r.metrics.SetRoutesLoaded(len(routes))
	return dataset.FromRoutes(routes), nil
}

// BatchInsert persists the base columns of routes. Derived fields are
// dropped; a missing route_id lets storage assign one.
func (r *RouteRepository) BatchInsert(ctx context.Context, routes []dataset.Route) (err error) {
	if len(routes) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.ObserveQuery(constants.QueryInsert, time.Since(start).Seconds(), err)
	}()

	records := make([]gorm.Route, len(routes))
	for i, rt := range routes {
		records[i] = toRecord(rt)
	}
	if err := r.orm.WithContext(ctx).CreateInBatches(records, 100).Error; err != nil {
		return db.Wrap("insert routes", err)
	}
	return nil
}

// Count returns total number of stored routes
func (r *RouteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.orm.WithContext(ctx).Model(&gorm.Route{}).Count(&count).Error
	return count, err
}

func toRecord(rt dataset.Route) gorm.Route {
	rec := gorm.Route{
		Airline:              rt.Airline,
		AirlineID:            rt.AirlineID,
		SourceAirport:        rt.SourceAirport,
		SourceAirportID:      rt.SourceAirportID,
		DestinationAirport:   rt.DestinationAirport,
		DestinationAirportID: rt.DestinationAirportID,
		Codeshare:            rt.Codeshare,
		Equipment:            rt.Equipment,
		DistanceKM:           rt.DistanceKM,
		EcoScore:             rt.EcoScore,
		Stops:                rt.Stops,
		AircraftType:         rt.AircraftType,
	}
	if rt.RouteID != nil {
		rec.RouteID = *rt.RouteID
	}
	return rec
}

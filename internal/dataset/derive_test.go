package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routesWithDistances(distances ...*int) []Route {
	routes := make([]Route, len(distances))
	for i, d := range distances {
		routes[i] = Route{
			RouteID:       IntPtr(i + 1),
			Airline:       "AA",
			SourceAirport: "JFK",
			DistanceKM:    d,
			EcoScore:      IntPtr(0),
			Stops:         IntPtr(0),
		}
	}
	return routes
}

func TestCategorize_Boundaries(t *testing.T) {
	cases := []struct {
		distance *int
		want     Category
	}{
		{nil, CategoryUnknown},
		{IntPtr(0), CategoryShort},
		{IntPtr(999), CategoryShort},
		{IntPtr(1000), CategoryMedium},
		{IntPtr(5000), CategoryMedium},
		{IntPtr(5001), CategoryLong},
		{IntPtr(15000), CategoryLong},
	}

	for _, tc := range cases {
		got := Categorize(tc.distance)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, Categorize(tc.distance), "categorize must be pure")
	}
}

func TestFlightDuration(t *testing.T) {
	assert.Nil(t, FlightDuration(nil))

	cases := map[int]int{
		500:   38, // 37.5 rounds half to even
		800:   60,
		1000:  75,
		1500:  112, // 112.5 rounds half to even
		2000:  150,
		6000:  450,
		10000: 750,
	}
	for km, want := range cases {
		got := FlightDuration(IntPtr(km))
		require.NotNil(t, got)
		assert.Equal(t, want, *got, "distance %d", km)
	}
}

func TestRecompute_OverridesStoredValues(t *testing.T) {
	routes := routesWithDistances(IntPtr(500), nil, IntPtr(6000))
	routes[0].DistanceCategory = CategoryLong
	routes[0].FlightDuration = IntPtr(999)
	routes[1].FlightDuration = IntPtr(10)
	routes[1].DistanceCategory = CategoryShort

	got := Recompute(FromRoutes(routes)).Routes()
	require.Len(t, got, 3)

	assert.Equal(t, CategoryShort, got[0].DistanceCategory)
	require.NotNil(t, got[0].FlightDuration)
	assert.Equal(t, 38, *got[0].FlightDuration)

	assert.Equal(t, CategoryUnknown, got[1].DistanceCategory)
	assert.Nil(t, got[1].FlightDuration)

	assert.Equal(t, CategoryLong, got[2].DistanceCategory)
	assert.Equal(t, 450, *got[2].FlightDuration)
}

func TestRecompute_Idempotent(t *testing.T) {
	ds := FromRoutes(routesWithDistances(IntPtr(120), IntPtr(4999), nil, IntPtr(7200)))

	once := Recompute(ds)
	twice := Recompute(once)

	assert.Equal(t, once.Routes(), twice.Routes())
}

func TestRecompute_EmptyKeepsColumns(t *testing.T) {
	got := Recompute(Empty())

	assert.Equal(t, 0, got.Len())
	assert.Equal(t, ColumnNames(), got.Names())
	assert.Len(t, got.Names(), 15)
}

func TestFromRoutes_RoundTrip(t *testing.T) {
	routes := Recompute(FromRoutes(routesWithDistances(IntPtr(2500), nil))).Routes()

	assert.Equal(t, routes, FromRoutes(routes).Routes())
}

func TestRoutes_KeepsNullLikeText(t *testing.T) {
	stored := Route{
		RouteID:            IntPtr(7),
		Airline:            "NA",
		SourceAirport:      "nan",
		DestinationAirport: "NULL",
		Codeshare:          "null",
		Equipment:          "null",
		DistanceKM:         IntPtr(500),
	}

	got := Recompute(FromRoutes([]Route{stored})).Routes()
	require.Len(t, got, 1)
	assert.Equal(t, "NA", got[0].Airline)
	assert.Equal(t, "nan", got[0].SourceAirport)
	assert.Equal(t, "NULL", got[0].DestinationAirport)
	assert.Equal(t, "null", got[0].Codeshare)
	assert.Equal(t, "null", got[0].Equipment)
	assert.Equal(t, 500, *got[0].DistanceKM)
	assert.Equal(t, CategoryShort, got[0].DistanceCategory)
}

package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is an in-memory table of routes backed by a gota DataFrame.
// It always exposes the full ordered column set, even when empty.
type Dataset struct {
	frame dataframe.DataFrame
}

// Empty returns a dataset with every column and no rows.
func Empty() Dataset {
	return FromRoutes(nil)
}

// FromRoutes builds a dataset whose row order follows routes.
func FromRoutes(routes []Route) Dataset {
	cols := make([][]interface{}, len(Columns))
	for i := range cols {
		cols[i] = make([]interface{}, 0, len(routes))
	}
	for _, r := range routes {
		for i, v := range r.values() {
			cols[i] = append(cols[i], v)
		}
	}

	s := make([]series.Series, len(Columns))
	for i, c := range Columns {
		s[i] = series.New(cols[i], c.Type, c.Name)
	}
	return Dataset{frame: dataframe.New(s...)}
}

// FromFrame aligns an arbitrary frame to the route column set. Columns are
// matched by name; missing columns become null and unknown ones are dropped.
func FromFrame(df dataframe.DataFrame) (Dataset, error) {
	if df.Err != nil {
		return Dataset{}, df.Err
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	routes := make([]Route, df.Nrow())
	for _, c := range Columns {
		if !present[c.Name] {
			continue
		}
		col := df.Col(c.Name)
		for i := range routes {
			routes[i].set(c.Name, col.Elem(i))
		}
	}
	return FromRoutes(routes), nil
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return d.frame.Nrow()
}

// Names returns the ordered column names.
func (d Dataset) Names() []string {
	if d.frame.Ncol() == 0 {
		return ColumnNames()
	}
	return d.frame.Names()
}

// HasColumn reports whether the backing frame carries the named column.
func (d Dataset) HasColumn(name string) bool {
	for _, n := range d.frame.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Frame exposes the backing DataFrame.
func (d Dataset) Frame() dataframe.DataFrame {
	return d.frame
}

// Routes decodes every row.
func (d Dataset) Routes() []Route {
	n := d.Len()
	routes := make([]Route, n)
	if n == 0 {
		return routes
	}
	for _, c := range Columns {
		col := d.frame.Col(c.Name)
		for i := range routes {
			routes[i].set(c.Name, col.Elem(i))
		}
	}
	return routes
}

// Distances returns distance_km as floats, NaN where missing.
func (d Dataset) Distances() []float64 {
	if d.Len() == 0 {
		return []float64{}
	}
	return d.frame.Col(ColDistanceKM).Float()
}

// Subset returns the rows at the given positions, in that order.
func (d Dataset) Subset(indexes []int) Dataset {
	if len(indexes) == 0 {
		return Empty()
	}
	return Dataset{frame: d.frame.Subset(indexes)}
}

// WriteCSV writes the dataset with a header row.
func (d Dataset) WriteCSV(w io.Writer) error {
	if d.Len() == 0 {
		_, err := fmt.Fprintln(w, strings.Join(ColumnNames(), ","))
		return err
	}
	return d.frame.WriteCSV(w)
}

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// ParseError reports an uploaded file that could not be read as a table.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Upload is a parsed file together with the header names it carried.
type Upload struct {
	Rows    Dataset
	Headers []string
}

// HasColumn reports whether the uploaded file had the named column.
func (u Upload) HasColumn(name string) bool {
	for _, h := range u.Headers {
		if h == name {
			return true
		}
	}
	return false
}

var loadOptions = []dataframe.LoadOption{
	dataframe.HasHeader(true),
	dataframe.DetectTypes(false),
	dataframe.DefaultType(series.String),
}

// ParseUpload reads a delimited text file, or the first sheet of an .xlsx
// workbook, into the route column set. Header names are not validated. A
// header row without data yields an empty upload.
func ParseUpload(filename string, r io.Reader) (Upload, error) {
	var records [][]string
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		records, err = readXLSX(r)
	} else {
		records, err = readDelimited(r)
	}
	if err != nil {
		return Upload{}, &ParseError{File: filename, Err: err}
	}
	if len(records) == 0 {
		return Upload{}, &ParseError{File: filename, Err: errors.New("no header row")}
	}

	headers := normalizeHeaders(records[0])
	records[0] = headers
	if len(records) == 1 {
		return Upload{Rows: Empty(), Headers: headers}, nil
	}

	rows, err := FromFrame(dataframe.LoadRecords(records, loadOptions...))
	if err != nil {
		return Upload{}, &ParseError{File: filename, Err: err}
	}
	return Upload{Rows: rows, Headers: headers}, nil
}

// readDelimited splits comma separated text into records, as gota's ReadCSV
// does before building a frame.
func readDelimited(r io.Reader) ([][]string, error) {
	return csv.NewReader(r).ReadAll()
}

// normalizeHeaders trims names and a leading BOM. A repeated name keeps its
// first column; later copies become name.1, name.2 and so on.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	taken := make(map[string]bool, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h != "" && taken[h] {
			for n := 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", h, n)
				if !taken[candidate] {
					h = candidate
					break
				}
			}
		}
		taken[h] = true
		headers[i] = h
	}
	return headers
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	// excelize trims trailing empty cells; pad every row to the header width.
	width := len(rows[0])
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]string, width-len(row))...)
		} else if len(row) > width {
			rows[i] = row[:width]
		}
	}
	return rows, nil
}

// EcoScore is the ingestion heuristic: 5 below 1000 km, 3 below 5000 km, else 1.
func EcoScore(distanceKM *int) *int {
	switch {
	case distanceKM == nil:
		return nil
	case *distanceKM < shortHaulLimitKM:
		return IntPtr(5)
	case *distanceKM < longHaulLimitKM:
		return IntPtr(3)
	default:
		return IntPtr(1)
	}
}

// ScoreUpload assigns eco scores when the file carried a distance column.
// Otherwise the rows keep whatever eco_score the file had.
func ScoreUpload(u Upload) Dataset {
	if !u.HasColumn(ColDistanceKM) {
		return u.Rows
	}
	routes := u.Rows.Routes()
	for i := range routes {
		routes[i].EcoScore = EcoScore(routes[i].DistanceKM)
	}
	return FromRoutes(routes)
}

// Merge appends extra after base. Row positions form the key space of the
// result; route_id values are copied as-is and may collide across sources.
func Merge(base, extra Dataset) Dataset {
	routes := append(base.Routes(), extra.Routes()...)
	return FromRoutes(routes)
}

// MergeUpload scores an upload and appends it to base.
func MergeUpload(base Dataset, u Upload) Dataset {
	return Merge(base, ScoreUpload(u))
}

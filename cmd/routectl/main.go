// Command routectl manages the routes table outside the web dashboard:
// it creates the schema, imports route files and prints reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"openflights/insight/internal/config"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/db"
	"openflights/insight/internal/db/repositories"
	"openflights/insight/internal/logging"
)

const usage = `usage:
  routectl schema
  routectl import <file.csv|file.xlsx>
  routectl report [-category All|Short|Medium|Long] [-n 5]`

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "schema":
		err = runSchema(ctx, cfg)
	case "import":
		if len(os.Args) != 3 {
			log.Fatal(usage)
		}
		err = runImport(ctx, cfg, os.Args[2])
	case "report":
		err = runReport(ctx, cfg, os.Args[2:], os.Stdout)
	default:
		log.Fatal(usage)
	}
	if err != nil {
		log.Fatalf("❌ %s: %v", os.Args[1], err)
	}
}

func runSchema(ctx context.Context, cfg *config.Config) error {
	orm, err := db.OpenORM(ctx, cfg)
	if err != nil {
		return err
	}
	if err := db.EnsureSchema(ctx, orm); err != nil {
		return err
	}
	fmt.Println("✅ routes table ready")
	return nil
}

func runImport(ctx context.Context, cfg *config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	upload, err := dataset.ParseUpload(filepath.Base(path), f)
	if err != nil {
		return err
	}
	rows := dataset.ScoreUpload(upload)

	orm, err := db.OpenORM(ctx, cfg)
	if err != nil {
		return err
	}
	if err := db.EnsureSchema(ctx, orm); err != nil {
		return err
	}

	repo := repositories.NewRouteRepository(nil, orm, nil)
	if err := repo.BatchInsert(ctx, rows.Routes()); err != nil {
		return err
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✅ imported %d routes from %s (%d stored)\n", rows.Len(), path, total)
	return nil
}

func runReport(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	category := fs.String("category", dataset.CategoryAll, "distance category to report on")
	n := fs.Int("n", dataset.DefaultInsightRows, "rows in the longest/shortest tables")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reader, err := db.OpenSQLX(ctx, cfg)
	if err != nil {
		return err
	}
	defer reader.Close()

	all, err := repositories.NewRouteRepository(reader, nil, nil).LoadAll(ctx)
	if err != nil {
		return err
	}
	writeReport(out, dataset.Recompute(all), *category, *n)
	return nil
}

// writeReport prints the summary followed by the longest and shortest routes
// of the selected category.
func writeReport(out io.Writer, all dataset.Dataset, category string, n int) {
	filtered := dataset.ApplyFilter(all, category)
	summary := dataset.Summarize(filtered)

	fmt.Fprintf(out, "Category: %s\n", category)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Routes", "Mean Distance (km)", "Mean Eco Score"})
	table.Append([]string{
		strconv.Itoa(summary.Count),
		summary.MeanDistanceLabel(),
		strconv.Itoa(summary.MeanEcoScore),
	})
	table.Render()

	fmt.Fprintln(out, "\nLongest routes")
	writeRoutes(out, dataset.Longest(filtered, n))

	fmt.Fprintln(out, "\nShortest routes")
	writeRoutes(out, dataset.Shortest(filtered, n))
}

func writeRoutes(out io.Writer, d dataset.Dataset) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Airline", "From", "To", "Distance (km)", "Duration (min)", "Category"})
	for _, r := range d.Routes() {
		table.Append([]string{
			r.Airline,
			r.SourceAirport,
			r.DestinationAirport,
			intOrDash(r.DistanceKM),
			intOrDash(r.FlightDuration),
			string(r.DistanceCategory),
		})
	}
	table.Render()
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

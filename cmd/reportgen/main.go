// Command reportgen renders the back office reports straight from the
// database, without going through the HTTP server.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/config"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/enum"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/database"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/repository"
	"github.com/urfave/cli/v2"
)

// reporters are the services a subcommand may call.
type reporters struct {
	sales    *service.SalesService
	reports  *service.ReportService
	products *service.ProductService
	close    func() error
}

func connect() (*reporters, error) {
	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database, false)
	if err != nil {
		return nil, err
	}
	loc := cfg.Report.Location()
	salesRepo := repository.NewSalesRepository(database.NewQuerier(db), loc.String())

	return &reporters{
		sales:    service.NewSalesService(salesRepo, loc),
		reports:  service.NewReportService(salesRepo, loc),
		products: service.NewProductService(repository.NewProductRepository(db)),
		close:    func() error { return database.Close(db) },
	}, nil
}

func main() {
	app := newApp(connect)
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("reportgen: %v", err)
	}
}

func newApp(open func() (*reporters, error)) *cli.App {
	var r *reporters

	withReporters := func(fn func(c *cli.Context, r *reporters) (*service.File, error)) cli.ActionFunc {
		return func(c *cli.Context) error {
			if r == nil {
				var err error
				if r, err = open(); err != nil {
					return err
				}
			}
			file, err := fn(c, r)
			if err != nil {
				return err
			}
			path, err := writeFile(c.String("out"), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "wrote %s (%d bytes)\n", path, len(file.Data))
			return nil
		}
	}

	return &cli.App{
		Name:  "reportgen",
		Usage: "render sales, flash, hourly and item reports to files",
		After: func(*cli.Context) error {
			if r != nil && r.close != nil {
				return r.close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "sales",
				Usage: "sales report for a period",
				Flags: append(rangeFlags(), formatFlag(), outFlag()),
				Action: withReporters(func(c *cli.Context, r *reporters) (*service.File, error) {
					return r.sales.Download(c.Context, service.DownloadInput{
						RangeInput: rangeInput(c),
						Format:     enum.ParseReportFormat(c.String("format")),
					})
				}),
			},
			{
				Name:  "flash",
				Usage: "flash report PDF for a period",
				Flags: append(rangeFlags(), outFlag()),
				Action: withReporters(func(c *cli.Context, r *reporters) (*service.File, error) {
					return r.reports.FlashPDF(c.Context, rangeInput(c))
				}),
			},
			{
				Name:  "hourly",
				Usage: "hourly sales PDF for a period",
				Flags: append(rangeFlags(), outFlag()),
				Action: withReporters(func(c *cli.Context, r *reporters) (*service.File, error) {
					return r.reports.HourlyPDF(c.Context, rangeInput(c))
				}),
			},
			{
				Name:  "items",
				Usage: "catalog of active items",
				Flags: []cli.Flag{formatFlag(), outFlag()},
				Action: withReporters(func(c *cli.Context, r *reporters) (*service.File, error) {
					return r.products.ItemsReport(c.Context, enum.ParseReportFormat(c.String("format")))
				}),
			},
		},
	}
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "start date, YYYY-MM-DD"},
		&cli.StringFlag{Name: "to", Usage: "end date, YYYY-MM-DD"},
		&cli.StringFlag{Name: "report-type", Aliases: []string{"t"}, Usage: `keyword range such as "Week" or "March 2024"`},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "pdf", Usage: "pdf or xlsx"}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file or directory (default: generated name in the working directory)"}
}

func rangeInput(c *cli.Context) service.RangeInput {
	return service.RangeInput{
		FromDate:   c.String("from"),
		ToDate:     c.String("to"),
		ReportType: c.String("report-type"),
	}
}

// writeFile saves file at out. An empty out or a directory keeps the
// generated file name.
func writeFile(out string, file *service.File) (string, error) {
	path := out
	if path == "" {
		path = file.Name
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, file.Name)
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

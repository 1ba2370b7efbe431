package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/shopspring/decimal"

	"github.com/leengari/datatable/datatable"
	"github.com/leengari/datatable/datatable/arrowconv"
	"github.com/leengari/datatable/internal/logging"
)

type options struct {
	seqURL  string
	level   string
	sortBy  string
	desc    bool
	minUnit int
}

func main() {
	opts := parseFlags(os.Args[1:])

	level, err := logging.ParseLevel(opts.level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeFn := logging.SetupLogger(logging.Config{Level: level, Output: os.Stderr, SeqURL: opts.seqURL})
	defer closeFn()
	slog.SetDefault(logger)

	if err := run(opts, logger, os.Stdout); err != nil {
		slog.Error("demo failed", "error", err)
		closeFn()
		os.Exit(1)
	}
}

func parseFlags(args []string) options {
	fs := flag.NewFlagSet("dtdemo", flag.ExitOnError)
	var o options
	fs.StringVar(&o.seqURL, "seq", os.Getenv("DTDEMO_SEQ_URL"), "Seq ingestion URL (empty disables Seq)")
	fs.StringVar(&o.level, "level", envOr("DTDEMO_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	fs.StringVar(&o.sortBy, "sort", "price", "Comma separated columns to sort by")
	fs.BoolVar(&o.desc, "desc", false, "Sort descending")
	fs.IntVar(&o.minUnit, "min-units", 1, "Keep rows with at least this many units")
	_ = fs.Parse(args)
	return o
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// run builds the sample inventory, edits it, then prints the sorted,
// filtered result and its Arrow schema to out.
func run(o options, logger *slog.Logger, out io.Writer) error {
	table, err := datatable.NewBuilder("inventory", datatable.WithObserver(datatable.NewLoggingObserver(logger))).
		With(datatable.NewColumn("sku", "A-100", "B-200", "C-300", "D-400")).
		With(datatable.NewColumn("units", 3, 0, 12, 7)).
		With(datatable.NewColumn("price",
			decimal.RequireFromString("9.99"),
			decimal.RequireFromString("24.50"),
			decimal.RequireFromString("3.25"),
			decimal.RequireFromString("11.00"))).
		With(datatable.NewColumn("active", true, false, true, true)).
		Build()
	if err != nil {
		return fmt.Errorf("building inventory: %w", err)
	}

	table, err = table.Rows().Add("E-500", 5, decimal.RequireFromString("7.75"), true)
	if err != nil {
		return fmt.Errorf("adding row: %w", err)
	}
	table, err = table.Rows().Replace(1, "B-200", 9, decimal.RequireFromString("22.00"), true)
	if err != nil {
		return fmt.Errorf("replacing row: %w", err)
	}

	items := sortItems(o.sortBy, o.desc)
	view, err := table.
		Filter(func(r datatable.Row) bool { return datatable.GetAsByName[int](r, "units") >= o.minUnit }).
		QuickSort(items...)
	if err != nil {
		return fmt.Errorf("sorting: %w", err)
	}

	result := view.ToTable()
	fmt.Fprintf(out, "%s\n", strings.Join(result.Columns().Names(), "\t"))
	for _, row := range result.All() {
		cells := make([]string, 0, result.Columns().Count())
		for _, v := range row.Data() {
			cells = append(cells, fmt.Sprint(v))
		}
		fmt.Fprintln(out, strings.Join(cells, "\t"))
	}

	rec, err := arrowconv.ToRecord(result, memory.NewGoAllocator())
	if err != nil {
		return fmt.Errorf("exporting to arrow: %w", err)
	}
	defer rec.Release()
	fmt.Fprintf(out, "arrow: %d rows, fields %s\n", rec.NumRows(), fieldSummary(rec.Schema()))
	return nil
}

// fieldSummary renders a schema as "name:type" pairs on one line.
func fieldSummary(schema *arrow.Schema) string {
	parts := make([]string, 0, schema.NumFields())
	for _, f := range schema.Fields() {
		parts = append(parts, f.Name+":"+f.Type.String())
	}
	return strings.Join(parts, ", ")
}

func sortItems(list string, desc bool) []datatable.SortItem {
	var items []datatable.SortItem
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		item := datatable.ByName(name)
		if desc {
			item = item.Desc()
		}
		items = append(items, item)
	}
	return items
}

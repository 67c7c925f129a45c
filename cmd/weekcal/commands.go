package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/internal/config"
	"github.com/username/weekcal/internal/events"
	"github.com/username/weekcal/internal/export"
	"github.com/username/weekcal/internal/render"
)

func weeksCmd(a *app) *cobra.Command {
	var imposed bool

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Print every page of the booklet: week pages, notes and padding",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			doc := render.Compose(res, a.names)
			if imposed {
				if doc.Pages, err = render.Imposed(doc); err != nil {
					return err
				}
			}

			return a.write(cmd, func(w io.Writer) error {
				if a.cfg.Output.Format == "json" {
					return render.WriteJSON(w, doc)
				}
				return render.WriteText(w, doc)
			})
		},
	}

	cmd.Flags().BoolVar(&imposed, "imposed", false, "Order pages for saddle-stitch printing")
	return cmd
}

type holidayEntry struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	DayOff bool   `json:"day_off"`
}

func holidaysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "List holidays and anniversaries by date",
		Long:  "List holidays and anniversaries by date. Days off are marked with '*'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			var entries []holidayEntry
			for _, key := range res.Holidays.Dates() {
				for _, h := range res.Holidays[key] {
					entries = append(entries, holidayEntry{
						Date:   key,
						Label:  a.names.Holiday(h),
						Kind:   h.Kind.String(),
						DayOff: h.DayOff,
					})
				}
			}

			return a.write(cmd, func(w io.Writer) error {
				if a.cfg.Output.Format == "json" {
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(entries)
				}
				for _, e := range entries {
					marker := " "
					if e.DayOff {
						marker = "*"
					}
					if _, err := fmt.Fprintf(w, "%s %s %s\n", e.Date, marker, e.Label); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func bookletCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "booklet",
		Short: "Show page count, padding and the sheet printing order",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			sheets, err := render.BookletOrder(res.PageCount())
			if err != nil {
				return err
			}

			return a.write(cmd, func(w io.Writer) error {
				if a.cfg.Output.Format == "json" {
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(map[string]any{
						"title":   a.names.Title(res.Year, res.PaperSize),
						"weeks":   len(res.Weeks),
						"notes":   calendar.NotesPages,
						"padding": res.Padding(),
						"pages":   res.PageCount(),
						"sheets":  sheets,
					})
				}

				fmt.Fprintln(w, a.names.Title(res.Year, res.PaperSize))
				fmt.Fprintf(w, "weeks: %d  notes: %d  padding: %d  pages: %d\n",
					len(res.Weeks), calendar.NotesPages, res.Padding(), res.PageCount())
				for i, s := range sheets {
					fmt.Fprintf(w, "sheet %2d  front: %2d | %2d  back: %2d | %2d\n",
						i+1, s.Front[0], s.Front[1], s.Back[0], s.Back[1])
				}
				return nil
			})
		},
	}
}

func previewCmd(a *app) *cobra.Command {
	var week, width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render week pages in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			doc := render.Compose(res, a.names)
			term := render.NewTerminal(width)

			if week == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), term.Render(doc))
				return nil
			}
			if week < 1 || week > len(res.Weeks) {
				return fmt.Errorf("week page %d out of range 1..%d", week, len(res.Weeks))
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.RenderPage(doc.Pages[week-1]))
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "page", "n", 0, "Week page to show, 1-based (default: all pages)")
	cmd.Flags().IntVar(&width, "width", 40, "Page width in columns")
	return cmd
}

func icsCmd(a *app) *cobra.Command {
	var through int

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export holidays as an iCalendar feed",
		Long:  "Export holidays as an iCalendar feed. With --through, one file per year is written to output.dir.",
		RunE: func(cmd *cobra.Command, args []string) error {
			years := []int{a.cfg.Calendar.Year}
			if through > a.cfg.Calendar.Year {
				for y := a.cfg.Calendar.Year + 1; y <= through; y++ {
					years = append(years, y)
				}
			}

			opts, err := a.buildOptions(cmd.Context())
			if err != nil {
				return err
			}

			results, err := calendar.BuildMany(cmd.Context(), years, opts)
			if err != nil {
				return err
			}

			iw := export.NewICSWriter(a.names, logger)
			if len(results) == 1 {
				return a.write(cmd, func(w io.Writer) error {
					return iw.Write(w, results[0])
				})
			}

			if err := os.MkdirAll(a.cfg.Output.Dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}
			for _, res := range results {
				path := filepath.Join(a.cfg.Output.Dir, a.names.Title(res.Year, res.PaperSize)+".ics")
				if err := writeFile(path, func(w io.Writer) error { return iw.Write(w, res) }); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&through, "through", 0, "Export every year up to and including this one")
	return cmd
}

// buildOptions loads private events when they are requested
func (a *app) buildOptions(ctx context.Context) (calendar.Options, error) {
	opts := calendar.Options{
		PaperSize:        a.paper(),
		IncludeRecurring: a.cfg.Calendar.IncludePrivate,
	}
	if !a.cfg.Calendar.IncludePrivate {
		return opts, nil
	}

	if !a.cfg.Events.HasSources() {
		logger.Warn("Private events requested but no event source configured")
		return opts, nil
	}

	evs, err := eventSource(a.cfg.Events, logger).Events(ctx)
	if err != nil {
		return opts, fmt.Errorf("failed to load private events: %w", err)
	}
	opts.Events = evs
	return opts, nil
}

func (a *app) build(ctx context.Context) (*calendar.Result, error) {
	opts, err := a.buildOptions(ctx)
	if err != nil {
		return nil, err
	}

	res, err := calendar.Build(a.cfg.Calendar.Year, opts)
	if err != nil {
		return nil, err
	}

	logger.Info("Calendar built",
		zap.Int("year", res.Year),
		zap.String("paper", string(res.PaperSize)),
		zap.Int("weeks", len(res.Weeks)),
		zap.Int("holidays", res.Holidays.Len()),
		zap.Int("pages", res.PageCount()))

	return res, nil
}

// eventSource merges every configured source. A remote URL falls back to
// the YAML file when both are set.
func eventSource(cfg config.EventsConfig, logger *zap.Logger) events.Source {
	var sources []events.Source

	var local events.Source
	if cfg.File != "" {
		local = events.NewYAMLSource(cfg.File, logger)
	}

	switch {
	case cfg.URL != "" && local != nil:
		remote := events.NewRemoteSource(cfg.URL, cfg.GetCacheTTL(), logger)
		sources = append(sources, events.NewCompositeSource(remote, local, logger))
	case cfg.URL != "":
		sources = append(sources, events.NewRemoteSource(cfg.URL, cfg.GetCacheTTL(), logger))
	case local != nil:
		sources = append(sources, local)
	}

	if cfg.TextFile != "" {
		sources = append(sources, events.NewFileSource(cfg.TextFile, logger))
	}
	if cfg.VCard != "" {
		sources = append(sources, events.NewVCardSource(cfg.VCard, logger))
	}

	return events.Merge(sources...)
}

// write sends output to --out when set, stdout otherwise
func (a *app) write(cmd *cobra.Command, fn func(w io.Writer) error) error {
	if a.opts.out == "" || a.opts.out == "-" {
		return fn(cmd.OutOrStdout())
	}
	return writeFile(a.opts.out, fn)
}

func writeFile(path string, fn func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

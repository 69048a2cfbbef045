// Package chart renders flattened schedule rows as an interactive Gantt-style
// timeline using go-echarts.
//
// ECharts has no native Gantt series, so the timeline is emulated with
// stacked horizontal bars: each vehicle row alternates a transparent segment
// (idle time since the previous trip) with a colored segment (the trip
// itself), measured in minutes from the earliest departure in the schedule.
package chart

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/rsviz/core/gantt"
)

// Palette maps a row category (trip type wire name) to a bar fill color.
type Palette map[string]string

// DefaultPalette matches the colors the solver team uses everywhere: solid
// red for service trips, a yellow accent for deadheads.
func DefaultPalette() Palette {
	return Palette{
		"ServiceTrip":  "rgb(220,0,0)",
		"DeadHeadTrip": "rgb(255,230,41)",
	}
}

// Options configure a single render.
type Options struct {
	Title   string
	Width   string
	Height  string
	Palette Palette
}

const transparent = "rgba(0,0,0,0)"

// fallbackColor fills rows whose category is missing from the palette.
const fallbackColor = "rgb(150,150,150)"

type segment struct {
	minutes float64
	color   string
}

// NewGantt builds the chart from flattened rows. Vehicles appear in
// first-seen order, one task row each; trips keep their input order within
// the row. Rendering an empty row set is an error.
func NewGantt(rows []gantt.Row, o Options) (*charts.Bar, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows to render")
	}
	if o.Palette == nil {
		o.Palette = DefaultPalette()
	}

	origin := rows[0].Start
	for _, r := range rows {
		if r.Start.Before(origin) {
			origin = r.Start
		}
	}

	var tasks []string
	var categories []string
	taskIdx := make(map[string]int)
	seenCat := make(map[string]bool)
	segments := make(map[string][]segment)
	cursor := make(map[string]time.Time)

	for _, r := range rows {
		if _, ok := taskIdx[r.Task]; !ok {
			taskIdx[r.Task] = len(tasks)
			tasks = append(tasks, r.Task)
			cursor[r.Task] = origin
		}
		if !seenCat[r.Category] {
			seenCat[r.Category] = true
			categories = append(categories, r.Category)
		}

		gap := r.Start.Sub(cursor[r.Task])
		if gap < 0 {
			gap = 0
		}
		dur := r.Finish.Sub(r.Start)
		if dur < 0 {
			dur = 0
		}
		color, ok := o.Palette[r.Category]
		if !ok {
			color = fallbackColor
		}
		segments[r.Task] = append(segments[r.Task],
			segment{minutes: gap.Minutes(), color: transparent},
			segment{minutes: dur.Minutes(), color: color},
		)
		cursor[r.Task] = r.Start.Add(dur)
	}

	maxSegs := 0
	for _, segs := range segments {
		if len(segs) > maxSegs {
			maxSegs = len(segs)
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithLegendOpts(opts.Legend{Data: categories}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: fmt.Sprintf("minutes since %s", origin.Format("2006-01-02 15:04")),
		}),
	)
	bar.SetXAxis(tasks)

	// One empty series per category carries the legend color; the segment
	// series below stay out of the legend.
	for _, cat := range categories {
		color, ok := o.Palette[cat]
		if !ok {
			color = fallbackColor
		}
		bar.AddSeries(cat, []opts.BarData{},
			charts.WithBarChartOpts(opts.BarChart{Stack: "tour"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}

	for s := 0; s < maxSegs; s++ {
		data := make([]opts.BarData, len(tasks))
		for ti, task := range tasks {
			segs := segments[task]
			if s < len(segs) {
				data[ti] = opts.BarData{
					Value:     segs[s].minutes,
					ItemStyle: &opts.ItemStyle{Color: segs[s].color},
				}
			} else {
				data[ti] = opts.BarData{Value: 0.0}
			}
		}
		bar.AddSeries("", data, charts.WithBarChartOpts(opts.BarChart{Stack: "tour"}))
	}

	bar.XYReversal()
	return bar, nil
}

// WriteHTML renders the chart into a standalone HTML file at path.
func WriteHTML(bar *charts.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/rsviz/config"
	"github.com/kilianp07/rsviz/core/gantt"
	"github.com/kilianp07/rsviz/core/model"
	"github.com/kilianp07/rsviz/core/schedule"
	"github.com/kilianp07/rsviz/infra/chart"
	"github.com/kilianp07/rsviz/infra/logger"
)

var (
	cfgPath   string
	outPath   string
	title     string
	openChart bool
)

var rootCmd = &cobra.Command{
	Use:   "rsviz <schedule.json>",
	Short: "Render a rolling stock schedule as a Gantt chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "HTML output path (default: <schedule>.html)")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "chart title")
	rootCmd.Flags().BoolVar(&openChart, "open", false, "open the rendered chart in a browser")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func runRender(cmd *cobra.Command, args []string) error {
	source := args[0]
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("render")
	logg.Infof("render visualization: %s", source)

	resp, err := schedule.ImportResponse(source)
	if err != nil {
		return err
	}
	rows := gantt.Flatten(resp)

	if title == "" {
		title = fmt.Sprintf("Rolling stock schedule: %s", stem(source))
	}
	bar, err := chart.NewGantt(rows, chart.Options{
		Title:  title,
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		Palette: chart.Palette{
			model.TripService.String():  cfg.Chart.ServiceColor,
			model.TripDeadhead.String(): cfg.Chart.DeadheadColor,
		},
	})
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(source, filepath.Ext(source)) + ".html"
	}
	if err := chart.WriteHTML(bar, outPath); err != nil {
		return err
	}
	logg.Infof("chart written to %s", outPath)

	if openChart {
		if err := openInBrowser(outPath); err != nil {
			logg.Warnf("open chart: %v", err)
		}
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func openInBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}

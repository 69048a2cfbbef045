package config

import "fmt"

// ChartConfig controls the rendered Gantt chart.
type ChartConfig struct {
	// ServiceColor fills bars of passenger-carrying trips.
	ServiceColor string `json:"service_color"`
	// DeadheadColor fills bars of repositioning trips.
	DeadheadColor string `json:"deadhead_color"`
	// Width and Height size the chart canvas, CSS units.
	Width  string `json:"width"`
	Height string `json:"height"`
}

// SetDefaults applies the palette the solver team is used to: solid red for
// service trips, a yellow accent for deadheads.
func (c *ChartConfig) SetDefaults() {
	if c.ServiceColor == "" {
		c.ServiceColor = "rgb(220,0,0)"
	}
	if c.DeadheadColor == "" {
		c.DeadheadColor = "rgb(255,230,41)"
	}
	if c.Width == "" {
		c.Width = "1200px"
	}
	if c.Height == "" {
		c.Height = "600px"
	}
}

// Validate checks mandatory fields.
func (c ChartConfig) Validate() error {
	if c.ServiceColor == "" || c.DeadheadColor == "" {
		return fmt.Errorf("chart colors are required")
	}
	return nil
}

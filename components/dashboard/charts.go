package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "280px"

// ChartPoint is one labeled value of a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartRenderer renders the dashboard usage chart as embeddable HTML.
type ChartRenderer struct {
	chartType  string
	cache      RenderCache
	assetsHost string
}

// ChartOption customizes the renderer.
type ChartOption func(*ChartRenderer)

// WithChartCache injects a render cache. A nil cache renders every time.
func WithChartCache(cache RenderCache) ChartOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithChartType selects "line" (default) or "bar".
func WithChartType(chartType string) ChartOption {
	return func(r *ChartRenderer) {
		if chartType = strings.ToLower(strings.TrimSpace(chartType)); chartType != "" {
			r.chartType = chartType
		}
	}
}

// WithChartAssetsHost points the echarts script tag at a CDN or local mount.
func WithChartAssetsHost(host string) ChartOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a line chart renderer without caching.
func NewChartRenderer(options ...ChartOption) *ChartRenderer {
	r := &ChartRenderer{chartType: "line"}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// ChartRequest describes one chart render.
type ChartRequest struct {
	Title  string
	Series string
	Points []ChartPoint
	Theme  string
}

// Render returns the chart markup, consulting the cache first.
func (r *ChartRenderer) Render(req ChartRequest) (string, error) {
	if len(req.Points) == 0 {
		return "", fmt.Errorf("dashboard: chart %q has no data points", req.Title)
	}
	if req.Theme == "" {
		req.Theme = types.ThemeWesteros
	}
	render := func() (string, error) {
		return r.render(req)
	}
	if r.cache == nil {
		return render()
	}
	key := fmt.Sprintf("%s:%s:%s:%s", r.chartType, req.Theme, req.Title, seriesHash(req.Points))
	return r.cache.GetOrRender(key, render)
}

func (r *ChartRenderer) render(req ChartRequest) (string, error) {
	labels := make([]string, len(req.Points))
	for i, p := range req.Points {
		labels[i] = p.Label
	}
	switch r.chartType {
	case "bar":
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions(req)...)
		bar.SetXAxis(labels)
		bar.AddSeries(req.Series, toBarData(req.Points))
		return renderChart(bar)
	case "line":
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalOptions(req)...)
		line.SetXAxis(labels)
		line.AddSeries(req.Series, toLineData(req.Points))
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	default:
		return "", fmt.Errorf("dashboard: unsupported chart type: %s", r.chartType)
	}
}

func (r *ChartRenderer) globalOptions(req ChartRequest) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  req.Theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: req.Title}),
		charts.WithInitializationOpts(initOpts),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toBarData(points []ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{Name: point.Label, Value: point.Value}
	}
	return data
}

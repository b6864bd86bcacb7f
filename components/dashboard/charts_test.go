package dashboard

import (
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRendererRendersLineChart(t *testing.T) {
	renderer := NewChartRenderer()
	html, err := renderer.Render(ChartRequest{Title: "Weekly", Series: "Conversations", Points: UsageSeries()})
	require.NoError(t, err)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Weekly")
	assert.Contains(t, html, "Mon")
}

func TestChartRendererBarAndAssetsHost(t *testing.T) {
	renderer := NewChartRenderer(WithChartType("BAR"), WithChartAssetsHost("/assets/echarts/"))
	html, err := renderer.Render(ChartRequest{Title: "Bars", Series: "s", Points: []ChartPoint{{Label: "a", Value: 1}}, Theme: types.ThemeChalk})
	require.NoError(t, err)
	assert.Contains(t, html, "/assets/echarts/")
	assert.Contains(t, html, `"bar"`)
}

func TestChartRendererErrors(t *testing.T) {
	_, err := NewChartRenderer().Render(ChartRequest{Title: "empty"})
	require.Error(t, err)

	_, err = NewChartRenderer(WithChartType("radar")).Render(ChartRequest{Points: UsageSeries()})
	assert.ErrorContains(t, err, "unsupported chart type")
}

func TestChartRendererUsesCacheKeyedByTheme(t *testing.T) {
	cache := NewChartCache(time.Minute)
	renderer := NewChartRenderer(WithChartCache(cache))
	req := ChartRequest{Title: "Weekly", Series: "c", Points: UsageSeries()}

	first, err := renderer.Render(req)
	require.NoError(t, err)
	second, err := renderer.Render(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	req.Theme = types.ThemeChalk
	_, err = renderer.Render(req)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

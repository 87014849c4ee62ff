package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"vh-server/discovery"
)

// PlotFeedOverview generates an HTML file rendering the population of each
// feed bucket as a bar chart.
func PlotFeedOverview(buckets []discovery.Bucket) {
	labels := make([]string, 0, len(buckets))
	values := make([]opts.BarData, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
		values = append(values, opts.BarData{Name: b.Label, Value: b.Total})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Feed Overview",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Events per feed bucket",
		}),
	)

	bar.SetXAxis(labels)
	bar.AddSeries("Events", values,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create("feed_overview.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Feed overview generated: feed_overview.html")
}

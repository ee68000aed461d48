// riskctl печатает каталог регионов, их границы и наборы данных графиков в терминал.
//
//	riskctl regions
//	riskctl bounds
//	riskctl datasets ooty
//	riskctl -catalog regions.yaml regions
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/pkg/geo"
	"github.com/landslide-dashboard/internal/repository/file"
	"github.com/landslide-dashboard/internal/repository/static"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"})
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	idStyle    = lipgloss.NewStyle().Bold(true).Width(12)
)

func main() {
	catalogFile := flag.String("catalog", "", "YAML catalog file (default: built-in regions)")
	defaultRegion := flag.String("default", "", "Default region id")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: riskctl [-catalog file.yaml] regions | bounds | datasets <region-id>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, *catalogFile, *defaultRegion, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "riskctl:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, catalogFile, defaultRegion string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}

	var source repository.RegionRepository = static.NewRegionRepository()
	if catalogFile != "" {
		source = file.NewRegionRepository(catalogFile, zap.NewNop())
	}

	c, err := catalog.Load(context.Background(), source, defaultRegion, zap.NewNop())
	if err != nil {
		return err
	}

	switch args[0] {
	case "regions":
		return printRegions(w, c)
	case "bounds":
		return printBounds(w, c)
	case "datasets":
		if len(args) < 2 {
			return fmt.Errorf("datasets: missing region id")
		}
		return printDatasets(w, c, args[1])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func riskStyle(level domain.RiskLevel) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(domain.RiskColor(level)))
}

func printRegions(w io.Writer, c *catalog.Catalog) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Regions (%s, default %s)", c.Source(), c.DefaultID())))

	for _, r := range c.Regions() {
		var zones []string
		for _, level := range domain.RiskLevels {
			if n := r.ZoneCount(level); n > 0 {
				zones = append(zones, riskStyle(level).Render(fmt.Sprintf("%d %s", n, level)))
			}
		}
		fmt.Fprintf(w, "%s %-24s score %3d  %s\n",
			idStyle.Render(r.ID),
			r.Name,
			r.RiskScores.Current,
			strings.Join(zones, dimStyle.Render(" / ")),
		)
	}
	return nil
}

func printBounds(w io.Writer, c *catalog.Catalog) error {
	overall, err := geo.OverallBounds(c.Regions())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render("Overall bounds"))
	fmt.Fprintf(w, "  %s\n", formatBox(overall))

	fmt.Fprintln(w, titleStyle.Render("Focus bounds"))
	for _, r := range c.Regions() {
		focus, err := geo.FocusBounds(&r)
		if err != nil {
			return fmt.Errorf("region %q: %w", r.ID, err)
		}
		fmt.Fprintf(w, "%s %s %s\n",
			idStyle.Render(r.ID),
			formatBox(focus),
			dimStyle.Render(fmt.Sprintf("%.3f km²", geo.BoxAreaSqKm(focus))),
		)
	}
	return nil
}

func formatBox(b domain.BoundingBox) string {
	return fmt.Sprintf("[%.4f, %.4f] - [%.4f, %.4f]", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}

func printDatasets(w io.Writer, c *catalog.Catalog, regionID string) error {
	region, err := c.Get(regionID)
	if err != nil {
		return err
	}

	factors, err := chart.BuildFactorDataset(&region)
	if err != nil {
		return err
	}
	historical, err := chart.BuildHistoricalDataset(&region)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %s", region.Name, factors.Label)))
	for i, label := range factors.Labels {
		fmt.Fprintf(w, "  %-11s %s %d\n", label, bar(factors.Values[i]), factors.Values[i])
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %s", region.Name, historical.Label)))
	for i, label := range historical.Labels {
		fmt.Fprintf(w, "  %-11s %s %d\n", label, bar(historical.Values[i]), historical.Values[i])
	}

	trend := chart.Trend(historical.Values)
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("  mean %.2f  std %.2f  slope %.2f/month  %s",
		trend.Mean, trend.StdDev, trend.Slope, trend.Direction)))
	return nil
}

// bar рисует шкалу 0..100, раскрашенную по уровню оценки
func bar(score int) string {
	n := score * barWidth / 100
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	level := domain.RiskLow
	switch {
	case score >= 75:
		level = domain.RiskHigh
	case score >= 50:
		level = domain.RiskMedium
	}
	return riskStyle(level).Render(strings.Repeat("█", n)) + dimStyle.Render(strings.Repeat("·", barWidth-n))
}

package report

import (
	"strconv"
	"strings"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"golang.org/x/net/html"
)

// Comparison carries the prior week's metrics for week-over-week deltas.
// Comparison data is best-effort: any recovery failure yields an
// unavailable comparison, never an error.
type Comparison struct {
	Available bool
	Metrics   domain.ReportMetrics
}

// FromPriorReport recovers comparison metrics from the most recent prior
// report. The structured metrics column is preferred; scraping the stored
// HTML is kept only as a fallback for rows written before the column
// existed.
func FromPriorReport(prior *domain.Report) Comparison {
	if prior == nil {
		return Comparison{}
	}

	if metrics := prior.Metrics.Data(); !metrics.IsZero() {
		return Comparison{Available: true, Metrics: metrics}
	}

	return FromHTML(prior.HTML)
}

// FromHTML scrapes metric blocks out of a previously generated report. It
// looks for paired metric-label/metric-value class elements and matches the
// label text against fixed Portuguese substrings, case-insensitively.
func FromHTML(reportHTML string) Comparison {
	doc, err := html.Parse(strings.NewReader(reportHTML))
	if err != nil {
		return Comparison{}
	}

	var metrics domain.ReportMetrics
	var gotCalories, gotProtein, gotSets bool

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "metric-label") {
			label := strings.ToLower(textContent(n))
			if value, ok := pairedMetricValue(n); ok {
				// First match wins per metric: the averages precede derived
				// figures like adherence in the grids the builders emit.
				switch {
				case !gotCalories && strings.Contains(label, "calorias"):
					metrics.AvgCalories = value
					gotCalories = true
				case !gotProtein && (strings.Contains(label, "proteína") || strings.Contains(label, "proteina")):
					metrics.AvgProtein = value
					gotProtein = true
				case !gotSets && strings.Contains(label, "volume"):
					metrics.TotalSets = int(value)
					gotSets = true
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	found := gotCalories || gotProtein || gotSets
	return Comparison{Available: found, Metrics: metrics}
}

// pairedMetricValue finds the metric-value element following a label within
// the same parent block and parses its numeric content.
func pairedMetricValue(label *html.Node) (float64, bool) {
	for sibling := label.NextSibling; sibling != nil; sibling = sibling.NextSibling {
		if sibling.Type == html.ElementNode && hasClass(sibling, "metric-value") {
			return parseNumeric(textContent(sibling))
		}
	}
	return 0, false
}

// parseNumeric recovers a number by stripping everything except digits and
// decimal points.
func parseNumeric(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

package report

import (
	"testing"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"gorm.io/datatypes"
)

func TestFromPriorReport(t *testing.T) {
	t.Run("nil prior report is unavailable", func(t *testing.T) {
		cmp := FromPriorReport(nil)
		if cmp.Available {
			t.Error("expected unavailable comparison for nil prior report")
		}
	})

	t.Run("structured metrics preferred over HTML", func(t *testing.T) {
		prior := &domain.Report{
			HTML: `<span class="metric-label">Média de Calorias</span><span class="metric-value">9999 kcal</span>`,
			Metrics: datatypes.NewJSONType(domain.ReportMetrics{
				AvgCalories: 2350,
				AvgProtein:  158,
				TotalSets:   72,
			}),
		}

		cmp := FromPriorReport(prior)
		if !cmp.Available {
			t.Fatal("expected available comparison")
		}
		if cmp.Metrics.AvgCalories != 2350 {
			t.Errorf("AvgCalories = %.0f, want 2350 from structured column", cmp.Metrics.AvgCalories)
		}
	})

	t.Run("falls back to HTML when metrics column is empty", func(t *testing.T) {
		prior := &domain.Report{
			HTML: `<div class="metric">
				<span class="metric-label">Média de Calorias</span>
				<span class="metric-value">2378 kcal</span>
			</div>`,
		}

		cmp := FromPriorReport(prior)
		if !cmp.Available {
			t.Fatal("expected available comparison from HTML fallback")
		}
		if cmp.Metrics.AvgCalories != 2378 {
			t.Errorf("AvgCalories = %.0f, want 2378", cmp.Metrics.AvgCalories)
		}
	})
}

func TestFromHTML(t *testing.T) {
	t.Run("extracts all three metrics", func(t *testing.T) {
		html := `<div class="metric-grid">
			<div class="metric">
				<span class="metric-label">Média de Calorias</span>
				<span class="metric-value">2378 kcal</span>
			</div>
			<div class="metric">
				<span class="metric-label">Média de Proteína</span>
				<span class="metric-value">168 g</span>
			</div>
			<div class="metric">
				<span class="metric-label">Volume Total de Treino</span>
				<span class="metric-value">84 séries</span>
			</div>
		</div>`

		cmp := FromHTML(html)
		if !cmp.Available {
			t.Fatal("expected available comparison")
		}
		if cmp.Metrics.AvgCalories != 2378 {
			t.Errorf("AvgCalories = %.0f, want 2378", cmp.Metrics.AvgCalories)
		}
		if cmp.Metrics.AvgProtein != 168 {
			t.Errorf("AvgProtein = %.0f, want 168", cmp.Metrics.AvgProtein)
		}
		if cmp.Metrics.TotalSets != 84 {
			t.Errorf("TotalSets = %d, want 84", cmp.Metrics.TotalSets)
		}
	})

	t.Run("decimal values survive", func(t *testing.T) {
		html := `<span class="metric-label">Média de Calorias</span>
			<span class="metric-value">2378.5 kcal</span>`

		cmp := FromHTML(html)
		if !cmp.Available || cmp.Metrics.AvgCalories != 2378.5 {
			t.Errorf("AvgCalories = %.1f, want 2378.5", cmp.Metrics.AvgCalories)
		}
	})

	t.Run("unaccented label matches", func(t *testing.T) {
		html := `<span class="metric-label">Media de Proteina</span>
			<span class="metric-value">150 g</span>`

		cmp := FromHTML(html)
		if !cmp.Available || cmp.Metrics.AvgProtein != 150 {
			t.Errorf("AvgProtein = %.0f, want 150", cmp.Metrics.AvgProtein)
		}
	})

	t.Run("first protein match wins over adherence", func(t *testing.T) {
		html := `<div class="metric">
				<span class="metric-label">Média de Proteína</span>
				<span class="metric-value">168 g</span>
			</div>
			<div class="metric">
				<span class="metric-label">Aderência de Proteína</span>
				<span class="metric-value">98%</span>
			</div>`

		cmp := FromHTML(html)
		if cmp.Metrics.AvgProtein != 168 {
			t.Errorf("AvgProtein = %.0f, want 168 (the average, not the adherence)", cmp.Metrics.AvgProtein)
		}
	})

	t.Run("no metric blocks", func(t *testing.T) {
		cmp := FromHTML("<p>relatório antigo sem métricas</p>")
		if cmp.Available {
			t.Error("expected unavailable comparison")
		}
	})

	t.Run("label without paired value", func(t *testing.T) {
		cmp := FromHTML(`<span class="metric-label">Média de Calorias</span>`)
		if cmp.Available {
			t.Error("expected unavailable comparison without a value element")
		}
	})
}

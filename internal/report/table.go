package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

const columnWidth = 8

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).Width(columnWidth).Align(lipgloss.Right)
	cellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(columnWidth).Align(lipgloss.Right)
	effectiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Width(columnWidth).Align(lipgloss.Right)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
)

// Columns is the header of the screen table.
var Columns = []string{"Yards", "Vel", "Fpe", "Drop", "Drift", "TOF"}

// Cells formats the row the way the screen table shows it. Energy keeps one
// decimal below 100 ft-lb.
func (r Row) Cells() []string {
	energyDecimals := 0
	if r.Energy < 100 {
		energyDecimals = 1
	}
	return []string{
		fmt.Sprintf("%d", r.Yard),
		fmt.Sprintf("%.0f", r.Velocity),
		fmt.Sprintf("%.*f", energyDecimals, r.Energy),
		fmt.Sprintf("%.1f", r.Drop),
		fmt.Sprintf("%.1f", r.Drift),
		fmt.Sprintf("%.3f", r.TimeOfFlight),
	}
}

func renderLine(cells []string, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = style.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderTable renders the display rows of the result followed by the
// effective range summary. The effective range row is highlighted.
func RenderTable(result go_shotcalc.TrajectoryResult) string {
	var s strings.Builder
	s.WriteString(renderLine(Columns, headerStyle) + "\n")

	er := result.EffectiveRange()
	for _, row := range Rows(result, DisplayYards(result)) {
		style := cellStyle
		if row.Yard == er {
			style = effectiveStyle
		}
		s.WriteString(renderLine(row.Cells(), style) + "\n")
	}
	s.WriteString(summaryStyle.Render(Summary(result)))
	return s.String()
}

// Summary describes the effective range of the result.
func Summary(result go_shotcalc.TrajectoryResult) string {
	weight := result.PelletWeight().In(unit.WeightGrain)
	minimum := result.MinimumVelocity().In(unit.VelocityFPS)
	if result.EffectiveRange() == go_shotcalc.NoEffectiveRange {
		return fmt.Sprintf("%.2f gr. pellet: no effective range (1 ft-lb needs %.0f fps)", weight, minimum)
	}
	return fmt.Sprintf("%.2f gr. pellet: effective range %d yd (1 ft-lb at %.0f fps)", weight, result.EffectiveRange(), minimum)
}

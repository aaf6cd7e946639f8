// Package report selects the yards to show from a trajectory and formats them
// as a screen table or a tab-separated export file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
)

// Export schedule: every yard, then every 2 yards, then every 5 yards.
const (
	fineLimit   = 50
	mediumLimit = 100
	coarseLimit = 400
	mediumStep  = 2
	coarseStep  = 5

	displayStep  = 5
	displayLimit = 150
)

// Drop is reported against a horizontal line of departure.
const lineOfDepartureSlope = 0.0

// Row is one line of the trajectory table.
type Row struct {
	Yard         int     `json:"yard"`
	Velocity     float64 `json:"velocity"` // fps
	Energy       float64 `json:"energy"`   // ft-lb
	Drop         float64 `json:"drop"`     // inches, negative below the line of departure
	Drift        float64 `json:"drift"`    // inches
	TimeOfFlight float64 `json:"tof"`      // seconds
}

// NewRow creates the row for the sample.
func NewRow(d go_shotcalc.TrajectoryData) Row {
	return Row{
		Yard:         d.Yard(),
		Velocity:     d.Velocity().In(unit.VelocityFPS),
		Energy:       d.Energy().In(unit.EnergyFootPound),
		Drop:         lineOfDepartureSlope*float64(d.Yard()) - d.Drop().In(unit.DistanceInch),
		Drift:        d.Drift().In(unit.DistanceInch),
		TimeOfFlight: d.Time().TotalSeconds(),
	}
}

// Rows creates the rows for the yards given. Yards outside the result are skipped.
func Rows(result go_shotcalc.TrajectoryResult, yards []int) []Row {
	rows := make([]Row, 0, len(yards))
	for _, yard := range yards {
		if d, ok := result.At(yard); ok {
			rows = append(rows, NewRow(d))
		}
	}
	return rows
}

// ExportYards returns the yards written to an export file: every yard below
// 50, every 2 yards below 100 and every 5 yards below 400, as long as the
// result has them. The effective range yard is always included.
func ExportYards(result go_shotcalc.TrajectoryResult) []int {
	n := result.Len()
	var yards []int
	yard := 0
	for ; yard < n && yard < fineLimit; yard++ {
		yards = append(yards, yard)
	}
	for ; yard < n && yard < mediumLimit; yard += mediumStep {
		yards = append(yards, yard)
	}
	for ; yard < n && yard < coarseLimit; yard += coarseStep {
		yards = append(yards, yard)
	}
	return withEffectiveRange(yards, result)
}

// DisplayYards returns the yards shown on the screen: every 5 yards up to
// 150 yards. The list is cut at the effective range, whose row ends it.
func DisplayYards(result go_shotcalc.TrajectoryResult) []int {
	n := result.Len()
	er := result.EffectiveRange()
	var yards []int
	for yard := 0; yard < n && yard <= displayLimit; yard += displayStep {
		if er != go_shotcalc.NoEffectiveRange && yard >= er {
			break
		}
		yards = append(yards, yard)
	}
	return withEffectiveRange(yards, result)
}

func withEffectiveRange(yards []int, result go_shotcalc.TrajectoryResult) []int {
	er := result.EffectiveRange()
	if er == go_shotcalc.NoEffectiveRange || er >= result.Len() {
		return yards
	}
	i := sort.SearchInts(yards, er)
	if i < len(yards) && yards[i] == er {
		return yards
	}
	yards = append(yards, 0)
	copy(yards[i+1:], yards[i:])
	yards[i] = er
	return yards
}

// Header is the header line of the export file.
var Header = []string{"Yards", "Velocity", "Fpe", "Drop", "Drift", "TOF"}

// WriteTSV writes the export rows of the result as tab-separated text.
func WriteTSV(w io.Writer, result go_shotcalc.TrajectoryResult) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(Header, "\t"))
	for _, row := range Rows(result, ExportYards(result)) {
		fmt.Fprintf(bw, "%d\t%.0f\t%.1f\t%.1f\t%.1f\t%.3f\n",
			row.Yard, row.Velocity, row.Energy, row.Drop, row.Drift, row.TimeOfFlight)
	}
	return bw.Flush()
}

// FileName makes the export file name, without extension, from the shot
// parameters. Periods are replaced with "d".
func FileName(diameter unit.Distance, weight unit.Weight, muzzleVelocity, crosswind unit.Velocity) string {
	name := fmt.Sprintf("c%.2f_w%.1f_v%.0f_x%.0f",
		diameter.In(unit.DistanceInch), weight.In(unit.WeightGrain),
		muzzleVelocity.In(unit.VelocityFPS), crosswind.In(unit.VelocityMPH))
	return strings.ReplaceAll(name, ".", "d")
}

// Extension of the export files.
const Extension = ".csv"

// Export writes the result into the directory under the name given and
// returns the path of the file.
func Export(dir, name string, result go_shotcalc.TrajectoryResult) (string, error) {
	path := filepath.Join(dir, name+Extension)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := WriteTSV(f, result); err != nil {
		f.Close()
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report: close %s: %w", path, err)
	}
	return path, nil
}

package goquery

import "fmt"

// Each rider occupies three consecutive rows of the race table body.
const rowsPerRider = 3

type riderRow int

const (
	handicapRow riderRow = iota + 1
	trialRow
	deviationRow
)

// cell locates a timing value by rider row and td column, both 1-based.
type cell struct {
	row    riderRow
	column int
}

var (
	handicapCell         = cell{handicapRow, 4}
	averageTrialTimeCell = cell{handicapRow, 5}
	trialTimeCell        = cell{trialRow, 1}
	averageRaceTimeCell  = cell{trialRow, 2}
	trialDeviationCell   = cell{deviationRow, 1}
	fastestRaceTimeCell  = cell{deviationRow, 2}
)

// rowPosition returns the 1-based position of a rider's row among the table
// rows: 3n-2, 3n-1 and 3n for rider n.
func rowPosition(rider int, row riderRow) int {
	return (rider-1)*rowsPerRider + int(row)
}

func riderRowSelector(rider int) string {
	return fmt.Sprintf("tr.player-color-%d", rider)
}

func riderNameSelector(rider int) string {
	return riderRowSelector(rider) + " div.race-table__player-info div.race-table__name a"
}

func riderInfoSelector(rider int) string {
	return riderRowSelector(rider) + " div.race-table__player-info div.race-table__info"
}

func riderCellSelector(rider int, c cell) string {
	return fmt.Sprintf("%s:nth-of-type(%d) td.race-table__txt:nth-of-type(%d)",
		riderRowSelector(rider), rowPosition(rider, c.row), c.column)
}

package quality

import "cloud.google.com/go/civil"

// Summary describes one master table after load-time cleaning: how many
// rows the extraction produced, how many survived cleaning, and the
// null rate of the value column.
type Summary struct {
	OriginalRows int
	RetainedRows int
	NullValues   int
	Institutions int
	Periods      int
	MinPeriod    civil.Date
	MaxPeriod    civil.Date
}

// DroppedRows returns the number of rows removed by cleaning.
func (s Summary) DroppedRows() int {
	return s.OriginalRows - s.RetainedRows
}

// PctDropped returns the cleaning loss as a percentage of original rows.
func (s Summary) PctDropped() float64 {
	if s.OriginalRows == 0 {
		return 0
	}
	return float64(s.DroppedRows()) / float64(s.OriginalRows) * 100
}

// PctNull returns the null rate of the value column as a percentage of
// retained rows.
func (s Summary) PctNull() float64 {
	if s.RetainedRows == 0 {
		return 0
	}
	return float64(s.NullValues) / float64(s.RetainedRows) * 100
}

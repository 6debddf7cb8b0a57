// Package excel renders analysis snapshots as spreadsheet reports.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	statcalc "covidlens/internal/analysis"
	"covidlens/domain/metrics"
	"covidlens/internal/errors"
)

// ReportWriter turns a MetricAnalysis into a downloadable workbook
type ReportWriter struct{}

// NewReportWriter creates a report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteAnalysis renders one analysis: a ranked country sheet followed by a
// statistics block. The caller owns serving headers and filenames.
func (w *ReportWriter) WriteAnalysis(a *metrics.MetricAnalysis, summary *statcalc.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Analysis"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	headers := []string{"Rank", "Country", "Continent", metrics.Label(a.Metric), "Risk Level", "Range", "Percentile"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "header cell")
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, errors.Wrap(err, "write header")
		}
	}

	for i, c := range a.Countries {
		row := i + 2
		values := []interface{}{i + 1, c.Country, c.Continent, c.Value, string(c.RiskLevel), c.Range, c.Percentile}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, errors.Wrap(err, "data cell")
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, errors.Wrapf(err, "write row %d", row)
			}
		}
	}

	if summary != nil {
		base := len(a.Countries) + 3
		stats := []struct {
			label string
			value float64
		}{
			{"Mean", summary.Mean},
			{"Median", summary.Median},
			{"Std Deviation", summary.StandardDeviation},
			{"Min", summary.Min},
			{"Max", summary.Max},
			{"Q1", summary.Q1},
			{"Q3", summary.Q3},
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "Statistics"); err != nil {
			return nil, errors.Wrap(err, "write statistics header")
		}
		for i, s := range stats {
			row := base + i + 1
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.label); err != nil {
				return nil, errors.Wrap(err, "write statistic label")
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.value); err != nil {
				return nil, errors.Wrap(err, "write statistic value")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serialize workbook")
	}
	return buf, nil
}

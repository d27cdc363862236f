package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Handle(&domain.Report{
		Title:       "Payoff",
		Currency:    "INR",
		TotalAmount: "383000.00",
		Sections: []domain.ReportSection{{
			Title:   "solarPanels",
			Summary: map[string]interface{}{"Units": 2},
			Details: []domain.ReportDetail{
				{Name: "Total cost", Value: "383000.00", Unit: "INR"},
				{Name: "Payback period", Value: "n/a", Unit: "years"},
			},
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Total Amount: INR 383000.00")
	assert.Contains(t, out, "=== solarPanels ===")
	assert.Contains(t, out, "Units: 2")

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| ") {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 3)
	assert.Equal(t, len(rows[0]), len(rows[1]))
	assert.Contains(t, rows[2], "n/a")
}

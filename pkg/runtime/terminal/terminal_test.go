package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out})
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestCLI_Sources(t *testing.T) {
	out, err := run(t, "sources")
	require.NoError(t, err)

	assert.Contains(t, out, "solarPanels")
	assert.Contains(t, out, "verticalFarming")
	assert.Contains(t, out, "191500.00")
}

func TestCLI_Compute(t *testing.T) {
	out, err := run(t, "compute", "--source", "solarPanels", "--count", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Payoff for 2 x solarPanels")
	assert.Contains(t, out, "INR 383000.00")
	assert.Contains(t, out, "24.97")
	assert.Contains(t, out, "11.10")
}

func TestCLI_Compute_Errors(t *testing.T) {
	_, err := run(t, "compute", "--source", "coal")
	assert.Error(t, err)

	_, err = run(t, "compute", "--source", "heatPump", "--count", "-1")
	assert.Error(t, err)

	_, err = run(t, "compute", "--source", "heatPump", "--format", "xml")
	assert.Error(t, err)
}

func TestCLI_Report_Inline(t *testing.T) {
	out, err := run(t, "report", "--select", "solarPanels=1,verticalFarming=1", "--format", "plain")
	require.NoError(t, err)

	assert.Contains(t, out, "Techno-economic analysis")
	assert.Contains(t, out, "=== Emissions by category ===")
	assert.Contains(t, out, "Vertical Farming")
	assert.Contains(t, out, "- Payback period: n/a years")
}

func TestCLI_Report_Plan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	require.NoError(t, os.WriteFile(path, []byte("[main]\nsolarPanels = 1\nheatPump = 1\n"), 0o644))

	out, err := run(t, "report", "--plan", path)
	require.NoError(t, err)

	// 191500 + 205000
	assert.Contains(t, out, "INR 396500.00")
	assert.Contains(t, out, "=== heatPump ===")
}

func TestCLI_Report_RequiresSelection(t *testing.T) {
	_, err := run(t, "report")
	assert.Error(t, err)
}

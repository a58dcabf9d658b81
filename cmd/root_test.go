package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/circuit-sim/sim"
)

func loadExample(t *testing.T, name string) *Scenario {
	t.Helper()
	sc, err := LoadScenario("../examples/" + name + ".yaml")
	require.NoError(t, err)
	return sc
}

func TestRunScenario_Linear(t *testing.T) {
	// GIVEN the linear example
	sc := loadExample(t, "linear")

	// WHEN it runs for the scenario's steps
	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc, sc.Steps, "steps"))

	// THEN the lamp is lit from the first step and every pin carries current
	assert.Equal(t, "scenario: linear\n"+
		"step 1: fired=4 lit=[3] pins=[0 1 2]\n"+
		"step 2: fired=4 lit=[3] pins=[0 1 2]\n"+
		"step 3: fired=4 lit=[3] pins=[0 1 2]\n"+
		"summary: steps=3 firings=12 lit=[3] settled_at=1\n", buf.String())
}

func TestRunScenario_ButtonPressAppliedBeforeStep(t *testing.T) {
	sc := loadExample(t, "button")

	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc, sc.Steps, "steps"))

	assert.Equal(t, "scenario: button\n"+
		"step 1: fired=4 lit=[] pins=[0 3]\n"+
		"step 2: fired=4 lit=[] pins=[0 3]\n"+
		"step 3: fired=5 lit=[3] pins=[0 1 2 3]\n"+
		"step 4: fired=5 lit=[3] pins=[0 1 2 3]\n"+
		"summary: steps=4 firings=18 lit=[3] settled_at=3\n", buf.String())
}

func TestRunScenario_Transistors(t *testing.T) {
	sc := loadExample(t, "transistors")

	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc, sc.Steps, "steps"))

	assert.Equal(t, "scenario: transistors\n"+
		"step 1: fired=10 lit=[6] pins=[0 1 2 3 4 5 6]\n"+
		"step 2: fired=10 lit=[6] pins=[0 1 2 3 4 5 6]\n"+
		"summary: steps=2 firings=20 lit=[6] settled_at=1\n", buf.String())
}

func TestRunScenario_StepsOverride(t *testing.T) {
	sc := loadExample(t, "linear")

	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc, 1, "steps"))

	assert.Contains(t, buf.String(), "summary: steps=1 ")
}

func TestRunScenario_CouldNotRun(t *testing.T) {
	// GIVEN a circuit with no positive terminal
	sc := &Scenario{Name: "dark", Components: []ComponentSpec{
		{Kind: "wire", Pins: []int64{0, 1}},
		{Kind: "terminal", Pins: []int64{1}},
	}}

	// WHEN it runs
	var buf bytes.Buffer
	err := runScenario(&buf, sc, 1, "steps")

	// THEN the start failure is reported and nothing is printed
	assert.ErrorIs(t, err, sim.ErrNoPositiveSource)
	assert.Contains(t, err.Error(), "could not run")
	assert.Empty(t, buf.String())
}

func TestWritePaths_UnionOfSources(t *testing.T) {
	sc := loadExample(t, "transistors")

	var buf bytes.Buffer
	require.NoError(t, writePaths(&buf, sc))

	assert.Equal(t, "0 -> 3\n1 -> 4\n2 -> 3\n3 -> 4\n4 -> 5\n5 -> 6\n", buf.String())
}

func TestWritePaths_NoGround(t *testing.T) {
	sc := &Scenario{Components: []ComponentSpec{
		{Kind: "terminal", Pins: []int64{0}, Voltage: 5},
		{Kind: "wire", Pins: []int64{0, 1}},
	}}

	err := writePaths(&bytes.Buffer{}, sc)

	assert.ErrorIs(t, err, sim.ErrUnresolvedPath)
}

func TestRunScenario_OscillatorNeverSettles(t *testing.T) {
	sc := loadExample(t, "oscillator")

	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc, sc.Steps, "steps"))

	assert.Equal(t, "scenario: oscillator\n"+
		"step 1: fired=8 lit=[] pins=[0 1 2 3 5]\n"+
		"step 2: fired=8 lit=[] pins=[0 1 5]\n"+
		"step 3: fired=8 lit=[] pins=[0 1 2 3 5]\n"+
		"step 4: fired=8 lit=[] pins=[0 1 5]\n"+
		"summary: steps=4 firings=32 lit=[] settled_at=-1\n", buf.String())
}

func TestRunScenario_TraceNone_SummaryOnly(t *testing.T) {
	// GIVEN the linear example run with tracing off
	sc := loadExample(t, "linear")

	// WHEN it runs
	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, sc, sc.Steps, "none"))

	// THEN no step lines are printed, only the empty summary
	assert.Equal(t, "scenario: linear\n"+
		"summary: steps=0 firings=0 lit=[] settled_at=-1\n", buf.String())
}

func TestRunScenario_InvalidTraceLevel(t *testing.T) {
	sc := loadExample(t, "linear")

	var buf bytes.Buffer
	err := runScenario(&buf, sc, sc.Steps, "verbose")

	assert.ErrorContains(t, err, `unknown trace level "verbose"`)
	assert.Empty(t, buf.String())
}

func TestRunCmd_TraceFlagRegistered(t *testing.T) {
	f := runCmd.Flags().Lookup("trace")
	require.NotNil(t, f)
	assert.Equal(t, "steps", f.DefValue)
}

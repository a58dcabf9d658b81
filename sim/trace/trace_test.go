package trace

import (
	"testing"
)

func TestSimulationTrace_RecordStep_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for steps
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSteps}, "run-1")

	// WHEN a step record is recorded
	st.RecordStep(StepRecord{
		Step:     1,
		Fired:    4,
		Lamps:    map[int]bool{3: true},
		Currents: map[int64]int{0: 1, 1: 1},
	})

	// THEN the trace contains one record with correct data
	if len(st.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(st.Steps))
	}
	if st.Steps[0].Fired != 4 {
		t.Errorf("expected 4 firings, got %d", st.Steps[0].Fired)
	}
	if !st.Steps[0].Lamps[3] {
		t.Error("expected lamp 3 lit")
	}
	if st.RunID != "run-1" {
		t.Errorf("expected run id run-1, got %s", st.RunID)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSteps}, "")

	for i := 1; i <= 3; i++ {
		st.RecordStep(StepRecord{Step: i})
	}

	for i, r := range st.Steps {
		if r.Step != i+1 {
			t.Errorf("record %d: expected step %d, got %d", i, i+1, r.Step)
		}
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	tests := []struct {
		level   TraceLevel
		enabled bool
	}{
		{TraceLevelSteps, true},
		{TraceLevelNone, false},
		{"", false},
	}
	for _, tc := range tests {
		st := NewSimulationTrace(TraceConfig{Level: tc.level}, "")
		if st.Enabled() != tc.enabled {
			t.Errorf("level %q: Enabled() = %v, want %v", tc.level, st.Enabled(), tc.enabled)
		}
	}
	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must not be enabled")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"steps", true},
		{"", true},
		{"decisions", false},
		{"all", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}

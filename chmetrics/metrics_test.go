package chmetrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chway/chmetrics"
)

func TestRecordQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := chmetrics.InitWithRegistry(reg, "chway_test", "rec")

	m.RecordQuery("ok", 5*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "chway_test_rec_queries_total" {
			found = true
			require.Len(t, f.Metric, 1)
			require.Equal(t, float64(1), f.Metric[0].Counter.GetValue())
		}
	}
	require.True(t, found, "queries_total metric not registered")
}

func TestRecordContractionRound(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := chmetrics.InitWithRegistry(reg, "chway_test", "round")
	m.RecordContractionRound(3)

	families, err := reg.Gather()
	require.NoError(t, err)
	var rounds, shortcuts *dto.MetricFamily
	for _, f := range families {
		switch f.GetName() {
		case "chway_test_round_contraction_rounds_total":
			rounds = f
		case "chway_test_round_contraction_shortcuts_total":
			shortcuts = f
		}
	}
	require.NotNil(t, rounds)
	require.NotNil(t, shortcuts)
	require.Equal(t, float64(1), rounds.Metric[0].Counter.GetValue())
	require.Equal(t, float64(3), shortcuts.Metric[0].Counter.GetValue())
}

func TestGet_DefaultsWithoutInit(t *testing.T) {
	m := chmetrics.Get()
	require.NotNil(t, m)
}

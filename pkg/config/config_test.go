package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
fabric:
  pods: 3
  aggPerPod: 4
  core: 4
plan:
  degrees: [2, 2]
`

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(scenario))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Fabric.Pods)
	assert.Equal(t, 1, cfg.Fabric.AggColors)
	assert.Equal(t, 1, cfg.Fabric.CoreColors)
	assert.Equal(t, []int{2, 2}, cfg.Plan.Degrees)
	assert.Equal(t, "ceil", cfg.Plan.Rounding)
}

func TestParseExplicitSwitches(t *testing.T) {
	cfg, err := Parse([]byte(`
fabric:
  pods: 2
  aggPerPod: 1
  core: 1
  switches:
    - {sid: 100, role: aggregation, pod: 0, color: 0}
    - {sid: 101, role: aggregation, pod: 1, color: 0}
    - {sid: 200, role: core, color: 1}
plan:
  degrees: [1, 1]
  rounding: floor
`))
	require.NoError(t, err)
	require.Len(t, cfg.Fabric.Switches, 3)
	assert.Equal(t, 200, cfg.Fabric.Switches[2].SID)
	assert.Equal(t, "floor", cfg.Plan.Rounding)

	net, err := fabric.NewJupiter(cfg.Fabric, nil)
	require.NoError(t, err)
	p, err := cfg.NewPlanner(net)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Iterator().SubplanCount())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "fabric: ["},
		{name: "no pods", yaml: "fabric: {aggPerPod: 1}\nplan: {degrees: [1]}"},
		{name: "no degrees", yaml: "fabric: {pods: 1, aggPerPod: 1}"},
		{name: "negative degree", yaml: "fabric: {pods: 1, aggPerPod: 1}\nplan: {degrees: [-1]}"},
		{name: "bad rounding", yaml: "fabric: {pods: 1, aggPerPod: 1}\nplan: {degrees: [1], rounding: nearest}"},
		{name: "negative colors", yaml: "fabric: {pods: 1, aggPerPod: 1, aggColors: -1}\nplan: {degrees: [1]}"},
		{
			name: "inventory larger than shape",
			yaml: "fabric: {pods: 1, aggPerPod: 1, core: 1, switches: [" +
				"{sid: 1, role: aggregation, pod: 0}, {sid: 2, role: aggregation, pod: 0}, {sid: 3, role: core}]}\n" +
				"plan: {degrees: [1]}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	net, err := fabric.NewJupiter(cfg.Fabric, nil)
	require.NoError(t, err)
	p, err := cfg.NewPlanner(net)
	require.NoError(t, err)
	assert.Equal(t, 9, p.Iterator().SubplanCount())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

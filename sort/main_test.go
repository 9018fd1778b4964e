package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	var out bytes.Buffer
	cmd := rootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestGenRunResults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sortlab.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
sizes = [50, 120]
algorithms = ["qsort_first_stop12", "nat_merge_linked"]

[store]
backend = "bbolt"

[log]
level = "error"
`), 0o644))
	defer func() { configFile = "" }()

	inDir := filepath.Join(dir, "in")
	outDir := filepath.Join(dir, "out")

	out := execute(t, "--config", cfgPath, "gen", inDir)
	assert.Contains(t, out, "Generated input files in "+inDir)
	assert.FileExists(t, filepath.Join(inDir, "120_rand.txt"))

	out = execute(t, "--config", cfgPath, "run", inDir, outDir)
	assert.Contains(t, out, "Wrote outputs to "+outDir)
	assert.Contains(t, out, "120_desc")
	assert.FileExists(t, filepath.Join(outDir, "nat_merge_linked_50_rand.txt"))
	assert.FileExists(t, filepath.Join(outDir, "benchmark_results.md"))
	assert.FileExists(t, filepath.Join(outDir, "benchmark_results.json"))

	out = execute(t, "--config", cfgPath, "results", "--output", outDir)
	assert.Contains(t, out, "qsort_first_stop12")
	assert.Contains(t, out, "50_asc")
}

func TestRunRequiresArgs(t *testing.T) {
	cmd := rootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "only-one"})
	assert.Error(t, cmd.Execute())
}

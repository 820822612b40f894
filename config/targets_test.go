package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	targets := Default()
	require.Len(t, targets, 1)

	target, err := targets.Find("CTU_CAN_FD")
	require.NoError(t, err)
	assert.Equal(t, "regs/ctu_can_fd.xml", target.Input)
	assert.Equal(t, "CAN_Registers", target.Block)
	assert.Equal(t, "regs", target.Package)

	_, err = targets.Find("sja1000")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
targets:
  - name: core
    input: desc/core.xml
    output: /abs/core/core.go
`), 0o600))

	targets, err := Load(path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, filepath.Join(dir, "desc/core.xml"), targets[0].Input)
	assert.Equal(t, "/abs/core/core.go", targets[0].Output)
	assert.Equal(t, "core", targets[0].Package)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFindIgnoresCase(t *testing.T) {
	targets, err := Parse([]byte("targets:\n  - {name: CTU_Core, input: a.xml, output: a/a.go}\n"))
	require.NoError(t, err)

	for _, name := range []string{"CTU_Core", "ctu_core", "CTU_CORE"} {
		target, err := targets.Find(name)
		require.NoError(t, err, name)
		assert.Equal(t, "CTU_Core", target.Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"no name", "targets:\n  - input: a.xml\n    output: a/a.go\n", "target 0 has no name"},
		{"duplicate", "targets:\n  - {name: a, input: a.xml, output: a/a.go}\n  - {name: a, input: b.xml, output: b/b.go}\n", "a declared twice"},
		{"no output", "targets:\n  - {name: a, input: a.xml}\n", "needs an input and an output"},
		{"duplicate ignoring case", "targets:\n  - {name: core, input: a.xml, output: a/a.go}\n  - {name: Core, input: b.xml, output: b/b.go}\n", "Core declared twice"},
		{"unknown dependency", "targets:\n  - {name: a, input: a.xml, output: a/a.go, after: [b]}\n", "runs after unknown target b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTarget)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	_, err := Parse([]byte("targets: {"))
	assert.Error(t, err)
}

func TestOrdered(t *testing.T) {
	targets := Targets{
		{Name: "c", After: []string{"b"}},
		{Name: "a"},
		{Name: "b", After: []string{"a"}},
		{Name: "d"},
	}

	ordered, err := targets.Ordered()
	require.NoError(t, err)
	names := ordered.Names()
	require.Len(t, names, 4)

	index := map[string]int{}
	for i, name := range names {
		index[name] = i
	}
	assert.Less(t, index["a"], index["b"])
	assert.Less(t, index["b"], index["c"])
	assert.Contains(t, names, "d")
}

func TestOrderedKeepsDeclarationOrder(t *testing.T) {
	targets := Targets{{Name: "z"}, {Name: "y"}, {Name: "x"}}
	ordered, err := targets.Ordered()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, ordered.Names())
}

func TestOrderedCycles(t *testing.T) {
	_, err := Targets{
		{Name: "a", After: []string{"b"}},
		{Name: "b", After: []string{"a"}},
		{Name: "c"},
	}.Ordered()
	assert.ErrorIs(t, err, ErrTargetCycle)
	assert.Contains(t, err.Error(), "a, b")

	_, err = Targets{{Name: "a", After: []string{"a"}}}.Ordered()
	assert.ErrorIs(t, err, ErrTargetCycle)
}

package boundvec

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenarioOp struct {
	Op   string `yaml:"op"`
	Val  int    `yaml:"val"`
	At   int    `yaml:"at"`
	To   int    `yaml:"to"`
	N    int    `yaml:"n"`
	Fill int    `yaml:"fill"`
}

type scenario struct {
	Name     string       `yaml:"name"`
	Capacity int          `yaml:"capacity"`
	Init     []int        `yaml:"init"`
	Ops      []scenarioOp `yaml:"ops"`
	Want     []int        `yaml:"want"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)
	var scs []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scs))
	require.NotEmpty(t, scs)
	return scs
}

func runScenario(t *testing.T, sc scenario, v *Vector[int]) {
	for _, x := range sc.Init {
		v.Push(x)
	}
	for _, op := range sc.Ops {
		switch op.Op {
		case "push":
			v.Push(op.Val)
		case "pop":
			v.Pop()
		case "erase":
			v.Erase(op.At)
		case "erase_range":
			v.EraseRange(op.At, op.To)
		case "resize":
			v.Resize(op.N)
		case "resize_fill":
			v.ResizeFill(op.N, op.Fill)
		case "clear":
			v.Clear()
		default:
			t.Fatalf("unknown op %q", op.Op)
		}
	}
	require.Equal(t, len(sc.Want), v.Len())
	require.True(t, slices.Equal(sc.Want, v.Slice()),
		"got %v want %v", v.Slice(), sc.Want)
	requireZeroTail(t, v)
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name+"/new", func(t *testing.T) {
			v := New[int](sc.Capacity)
			runScenario(t, sc, &v)
		})
		t.Run(sc.Name+"/wrap", func(t *testing.T) {
			buf := make([]int, sc.Capacity)
			v := Wrap(buf)
			runScenario(t, sc, &v)
		})
	}
}

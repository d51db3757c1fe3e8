package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-typegen/internal/gen"
	"json-typegen/internal/shape"
	"json-typegen/options"
)

func TestExamples(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	examples := []struct {
		dir  string
		name string
	}{
		{"basic", "Basic"},
		{"orders", "Orders"},
	}

	for _, ex := range examples {
		ex := ex
		t.Run(ex.dir, func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(repoRoot, "examples", ex.dir)

			s, err := shape.LoadFile(filepath.Join(dir, "shape.yaml"))
			require.NoError(t, err)

			opts, err := options.LoadFile(filepath.Join(dir, "typegen.yaml"))
			require.NoError(t, err)

			out, diags, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).GenerateFromOptions(ex.name, s, *opts)
			require.NoError(t, err)
			assert.Empty(t, diags.Warnings)

			expected, err := os.ReadFile(filepath.Join(dir, "expected.ts"))
			require.NoError(t, err)

			if diff := cmp.Diff(string(expected), out.Code); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", ex.dir, diff)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.ts")
	out := gen.Output{Ident: "Root", Code: "export type Root = string;\n\n"}

	require.NoError(t, gen.WriteFile(out, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.Code, string(data))
}

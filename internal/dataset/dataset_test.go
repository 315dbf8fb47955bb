package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/benchplot/internal/speedup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "method,nb_proc,time,size\n" +
		"sequential,1,100.5,1000\n" +
		"mpi, 2, 60,1000\n" +
		"omp,4.0,30,1000\n"

	tbl, err := Read(strings.NewReader(input), "bench.csv")
	require.NoError(t, err)

	assert.Equal(t, "bench.csv", tbl.Name)
	assert.Equal(t, []string{"method", "nb_proc", "time", "size"}, tbl.Columns)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, speedup.Row{Method: "sequential", NbProc: 1, Time: 100.5, Extra: map[string]string{"size": "1000"}}, tbl.Rows[0])
	assert.Equal(t, 2, tbl.Rows[1].NbProc)
	assert.Equal(t, 4, tbl.Rows[2].NbProc)
}

func TestReadMissingColumnIsNotALoaderError(t *testing.T) {
	tbl, err := Read(strings.NewReader("method,nb_proc\nsequential,1\n"), "partial.csv")
	require.NoError(t, err)

	_, err = speedup.Compute(tbl)
	assert.True(t, errors.Is(err, speedup.ErrSchema))
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "empty file"},
		{name: "bad time", input: "method,nb_proc,time\nmpi,2,fast\n", want: `bad.csv:2: column "time"`},
		{name: "bad procs", input: "method,nb_proc,time\nmpi,two,1\n", want: "invalid process count"},
		{name: "fractional procs", input: "method,nb_proc,time\nmpi,2.5,1\n", want: "not an integer"},
		{name: "field count", input: "method,nb_proc,time\nmpi,2\n", want: "wrong number of fields"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input), "bad.csv")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadAndDiscover(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("b_run.csv", "method,nb_proc,time\nsequential,1,2\n")
	write("a_run.CSV", "method,nb_proc,time\nsequential,1,3\n")
	write("notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))

	paths, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a_run.CSV"), filepath.Join(dir, "b_run.csv")}, paths)

	tbl, err := Load(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "b_run.csv", tbl.Name)
	assert.Equal(t, 2.0, tbl.Rows[0].Time)

	missing, err := Discover(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

package commands

import (
	"testing"
	"time"

	fcolor "github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLs(t *testing.T) {
	files := map[string]string{
		"/root/notes.txt":     "notes",
		"/root/.hidden":       "",
		"/root/docs/":         "",
		"/root/docs/plan.txt": "plan",
	}

	cases := goldenTestSuite{
		"wd":       {Args: []string{"ls"}, Files: files},
		"dir":      {Args: []string{"اعرض", "/root"}, Files: files},
		"all":      {Args: []string{"ls", "-a", "/root"}, Files: files},
		"file":     {Args: []string{"ls", "/root/notes.txt"}, Files: files},
		"multiple": {Args: []string{"ls", "/root/docs", "/root"}, Files: files},
		"no-color": {Args: []string{"ls", "--color=never", "/root"}, Files: files},
	}

	cases.Run(t, Ls)
}

func TestLs_missing(t *testing.T) {
	cmd := newTestCommand(t, nil, Ls, "ls", "/nope")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, string(out), "Cannot read directory '/nope'")
	assert.Contains(t, string(out), "خطأ: ")
}

func TestLs_long(t *testing.T) {
	cmd := newTestCommand(t, map[string]string{"/root/a.txt": "12345"}, Ls, "ls", "-l", "/root")
	stamp := time.Date(2021, time.March, 4, 5, 6, 0, 0, time.UTC)
	require.NoError(t, cmd.Session.Fs().Chtimes("/root/a.txt", stamp, stamp))

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Regexp(t, `^\s*-rw-r--r--\s+5\s+Mar  4 05:06\s+a\.txt\n$`, string(out))
}

func TestLs_color(t *testing.T) {
	cmd := newTestCommand(t, map[string]string{"/root/docs/": ""}, Ls, "ls", "--color=always", "/root")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, "\x1b[34;1mdocs/\x1b[0m\n", string(out))
}

func TestDircolor(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.Mkdir("/dir", 0755))
	require.NoError(t, afero.WriteFile(fs, "/run.sh", nil, 0755))
	require.NoError(t, afero.WriteFile(fs, "/ro.txt", nil, 0444))
	require.NoError(t, afero.WriteFile(fs, "/pkg.tar", nil, 0644))
	require.NoError(t, afero.WriteFile(fs, "/plain.txt", nil, 0644))

	cases := map[string]*fcolor.Color{
		"/dir":       ColorBoldBlue,
		"/run.sh":    ColorBoldGreen,
		"/ro.txt":    ColorBoldRed,
		"/pkg.tar":   fcolor.New(fcolor.FgRed),
		"/plain.txt": fcolor.New(fcolor.Reset),
	}

	for name, want := range cases {
		fi, err := fs.Stat(name)
		require.NoError(t, err)
		assert.Equal(t, want, Dircolor(fi), name)
	}
}

package commands

import (
	"path/filepath"
	"testing"

	"github.com/osama1998H/ocean/core/vos"
	"github.com/osama1998H/ocean/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a builtin in session and returns its combined output.
func run(t *testing.T, session *vos.Session, proc vos.ProcessFunc, argv ...string) (string, int) {
	t.Helper()

	cmd := vostest.Command(proc, argv[0], argv[1:]...)
	cmd.Session = session
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)
	return string(out), cmd.ExitStatus
}

func assertExists(t *testing.T, fs afero.Fs, name string, want bool) {
	t.Helper()

	exists, err := afero.Exists(fs, name)
	require.NoError(t, err)
	assert.Equal(t, want, exists, name)
}

func TestPwdAndCd(t *testing.T) {
	session := vostest.NewDeterministicSession()

	out, status := run(t, session, Pwd, "اين")
	assert.Equal(t, "/\n", out)
	assert.Equal(t, 0, status)

	_, status = run(t, session, Cd, "انتقل", "/tmp")
	assert.Equal(t, 0, status)
	assert.Equal(t, "/tmp", session.Getwd())

	// No argument goes home.
	_, status = run(t, session, Cd, "cd")
	assert.Equal(t, 0, status)
	assert.Equal(t, "/root", session.Getwd())

	// "-" goes back and prints the directory.
	out, status = run(t, session, Cd, "cd", "-")
	assert.Equal(t, 0, status)
	assert.Equal(t, "/tmp\n", out)
	assert.Equal(t, "/tmp", session.Getwd())

	out, _ = run(t, session, Pwd, "pwd")
	assert.Equal(t, "/tmp\n", out)
}

func TestCd_errors(t *testing.T) {
	session := vostest.NewDeterministicSession()
	require.NoError(t, afero.WriteFile(session.Fs(), "/file.txt", nil, 0644))

	out, status := run(t, session, Cd, "cd", "/missing")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "Cannot change to '/missing'")

	out, status = run(t, session, Cd, "cd", "/file.txt")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "Cannot change to '/file.txt'")

	out, status = run(t, session, Cd, "cd", "/root", "/tmp")
	assert.Equal(t, 1, status)
	assert.Equal(t, "خطأ: عدد كبير من المعاملات / Error: too many arguments\n", out)

	out, status = run(t, session, Cd, "cd", "-")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "OLDPWD not set")

	assert.Equal(t, "/", session.Getwd())
}

func TestMkdir(t *testing.T) {
	session := vostest.NewDeterministicSession()

	out, status := run(t, session, Mkdir, "انشئ", "-v", "/a/b/c", "d")
	assert.Equal(t, 0, status)
	assert.Equal(t, "mkdir: created directory '/a/b/c'\nmkdir: created directory 'd'\n", out)
	assert.True(t, isDir(session.Fs(), "/a/b/c"))
	assert.True(t, isDir(session.Fs(), "/d"))

	// Existing directories aren't an error.
	_, status = run(t, session, Mkdir, "mkdir", "-p", "/a/b")
	assert.Equal(t, 0, status)

	out, status = run(t, session, Mkdir, "mkdir")
	assert.Equal(t, 1, status)
	assert.Equal(t, "خطأ: يرجى تحديد اسم المجلد / Error: missing operand\n", out)
}

func TestTouch(t *testing.T) {
	session := vostest.NewDeterministicSession()

	_, status := run(t, session, Touch, "المس", "/root/new.txt")
	assert.Equal(t, 0, status)
	assertExists(t, session.Fs(), "/root/new.txt", true)

	_, status = run(t, session, Touch, "touch", "-c", "/root/skipped.txt")
	assert.Equal(t, 0, status)
	assertExists(t, session.Fs(), "/root/skipped.txt", false)

	out, status := run(t, session, Touch, "touch")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "missing operand")
}

func TestRm(t *testing.T) {
	session := vostest.NewDeterministicSession()
	fs := session.Fs()
	require.NoError(t, afero.WriteFile(fs, "/root/a.txt", nil, 0644))
	require.NoError(t, fs.MkdirAll("/root/dir", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/dir/b.txt", nil, 0644))

	_, status := run(t, session, Rm, "احذف", "/root/a.txt", "/root/dir")
	assert.Equal(t, 0, status)
	assertExists(t, fs, "/root/a.txt", false)
	assertExists(t, fs, "/root/dir", false)

	out, status := run(t, session, Rm, "rm", "/root/missing")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "Cannot remove '/root/missing'")

	out, status = run(t, session, Rm, "rm", "-f", "/root/missing")
	assert.Equal(t, 0, status)
	assert.Empty(t, out)

	out, status = run(t, session, Rm, "rm")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "missing operand")
}

func TestRmdir(t *testing.T) {
	session := vostest.NewDeterministicSession()
	fs := session.Fs()
	require.NoError(t, fs.MkdirAll("/root/a/b", 0755))
	require.NoError(t, fs.MkdirAll("/root/full", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/full/file.txt", nil, 0644))

	out, status := run(t, session, Rmdir, "rmdir", "/root/full")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "directory not empty")
	assertExists(t, fs, "/root/full/file.txt", true)

	out, status = run(t, session, Rmdir, "rmdir", "/root/full/file.txt")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "not a directory")

	require.NoError(t, session.Chdir("/root"))
	out, status = run(t, session, Rmdir, "rmdir", "-p", "-v", "a/b")
	assert.Equal(t, 0, status)
	assert.Equal(t, "rmdir: removing directory, 'a/b'\nrmdir: removing directory, 'a'\n", out)
	assertExists(t, fs, "/root/a", false)
}

func TestCp(t *testing.T) {
	session := vostest.NewDeterministicSession()
	fs := session.Fs()
	require.NoError(t, afero.WriteFile(fs, "/root/a.txt", []byte("a"), 0644))
	require.NoError(t, fs.MkdirAll("/root/src/nested", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/src/nested/b.txt", []byte("b"), 0644))
	require.NoError(t, fs.MkdirAll("/backup", 0755))

	_, status := run(t, session, Cp, "انسخ", "/root/a.txt", "/root/copy.txt")
	assert.Equal(t, 0, status)
	contents, err := afero.ReadFile(fs, "/root/copy.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(contents))

	// Copying a directory needs -r.
	out, status := run(t, session, Cp, "cp", "/root/src", "/backup")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "omitting directory")

	_, status = run(t, session, Cp, "cp", "-r", "/root/src", "/root/a.txt", "/backup")
	assert.Equal(t, 0, status)
	contents, err = afero.ReadFile(fs, "/backup/src/nested/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(contents))
	assertExists(t, fs, "/backup/a.txt", true)

	out, status = run(t, session, Cp, "cp", "/root/a.txt", "/root/copy.txt", "/root/not-a-dir")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "is not a directory")

	out, status = run(t, session, Cp, "cp", "/root/a.txt")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "missing source or destination")
}

func TestCp_sameFile(t *testing.T) {
	session := vostest.NewDeterministicSession()
	fs := session.Fs()
	require.NoError(t, afero.WriteFile(fs, "/root/f.txt", []byte("precious\n"), 0644))
	require.NoError(t, session.Chdir("/root"))

	cases := map[string][]string{
		"into own directory": {"cp", "f.txt", "."},
		"same name":          {"cp", "f.txt", "f.txt"},
		"absolute path":      {"انسخ", "/root/f.txt", "f.txt"},
	}

	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			out, status := run(t, session, Cp, argv...)
			assert.Equal(t, 1, status)
			assert.Contains(t, out, "are the same file")

			contents, err := afero.ReadFile(fs, "/root/f.txt")
			require.NoError(t, err)
			assert.Equal(t, "precious\n", string(contents))
		})
	}
}

func TestCp_intoItself(t *testing.T) {
	session := vostest.NewDeterministicSession()
	fs := session.Fs()
	require.NoError(t, fs.MkdirAll("/root/d", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/d/a.txt", []byte("a"), 0644))
	require.NoError(t, session.Chdir("/root"))

	out, status := run(t, session, Cp, "cp", "-r", "d", "d/sub")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "into itself")
	assertExists(t, fs, "/root/d/sub", false)

	out, status = run(t, session, Cp, "cp", "-r", "/root/d", "/root/d")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "into itself")
	assertExists(t, fs, "/root/d/d", false)

	// A sibling that shares the prefix is fine.
	_, status = run(t, session, Cp, "cp", "-r", "d", "d2")
	assert.Equal(t, 0, status)
	assertExists(t, fs, "/root/d2/a.txt", true)
}

func TestMv(t *testing.T) {
	session := vostest.NewDeterministicSession()
	fs := session.Fs()
	require.NoError(t, afero.WriteFile(fs, "/root/a.txt", []byte("a"), 0644))
	require.NoError(t, fs.MkdirAll("/archive", 0755))

	_, status := run(t, session, Mv, "انقل", "/root/a.txt", "/root/b.txt")
	assert.Equal(t, 0, status)
	assertExists(t, fs, "/root/a.txt", false)
	assertExists(t, fs, "/root/b.txt", true)

	_, status = run(t, session, Mv, "mv", "/root/b.txt", "/archive")
	assert.Equal(t, 0, status)
	assertExists(t, fs, "/archive/b.txt", true)

	out, status := run(t, session, Mv, "mv", "/root/missing", "/archive")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "Cannot move '/root/missing'")
}

func TestLn(t *testing.T) {
	dir := t.TempDir()
	session := vos.NewSession(afero.NewOsFs(), vos.NewMapEnv(), dir)
	require.NoError(t, afero.WriteFile(session.Fs(), filepath.Join(dir, "target.txt"), []byte("t"), 0644))

	_, status := run(t, session, Ln, "رابط", "-s", "target.txt", "link.txt")
	assert.Equal(t, 0, status)

	contents, err := afero.ReadFile(session.Fs(), "link.txt")
	require.NoError(t, err)
	assert.Equal(t, "t", string(contents))

	out, status := run(t, session, Ln, "ln", "-s", "target.txt", "link.txt")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "Cannot create link 'link.txt'")

	_, status = run(t, session, Ln, "ln", "-sf", "target.txt", "link.txt")
	assert.Equal(t, 0, status)

	out, status = run(t, session, Ln, "ln")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "expected TARGET [LINK_NAME]")
}

func TestLn_unsupported(t *testing.T) {
	session := vostest.NewDeterministicSession()

	out, status := run(t, session, Ln, "ln", "-s", "/root", "/tmp/link")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, afero.ErrNoSymlink.Error())
}

func TestParseOwner(t *testing.T) {
	cases := []struct {
		spec     string
		uid, gid int
		wantErr  bool
	}{
		{spec: "1000", uid: 1000, gid: -1},
		{spec: "1000:100", uid: 1000, gid: 100},
		{spec: ":100", uid: -1, gid: 100},
		{spec: "1000:", uid: 1000, gid: -1},
		{spec: ":", wantErr: true},
		{spec: "", wantErr: true},
		{spec: "no-such-user-hopefully", wantErr: true},
	}

	for _, tc := range cases {
		uid, gid, err := ParseOwner(tc.spec)
		if tc.wantErr {
			assert.Error(t, err, "ParseOwner(%q)", tc.spec)
			continue
		}

		require.NoError(t, err, "ParseOwner(%q)", tc.spec)
		assert.Equal(t, tc.uid, uid, "uid of %q", tc.spec)
		assert.Equal(t, tc.gid, gid, "gid of %q", tc.spec)
	}
}

func TestChown(t *testing.T) {
	session := vostest.NewDeterministicSession()
	require.NoError(t, afero.WriteFile(session.Fs(), "/root/a.txt", nil, 0644))

	_, status := run(t, session, Chown, "مالك", "1000:100", "/root/a.txt")
	assert.Equal(t, 0, status)

	out, status := run(t, session, Chown, "chown", "1000")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "missing operand")

	out, status = run(t, session, Chown, "chown", ":", "/root/a.txt")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "invalid owner ':'")
}

package pathext

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sysfs/platform"
)

// countingEnv records how many times PATHEXT was looked up.
type countingEnv struct {
	value   string
	present bool
	lookups atomic.Int32
}

func (e *countingEnv) LookupEnv(key string) (string, bool) {
	if key == platform.EnvPathExt {
		e.lookups.Add(1)
		return e.value, e.present
	}
	return "", false
}

func TestRegistry_Extensions(t *testing.T) {
	tests := []struct {
		name string
		env  platform.Environment
		want []string
	}{
		{
			name: "absent signal uses defaults",
			env:  platform.Map(nil),
			want: []string{".COM", ".EXE", ".BAT", ".CMD"},
		},
		{
			name: "bare entries are normalized",
			env:  platform.Map(map[string]string{"PATHEXT": ".PS1;exe;.bat"}),
			want: []string{".PS1", ".exe", ".bat"},
		},
		{
			name: "whitespace and empty entries are dropped",
			env:  platform.Map(map[string]string{"PATHEXT": " .py ;; ;rb "}),
			want: []string{".py", ".rb"},
		},
		{
			name: "empty signal falls back",
			env:  platform.Map(map[string]string{"PATHEXT": ""}),
			want: DefaultExtensions,
		},
		{
			name: "whitespace-only signal falls back",
			env:  platform.Map(map[string]string{"PATHEXT": "  ;  ; "}),
			want: DefaultExtensions,
		},
		{
			name: "nil environment uses defaults",
			env:  nil,
			want: DefaultExtensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.env).Extensions()
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestRegistry_ExtensionsReturnsCopy(t *testing.T) {
	reg := New(platform.Map(nil))

	exts := reg.Extensions()
	exts[0] = ".MUTATED"

	assert.Equal(t, ".COM", reg.Extensions()[0])
	assert.Equal(t, ".COM", DefaultExtensions[0])
}

func TestRegistry_ComputedOnce(t *testing.T) {
	env := &countingEnv{value: ".EXE", present: true}
	reg := New(env)

	_ = reg.Extensions()
	env.value = ".CHANGED"
	got := reg.Extensions()

	assert.Equal(t, []string{".EXE"}, got)
	assert.Equal(t, int32(1), env.lookups.Load())
}

func TestRegistry_ConcurrentFirstAccess(t *testing.T) {
	env := &countingEnv{value: ".PS1;.EXE", present: true}
	reg := New(env)

	const workers = 64
	results := make([][]string, workers)

	var start sync.WaitGroup
	start.Add(1)
	var done sync.WaitGroup
	for i := 0; i < workers; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i] = reg.Extensions()
		}(i)
	}
	start.Done()
	done.Wait()

	for i := range results {
		require.Equal(t, []string{".PS1", ".EXE"}, results[i], "worker %d", i)
	}
	assert.Equal(t, int32(1), env.lookups.Load())
}

func TestRegistry_Contains(t *testing.T) {
	reg := New(platform.Map(map[string]string{"PATHEXT": ".EXE;.Cmd"}))

	assert.True(t, reg.Contains(".exe"))
	assert.True(t, reg.Contains(".EXE"))
	assert.True(t, reg.Contains(".CMD"))
	assert.False(t, reg.Contains("exe"), "extension must carry the separator")
	assert.False(t, reg.Contains(".bat"))
	assert.False(t, reg.Contains(""))
}

func TestRegistry_Match(t *testing.T) {
	reg := New(platform.Map(nil))

	tests := []struct {
		path string
		want bool
	}{
		{`C:\Windows\System32\cmd.exe`, true},
		{`C:\tools\build.Bat`, true},
		{"/opt/tools/run.cmd", true},
		{"relative/setup.com", true},
		{"script", false},
		{"archive.tar.gz", false},
		{".exe", false},
		{"dir.exe/inner", false},
		{"trailing.", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Match(tt.path))
		})
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, []string{".PS1", ".exe"}, Fixed(".PS1", "exe").Extensions())
	assert.Equal(t, DefaultExtensions, Fixed().Extensions())
	assert.Equal(t, DefaultExtensions, Fixed(" ", "").Extensions())
}

func TestDefault(t *testing.T) {
	a := Default()
	b := Default()

	assert.Same(t, a, b)
	assert.NotEmpty(t, a.Extensions())
}

func TestRegistry_MatchTrailingDot(t *testing.T) {
	r := New(platform.Map(map[string]string{platform.EnvPathExt: ".;.exe"}))

	assert.Equal(t, []string{".", ".exe"}, r.Extensions())
	assert.True(t, r.Match("foo."))
	assert.False(t, Fixed(".EXE").Match("foo."))
}

func TestParse(t *testing.T) {
	assert.Equal(t, []string{".PS1", ".exe", ".bat"}, Parse(".PS1;exe;.bat"))
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse(" ; ;"))
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"cmd.exe", ".exe"},
		{`C:\dir\tool.CMD`, ".CMD"},
		{"/a/b/c.tar.gz", ".gz"},
		{"noext", ""},
		{".profile", ""},
		{"/home/user/.bashrc", ""},
		{`C:\dir.d\noext`, ""},
		{"", ""},
		{"foo.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.path))
		})
	}
}

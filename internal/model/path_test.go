package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsIn(set ...string) func(string) bool {
	m := make(map[string]bool, len(set))
	for _, s := range set {
		m[s] = true
	}
	return func(p string) bool { return m[p] }
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		value string
		sep   string
		want  PathList
	}{
		{"empty value", "", ":", PathList{}},
		{"single entry", "/usr/bin", ":", PathList{"/usr/bin"}},
		{"drops empty segments", "::/a::/b:", ":", PathList{"/a", "/b"}},
		{"keeps duplicates in order", "/usr/bin:/usr/bin:/missing/dir", ":", PathList{"/usr/bin", "/usr/bin", "/missing/dir"}},
		{"windows separator", `C:\bin;C:\tools`, ";", PathList{`C:\bin`, `C:\tools`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.value, tt.sep))
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	lists := []PathList{
		{},
		{"/a"},
		{"/a", "/b", "/a"},
		{"relative", "/with space", "/x/y/z"},
	}
	for _, l := range lists {
		assert.Equal(t, l, Split(l.Join(":"), ":"))
	}
}

func TestDuplicateIndices(t *testing.T) {
	t.Run("no duplicates", func(t *testing.T) {
		assert.Empty(t, PathList{"a", "b", "c", "d", "e"}.DuplicateIndices())
	})

	t.Run("every member of a group is flagged", func(t *testing.T) {
		l := PathList{"a", "a", "b", "b", "c", "d", "e", "a"}
		want := map[int]bool{0: true, 1: true, 2: true, 3: true, 7: true}
		assert.Equal(t, want, l.DuplicateIndices())
	})
}

func TestClassify(t *testing.T) {
	l := PathList{"/usr/bin", "/usr/bin", "/missing/dir", "/gone", "/gone"}
	got := l.Classify(existsIn("/usr/bin"))

	require.Len(t, got, 5)
	assert.Equal(t, EntryStatus{Duplicate: true}, got[0])
	assert.Equal(t, EntryStatus{Duplicate: true}, got[1])
	assert.Equal(t, EntryStatus{Missing: true}, got[2])
	assert.Equal(t, EntryStatus{Missing: true, Duplicate: true}, got[3])

	assert.Equal(t, FlagDuplicate, got[0].Flag())
	assert.Equal(t, FlagMissing, got[2].Flag())
	assert.Equal(t, FlagMissing, got[3].Flag(), "missing takes precedence over duplicate")
	assert.Equal(t, FlagNone, EntryStatus{}.Flag())
}

func TestDedupe(t *testing.T) {
	t.Run("keeps first occurrences in order", func(t *testing.T) {
		l := PathList{"a", "b", "a", "c", "b", "d"}
		assert.Equal(t, PathList{"a", "b", "c", "d"}, l.Dedupe())
	})

	t.Run("idempotent", func(t *testing.T) {
		l := PathList{"1", "1", "2", "3", "1", "2", "4", "5", "5", "2", "4"}
		once := l.Dedupe()
		assert.Equal(t, PathList{"1", "2", "3", "4", "5"}, once)
		assert.Equal(t, once, once.Dedupe())
	})

	t.Run("no duplicates is unchanged", func(t *testing.T) {
		l := PathList{"e", "d", "c", "b", "a"}
		assert.Equal(t, l, l.Dedupe())
	})
}

func TestPruneMissing(t *testing.T) {
	l := PathList{"/a", "/missing", "/b", "/c", "/also-missing"}
	got := l.PruneMissing(existsIn("/a", "/b", "/c"))

	assert.Equal(t, PathList{"/a", "/b", "/c"}, got)
	assert.LessOrEqual(t, len(got), len(l))
}

func TestDedupeThenPrune(t *testing.T) {
	l := Split("/usr/bin:/usr/bin:/missing/dir", ":")
	got := l.Dedupe().PruneMissing(existsIn("/usr/bin"))
	assert.Equal(t, PathList{"/usr/bin"}, got)
}

func TestInsert(t *testing.T) {
	l := PathList{}
	assert.Equal(t, 0, l.Insert("/a"))
	assert.Equal(t, 1, l.Insert("/b"))
	assert.Equal(t, PathList{"/a", "/b"}, l)
}

func TestDelete(t *testing.T) {
	l := PathList{"a", "b", "c", "d"}
	require.NoError(t, l.Delete(1))
	assert.Equal(t, PathList{"a", "c", "d"}, l)

	err := l.Delete(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, PathList{"a", "c", "d"}, l, "failed delete must not mutate")

	assert.ErrorIs(t, l.Delete(-1), ErrIndexOutOfRange)
}

func TestMoveTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     PathList
		wantIdx  int
	}{
		{"same position", 1, 1, PathList{"a", "b", "c"}, 1},
		{"last to top", 2, 0, PathList{"c", "a", "b"}, 0},
		{"top to middle", 0, 1, PathList{"b", "a", "c"}, 1},
		{"top to last index", 0, 2, PathList{"b", "c", "a"}, 2},
		{"bottom shorthand", 0, 3, PathList{"b", "c", "a"}, 2},
		{"bottom shorthand from end", 2, 3, PathList{"a", "b", "c"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := PathList{"a", "b", "c"}
			idx, err := l.MoveTo(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}

func TestMoveTo_OutOfRange(t *testing.T) {
	l := PathList{"a", "b", "c"}

	_, err := l.MoveTo(0, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.MoveTo(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.MoveTo(0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, PathList{"a", "b", "c"}, l)
}

func TestMoveTo_DoesNotAliasCaller(t *testing.T) {
	orig := PathList{"a", "b", "c"}
	l := orig.Clone()
	_, err := l.MoveTo(1, 0)
	require.NoError(t, err)
	assert.Equal(t, PathList{"a", "b", "c"}, orig)
}

func TestReplace(t *testing.T) {
	l := PathList{"a", "b"}
	require.NoError(t, l.Replace(1, "  /new/path \t"))
	assert.Equal(t, PathList{"a", "/new/path"}, l)

	assert.ErrorIs(t, l.Replace(2, "x"), ErrIndexOutOfRange)
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(filepath.Join(dir, "nope")))
}

func TestCompletePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bits.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0o755))

	sep := string(filepath.Separator)
	prefix := dir + sep

	t.Run("matches prefix", func(t *testing.T) {
		got := CompletePath(prefix + "bi")
		assert.Equal(t, []string{prefix + "bin" + sep, prefix + "bits.txt"}, got)
	})

	t.Run("hidden entries only on dot", func(t *testing.T) {
		assert.NotContains(t, CompletePath(prefix), prefix+".hidden"+sep)
		assert.Equal(t, []string{prefix + ".hidden" + sep}, CompletePath(prefix+"."))
	})

	t.Run("unreadable directory", func(t *testing.T) {
		assert.Nil(t, CompletePath(filepath.Join(dir, "nope", "x")))
	})
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, home+"/bin", ExpandTilde("~/bin"))
	assert.Equal(t, "/usr/~/bin", ExpandTilde("/usr/~/bin"))
	assert.Equal(t, "~user/bin", ExpandTilde("~user/bin"))
}

package argp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlag(t *testing.T) {
	testCases := []struct {
		name  string
		args  []string
		names []string
		found bool
		rest  []string
	}{
		{
			name:  "single match",
			args:  []string{"a", "-v", "b"},
			names: []string{"-v"},
			found: true,
			rest:  []string{"a", "b"},
		},
		{
			name:  "alias",
			args:  []string{"a", "--verbose"},
			names: []string{"-v", "--verbose"},
			found: true,
			rest:  []string{"a"},
		},
		{
			name:  "earliest token wins over name order",
			args:  []string{"--verbose", "-v"},
			names: []string{"-v", "--verbose"},
			found: true,
			rest:  []string{"-v"},
		},
		{
			name:  "only one token consumed",
			args:  []string{"-v", "-v"},
			names: []string{"-v"},
			found: true,
			rest:  []string{"-v"},
		},
		{
			name:  "no match",
			args:  []string{"-vv", "--verb"},
			names: []string{"-v"},
			found: false,
			rest:  []string{"-vv", "--verb"},
		},
		{
			name:  "no names",
			args:  []string{"-v"},
			names: nil,
			found: false,
			rest:  []string{"-v"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			require.Equal(t, tc.found, s.Flag(tc.names...))
			require.Equal(t, tc.rest, s.Args())
			require.Equal(t, tc.args, s.Origin())
		})
	}
}

func TestFlagConsumedOnce(t *testing.T) {
	s := From("x", "-q", "y")

	require.True(t, s.Flag("-q"))
	require.Equal(t, 2, s.Len())
	require.False(t, s.Flag("-q"))
	require.Equal(t, []string{"x", "y"}, s.Args())
}

func TestFlagVar(t *testing.T) {
	s := From("-v")

	v := false
	s.FlagVar(&v, "-v")
	require.True(t, v)

	// A miss overwrites the previous value.
	s.FlagVar(&v, "-v")
	require.False(t, v)
}

func TestOption(t *testing.T) {
	testCases := []struct {
		name  string
		args  []string
		names []string
		value string
		found bool
		rest  []string
	}{
		{
			name:  "spaced equals",
			args:  []string{"x", "=", "5", "rest"},
			names: []string{"x"},
			value: "5",
			found: true,
			rest:  []string{"rest"},
		},
		{
			name:  "separate value",
			args:  []string{"x", "5"},
			names: []string{"x"},
			value: "5",
			found: true,
			rest:  []string{},
		},
		{
			name:  "joined",
			args:  []string{"x=5"},
			names: []string{"x"},
			value: "5",
			found: true,
			rest:  []string{},
		},
		{
			name:  "joined empty value",
			args:  []string{"a", "x="},
			names: []string{"x"},
			value: "",
			found: true,
			rest:  []string{"a"},
		},
		{
			name:  "trailing equals is the value",
			args:  []string{"a", "x", "="},
			names: []string{"x"},
			value: "=",
			found: true,
			rest:  []string{"a"},
		},
		{
			name:  "name as last token",
			args:  []string{"a", "x"},
			names: []string{"x"},
			value: "",
			found: false,
			rest:  []string{"a", "x"},
		},
		{
			name:  "first name takes precedence",
			args:  []string{"--b=2", "--a", "1"},
			names: []string{"--a", "--b"},
			value: "1",
			found: true,
			rest:  []string{"--b=2"},
		},
		{
			name:  "falls through to later name",
			args:  []string{"--b=2", "z"},
			names: []string{"--a", "--b"},
			value: "2",
			found: true,
			rest:  []string{"z"},
		},
		{
			name:  "leftmost position for a name",
			args:  []string{"k=1", "k", "2"},
			names: []string{"k"},
			value: "1",
			found: true,
			rest:  []string{"k", "2"},
		},
		{
			name:  "longer name is not a prefix match",
			args:  []string{"xy=5"},
			names: []string{"x"},
			value: "",
			found: false,
			rest:  []string{"xy=5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			value, found := s.Option(tc.names...)
			require.Equal(t, tc.found, found)
			require.Equal(t, tc.value, value)
			require.Equal(t, tc.rest, s.Args())
		})
	}
}

func TestOptionNotFoundIsStable(t *testing.T) {
	s := From("a", "b")

	v1, ok1 := s.Option("c")
	v2, ok2 := s.Option("c")

	require.Equal(t, v1, v2)
	require.Equal(t, ok1, ok2)
	require.False(t, ok1)
	require.Equal(t, []string{"a", "b"}, s.Args())
}

func TestOptionVar(t *testing.T) {
	s := From("--name", "alice")

	v := "default"
	s.OptionVar(&v, "--name")
	require.Equal(t, "alice", v)

	// A miss keeps the previous value.
	s.OptionVar(&v, "--name")
	require.Equal(t, "alice", v)
}

func TestPrefix(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		prefix string
		value  string
		found  bool
		rest   []string
	}{
		{"match", []string{"--opt=val", "other"}, "--opt=", "val", true, []string{"other"}},
		{"first of several", []string{"a", "-Dx", "-Dy"}, "-D", "x", true, []string{"a", "-Dy"}},
		{"equal token is not longer", []string{"--opt="}, "--opt=", "", false, []string{"--opt="}},
		{"no match", []string{"x--opt=1"}, "--opt=", "", false, []string{"x--opt=1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			value, found := s.Prefix(tc.prefix)
			require.Equal(t, tc.found, found)
			require.Equal(t, tc.value, value)
			require.Equal(t, tc.rest, s.Args())
		})
	}
}

func TestSuffix(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		suffix string
		value  string
		found  bool
		rest   []string
	}{
		{"match", []string{"main.go", "x"}, ".go", "main", true, []string{"x"}},
		{"first of several", []string{"a.txt", "b.go", "c.go"}, ".go", "b", true, []string{"a.txt", "c.go"}},
		{"equal token is not longer", []string{".go"}, ".go", "", false, []string{".go"}},
		{"no match", []string{"go.mod"}, ".go", "", false, []string{"go.mod"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			value, found := s.Suffix(tc.suffix)
			require.Equal(t, tc.found, found)
			require.Equal(t, tc.value, value)
			require.Equal(t, tc.rest, s.Args())
		})
	}
}

func TestShort(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		prefix string
		want   []string
	}{
		{"cluster", []string{"-abc"}, "-", []string{"-a", "-b", "-c"}},
		{"remainder contains prefix", []string{"-a-"}, "-", []string{"-a-"}},
		{"long flag untouched", []string{"--all", "x"}, "-", []string{"--all", "x"}},
		{"bare prefix untouched", []string{"-"}, "-", []string{"-"}},
		{"appended after others", []string{"-ab", "x", "-c"}, "-", []string{"x", "-a", "-b", "-c"}},
		{"adjacent clusters", []string{"-ab", "-cd"}, "-", []string{"-a", "-b", "-c", "-d"}},
		{"other prefix", []string{"+xy", "-z"}, "+", []string{"-z", "+x", "+y"}},
		{"empty prefix", []string{"abc"}, "", []string{"abc"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			require.Same(t, s, s.Short(tc.prefix))
			require.Equal(t, tc.want, s.Args())
			require.Equal(t, tc.args, s.Origin())
		})
	}
}

func TestShortThenFlag(t *testing.T) {
	s := From("-xvf", "file.tar")

	s.Short("-")
	require.True(t, s.Flag("-v"))
	require.True(t, s.Flag("-x"))
	require.False(t, s.Flag("-z"))
	require.Equal(t, []string{"file.tar", "-f"}, s.Args())
}

func TestSuggest(t *testing.T) {
	s := From("--verbose", "--version", "x")

	require.Equal(t, []string{"--verbose"}, s.Suggest("verbse"))
	require.Empty(t, s.Suggest("zzz"))
	require.Empty(t, s.Suggest(""))
	require.Equal(t, []string{"--verbose", "--version", "x"}, s.Args())
}

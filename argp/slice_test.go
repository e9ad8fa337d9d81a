package argp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBefore(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		marker string
		want   []string
		at     int
	}{
		{"middle", []string{"a", "b", "--", "c"}, "--", []string{"a", "b"}, 2},
		{"at zero", []string{"--", "c"}, "--", nil, -1},
		{"at zero then later", []string{"--", "c", "--"}, "--", []string{"--", "c"}, 2},
		{"last", []string{"a", "--"}, "--", []string{"a"}, 1},
		{"absent", []string{"a", "b"}, "--", nil, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			got, at := s.Before(tc.marker)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.at, at)
			require.Equal(t, tc.args, s.Args())
		})
	}
}

func TestAfter(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		marker string
		want   []string
		at     int
	}{
		{"middle", []string{"a", "b", "--", "c"}, "--", []string{"c"}, 2},
		{"at zero", []string{"--", "c"}, "--", []string{"c"}, 0},
		{"last", []string{"a", "--"}, "--", nil, -1},
		{"last then earlier", []string{"--", "a", "--"}, "--", []string{"a", "--"}, 0},
		{"absent", []string{"a"}, "--", nil, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			got, at := s.After(tc.marker)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.at, at)
			require.Equal(t, tc.args, s.Args())
		})
	}
}

func TestBeforeResultIsCopy(t *testing.T) {
	s := From("a", "b", "--")

	got, _ := s.Before("--")
	got[0] = "z"

	require.Equal(t, []string{"a", "b", "--"}, s.Args())
}

func TestAttach(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want []string
		rest []string
	}{
		{"middle", []string{"a", "--", "b", "c"}, []string{"b", "c"}, []string{"b", "c"}},
		{"leading", []string{"--", "b"}, []string{"b"}, []string{"b"}},
		{"trailing marker", []string{"a", "--"}, nil, []string{"a", "--"}},
		{"absent", []string{"a", "b"}, nil, []string{"a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := From(tc.args...)
			require.Equal(t, tc.want, s.Attach())
			require.Equal(t, tc.rest, s.Args())
			require.Equal(t, tc.args, s.Origin())
		})
	}
}

func TestAttachAbsentIsStable(t *testing.T) {
	s := From("a", "b")

	require.Nil(t, s.Attach())
	require.Nil(t, s.Attach())
	require.Equal(t, []string{"a", "b"}, s.Args())
}

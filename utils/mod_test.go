package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex[int](nil, 3))
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4}
	Reverse(s)
	require.Equal(t, []int{4, 3, 2, 1}, s)

	odd := []string{"a", "b", "c"}
	Reverse(odd)
	require.Equal(t, []string{"c", "b", "a"}, odd)

	Reverse([]int{})
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, SplitList(" a, b ,,c "))
	require.Equal(t, []string{}, SplitList(""))
	require.Equal(t, []string{}, SplitList(" , , "))
	require.Equal(t, []string{"one"}, SplitList("one"))
}

func TestSplitPortList(t *testing.T) {
	require.Equal(t, []int{80, 443}, SplitPortList("80, x, 443"))
	require.Equal(t, []int{}, SplitPortList(""))
	require.Equal(t, []int{25, 465, 587}, SplitPortList("25,465,587"))
}

func TestJoinList(t *testing.T) {
	m := Map{
		"hosts": []any{"a.example.com", "b.example.com"},
		"ports": []any{float64(80), float64(443)},
		"str":   "not-a-list",
	}
	require.Equal(t, "a.example.com, b.example.com", JoinList(m, "hosts"))
	require.Equal(t, "80, 443", JoinList(m, "ports"))
	require.Equal(t, "", JoinList(m, "str"))
	require.Equal(t, "", JoinList(m, "missing"))
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrCoercion(t *testing.T) {
	m := Map{
		"s":    "hello",
		"n":    float64(12),
		"b":    true,
		"null": nil,
	}
	require.Equal(t, "hello", Str(m, "s"))
	require.Equal(t, "12", Str(m, "n"))
	require.Equal(t, "true", Str(m, "b"))
	require.Equal(t, "", Str(m, "null"))
	require.Equal(t, "", Str(m, "missing"))
	require.Equal(t, "", Str(nil, "anything"))
}

func TestIntHandlesJSONNumbers(t *testing.T) {
	m := Map{"f": float64(7.9), "i": 3, "s": "12"}
	require.Equal(t, 7, Int(m, "f"))
	require.Equal(t, 3, Int(m, "i"))
	require.Equal(t, 0, Int(m, "s"))
	require.Equal(t, 0, Int(m, "missing"))
}

func TestChildChains(t *testing.T) {
	m := Map{"config": Map{"identity": Map{"name": "Ada"}}}
	require.Equal(t, "Ada", Str(Child(Child(m, "config"), "identity"), "name"))
	// Absent levels still chain safely.
	require.Equal(t, "", Str(Child(Child(m, "missing"), "identity"), "name"))
	require.Empty(t, Child(m, "missing"))
}

func TestFirstList(t *testing.T) {
	m := Map{
		"events": []any{},
		"items":  []any{Map{"id": "1"}},
	}
	require.Len(t, FirstList(m, "events", "items"), 1)
	require.Nil(t, FirstList(m, "absent"))
}

func TestMapItemsSkipsNonObjects(t *testing.T) {
	items := MapItems([]any{Map{"id": "1"}, "junk", nil, Map{"id": "2"}})
	require.Len(t, items, 2)
}

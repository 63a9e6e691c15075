package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapAccessors(t *testing.T) {
	t.Run("nil map is empty, not a panic", func(t *testing.T) {
		var m JSONMap
		_, ok := GetString(m, "x")
		assert.False(t, ok)
		_, ok = GetFloat(m, "x")
		assert.False(t, ok)
		_, ok = GetStrings(m, "x")
		assert.False(t, ok)
	})

	t.Run("decoded JSON numbers are float64", func(t *testing.T) {
		var m JSONMap
		require.NoError(t, json.Unmarshal([]byte(`{"count": 3, "score": 0.5}`), &m))

		n, ok := GetInt(m, "count")
		require.True(t, ok)
		assert.Equal(t, 3, n)

		f, ok := GetFloat(m, "score")
		require.True(t, ok)
		assert.Equal(t, 0.5, f)
	})

	t.Run("string slices survive a JSON round trip", func(t *testing.T) {
		m := JSONMap{"tags": []string{"a", "b"}}
		got, ok := GetStrings(m, "tags")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)

		raw, err := json.Marshal(m)
		require.NoError(t, err)
		var decoded JSONMap
		require.NoError(t, json.Unmarshal(raw, &decoded))

		got, ok = GetStrings(decoded, "tags")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("wrong kind reports absent", func(t *testing.T) {
		m := JSONMap{"x": 1.0}
		_, ok := GetString(m, "x")
		assert.False(t, ok)
		_, ok = GetBool(m, "x")
		assert.False(t, ok)
	})

	t.Run("merge overlays without mutating base", func(t *testing.T) {
		base := JSONMap{"a": 1, "b": 2}
		out := Merge(base, JSONMap{"b": 3, "c": 4})
		assert.Equal(t, JSONMap{"a": 1, "b": 3, "c": 4}, out)
		assert.Equal(t, 2, base["b"])
	})
}

package autorace_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/fwojciec/autorace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_ZeroValueIsAbsent(t *testing.T) {
	t.Parallel()

	var o autorace.Optional[int]

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, o.IsPresent())
	assert.Equal(t, 7, o.OrElse(7))
	assert.Empty(t, o.String())
}

func TestOptional_PresentZeroIsNotAbsent(t *testing.T) {
	t.Parallel()

	o := autorace.Some(0)

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, o.OrElse(7))
	assert.Equal(t, "0", o.String())
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	atoi := func(s string) autorace.Optional[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return autorace.None[int]()
		}
		return autorace.Some(n)
	}

	t.Run("present and convertible", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, autorace.Some(42), autorace.AndThen(autorace.Some("42"), atoi))
	})

	t.Run("present but not convertible", func(t *testing.T) {
		t.Parallel()
		assert.False(t, autorace.AndThen(autorace.Some("x"), atoi).IsPresent())
	})

	t.Run("absent short-circuits", func(t *testing.T) {
		t.Parallel()
		called := false
		result := autorace.AndThen(autorace.None[string](), func(s string) autorace.Optional[int] {
			called = true
			return autorace.Some(1)
		})
		assert.False(t, result.IsPresent())
		assert.False(t, called)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }

	assert.Equal(t, autorace.Some(4), autorace.Map(autorace.Some(2), double))
	assert.False(t, autorace.Map(autorace.None[int](), double).IsPresent())
}

func TestOptional_JSON(t *testing.T) {
	t.Parallel()

	type record struct {
		Name   autorace.Optional[string]  `json:"name"`
		Points autorace.Optional[float64] `json:"points"`
	}

	data, err := json.Marshal(record{Name: autorace.Some("青山")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"青山","points":null}`, string(data))

	var got record
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"points":3.5}`), &got))
	assert.False(t, got.Name.IsPresent())
	assert.Equal(t, autorace.Some(3.5), got.Points)
}

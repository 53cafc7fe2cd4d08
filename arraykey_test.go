package coerce_test

import (
	"math"
	"testing"

	"github.com/madison-web-solutions/coerce"
	"github.com/stretchr/testify/assert"
)

func arrayKeyCases() []coercion[coerce.Key] {
	return []coercion[coerce.Key]{
		pass("zero", 0, coerce.IntKey(0)),
		pass("word", "foo", coerce.StringKey("foo")),
		pass("integral float", 1.0, coerce.IntKey(1)),
		pass("fractional float", 2.5, coerce.StringKey("2.5")),
		pass("int string", "1", coerce.IntKey(1)),
		pass("integral float string", "1.0", coerce.IntKey(1)),
		pass("fractional string", "2.5", coerce.StringKey("2.5")),
		reject[coerce.Key]("null", nil),
		reject[coerce.Key]("empty string", ""),
		reject[coerce.Key]("nan", math.NaN()),
		reject[coerce.Key]("inf", math.Inf(1)),
		reject[coerce.Key]("true", true),
		reject[coerce.Key]("slice", []any{}),
		reject[coerce.Key]("object", opaque{}),
	}
}

func TestArrayKey(t *testing.T) {
	checkCoercions[coerce.Key](t, coerce.ArrayKey{}, arrayKeyCases())
}

func TestArrayKey_OrNull(t *testing.T) {
	checkOrNull[coerce.Key](t, coerce.ArrayKey{}, arrayKeyCases())
}

func TestArrayKey_Edges(t *testing.T) {
	checkCoercions[coerce.Key](t, coerce.ArrayKey{}, []coercion[coerce.Key]{
		pass("negative string", "-3", coerce.IntKey(-3)),
		pass("exponent string", "1e3", coerce.IntKey(1000)),
		pass("padded string", " 1", coerce.StringKey(" 1")),
		pass("overflowing integral string", "99999999999999999999", coerce.StringKey("99999999999999999999")),
		pass("overflowing integral float", 1e20, coerce.StringKey("1.0E+20")),
		pass("uint64 max", uint64(math.MaxUint64), coerce.StringKey("18446744073709551615")),
		pass("uint", uint16(9), coerce.IntKey(9)),
		pass("int key", coerce.IntKey(5), coerce.IntKey(5)),
		pass("string key", coerce.StringKey("1"), coerce.StringKey("1")),
		reject[coerce.Key]("false", false),
		reject[coerce.Key]("negative inf", math.Inf(-1)),
		reject[coerce.Key]("stringer", label{"x"}),
		reject[coerce.Key]("map", map[int]string{1: "a"}),
	})
}

func TestKey(t *testing.T) {
	k := coerce.IntKey(-2)
	i, ok := k.Int()
	assert.True(t, ok)
	assert.True(t, k.IsInt())
	assert.Equal(t, int64(-2), i)
	assert.Equal(t, "-2", k.String())
	assert.Equal(t, int64(-2), k.Value())

	s := coerce.StringKey("2.5")
	_, ok = s.Int()
	assert.False(t, ok)
	assert.False(t, s.IsInt())
	assert.Equal(t, "2.5", s.String())
	assert.Equal(t, "2.5", s.Value())

	assert.NotEqual(t, coerce.IntKey(1), coerce.StringKey("1"))

	// Keys are comparable, so they can index a Go map directly.
	m := map[coerce.Key]string{}
	for _, in := range []any{1, 1.0, "1", "1.0"} {
		m[coerce.ArrayKey{}.Must(in)] = "one"
	}
	assert.Len(t, m, 1)

	str, ok := coerce.TryString(coerce.IntKey(7))
	assert.True(t, ok)
	assert.Equal(t, "7", str)
}

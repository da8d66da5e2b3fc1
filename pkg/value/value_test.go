package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"null", `null`, KindNull},
		{"bool", `true`, KindBool},
		{"int", `42`, KindInt},
		{"negative int", `-7`, KindInt},
		{"float", `3.14`, KindFloat},
		{"string", `"hello"`, KindString},
		{"list", `[1,2,3]`, KindList},
		{"object", `{"a":1}`, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestIntFloatDistinct(t *testing.T) {
	i, err := Parse([]byte(`30`))
	require.NoError(t, err)
	f, err := Parse([]byte(`30.0`))
	require.NoError(t, err)

	assert.Equal(t, KindInt, i.Kind())
	assert.Equal(t, KindFloat, f.Kind())
	assert.False(t, i.Equal(f))
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-9223372036854775808`,
		`9223372036854775807`,
		`1.5`,
		`""`,
		`"with \"quotes\" and \\ escapes"`,
		`[]`,
		`[1,"two",3.5,null,[true],{"k":"v"}]`,
		`{}`,
		`{"name":"John","age":30,"tags":["dev","rust","json"],"nested":{"a":[1,2],"b":null}}`,
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			v, err := Parse([]byte(in))
			require.NoError(t, err)

			again, err := Parse([]byte(v.JSON()))
			require.NoError(t, err)
			assert.True(t, v.Equal(again), "round-trip changed %s into %s", in, again.JSON())
		})
	}
}

func TestEqualObjectsIgnoreKeyOrder(t *testing.T) {
	a, err := Parse([]byte(`{"x":1,"y":[1,2]}`))
	require.NoError(t, err)
	b, err := Parse([]byte(`{"y":[1,2],"x":1}`))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestEqualListsAreOrdered(t *testing.T) {
	a, err := Parse([]byte(`[1,2]`))
	require.NoError(t, err)
	b, err := Parse([]byte(`[2,1]`))
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}

func TestFromLiterals(t *testing.T) {
	v, err := From(map[string]interface{}{
		"name": "John",
		"age":  30,
		"tags": []interface{}{"dev", "rust", "json"},
	})
	require.NoError(t, err)

	want, err := Parse([]byte(`{"name":"John","age":30,"tags":["dev","rust","json"]}`))
	require.NoError(t, err)
	assert.True(t, v.Equal(want))
}

func TestFromUnsupported(t *testing.T) {
	_, err := From(struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFromLargeUint(t *testing.T) {
	v, err := From(uint64(1) << 63)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, v.Kind())
}

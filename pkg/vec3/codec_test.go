package vec3

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseVector3(t *testing.T) {
	v, err := ParseVector3("(1,2,3)")
	require.NoError(t, err)
	require.Equal(t, New(1, 2, 3), v)

	v, err = ParseVector3("  ( 0.5 , -1e3,+Inf ) ")
	require.NoError(t, err)
	require.Equal(t, 0.5, v[0])
	require.Equal(t, -1000.0, v[1])
	require.True(t, math.IsInf(v[2], 1))
}

func TestParseVector3RoundTripsString(t *testing.T) {
	for _, v := range samples {
		got, err := ParseVector3(v.String())
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestParseVector3Errors(t *testing.T) {
	_, err := ParseVector3("1,2,3")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseVector3("(1,2)")
	require.ErrorIs(t, err, ErrComponentCount)

	_, err = ParseVector3("(1,2,3,4)")
	require.ErrorIs(t, err, ErrComponentCount)

	_, err = ParseVector3("(1,two,3)")
	require.ErrorIs(t, err, ErrInvalidComponent)
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(New(1, 0.5, -2))
	require.NoError(t, err)
	require.JSONEq(t, `[1,0.5,-2]`, string(data))

	type payload struct {
		Color Vector3 `json:"color"`
	}
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"color":{"r":0.1,"g":0.2,"b":0.3}}`), &p))
	require.Equal(t, New(0.1, 0.2, 0.3), p.Color)

	require.NoError(t, json.Unmarshal([]byte(`{"color":"(4,5,6)"}`), &p))
	require.Equal(t, New(4, 5, 6), p.Color)

	require.NoError(t, json.Unmarshal([]byte(`{"color":[7,8,9]}`), &p))
	require.Equal(t, New(7, 8, 9), p.Color)
}

func TestJSONNonFiniteUsesTextForm(t *testing.T) {
	in := UnitVector(Zero)
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `"(NaN,NaN,NaN)"`, string(data))

	var out Vector3
	require.NoError(t, json.Unmarshal(data, &out))
	for _, c := range out {
		require.True(t, math.IsNaN(c))
	}

	data, err = json.Marshal(New(math.Inf(1), 0, -2))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, New(math.Inf(1), 0, -2), out)
}

func TestJSONErrors(t *testing.T) {
	var v Vector3
	require.ErrorIs(t, json.Unmarshal([]byte(`[1,2]`), &v), ErrComponentCount)
	require.ErrorIs(t, json.Unmarshal([]byte(`[1,2,null]`), &v), ErrInvalidComponent)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"x":1,"y":null}`), &v), ErrInvalidComponent)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"w":1}`), &v), ErrUnknownKey)
	require.ErrorIs(t, json.Unmarshal([]byte(`true`), &v), ErrInvalidFormat)
}

func TestYAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]Vector3{"p": New(1, 2.5, -3)})
	require.NoError(t, err)
	require.Equal(t, "p: [1, 2.5, -3]\n", string(data))

	var doc struct {
		A Vector3 `yaml:"a"`
		B Vector3 `yaml:"b"`
		C Vector3 `yaml:"c"`
		D Vector3 `yaml:"d"`
	}
	src := `
a: [1, 2, 3]
b: {x: 0.5, z: 2}
c: "(4,5,6)"
d: *ref
`
	src = "ref: &ref [7, 8, .inf]\n" + src
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, New(1, 2, 3), doc.A)
	assert.Equal(t, New(0.5, 0, 2), doc.B)
	assert.Equal(t, New(4, 5, 6), doc.C)
	assert.Equal(t, 7.0, doc.D[0])
	assert.True(t, math.IsInf(doc.D[2], 1))
}

func TestYAMLRoundTripNonFinite(t *testing.T) {
	in := New(math.Inf(-1), math.Inf(1), 0.25)
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out Vector3
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestYAMLErrors(t *testing.T) {
	var v Vector3
	require.ErrorIs(t, yaml.Unmarshal([]byte(`[1, 2]`), &v), ErrComponentCount)
	require.ErrorIs(t, yaml.Unmarshal([]byte(`{x: 1, w: 2}`), &v), ErrUnknownKey)
	require.ErrorIs(t, yaml.Unmarshal([]byte(`[1, foo, 3]`), &v), ErrInvalidComponent)
	require.ErrorIs(t, yaml.Unmarshal([]byte(`nope`), &v), ErrInvalidFormat)
}

func TestTextMarshalerAsMapKey(t *testing.T) {
	data, err := json.Marshal(map[Vector3]int{New(1, 2, 3): 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"(1,2,3)":1}`, string(data))
}

func TestJSONDuplicateComponent(t *testing.T) {
	var v Vector3
	for i := 0; i < 50; i++ {
		require.ErrorIs(t, json.Unmarshal([]byte(`{"x":1,"r":2,"y":0,"z":0}`), &v), ErrDuplicateComponent)
	}
	require.ErrorIs(t, json.Unmarshal([]byte(`{"y":1,"Y":2}`), &v), ErrDuplicateComponent)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"g":1,"g":2}`), &v), ErrDuplicateComponent)
}

func TestYAMLDuplicateComponent(t *testing.T) {
	var v Vector3
	require.ErrorIs(t, yaml.Unmarshal([]byte(`{x: 1, r: 2}`), &v), ErrDuplicateComponent)
	require.ErrorIs(t, yaml.Unmarshal([]byte(`{b: 1, Z: 2}`), &v), ErrDuplicateComponent)
}

func TestYAMLKeepsNegativeZero(t *testing.T) {
	in := New(math.Copysign(0, -1), 1, 2)
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "[-0.0, 1, 2]\n", string(data))

	var out Vector3
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.True(t, math.Signbit(out[0]))
	require.Equal(t, in, out)
}

func TestScalarJSON(t *testing.T) {
	for _, f := range []float64{0.5, -3, math.NaN(), math.Inf(1), math.Inf(-1)} {
		data, err := json.Marshal(Scalar(f))
		require.NoError(t, err)

		var got Scalar
		require.NoError(t, json.Unmarshal(data, &got))
		if math.IsNaN(f) {
			require.Equal(t, `"NaN"`, string(data))
			require.True(t, math.IsNaN(float64(got)))
			continue
		}
		require.Equal(t, f, float64(got))
	}

	data, err := json.Marshal(Scalar(math.Inf(-1)))
	require.NoError(t, err)
	require.Equal(t, `"-Inf"`, string(data))

	var s Scalar
	require.ErrorIs(t, json.Unmarshal([]byte(`"fast"`), &s), ErrInvalidComponent)
}

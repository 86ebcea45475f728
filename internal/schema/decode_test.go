package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

type pair struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func pairSchema() *schema.Schema {
	return schema.Obj(map[string]*schema.Schema{
		"a": schema.Str("first"),
		"b": schema.Int("second"),
	}, "a", "b")
}

func TestDecode_Valid(t *testing.T) {
	var out pair
	vs, err := schema.Decode([]byte(`{"a":"x","b":2}`), pairSchema(), &out, true)
	require.NoError(t, err)
	require.Empty(t, vs)
	require.Equal(t, pair{A: "x", B: 2}, out)
}

func TestDecode_MissingRequiredStillParses(t *testing.T) {
	var out pair
	vs, err := schema.Decode([]byte(`{"a":"x"}`), pairSchema(), &out, false)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Equal(t, "$.b", vs[0].Path)
	require.True(t, vs[0].Missing)
	require.Equal(t, "x", out.A)
	require.Zero(t, out.B)
}

func TestDecode_MissingRequiredStrict(t *testing.T) {
	var out pair
	_, err := schema.Decode([]byte(`{"a":"x"}`), pairSchema(), &out, true)
	var decErr *schema.DecodeError
	require.True(t, errors.As(err, &decErr))
	require.Contains(t, decErr.Error(), "$.b: missing required field")
}

func TestDecode_TypeMismatchFails(t *testing.T) {
	var out pair
	_, err := schema.Decode([]byte(`{"a":"x","b":"two"}`), pairSchema(), &out, false)
	var decErr *schema.DecodeError
	require.True(t, errors.As(err, &decErr))
	require.Contains(t, decErr.Error(), "expected INTEGER, got string")

	_, err = schema.Decode([]byte(`{"a":"x","b":2.5}`), pairSchema(), &out, false)
	require.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	var out pair
	_, err := schema.Decode([]byte("this is not json at all"), pairSchema(), &out, false)
	require.ErrorIs(t, err, schema.ErrMalformed)
}

func TestDecode_StripsFences(t *testing.T) {
	var out pair
	_, err := schema.Decode([]byte("```json\n{\"a\":\"x\",\"b\":1}\n```"), pairSchema(), &out, true)
	require.NoError(t, err)
	require.Equal(t, 1, out.B)
}

func TestCheck_NestedArrays(t *testing.T) {
	s := schema.Obj(map[string]*schema.Schema{
		"items": schema.Arr(schema.Obj(map[string]*schema.Schema{"n": schema.Num("")}, "n"), ""),
	}, "items")

	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{"items":[{"n":1},{"n":"x"},{}]}`), &doc))

	vs := schema.Check(doc, s)
	require.Len(t, vs, 2)
	paths := []string{vs[0].Path, vs[1].Path}
	require.ElementsMatch(t, []string{"$.items[1].n", "$.items[2].n"}, paths)
}

func TestSchema_JSONUsesProviderDialect(t *testing.T) {
	js := pairSchema().JSON()
	require.Contains(t, js, `"type": "OBJECT"`)
	require.Contains(t, js, `"required": [`)
}

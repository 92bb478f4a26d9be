package crypto

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{name: "nil", in: nil, want: Null()},
		{name: "string", in: "INFY", want: String("INFY")},
		{name: "bool", in: true, want: Bool(true)},
		{name: "int", in: 12, want: Int(12)},
		{name: "uint64", in: uint64(math.MaxUint64), want: Number("18446744073709551615")},
		{name: "float64", in: 1520.5, want: Number("1520.5")},
		{name: "whole float64", in: float64(3), want: Number("3")},
		{name: "json number", in: json.Number("1e3"), want: Number("1e3")},
		{name: "any slice", in: []any{"a", 1, nil}, want: Sequence(String("a"), Int(1), Null())},
		{name: "typed slice", in: []string{"x", "y"}, want: Sequence(String("x"), String("y"))},
		{name: "nil typed slice", in: []int(nil), want: Null()},
		{
			name: "nested map",
			in:   map[string]any{"city": "Pune", "pins": map[string]int{"home": 411001}},
			want: Mapping(map[string]Value{
				"city": String("Pune"),
				"pins": Mapping(map[string]Value{"home": Int(411001)}),
			}),
		},
		{name: "pointer", in: func() *string { s := "p"; return &s }(), want: String("p")},
		{name: "value passes through", in: Int(7), want: Int(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want.Any(), got.Any())
		})
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		wantMsg string
	}{
		{name: "NaN", in: math.NaN()},
		{name: "infinity", in: math.Inf(1)},
		{name: "channel", in: make(chan int)},
		{name: "int-keyed map", in: map[int]string{1: "a"}},
		{name: "nested NaN", in: map[string]any{"price": []any{1.0, math.NaN()}}, wantMsg: "price: [1]: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAny(tt.in)
			require.ErrorIs(t, err, ErrUnsupportedValue)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValue_JSON(t *testing.T) {
	raw := `{"name":"Asha","age":31,"score":12345678901234567890,"tags":["a","b"],"spouse":null,"active":true}`

	var v Value
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, KindMapping, v.Kind())
	assert.Equal(t, 6, v.Len())

	score, ok := v.Field("score")
	require.True(t, ok)
	n, ok := score.Num()
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901234567890"), n)

	spouse, ok := v.Field("spouse")
	require.True(t, ok)
	assert.True(t, spouse.IsNull())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestValue_UnmarshalRejectsTrailingData(t *testing.T) {
	_, err := parseJSON([]byte(`42}`))
	assert.Error(t, err)

	_, err = parseJSON([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)

	v, err := parseJSON([]byte(" 42 \n"))
	require.NoError(t, err)
	assert.True(t, Int(42).Equal(v))
}

func TestValue_Accessors(t *testing.T) {
	s := String("x")
	_, ok := s.Num()
	assert.False(t, ok)
	_, ok = s.Boolean()
	assert.False(t, ok)
	assert.Nil(t, s.Items())
	assert.Nil(t, s.Fields())
	assert.Equal(t, 0, s.Len())

	b, ok := Bool(true).Boolean()
	assert.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, KindNull, Value{}.Kind())
	assert.True(t, Value{}.IsNull())
}

func TestValue_ConstructorsCopyInput(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	seq := Sequence(items...)
	items[0] = Int(99)
	assert.True(t, Int(1).Equal(seq.Items()[0]))

	fields := map[string]Value{"a": Int(1)}
	m := Mapping(fields)
	fields["a"] = Int(99)
	fields["b"] = Int(2)
	assert.Equal(t, 1, m.Len())
	a, _ := m.Field("a")
	assert.True(t, Int(1).Equal(a))
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Null().Equal(Value{}))
	assert.False(t, Int(1).Equal(String("1")))
	assert.False(t, Number("1.0").Equal(Number("1")))
	assert.False(t, Sequence(Int(1)).Equal(Sequence(Int(1), Int(2))))
	assert.False(t, Mapping(map[string]Value{"a": Int(1)}).Equal(Mapping(map[string]Value{"b": Int(1)})))
	assert.False(t, Sequence().Equal(Mapping(nil)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name   string
		in     Value
		want   string
		wantOK bool
	}{
		{name: "string", in: String("Pune"), want: "Pune", wantOK: true},
		{name: "number keeps its text", in: Number("0411001"), want: "0411001", wantOK: true},
		{name: "bool", in: Bool(false), want: "false", wantOK: true},
		{name: "null", in: Null(), wantOK: false},
		{name: "mapping", in: Mapping(nil), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Text()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_TextRecoversCoercedString(t *testing.T) {
	c := newTestCipher(t)

	encrypted, err := c.EncryptValue(String("9876543210"))
	require.NoError(t, err)

	got, err := c.DecryptValue(encrypted)
	require.NoError(t, err)
	assert.Equal(t, KindScalar, got.Kind())

	text, ok := got.Text()
	require.True(t, ok)
	assert.Equal(t, "9876543210", text)
}

package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newForTest(t *testing.T, maxLevel int) (*Emitter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	levels := make([]Level, maxLevel)
	return New(NewBuffer(&buf), levels), &buf
}

// TestEmitScenarioD reproduces spec.md §8 scenario D exactly.
func TestEmitScenarioD(t *testing.T) {
	e, buf := newForTest(t, 8)
	e.ObjectOpen()
	e.KeyInteger("a", 111)
	e.KeyArrayOpen("b")
	e.Number(22.2)
	e.Integer(0)
	e.Number(3.0)
	e.ArrayClose()
	e.KeyObjectOpen("c")
	e.ObjectClose()
	e.ObjectClose()

	require.Equal(t, `{"a":111,"b":[22.2,0,3],"c":{}}`, buf.String())
}

func TestEmitEmptyObjectAndArray(t *testing.T) {
	e, buf := newForTest(t, 4)
	e.ObjectOpen()
	e.ObjectClose()
	require.Equal(t, `{}`, buf.String())

	e2, buf2 := newForTest(t, 4)
	e2.ArrayOpen()
	e2.ArrayClose()
	require.Equal(t, `[]`, buf2.String())
}

func TestEmitTopLevelScalar(t *testing.T) {
	cases := []struct {
		name string
		run  func(e *Emitter)
		want string
	}{
		{"string", func(e *Emitter) { e.String("hi") }, `"hi"`},
		{"integer", func(e *Emitter) { e.Integer(-42) }, `-42`},
		{"number", func(e *Emitter) { e.Number(1.5) }, `1.5`},
		{"true", func(e *Emitter) { e.True() }, `true`},
		{"false", func(e *Emitter) { e.False() }, `false`},
		{"null", func(e *Emitter) { e.Null() }, `null`},
		{"bool true", func(e *Emitter) { e.Bool(true) }, `true`},
		{"bool false", func(e *Emitter) { e.Bool(false) }, `false`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, buf := newForTest(t, 4)
			c.run(e)
			require.Equal(t, c.want, buf.String())
		})
	}
}

func TestEmitArraySeparators(t *testing.T) {
	e, buf := newForTest(t, 4)
	e.ArrayOpen()
	e.Integer(1)
	e.Integer(2)
	e.Integer(3)
	e.ArrayClose()
	require.Equal(t, `[1,2,3]`, buf.String())
}

func TestEmitStringEscaping(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"quote", "a\"b", "\"a\\\"b\""},
		{"backslash", "a\\b", "\"a\\\\b\""},
		{"newline", "a\nb", "\"a\\u000ab\""},
		{"tab", "a\tb", "\"a\\u0009b\""},
		{"del", "a\x7fb", "\"a\\u007fb\""},
		{"plain", "hello", "\"hello\""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, buf := newForTest(t, 2)
			e.String(c.input)
			require.Equal(t, c.want, buf.String())
		})
	}
}

func TestEmitBytesMatchesString(t *testing.T) {
	e, buf := newForTest(t, 2)
	e.Bytes([]byte("a\"b"))
	require.Equal(t, "\"a\\\"b\"", buf.String())
}

func TestEmitNumberIntegerPromotion(t *testing.T) {
	cases := []struct {
		d    float64
		want string
	}{
		{0, "0"},
		{3.0, "3"},
		{-7.0, "-7"},
		{22.2, "22.2"},
		{0.5, "0.5"},
	}
	for _, c := range cases {
		e, buf := newForTest(t, 2)
		e.Number(c.d)
		require.Equal(t, c.want, buf.String())
	}
}

func TestEmitNestedContainers(t *testing.T) {
	e, buf := newForTest(t, 8)
	e.ArrayOpen()
	e.ObjectOpen()
	e.KeyString("k", "v")
	e.ObjectClose()
	e.ArrayOpen()
	e.ArrayClose()
	e.ArrayClose()
	require.Equal(t, `[{"k":"v"},[]]`, buf.String())
}

func TestEmitCurrLevelAndItemCount(t *testing.T) {
	e, _ := newForTest(t, 8)
	require.Equal(t, 0, e.CurrLevel())
	e.ObjectOpen()
	require.Equal(t, 1, e.CurrLevel())
	e.KeyInteger("a", 1)
	require.Equal(t, 2, e.ItemCount())
	e.ObjectClose()
	require.Equal(t, 0, e.CurrLevel())
	require.Equal(t, 1, e.ItemCount())
}

func TestEmitOverflowStopsTrackingWithoutPanicking(t *testing.T) {
	// max_level is 2: the outer array gets a level, but the inner one
	// does not, so everything emitted inside the inner array is
	// mistakenly attributed to the outer array's item count. This is
	// the documented overflow trade-off (spec.md §4.3, §7): brackets
	// are still emitted and nothing panics or aborts, but separator
	// placement is no longer guaranteed correct once max_level is
	// exceeded.
	e, buf := newForTest(t, 2)
	e.ArrayOpen()
	e.ArrayOpen()
	e.Integer(1)
	e.ArrayClose()
	e.ArrayClose()
	require.Equal(t, `[[,1]]`, buf.String())
}

func TestEmitReset(t *testing.T) {
	e, buf := newForTest(t, 4)
	e.ArrayOpen()
	e.Integer(1)
	e.Reset()
	require.Equal(t, 0, e.CurrLevel())
	require.Equal(t, 0, e.ItemCount())

	buf.Reset()
	e.Integer(9)
	require.Equal(t, `9`, buf.String())
}

package inputprompt

import (
	"errors"
	"net/netip"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int
		wantErr  string
	}{
		{input: "42", expected: 42},
		{input: "-7", expected: -7},
		{input: "+3", expected: 3},
		{input: "0", expected: 0},
		{input: "12x", wantErr: `"12x" is not a valid integer`},
		{input: "1.5", wantErr: `"1.5" is not a valid integer`},
		{input: " 1", wantErr: `" 1" is not a valid integer`},
		{input: "99999999999999999999", wantErr: `"99999999999999999999" is not a valid integer`},
	}

	conv := Int()
	assert.False(t, conv.Nullable())

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := conv.Convert(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				var convErr *ConversionError
				require.ErrorAs(t, err, &convErr)
				assert.Equal(t, tt.input, convErr.Input)
				assert.Equal(t, "integer", convErr.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSizedIntegerOverflow(t *testing.T) {
	t.Parallel()

	i8 := signed[int8]("small integer")
	v, err := i8.Convert("127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), v)

	_, err = i8.Convert("128")
	assert.ErrorIs(t, err, strconv.ErrRange)

	u8 := unsigned[uint8]("byte")
	_, err = u8.Convert("256")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = Uint().Convert("-1")
	assert.EqualError(t, err, `"-1" is not a valid non-negative integer`)
}

func TestConverterFormat(t *testing.T) {
	t.Parallel()

	assertFormat := func(t *testing.T, text string, ok bool, expectedText string, expectedOK bool) {
		t.Helper()
		assert.Equal(t, expectedText, text)
		assert.Equal(t, expectedOK, ok)
	}

	text, ok := Int().Format(-3)
	assertFormat(t, text, ok, "-3", true)

	text, ok = Int().Format(0)
	assertFormat(t, text, ok, "0", true)

	text, ok = Uint().Format(7)
	assertFormat(t, text, ok, "7", true)

	text, ok = Float().Format(2.5)
	assertFormat(t, text, ok, "2.5", true)

	text, ok = Bool().Format(false)
	assertFormat(t, text, ok, "false", true)

	text, ok = Duration().Format(90 * time.Second)
	assertFormat(t, text, ok, "1m30s", true)

	text, ok = String().Format("")
	assertFormat(t, text, ok, "", false)

	text, ok = String().Format("hi")
	assertFormat(t, text, ok, "hi", true)
}

func TestScalarConverters(t *testing.T) {
	t.Parallel()

	f, err := Float().Convert("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f)
	_, err = Float().Convert("abc")
	assert.EqualError(t, err, `"abc" is not a valid number`)

	b, err := Bool().Convert("t")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = Bool().Convert("yes")
	assert.EqualError(t, err, `"yes" is not a valid boolean`)

	d, err := Duration().Convert("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)
	_, err = Duration().Convert("soon")
	assert.EqualError(t, err, `"soon" is not a valid duration`)

	s, err := String().Convert("  spaced  ")
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", s, "text is kept verbatim")
	assert.True(t, String().Nullable())
}

func TestPointerConverter(t *testing.T) {
	t.Parallel()

	conv := Pointer(Int())
	assert.True(t, conv.Nullable())

	p, err := conv.Convert("5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)

	_, err = conv.Convert("x")
	var convErr *ConversionError
	assert.ErrorAs(t, err, &convErr)

	text, ok := conv.Format(nil)
	assert.False(t, ok)
	assert.Empty(t, text)

	text, ok = conv.Format(p)
	assert.True(t, ok)
	assert.Equal(t, "5", text)
}

func TestFuncConverter(t *testing.T) {
	t.Parallel()

	conv := Func(false,
		func(s string) (netip.Addr, error) {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				return netip.Addr{}, &ConversionError{Input: s, Type: "IP address", Err: err}
			}
			return addr, nil
		},
		func(a netip.Addr) (string, bool) { return a.String(), a.IsValid() },
	)

	addr, err := conv.Convert("192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.0.2.1"), addr)

	_, err = conv.Convert("nope")
	assert.EqualError(t, err, `"nope" is not a valid IP address`)
	assert.NotNil(t, errors.Unwrap(err))

	_, ok := conv.Format(netip.Addr{})
	assert.False(t, ok)
}

func TestPromptWithCustomConverter(t *testing.T) {
	t.Parallel()

	conv := Func(false,
		func(s string) (netip.Addr, error) { return netip.ParseAddr(s) },
		func(a netip.Addr) (string, bool) { return a.String(), a.IsValid() },
	)
	p, _ := newForTesting(t, Options[netip.Addr]{
		Message:                    "Bind address",
		Converter:                  conv,
		Default:                    Some(netip.MustParseAddr("127.0.0.1")),
		DefaultValueMustBeSelected: true,
	}, "\t\r")

	result, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("127.0.0.1"), result)
}

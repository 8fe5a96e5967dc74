package treekv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEncode_Scalar(t *testing.T) {
	assert.Equal(t, "foo", StringKey("foo").Encode())
	assert.Equal(t, "42", IntKey(42).Encode())
	assert.Equal(t, "-7", IntKey(-7).Encode())
}

func TestKeyEncode_Absent(t *testing.T) {
	assert.Equal(t, "", RootKey().Encode())
	assert.Equal(t, "", Key{}.Encode(), "zero value should address the root")

	k, err := NewKey(nil)
	require.NoError(t, err)
	assert.Equal(t, "", k.Encode())
}

func TestKeyEncode_SlashInScalar(t *testing.T) {
	// A slash inside a scalar separates sub-segments; the scalar and the
	// equivalent path encode identically.
	assert.Equal(t, "foo/bar", StringKey("foo/bar").Encode())
	assert.Equal(t, "foo/bar", PathKey("foo", "bar").Encode())
}

func TestPathKey_HeterogeneousParts(t *testing.T) {
	assert.Equal(t, "users/42/name", PathKey("users", 42, "name").Encode())
	assert.Equal(t, "a/b", PathKey(StringKey("a"), StringKey("b")).Encode())
	assert.Panics(t, func() { PathKey("ok", 3.14) })
}

func TestKeyEncode_SlashInPathSegment(t *testing.T) {
	// A path segment containing a slash still splits into sub-segments.
	k := PathKey(StringKey("foo/bar"), StringKey("baz"))
	assert.Equal(t, "foo/bar/baz", k.Encode())
}

func TestKeyEncode_SpecialCharacters(t *testing.T) {
	assert.Equal(t, "a%20b", StringKey("a b").Encode(), "spaces use %20, not +")
	assert.Equal(t, "a%3Db%26c", StringKey("a=b&c").Encode())
}

func TestKeyEncode_Unicode(t *testing.T) {
	// Each segment percent-escapes its UTF-8 bytes; the separating slash
	// stays literal.
	assert.Equal(t, "%E2%88%B4/%E2%88%8E", StringKey("∴/∎").Encode())
}

func TestKeyEncode_AbsolutePath(t *testing.T) {
	assert.Equal(t, "/foo/bar", StringKey("/foo/bar").Encode())
}

func TestNewKey_Heterogeneous(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "foo", "foo"},
		{"int", 42, "42"},
		{"int64", int64(-3), "-3"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"string slice", []string{"foo", "bar"}, "foo/bar"},
		{"mixed slice", []any{"users", 42, "name"}, "users/42/name"},
		{"nested slice", []any{"a", []any{"b", "c"}}, "a/b/c"},
		{"key passthrough", StringKey("x"), "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k.Encode())
		})
	}
}

func TestNewKey_InvalidType(t *testing.T) {
	_, err := NewKey(3.14)
	assert.ErrorIs(t, err, ErrInvalidKeyType)

	_, err = NewKey(map[string]string{})
	assert.ErrorIs(t, err, ErrInvalidKeyType)

	_, err = NewKey([]any{"ok", struct{}{}})
	assert.ErrorIs(t, err, ErrInvalidKeyType, "invalid element inside a sequence")
}

func TestMustKey_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustKey(3.14) })
	assert.NotPanics(t, func() { MustKey("ok") })
}

func TestKeysPath(t *testing.T) {
	assert.Equal(t, "/v2/keys/foo", keysPath("foo"))
	assert.Equal(t, "/v2/keys/foo/bar", keysPath("foo/bar"))
	assert.Equal(t, "/v2/keys/foo", keysPath("/foo"), "absolute keys get exactly one slash")
	assert.Equal(t, "/v2/keys/", keysPath(""), "the absent key targets the root")
}

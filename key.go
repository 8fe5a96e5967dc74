package treekv

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type keyKind uint8

const (
	keyAbsent keyKind = iota
	keyScalar
	keyPath
)

// Key is the logical identifier of a store entry. The zero value addresses
// the key-space root. A Key is either absent, a scalar, or an ordered path
// of sub-keys; all representations resolve to a canonical slash-separated,
// percent-escaped path string when a request is built.
//
// Slashes inside a scalar are treated as sub-segment separators, so
// StringKey("foo/bar") and PathKey("foo", "bar") address the same node.
type Key struct {
	kind keyKind
	text string
	segs []Key
}

// RootKey returns the key addressing the key-space root.
func RootKey() Key {
	return Key{}
}

// StringKey returns a scalar key for the given text.
func StringKey(s string) Key {
	return Key{kind: keyScalar, text: s}
}

// IntKey returns a scalar key for the decimal form of n.
func IntKey(n int64) Key {
	return Key{kind: keyScalar, text: strconv.FormatInt(n, 10)}
}

// PathKey returns a key composed of the given parts, joined with "/" when
// encoded. Parts are encoded independently and may be any representation
// NewKey accepts; an unsupported part panics, so PathKey is meant for
// keys assembled from known pieces. Use NewKey for untrusted input.
func PathKey(parts ...any) Key {
	segs := make([]Key, len(parts))
	for i, p := range parts {
		segs[i] = MustKey(p)
	}
	return Key{kind: keyPath, segs: segs}
}

// NewKey resolves a heterogeneous key representation into a Key. Accepted
// inputs are nil (root), Key, string, any integer kind, fmt.Stringer, and
// slices of the above. Anything else fails with ErrInvalidKeyType.
func NewKey(v any) (Key, error) {
	switch k := v.(type) {
	case nil:
		return Key{}, nil
	case Key:
		return k, nil
	case string:
		return StringKey(k), nil
	case int:
		return IntKey(int64(k)), nil
	case int8:
		return IntKey(int64(k)), nil
	case int16:
		return IntKey(int64(k)), nil
	case int32:
		return IntKey(int64(k)), nil
	case int64:
		return IntKey(k), nil
	case uint:
		return StringKey(strconv.FormatUint(uint64(k), 10)), nil
	case uint8:
		return StringKey(strconv.FormatUint(uint64(k), 10)), nil
	case uint16:
		return StringKey(strconv.FormatUint(uint64(k), 10)), nil
	case uint32:
		return StringKey(strconv.FormatUint(uint64(k), 10)), nil
	case uint64:
		return StringKey(strconv.FormatUint(k, 10)), nil
	case fmt.Stringer:
		return StringKey(k.String()), nil
	case []string:
		segs := make([]Key, len(k))
		for i, s := range k {
			segs[i] = StringKey(s)
		}
		return Key{kind: keyPath, segs: segs}, nil
	case []any:
		segs := make([]Key, len(k))
		for i, part := range k {
			seg, err := NewKey(part)
			if err != nil {
				return Key{}, err
			}
			segs[i] = seg
		}
		return Key{kind: keyPath, segs: segs}, nil
	default:
		return Key{}, fmt.Errorf("%w: %T", ErrInvalidKeyType, v)
	}
}

// MustKey is like NewKey but panics on an unsupported representation.
// It simplifies construction of static keys.
func MustKey(v any) Key {
	k, err := NewKey(v)
	if err != nil {
		panic(err)
	}
	return k
}

// Encode renders the key as its canonical path string. The absent key
// encodes to the empty string.
func (k Key) Encode() string {
	switch k.kind {
	case keyScalar:
		return encodeSegment(k.text)
	case keyPath:
		parts := make([]string, len(k.segs))
		for i, seg := range k.segs {
			parts[i] = seg.Encode()
		}
		return strings.Join(parts, "/")
	default:
		return ""
	}
}

// encodeSegment escapes a scalar. A slash splits the scalar into
// sub-segments which are escaped independently, so the slash itself is
// never escaped to a literal %2F.
func encodeSegment(s string) string {
	if !strings.Contains(s, "/") {
		return escapePiece(s)
	}
	pieces := strings.Split(s, "/")
	for i, p := range pieces {
		pieces[i] = escapePiece(p)
	}
	return strings.Join(pieces, "/")
}

// escapePiece percent-encodes a single path piece. QueryEscape covers all
// special characters including = and &; '+' is then rewritten to %20 since
// '+' only denotes a space in query strings, not paths.
func escapePiece(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// keysPath prefixes an encoded key with the key-space mount point,
// guaranteeing exactly one separating slash whether the encoded key is
// absolute or relative.
func keysPath(encoded string) string {
	if strings.HasPrefix(encoded, "/") {
		return "/v2/keys" + encoded
	}
	return "/v2/keys/" + encoded
}

package treekv

import (
	"net/url"
	"strconv"
	"time"
)

// Bool returns a pointer to v, for use in option fields such as
// SetOptions.PrevExist.
func Bool(v bool) *bool {
	return &v
}

// GetOptions controls read operations. All fields are optional.
type GetOptions struct {
	// Recursive fetches the full subtree of a directory instead of only
	// its immediate children.
	Recursive bool

	// Sorted asks the store to return directory children in key order.
	Sorted bool

	// Consistent forces the read through the leader instead of serving
	// it from possibly-stale local state.
	Consistent bool

	// Wait long-polls until the key changes. WaitIndex, when set,
	// resumes waiting from a known store index.
	Wait      bool
	WaitIndex uint64

	// Timeout overrides the configured per-request timeout.
	Timeout time.Duration
}

func (o *GetOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Recursive {
		v.Set("recursive", "true")
	}
	if o.Sorted {
		v.Set("sorted", "true")
	}
	if o.Consistent {
		v.Set("consistent", "true")
	}
	if o.Wait {
		v.Set("wait", "true")
		if o.WaitIndex > 0 {
			v.Set("waitIndex", strconv.FormatUint(o.WaitIndex, 10))
		}
	}
	return v
}

func (o *GetOptions) timeout() time.Duration {
	if o == nil {
		return 0
	}
	return o.Timeout
}

// SetOptions controls write operations. The Prev* fields turn a plain Set
// into a conditional write with the same semantics as the CompareAndSwap
// entry points.
type SetOptions struct {
	// TTL sets the entry's time-to-live. Sub-second precision is
	// truncated; the wire carries whole seconds.
	TTL time.Duration

	// PrevValue constrains the write to succeed only if the current
	// value equals it.
	PrevValue string

	// PrevIndex constrains the write to succeed only if the current
	// ModifiedIndex equals it.
	PrevIndex uint64

	// PrevExist constrains the write on the key's existence: false
	// demands a create, true demands an update.
	PrevExist *bool

	// Timeout overrides the configured per-request timeout.
	Timeout time.Duration
}

func (o *SetOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.TTL > 0 {
		v.Set("ttl", strconv.FormatInt(int64(o.TTL/time.Second), 10))
	}
	if o.PrevValue != "" {
		v.Set("prevValue", o.PrevValue)
	}
	if o.PrevIndex > 0 {
		v.Set("prevIndex", strconv.FormatUint(o.PrevIndex, 10))
	}
	if o.PrevExist != nil {
		v.Set("prevExist", strconv.FormatBool(*o.PrevExist))
	}
	return v
}

func (o *SetOptions) timeout() time.Duration {
	if o == nil {
		return 0
	}
	return o.Timeout
}

// CreateOptions controls create-with-generated-name operations.
type CreateOptions struct {
	// TTL sets the entry's time-to-live.
	TTL time.Duration

	// Timeout overrides the configured per-request timeout.
	Timeout time.Duration
}

func (o *CreateOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.TTL > 0 {
		v.Set("ttl", strconv.FormatInt(int64(o.TTL/time.Second), 10))
	}
	return v
}

func (o *CreateOptions) timeout() time.Duration {
	if o == nil {
		return 0
	}
	return o.Timeout
}

// DeleteOptions controls delete operations.
type DeleteOptions struct {
	// Recursive deletes a directory and everything under it.
	Recursive bool

	// Dir deletes an empty directory.
	Dir bool

	// Timeout overrides the configured per-request timeout.
	Timeout time.Duration
}

func (o *DeleteOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Recursive {
		v.Set("recursive", "true")
	}
	if o.Dir {
		v.Set("dir", "true")
	}
	return v
}

func (o *DeleteOptions) timeout() time.Duration {
	if o == nil {
		return 0
	}
	return o.Timeout
}

// CASOptions carries the optional extra constraints of the CompareAndSwap
// entry points.
type CASOptions struct {
	// PrevValue adds a prior-value constraint to CompareAndSwapIndex.
	PrevValue string

	// PrevIndex adds a prior-index constraint to CompareAndSwap.
	PrevIndex uint64

	// PrevExist adds an existence constraint.
	PrevExist *bool

	// TTL sets the entry's time-to-live.
	TTL time.Duration

	// Timeout overrides the configured per-request timeout.
	Timeout time.Duration
}

func (o *CASOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.PrevValue != "" {
		v.Set("prevValue", o.PrevValue)
	}
	if o.PrevIndex > 0 {
		v.Set("prevIndex", strconv.FormatUint(o.PrevIndex, 10))
	}
	if o.PrevExist != nil {
		v.Set("prevExist", strconv.FormatBool(*o.PrevExist))
	}
	if o.TTL > 0 {
		v.Set("ttl", strconv.FormatInt(int64(o.TTL/time.Second), 10))
	}
	return v
}

func (o *CASOptions) timeout() time.Duration {
	if o == nil {
		return 0
	}
	return o.Timeout
}

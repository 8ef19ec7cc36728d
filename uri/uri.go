/*
Copyright 2026 Uriel Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package uri decomposes URI strings into their syntactic components and
// recomposes components into canonical string form.
//
// The package is built around a single type:
//   - URI: a mutable store of seven optional components (scheme, userinfo,
//     host, port, path, query, fragment) plus a cached copy of the canonical
//     string last built from them.
//
// Key properties:
//   - Permissive parsing. Only the scheme delimiter ":" is required; after
//     it, any byte sequence is accepted and stored as-is. This is a
//     splitter, not a validator; see Parse for the exact scan rules.
//   - Cheap piecewise mutation. Components can be set and removed without
//     re-parsing, which makes producing sequential URIs (varying one
//     component at a time) inexpensive.
//   - Pull-based canonical form. The canonical string is rebuilt by Parse
//     and by String, never by Set or Remove. WriteTo emits the last-built
//     form even when it is stale relative to later mutations.
//
// Stored values carry no delimiters: the query is held without its leading
// "?", the fragment without its leading "#", the scheme without its trailing
// ":". Building re-inserts every separator, so a parsed URI round-trips to
// its input for conventional forms.
//
// A URI value is not safe for concurrent use.
package uri

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Component identifies one of the seven syntactic URI components held by a
// URI store. The cached canonical string is not addressable as a Component;
// it is reachable only through String and WriteTo.
type Component int

// The seven components, in canonical build order.
const (
	Scheme Component = iota
	UserInfo
	Host
	Port
	Path
	Query
	Fragment

	numComponents // sentinel, keep last
)

// componentNames holds the wire/display name of each component.
var componentNames = [numComponents]string{
	Scheme:   "scheme",
	UserInfo: "userinfo",
	Host:     "host",
	Port:     "port",
	Path:     "path",
	Query:    "query",
	Fragment: "fragment",
}

// String returns the lowercase name of the component, e.g. "scheme".
func (c Component) String() string {
	if c < 0 || c >= numComponents {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c]
}

// ParseComponent resolves a component name such as "host" or "Query" to its
// Component value. Matching is case-insensitive.
func ParseComponent(name string) (Component, error) {
	lowered := strings.ToLower(name)
	for c, n := range componentNames {
		if n == lowered {
			return Component(c), nil
		}
	}
	return 0, fmt.Errorf("unknown URI component %q", name)
}

// Components returns the component kinds in canonical build order. The slice
// is freshly allocated on each call and may be modified by the caller.
func Components() []Component {
	all := make([]Component, numComponents)
	for i := range all {
		all[i] = Component(i)
	}
	return all
}

// slot is one optional component value. The present flag distinguishes an
// empty component, which still emits its separators when built, from an
// absent one, which emits nothing.
type slot struct {
	value   string
	present bool
}

// URI holds one URI's decomposed state: seven independently optional
// components plus the canonical string last built from them. Values passed
// in and handed out are plain immutable Go strings, so no ownership or
// aliasing discipline is required of callers.
//
// The zero value is an empty store with every component absent and nothing
// built. A URI must not be mutated concurrently.
type URI struct {
	slots [numComponents]slot

	// built is the canonical form as of the last rebuild. Set and Remove
	// deliberately leave it untouched; see WriteTo.
	built    string
	hasBuilt bool
}

// New returns an empty store with every component absent.
func New() *URI {
	return &URI{}
}

// Set stores value in component c, replacing any prior value. Any string is
// accepted, including the empty string; Set performs no validation. The
// cached canonical form is not rebuilt; call String to refresh it. Setting
// an out-of-range component is a no-op.
//
// To clear a component, use Remove; there is no absent marker value.
func (u *URI) Set(c Component, value string) {
	if c < 0 || c >= numComponents {
		return
	}
	u.slots[c] = slot{value: value, present: true}
}

// Get returns the current value of component c and whether it is present.
// An absent component reports ("", false); a present-but-empty component
// reports ("", true). Get has no side effects.
func (u *URI) Get(c Component) (string, bool) {
	if c < 0 || c >= numComponents {
		return "", false
	}
	s := u.slots[c]
	return s.value, s.present
}

// Remove clears component c and returns the value it held, with a presence
// flag mirroring Get. Removing an absent or out-of-range component reports
// ("", false) and changes nothing. The cached canonical form is not rebuilt.
func (u *URI) Remove(c Component) (string, bool) {
	if c < 0 || c >= numComponents {
		return "", false
	}
	s := u.slots[c]
	u.slots[c] = slot{}
	return s.value, s.present
}

// String rebuilds the canonical form from the current components, stores it
// as the new cached form, and returns it. It is the only read of the
// canonical string that always reflects current component state. See build
// for the concatenation rules.
func (u *URI) String() string {
	u.rebuild()
	return u.built
}

// WriteTo writes the last-built canonical form to w without rebuilding: the
// output reflects the most recent Parse or String call, not any Set or
// Remove since. A store that has never been built writes nothing and
// reports 0, nil. WriteTo implements io.WriterTo.
func (u *URI) WriteTo(w io.Writer) (int64, error) {
	if !u.hasBuilt {
		return 0, nil
	}
	n, err := io.WriteString(w, u.built)
	return int64(n), err
}

// Equal reports whether u and v hold the same components: the same set of
// present components with the same values. Cached canonical forms take no
// part in the comparison and are not disturbed. Stores that Equal build
// identical strings; the converse does not hold, since an absent component
// and an empty one can build alike.
func (u *URI) Equal(v *URI) bool {
	if u == nil || v == nil {
		return u == v
	}
	return u.slots == v.slots
}

// MarshalJSON implements json.Marshaler, encoding the URI as a JSON string
// of its canonical form. The cached form is refreshed as a side effect,
// exactly as if String had been called.
func (u *URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler. It decodes a JSON string and
// parses it, so a string without a scheme delimiter is rejected.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

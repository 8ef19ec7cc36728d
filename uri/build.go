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

package uri

import "strings"

// build returns the canonical form of the current components without
// touching the cache. The concatenation follows the recomposition shape of
// RFC 3986, Section 5.3, with each piece emitted only when its governing
// component is present:
//
//	scheme ":" [ "//" [ userinfo "@" ] host [ ":" port ] ] path [ "?" query ] [ "#" fragment ]
//
// Userinfo and port belong to the authority section and are dropped entirely
// when host is absent. A present-but-empty component still emits its
// separators, so an empty host yields "scheme://". When the scheme itself is
// absent the leading "scheme:" piece is omitted and the remaining rules
// still apply, so build is total over every store state.
//
// Known separator gap: when path is absent but query or fragment is present,
// no "/" is inserted between the authority and the "?" or "#", producing
// "scheme://host?query" rather than the conventional "scheme://host/?query".
// Callers that need the conventional form must set a path.
func (u *URI) build() string {
	var b strings.Builder
	if scheme, ok := u.Get(Scheme); ok {
		b.WriteString(scheme)
		b.WriteRune(':')
	}
	if host, ok := u.Get(Host); ok {
		b.WriteString("//")
		if userinfo, ok := u.Get(UserInfo); ok {
			b.WriteString(userinfo)
			b.WriteRune('@')
		}
		b.WriteString(host)
		if port, ok := u.Get(Port); ok {
			b.WriteRune(':')
			b.WriteString(port)
		}
	}
	if path, ok := u.Get(Path); ok {
		b.WriteString(path)
	}
	if query, ok := u.Get(Query); ok {
		b.WriteRune('?')
		b.WriteString(query)
	}
	if fragment, ok := u.Get(Fragment); ok {
		b.WriteRune('#')
		b.WriteString(fragment)
	}
	return b.String()
}

// rebuild refreshes the cached canonical form from the current components.
func (u *URI) rebuild() {
	u.built = u.build()
	u.hasBuilt = true
}

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

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ASCIIString renders the current components as an all-ASCII URI string: the
// host is converted with IDNA ToASCII so it stays resolvable in DNS, and
// every other component is normalized to NFC and has the UTF-8 bytes of its
// non-ASCII runes percent-encoded. ASCII bytes pass through untouched;
// reserved characters are not escaped, because this is a rendering of the
// stored components, not a validator.
//
// Separator rules are identical to String, including the authority nesting
// and the missing-path gap. ASCIIString never reads or writes the cached
// canonical form; an IDNA conversion failure is returned as-is and leaves
// the store unchanged.
func (u *URI) ASCIIString() (string, error) {
	var b strings.Builder
	if scheme, ok := u.Get(Scheme); ok {
		percentEncode(norm.NFC.String(scheme), &b)
		b.WriteRune(':')
	}
	if host, ok := u.Get(Host); ok {
		b.WriteString("//")
		if userinfo, ok := u.Get(UserInfo); ok {
			percentEncode(norm.NFC.String(userinfo), &b)
			b.WriteRune('@')
		}
		asciiHost, err := idna.ToASCII(norm.NFC.String(host))
		if err != nil {
			return "", err
		}
		b.WriteString(asciiHost)
		if port, ok := u.Get(Port); ok {
			b.WriteRune(':')
			b.WriteString(port)
		}
	}
	if path, ok := u.Get(Path); ok {
		percentEncode(norm.NFC.String(path), &b)
	}
	if query, ok := u.Get(Query); ok {
		b.WriteRune('?')
		percentEncode(norm.NFC.String(query), &b)
	}
	if fragment, ok := u.Get(Fragment); ok {
		b.WriteRune('#')
		percentEncode(norm.NFC.String(fragment), &b)
	}
	return b.String(), nil
}

// percentEncode writes s to b, percent-encoding the UTF-8 bytes of every
// non-ASCII rune and passing ASCII runes through unchanged.
func percentEncode(s string, b *strings.Builder) {
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "%%%02X", buf[i])
		}
	}
}

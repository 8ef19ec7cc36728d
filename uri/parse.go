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

// parser carries one parse in flight: the cursor over the raw input and the
// store being populated. Each parse method consumes one region of the input
// and stores at most one component. The structure recognized is purely
// delimiter-driven; apart from the scheme delimiter nothing is required and
// no characters are validated.
type parser struct {
	in  *scanner
	out *URI
}

// Parse scans raw once, left to right, and returns a store populated with
// the components found. The only rejected input is one containing no ":" at
// all (ErrNoScheme, wrapped in a *ParseError); every later delimiter is
// optional, and its absence means the component is absent, not that the
// input is malformed.
//
// The scan is deliberately permissive. The authority is terminated only by
// "@", ":" or "/", and the port only by "/", so "http://host?q" stores
// "host?q" as the host with no query at all, and re-renders identically.
// Empty components are stored as present: "http://" has an empty host, and
// ":" parses to an empty scheme with an empty path.
//
// On success the returned store's cached canonical form is freshly built, so
// WriteTo reflects the parse until the next direct mutation.
func Parse(raw string) (*URI, error) {
	p := &parser{in: newScanner(raw), out: New()}

	if err := p.parseScheme(); err != nil {
		return nil, newParseError(err)
	}
	if p.in.consume("//") {
		p.parseAuthority()
		if p.in.eof() {
			// Authority-only input: no path component at all, as opposed
			// to the present-but-empty path of path-only forms.
			p.out.rebuild()
			return p.out, nil
		}
	}
	p.parsePath()
	if p.in.consume("?") {
		p.parseQuery()
	}
	if p.in.consume("#") {
		p.parseFragment()
	}

	p.out.rebuild()
	return p.out, nil
}

// parseScheme consumes everything before the first ":" as the scheme, plus
// the ":" itself. A missing ":" is the single parse failure.
func (p *parser) parseScheme() error {
	scheme := p.in.takeUntil(":")
	if !p.in.consume(":") {
		return ErrNoScheme
	}
	p.out.Set(Scheme, scheme)
	return nil
}

// parseAuthority consumes the section after "//": an optional "userinfo@"
// prefix, the host, and an optional ":port". The first terminator wins: in
// "u:p@h" the ":" is reached before the "@", so there is no userinfo and
// "p@h" becomes the port. Host is stored even when empty.
func (p *parser) parseAuthority() {
	part := p.in.takeUntil("@:/")
	if p.in.consume("@") {
		p.out.Set(UserInfo, part)
		part = p.in.takeUntil(":/")
	}
	p.out.Set(Host, part)
	if p.in.consume(":") {
		p.out.Set(Port, p.in.takeUntil("/"))
	}
}

// parsePath stores everything up to the first "?" or "#" as the path, even
// when that span is empty. Parse reaches this state for every input except
// an authority form that ended at end-of-input, so "mailto:" stores a
// present, empty path.
func (p *parser) parsePath() {
	p.out.Set(Path, p.in.takeUntil("?#"))
}

// parseQuery stores everything up to "#" as the query. The "?" that
// introduced it is not part of the stored value; build re-inserts it.
func (p *parser) parseQuery() {
	p.out.Set(Query, p.in.takeUntil("#"))
}

// parseFragment stores the remainder of the input as the fragment. The "#"
// is not part of the stored value; build re-inserts it.
func (p *parser) parseFragment() {
	p.out.Set(Fragment, p.in.rest())
}

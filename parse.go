package urlview

// Main driver (component C6): the DFA states of spec.md §4.2.
type state uint8

const (
	stateStart state = iota
	stateScheme
	stateSchemeSlash
	stateSchemeSlashSlash
	stateServer
	stateServerWithAt
	statePath
	stateQuery
	stateFragment
)

// Parse consumes buf and, on success, returns a fully populated UrlView
// recording the byte offset/length of each recognized component within
// buf. On failure it returns a zero UrlView and a non-nil *ParseError;
// callers MUST NOT read the returned view in that case.
//
// When authorityOnly is set, buf is parsed in the "host[:port]" form used
// by HTTP CONNECT request targets: a port is required and no path, query
// or fragment may be present.
//
// Called without options, Parse allocates nothing on success; every
// failure allocates the returned *ParseError. It is safe to call
// concurrently from any number of goroutines against disjoint buffers.
func Parse(buf []byte, authorityOnly bool, opts ...Option) (UrlView, error) {
	o, redeem := applyOptions(opts)
	defer redeem(o)

	var v UrlView

	n := len(buf)
	if n == 0 {
		return UrlView{}, newParseError(ErrEmptyInputKind, 0, "input buffer is empty")
	}

	var (
		st         state
		i          int
		fieldStart int
		tag        FieldTag
		sawColon   bool
		portStart  int
		bracketDep int
	)

	if authorityOnly {
		if buf[0] == '/' || buf[0] == '?' || buf[0] == '#' {
			return UrlView{}, newParseError(ErrEmptyHostKind, 0, "empty host in authority-only input")
		}
		st = stateServer
		fieldStart = 0
		tag = FieldHost
		v.markPresent(FieldHost)
	} else {
		switch {
		case buf[0] == '/':
			if n >= 2 && buf[1] == '/' {
				if n == 2 || buf[2] == '/' || buf[2] == '?' || buf[2] == '#' {
					return UrlView{}, newParseError(ErrEmptyHostKind, 2, "empty host after \"//\"")
				}
				i = 2
				st = stateServer
				fieldStart = 2
				tag = FieldHost
				v.markPresent(FieldHost)
			} else {
				st = statePath
				fieldStart = 0
				tag = FieldPath
				v.markPresent(FieldPath)
				i = 0
			}
		case buf[0] == '*':
			st = statePath
			fieldStart = 0
			tag = FieldPath
			v.markPresent(FieldPath)
			i = 0
		case isAlphaByte(buf[0]):
			if schemeEnd, ok := matchSchemeFastPath(buf); ok {
				v.setField(FieldScheme, 0, schemeEnd-1)
				i = schemeEnd
				st = stateSchemeSlash
			} else {
				st = stateScheme
				fieldStart = 0
				tag = FieldScheme
				i = 0
			}
		default:
			return UrlView{}, newParseError(ErrBadStartKind, 0, "first byte is not a letter, \"/\" or \"*\"")
		}
	}

	for i < n {
		c := buf[i]

		switch st {
		case stateScheme:
			switch classOf(c) {
			case classAlpha, classDigit, classDot, classDash, classPlus:
				i++
			case classColon:
				v.setField(FieldScheme, fieldStart, i-fieldStart)
				i++
				st = stateSchemeSlash
			default:
				return UrlView{}, newParseError(ErrBadSchemeKind, i, "invalid character in scheme")
			}

		case stateSchemeSlash:
			if c != '/' {
				return UrlView{}, newParseError(ErrSchemeWithoutAuthorityKind, i, "scheme not followed by \"//\"")
			}
			i++
			st = stateSchemeSlashSlash

		case stateSchemeSlashSlash:
			if c != '/' {
				return UrlView{}, newParseError(ErrSchemeWithoutAuthorityKind, i, "scheme not followed by \"//\"")
			}
			i++
			st = stateServer
			fieldStart = i
			tag = FieldHost
			v.markPresent(FieldHost)
			sawColon, bracketDep = false, 0

			if i >= n || buf[i] == '/' || buf[i] == '?' || buf[i] == '#' {
				return UrlView{}, newParseError(ErrEmptyHostKind, i, "empty host after \"://\"")
			}

		case stateServer, stateServerWithAt:
			if err := stepServer(&v, buf, &st, &i, &fieldStart, &tag, &sawColon, &portStart, &bracketDep); err != nil {
				return UrlView{}, err
			}

		case statePath:
			j := i
			for j < n && buf[j] != '?' && buf[j] != '#' {
				if isInvalidClass(buf[j]) {
					return UrlView{}, newParseError(ErrBadPathCharKind, j, "invalid character in path")
				}
				j++
			}
			v.setField(FieldPath, fieldStart, j-fieldStart)
			i = j
			if i < n {
				if buf[i] == '?' {
					i++
					fieldStart = i
					tag = FieldQuery
					v.markPresent(FieldQuery)
					st = stateQuery
				} else { // '#'
					i++
					fieldStart = i
					tag = FieldFragment
					v.markPresent(FieldFragment)
					st = stateFragment
				}
			}

		case stateQuery:
			j := i
			for j < n && buf[j] != '#' {
				if isInvalidClass(buf[j]) {
					return UrlView{}, newParseError(ErrBadQueryCharKind, j, "invalid character in query")
				}
				j++
			}
			v.setField(FieldQuery, fieldStart, j-fieldStart)
			i = j
			if i < n { // '#'
				i++
				fieldStart = i
				tag = FieldFragment
				v.markPresent(FieldFragment)
				st = stateFragment
			}

		case stateFragment:
			j := i
			for j < n {
				if isInvalidClass(buf[j]) {
					return UrlView{}, newParseError(ErrBadFragmentCharKind, j, "invalid character in fragment")
				}
				j++
			}
			v.setField(FieldFragment, fieldStart, j-fieldStart)
			i = j
		}
	}

	// Final-field flush (spec.md §4.6 "Final-field flush").
	switch {
	case tag == FieldHost && (st == stateServer || st == stateServerWithAt):
		if err := finalizeHost(&v, buf, fieldStart, n, sawColon, portStart); err != nil {
			return UrlView{}, err
		}
	case tag == FieldPath || tag == FieldQuery || tag == FieldFragment:
		v.setField(tag, fieldStart, n-fieldStart)
	case tag == FieldScheme:
		// Already recorded at ':'; nothing further to flush.
	}

	if authorityOnly {
		if st != stateServer && st != stateServerWithAt {
			return UrlView{}, newParseError(ErrConnectWithNonAuthorityKind, n, "authority-only input carries a path, query or fragment")
		}
		if !v.Present(FieldPort) {
			return UrlView{}, newParseError(ErrConnectWithoutPortKind, n, "authority-only input has no port")
		}
	} else if v.Present(FieldScheme) && !v.Present(FieldHost) {
		return UrlView{}, newParseError(ErrSchemeWithoutAuthorityKind, n, "scheme present without a host")
	}

	if v.Present(FieldHost) {
		hostBytes, _ := v.Slice(buf, FieldHost)
		if err := validateHostPercentEncoding(hostBytes, o.strictIPv6Zone); err != nil {
			return UrlView{}, err
		}
	}

	return v, nil
}

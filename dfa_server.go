package urlview

// stepServer implements the shared transition contract of the `server`
// and `server_with_at` states (spec.md §4.6), including the USERINFO
// batch fast-scan and the IPv6-bracket batch scan. It advances *i past
// whatever it consumed before returning, except on "/", where *i is left
// on the slash so that the path field starts there.
func stepServer(v *UrlView, buf []byte, st *state, i *int, fieldStart *int, tag *FieldTag, sawColon *bool, portStart *int, bracketDep *int) error {
	n := len(buf)

	// Batch fast-scan: consume a run of USERINFO bytes that are none of
	// the authority delimiters, without changing state.
	if *bracketDep == 0 && isUserinfoScanByte(buf[*i]) {
		j := *i
		for j < n && isUserinfoScanByte(buf[j]) {
			j++
		}
		*i = j
	}

	if *i >= n {
		return nil
	}

	c := buf[*i]
	switch c {
	case '/':
		if err := finalizeHost(v, buf, *fieldStart, *i, *sawColon, *portStart); err != nil {
			return err
		}
		*fieldStart = *i
		*tag = FieldPath
		v.markPresent(FieldPath)
		*st = statePath
		return nil

	case '?':
		if err := finalizeHost(v, buf, *fieldStart, *i, *sawColon, *portStart); err != nil {
			return err
		}
		*i++
		*fieldStart = *i
		*tag = FieldQuery
		v.markPresent(FieldQuery)
		*st = stateQuery
		return nil

	case '@':
		if *st == stateServerWithAt {
			return newParseError(ErrDoubleAtKind, *i, "more than one \"@\" in authority")
		}
		if *tag == FieldHost {
			v.setField(FieldUserinfo, *fieldStart, *i-*fieldStart)
			v.clearPresent(FieldHost)
		}
		*i++
		*fieldStart = *i
		*tag = FieldHost
		v.markPresent(FieldHost)
		*st = stateServerWithAt
		*sawColon = false
		*portStart = 0
		*bracketDep = 0
		return nil

	case '[':
		closeIdx, err := scanIPv6Bracket(buf, *i+1)
		if err != nil {
			return err
		}
		*i = closeIdx + 1
		*bracketDep = 0
		return nil

	case ']':
		*bracketDep = 0
		*i++
		return nil

	case ':':
		if *bracketDep == 0 && !*sawColon {
			*sawColon = true
			*portStart = *i + 1
		}
		*i++
		return nil

	default:
		if !isUserinfoByte(c) {
			return newParseError(ErrBadHostCharKind, *i, "invalid character in host")
		}
		*i++
		return nil
	}
}

// isUserinfoScanByte reports whether b is eligible for the USERINFO
// batch-scan — a USERINFO-class byte that is not also one of the
// authority delimiters the scan must stop at.
func isUserinfoScanByte(b byte) bool {
	switch b {
	case '@', '[', ']', ':', '/', '?', '#':
		return false
	}
	return isUserinfoByte(b)
}

// scanIPv6Bracket scans forward from start (just past the opening '[')
// for the matching ']', validating intermediate bytes against
// HEX | ':' | '.' per spec.md §4.6, with a '%' introducing an
// unvalidated zone-id tail that runs until the ']'. Returns the index of
// the matching ']'.
func scanIPv6Bracket(buf []byte, start int) (int, error) {
	n := len(buf)
	i := start
	zone := false
	for i < n {
		b := buf[i]
		if b == ']' {
			return i, nil
		}
		if !zone {
			if b == '%' {
				zone = true
				i++
				continue
			}
			if isHexByte(b) || b == ':' || b == '.' {
				i++
				continue
			}
			return 0, newParseError(ErrBadIPv6CharKind, i, "invalid character inside IPv6 literal")
		}
		i++
	}
	return 0, newParseError(ErrUnclosedIPv6Kind, start-1, "\"[\" has no matching \"]\"")
}

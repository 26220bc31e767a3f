package urlview

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the specific way a Parse call failed, per spec.md
// §7's error taxonomy. Implementations are allowed to collapse all kinds
// into a single opaque failure for the caller's success/failure check
// (err == nil is always sufficient); Kind() exists for callers that want
// the richer taxonomy.
type ErrorKind uint8

const (
	ErrEmptyInputKind ErrorKind = iota
	ErrBadStartKind
	ErrBadSchemeKind
	ErrSchemeWithoutAuthorityKind
	ErrEmptyHostKind
	ErrDoubleAtKind
	ErrBadHostCharKind
	ErrUnclosedIPv6Kind
	ErrBadIPv6CharKind
	ErrBadPortKind
	ErrBadPercentEncodingKind
	ErrBadPathCharKind
	ErrBadQueryCharKind
	ErrBadFragmentCharKind
	ErrConnectWithNonAuthorityKind
	ErrConnectWithoutPortKind
)

// Sentinel errors, one per ErrorKind, following the wrap-with-detail
// idiom used throughout this module: a ParseError always wraps exactly
// one of these, so callers can test with errors.Is against the sentinel
// while Error() carries a human-readable, input-specific detail string.
var (
	ErrEmptyInput              = errors.New("urlview: empty input")
	ErrBadStart                = errors.New("urlview: input does not start with a scheme, \"/\" or \"*\"")
	ErrBadScheme               = errors.New("urlview: invalid character in scheme")
	ErrSchemeWithoutAuthority  = errors.New("urlview: scheme present without a following authority")
	ErrEmptyHost               = errors.New("urlview: empty host after \"://\"")
	ErrDoubleAt                = errors.New("urlview: more than one \"@\" in authority")
	ErrBadHostChar             = errors.New("urlview: invalid character in host")
	ErrUnclosedIPv6            = errors.New("urlview: unclosed IPv6 literal, missing \"]\"")
	ErrBadIPv6Char             = errors.New("urlview: invalid character inside IPv6 literal")
	ErrBadPort                 = errors.New("urlview: invalid port")
	ErrBadPercentEncoding      = errors.New("urlview: invalid percent-encoding in host")
	ErrBadPathChar             = errors.New("urlview: invalid character in path")
	ErrBadQueryChar            = errors.New("urlview: invalid character in query")
	ErrBadFragmentChar         = errors.New("urlview: invalid character in fragment")
	ErrConnectWithNonAuthority = errors.New("urlview: authority-only input carries path, query or fragment")
	ErrConnectWithoutPort      = errors.New("urlview: authority-only input is missing a port")
)

var sentinelByKind = [...]error{
	ErrEmptyInputKind:              ErrEmptyInput,
	ErrBadStartKind:                ErrBadStart,
	ErrBadSchemeKind:               ErrBadScheme,
	ErrSchemeWithoutAuthorityKind:  ErrSchemeWithoutAuthority,
	ErrEmptyHostKind:               ErrEmptyHost,
	ErrDoubleAtKind:                ErrDoubleAt,
	ErrBadHostCharKind:             ErrBadHostChar,
	ErrUnclosedIPv6Kind:            ErrUnclosedIPv6,
	ErrBadIPv6CharKind:             ErrBadIPv6Char,
	ErrBadPortKind:                 ErrBadPort,
	ErrBadPercentEncodingKind:      ErrBadPercentEncoding,
	ErrBadPathCharKind:             ErrBadPathChar,
	ErrBadQueryCharKind:            ErrBadQueryChar,
	ErrBadFragmentCharKind:         ErrBadFragmentChar,
	ErrConnectWithNonAuthorityKind: ErrConnectWithNonAuthority,
	ErrConnectWithoutPortKind:      ErrConnectWithoutPort,
}

// ParseError is returned by Parse on any failure. It always wraps exactly
// one sentinel error (see Kind/Unwrap) plus a detail message naming the
// offending position or byte.
type ParseError struct {
	kind ErrorKind
	pos  int
	err  error
}

func newParseError(kind ErrorKind, pos int, detail string) *ParseError {
	sentinel := sentinelByKind[kind]
	return &ParseError{
		kind: kind,
		pos:  pos,
		err:  errorsJoin(sentinel, errors.New(detail)),
	}
}

// Kind returns the specific error taxonomy entry for this failure.
func (e *ParseError) Kind() ErrorKind { return e.kind }

// Pos returns the byte offset within the input at which the failure was
// detected. For ErrEmptyInputKind it is 0; for the checks made after the
// whole input was scanned (a missing host or port, or authority-only
// input that carries a path, query or fragment) it is the input length.
func (e *ParseError) Pos() int { return e.pos }

func (e *ParseError) Error() string { return e.err.Error() }

func (e *ParseError) Unwrap() error { return e.err }

// errorsJoin composes a base sentinel error with additional context,
// preserving errors.Is against both. It mirrors the teacher's join-don't-
// wrap idiom without requiring Go 1.20's errors.Join.
func errorsJoin(errs ...error) error {
	return &joinedError{errs: errs}
}

type joinedError struct {
	errs []error
}

func (j *joinedError) Error() string {
	switch len(j.errs) {
	case 0:
		return ""
	case 1:
		return j.errs[0].Error()
	default:
		msg := j.errs[0].Error()
		for _, e := range j.errs[1:] {
			msg = fmt.Sprintf("%s: %s", msg, e.Error())
		}
		return msg
	}
}

func (j *joinedError) Is(target error) bool {
	for _, e := range j.errs {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}

func (j *joinedError) Unwrap() []error { return j.errs }

package lineinfile

import "errors"

var (
	errConfiguration = errors.New("invalid configuration")
	errPattern       = errors.New("invalid pattern")
	errBackreference = errors.New("invalid backreference")
)

// IsConfigurationError reports whether err indicates an invalid combination of options, such as requesting backreference expansion without a regexp.
func IsConfigurationError(err error) bool {
	return errors.Is(err, errConfiguration)
}
func configurationError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(errConfiguration, err)
}

// IsPatternError reports whether err indicates a regular expression that failed to compile.
func IsPatternError(err error) bool {
	return errors.Is(err, errPattern)
}
func patternError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(errPattern, err)
}

// IsInvalidBackreference reports whether err indicates a replacement template that could not be expanded against the matched line: a reference to a group the
// pattern lacks or does not populate, or a malformed escape sequence.
func IsInvalidBackreference(err error) bool {
	return errors.Is(err, errBackreference)
}
func backreferenceError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(errBackreference, err)
}

package glob

import "errors"

// ErrBadPattern indicates a malformed pattern, such as an unclosed
// character class.
var ErrBadPattern = errors.New("syntax error in pattern")

// Match returns true when str matches pattern. Returns an error when the
// pattern is invalid.
//
//	'*'      any sequence of characters, including none
//	'?'      any single character
//	'[...]'  character class, '-' ranges, leading '^' negates
//	'\\c'    character c
func Match(pattern, str string) (matched bool, err error) {
	if err := validate(pattern); err != nil {
		return false, err
	}
	return wildcardMatch(pattern, str), nil
}

// IsGlob returns true when the pattern is a valid glob
func IsGlob(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '[', '*', '?':
			_, err := Match(pattern, "whatever")
			return err == nil
		}
	}
	return false
}

// validate walks the whole pattern so malformed patterns are rejected
// regardless of where the match would fail.
func validate(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 >= len(pattern) {
				return ErrBadPattern
			}
			i++
		case '[':
			_, rest, err := matchClass(pattern[i:], 0)
			if err != nil {
				return err
			}
			i += len(pattern) - i - len(rest) - 1
		}
	}
	return nil
}

func wildcardMatch(pattern, str string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(str); i++ {
				if wildcardMatch(pattern, str[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(str) == 0 {
				return false
			}
			pattern, str = pattern[1:], str[1:]
		case '[':
			if len(str) == 0 {
				return false
			}
			ok, rest, _ := matchClass(pattern, str[0])
			if !ok {
				return false
			}
			pattern, str = rest, str[1:]
		case '\\':
			if len(str) == 0 || pattern[1] != str[0] {
				return false
			}
			pattern, str = pattern[2:], str[1:]
		default:
			if len(str) == 0 || pattern[0] != str[0] {
				return false
			}
			pattern, str = pattern[1:], str[1:]
		}
	}
	return len(str) == 0
}

// matchClass matches c against the class at the head of pattern and
// returns the remainder of the pattern past the closing bracket.
func matchClass(pattern string, c byte) (bool, string, error) {
	p := pattern[1:]
	negate := false
	if len(p) > 0 && p[0] == '^' {
		negate = true
		p = p[1:]
	}
	matched := false
	nrange := 0
	for {
		if len(p) == 0 {
			return false, "", ErrBadPattern
		}
		if p[0] == ']' && nrange > 0 {
			p = p[1:]
			break
		}
		var lo byte
		if p[0] == '\\' {
			if len(p) < 2 {
				return false, "", ErrBadPattern
			}
			lo = p[1]
			p = p[2:]
		} else {
			lo = p[0]
			p = p[1:]
		}
		hi := lo
		if len(p) >= 2 && p[0] == '-' && p[1] != ']' {
			if p[1] == '\\' {
				if len(p) < 3 {
					return false, "", ErrBadPattern
				}
				hi = p[2]
				p = p[3:]
			} else {
				hi = p[1]
				p = p[2:]
			}
		}
		if hi < lo {
			return false, "", ErrBadPattern
		}
		if lo <= c && c <= hi {
			matched = true
		}
		nrange++
	}
	return matched != negate, p, nil
}

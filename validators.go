package tvision

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// StringValidator checks the text of an InputLine.
type StringValidator func(string) error

// Validatable is implemented by views that can veto the OK or Yes answer
// of the modal group they sit in.
type Validatable interface {
	Validate() error
}

// VRequired rejects empty strings.
func VRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// VMinLen rejects strings shorter than n runes.
func VMinLen(n int) StringValidator {
	return func(s string) error {
		if utf8.RuneCountInString(s) < n {
			return fmt.Errorf("min %d characters", n)
		}
		return nil
	}
}

// VMaxLen rejects strings longer than n runes.
func VMaxLen(n int) StringValidator {
	return func(s string) error {
		if utf8.RuneCountInString(s) > n {
			return fmt.Errorf("max %d characters", n)
		}
		return nil
	}
}

// VMatch rejects non-empty strings that don't match the given regex pattern.
func VMatch(pattern string) StringValidator {
	re := regexp.MustCompile(pattern)
	return func(s string) error {
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return fmt.Errorf("invalid format")
		}
		return nil
	}
}

// VRange accepts empty strings and integers in [lo, hi].
func VRange(lo, hi int) StringValidator {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// validate runs every Validatable child. The first failing child is
// focused and its error returned.
func (g *Group) validate() error {
	for _, c := range g.children {
		v, ok := c.(Validatable)
		if !ok || !visible(c) {
			continue
		}
		if err := v.Validate(); err != nil {
			g.Focus(c)
			logger.Debug("validation failed", "view", viewName(c), "err", err)
			return err
		}
	}
	return nil
}

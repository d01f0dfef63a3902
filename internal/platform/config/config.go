// Package config reads application settings from environment variables
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ttt/internal/platform/logger"
)

// Conf is a namespaced view over environment variables, e.g. New().Prefix("TTT_")
type Conf struct{ prefix string }

// New creates a root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// invalid logs a bad optional value that is being replaced by its default
func (c Conf) invalid(key, value, kind string) {
	logger.Get().Warn().Str("key", c.key(key)).Str("value", value).Msg("invalid " + kind + "; using default")
}

// MustString panics if the key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustInt panics if the key is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustPort returns a listen addr like ":4000" after checking 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	return c.port(key, s)
}

// MayPort is MustPort with a default port number
func (c Conf) MayPort(key string, def int) string {
	s, ok := c.lookup(key)
	if !ok {
		s = strconv.Itoa(def)
	}
	return c.port(key, s)
}

func (c Conf) port(key, s string) string {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + strconv.Itoa(p)
}

// Require panics unless every key is present
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if _, ok := c.lookup(k); !ok {
			logger.Get().Panic().Str("key", c.key(k)).Msg("missing required env")
		}
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def, warning on garbage
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "int")
		return def
	}
	return v
}

// MayBool returns the value or def, warning on garbage
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.invalid(key, s, "bool")
		return def
	}
	return v
}

// MayList splits a comma separated value, dropping blanks; def when unset
func (c Conf) MayList(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayDuration returns the value or def, warning on garbage
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		c.invalid(key, s, "duration")
		return def
	}
	return d
}

// MayEnum returns the lower-cased value if it is one of allowed, def when
// unset, and panics on anything else
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayLocation loads an IANA zone name, "Local" and "UTC" included.
// Unknown zones warn and fall back to def.
func (c Conf) MayLocation(key string, def *time.Location) *time.Location {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		c.invalid(key, s, "time zone")
		return def
	}
	return loc
}

// MayPath returns a cleaned path with a leading ~ expanded, or def
func (c Conf) MayPath(key, def string) string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if s == "~" || strings.HasPrefix(s, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, strings.TrimPrefix(s, "~"))
		}
	}
	return filepath.Clean(s)
}

package configutil

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrReadEnvironment = errors.New("failed to read environment variables")

var errNotFinite = errors.New("not a finite number")

type EnvReader interface {
	LookupEnv(name string) (string, bool)
}

// OSEnv reads the process environment. A name that is not set is retried
// in lower case, the spelling used by the lambda deployments.
type OSEnv struct{}

func (OSEnv) LookupEnv(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	return os.LookupEnv(strings.ToLower(name))
}

type MapEnv map[string]string

func (m MapEnv) LookupEnv(name string) (string, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	v, ok := m[strings.ToLower(name)]
	return v, ok
}

// EnvOverlay copies set environment variables over a config struct that
// was already filled from defaults and the config file. Parse failures are
// collected and returned together by Err.
type EnvOverlay struct {
	env  EnvReader
	errs []error
}

func NewEnvOverlay(env EnvReader) *EnvOverlay {
	if env == nil {
		env = OSEnv{}
	}
	return &EnvOverlay{env: env}
}

func (o *EnvOverlay) lookup(name string) (string, bool) {
	v, ok := o.env.LookupEnv(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (o *EnvOverlay) fail(name, value string, err error) {
	o.errs = append(o.errs, fmt.Errorf("%w: %s=%q: %w", ErrReadEnvironment, name, value, err))
}

func (o *EnvOverlay) String(name string, target *string) {
	if v, ok := o.lookup(name); ok {
		*target = v
	}
}

func (o *EnvOverlay) Int(name string, target *int) {
	v, ok := o.lookup(name)
	if !ok {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		o.fail(name, v, err)
		return
	}
	*target = i
}

func (o *EnvOverlay) Float(name string, target *float64) {
	v, ok := o.lookup(name)
	if !ok {
		return
	}
	f, err := parseFinite(v)
	if err != nil {
		o.fail(name, v, err)
		return
	}
	*target = f
}

func parseFinite(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

func (o *EnvOverlay) Bool(name string, target *bool) {
	v, ok := o.lookup(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		o.fail(name, v, err)
		return
	}
	*target = b
}

func (o *EnvOverlay) Duration(name string, target *time.Duration) {
	v, ok := o.lookup(name)
	if !ok {
		return
	}
	d, err := ParseSeconds(v)
	if err != nil {
		o.fail(name, v, err)
		return
	}
	*target = d
}

func (o *EnvOverlay) Err() error {
	return errors.Join(o.errs...)
}

// ParseSeconds accepts a plain number of seconds ("300", "2.5") or a Go
// duration string ("5m").
func ParseSeconds(v string) (time.Duration, error) {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64/float64(time.Second) {
			return 0, fmt.Errorf("%s seconds: %w", v, errNotFinite)
		}
		return time.Duration(f * float64(time.Second)), nil
	}
	return time.ParseDuration(v)
}

// IntPtr is Int for settings whose absence must stay distinguishable from zero.
func (o *EnvOverlay) IntPtr(name string, target **int) {
	if _, ok := o.lookup(name); !ok {
		return
	}
	var i int
	if *target != nil {
		i = **target
	}
	before := len(o.errs)
	o.Int(name, &i)
	if len(o.errs) == before {
		*target = &i
	}
}

func (o *EnvOverlay) FloatPtr(name string, target **float64) {
	if _, ok := o.lookup(name); !ok {
		return
	}
	var f float64
	if *target != nil {
		f = **target
	}
	before := len(o.errs)
	o.Float(name, &f)
	if len(o.errs) == before {
		*target = &f
	}
}

package configutil

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingSettings = errors.New("missing required settings")

type Requirement struct {
	Setting string
	Env     string
	Present bool
}

func Required(setting, env string, present bool) Requirement {
	return Requirement{Setting: setting, Env: env, Present: present}
}

type MissingSettingsError struct {
	Missing []Requirement
}

func (e *MissingSettingsError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, r := range e.Missing {
		names = append(names, fmt.Sprintf("%s (%s)", r.Setting, r.Env))
	}
	return fmt.Sprintf("%s: %s", ErrMissingSettings.Error(), strings.Join(names, ", "))
}

func (e *MissingSettingsError) Is(target error) bool {
	return target == ErrMissingSettings
}

// CheckRequired returns a single error naming every requirement that is not present.
func CheckRequired(requirements ...Requirement) error {
	var missing []Requirement
	for _, r := range requirements {
		if !r.Present {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingSettingsError{Missing: missing}
}

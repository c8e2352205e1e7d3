// Package secrets resolves API keys for the AI review.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source lists the places an API key may come from, checked as File, Env, Value.
type Source struct {
	Name  string // used in errors, "secret" when empty
	Value string
	Env   string
	File  string
}

// Load returns the trimmed key. A configured file that cannot be read or is
// empty is an error; an unset or blank env var falls through to Value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
			return secret, nil
		}
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}

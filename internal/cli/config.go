package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// envBindings maps flags to the environment variables that supply their
// default. The first variable set wins; an explicit flag always wins.
var envBindings = map[string][]string{
	"display": {"COLOURPICK_DISPLAY", "DISPLAY"},
	"format":  {"COLOURPICK_FORMAT"},
}

// applyEnv fills unset flags in fs from the environment.
func applyEnv(fs *pflag.FlagSet) error {
	for name, vars := range envBindings {
		flag := fs.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		for _, v := range vars {
			value, ok := os.LookupEnv(v)
			if !ok || value == "" {
				continue
			}
			if err := flag.Value.Set(value); err != nil {
				return fmt.Errorf("invalid %s=%q: %w", v, value, err)
			}
			break
		}
	}
	return nil
}

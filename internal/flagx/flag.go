// Package flagx lets independent parts of the server parse only the
// command-line flags they own, so one FlagSet never fails on another's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigEnvName is consulted when no -c/-config flag is given.
const ConfigEnvName = "PRINTDESK_CONFIG"

// FilterArgs keeps the allowed flags from args, together with their values.
// Both "-f value" and "-f=value" forms are recognised. A token starting with
// "-" is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if allowed[name] {
				filtered = append(filtered, arg)
			}
			continue
		}

		if !allowed[arg] {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFilePath returns the JSON config path given by -c or -config in args,
// falling back to the PRINTDESK_CONFIG environment variable. The last flag wins.
// An empty string means no config file was requested.
func ConfigFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	if path == "" {
		path = os.Getenv(ConfigEnvName)
	}
	return path
}

// Package flagx lets several independent parsers share os.Args. Each parser
// picks out only the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"strings"
)

// Owned lists the flags a parser is responsible for. Value flags take the
// following argument as their value; Bool flags never do.
type Owned struct {
	Value []string
	Bool  []string
}

// FilterArgs returns the subset of args that belongs to the owned flags,
// keeping their order. Both "-f value" and "-f=value" forms are recognised.
// The result is never nil.
func FilterArgs(args []string, owned Owned) []string {
	values := toSet(owned.Value)
	bools := toSet(owned.Bool)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := values[name]; ok {
				filtered = append(filtered, arg)
			} else if _, ok := bools[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := bools[arg]; ok {
			filtered = append(filtered, arg)
			continue
		}

		if _, ok := values[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// It returns an empty string when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Owned{Value: []string{"-c", "-config", "--config"}}))

	return path
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Package flagx contains flag helpers shared by the server and client
// configuration loaders.
package flagx

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FilterArgs keeps only the allowedFlags (and their values) from args, so
// that each loader can parse its own flags without tripping over the others.
//
// Both "-f value" and "-f=value" forms are recognised. A following argument
// that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
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

// ConfigPath returns the JSON config path given with -c or -config, or "".
// The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// Seconds is a flag.Value for durations given as whole seconds ("5") or as
// a Go duration string ("1m30s").
type Seconds struct {
	D *time.Duration
}

func (s Seconds) String() string {
	if s.D == nil {
		return "0"
	}
	if *s.D%time.Second == 0 {
		return strconv.FormatInt(int64(*s.D/time.Second), 10)
	}
	return s.D.String()
}

func (s Seconds) Set(v string) error {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if n < 0 {
			return fmt.Errorf("negative duration %q", v)
		}
		*s.D = time.Duration(n) * time.Second
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid duration %q", v)
	}
	if d < 0 {
		return fmt.Errorf("negative duration %q", v)
	}
	*s.D = d
	return nil
}

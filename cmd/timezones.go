package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// zoneinfoDirs are the places the tzdata files usually live, in search order.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

func newTimezonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timezones [filter]",
		Short: "List IANA timezone names usable with --convert-tz",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			names, err := listTimezones(zoneinfoDirs)
			if err != nil {
				return err
			}

			for _, name := range names {
				if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}

// listTimezones walks the first zoneinfo directory present and returns the
// sorted zone names found in it.
func listTimezones(dirs []string) ([]string, error) {
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		return zonesIn(dir)
	}
	return nil, fmt.Errorf("no zoneinfo directory found")
}

func zonesIn(dir string) ([]string, error) {
	var names []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			// posix/ and right/ duplicate every zone.
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		// Zone files start with an uppercase letter (Europe/Berlin, UTC);
		// lowercase entries are metadata like zone.tab or posixrules.
		if name[0] < 'A' || name[0] > 'Z' {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

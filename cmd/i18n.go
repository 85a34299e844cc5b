package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/site"
)

var i18nCmd = &cobra.Command{
	Use:   "i18n",
	Short: "Inspect translation dictionaries",
}

var i18nLintCmd = &cobra.Command{
	Use:   "lint [glob...]",
	Short: "Check that every key used by the page resolves in every language",
	Long: `Checks the embedded dictionaries, or every directory matched by the given
globs (for example "locales/**"), against the keys the page templates use.
A directory must contain one <lang>.json per supported language.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		embedded, err := i18n.Embedded()
		if err != nil {
			return err
		}
		renderer, err := site.NewRenderer(embedded)
		if err != nil {
			return err
		}
		keys, err := renderer.Keys()
		if err != nil {
			return fmt.Errorf("collecting keys: %w", err)
		}

		if len(args) == 0 {
			return reportProblems("embedded", embedded.Check(keys))
		}

		dirs, err := matchLocaleDirs(args)
		if err != nil {
			return err
		}
		if len(dirs) == 0 {
			return fmt.Errorf("no dictionaries matched %s", strings.Join(args, ", "))
		}

		var failed bool
		for _, dir := range dirs {
			cat, err := i18n.LoadDir(dir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", dir, err)
				failed = true
				continue
			}
			if reportProblems(dir, cat.Check(keys)) != nil {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("dictionaries are incomplete")
		}
		return nil
	},
}

// matchLocaleDirs returns the sorted directories holding the *.json files
// matched by patterns.
func matchLocaleDirs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, ".json") {
			pattern = strings.TrimSuffix(pattern, "/") + "/*.json"
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			seen[filepath.Dir(m)] = true
		}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, nil
}

func reportProblems(source string, problems []i18n.Problem) error {
	if len(problems) == 0 {
		fmt.Printf("%s: ok\n", source)
		return nil
	}
	for _, p := range problems {
		fmt.Printf("%s: %s\n", source, p)
	}
	return fmt.Errorf("%s: %d missing keys", source, len(problems))
}

func init() {
	i18nCmd.AddCommand(i18nLintCmd)
	rootCmd.AddCommand(i18nCmd)
}

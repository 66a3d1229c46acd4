package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	speech "github.com/eolymp/go-latex-speech"
)

// maxSuggestions limits how many similar names are offered for an unknown one
const maxSuggestions = 3

var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Show how a command is spoken",
	Long: `Lookup prints the phrase a command is spoken as, for example "lookup alpha" or
"lookup frac". The leading backslash is optional. Without a name, every known
command is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := newConverter(viper.GetViper(), newLogger(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range conv.Names() {
				phrase, _ := conv.Lookup(name)
				fmt.Fprintf(out, "%s: %s\n", name, phrase)
			}

			return nil
		}

		line, err := describe(conv, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(out, line)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// describe formats the phrase of name, or reports similar names when it is unknown
func describe(conv *speech.Converter, name string) (string, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "\\")

	if phrase, ok := conv.Lookup(name); ok {
		return fmt.Sprintf("\\%s: %s", name, phrase), nil
	}

	if names := suggest(name, conv.Names()); len(names) > 0 {
		return "", fmt.Errorf("unknown command \\%s, did you mean \\%s?", name, strings.Join(names, ", \\"))
	}

	return "", fmt.Errorf("unknown command \\%s", name)
}

// suggest returns known names similar to name, the closest first
func suggest(name string, names []string) []string {
	if name == "" {
		return nil
	}

	ranks := fuzzy.RankFindFold(name, names)
	sort.Sort(ranks)

	out := make([]string, 0, maxSuggestions)
	for _, rank := range ranks {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, rank.Target)
	}

	return out
}

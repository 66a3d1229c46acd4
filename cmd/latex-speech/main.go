// Package main is the entry point for the latex-speech CLI.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	speech "github.com/eolymp/go-latex-speech"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts its arguments, or standard input when there are none.
var rootCmd = &cobra.Command{
	Use:   "latex-speech [text...]",
	Short: "Convert LaTeX math in prose into pronounceable English",
	Long: `latex-speech turns text which mixes prose and LaTeX-style math into plain
English words suitable for a text-to-speech engine.

Math may be delimited with $...$, $$...$$, \(...\) or \[...\], but commands
outside of delimiters are converted too. The text is taken from the arguments,
or from standard input when no arguments are given. Input which starts with
the name of a subcommand must be piped through standard input.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./latex-speech.yaml or ~/.config/latex-speech/latex-speech.yaml)")
	flags.Int("max-depth", speech.DefaultMaxDepth, "maximum nesting depth of groups")
	flags.Bool("no-quote", false, "do not wrap single-letter variables in quotes")
	flags.String("lexicon", "", "YAML file with additional commands and their phrases")
	flags.BoolP("verbose", "v", false, "report dropped commands on stderr")

	_ = viper.BindPFlag("max_depth", flags.Lookup("max-depth"))
	_ = viper.BindPFlag("no_quote", flags.Lookup("no-quote"))
	_ = viper.BindPFlag("lexicon_file", flags.Lookup("lexicon"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("latex-speech")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "latex-speech"))
		}
	}

	viper.SetEnvPrefix("LATEX_SPEECH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger creates the logger used for diagnostics
func newLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "latex-speech: ", 0)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

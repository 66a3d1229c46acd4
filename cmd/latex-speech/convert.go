package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	speech "github.com/eolymp/go-latex-speech"
)

func runConvert(cmd *cobra.Command, args []string) error {
	conv, err := newConverter(viper.GetViper(), newLogger(cmd))
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), conv.Convert(text))
}

// newConverter configures a converter from v: max_depth, no_quote, lexicon_file and
// verbose. With verbose set, notices are written to logger.
func newConverter(v *viper.Viper, logger *log.Logger) (*speech.Converter, error) {
	var opts speech.Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	if path := v.GetString("lexicon_file"); path != "" {
		lex, err := speech.LoadLexicon(path)
		if err != nil {
			return nil, err
		}

		opts.Lexicon = lex
	}

	var conv *speech.Converter
	if v.GetBool("verbose") {
		depth := opts.MaxDepth
		if depth <= 0 {
			depth = speech.DefaultMaxDepth
		}

		opts.Notify = func(n speech.Notice) {
			switch n.Kind {
			case speech.NoticeUnknown:
				if names := suggest(n.Name, conv.Names()); len(names) > 0 {
					logger.Printf("dropped unknown command \\%s, did you mean \\%s?", n.Name, names[0])
				} else {
					logger.Printf("dropped unknown command \\%s", n.Name)
				}
			case speech.NoticeDepth:
				logger.Printf("input is nested deeper than %d levels", depth)
			}
		}
	}

	conv = speech.NewConverter(opts)
	return conv, nil
}

// readInput joins the arguments, or reads r when there are none
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return string(data), nil
}

// writeOutput writes text terminated by a newline
func writeOutput(w io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

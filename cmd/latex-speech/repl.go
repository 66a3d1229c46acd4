package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	speech "github.com/eolymp/go-latex-speech"
)

const (
	historyFile = ".latex_speech_history"
	prompt      = "tex> "
)

const replHelp = `Type text with math to hear how it is spoken.
  :lookup <name>  show how a command is spoken
  :help           show this help
  :quit           leave`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Convert lines interactively",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	conv, err := newConverter(viper.GetViper(), newLogger(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	histPath := historyPath()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// history is best-effort
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			break
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		reply, quit := evalLine(conv, line)
		if quit {
			break
		}

		if reply != "" {
			fmt.Fprintln(out, reply)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}

	return nil
}

// historyPath returns the history file in the home directory, or "" when there is none
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}

	return filepath.Join(home, historyFile)
}

// evalLine handles one line of input, lines starting with a colon are REPL commands
func evalLine(conv *speech.Converter, line string) (reply string, quit bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return conv.Convert(line), false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return "", true
	case ":help", ":h":
		return replHelp, false
	case ":lookup", ":l":
		if len(fields) != 2 {
			return "usage: :lookup <name>", false
		}

		text, err := describe(conv, fields[1])
		if err != nil {
			return err.Error(), false
		}

		return text, false
	default:
		return fmt.Sprintf("unknown REPL command %s, try :help", fields[0]), false
	}
}

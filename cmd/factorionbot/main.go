// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command factorionbot is a thin demo front end over the
// github.com/tolik518/factorion-bot pipeline: feed it text on the
// command line or on stdin, one comment per line, and it prints
// whatever reply the pipeline would post, if any.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/pipeline"
)

var v = viper.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "factorionbot: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "factorionbot [text]",
		Short:         "Detect and compute factorial-like notations in free text",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("locale", "en", "locale key to render replies in")
	flags.Int("max-reply-len", 2000, "maximum reply length in bytes (0 means unlimited)")
	flags.Bool("termial", false, "enable ? termial recognition")
	flags.Bool("shorten", false, "render large results in scientific notation eagerly")
	flags.Bool("no-note", false, "suppress the disclaimer and factorion note")
	flags.Bool("steps", false, "emit each nested intermediate result separately")
	flags.Bool("verbose", false, "log pipeline debug events to stderr")

	v.SetEnvPrefix("factorionbot")
	v.AutomaticEnv()
	for _, name := range []string{"locale", "max-reply-len", "termial", "shorten", "no-note", "steps", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.Nop()
	if v.GetBool("verbose") {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	c, err := consts.New(consts.WithLogger(log))
	if err != nil {
		return err
	}

	var commands calcparse.CommandSet
	if v.GetBool("termial") {
		commands |= calcparse.Termial
	}
	if v.GetBool("shorten") {
		commands |= calcparse.Shorten
	}
	if v.GetBool("no-note") {
		commands |= calcparse.NoNote
	}
	if v.GetBool("steps") {
		commands |= calcparse.Steps
	}

	locale := v.GetString("locale")
	maxReplyLen := v.GetInt("max-reply-len")

	if len(args) > 0 {
		return processLine(cmd, c, strings.Join(args, " "), commands, maxReplyLen, locale)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := processLine(cmd, c, scanner.Text(), commands, maxReplyLen, locale); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// processLine runs one line of text through the pipeline's one-shot
// Process entry point and prints the reply, if any, to the command's
// configured stdout.
func processLine(cmd *cobra.Command, c *consts.Consts, text string, commands calcparse.CommandSet, maxReplyLen int, locale string) error {
	status, reply, _ := pipeline.Process(c, text, struct{}{}, commands, maxReplyLen, locale, "")
	if status.Kind != pipeline.FactorialsFound && status.Kind != pipeline.ReplyWouldBeTooLong {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

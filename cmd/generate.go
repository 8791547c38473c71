package main

import (
	"correcthorse/pkg/domain"
	"correcthorse/pkg/logger"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateFlags are the composition flags of the root command.
type generateFlags struct {
	chars     int
	words     int
	include   []string
	lists     []string
	camelCase bool
	sep       string
}

// params turns the parsed flags and arguments into composition parameters,
// taking configured defaults for flags that were not given.
func (f *generateFlags) params(cmd *cobra.Command, g *globals, args []string) (domain.Params, error) {
	count := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return domain.Params{}, fmt.Errorf("invalid count %q: must be an integer", args[0])
		}
		count = n
	}

	defaults := g.cfg.Defaults
	params := domain.Params{
		Count:     count,
		CharsMin:  defaults.Chars,
		WordsMin:  defaults.Words,
		UserWords: domain.Words(f.include...),
		Lists:     defaults.Lists,
		CamelCase: defaults.CamelCase,
		Sep:       defaults.Sep,
	}

	flags := cmd.Flags()
	if flags.Changed("chars") {
		params.CharsMin = f.chars
	}
	if flags.Changed("words") {
		params.WordsMin = f.words
	}
	if flags.Changed("list") {
		params.Lists = f.lists
	}
	if flags.Changed("camelcase") {
		params.CamelCase = f.camelCase
	}
	if flags.Changed("sep") {
		params.Sep = f.sep
	}

	return params, nil
}

// generateCommand constructs the root command. It prints count passphrases,
// one per line, as they are generated.
func generateCommand(g *globals) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "correcthorse [count]",
		Short: "Generates passphrases made of random words",
		Long: "Generates passphrases by joining random words from word lists until both the\n" +
			"minimum number of words and the minimum number of characters are reached.\n" +
			"Word lists are read from a path or looked up by name in the word list directory.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			params, err := f.params(cmd, g, args)
			if err != nil {
				return err
			}

			c, err := g.composer(nil, false)
			if err != nil {
				return err
			}

			logger.Debug(ctx, "generating passphrases",
				zap.Int("count", params.Count),
				zap.Int("chars", params.CharsMin),
				zap.Int("words", params.WordsMin),
				zap.Strings("lists", params.Lists),
			)

			out := cmd.OutOrStdout()
			for phrase, err := range c.Generate(ctx, params) {
				if err != nil {
					return fmt.Errorf("could not generate passphrase: %w", err)
				}
				if _, err := fmt.Fprintln(out, phrase); err != nil {
					return fmt.Errorf("could not write passphrase: %w", err)
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.chars, "chars", "c", domain.DefaultCharsMin, "minimal number of characters")
	flags.IntVarP(&f.words, "words", "w", domain.DefaultWordsMin, "minimal number of words")
	flags.StringArrayVarP(&f.include, "include", "i", nil, "include WORD in passphrase (repeatable)")
	flags.StringSliceVarP(&f.lists, "list", "l", []string{domain.DefaultList},
		"use words from LIST (repeatable, comma-separated)")
	flags.BoolVarP(&f.camelCase, "camelcase", "u", false, "print words in CamelCase")
	flags.StringVarP(&f.sep, "sep", "s", "", "separate words with SEP")

	return cmd
}

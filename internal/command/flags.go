// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/feedsift/feedsift/internal/output"
	"github.com/feedsift/feedsift/internal/source"
)

// NewOutputFlags returns the rendering flags shared by every command that
// prints results.
func NewOutputFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   stdoutIsTerminal(),
			Sources: configSources(ns, "color", path),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (" + strings.Join(output.Outputs, ", ") + ")",
			Value:   "text",
			Sources: configSources(ns, "output", path),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
			Sources: configSources(ns, "titles", path),
		},
	}
}

// NewFilterOutputFlags returns the rendering flags of commands that print a
// single filter or decision.
func NewFilterOutputFlags(ns string, path string) []cli.Flag {
	flags := NewOutputFlags(ns, path)
	for _, f := range flags {
		if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "output" {
			sf.Usage = "output format (text, json, yaml)"
			sf.Validator = func(value string) error {
				return FlagValidators(value, FilterOutputValidator)
			}
		}
	}
	return flags
}

// NewPresetFlag returns the --preset flag, which names a query stored under
// filters.<name> in the config file.
func NewPresetFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "use the named filter preset from the config file",
	}
}

// NewFilterFlag returns the --filter flag for run. Its value may come from
// FEEDSIFT_FILTER or from run.filter or filter in the config file.
func NewFilterFlag(ns string, path string) *cli.StringFlag {
	return NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "keyword filter query",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FEEDSIFT_FILTER"),
		),
	})
}

// NewSourceFlags returns the flags controlling how run decodes its input.
func NewSourceFlags(ns string, path string) []cli.Flag {
	formats := make([]string, len(source.Formats))
	for i, f := range source.Formats {
		formats[i] = string(f)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "input format (" + strings.Join(formats, ", ") + ")",
			Value:   string(source.FormatAuto),
			Sources: configSources(ns, "format", path),
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		},
		&cli.StringFlag{
			Name:    "title-key",
			Usage:   "comma-separated paths tried for the item title",
			Sources: configSources(ns, "title-key", path),
		},
		&cli.StringFlag{
			Name:    "summary-key",
			Usage:   "comma-separated paths tried for the item summary",
			Sources: configSources(ns, "summary-key", path),
		},
		&cli.StringFlag{
			Name:    "link-key",
			Usage:   "comma-separated paths tried for the item link",
			Sources: configSources(ns, "link-key", path),
		},
		&cli.BoolFlag{
			Name:    "strip-html",
			Usage:   "remove markup from titles and summaries before matching",
			Sources: configSources(ns, "strip-html", path),
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(ns, flag.Name, path).Chain...)
	return flag
}

// configSources returns a chain reading ns.name and then name from the YAML
// config file at path. Without a config file the chain is empty.
func configSources(ns string, name string, path string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain()
	if path == "" {
		return chain
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))

	return chain
}

// envThenConfig returns a chain reading the env variable first and the
// config file after it.
func envThenConfig(env string, ns string, name string, path string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(env))
	chain.Chain = append(chain.Chain, configSources(ns, name, path).Chain...)
	return chain
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(value string) []string {
	var list []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/config"
	"github.com/feedsift/feedsift/internal/meta"
)

const bashCompletionScript = `# bash completion for feedsift
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_feedsift()
{
    local cur prev cmd opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "compile match run completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --preset -p --titles -t"

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json jsonl yaml" -- "$cur") )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "auto json jsonl yaml feed" -- "$cur") )
            return 0
            ;;
        --preset|-p)
            COMPREPLY=( $(compgen -W "$(feedsift completion --presets 2>/dev/null)" -- "$cur") )
            return 0
            ;;
    esac

    case "$cmd" in
        compile)
            opts="$common"
            ;;
        match)
            opts="$common --title --summary --explain -e --strip-html"
            ;;
        run)
            opts="$common --filter -f --format --title-key --summary-key --link-key --strip-html --workers -w --sort -s --columns --stats"
            if [[ "$cur" != -* ]]; then
                COMPREPLY=( $(compgen -f -- "$cur") )
                return 0
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            opts="$common"
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _feedsift feedsift
`

const zshCompletionScript = `#compdef feedsift

_feedsift_presets() {
  local -a presets
  presets=(${(f)"$(feedsift completion --presets 2>/dev/null)"})
  _describe -t presets 'filter presets' presets
}

_feedsift() {
  local -a cmds
  cmds=(
    'compile:compile a query and show its terms'
    'match:evaluate a query against one item'
    'run:filter the items in a file or stdin'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json jsonl yaml)'
  '(-p --preset)'{-p,--preset}'[filter preset]:preset:_feedsift_presets'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'feedsift commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    compile)
      _arguments -C \
        $common \
        '*:query'
      ;;
    match)
      _arguments -C \
        $common \
        '--title[item title]:title' \
        '--summary[item summary]:summary' \
        '(-e --explain)'{-e,--explain}'[show which terms decided the outcome]' \
        '--strip-html[remove markup before matching]' \
        '*:query'
      ;;
    run)
      _arguments -C \
        $common \
        '(-f --filter)'{-f,--filter}'[keyword filter query]:query' \
        '--format[input format]:format:(auto json jsonl yaml feed)' \
        '--title-key[title paths]:paths' \
        '--summary-key[summary paths]:paths' \
        '--link-key[link paths]:paths' \
        '--strip-html[remove markup before matching]' \
        '(-w --workers)'{-w,--workers}'[concurrent evaluators]:workers' \
        '(-s --sort)'{-s,--sort}'[sort columns]:columns' \
        '--columns[text output columns]:columns' \
        '--stats[print counts to stderr]' \
        '::input file:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _feedsift feedsift
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	// Used by the scripts to complete --preset values.
	if cmd.Bool("presets") {
		for _, name := range config.PresetNames() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	case "":
		fmt.Fprintln(cmd.Root().ErrWriter, "usage: feedsift completion [bash|zsh]")
	default:
		return fmt.Errorf("unsupported shell %q (want bash or zsh)", shell)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "feedsift completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:   "presets",
				Usage:  "list filter preset names",
				Hidden: true,
			},
		},
		Action: completionCommandAction,
	}
}

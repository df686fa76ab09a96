// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedsift/feedsift/internal/config"
	"github.com/feedsift/feedsift/internal/keywords"
)

const essexQuery = `flood,"traffic jam",-"canvey island",-chelmsford,except("museum","country park")`

// runApp builds the app against the test config and runs it with args,
// capturing stdout and stderr.
func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfg, err := filepath.Abs(filepath.Join("testdata", "feedsift.yaml"))
	require.NoError(t, err)
	t.Setenv("FEEDSIFT_CFG_FILE", cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	full := append([]string{"feedsift"}, args...)
	app, err := InitApp(context.Background(), full)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)

	err = app.Run(context.Background(), full)
	return stdout.String(), stderr.String(), err
}

func TestInitAppCommands(t *testing.T) {
	t.Setenv("FEEDSIFT_CFG_FILE", filepath.Join("testdata", "feedsift.yaml"))
	t.Cleanup(func() { config.Config = config.Type{} })

	app, err := InitApp(context.Background(), []string{"feedsift", "run"})
	require.NoError(t, err)
	assert.Equal(t, "run", config.Config.Namespace)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"compile", "match", "run", "completion"}, names)
}

func TestInitAppWithoutConfig(t *testing.T) {
	t.Setenv("FEEDSIFT_CFG_FILE", filepath.Join("testdata", "missing.yaml"))
	t.Cleanup(func() { config.Config = config.Type{} })

	_, err := InitApp(context.Background(), []string{"feedsift", "compile"})
	assert.NoError(t, err)
}

func TestInitAppBrokenConfig(t *testing.T) {
	t.Setenv("FEEDSIFT_CFG_FILE", filepath.Join("testdata", "broken.yaml"))
	t.Cleanup(func() { config.Config = config.Type{} })

	_, err := InitApp(context.Background(), []string{"feedsift", "compile"})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestCompileCommand(t *testing.T) {
	stdout, _, err := runApp(t, "", "compile", "-o", "json", essexQuery)
	require.NoError(t, err)

	var terms keywords.Terms
	require.NoError(t, json.Unmarshal([]byte(stdout), &terms))
	assert.Equal(t, keywords.Terms{
		Include:   []string{"traffic jam", "flood"},
		Exclude:   []string{"canvey island", "chelmsford"},
		Overrides: [][]string{{"museum", "country park"}},
	}, terms)
}

func TestCompileCommandPreset(t *testing.T) {
	stdout, _, err := runApp(t, "", "compile", "--preset", "weather")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, `"storm","flood"`+"\n"), "got %q", stdout)

	_, _, err = runApp(t, "", "compile", "--preset", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no filter preset")
}

func TestCompileCommandRejectsJSONL(t *testing.T) {
	_, _, err := runApp(t, "", "compile", "-o", "jsonl", "flood")
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "keep",
			args: []string{"match", "--title", "Flood warning", essexQuery},
			want: "keep\n",
		},
		{
			name: "drop with explain",
			args: []string{"match", "--explain", "--title", "Traffic jam reported in Chelmsford", essexQuery},
			want: "drop\n  excluded by \"chelmsford\"\n  no override group satisfied\n",
		},
		{
			name: "override through summary",
			args: []string{
				"match", "--preset", "essex", "--strip-html",
				"--title", "Museum reopens after flood in Canvey Island",
				"--summary", "Near the <b>country</b> park.",
			},
			want: "keep\n",
		},
		{
			name: "empty query keeps everything",
			args: []string{"match", "--title", "anything"},
			want: "keep\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runApp(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestMatchCommandRequiresTitle(t *testing.T) {
	_, _, err := runApp(t, "", "match", "flood")
	assert.Error(t, err)
}

func titlesOf(t *testing.T, jsonl string) []string {
	t.Helper()

	var titles []string
	for _, line := range strings.Split(strings.TrimSpace(jsonl), "\n") {
		if line == "" {
			continue
		}
		var row map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &row))
		titles = append(titles, row["title"].(string))
	}
	return titles
}

func TestRunCommand(t *testing.T) {
	stdout, stderr, err := runApp(t, "",
		"run", "--preset", "essex", "--strip-html", "-o", "jsonl", "--stats",
		filepath.Join("testdata", "items.json"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Flood warning for Southend",
		"Museum reopens after flood in Canvey Island",
	}, titlesOf(t, stdout))
	assert.Equal(t, "kept 2 of 5 (3 dropped, 1 overridden)\n", stderr)
}

func TestRunCommandStdinAndEnvFilter(t *testing.T) {
	t.Setenv("FEEDSIFT_FILTER", "pier,museum")
	stdin := "{\"title\":\"Pier reopens\"}\n{\"title\":\"Flood\"}\n{\"title\":\"Museum\"}\n"

	stdout, _, err := runApp(t, stdin, "run", "-o", "jsonl", "--sort=-title", "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pier reopens", "Museum"}, titlesOf(t, stdout))
}

func TestRunCommandTextOutput(t *testing.T) {
	stdout, _, err := runApp(t, "", "run", "-f", "pier", filepath.Join("testdata", "items.json"))
	require.NoError(t, err)

	// Columns come from run.columns in the config file.
	assert.Contains(t, stdout, "Pier reopens")
	assert.Contains(t, stdout, "https://example.com/5")
	assert.NotContains(t, stdout, "Flood warning")
}

func TestRunCommandPadding(t *testing.T) {
	gap := "Pier reopens" + strings.Repeat(" ", 8)

	stdout, _, err := runApp(t, "", "run", "-f", "pier", filepath.Join("testdata", "items.json"))
	require.NoError(t, err)
	assert.NotContains(t, stdout, gap)

	stdout, _, err = runApp(t, "", "run", "-f", "pier", "--padding", "8", filepath.Join("testdata", "items.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, gap)

	_, _, err = runApp(t, "", "run", "-f", "pier", "--padding=0", filepath.Join("testdata", "items.json"))
	assert.Error(t, err)
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"run", filepath.Join("testdata", "nope.json")}, "does not exist"},
		{"directory", []string{"run", "testdata"}, "cannot be a directory"},
		{"bad format", []string{"run", "--format", "csv", filepath.Join("testdata", "items.json")}, "unknown input format"},
		{"bad column", []string{"run", "--columns", "author", filepath.Join("testdata", "items.json")}, "unknown column"},
		{"bad workers", []string{"run", "--workers=-1", filepath.Join("testdata", "items.json")}, "positive"},
		{"undecodable", []string{"run", "--format", "json", filepath.Join("testdata", "feedsift.yaml")}, "failed to read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runApp(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := runApp(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "complete -F _feedsift feedsift")

	stdout, _, err = runApp(t, "", "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "compdef _feedsift feedsift")

	stdout, _, err = runApp(t, "", "completion", "--presets")
	require.NoError(t, err)
	assert.Equal(t, "essex\nweather\n", stdout)

	_, _, err = runApp(t, "", "completion", "fish")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b.c"}, splitList(" a, ,b.c,"))
	assert.Nil(t, splitList(""))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, OutputValidator("jsonl"))
	assert.Error(t, OutputValidator("raw"))
	assert.Error(t, FilterOutputValidator("jsonl"))
	assert.NoError(t, FilterOutputValidator("yaml"))
	assert.NoError(t, FormatValidator("feed"))
	assert.Error(t, FormatValidator("csv"))
	assert.NoError(t, WorkersValidator(0))
	assert.Error(t, WorkersValidator(-2))
	assert.NoError(t, PaddingValidator(4))
	assert.Error(t, PaddingValidator(0))
	assert.NoError(t, ColumnsValidator("title,link"))
	assert.Error(t, ColumnsValidator("title,author"))
}

func TestBoolFlags(t *testing.T) {
	run := BoolFlags("run")
	for _, name := range []string{"stats", "titles", "t", "color", "c", "strip-html"} {
		assert.True(t, run[name], name)
	}
	for _, name := range []string{"output", "o", "preset", "p", "workers", "columns", "padding"} {
		assert.False(t, run[name], name)
	}

	assert.True(t, BoolFlags("match")["explain"])
	assert.Empty(t, BoolFlags("nope"))
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package keywords

import (
	"embed"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testCompileCase represents a single test case for TestCompile.
type testCompileCase struct {
	Name string `yaml:"name"`
	Raw  string `yaml:"raw"`
	Want Terms  `yaml:"want"`
}

// testMatchCase represents a single test case for TestMatch.
type testMatchCase struct {
	Name    string `yaml:"name"`
	Query   string `yaml:"query"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Want    bool   `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestCompile(t *testing.T) {
	var tests []testCompileCase
	require.NoError(t, loadTestData("keywords_test_compile.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := Compile(tt.Raw)
			assert.Equal(t, tt.Want, got.Terms())
		})
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	var tests []testCompileCase
	require.NoError(t, loadTestData("keywords_test_compile.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.True(t, Compile(tt.Raw).Equal(Compile(tt.Raw)))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	var tests []testCompileCase
	require.NoError(t, loadTestData("keywords_test_compile.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			f := Compile(tt.Raw)
			again := Compile(f.String())
			assert.True(t, f.Equal(again), "query %q recompiled from %q", tt.Raw, f.String())
		})
	}
}

func TestStringQuoting(t *testing.T) {
	f := FromTerms(Terms{
		Include:   []string{`say "hi" now`, "flood"},
		Exclude:   []string{"canvey island"},
		Overrides: [][]string{{"museum", "a)b"}},
	})

	assert.Equal(t, `'say "hi" now',"flood",-"canvey island",except("museum","a)b")`, f.String())
	assert.True(t, f.Equal(Compile(f.String())))
}

func TestMatch(t *testing.T) {
	var tests []testMatchCase
	require.NoError(t, loadTestData("keywords_test_match.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			f := Compile(tt.Query)
			in := Input{Title: tt.Title, Summary: tt.Summary}
			assert.Equal(t, tt.Want, Match(f, in))
			assert.Equal(t, tt.Want, f.Explain(in).Keep, "Explain disagrees with Match")
		})
	}
}

// TestOverrideGroupIsConjunctive pins the override semantic: a group only
// reinstates an excluded item when all of its terms are present.
func TestOverrideGroupIsConjunctive(t *testing.T) {
	f := FromTerms(Terms{
		Exclude:   []string{"canvey island"},
		Overrides: [][]string{{"museum", "country park"}},
	})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exclude term only", "canvey island", false},
		{"one of two override terms", "canvey island museum", false},
		{"other of two override terms", "canvey island country park", false},
		{"both override terms", "canvey island museum country park", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Match(Input{Title: tt.text}))
		})
	}
}

func TestZeroFilterKeepsEverything(t *testing.T) {
	var f Filter
	assert.True(t, f.IsEmpty())
	assert.True(t, f.Equal(Compile("")))
	assert.True(t, f.Match(Input{}))
	assert.True(t, f.Match(Input{Title: "advertisement", Summary: "anything"}))
}

func TestExplain(t *testing.T) {
	f := Compile(`flood,"traffic jam",-"canvey island",-chelmsford,except("museum","country park")`)

	tests := []struct {
		name string
		in   Input
		want Decision
	}{
		{
			name: "dropped by exclude",
			in:   Input{Title: "Traffic jam reported in Chelmsford"},
			want: Decision{Keep: false, Excluded: []string{"chelmsford"}, Override: -1},
		},
		{
			name: "kept by override and include",
			in:   Input{Title: "Museum reopens after flood in Canvey Island", Summary: "near the country park"},
			want: Decision{Keep: true, Excluded: []string{"canvey island"}, Override: 0, Included: "flood"},
		},
		{
			name: "kept by include",
			in:   Input{Title: "Traffic jam on the A127"},
			want: Decision{Keep: true, Override: -1, Included: "traffic jam"},
		},
		{
			name: "no include match",
			in:   Input{Title: "Pier reopens"},
			want: Decision{Keep: false, Override: -1},
		},
		{
			name: "every exclude term is reported",
			in:   Input{Title: "Chelmsford and Canvey Island"},
			want: Decision{Keep: false, Excluded: []string{"canvey island", "chelmsford"}, Override: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Explain(tt.in))
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	f := Compile(`flood,-rain,except(a,b)`)

	f.Include()[0] = "changed"
	f.Exclude()[0] = "changed"
	f.Overrides()[0][0] = "changed"

	assert.Equal(t, []string{"flood"}, f.Include())
	assert.Equal(t, []string{"rain"}, f.Exclude())
	assert.Equal(t, [][]string{{"a", "b"}}, f.Overrides())
}

func TestFromTermsNormalizes(t *testing.T) {
	f := FromTerms(Terms{
		Include:   []string{"  Flood ", "", `"Traffic Jam"`},
		Exclude:   []string{"   "},
		Overrides: [][]string{{""}, {" Museum "}},
	})

	assert.Equal(t, Terms{
		Include:   []string{"flood", "traffic jam"},
		Exclude:   []string{},
		Overrides: [][]string{{"museum"}},
	}, f.Terms())
}

func TestMatchIsSafeForConcurrentUse(t *testing.T) {
	f := Compile(`flood,-"canvey island",except(museum,"country park")`)
	inputs := []Input{
		{Title: "Flood warning"},
		{Title: "Canvey Island flood"},
		{Title: "Canvey Island flood museum", Summary: "country park"},
		{Title: "Sunny"},
	}
	want := make([]bool, len(inputs))
	for i, in := range inputs {
		want[i] = f.Match(in)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, in := range inputs {
					assert.Equal(t, want[i], f.Match(in))
				}
			}
		}()
	}
	wg.Wait()
}

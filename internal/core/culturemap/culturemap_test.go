package culturemap

import (
	"reflect"
	"sort"
	"testing"
)

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Python", "python"},
		{"  Go  ", "go"},
		{"C++", "cpp"},
		{"c#", "csharp"},
		{"Node.JS", "nodejs"},
		{"café", "cafe"},
		{"Machine Learning", "machine-learning"},
		{"foo!!bar", "foo-bar"},
		{"trailing---", "trailing"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := NormalizeToken(tc.in); got != tc.want {
			t.Fatalf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapTokens_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   []Tag
	}{
		{
			name:   "python maps to its full tag list",
			tokens: []string{"python"},
			want:   []Tag{"academic", "ai", "automation", "data-science", "research"},
		},
		{
			name:   "topic machine-learning",
			tokens: []string{"machine-learning"},
			want:   []Tag{"ai", "data-science"},
		},
		{
			name:   "unmapped token synthesizes fallback",
			tokens: []string{"quantumfoo"},
			want:   []Tag{"tech-quantumfoo"},
		},
		{
			name:   "union dedupes overlapping tags",
			tokens: []string{"python", "machine-learning"},
			want:   []Tag{"academic", "ai", "automation", "data-science", "research"},
		},
		{
			name:   "blank tokens contribute nothing",
			tokens: []string{"", "   "},
			want:   []Tag{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapTokens(tc.tokens)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("MapTokens(%v) = %v, want %v", tc.tokens, got, tc.want)
			}
		})
	}
}

func TestMapTokens_TotalityAndPurity(t *testing.T) {
	t.Parallel()

	// any non-empty token list yields a non-empty tag set
	tokens := []string{"zzz-unknown", "Rust", "??weird??"}
	got := MapTokens(tokens)
	if len(got) == 0 {
		t.Fatalf("expected non-empty tags for non-empty input")
	}
	if !sort.StringsAreSorted(got) {
		t.Fatalf("tags not sorted: %v", got)
	}

	// identical input yields identical output across calls
	again := MapTokens(tokens)
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("MapTokens not pure: %v vs %v", got, again)
	}
}

func TestInsightCategories(t *testing.T) {
	t.Parallel()

	got := InsightCategories([]string{"python"})
	want := []string{
		"urn:tag:interest:science",
		"urn:tag:interest:artificial_intelligence",
		"urn:tag:interest:productivity",
		"urn:tag:interest:data_science",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InsightCategories(python) = %v, want %v", got, want)
	}

	// unmapped tags fall back to the generic technology category, deduplicated
	fb := InsightCategories([]string{"zzz-one", "zzz-two"})
	if !reflect.DeepEqual(fb, []string{fallbackCategory}) {
		t.Fatalf("fallback categories = %v", fb)
	}
}

func TestInsightCategories_Cap(t *testing.T) {
	t.Parallel()

	tokens := []string{
		"python", "rust", "javascript", "blockchain", "gamedev",
		"security", "robotics", "music", "design", "education",
		"kubernetes", "embedded",
	}
	got := InsightCategories(tokens)
	if len(got) > maxInsightCategories {
		t.Fatalf("categories exceed cap: %d > %d", len(got), maxInsightCategories)
	}
	seen := map[string]bool{}
	for _, c := range got {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
	}
}

func TestBioTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bio  string
		want []string
	}{
		{
			name: "cue phrases extract interests",
			bio:  "Passionate about machine learning. Rust enthusiast building cool things",
			want: []string{"machine", "learning", "rust"},
		},
		{
			name: "no cues yields nothing",
			bio:  "Software engineer in Berlin",
			want: nil,
		},
		{
			name: "empty bio",
			bio:  "   ",
			want: nil,
		},
		{
			name: "working on phrase",
			bio:  "Currently working on distributed databases",
			want: []string{"distributed", "databases"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := BioTokens(tc.bio)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("BioTokens(%q) = %v, want %v", tc.bio, got, tc.want)
			}
		})
	}
}

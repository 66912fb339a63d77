package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbkit/endpoints"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		template string
		args     []string
		params   *Params
		want     string
	}{
		{
			name:     "no parameters",
			base:     "https://api.themoviedb.org/3",
			template: "configuration",
			want:     "https://api.themoviedb.org/3/configuration?api_key=K",
		},
		{
			name:     "path placeholder",
			base:     "https://api.themoviedb.org/3",
			template: "movie/{0}",
			args:     []string{"550"},
			params:   NewParams().Add("language", "en"),
			want:     "https://api.themoviedb.org/3/movie/550?api_key=K&language=en",
		},
		{
			name:     "several placeholders",
			base:     "http://localhost",
			template: "a/{0}/b/{1}/{0}",
			args:     []string{"x", "y"},
			want:     "http://localhost/a/x/b/y/x?api_key=K",
		},
		{
			name:     "insertion order kept",
			base:     "http://localhost",
			template: "search/movie",
			params:   NewParams().Add("query", "q").Add("page", "2").Add("adult", "false"),
			want:     "http://localhost/search/movie?api_key=K&query=q&page=2&adult=false",
		},
		{
			name:     "duplicates kept",
			base:     "http://localhost",
			template: "x",
			params:   NewParams().Add("a", "1").Add("a", "2"),
			want:     "http://localhost/x?api_key=K&a=1&a=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL(tt.base, tt.template, tt.args, "api_key", "K", tt.params)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsOptionalHelpers(t *testing.T) {
	p := NewParams().
		AddInt("page", 0).
		AddInt("year", 1999).
		AddString("language", "").
		AddString("region", "US")

	assert.Equal(t, 2, p.Len())

	v, ok := p.Get("year")
	require.True(t, ok)
	assert.Equal(t, "1999", v)

	_, ok = p.Get("page")
	assert.False(t, ok)

	var nilParams *Params
	assert.Equal(t, 0, nilParams.Len())
}

func TestMovieAppendParameter(t *testing.T) {
	cfg := endpoints.Defaults("K")

	tests := []struct {
		name   string
		append MovieAppend
		want   string
	}{
		{name: "none", append: AppendNone, want: ""},
		{name: "single", append: AppendCasts, want: "casts"},
		{name: "declared order", append: AppendTrailers | AppendCasts, want: "casts,trailers"},
		{
			name:   "all",
			append: AppendAll,
			want:   "alternative_titles,casts,images,keywords,releases,trailers,translations,similar_movies,reviews,lists,changes",
		},
		{name: "unknown bit ignored", append: MovieAppend(1 << 20), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.append.Parameter(&cfg.Values))
		})
	}
}

func TestPersonAppendParameter(t *testing.T) {
	cfg := endpoints.Defaults("K")

	assert.Equal(t, "", PersonAppendNone.Parameter(&cfg.Values))
	assert.Equal(t, "credits,changes", (PersonAppendChanges | PersonAppendCredits).Parameter(&cfg.Values))
	assert.Equal(t, "credits,images,changes", PersonAppendAll.Parameter(&cfg.Values))
	assert.True(t, PersonAppendAll.Has(PersonAppendImages))
	assert.False(t, PersonAppendCredits.Has(PersonAppendImages))
}

func TestFlagsToParameterCustomSeparator(t *testing.T) {
	cfg := endpoints.Defaults("K")
	cfg.Values.AppendSeparator = ";"
	cfg.Values.AppendCasts = ""

	// a flag configured with an empty name is skipped
	got := (AppendCasts | AppendImages | AppendKeywords).Parameter(&cfg.Values)
	assert.Equal(t, "images;keywords", got)
}

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "fight club", want: "fight+club"},
		{in: `fight: club?`, want: "fight%3A+club%3F"},
		{in: "AC/DC: Live at Donington", want: "AC%2FDC%3A+Live+at+Donington"},
		{in: `a<b>c"d\e|f*g`, want: "a%3Cb%3Ec%22d%5Ce%7Cf%2Ag"},
		{in: "Who Framed Roger Rabbit?", want: "Who+Framed+Roger+Rabbit%3F"},
		{in: "tab\there", want: "tabhere"},
		{in: "amélie & co", want: "am%C3%A9lie+%26+co"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeQuery(tt.in))
		})
	}
}

func TestJoinIDs(t *testing.T) {
	cfg := endpoints.Defaults("K")

	got, err := JoinIDs([]int{28, 12}, OperatorAnd, &cfg.Values)
	require.NoError(t, err)
	assert.Equal(t, "28,12", got)

	got, err = JoinIDs([]int{28, 12, 16}, OperatorOr, &cfg.Values)
	require.NoError(t, err)
	assert.Equal(t, "28|12|16", got)

	_, err = JoinIDs([]int{1}, FilterOperator(9), &cfg.Values)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPrecondition)
}

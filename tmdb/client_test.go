package tmdb

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbkit/endpoints"
	"github.com/s0up4200/tmdbkit/transport"
	"github.com/s0up4200/tmdbkit/transport/transporttest"
)

const testBase = "https://api.themoviedb.org/3"

func newTestClient(t *testing.T, fake *transporttest.Fake, opts ...Option) *Client {
	t.Helper()
	cfg := endpoints.Defaults("K")
	client, err := NewClient(&cfg, fake, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresDependencies(t *testing.T) {
	cfg := endpoints.Defaults("K")

	_, err := NewClient(nil, transporttest.New(""), zerolog.Nop())
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = NewClient(&cfg, nil, zerolog.Nop())
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestGetMovie(t *testing.T) {
	t.Run("append flags without language", func(t *testing.T) {
		fake := transporttest.New(`{"id":550,"title":"Fight Club","casts":{"cast":[{"id":819,"name":"Edward Norton"}]}}`)
		client := newTestClient(t, fake)

		res := client.GetMovie(context.Background(), 550, MovieOptions{Append: AppendCasts | AppendTrailers})
		require.True(t, res.OK())
		require.NotNil(t, res.Value)

		req := fake.LastRequest()
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, testBase+"/movie/550?api_key=K&append_to_response=casts,trailers", req.URL)
		assert.NotContains(t, req.URL, "language=")

		assert.Equal(t, "Fight Club", res.Value.Title)
		require.NotNil(t, res.Value.Casts)
		assert.Equal(t, "Edward Norton", res.Value.Casts.Cast[0].Name)
		assert.Nil(t, res.Value.Trailers)
	})

	t.Run("no append omits parameter", func(t *testing.T) {
		fake := transporttest.New(`{"id":550}`)
		client := newTestClient(t, fake)

		res := client.GetMovie(context.Background(), 550, MovieOptions{Language: "de"})
		require.True(t, res.OK())
		assert.Equal(t, testBase+"/movie/550?api_key=K&language=de", fake.LastRequest().URL)
	})

	t.Run("imdb id", func(t *testing.T) {
		fake := transporttest.New(`{"id":550,"imdb_id":"tt0137523"}`)
		client := newTestClient(t, fake)

		res := client.GetMovieByIMDbID(context.Background(), "tt0137523", MovieOptions{})
		require.True(t, res.OK())
		assert.Equal(t, testBase+"/movie/tt0137523?api_key=K", fake.LastRequest().URL)
		assert.Equal(t, 550, res.Value.ID)
	})
}

func TestResponseConversion(t *testing.T) {
	t.Run("empty body is success with zero value", func(t *testing.T) {
		fake := transporttest.New("")
		client := newTestClient(t, fake)

		res := client.GetMovie(context.Background(), 1, MovieOptions{})
		assert.True(t, res.OK())
		assert.Nil(t, res.Value)
		assert.Nil(t, res.Status)
	})

	t.Run("etag and source url attached", func(t *testing.T) {
		fake := &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
			return transport.RawResult{SourceURL: req.URL, JSON: `{"genres":[{"id":28,"name":"Action"}]}`, ETag: `"abc"`}
		}}
		client := newTestClient(t, fake)

		res := client.GetGenres(context.Background(), "")
		require.True(t, res.OK())
		assert.Equal(t, `"abc"`, res.ETag)
		assert.Equal(t, testBase+"/genre/list?api_key=K", res.SourceURL)
		assert.Equal(t, []Genre{{ID: 28, Name: "Action"}}, res.Value.Genres)
	})

	t.Run("not found keeps error and decodes status", func(t *testing.T) {
		httpErr := &transport.HTTPError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
		fake := &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
			return transport.RawResult{
				SourceURL: req.URL,
				JSON:      `{"status_code":34,"status_message":"The resource you requested could not be found."}`,
				Err:       httpErr,
			}
		}}
		client := newTestClient(t, fake)

		res := client.GetMovie(context.Background(), 999999999, MovieOptions{})
		assert.False(t, res.OK())
		assert.Nil(t, res.Value)

		var got *transport.HTTPError
		require.True(t, errors.As(res.Err, &got))
		assert.True(t, got.IsNotFound())

		require.NotNil(t, res.Status)
		assert.Equal(t, 34, res.Status.StatusCode)
		assert.Equal(t, "The resource you requested could not be found.", res.Status.StatusMessage)
	})

	t.Run("error without body", func(t *testing.T) {
		netErr := errors.New("connection refused")
		fake := &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
			return transport.RawResult{SourceURL: req.URL, Err: netErr}
		}}
		client := newTestClient(t, fake)

		res := client.GetConfiguration(context.Background())
		assert.ErrorIs(t, res.Err, netErr)
		assert.Nil(t, res.Status)
	})

	t.Run("error with non-json body", func(t *testing.T) {
		fake := &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
			return transport.RawResult{JSON: "<html>bad gateway</html>", Err: &transport.HTTPError{StatusCode: 502}}
		}}
		client := newTestClient(t, fake)

		res := client.GetConfiguration(context.Background())
		require.Error(t, res.Err)
		assert.Nil(t, res.Status)
	})

	t.Run("malformed payload becomes envelope error", func(t *testing.T) {
		fake := transporttest.New(`{"id": "not a number"`)
		client := newTestClient(t, fake)

		res := client.GetMovie(context.Background(), 550, MovieOptions{})
		require.Error(t, res.Err)
		assert.Nil(t, res.Value)
		assert.Contains(t, res.Err.Error(), "decode")
	})
}

func TestCallOptionsPassedToTransport(t *testing.T) {
	fake := transporttest.New(`{}`)
	client := newTestClient(t, fake, WithCacheLevel(transport.CacheLong), WithTimeout(5*time.Second))

	client.GetConfiguration(context.Background())

	req := fake.LastRequest()
	assert.Equal(t, transport.CacheLong, req.Cache)
	assert.Equal(t, 5*time.Second, req.Timeout)
	assert.True(t, req.UseTLS)
}

func TestAuthentication(t *testing.T) {
	fake := transporttest.New(`{"success":true,"request_token":"tok","session_id":"sess","guest_session_id":"guest"}`)
	client := newTestClient(t, fake)
	ctx := context.Background()

	token := client.GetAuthenticationToken(ctx)
	require.True(t, token.OK())
	assert.Equal(t, "tok", token.Value.RequestToken)
	assert.Equal(t, testBase+"/authentication/token/new?api_key=K", fake.LastRequest().URL)

	session := client.GetSession(ctx, "tok")
	require.True(t, session.OK())
	assert.Equal(t, "sess", session.Value.SessionID)
	assert.Equal(t, testBase+"/authentication/session/new?api_key=K&request_token=tok", fake.LastRequest().URL)

	guest := client.GetGuestSession(ctx)
	require.True(t, guest.OK())
	assert.Equal(t, "guest", guest.Value.GuestSessionID)
}

func TestAccountOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("favorite movies sorted", func(t *testing.T) {
		fake := transporttest.New(`{"page":1,"results":[{"id":550}],"total_pages":1,"total_results":1}`)
		client := newTestClient(t, fake)

		res := client.GetAccountFavoriteMovies(ctx, 42, "sess", AccountMovieOptions{
			Page:      2,
			SortBy:    AccountSortCreatedAt,
			SortOrder: SortOrderDescending,
		})
		require.True(t, res.OK())
		assert.Len(t, res.Value.Results, 1)
		assert.Equal(t,
			testBase+"/account/42/favorite_movies?api_key=K&session_id=sess&page=2&sort_by=created_at&sort_order=desc",
			fake.LastRequest().URL)
	})

	t.Run("unknown sort order is a precondition failure", func(t *testing.T) {
		fake := transporttest.New(`{}`)
		client := newTestClient(t, fake)

		res := client.GetAccountWatchlistMovies(ctx, 42, "sess", AccountMovieOptions{SortOrder: SortOrder(7)})
		require.Error(t, res.Err)
		assert.ErrorIs(t, res.Err, ErrPrecondition)

		var pe *PreconditionError
		require.True(t, errors.As(res.Err, &pe))
		assert.Equal(t, "GetAccountWatchlistMovies", pe.Op)
		assert.Empty(t, fake.Requests())
	})

	t.Run("set favorite posts body", func(t *testing.T) {
		fake := transporttest.New(`{"status_code":1,"status_message":"Success."}`)
		client := newTestClient(t, fake)

		res := client.SetAccountFavorite(ctx, 42, "sess", 550, true)
		require.True(t, res.OK())
		assert.Equal(t, 1, res.Value.StatusCode)

		req := fake.LastRequest()
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, testBase+"/account/42/favorite?api_key=K&session_id=sess", req.URL)
		assert.JSONEq(t, `{"media_type":"movie","media_id":550,"favorite":true}`, string(req.Body))
	})

	t.Run("set watchlist false is sent", func(t *testing.T) {
		fake := transporttest.New(`{"status_code":13}`)
		client := newTestClient(t, fake)

		res := client.SetAccountWatchlist(ctx, 42, "sess", 550, false)
		require.True(t, res.OK())
		assert.JSONEq(t, `{"media_type":"movie","media_id":550,"watchlist":false}`, string(fake.LastRequest().Body))
	})
}

func TestMovieRating(t *testing.T) {
	fake := transporttest.New(`{"status_code":1}`)
	client := newTestClient(t, fake)
	ctx := context.Background()

	require.True(t, client.SetMovieRating(ctx, 550, "sess", 8.5).OK())
	req := fake.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, testBase+"/movie/550/rating?api_key=K&session_id=sess", req.URL)
	assert.JSONEq(t, `{"value":8.5}`, string(req.Body))

	require.True(t, client.SetMovieRatingAsGuest(ctx, 550, "guest", 6).OK())
	assert.Equal(t, testBase+"/movie/550/rating?api_key=K&guest_session_id=guest", fake.LastRequest().URL)
}

func TestMovieAccountState(t *testing.T) {
	fake := transporttest.New(`{"id":550,"favorite":false,"rated":{"value":9},"watchlist":true}`)
	client := newTestClient(t, fake)

	res := client.GetMovieAccountState(context.Background(), 550, "sess")
	require.True(t, res.OK())
	v, ok := res.Value.Rated.Value()
	assert.True(t, ok)
	assert.InDelta(t, 9.0, v, 0.0001)
	assert.True(t, res.Value.Watchlist)
}

func TestListOperations(t *testing.T) {
	ctx := context.Background()
	fake := transporttest.New(`{"status_code":1,"status_message":"Success.","list_id":"509ec17b19c2950a0600050d"}`)
	client := newTestClient(t, fake)

	created := client.CreateList(ctx, "sess", "Best", "My favourites", "en")
	require.True(t, created.OK())
	assert.Equal(t, "509ec17b19c2950a0600050d", created.Value.ListID)
	assert.Equal(t, 1, created.Value.StatusCode)
	assert.JSONEq(t, `{"name":"Best","description":"My favourites","language":"en"}`, string(fake.LastRequest().Body))

	require.True(t, client.AddListItem(ctx, "sess", "L1", 550).OK())
	req := fake.LastRequest()
	assert.Equal(t, testBase+"/list/L1/add_item?api_key=K&session_id=sess", req.URL)
	assert.JSONEq(t, `{"media_id":550}`, string(req.Body))

	require.True(t, client.RemoveListItem(ctx, "sess", "L1", 550).OK())
	assert.Equal(t, testBase+"/list/L1/remove_item?api_key=K&session_id=sess", fake.LastRequest().URL)

	require.True(t, client.DeleteList(ctx, "sess", "L1").OK())
	req = fake.LastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, testBase+"/list/L1?api_key=K&session_id=sess", req.URL)
	assert.Empty(t, req.Body)

	client.GetListItemStatus(ctx, "L1", 550)
	assert.Equal(t, testBase+"/list/L1/item_status?api_key=K&movie_id=550", fake.LastRequest().URL)
}

func TestDiscoverMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("full filter", func(t *testing.T) {
		fake := transporttest.New(`{"page":1,"results":[]}`)
		client := newTestClient(t, fake)

		res := client.DiscoverMovies(ctx, DiscoverFilter{
			Page:           1,
			IncludeAdult:   Bool(false),
			VoteCountGte:   100,
			VoteAverageGte: 7.5,
			ReleaseDateGte: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			Genres:         []int{28, 12},
			GenresOperator: OperatorOr,
			Companies:      []int{420},
			SortBy:         DiscoverSortPopularity,
			SortOrder:      SortOrderDescending,
		})
		require.True(t, res.OK())

		assert.Equal(t, testBase+"/discover/movie?api_key=K&page=1&include_adult=false&vote_count.gte=100"+
			"&vote_average.gte=7.5&release_date.gte=2000-01-01&with_companies=420&with_genres=28|12"+
			"&sort_by=popularity.desc", fake.LastRequest().URL)
	})

	t.Run("sort without order", func(t *testing.T) {
		fake := transporttest.New(`{}`)
		client := newTestClient(t, fake)

		client.DiscoverMovies(ctx, DiscoverFilter{SortBy: DiscoverSortVoteAverage})
		assert.Equal(t, testBase+"/discover/movie?api_key=K&sort_by=vote_average", fake.LastRequest().URL)
	})

	t.Run("unknown operator sends nothing", func(t *testing.T) {
		fake := transporttest.New(`{}`)
		client := newTestClient(t, fake)

		res := client.DiscoverMovies(ctx, DiscoverFilter{Genres: []int{1}, GenresOperator: FilterOperator(5)})
		assert.ErrorIs(t, res.Err, ErrPrecondition)
		assert.Empty(t, fake.Requests())
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	fake := transporttest.New(`{"page":1,"results":[{"id":550,"title":"Fight Club"}],"total_results":1}`)
	client := newTestClient(t, fake)

	res := client.SearchMovie(ctx, "fight: club", SearchMovieOptions{
		Year:       1999,
		SearchType: SearchTypePhrase,
	})
	require.True(t, res.OK())
	assert.Equal(t, "Fight Club", res.Value.Results[0].Title)
	assert.Equal(t, testBase+"/search/movie?api_key=K&query=fight%3A+club&year=1999&search_type=phrase", fake.LastRequest().URL)

	client.SearchPerson(ctx, "brad pitt", SearchPersonOptions{IncludeAdult: Bool(true)})
	assert.Equal(t, testBase+"/search/person?api_key=K&query=brad+pitt&include_adult=true", fake.LastRequest().URL)

	client.SearchMovie(ctx, "AC/DC: Let There Be Rock", SearchMovieOptions{})
	assert.Equal(t, testBase+"/search/movie?api_key=K&query=AC%2FDC%3A+Let+There+Be+Rock", fake.LastRequest().URL)

	client.SearchKeyword(ctx, "heist", 3)
	assert.Equal(t, testBase+"/search/keyword?api_key=K&query=heist&page=3", fake.LastRequest().URL)

	bad := client.SearchMovie(ctx, "x", SearchMovieOptions{SearchType: SearchType(42)})
	assert.ErrorIs(t, bad.Err, ErrPrecondition)
}

func TestPaths(t *testing.T) {
	ctx := context.Background()
	fake := transporttest.New(`{}`)
	client := newTestClient(t, fake)
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		call func()
		want string
	}{
		{"alternative titles", func() { client.GetMovieAlternativeTitles(ctx, 550, "US") }, "/movie/550/alternative_titles?api_key=K&country=US"},
		{"casts", func() { client.GetMovieCasts(ctx, 550) }, "/movie/550/casts?api_key=K"},
		{"images", func() { client.GetMovieImages(ctx, 550, "en") }, "/movie/550/images?api_key=K&language=en&include_image_language=en,null"},
		{"keywords", func() { client.GetMovieKeywords(ctx, 550) }, "/movie/550/keywords?api_key=K"},
		{"releases", func() { client.GetMovieReleases(ctx, 550) }, "/movie/550/releases?api_key=K"},
		{"trailers", func() { client.GetMovieTrailers(ctx, 550, "") }, "/movie/550/trailers?api_key=K"},
		{"translations", func() { client.GetMovieTranslations(ctx, 550) }, "/movie/550/translations?api_key=K"},
		{"similar", func() { client.GetSimilarMovies(ctx, 550, PageOptions{Page: 2}) }, "/movie/550/similar_movies?api_key=K&page=2"},
		{"reviews", func() { client.GetMovieReviews(ctx, 550, PageOptions{}) }, "/movie/550/reviews?api_key=K"},
		{"movie lists", func() { client.GetMovieLists(ctx, 550, PageOptions{}) }, "/movie/550/lists?api_key=K"},
		{"movie changes", func() { client.GetMovieChanges(ctx, 550, DateRangeOptions{StartDate: since}) }, "/movie/550/changes?api_key=K&start_date=2024-03-01"},
		{"latest", func() { client.GetLatestMovie(ctx) }, "/movie/latest?api_key=K"},
		{"upcoming", func() { client.GetUpcomingMovies(ctx, PageOptions{Language: "fr"}) }, "/movie/upcoming?api_key=K&language=fr"},
		{"now playing", func() { client.GetNowPlayingMovies(ctx, PageOptions{}) }, "/movie/now_playing?api_key=K"},
		{"popular", func() { client.GetPopularMovies(ctx, PageOptions{Page: 1}) }, "/movie/popular?api_key=K&page=1"},
		{"top rated", func() { client.GetTopRatedMovies(ctx, PageOptions{}) }, "/movie/top_rated?api_key=K"},
		{"collection", func() { client.GetCollection(ctx, 10, "") }, "/collection/10?api_key=K"},
		{"collection images", func() { client.GetCollectionImages(ctx, 10, "") }, "/collection/10/images?api_key=K"},
		{"person", func() { client.GetPerson(ctx, 287, PersonOptions{Append: PersonAppendCredits}) }, "/person/287?api_key=K&append_to_response=credits"},
		{"person credits", func() { client.GetPersonCredits(ctx, 287, "") }, "/person/287/credits?api_key=K"},
		{"person images", func() { client.GetPersonImages(ctx, 287) }, "/person/287/images?api_key=K"},
		{"person changes", func() { client.GetPersonChanges(ctx, 287, DateRangeOptions{}) }, "/person/287/changes?api_key=K"},
		{"popular people", func() { client.GetPopularPeople(ctx, 0) }, "/person/popular?api_key=K"},
		{"latest person", func() { client.GetLatestPerson(ctx) }, "/person/latest?api_key=K"},
		{"list", func() { client.GetList(ctx, "L1") }, "/list/L1?api_key=K"},
		{"company", func() { client.GetCompany(ctx, 1) }, "/company/1?api_key=K"},
		{"company movies", func() { client.GetCompanyMovies(ctx, 1, PageOptions{}) }, "/company/1/movies?api_key=K"},
		{"genre movies", func() { client.GetGenreMovies(ctx, 28, GenreMovieOptions{IncludeAllMovies: Bool(true)}) }, "/genre/28/movies?api_key=K&include_all_movies=true"},
		{"keyword", func() { client.GetKeyword(ctx, 9) }, "/keyword/9?api_key=K"},
		{"keyword movies", func() { client.GetKeywordMovies(ctx, 9, PageOptions{}) }, "/keyword/9/movies?api_key=K"},
		{"search collection", func() { client.SearchCollection(ctx, "star wars", PageOptions{}) }, "/search/collection?api_key=K&query=star+wars"},
		{"search list", func() { client.SearchList(ctx, "best", SearchListOptions{}) }, "/search/list?api_key=K&query=best"},
		{"search company", func() { client.SearchCompany(ctx, "pixar", 0) }, "/search/company?api_key=K&query=pixar"},
		{"review", func() { client.GetReview(ctx, "5488c29bc3a3686f4a00004a") }, "/review/5488c29bc3a3686f4a00004a?api_key=K"},
		{"changed movies", func() { client.GetChangedMovies(ctx, DateRangeOptions{Page: 2}) }, "/movie/changes?api_key=K&page=2"},
		{"changed people", func() { client.GetChangedPeople(ctx, DateRangeOptions{EndDate: since}) }, "/person/changes?api_key=K&end_date=2024-03-01"},
		{"jobs", func() { client.GetJobs(ctx) }, "/job/list?api_key=K"},
		{"account", func() { client.GetAccount(ctx, "sess") }, "/account?api_key=K&session_id=sess"},
		{"account lists", func() { client.GetAccountLists(ctx, 42, "sess", PageOptions{}) }, "/account/42/lists?api_key=K&session_id=sess"},
		{"account rated", func() { client.GetAccountRatedMovies(ctx, 42, "sess", AccountMovieOptions{}) }, "/account/42/rated_movies?api_key=K&session_id=sess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			req := fake.LastRequest()
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, testBase+tt.want, req.URL)
		})
	}
}

func TestConfigurationEditsApplyImmediately(t *testing.T) {
	fake := transporttest.New(`{}`)
	client := newTestClient(t, fake)

	client.Config().BaseURL = "http://localhost:9000/3"
	client.Config().Params.APIKey = "key"
	client.Config().Methods.Movie = "film/{0}"

	client.GetMovie(context.Background(), 7, MovieOptions{})
	assert.Equal(t, "http://localhost:9000/3/film/7?key=K", fake.LastRequest().URL)
}

func TestCallRaw(t *testing.T) {
	fake := transporttest.New(`{"anything":true}`)
	client := newTestClient(t, fake)

	raw := client.CallRaw(context.Background(), "tv/{0}", []string{"1399"}, NewParams().Add("language", "en"))
	require.NoError(t, raw.Err)
	assert.Equal(t, `{"anything":true}`, raw.JSON)
	assert.Equal(t, testBase+"/tv/1399?api_key=K&language=en", raw.SourceURL)
}

func TestImages(t *testing.T) {
	ctx := context.Background()
	posterURL := "https://image.tmdb.org/t/p/w500/abc.jpg"
	fake := &transporttest.Fake{
		Files: map[string]string{posterURL: "ok"},
		Bytes: map[string][]byte{posterURL: []byte("jpeg")},
	}
	client := newTestClient(t, fake)

	assert.Equal(t, posterURL, client.ImageURL("w500", "/abc.jpg"))

	client.Config().UseTLS = false
	assert.Equal(t, "http://image.tmdb.org/t/p/original/abc.jpg", client.ImageURL("original", "abc.jpg"))
	client.Config().UseTLS = true

	dl := client.DownloadImage(ctx, "w500", "/abc.jpg", "poster.jpg")
	require.True(t, dl.OK())
	assert.Equal(t, "poster.jpg", dl.Value)

	data := client.GetImageBytes(ctx, "w500", "/abc.jpg")
	require.True(t, data.OK())
	assert.Equal(t, []byte("jpeg"), data.Value)

	missing := client.GetImageBytes(ctx, "w500", "/missing.jpg")
	assert.False(t, missing.OK())
	assert.Nil(t, missing.Value)
}

func TestImageTransfersByURL(t *testing.T) {
	ctx := context.Background()
	mirror := "https://mirror.example/img/w185/abc.jpg"
	fake := &transporttest.Fake{
		Files: map[string]string{mirror: "ok"},
		Bytes: map[string][]byte{mirror: []byte("jpeg")},
	}
	client := newTestClient(t, fake)

	data := client.ReadURL(ctx, mirror)
	require.True(t, data.OK())
	assert.Equal(t, []byte("jpeg"), data.Value)
	assert.Equal(t, mirror, data.SourceURL)

	dl := client.DownloadURL(ctx, mirror, "abc.jpg")
	require.True(t, dl.OK())
	assert.Equal(t, "abc.jpg", dl.Value)

	missing := client.DownloadURL(ctx, "https://mirror.example/img/w185/none.jpg", "none.jpg")
	assert.False(t, missing.OK())
	assert.Empty(t, missing.Value)
}

func TestDecodeRecoversPanics(t *testing.T) {
	client := newTestClient(t, transporttest.New(""))

	res := decode[*panicky](client, transport.RawResult{SourceURL: "u", JSON: `{"x":1}`})
	require.Error(t, res.Err)
	assert.True(t, strings.Contains(res.Err.Error(), "panic"))
	assert.Nil(t, res.Value)
}

type panicky struct{}

func (p *panicky) UnmarshalJSON([]byte) error {
	panic("boom")
}

func TestSendEncodeFailure(t *testing.T) {
	fake := transporttest.New(`{}`)
	client := newTestClient(t, fake)

	res := send[*StatusResponse](context.Background(), client, http.MethodPost, "x", nil, nil, failingBody{})
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "encode")
	assert.Empty(t, fake.Requests())
}

type failingBody struct{}

func (failingBody) MarshalJSON() ([]byte, error) {
	return nil, errors.New("cannot encode")
}

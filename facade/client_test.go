package facade

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbkit/endpoints"
	"github.com/s0up4200/tmdbkit/metrics"
	"github.com/s0up4200/tmdbkit/tmdb"
	"github.com/s0up4200/tmdbkit/transport"
	"github.com/s0up4200/tmdbkit/transport/transporttest"
)

func newTestFacade(t *testing.T, fake *transporttest.Fake, opts ...Option) *Client {
	t.Helper()
	cfg := endpoints.Defaults("K")
	api, err := tmdb.NewClient(&cfg, fake, zerolog.Nop())
	require.NoError(t, err)

	client, err := New(api, opts...)
	require.NoError(t, err)
	return client
}

// routes answers by path fragment; unmatched paths return an empty body.
func routes(m map[string]string) *transporttest.Fake {
	return &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
		for fragment, body := range m {
			if strings.Contains(req.URL, fragment) {
				return transport.RawResult{SourceURL: req.URL, JSON: body}
			}
		}
		return transport.RawResult{SourceURL: req.URL}
	}}
}

func notFound() *transporttest.Fake {
	return &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
		return transport.RawResult{
			SourceURL: req.URL,
			JSON:      `{"status_code":34,"status_message":"The resource you requested could not be found."}`,
			Err:       &transport.HTTPError{StatusCode: http.StatusNotFound, Status: "404 Not Found", URL: req.URL},
		}
	}}
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := newTestFacade(t, transporttest.New(`{}`))
		assert.Equal(t, DefaultMaxConcurrent, client.MaxConcurrent())
		assert.True(t, client.ThrowOnError())
		assert.NotNil(t, client.API())
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		cfg := endpoints.Defaults("K")
		api, err := tmdb.NewClient(&cfg, transporttest.New(`{}`), zerolog.Nop())
		require.NoError(t, err)

		for _, n := range []int{0, -1} {
			_, err := New(api, WithMaxConcurrent(n))
			assert.ErrorIs(t, err, ErrInvalidConcurrency)
		}
	})

	t.Run("nil api", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, tmdb.ErrPrecondition)
	})
}

func TestConcurrencyCap(t *testing.T) {
	const limit = 3

	fake := transporttest.New(`{"id":550}`)
	fake.Delay = 30 * time.Millisecond
	client := newTestFacade(t, fake, WithMaxConcurrent(limit))

	var wg sync.WaitGroup
	errs := make(chan error, limit+5)
	for i := 0; i < limit+5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetMovie(context.Background(), 550, tmdb.MovieOptions{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, fake.Requests(), limit+5)
	assert.LessOrEqual(t, fake.MaxActive(), limit)
	assert.Positive(t, fake.MaxActive())
}

func TestThrowOnError(t *testing.T) {
	t.Run("enabled returns api error", func(t *testing.T) {
		client := newTestFacade(t, notFound())

		movie, err := client.GetMovie(context.Background(), 1, tmdb.MovieOptions{})
		assert.Nil(t, movie)
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "GetMovie", apiErr.Op)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode())
		assert.True(t, apiErr.IsNotFound())
		assert.False(t, apiErr.IsUnauthorized())
		require.NotNil(t, apiErr.Status)
		assert.Equal(t, 34, apiErr.Status.StatusCode)
		assert.Contains(t, apiErr.Error(), "status 34")

		var httpErr *transport.HTTPError
		assert.True(t, errors.As(err, &httpErr))
	})

	t.Run("disabled returns zero value", func(t *testing.T) {
		client := newTestFacade(t, notFound(), WithThrowOnError(false))

		movie, err := client.GetMovie(context.Background(), 1, tmdb.MovieOptions{})
		assert.NoError(t, err)
		assert.Nil(t, movie)

		data, err := client.GetImageBytes(context.Background(), "w500", "/x.jpg")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("precondition ignores policy", func(t *testing.T) {
		fake := transporttest.New(`{}`)
		client := newTestFacade(t, fake, WithThrowOnError(false))

		_, err := client.DiscoverMovies(context.Background(), tmdb.DiscoverFilter{
			Genres:         []int{28},
			GenresOperator: tmdb.FilterOperator(9),
		})
		assert.ErrorIs(t, err, tmdb.ErrPrecondition)
		assert.Empty(t, fake.Requests())
	})
}

func TestCachedStateNotInitialized(t *testing.T) {
	fake := transporttest.New(`{}`)
	client := newTestFacade(t, fake, WithThrowOnError(false))
	ctx := context.Background()

	_, err := client.SessionID()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = client.AccountID()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = client.AuthenticationToken()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = client.Configuration()
	assert.ErrorIs(t, err, ErrNotInitialized)

	calls := map[string]func() error{
		"account":            func() error { _, err := client.GetAccount(ctx); return err },
		"account lists":      func() error { _, err := client.GetAccountLists(ctx, tmdb.PageOptions{}); return err },
		"favorites":          func() error { _, err := client.GetAccountFavoriteMovies(ctx, tmdb.AccountMovieOptions{}); return err },
		"rated":              func() error { _, err := client.GetAccountRatedMovies(ctx, tmdb.AccountMovieOptions{}); return err },
		"watchlist":          func() error { _, err := client.GetAccountWatchlistMovies(ctx, tmdb.AccountMovieOptions{}); return err },
		"set favorite":       func() error { _, err := client.SetFavorite(ctx, 550, true); return err },
		"set watchlist":      func() error { _, err := client.SetWatchlist(ctx, 550, true); return err },
		"account state":      func() error { _, err := client.GetMovieAccountState(ctx, 550); return err },
		"rate":               func() error { _, err := client.RateMovie(ctx, 550, 7); return err },
		"create list":        func() error { _, err := client.CreateList(ctx, "n", "d", ""); return err },
		"add item":           func() error { _, err := client.AddListItem(ctx, "L", 550); return err },
		"remove item":        func() error { _, err := client.RemoveListItem(ctx, "L", 550); return err },
		"delete list":        func() error { _, err := client.DeleteList(ctx, "L"); return err },
		"session from token": func() error { _, err := client.GetSessionWithCachedToken(ctx); return err },
	}

	for name, fn := range calls {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotInitialized)

			var nie *NotInitializedError
			require.True(t, errors.As(err, &nie))
			assert.NotEmpty(t, nie.Field)
		})
	}

	assert.Empty(t, fake.Requests())

	// a session alone is not enough for account-scoped calls
	client.SetSessionID("sess")
	_, err = client.GetAccountLists(ctx, tmdb.PageOptions{})
	var nie *NotInitializedError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, "account id", nie.Field)
}

func TestSessionFlow(t *testing.T) {
	ctx := context.Background()

	newFlowFake := func() *transporttest.Fake {
		return routes(map[string]string{
			"/authentication/token/new":   `{"success":true,"request_token":"tok"}`,
			"/authentication/session/new": `{"success":true,"session_id":"sess"}`,
			"/account/42/lists":           `{"page":1,"results":[{"id":"L1","name":"Best"}]}`,
			"/account?":                   `{"id":42,"username":"tyler"}`,
		})
	}

	t.Run("consent granted", func(t *testing.T) {
		fake := newFlowFake()
		client := newTestFacade(t, fake)

		var seen string
		session, err := client.GetSessionWithoutToken(ctx, func(_ context.Context, token *tmdb.Token) (bool, error) {
			seen = token.RequestToken
			return true, nil
		})
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "tok", seen)
		assert.Equal(t, "sess", session.SessionID)

		sessionID, err := client.SessionID()
		require.NoError(t, err)
		assert.Equal(t, "sess", sessionID)

		token, err := client.AuthenticationToken()
		require.NoError(t, err)
		assert.Equal(t, "tok", token.RequestToken)

		account, err := client.GetAccount(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tyler", account.Username)

		accountID, err := client.AccountID()
		require.NoError(t, err)
		assert.Equal(t, 42, accountID)

		lists, err := client.GetAccountLists(ctx, tmdb.PageOptions{})
		require.NoError(t, err)
		require.Len(t, lists.Results, 1)
		assert.Equal(t, "Best", lists.Results[0].Name)
		assert.Contains(t, fake.LastRequest().URL, "/account/42/lists?api_key=K&session_id=sess")

		client.ClearSession()
		_, err = client.SessionID()
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("consent refused", func(t *testing.T) {
		fake := newFlowFake()
		client := newTestFacade(t, fake)

		session, err := client.GetSessionWithoutToken(ctx, func(context.Context, *tmdb.Token) (bool, error) {
			return false, nil
		})
		assert.NoError(t, err)
		assert.Nil(t, session)
		assert.Len(t, fake.Requests(), 1)

		_, err = client.SessionID()
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("consent error", func(t *testing.T) {
		client := newTestFacade(t, newFlowFake())

		_, err := client.GetSessionWithoutToken(ctx, func(context.Context, *tmdb.Token) (bool, error) {
			return false, errors.New("browser closed")
		})
		assert.ErrorContains(t, err, "browser closed")
	})

	t.Run("nil consent", func(t *testing.T) {
		client := newTestFacade(t, newFlowFake())
		_, err := client.GetSessionWithoutToken(ctx, nil)
		assert.ErrorIs(t, err, tmdb.ErrPrecondition)
	})

	t.Run("consent holds no permit", func(t *testing.T) {
		fake := newFlowFake()
		client := newTestFacade(t, fake, WithMaxConcurrent(1))

		timeout, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		session, err := client.GetSessionWithoutToken(timeout, func(ctx context.Context, _ *tmdb.Token) (bool, error) {
			// needs the only permit
			_, err := client.GetGenres(ctx, "")
			return err == nil, err
		})
		require.NoError(t, err)
		assert.Equal(t, "sess", session.SessionID)
	})
}

func TestConfigurationCachedForImages(t *testing.T) {
	fake := routes(map[string]string{
		"/configuration": `{"images":{"base_url":"http://cdn.example/p/","secure_base_url":"https://cdn.example/p/"}}`,
	})
	client := newTestFacade(t, fake)

	assert.Equal(t, "https://image.tmdb.org/t/p/w92/a.jpg", client.ImageURL("w92", "/a.jpg"))

	cfg, err := client.GetConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/p/", cfg.Images.SecureBaseURL)

	cached, err := client.Configuration()
	require.NoError(t, err)
	assert.Same(t, cfg, cached)
	assert.Equal(t, "https://cdn.example/p/w92/a.jpg", client.ImageURL("w92", "/a.jpg"))
}

func TestImageTransfersFollowCachedConfiguration(t *testing.T) {
	ctx := context.Background()
	fake := routes(map[string]string{
		"/configuration": `{"images":{"secure_base_url":"https://cdn.example/p/"}}`,
	})
	fake.Bytes = map[string][]byte{"https://cdn.example/p/w92/a.jpg": []byte("img")}
	fake.Files = map[string]string{"https://cdn.example/p/w92/a.jpg": "ok"}
	client := newTestFacade(t, fake)

	// before the configuration is cached the built-in base is used
	_, err := client.GetImageBytes(ctx, "w92", "/a.jpg")
	require.Error(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/w92/a.jpg", fake.LastRequest().URL)

	_, err = client.GetConfiguration(ctx)
	require.NoError(t, err)

	data, err := client.GetImageBytes(ctx, "w92", "/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
	assert.Equal(t, client.ImageURL("w92", "/a.jpg"), fake.LastRequest().URL)

	path, err := client.DownloadImage(ctx, "w92", "a.jpg", "poster.jpg")
	require.NoError(t, err)
	assert.Equal(t, "poster.jpg", path)
	assert.Equal(t, "https://cdn.example/p/w92/a.jpg", fake.LastRequest().URL)
}

func TestGetMovies(t *testing.T) {
	fake := &transporttest.Fake{Handler: func(req transport.Request) transport.RawResult {
		id := strings.TrimPrefix(strings.SplitN(req.URL, "?", 2)[0], "https://api.themoviedb.org/3/movie/")
		return transport.RawResult{JSON: `{"id":` + id + `}`}
	}}
	client := newTestFacade(t, fake, WithMaxConcurrent(2))

	movies, err := client.GetMovies(context.Background(), []int{550, 13, 680}, tmdb.MovieOptions{})
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, 550, movies[0].ID)
	assert.Equal(t, 13, movies[1].ID)
	assert.Equal(t, 680, movies[2].ID)

	empty, err := client.GetMovies(context.Background(), nil, tmdb.MovieOptions{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	failing := newTestFacade(t, notFound())
	_, err = failing.GetMovies(context.Background(), []int{1, 2}, tmdb.MovieOptions{})
	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
}

type panickingAPI struct {
	tmdb.API
}

func (panickingAPI) GetJobs(context.Context) tmdb.Result[*tmdb.JobList] {
	panic("boom")
}

func TestPermitReleasedOnPanic(t *testing.T) {
	client, err := New(panickingAPI{}, WithMaxConcurrent(1))
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = client.GetJobs(context.Background())
	})

	require.True(t, client.sem.TryAcquire(1))
	client.sem.Release(1)
}

func TestPermitWaitHonoursContext(t *testing.T) {
	fake := transporttest.New(`{}`)
	client := newTestFacade(t, fake, WithMaxConcurrent(1))

	require.True(t, client.sem.TryAcquire(1))
	defer client.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetJobs(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.Requests())
}

func TestMetrics(t *testing.T) {
	collector := metrics.NewCollector(prometheus.NewRegistry())

	ok := newTestFacade(t, transporttest.New(`{"jobs":[]}`), WithMetrics(collector))
	_, err := ok.GetJobs(context.Background())
	require.NoError(t, err)

	failing := newTestFacade(t, notFound(), WithMetrics(collector), WithThrowOnError(false))
	_, err = failing.GetJobs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Calls.WithLabelValues("GetJobs", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Calls.WithLabelValues("GetJobs", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.InFlight))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.Waiting))
}

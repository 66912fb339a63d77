package tmdb

import (
	"context"
)

// API defines the interface for TMDb operations
type API interface {
	// Configuration and authentication
	GetConfiguration(ctx context.Context) Result[*Configuration]
	GetAuthenticationToken(ctx context.Context) Result[*Token]
	GetSession(ctx context.Context, requestToken string) Result[*Session]
	GetGuestSession(ctx context.Context) Result[*GuestSession]

	// Account
	GetAccount(ctx context.Context, sessionID string) Result[*Account]
	GetAccountLists(ctx context.Context, accountID int, sessionID string, opts PageOptions) Result[*SearchContainer[List]]
	GetAccountFavoriteMovies(ctx context.Context, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]]
	GetAccountRatedMovies(ctx context.Context, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]]
	GetAccountWatchlistMovies(ctx context.Context, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]]
	SetAccountFavorite(ctx context.Context, accountID int, sessionID string, movieID int, favorite bool) Result[*StatusResponse]
	SetAccountWatchlist(ctx context.Context, accountID int, sessionID string, movieID int, watchlist bool) Result[*StatusResponse]

	// Movies
	GetMovie(ctx context.Context, id int, opts MovieOptions) Result[*Movie]
	GetMovieByIMDbID(ctx context.Context, imdbID string, opts MovieOptions) Result[*Movie]
	GetMovieAlternativeTitles(ctx context.Context, id int, country string) Result[*AlternativeTitles]
	GetMovieCasts(ctx context.Context, id int) Result[*Casts]
	GetMovieImages(ctx context.Context, id int, language string) Result[*Images]
	GetMovieKeywords(ctx context.Context, id int) Result[*Keywords]
	GetMovieReleases(ctx context.Context, id int) Result[*Releases]
	GetMovieTrailers(ctx context.Context, id int, language string) Result[*Trailers]
	GetMovieTranslations(ctx context.Context, id int) Result[*Translations]
	GetSimilarMovies(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[MovieResult]]
	GetMovieReviews(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[Review]]
	GetMovieLists(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[List]]
	GetMovieChanges(ctx context.Context, id int, opts DateRangeOptions) Result[*Changes]
	GetLatestMovie(ctx context.Context) Result[*Movie]
	GetUpcomingMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]]
	GetNowPlayingMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]]
	GetPopularMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]]
	GetTopRatedMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]]
	GetMovieAccountState(ctx context.Context, id int, sessionID string) Result[*AccountState]
	SetMovieRating(ctx context.Context, id int, sessionID string, value float64) Result[*StatusResponse]
	SetMovieRatingAsGuest(ctx context.Context, id int, guestSessionID string, value float64) Result[*StatusResponse]

	// Collections
	GetCollection(ctx context.Context, id int, language string) Result[*Collection]
	GetCollectionImages(ctx context.Context, id int, language string) Result[*Images]

	// People
	GetPerson(ctx context.Context, id int, opts PersonOptions) Result[*Person]
	GetPersonCredits(ctx context.Context, id int, language string) Result[*PersonCredits]
	GetPersonImages(ctx context.Context, id int) Result[*ProfileImages]
	GetPersonChanges(ctx context.Context, id int, opts DateRangeOptions) Result[*Changes]
	GetPopularPeople(ctx context.Context, page int) Result[*SearchContainer[PersonResult]]
	GetLatestPerson(ctx context.Context) Result[*Person]

	// Lists
	GetList(ctx context.Context, listID string) Result[*List]
	GetListItemStatus(ctx context.Context, listID string, movieID int) Result[*ListItemStatus]
	CreateList(ctx context.Context, sessionID, name, description, language string) Result[*ListCreated]
	AddListItem(ctx context.Context, sessionID, listID string, movieID int) Result[*StatusResponse]
	RemoveListItem(ctx context.Context, sessionID, listID string, movieID int) Result[*StatusResponse]
	DeleteList(ctx context.Context, sessionID, listID string) Result[*StatusResponse]

	// Companies, genres and keywords
	GetCompany(ctx context.Context, id int) Result[*Company]
	GetCompanyMovies(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[MovieResult]]
	GetGenres(ctx context.Context, language string) Result[*GenreList]
	GetGenreMovies(ctx context.Context, id int, opts GenreMovieOptions) Result[*SearchContainer[MovieResult]]
	GetKeyword(ctx context.Context, id int) Result[*Keyword]
	GetKeywordMovies(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[MovieResult]]

	// Discovery and search
	DiscoverMovies(ctx context.Context, f DiscoverFilter) Result[*SearchContainer[MovieResult]]
	SearchMovie(ctx context.Context, query string, opts SearchMovieOptions) Result[*SearchContainer[MovieResult]]
	SearchCollection(ctx context.Context, query string, opts PageOptions) Result[*SearchContainer[CollectionSummary]]
	SearchPerson(ctx context.Context, query string, opts SearchPersonOptions) Result[*SearchContainer[PersonResult]]
	SearchList(ctx context.Context, query string, opts SearchListOptions) Result[*SearchContainer[List]]
	SearchCompany(ctx context.Context, query string, page int) Result[*SearchContainer[CompanySummary]]
	SearchKeyword(ctx context.Context, query string, page int) Result[*SearchContainer[Keyword]]

	// Reviews, changes and jobs
	GetReview(ctx context.Context, id string) Result[*Review]
	GetChangedMovies(ctx context.Context, opts DateRangeOptions) Result[*SearchContainer[ChangedItem]]
	GetChangedPeople(ctx context.Context, opts DateRangeOptions) Result[*SearchContainer[ChangedItem]]
	GetJobs(ctx context.Context) Result[*JobList]

	// Images
	ImageURL(size, filePath string) string
	DownloadImage(ctx context.Context, size, filePath, fileName string) Result[string]
	GetImageBytes(ctx context.Context, size, filePath string) Result[[]byte]
	DownloadURL(ctx context.Context, url, fileName string) Result[string]
	ReadURL(ctx context.Context, url string) Result[[]byte]

	// CallRaw issues a GET against an arbitrary path template
	CallRaw(ctx context.Context, template string, args []string, params *Params) RawResult
}

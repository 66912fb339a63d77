package endpoints

// DefaultBaseURL is the TMDb v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Defaults returns a Config populated with the current TMDb v3 wire values.
func Defaults(apiKey string) Config {
	var cfg Config
	cfg.RestoreDefaults(apiKey)
	return cfg
}

// RestoreDefaults overwrites every field with its default value. The API key
// is only replaced when a non-empty one is given.
func (c *Config) RestoreDefaults(apiKey string) {
	key := c.APIKey
	if apiKey != "" {
		key = apiKey
	}

	*c = Config{
		BaseURL: DefaultBaseURL,
		APIKey:  key,
		UseTLS:  true,
		Methods: Methods{
			Configuration: "configuration",

			AuthenticationTokenNew:        "authentication/token/new",
			AuthenticationSessionNew:      "authentication/session/new",
			AuthenticationGuestSessionNew: "authentication/guest_session/new",

			Account:                "account",
			AccountLists:           "account/{0}/lists",
			AccountFavoriteMovies:  "account/{0}/favorite_movies",
			AccountFavorite:        "account/{0}/favorite",
			AccountRatedMovies:     "account/{0}/rated_movies",
			AccountWatchlistMovies: "account/{0}/movie_watchlist",
			AccountWatchlist:       "account/{0}/movie_watchlist",

			Movie:                  "movie/{0}",
			MovieAlternativeTitles: "movie/{0}/alternative_titles",
			MovieCasts:             "movie/{0}/casts",
			MovieImages:            "movie/{0}/images",
			MovieKeywords:          "movie/{0}/keywords",
			MovieReleases:          "movie/{0}/releases",
			MovieTrailers:          "movie/{0}/trailers",
			MovieTranslations:      "movie/{0}/translations",
			MovieSimilar:           "movie/{0}/similar_movies",
			MovieReviews:           "movie/{0}/reviews",
			MovieLists:             "movie/{0}/lists",
			MovieChanges:           "movie/{0}/changes",
			MovieLatest:            "movie/latest",
			MovieUpcoming:          "movie/upcoming",
			MovieNowPlaying:        "movie/now_playing",
			MoviePopular:           "movie/popular",
			MovieTopRated:          "movie/top_rated",
			MovieAccountStates:     "movie/{0}/account_states",
			MovieRating:            "movie/{0}/rating",

			Collection:       "collection/{0}",
			CollectionImages: "collection/{0}/images",

			Person:        "person/{0}",
			PersonCredits: "person/{0}/credits",
			PersonImages:  "person/{0}/images",
			PersonChanges: "person/{0}/changes",
			PersonPopular: "person/popular",
			PersonLatest:  "person/latest",

			List:           "list/{0}",
			ListItemStatus: "list/{0}/item_status",
			ListCreate:     "list",
			ListAddItem:    "list/{0}/add_item",
			ListRemoveItem: "list/{0}/remove_item",
			ListDelete:     "list/{0}",

			Company:       "company/{0}",
			CompanyMovies: "company/{0}/movies",

			GenreList:   "genre/list",
			GenreMovies: "genre/{0}/movies",

			Keyword:       "keyword/{0}",
			KeywordMovies: "keyword/{0}/movies",

			Discover: "discover/movie",

			SearchMovie:      "search/movie",
			SearchCollection: "search/collection",
			SearchPerson:     "search/person",
			SearchList:       "search/list",
			SearchCompany:    "search/company",
			SearchKeyword:    "search/keyword",

			Review: "review/{0}",

			ChangesMovies: "movie/changes",
			ChangesPeople: "person/changes",

			Jobs: "job/list",

			ImageBaseURL:       "http://image.tmdb.org/t/p/",
			SecureImageBaseURL: "https://image.tmdb.org/t/p/",
		},
		Params: Params{
			APIKey:               "api_key",
			Page:                 "page",
			Language:             "language",
			AppendToResponse:     "append_to_response",
			SessionID:            "session_id",
			GuestSessionID:       "guest_session_id",
			RequestToken:         "request_token",
			Query:                "query",
			IncludeAdult:         "include_adult",
			Year:                 "year",
			PrimaryReleaseYear:   "primary_release_year",
			SearchType:           "search_type",
			StartDate:            "start_date",
			EndDate:              "end_date",
			IncludeImageLanguage: "include_image_language",
			Country:              "country",
			MovieID:              "movie_id",
			IncludeAllMovies:     "include_all_movies",
			SortBy:               "sort_by",
			SortOrder:            "sort_order",
			VoteCountGte:         "vote_count.gte",
			VoteAverageGte:       "vote_average.gte",
			ReleaseDateGte:       "release_date.gte",
			ReleaseDateLte:       "release_date.lte",
			CertificationCountry: "certification_country",
			CertificationLte:     "certification.lte",
			WithCompanies:        "with_companies",
			WithGenres:           "with_genres",
		},
		Values: Values{
			AppendAlternativeTitles: "alternative_titles",
			AppendCasts:             "casts",
			AppendImages:            "images",
			AppendKeywords:          "keywords",
			AppendReleases:          "releases",
			AppendTrailers:          "trailers",
			AppendTranslations:      "translations",
			AppendSimilarMovies:     "similar_movies",
			AppendReviews:           "reviews",
			AppendLists:             "lists",
			AppendChanges:           "changes",

			PersonAppendCredits: "credits",
			PersonAppendImages:  "images",
			PersonAppendChanges: "changes",

			AppendSeparator: ",",
			AndSeparator:    ",",
			OrSeparator:     "|",
			SortSeparator:   ".",

			SortOrderAsc:  "asc",
			SortOrderDesc: "desc",

			SortByPopularity:  "popularity",
			SortByReleaseDate: "release_date",
			SortByVoteAverage: "vote_average",
			SortByCreatedAt:   "created_at",

			SearchTypePhrase: "phrase",
			SearchTypeNgram:  "ngram",

			MediaTypeMovie: "movie",

			True:  "true",
			False: "false",
		},
	}
}

package endpoints

// Config maps every logical operation and parameter name used by the tmdb
// client to its wire value. It is populated once at startup and shared by all
// calls afterwards.
type Config struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	UseTLS  bool   `yaml:"use_tls"`

	Methods Methods `yaml:"methods"`
	Params  Params  `yaml:"params"`
	Values  Values  `yaml:"values"`
}

// Methods holds path templates. Positional placeholders are written {0}, {1}.
type Methods struct {
	Configuration string `yaml:"configuration"`

	AuthenticationTokenNew        string `yaml:"authentication_token_new"`
	AuthenticationSessionNew      string `yaml:"authentication_session_new"`
	AuthenticationGuestSessionNew string `yaml:"authentication_guest_session_new"`

	Account                string `yaml:"account"`
	AccountLists           string `yaml:"account_lists"`
	AccountFavoriteMovies  string `yaml:"account_favorite_movies"`
	AccountFavorite        string `yaml:"account_favorite"`
	AccountRatedMovies     string `yaml:"account_rated_movies"`
	AccountWatchlistMovies string `yaml:"account_watchlist_movies"`
	AccountWatchlist       string `yaml:"account_watchlist"`

	Movie                  string `yaml:"movie"`
	MovieAlternativeTitles string `yaml:"movie_alternative_titles"`
	MovieCasts             string `yaml:"movie_casts"`
	MovieImages            string `yaml:"movie_images"`
	MovieKeywords          string `yaml:"movie_keywords"`
	MovieReleases          string `yaml:"movie_releases"`
	MovieTrailers          string `yaml:"movie_trailers"`
	MovieTranslations      string `yaml:"movie_translations"`
	MovieSimilar           string `yaml:"movie_similar"`
	MovieReviews           string `yaml:"movie_reviews"`
	MovieLists             string `yaml:"movie_lists"`
	MovieChanges           string `yaml:"movie_changes"`
	MovieLatest            string `yaml:"movie_latest"`
	MovieUpcoming          string `yaml:"movie_upcoming"`
	MovieNowPlaying        string `yaml:"movie_now_playing"`
	MoviePopular           string `yaml:"movie_popular"`
	MovieTopRated          string `yaml:"movie_top_rated"`
	MovieAccountStates     string `yaml:"movie_account_states"`
	MovieRating            string `yaml:"movie_rating"`

	Collection       string `yaml:"collection"`
	CollectionImages string `yaml:"collection_images"`

	Person        string `yaml:"person"`
	PersonCredits string `yaml:"person_credits"`
	PersonImages  string `yaml:"person_images"`
	PersonChanges string `yaml:"person_changes"`
	PersonPopular string `yaml:"person_popular"`
	PersonLatest  string `yaml:"person_latest"`

	List           string `yaml:"list"`
	ListItemStatus string `yaml:"list_item_status"`
	ListCreate     string `yaml:"list_create"`
	ListAddItem    string `yaml:"list_add_item"`
	ListRemoveItem string `yaml:"list_remove_item"`
	ListDelete     string `yaml:"list_delete"`

	Company       string `yaml:"company"`
	CompanyMovies string `yaml:"company_movies"`

	GenreList   string `yaml:"genre_list"`
	GenreMovies string `yaml:"genre_movies"`

	Keyword       string `yaml:"keyword"`
	KeywordMovies string `yaml:"keyword_movies"`

	Discover string `yaml:"discover"`

	SearchMovie      string `yaml:"search_movie"`
	SearchCollection string `yaml:"search_collection"`
	SearchPerson     string `yaml:"search_person"`
	SearchList       string `yaml:"search_list"`
	SearchCompany    string `yaml:"search_company"`
	SearchKeyword    string `yaml:"search_keyword"`

	Review string `yaml:"review"`

	ChangesMovies string `yaml:"changes_movies"`
	ChangesPeople string `yaml:"changes_people"`

	Jobs string `yaml:"jobs"`

	ImageBaseURL       string `yaml:"image_base_url"`
	SecureImageBaseURL string `yaml:"secure_image_base_url"`
}

// Params holds query-parameter names.
type Params struct {
	APIKey               string `yaml:"api_key"`
	Page                 string `yaml:"page"`
	Language             string `yaml:"language"`
	AppendToResponse     string `yaml:"append_to_response"`
	SessionID            string `yaml:"session_id"`
	GuestSessionID       string `yaml:"guest_session_id"`
	RequestToken         string `yaml:"request_token"`
	Query                string `yaml:"query"`
	IncludeAdult         string `yaml:"include_adult"`
	Year                 string `yaml:"year"`
	PrimaryReleaseYear   string `yaml:"primary_release_year"`
	SearchType           string `yaml:"search_type"`
	StartDate            string `yaml:"start_date"`
	EndDate              string `yaml:"end_date"`
	IncludeImageLanguage string `yaml:"include_image_language"`
	Country              string `yaml:"country"`
	MovieID              string `yaml:"movie_id"`
	IncludeAllMovies     string `yaml:"include_all_movies"`
	SortBy               string `yaml:"sort_by"`
	SortOrder            string `yaml:"sort_order"`
	VoteCountGte         string `yaml:"vote_count_gte"`
	VoteAverageGte       string `yaml:"vote_average_gte"`
	ReleaseDateGte       string `yaml:"release_date_gte"`
	ReleaseDateLte       string `yaml:"release_date_lte"`
	CertificationCountry string `yaml:"certification_country"`
	CertificationLte     string `yaml:"certification_lte"`
	WithCompanies        string `yaml:"with_companies"`
	WithGenres           string `yaml:"with_genres"`
}

// Values holds enum wire values and separators.
type Values struct {
	AppendAlternativeTitles string `yaml:"append_alternative_titles"`
	AppendCasts             string `yaml:"append_casts"`
	AppendImages            string `yaml:"append_images"`
	AppendKeywords          string `yaml:"append_keywords"`
	AppendReleases          string `yaml:"append_releases"`
	AppendTrailers          string `yaml:"append_trailers"`
	AppendTranslations      string `yaml:"append_translations"`
	AppendSimilarMovies     string `yaml:"append_similar_movies"`
	AppendReviews           string `yaml:"append_reviews"`
	AppendLists             string `yaml:"append_lists"`
	AppendChanges           string `yaml:"append_changes"`

	PersonAppendCredits string `yaml:"person_append_credits"`
	PersonAppendImages  string `yaml:"person_append_images"`
	PersonAppendChanges string `yaml:"person_append_changes"`

	AppendSeparator string `yaml:"append_separator"`
	AndSeparator    string `yaml:"and_separator"`
	OrSeparator     string `yaml:"or_separator"`
	SortSeparator   string `yaml:"sort_separator"`

	SortOrderAsc  string `yaml:"sort_order_asc"`
	SortOrderDesc string `yaml:"sort_order_desc"`

	SortByPopularity  string `yaml:"sort_by_popularity"`
	SortByReleaseDate string `yaml:"sort_by_release_date"`
	SortByVoteAverage string `yaml:"sort_by_vote_average"`
	SortByCreatedAt   string `yaml:"sort_by_created_at"`

	SearchTypePhrase string `yaml:"search_type_phrase"`
	SearchTypeNgram  string `yaml:"search_type_ngram"`

	MediaTypeMovie string `yaml:"media_type_movie"`

	True  string `yaml:"bool_true"`
	False string `yaml:"bool_false"`
}

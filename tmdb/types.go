package tmdb

// Configuration is the API's system configuration.
type Configuration struct {
	Images     ImagesConfiguration `json:"images"`
	ChangeKeys []string            `json:"change_keys"`
}

// ImagesConfiguration describes where images live and which sizes exist.
type ImagesConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// Token is a request token awaiting user approval.
type Token struct {
	Success      bool   `json:"success"`
	RequestToken string `json:"request_token"`
	ExpiresAt    string `json:"expires_at"`
}

// Session is an authenticated user session.
type Session struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// GuestSession is an anonymous session that may rate movies.
type GuestSession struct {
	Success        bool   `json:"success"`
	GuestSessionID string `json:"guest_session_id"`
	ExpiresAt      string `json:"expires_at"`
}

// Account is the profile behind a session.
type Account struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	IncludeAdult bool   `json:"include_adult"`
	ISO639_1     string `json:"iso_639_1"`
	ISO3166_1    string `json:"iso_3166_1"`
}

// SearchContainer is the paged envelope used by every listing endpoint.
type SearchContainer[T any] struct {
	ID           int       `json:"id,omitempty"`
	Page         int       `json:"page"`
	Results      []T       `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
	Dates        *DateSpan `json:"dates,omitempty"`
}

// DateSpan bounds upcoming and now-playing listings.
type DateSpan struct {
	Minimum string `json:"minimum"`
	Maximum string `json:"maximum"`
}

// MovieResult is the summary form of a movie in listings.
type MovieResult struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	GenreIDs         []int   `json:"genre_ids"`
	// Rating is set only in an account's rated listing
	Rating float64 `json:"rating,omitempty"`
}

// Movie is the full movie record. The pointer fields are filled only when
// requested through MovieAppend.
type Movie struct {
	ID                  int                `json:"id"`
	IMDbID              string             `json:"imdb_id"`
	Title               string             `json:"title"`
	OriginalTitle       string             `json:"original_title"`
	OriginalLanguage    string             `json:"original_language"`
	Tagline             string             `json:"tagline"`
	Overview            string             `json:"overview"`
	Status              string             `json:"status"`
	Homepage            string             `json:"homepage"`
	ReleaseDate         string             `json:"release_date"`
	PosterPath          string             `json:"poster_path"`
	BackdropPath        string             `json:"backdrop_path"`
	Adult               bool               `json:"adult"`
	Video               bool               `json:"video"`
	Budget              int64              `json:"budget"`
	Revenue             int64              `json:"revenue"`
	Runtime             int                `json:"runtime"`
	Popularity          float64            `json:"popularity"`
	VoteAverage         float64            `json:"vote_average"`
	VoteCount           int                `json:"vote_count"`
	Genres              []Genre            `json:"genres"`
	ProductionCompanies []CompanySummary   `json:"production_companies"`
	ProductionCountries []Country          `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage   `json:"spoken_languages"`
	BelongsToCollection *CollectionSummary `json:"belongs_to_collection"`

	AlternativeTitles *AlternativeTitles            `json:"alternative_titles,omitempty"`
	Casts             *Casts                        `json:"casts,omitempty"`
	Images            *Images                       `json:"images,omitempty"`
	Keywords          *Keywords                     `json:"keywords,omitempty"`
	Releases          *Releases                     `json:"releases,omitempty"`
	Trailers          *Trailers                     `json:"trailers,omitempty"`
	Translations      *Translations                 `json:"translations,omitempty"`
	SimilarMovies     *SearchContainer[MovieResult] `json:"similar_movies,omitempty"`
	Reviews           *SearchContainer[Review]      `json:"reviews,omitempty"`
	Lists             *SearchContainer[List]        `json:"lists,omitempty"`
	Changes           *Changes                      `json:"changes,omitempty"`
}

// Summary returns the listing form of the movie.
func (m *Movie) Summary() MovieResult {
	ids := make([]int, len(m.Genres))
	for i, g := range m.Genres {
		ids[i] = g.ID
	}
	return MovieResult{
		ID:               m.ID,
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		OriginalLanguage: m.OriginalLanguage,
		Overview:         m.Overview,
		ReleaseDate:      m.ReleaseDate,
		PosterPath:       m.PosterPath,
		BackdropPath:     m.BackdropPath,
		Adult:            m.Adult,
		Video:            m.Video,
		Popularity:       m.Popularity,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		GenreIDs:         ids,
	}
}

// Genre is a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the response of the genre listing.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Country is an ISO 3166-1 country.
type Country struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// SpokenLanguage is an ISO 639-1 language.
type SpokenLanguage struct {
	ISO639_1 string `json:"iso_639_1"`
	Name     string `json:"name"`
}

// AlternativeTitles lists a movie's titles in other markets.
type AlternativeTitles struct {
	ID     int                `json:"id,omitempty"`
	Titles []AlternativeTitle `json:"titles"`
}

// AlternativeTitle is one market's title.
type AlternativeTitle struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Title     string `json:"title"`
}

// Casts holds a movie's cast and crew.
type Casts struct {
	ID   int          `json:"id,omitempty"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is an actor credited on a movie.
type CastMember struct {
	ID          int    `json:"id"`
	CastID      int    `json:"cast_id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is a crew credit on a movie.
type CrewMember struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// Images lists the backdrops and posters of a movie or collection.
type Images struct {
	ID        int         `json:"id,omitempty"`
	Backdrops []ImageData `json:"backdrops"`
	Posters   []ImageData `json:"posters"`
}

// ProfileImages lists the profile pictures of a person.
type ProfileImages struct {
	ID       int         `json:"id,omitempty"`
	Profiles []ImageData `json:"profiles"`
}

// ImageData describes a single image.
type ImageData struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	ISO639_1    string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// Keywords lists a movie's keywords.
type Keywords struct {
	ID       int       `json:"id,omitempty"`
	Keywords []Keyword `json:"keywords"`
}

// Keyword is a tag attached to movies.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Releases lists a movie's per-country releases.
type Releases struct {
	ID        int              `json:"id,omitempty"`
	Countries []ReleaseCountry `json:"countries"`
}

// ReleaseCountry is a release in one country.
type ReleaseCountry struct {
	ISO3166_1     string `json:"iso_3166_1"`
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Primary       bool   `json:"primary"`
}

// Trailers lists a movie's trailers by host.
type Trailers struct {
	ID        int       `json:"id,omitempty"`
	QuickTime []Trailer `json:"quicktime"`
	YouTube   []Trailer `json:"youtube"`
}

// Trailer is a single trailer.
type Trailer struct {
	Name   string `json:"name"`
	Size   string `json:"size"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

// Translations lists the languages a movie is translated into.
type Translations struct {
	ID           int           `json:"id,omitempty"`
	Translations []Translation `json:"translations"`
}

// Translation is a single translation.
type Translation struct {
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// Review is a user review.
type Review struct {
	ID         string `json:"id"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	URL        string `json:"url"`
	ISO639_1   string `json:"iso_639_1,omitempty"`
	MediaID    int    `json:"media_id,omitempty"`
	MediaTitle string `json:"media_title,omitempty"`
	MediaType  string `json:"media_type,omitempty"`
}

// List is a user-curated movie list.
type List struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	CreatedBy     string        `json:"created_by,omitempty"`
	PosterPath    string        `json:"poster_path"`
	ISO639_1      string        `json:"iso_639_1"`
	ListType      string        `json:"list_type,omitempty"`
	FavoriteCount int           `json:"favorite_count"`
	ItemCount     int           `json:"item_count"`
	Items         []MovieResult `json:"items,omitempty"`
}

// ListItemStatus reports whether a movie is on a list.
type ListItemStatus struct {
	ID          string `json:"id"`
	ItemPresent bool   `json:"item_present"`
}

// ListCreated is the response to list creation.
type ListCreated struct {
	StatusResponse
	ListID string `json:"list_id"`
}

// Changes groups changed fields by key.
type Changes struct {
	Changes []Change `json:"changes"`
}

// Change is the history of one field.
type Change struct {
	Key   string       `json:"key"`
	Items []ChangeItem `json:"items"`
}

// ChangeItem is one edit of a field. Value depends on the field.
type ChangeItem struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	Time     string `json:"time"`
	ISO639_1 string `json:"iso_639_1,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// ChangedItem is an entry in the global change listings.
type ChangedItem struct {
	ID    int   `json:"id"`
	Adult *bool `json:"adult,omitempty"`
}

// AccountState is the session user's state for a movie.
type AccountState struct {
	ID        int        `json:"id"`
	Favorite  bool       `json:"favorite"`
	Rated     RatedValue `json:"rated"`
	Watchlist bool       `json:"watchlist"`
}

// CollectionSummary is the short form of a collection.
type CollectionSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// Collection is a group of related movies.
type Collection struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Overview     string        `json:"overview"`
	PosterPath   string        `json:"poster_path"`
	BackdropPath string        `json:"backdrop_path"`
	Parts        []MovieResult `json:"parts"`
}

// Person is the full person record. The pointer fields are filled only when
// requested through PersonAppend.
type Person struct {
	ID                 int      `json:"id"`
	IMDbID             string   `json:"imdb_id"`
	Name               string   `json:"name"`
	Biography          string   `json:"biography"`
	Birthday           string   `json:"birthday"`
	Deathday           string   `json:"deathday"`
	PlaceOfBirth       string   `json:"place_of_birth"`
	ProfilePath        string   `json:"profile_path"`
	Homepage           string   `json:"homepage"`
	KnownForDepartment string   `json:"known_for_department"`
	Adult              bool     `json:"adult"`
	Popularity         float64  `json:"popularity"`
	AlsoKnownAs        []string `json:"also_known_as"`

	Credits *PersonCredits `json:"credits,omitempty"`
	Images            *ProfileImages                `json:"images,omitempty"`
	Changes           *Changes                      `json:"changes,omitempty"`
}

// PersonResult is the summary form of a person in listings.
type PersonResult struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	ProfilePath string        `json:"profile_path"`
	Adult       bool          `json:"adult"`
	Popularity  float64       `json:"popularity"`
	KnownFor    []MovieResult `json:"known_for"`
}

// PersonCredits holds a person's movie credits.
type PersonCredits struct {
	ID   int          `json:"id,omitempty"`
	Cast []PersonCast `json:"cast"`
	Crew []PersonCrew `json:"crew"`
}

// PersonCast is an acting credit.
type PersonCast struct {
	ID            int    `json:"id"`
	CreditID      string `json:"credit_id"`
	Character     string `json:"character"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	PosterPath    string `json:"poster_path"`
	Adult         bool   `json:"adult"`
}

// PersonCrew is a crew credit.
type PersonCrew struct {
	ID            int    `json:"id"`
	CreditID      string `json:"credit_id"`
	Department    string `json:"department"`
	Job           string `json:"job"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	PosterPath    string `json:"poster_path"`
	Adult         bool   `json:"adult"`
}

// CompanySummary is the short form of a production company.
type CompanySummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country,omitempty"`
}

// Company is a production company.
type Company struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Headquarters  string          `json:"headquarters"`
	Homepage      string          `json:"homepage"`
	LogoPath      string          `json:"logo_path"`
	OriginCountry string          `json:"origin_country"`
	ParentCompany *CompanySummary `json:"parent_company"`
}

// JobList is the catalogue of crew departments and jobs.
type JobList struct {
	Jobs []Department `json:"jobs"`
}

// Department lists the jobs in one crew department.
type Department struct {
	Department string   `json:"department"`
	JobList    []string `json:"job_list"`
}

package facade

import (
	"context"
	"strings"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// GetPerson returns a person with the extra data selected in opts.
func (c *Client) GetPerson(ctx context.Context, id int, opts tmdb.PersonOptions) (*tmdb.Person, error) {
	return call(ctx, c, "GetPerson", func(ctx context.Context) tmdb.Result[*tmdb.Person] {
		return c.api.GetPerson(ctx, id, opts)
	})
}

// GetPersonCredits returns a person's movie credits.
func (c *Client) GetPersonCredits(ctx context.Context, id int, language string) (*tmdb.PersonCredits, error) {
	return call(ctx, c, "GetPersonCredits", func(ctx context.Context) tmdb.Result[*tmdb.PersonCredits] {
		return c.api.GetPersonCredits(ctx, id, language)
	})
}

// GetPersonImages returns a person's profile images.
func (c *Client) GetPersonImages(ctx context.Context, id int) (*tmdb.ProfileImages, error) {
	return call(ctx, c, "GetPersonImages", func(ctx context.Context) tmdb.Result[*tmdb.ProfileImages] {
		return c.api.GetPersonImages(ctx, id)
	})
}

// GetPersonChanges returns a person's edit history.
func (c *Client) GetPersonChanges(ctx context.Context, id int, opts tmdb.DateRangeOptions) (*tmdb.Changes, error) {
	return call(ctx, c, "GetPersonChanges", func(ctx context.Context) tmdb.Result[*tmdb.Changes] {
		return c.api.GetPersonChanges(ctx, id, opts)
	})
}

// GetPopularPeople returns the current popular people.
func (c *Client) GetPopularPeople(ctx context.Context, page int) (*tmdb.SearchContainer[tmdb.PersonResult], error) {
	return call(ctx, c, "GetPopularPeople", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.PersonResult]] {
		return c.api.GetPopularPeople(ctx, page)
	})
}

// GetLatestPerson returns the most recently added person.
func (c *Client) GetLatestPerson(ctx context.Context) (*tmdb.Person, error) {
	return call(ctx, c, "GetLatestPerson", c.api.GetLatestPerson)
}

// GetList returns a list and its items.
func (c *Client) GetList(ctx context.Context, listID string) (*tmdb.List, error) {
	return call(ctx, c, "GetList", func(ctx context.Context) tmdb.Result[*tmdb.List] {
		return c.api.GetList(ctx, listID)
	})
}

// GetListItemStatus reports whether a movie is on a list.
func (c *Client) GetListItemStatus(ctx context.Context, listID string, movieID int) (*tmdb.ListItemStatus, error) {
	return call(ctx, c, "GetListItemStatus", func(ctx context.Context) tmdb.Result[*tmdb.ListItemStatus] {
		return c.api.GetListItemStatus(ctx, listID, movieID)
	})
}

// GetCompany returns a production company.
func (c *Client) GetCompany(ctx context.Context, id int) (*tmdb.Company, error) {
	return call(ctx, c, "GetCompany", func(ctx context.Context) tmdb.Result[*tmdb.Company] {
		return c.api.GetCompany(ctx, id)
	})
}

// GetCompanyMovies returns the movies a company produced.
func (c *Client) GetCompanyMovies(ctx context.Context, id int, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetCompanyMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetCompanyMovies(ctx, id, opts)
	})
}

// GetGenres returns the genre list.
func (c *Client) GetGenres(ctx context.Context, language string) (*tmdb.GenreList, error) {
	return call(ctx, c, "GetGenres", func(ctx context.Context) tmdb.Result[*tmdb.GenreList] {
		return c.api.GetGenres(ctx, language)
	})
}

// GetGenreMovies returns the movies in a genre.
func (c *Client) GetGenreMovies(ctx context.Context, id int, opts tmdb.GenreMovieOptions) (*movieList, error) {
	return call(ctx, c, "GetGenreMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetGenreMovies(ctx, id, opts)
	})
}

// GetKeyword returns a keyword.
func (c *Client) GetKeyword(ctx context.Context, id int) (*tmdb.Keyword, error) {
	return call(ctx, c, "GetKeyword", func(ctx context.Context) tmdb.Result[*tmdb.Keyword] {
		return c.api.GetKeyword(ctx, id)
	})
}

// GetKeywordMovies returns the movies tagged with a keyword.
func (c *Client) GetKeywordMovies(ctx context.Context, id int, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetKeywordMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetKeywordMovies(ctx, id, opts)
	})
}

// DiscoverMovies returns movies matching f. A filter value with no wire
// mapping is returned as a precondition error whatever the policy.
func (c *Client) DiscoverMovies(ctx context.Context, f tmdb.DiscoverFilter) (*movieList, error) {
	return call(ctx, c, "DiscoverMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.DiscoverMovies(ctx, f)
	})
}

// SearchMovie searches movies by title.
func (c *Client) SearchMovie(ctx context.Context, query string, opts tmdb.SearchMovieOptions) (*movieList, error) {
	return call(ctx, c, "SearchMovie", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.SearchMovie(ctx, query, opts)
	})
}

// SearchCollection searches collections by name.
func (c *Client) SearchCollection(ctx context.Context, query string, opts tmdb.PageOptions) (*tmdb.SearchContainer[tmdb.CollectionSummary], error) {
	return call(ctx, c, "SearchCollection", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.CollectionSummary]] {
		return c.api.SearchCollection(ctx, query, opts)
	})
}

// SearchPerson searches people by name.
func (c *Client) SearchPerson(ctx context.Context, query string, opts tmdb.SearchPersonOptions) (*tmdb.SearchContainer[tmdb.PersonResult], error) {
	return call(ctx, c, "SearchPerson", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.PersonResult]] {
		return c.api.SearchPerson(ctx, query, opts)
	})
}

// SearchList searches user lists by name.
func (c *Client) SearchList(ctx context.Context, query string, opts tmdb.SearchListOptions) (*tmdb.SearchContainer[tmdb.List], error) {
	return call(ctx, c, "SearchList", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.List]] {
		return c.api.SearchList(ctx, query, opts)
	})
}

// SearchCompany searches companies by name.
func (c *Client) SearchCompany(ctx context.Context, query string, page int) (*tmdb.SearchContainer[tmdb.CompanySummary], error) {
	return call(ctx, c, "SearchCompany", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.CompanySummary]] {
		return c.api.SearchCompany(ctx, query, page)
	})
}

// SearchKeyword searches keywords by name.
func (c *Client) SearchKeyword(ctx context.Context, query string, page int) (*tmdb.SearchContainer[tmdb.Keyword], error) {
	return call(ctx, c, "SearchKeyword", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.Keyword]] {
		return c.api.SearchKeyword(ctx, query, page)
	})
}

// GetReview returns a review.
func (c *Client) GetReview(ctx context.Context, id string) (*tmdb.Review, error) {
	return call(ctx, c, "GetReview", func(ctx context.Context) tmdb.Result[*tmdb.Review] {
		return c.api.GetReview(ctx, id)
	})
}

// GetChangedMovies returns the ids of movies edited in a date range.
func (c *Client) GetChangedMovies(ctx context.Context, opts tmdb.DateRangeOptions) (*tmdb.SearchContainer[tmdb.ChangedItem], error) {
	return call(ctx, c, "GetChangedMovies", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.ChangedItem]] {
		return c.api.GetChangedMovies(ctx, opts)
	})
}

// GetChangedPeople returns the ids of people edited in a date range.
func (c *Client) GetChangedPeople(ctx context.Context, opts tmdb.DateRangeOptions) (*tmdb.SearchContainer[tmdb.ChangedItem], error) {
	return call(ctx, c, "GetChangedPeople", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.ChangedItem]] {
		return c.api.GetChangedPeople(ctx, opts)
	})
}

// GetJobs returns the crew departments and their jobs.
func (c *Client) GetJobs(ctx context.Context) (*tmdb.JobList, error) {
	return call(ctx, c, "GetJobs", c.api.GetJobs)
}

// ImageURL composes an image address. The cached configuration's base URL
// is preferred when present.
func (c *Client) ImageURL(size, filePath string) string {
	cfg, err := c.Configuration()
	if err != nil || cfg == nil {
		return c.api.ImageURL(size, filePath)
	}

	base := cfg.Images.SecureBaseURL
	if base == "" {
		base = cfg.Images.BaseURL
	}
	if base == "" {
		return c.api.ImageURL(size, filePath)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + size + "/" + strings.TrimPrefix(filePath, "/")
}

// DownloadImage saves an image to fileName and returns the written path.
// The address is the one ImageURL reports.
func (c *Client) DownloadImage(ctx context.Context, size, filePath, fileName string) (string, error) {
	url := c.ImageURL(size, filePath)
	return call(ctx, c, "DownloadImage", func(ctx context.Context) tmdb.Result[string] {
		return c.api.DownloadURL(ctx, url, fileName)
	})
}

// GetImageBytes reads an image into memory from the address ImageURL reports.
func (c *Client) GetImageBytes(ctx context.Context, size, filePath string) ([]byte, error) {
	url := c.ImageURL(size, filePath)
	return call(ctx, c, "GetImageBytes", func(ctx context.Context) tmdb.Result[[]byte] {
		return c.api.ReadURL(ctx, url)
	})
}

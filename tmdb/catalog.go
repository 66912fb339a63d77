package tmdb

import "context"

// GetCollection retrieves a collection and its movies.
func (c *Client) GetCollection(ctx context.Context, id int, language string) Result[*Collection] {
	p := NewParams().AddString(c.cfg.Params.Language, language)
	return get[*Collection](ctx, c, c.cfg.Methods.Collection, []string{itoa(id)}, p)
}

// GetCollectionImages retrieves a collection's posters and backdrops.
func (c *Client) GetCollectionImages(ctx context.Context, id int, language string) Result[*Images] {
	p := NewParams().AddString(c.cfg.Params.Language, language)
	return get[*Images](ctx, c, c.cfg.Methods.CollectionImages, []string{itoa(id)}, p)
}

// GetCompany retrieves a production company.
func (c *Client) GetCompany(ctx context.Context, id int) Result[*Company] {
	return get[*Company](ctx, c, c.cfg.Methods.Company, []string{itoa(id)}, nil)
}

// GetCompanyMovies retrieves the movies a company produced.
func (c *Client) GetCompanyMovies(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[MovieResult]](ctx, c, c.cfg.Methods.CompanyMovies, []string{itoa(id)}, p)
}

// GetGenres retrieves the movie genre list.
func (c *Client) GetGenres(ctx context.Context, language string) Result[*GenreList] {
	p := NewParams().AddString(c.cfg.Params.Language, language)
	return get[*GenreList](ctx, c, c.cfg.Methods.GenreList, nil, p)
}

// GetGenreMovies retrieves the movies in a genre.
func (c *Client) GetGenreMovies(ctx context.Context, id int, opts GenreMovieOptions) Result[*SearchContainer[MovieResult]] {
	p := NewParams()
	p.AddInt(c.cfg.Params.Page, opts.Page)
	p.AddString(c.cfg.Params.Language, opts.Language)
	addBool(p, c.cfg.Params.IncludeAllMovies, opts.IncludeAllMovies, &c.cfg.Values)
	addBool(p, c.cfg.Params.IncludeAdult, opts.IncludeAdult, &c.cfg.Values)
	return get[*SearchContainer[MovieResult]](ctx, c, c.cfg.Methods.GenreMovies, []string{itoa(id)}, p)
}

// GetKeyword retrieves a keyword.
func (c *Client) GetKeyword(ctx context.Context, id int) Result[*Keyword] {
	return get[*Keyword](ctx, c, c.cfg.Methods.Keyword, []string{itoa(id)}, nil)
}

// GetKeywordMovies retrieves the movies tagged with a keyword.
func (c *Client) GetKeywordMovies(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[MovieResult]](ctx, c, c.cfg.Methods.KeywordMovies, []string{itoa(id)}, p)
}

// GetReview retrieves a single review.
func (c *Client) GetReview(ctx context.Context, id string) Result[*Review] {
	return get[*Review](ctx, c, c.cfg.Methods.Review, []string{id}, nil)
}

// GetChangedMovies lists the ids of movies edited in a date range.
func (c *Client) GetChangedMovies(ctx context.Context, opts DateRangeOptions) Result[*SearchContainer[ChangedItem]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[ChangedItem]](ctx, c, c.cfg.Methods.ChangesMovies, nil, p)
}

// GetChangedPeople lists the ids of people edited in a date range.
func (c *Client) GetChangedPeople(ctx context.Context, opts DateRangeOptions) Result[*SearchContainer[ChangedItem]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[ChangedItem]](ctx, c, c.cfg.Methods.ChangesPeople, nil, p)
}

// GetJobs retrieves the crew departments and their jobs.
func (c *Client) GetJobs(ctx context.Context) Result[*JobList] {
	return get[*JobList](ctx, c, c.cfg.Methods.Jobs, nil, nil)
}

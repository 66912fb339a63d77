package tmdb

import "context"

// SearchMovie searches movies by title.
func (c *Client) SearchMovie(ctx context.Context, query string, opts SearchMovieOptions) Result[*SearchContainer[MovieResult]] {
	searchType, err := opts.SearchType.wire(&c.cfg.Values)
	if err != nil {
		return precondition[*SearchContainer[MovieResult]]("SearchMovie", err)
	}

	p := c.queryParams(query)
	p.AddInt(c.cfg.Params.Page, opts.Page)
	p.AddString(c.cfg.Params.Language, opts.Language)
	addBool(p, c.cfg.Params.IncludeAdult, opts.IncludeAdult, &c.cfg.Values)
	p.AddInt(c.cfg.Params.Year, opts.Year)
	p.AddInt(c.cfg.Params.PrimaryReleaseYear, opts.PrimaryReleaseYear)
	p.AddString(c.cfg.Params.SearchType, searchType)

	return get[*SearchContainer[MovieResult]](ctx, c, c.cfg.Methods.SearchMovie, nil, p)
}

// SearchCollection searches collections by name.
func (c *Client) SearchCollection(ctx context.Context, query string, opts PageOptions) Result[*SearchContainer[CollectionSummary]] {
	p := opts.apply(c.queryParams(query), &c.cfg.Params)
	return get[*SearchContainer[CollectionSummary]](ctx, c, c.cfg.Methods.SearchCollection, nil, p)
}

// SearchPerson searches people by name.
func (c *Client) SearchPerson(ctx context.Context, query string, opts SearchPersonOptions) Result[*SearchContainer[PersonResult]] {
	searchType, err := opts.SearchType.wire(&c.cfg.Values)
	if err != nil {
		return precondition[*SearchContainer[PersonResult]]("SearchPerson", err)
	}

	p := c.queryParams(query)
	p.AddInt(c.cfg.Params.Page, opts.Page)
	addBool(p, c.cfg.Params.IncludeAdult, opts.IncludeAdult, &c.cfg.Values)
	p.AddString(c.cfg.Params.SearchType, searchType)

	return get[*SearchContainer[PersonResult]](ctx, c, c.cfg.Methods.SearchPerson, nil, p)
}

// SearchList searches user lists by name.
func (c *Client) SearchList(ctx context.Context, query string, opts SearchListOptions) Result[*SearchContainer[List]] {
	p := c.queryParams(query)
	p.AddInt(c.cfg.Params.Page, opts.Page)
	addBool(p, c.cfg.Params.IncludeAdult, opts.IncludeAdult, &c.cfg.Values)
	return get[*SearchContainer[List]](ctx, c, c.cfg.Methods.SearchList, nil, p)
}

// SearchCompany searches production companies by name.
func (c *Client) SearchCompany(ctx context.Context, query string, page int) Result[*SearchContainer[CompanySummary]] {
	p := c.queryParams(query).AddInt(c.cfg.Params.Page, page)
	return get[*SearchContainer[CompanySummary]](ctx, c, c.cfg.Methods.SearchCompany, nil, p)
}

// SearchKeyword searches keywords by name.
func (c *Client) SearchKeyword(ctx context.Context, query string, page int) Result[*SearchContainer[Keyword]] {
	p := c.queryParams(query).AddInt(c.cfg.Params.Page, page)
	return get[*SearchContainer[Keyword]](ctx, c, c.cfg.Methods.SearchKeyword, nil, p)
}

func (c *Client) queryParams(query string) *Params {
	return NewParams().Add(c.cfg.Params.Query, EscapeQuery(query))
}

package tmdb

import "context"

// GetPerson retrieves a person. Extra data selected in opts.Append is
// embedded in the same response.
func (c *Client) GetPerson(ctx context.Context, id int, opts PersonOptions) Result[*Person] {
	p := NewParams().AddString(c.cfg.Params.AppendToResponse, opts.Append.Parameter(&c.cfg.Values))
	return get[*Person](ctx, c, c.cfg.Methods.Person, []string{itoa(id)}, p)
}

// GetPersonCredits retrieves a person's movie credits.
func (c *Client) GetPersonCredits(ctx context.Context, id int, language string) Result[*PersonCredits] {
	p := NewParams().AddString(c.cfg.Params.Language, language)
	return get[*PersonCredits](ctx, c, c.cfg.Methods.PersonCredits, []string{itoa(id)}, p)
}

// GetPersonImages retrieves a person's profile images.
func (c *Client) GetPersonImages(ctx context.Context, id int) Result[*ProfileImages] {
	return get[*ProfileImages](ctx, c, c.cfg.Methods.PersonImages, []string{itoa(id)}, nil)
}

// GetPersonChanges retrieves the edit history of a person.
func (c *Client) GetPersonChanges(ctx context.Context, id int, opts DateRangeOptions) Result[*Changes] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*Changes](ctx, c, c.cfg.Methods.PersonChanges, []string{itoa(id)}, p)
}

// GetPopularPeople retrieves the current popular people.
func (c *Client) GetPopularPeople(ctx context.Context, page int) Result[*SearchContainer[PersonResult]] {
	p := NewParams().AddInt(c.cfg.Params.Page, page)
	return get[*SearchContainer[PersonResult]](ctx, c, c.cfg.Methods.PersonPopular, nil, p)
}

// GetLatestPerson retrieves the most recently added person.
func (c *Client) GetLatestPerson(ctx context.Context) Result[*Person] {
	return get[*Person](ctx, c, c.cfg.Methods.PersonLatest, nil, nil)
}

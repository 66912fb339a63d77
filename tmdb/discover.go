package tmdb

import (
	"context"
	"time"
)

// DiscoverFilter narrows a discovery query. Zero values are omitted from the
// request.
type DiscoverFilter struct {
	Page               int
	Language           string
	IncludeAdult       *bool
	Year               int
	PrimaryReleaseYear int

	VoteCountGte   int
	VoteAverageGte float64
	ReleaseDateGte time.Time
	ReleaseDateLte time.Time

	CertificationCountry string
	CertificationLte     string

	Companies         []int
	CompaniesOperator FilterOperator
	Genres            []int
	GenresOperator    FilterOperator

	SortBy    DiscoverSort
	SortOrder SortOrder
}

// DiscoverMovies finds movies matching f.
func (c *Client) DiscoverMovies(ctx context.Context, f DiscoverFilter) Result[*SearchContainer[MovieResult]] {
	p, err := c.discoverParams(f)
	if err != nil {
		return precondition[*SearchContainer[MovieResult]]("DiscoverMovies", err)
	}
	return get[*SearchContainer[MovieResult]](ctx, c, c.cfg.Methods.Discover, nil, p)
}

func (c *Client) discoverParams(f DiscoverFilter) (*Params, error) {
	names := &c.cfg.Params
	values := &c.cfg.Values

	p := NewParams()
	p.AddInt(names.Page, f.Page)
	p.AddString(names.Language, f.Language)
	addBool(p, names.IncludeAdult, f.IncludeAdult, values)
	p.AddInt(names.Year, f.Year)
	p.AddInt(names.PrimaryReleaseYear, f.PrimaryReleaseYear)
	p.AddInt(names.VoteCountGte, f.VoteCountGte)
	if f.VoteAverageGte > 0 {
		p.Add(names.VoteAverageGte, formatFloat(f.VoteAverageGte))
	}
	p.AddString(names.ReleaseDateGte, formatDate(f.ReleaseDateGte))
	p.AddString(names.ReleaseDateLte, formatDate(f.ReleaseDateLte))
	p.AddString(names.CertificationCountry, f.CertificationCountry)
	p.AddString(names.CertificationLte, f.CertificationLte)

	if len(f.Companies) > 0 {
		ids, err := JoinIDs(f.Companies, f.CompaniesOperator, values)
		if err != nil {
			return nil, err
		}
		p.Add(names.WithCompanies, ids)
	}
	if len(f.Genres) > 0 {
		ids, err := JoinIDs(f.Genres, f.GenresOperator, values)
		if err != nil {
			return nil, err
		}
		p.Add(names.WithGenres, ids)
	}

	sortBy, err := f.SortBy.wire(values)
	if err != nil {
		return nil, err
	}
	order, err := f.SortOrder.wire(values)
	if err != nil {
		return nil, err
	}
	if sortBy != "" {
		if order != "" {
			sortBy += values.SortSeparator + order
		}
		p.Add(names.SortBy, sortBy)
	}

	return p, nil
}

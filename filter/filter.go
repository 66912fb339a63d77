package filter

import (
	"errors"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// DefaultCacheSize is the number of compiled expressions a Compiler keeps.
const DefaultCacheSize = 64

// Filter is a compiled expression that selects movies. It is safe for
// concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache sets how many compiled filters are kept. Zero disables caching.
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithCustomFunctions adds helper functions to every expression
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.custom, funcs)
	}
}

// Compiler turns expressions into filters, caching the results.
type Compiler struct {
	custom map[string]any
	cache  *lruCache[*Filter]
}

// NewCompiler creates a compiler with a DefaultCacheSize cache.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		custom: make(map[string]any),
		cache:  newLRUCache[*Filter](DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles expression, or returns the cached filter for it
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if f, ok := c.cache.Get(expression); ok {
			return f, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(compileEnvironment(c.custom)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, newCompilationError(expression, err)
	}

	f := &Filter{
		expression: expression,
		program:    program,
		custom:     c.custom,
	}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Compile compiles expression without caching.
func Compile(expression string) (*Filter, error) {
	return NewCompiler(WithCache(0)).Compile(expression)
}

// Match reports whether m satisfies the filter
func (f *Filter) Match(m tmdb.MovieResult) (bool, error) {
	env := movieEnvironment(m)
	maps.Copy(env, helperFunctions())
	maps.Copy(env, f.custom)

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieID:    m.ID,
			MovieTitle: m.Title,
			Err:        err,
		}
	}
	// AsBool guarantees the type
	return out.(bool), nil
}

// Apply returns the movies that satisfy the filter, in their original
// order. Movies that fail to evaluate are left out and their errors joined.
func (f *Filter) Apply(movies []tmdb.MovieResult) ([]tmdb.MovieResult, error) {
	matches := make([]tmdb.MovieResult, 0, len(movies))
	var errs []error
	for _, m := range movies {
		ok, err := f.Match(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			matches = append(matches, m)
		}
	}
	return matches, errors.Join(errs...)
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expression
}

package searcher

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/nreed/grippy/internal/history"
	"github.com/nreed/grippy/pkg/rg"
)

var (
	// ErrEmptyPattern is returned when a search request has no pattern.
	ErrEmptyPattern = errors.New("pattern is required")
	// ErrNoPaths is returned when a search request has no search paths.
	ErrNoPaths = errors.New("at least one search path is required")
)

// defaultCacheTTL bounds how long a cached response stays valid when the
// request does not say otherwise. Files change under us, so keep it short.
const defaultCacheTTL = 30 * time.Second

// Options is the subset of rg flags the MCP tools expose. Zero values mean
// "not set"; string and slice values are passed to rg unvalidated, the
// same permissive contract pkg/rg has.
type Options struct {
	IgnoreCase    bool
	SmartCase     bool
	FixedStrings  bool
	WordRegexp    bool
	InvertMatch   bool
	Multiline     bool
	Hidden        bool
	NoIgnore      bool
	Follow        bool
	Globs         []string
	Types         []string
	TypesNot      []string
	Context       int
	BeforeContext int
	AfterContext  int
	MaxCount      int
	MaxDepth      int
	MaxFilesize   string
	Encoding      string
	Threads       int
	Sort          string
	Engine        string
}

// Request describes one search operation against one or more paths.
type Request struct {
	Pattern  string
	Paths    []string
	Options  Options
	UseCache bool
	CacheTTL time.Duration
}

// PathRun reports how the search of one path went.
type PathRun struct {
	Path       string
	ExitCode   int
	MatchCount int
}

// Response is a merged search result across all requested paths.
type Response struct {
	Matches  []rg.Match
	Runs     []PathRun
	Duration time.Duration
	CacheHit bool
}

// FileCount is one line of rg --count-matches output.
type FileCount struct {
	Path  string
	Count int
}

// FileType is one entry of rg --type-list output.
type FileType struct {
	Name  string
	Globs []string
}

// cacheEntry is a cached response with its expiration time.
type cacheEntry struct {
	response  *Response
	expiresAt time.Time
}

// Searcher coordinates rg invocations, caching and history recording.
type Searcher struct {
	binary  string
	runner  rg.Runner // nil means real execution
	history history.Store
	cache   *lru.Cache[[32]byte, *cacheEntry]
}

// Config configures a Searcher.
type Config struct {
	// Binary overrides the rg executable name (default "rg").
	Binary string
	// History receives a record of every completed run; may be nil.
	History history.Store
	// Runner overrides process execution; for tests.
	Runner rg.Runner
	// CacheSize is the LRU entry limit (default 512).
	CacheSize int
}

// New creates a Searcher.
func New(cfg Config) *Searcher {
	size := cfg.CacheSize
	if size <= 0 {
		size = 512
	}
	cache, err := lru.New[[32]byte, *cacheEntry](size)
	if err != nil {
		// lru.New only fails for a non-positive size
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}
	return &Searcher{
		binary:  cfg.Binary,
		runner:  cfg.Runner,
		history: cfg.History,
		cache:   cache,
	}
}

// newCommand builds a pkg/rg builder with this searcher's binary and
// runner overrides applied.
func (s *Searcher) newCommand(pattern, path string) (*rg.Ripgrep, error) {
	opts := make([]rg.Option, 0, 2)
	if s.binary != "" {
		opts = append(opts, rg.WithBinary(s.binary))
	}
	if s.runner != nil {
		opts = append(opts, rg.WithRunner(s.runner))
	}
	cmd, err := rg.New(pattern, path, opts...)
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// Search runs the request's pattern over every path concurrently and
// merges the structured matches in path order. rg exit code 2 on any path
// fails the whole search with the stderr text; exit 1 just means that
// path had no matches.
func (s *Searcher) Search(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if req.Pattern == "" {
		return nil, ErrEmptyPattern
	}
	if len(req.Paths) == 0 {
		return nil, ErrNoPaths
	}

	// Build every command up front so the cache key covers the exact
	// command lines that would run.
	commands := make([]*rg.Ripgrep, len(req.Paths))
	lines := make([]string, len(req.Paths))
	for i, path := range req.Paths {
		cmd, err := s.newCommand(req.Pattern, path)
		if err != nil {
			return nil, err
		}
		cmd.JSON().LineNumber()
		applyOptions(cmd, req.Options)
		commands[i] = cmd
		lines[i] = cmd.CommandLine()
	}

	key := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	if req.UseCache {
		if cached := s.checkCache(key); cached != nil {
			cached.CacheHit = true
			cached.Duration = time.Since(start)
			return cached, nil
		}
	}

	// One independent builder per path; parallelism is coordinated here,
	// not inside pkg/rg.
	outputs := make([]*rg.Output, len(commands))
	g, gctx := errgroup.WithContext(ctx)
	for i, cmd := range commands {
		g.Go(func() error {
			out, err := cmd.Run(gctx)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	response := &Response{Runs: make([]PathRun, len(outputs))}
	for i, out := range outputs {
		if out.ExitCode() == 2 {
			return nil, fmt.Errorf("ripgrep error on %s: %s",
				req.Paths[i], strings.TrimSpace(out.Stderr()))
		}
		matches, err := out.AsMatches()
		if err != nil {
			return nil, fmt.Errorf("parse output for %s: %w", req.Paths[i], err)
		}
		response.Matches = append(response.Matches, matches...)
		response.Runs[i] = PathRun{
			Path:       req.Paths[i],
			ExitCode:   out.ExitCode(),
			MatchCount: len(matches),
		}
		s.recordRun(ctx, req.Pattern, req.Paths[i], out, len(matches), time.Since(start))
	}
	response.Duration = time.Since(start)

	if req.UseCache {
		s.storeCache(key, response, req.CacheTTL)
	}
	return response, nil
}

// CountMatches runs rg --count-matches for the pattern over every path and
// returns one entry per file that had matches.
func (s *Searcher) CountMatches(ctx context.Context, req Request) ([]FileCount, error) {
	if req.Pattern == "" {
		return nil, ErrEmptyPattern
	}
	if len(req.Paths) == 0 {
		return nil, ErrNoPaths
	}

	start := time.Now()
	counts := make([]FileCount, 0)
	for _, path := range req.Paths {
		cmd, err := s.newCommand(req.Pattern, path)
		if err != nil {
			return nil, err
		}
		cmd.CountMatches().WithFilename()
		applyOptions(cmd, req.Options)

		out, err := cmd.Run(ctx)
		if err != nil {
			return nil, err
		}
		if out.ExitCode() == 2 {
			return nil, fmt.Errorf("ripgrep error on %s: %s", path, strings.TrimSpace(out.Stderr()))
		}

		parsed, err := parseCounts(out.AsString())
		if err != nil {
			return nil, fmt.Errorf("parse counts for %s: %w", path, err)
		}
		total := 0
		for _, fc := range parsed {
			total += fc.Count
		}
		counts = append(counts, parsed...)
		s.recordRun(ctx, req.Pattern, path, out, total, time.Since(start))
	}
	return counts, nil
}

// ListFileTypes returns rg's supported file types with their globs.
func (s *Searcher) ListFileTypes(ctx context.Context) ([]FileType, error) {
	cmd, err := s.newCommand("", "")
	if err != nil {
		return nil, err
	}
	cmd.TypeList()

	out, err := cmd.Run(ctx)
	if err != nil {
		return nil, err
	}
	if out.ExitCode() != 0 {
		return nil, fmt.Errorf("ripgrep --type-list failed: %s", strings.TrimSpace(out.Stderr()))
	}
	return parseTypeList(out.AsString()), nil
}

// recordRun writes one run to the history store. History is diagnostic
// data; a write failure is logged, never surfaced.
func (s *Searcher) recordRun(ctx context.Context, pattern, path string, out *rg.Output, matchCount int, duration time.Duration) {
	if s.history == nil {
		return
	}
	run := &history.Run{
		Pattern:     pattern,
		SearchPath:  path,
		CommandLine: out.CommandLine(),
		ExitCode:    out.ExitCode(),
		MatchCount:  matchCount,
		Duration:    duration,
	}
	if err := s.history.RecordRun(ctx, run); err != nil {
		log.Printf("history: failed to record run: %v", err)
	}
}

func (s *Searcher) checkCache(key [32]byte) *Response {
	entry, ok := s.cache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		s.cache.Remove(key)
		return nil
	}
	// Shallow copy so callers see their own Duration and CacheHit.
	response := *entry.response
	return &response
}

func (s *Searcher) storeCache(key [32]byte, response *Response, ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	s.cache.Add(key, &cacheEntry{
		response:  response,
		expiresAt: time.Now().Add(ttl),
	})
}

// applyOptions translates an Options struct into builder calls, in a fixed
// order so identical requests serialize to identical command lines.
func applyOptions(cmd *rg.Ripgrep, o Options) {
	if o.IgnoreCase {
		cmd.IgnoreCase()
	}
	if o.SmartCase {
		cmd.SmartCase()
	}
	if o.FixedStrings {
		cmd.FixedStrings()
	}
	if o.WordRegexp {
		cmd.WordRegexp()
	}
	if o.InvertMatch {
		cmd.InvertMatch()
	}
	if o.Multiline {
		cmd.Multiline()
	}
	if o.Hidden {
		cmd.Hidden()
	}
	if o.NoIgnore {
		cmd.NoIgnore()
	}
	if o.Follow {
		cmd.Follow()
	}
	for _, glob := range o.Globs {
		cmd.Glob(glob)
	}
	for _, t := range o.Types {
		cmd.Type(t)
	}
	for _, t := range o.TypesNot {
		cmd.TypeNot(t)
	}
	if o.Context > 0 {
		cmd.Context(o.Context)
	}
	if o.BeforeContext > 0 {
		cmd.BeforeContext(o.BeforeContext)
	}
	if o.AfterContext > 0 {
		cmd.AfterContext(o.AfterContext)
	}
	if o.MaxCount > 0 {
		cmd.MaxCount(o.MaxCount)
	}
	if o.MaxDepth > 0 {
		cmd.MaxDepth(o.MaxDepth)
	}
	if o.MaxFilesize != "" {
		cmd.MaxFilesize(o.MaxFilesize)
	}
	if o.Encoding != "" {
		cmd.Encoding(o.Encoding)
	}
	if o.Threads > 0 {
		cmd.Threads(o.Threads)
	}
	if o.Sort != "" {
		cmd.Sort(o.Sort)
	}
	if o.Engine != "" {
		cmd.Engine(o.Engine)
	}
}

// parseCounts reads rg --count-matches output, one "path:count" per line.
// Paths may contain colons, so the count is taken from the last one.
func parseCounts(output string) ([]FileCount, error) {
	counts := make([]FileCount, 0)
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sep := strings.LastIndex(line, ":")
		if sep < 0 {
			return nil, fmt.Errorf("malformed count line: %q", line)
		}
		n, err := strconv.Atoi(line[sep+1:])
		if err != nil {
			return nil, fmt.Errorf("malformed count in line %q: %w", line, err)
		}
		counts = append(counts, FileCount{Path: line[:sep], Count: n})
	}
	return counts, nil
}

// parseTypeList reads rg --type-list output, one "name: glob, glob" per
// line.
func parseTypeList(output string) []FileType {
	types := make([]FileType, 0)
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, globs, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		ft := FileType{Name: strings.TrimSpace(name)}
		for _, glob := range strings.Split(globs, ",") {
			if g := strings.TrimSpace(glob); g != "" {
				ft.Globs = append(ft.Globs, g)
			}
		}
		types = append(types, ft)
	}
	return types
}

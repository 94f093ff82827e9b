package repo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"themewatch/internal/core/bucket"
	perr "themewatch/internal/platform/errors"
	"themewatch/internal/services/dashboard/domain"

	json "github.com/goccy/go-json"
)

// Doer is the minimal http client seam, satisfied by *http.Client
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client implements Gateway against the analytics REST backend
type Client struct {
	base *url.URL
	http Doer
}

// NewClient builds a Client for the given backend base URL
func NewClient(base *url.URL, d Doer) *Client {
	if d == nil {
		d = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: base, http: d}
}

// envelope is the upstream success wrapper the orchestrator branches on
type envelope struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// get issues one idempotent analytic read and decodes the envelope payload
// into out. No retry on failure, the caller's slice keeps its last state
func (c *Client) get(ctx context.Context, themeID, view string, q url.Values, out any) error {
	u := *c.base
	u.Path, _ = url.JoinPath(u.Path, "themes", themeID, "analytics", view)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "build %s request", view)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "analytics %s unreachable", view)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perr.FromUpstream(resp.StatusCode, view)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "analytics %s read", view)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return perr.JSONErrf("analytics %s: invalid envelope: %v", view, err)
	}
	if !env.OK {
		return perr.Unavailablef("analytics %s: upstream not ok: %s", view, env.Error)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return perr.JSONErrf("analytics %s: invalid payload: %v", view, err)
	}
	return nil
}

// Ping probes the analytics backend health endpoint
func (c *Client) Ping(ctx context.Context) error {
	u := *c.base
	u.Path, _ = url.JoinPath(u.Path, "health")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "build health request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "analytics unreachable")
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perr.Unavailablef("analytics health: status %d", resp.StatusCode)
	}
	return nil
}

// series fetches a time series view and converts upstream unix seconds to
// the millisecond timestamps charts consume
func (c *Client) series(ctx context.Context, themeID, view string, fs domain.FilterState) ([]domain.Series, error) {
	var raw []domain.Series
	q := encode(fs)
	q.Set("period", string(fs.ChartPeriod))
	if err := c.get(ctx, themeID, view, q, &raw); err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i].Data = bucket.SeriesToMillis(raw[i].Data)
	}
	return raw, nil
}

func (c *Client) categories(ctx context.Context, themeID, view string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	var out []domain.CategoryPoint
	if err := c.get(ctx, themeID, view, encode(fs), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Materials fetches the paginated materials list
func (c *Client) Materials(ctx context.Context, themeID string, fs domain.FilterState) (domain.MaterialsPage, error) {
	var out domain.MaterialsPage
	q := encode(fs)
	q.Set("page", strconv.Itoa(fs.Page))
	q.Set("page_size", strconv.Itoa(fs.PageSize))
	err := c.get(ctx, themeID, "materials", q, &out)
	return out, err
}

// FilterCounts fetches the per facet value counts for the applied filter
func (c *Client) FilterCounts(ctx context.Context, themeID string, fs domain.FilterState) (domain.FilterCounts, error) {
	var out domain.FilterCounts
	err := c.get(ctx, themeID, "filter-count", encode(fs), &out)
	return out, err
}

// MainSeries fetches the main dynamics time series
func (c *Client) MainSeries(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error) {
	return c.series(ctx, themeID, "dynamic", fs)
}

// ToneByReview fetches the tone breakdown
func (c *Client) ToneByReview(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "tone", fs)
}

// LanguageByReview fetches the language breakdown
func (c *Client) LanguageByReview(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "language", fs)
}

// SourceMessageMix fetches the per source message mix
func (c *Client) SourceMessageMix(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "sources/message-mix", fs)
}

// SourceDynamic fetches the per source time series
func (c *Client) SourceDynamic(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error) {
	return c.series(ctx, themeID, "sources/dynamic", fs)
}

// SourceMessageType fetches the per source message type breakdown
func (c *Client) SourceMessageType(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "sources/message-type", fs)
}

// SourceTone fetches the per source tone breakdown
func (c *Client) SourceTone(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "sources/tone", fs)
}

// SourceTable fetches the paginated source table
func (c *Client) SourceTable(ctx context.Context, themeID string, fs domain.FilterState) (domain.SourceTable, error) {
	var out domain.SourceTable
	err := c.get(ctx, themeID, "sources/table", encode(fs), &out)
	return out, err
}

// AuthorDynamic fetches the per author time series
func (c *Client) AuthorDynamic(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error) {
	return c.series(ctx, themeID, "authors/dynamic", fs)
}

// AuthorTable fetches the paginated author table
func (c *Client) AuthorTable(ctx context.Context, themeID string, fs domain.FilterState) (domain.AuthorTable, error) {
	var out domain.AuthorTable
	err := c.get(ctx, themeID, "authors/table", encode(fs), &out)
	return out, err
}

// TagDynamic fetches the per tag time series
func (c *Client) TagDynamic(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error) {
	return c.series(ctx, themeID, "tags/dynamic", fs)
}

// TagMessageMix fetches the per tag message mix
func (c *Client) TagMessageMix(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "tags/message-mix", fs)
}

// TagTone fetches the per tag tone breakdown
func (c *Client) TagTone(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error) {
	return c.categories(ctx, themeID, "tags/tone", fs)
}

// TagTable fetches the paginated tag table
func (c *Client) TagTable(ctx context.Context, themeID string, fs domain.FilterState) (domain.TagTable, error) {
	var out domain.TagTable
	err := c.get(ctx, themeID, "tags/table", encode(fs), &out)
	return out, err
}

// encode serializes the full filter state as query parameters. There are no
// delta queries, every fetch carries everything
func encode(fs domain.FilterState) url.Values {
	q := url.Values{}
	for _, v := range fs.Material.Sentiment {
		q.Add("sentiment", string(v))
	}
	for _, v := range fs.Material.MaterialTypes {
		q.Add("material_type", string(v))
	}
	for _, v := range fs.Material.Languages {
		q.Add("language", v)
	}
	for _, v := range fs.Material.SourceTypes {
		q.Add("source_type", string(v))
	}
	for _, v := range fs.Material.Sources {
		q.Add("source", v)
	}
	for _, v := range fs.Material.Tags {
		q.Add("tag", v)
	}
	if fs.Material.Description != "" {
		q.Set("description", fs.Material.Description)
	}
	for _, v := range fs.Author.AuthorTypes {
		q.Add("author_type", string(v))
	}
	for _, v := range fs.Author.Genders {
		q.Add("gender", string(v))
	}
	for _, a := range fs.Author.AgeRanges {
		q.Add("age", fmt.Sprintf("%d-%d", a.From, a.To))
	}
	if s := fs.Author.Subscribers; s != nil {
		q.Set("subscriber_min", strconv.FormatInt(s.Min, 10))
		q.Set("subscriber_max", strconv.FormatInt(s.Max, 10))
	}
	q.Set("mode", string(fs.Mode))
	if fs.Time.Start != nil {
		q.Set("start", fs.Time.Start.UTC().Format(time.RFC3339))
	}
	if fs.Time.End != nil {
		q.Set("end", fs.Time.End.UTC().Format(time.RFC3339))
	}
	return q
}

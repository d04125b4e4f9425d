package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	perr "reposcout/internal/platform/errors"
)

// SearchRepos runs a repository search with the given qualifier string.
// sort and order follow the REST search API ("stars"/"updated", "desc"/"asc")
func (c *Client) SearchRepos(ctx context.Context, q, sort, order string, perPage int) (SearchResult, error) {
	if perPage <= 0 || perPage > 100 {
		perPage = 30
	}
	v := url.Values{}
	v.Set("q", q)
	if sort != "" {
		v.Set("sort", sort)
	}
	if order != "" {
		v.Set("order", order)
	}
	v.Set("per_page", fmt.Sprintf("%d", perPage))

	var out SearchResult
	if err := c.getJSON(ctx, "/search/repositories?"+v.Encode(), &out); err != nil {
		return SearchResult{}, err
	}
	return out, nil
}

// UserByLogin fetches a user by login
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	var out User
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(login), &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// UserRepos lists a user's public repos, most recently pushed first
func (c *Client) UserRepos(ctx context.Context, login string, perPage int) ([]Repo, error) {
	if perPage <= 0 || perPage > 100 {
		perPage = 30
	}
	path := fmt.Sprintf("/users/%s/repos?sort=pushed&per_page=%d", url.PathEscape(login), perPage)
	var out []Repo
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RepoExists probes whether owner/name resolves to a public repository.
// A typed NotFound collapses to false nil; other failures propagate so the
// caller can distinguish "gone" from "could not check"
func (c *Client) RepoExists(ctx context.Context, owner, name string) (bool, error) {
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	resp, err := c.Do(ctx, http.MethodGet, path, "")
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return false, nil
		}
		return false, err
	}
	_ = drainAndClose(resp.Body)
	return true, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, "")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	lim := io.LimitReader(resp.Body, 4<<20)
	b, err := io.ReadAll(lim)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "github read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "github decode failed")
	}
	return nil
}

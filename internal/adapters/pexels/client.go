package pexels

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"trip_planner/internal/adapters/httpc"
	"trip_planner/internal/domain"
)

const defaultBase = "https://api.pexels.com/v1"

type Client struct {
	c    *httpc.Client
	base string
	key  string
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if base == "" {
		base = defaultBase
	}
	return &Client{c: httpc.New("pexels", rps), base: base, key: key}, nil
}

type searchResp struct {
	Photos []struct {
		Alt             string `json:"alt"`
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
		Src             struct {
			Large  string `json:"large"`
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

func (c *Client) Search(ctx context.Context, query string) (domain.ImageRef, error) {
	u := fmt.Sprintf("%s/search?query=%s&per_page=1", c.base, url.QueryEscape(query))
	h := http.Header{}
	h.Set("Authorization", c.key)

	var out searchResp
	if err := c.c.GetJSON(ctx, "search", u, h, &out); err != nil {
		return domain.ImageRef{}, err
	}
	if len(out.Photos) == 0 {
		return domain.ImageRef{}, domain.ErrNotFound
	}

	p := out.Photos[0]
	ref := domain.ImageRef{
		URL:             p.Src.Large,
		Alt:             p.Alt,
		Photographer:    p.Photographer,
		PhotographerURL: p.PhotographerURL,
	}
	if ref.URL == "" {
		ref.URL = p.Src.Medium
	}
	if ref.Alt == "" {
		ref.Alt = query
	}
	return ref, nil
}


// Package news scrapes headline items from a configured entertainment news
// page. Like the catalog client it fails soft: any fetch or parse problem
// yields an empty list.
package news

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/fetch"
)

// DefaultFeedURL is used when no feed is configured.
const DefaultFeedURL = "https://www.hollywoodreporter.com/topic/movies/"

const maxArticles = 10

type Article struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

type Client struct {
	feedURL string
	http    *http.Client
}

func NewClient(feedURL string) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}

	// The news source carries no at-most-once contract, so retries are
	// fine here, unlike the catalog client.
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = nil

	return &Client{feedURL: feedURL, http: rc.StandardClient()}
}

// Headlines fetches the feed page and extracts up to ten headline items.
func (c *Client) Headlines(ctx context.Context) []Article {
	res, err := fetch.Do(ctx, &fetch.Req{Method: "GET", URL: c.feedURL}, c.http)
	if err != nil {
		utils.Log.Warn("news fetch failed: ", err)
		return nil
	}
	if res.StatusCode != 200 {
		utils.Log.Warnf("news source returned status %d", res.StatusCode)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.BodyString))
	if err != nil {
		utils.Log.Warn("failed to parse news page: ", err)
		return nil
	}

	var articles []Article
	doc.Find("article").EachWithBreak(func(i int, s *goquery.Selection) bool {
		link := s.Find("a").First()
		href, _ := link.Attr("href")

		title := strings.TrimSpace(s.Find("h1, h2, h3").First().Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" || href == "" {
			return true
		}

		articles = append(articles, Article{
			Title:   title,
			URL:     absoluteURL(c.feedURL, href),
			Summary: strings.TrimSpace(s.Find("p").First().Text()),
		})
		return len(articles) < maxArticles
	})

	return articles
}

func absoluteURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

package calendar

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/brightwood-pta/directorybackend/models"
)

// corsProxies are tried in order when the feed cannot be fetched directly.
// The walk stops at the first proxy that answers.
var corsProxies = []string{
	"https://corsproxy.io/?",
	"https://api.allorigins.win/raw?url=",
	"https://cors-anywhere.herokuapp.com/",
	"https://thingproxy.freeboard.io/fetch/",
}

const fetchTimeout = 5 * time.Second

// Client fetches the school events feed. There is no retry policy beyond the
// proxy walk; total failure degrades to the built-in mock events rather than
// an error.
type Client struct {
	HTTP *http.Client
	// FeedURL is the district ICS feed; empty means mock events only
	FeedURL string
}

// NewClient creates a calendar client for the given feed URL.
func NewClient(feedURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: fetchTimeout},
		FeedURL: feedURL,
	}
}

// FetchEvents returns the parsed feed, trying the direct URL and then each
// proxy. On total failure it logs and returns mock events.
func (c *Client) FetchEvents(ctx context.Context) []models.CalendarEvent {
	if c.FeedURL == "" {
		return MockEvents(time.Now())
	}

	attempts := append([]string{c.FeedURL}, proxiedURLs(c.FeedURL)...)
	for _, attempt := range attempts {
		data, err := c.fetch(ctx, attempt)
		if err != nil {
			log.Printf("Warning: calendar fetch via %s failed: %v", attempt, err)
			continue
		}
		return ParseICal(data)
	}

	log.Printf("Warning: all calendar fetch attempts failed, serving mock events")
	return MockEvents(time.Now())
}

func (c *Client) fetch(ctx context.Context, fetchURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "SchoolDirectoryApp/1.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("calendar fetch failed with status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func proxiedURLs(feedURL string) []string {
	urls := make([]string, 0, len(corsProxies))
	for _, proxy := range corsProxies {
		urls = append(urls, proxy+url.QueryEscape(feedURL))
	}
	return urls
}

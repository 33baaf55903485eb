package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/config"
)

const (
	retryWait    = 500 * time.Millisecond
	retryMaxWait = 5 * time.Second
	sessionName  = "session"
)

// ErrStatus is returned when the site answers with anything but 200.
var ErrStatus = errors.New("unexpected status")

// Downloader retrieves the raw input for one day.
type Downloader interface {
	Input(ctx context.Context, year int, day types.Day) ([]byte, error)
}

// Client downloads inputs with a session cookie.
type Client struct {
	http *resty.Client
}

// NewClient builds a Client for the given fetch settings and session cookie.
func NewClient(cfg config.FetchConfig, session string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		SetHeader("User-Agent", cfg.UserAgent).
		SetCookie(&http.Cookie{Name: sessionName, Value: session}).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			code := resp.StatusCode()
			return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
		})
	return &Client{http: c}
}

// Input fetches the input for day of the given event year.
func (c *Client) Input(ctx context.Context, year int, day types.Day) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"year": strconv.Itoa(year),
			"day":  day.String(),
		}).
		Get("/{year}/day/{day}/input")
	if err != nil {
		return nil, fmt.Errorf("fetch: get day %d input: %w", day, err)
	}

	switch code := resp.StatusCode(); code {
	case http.StatusOK:
		return resp.Body(), nil
	case http.StatusBadRequest, http.StatusUnauthorized:
		return nil, fmt.Errorf("fetch: day %d: %w %d (session cookie missing or expired)", day, ErrStatus, code)
	case http.StatusNotFound:
		return nil, fmt.Errorf("fetch: day %d: %w %d (puzzle not unlocked yet?)", day, ErrStatus, code)
	default:
		return nil, fmt.Errorf("fetch: day %d: %w %d", day, ErrStatus, code)
	}
}

// lazyClient defers session resolution until the first download, so runs
// whose inputs are already on disk never need a cookie.
type lazyClient struct {
	cfg     config.FetchConfig
	session func() (string, error)

	once   sync.Once
	client *Client
	err    error
}

// NewLazyClient returns a Downloader that calls session and builds the
// Client on first use.
func NewLazyClient(cfg config.FetchConfig, session func() (string, error)) Downloader {
	return &lazyClient{cfg: cfg, session: session}
}

func (l *lazyClient) Input(ctx context.Context, year int, day types.Day) ([]byte, error) {
	l.once.Do(func() {
		s, err := l.session()
		if err != nil {
			l.err = err
			return
		}
		l.client = NewClient(l.cfg, s)
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.client.Input(ctx, year, day)
}

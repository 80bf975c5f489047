package market

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/compensation"
)

const (
	adzunaURL       = "https://api.adzuna.com/v1/api"
	defaultCountry  = "gb"
	userAgent       = "spigell/offer-advisor"
	contentType     = "application/json"
	contentEncoding = "gzip"
	// Results requested per page unless SearchParams overrides it.
	resultsPerPage = 50
)

// SearchParams are sent as query parameters. The adzuna tag names the parameter.
type SearchParams struct {
	What           string `adzuna:"what"`
	Where          string `adzuna:"where"`
	ResultsPerPage int    `adzuna:"results_per_page"`
	MaxDaysOld     int    `adzuna:"max_days_old"`
	Category       string `adzuna:"category"`
}

type searchResponse struct {
	Count   int   `json:"count"`
	Results []any `json:"results"`
}

// Adzuna queries the Adzuna job search API for salary adverts.
type Adzuna struct {
	appID      string
	appKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
	Country    string
	Currency   string
	// MaxPages bounds pagination; the first page is always fetched.
	MaxPages int
}

func NewAdzuna(logger *zap.Logger, appID, appKey string) *Adzuna {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Adzuna{
		appID:  appID,
		appKey: appKey,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent: userAgent,
		APIURL:    adzunaURL,
		Country:   defaultCountry,
		Currency:  compensation.DefaultCurrency,
		MaxPages:  1,
	}
}

// Stats implements Provider.
func (a *Adzuna) Stats(ctx context.Context, title, location string) (*compensation.MarketStats, error) {
	listings, err := a.Search(ctx, &SearchParams{What: title, Where: location})
	if err != nil {
		return nil, err
	}

	stats, err := Analyze(listings, a.Currency)
	if err != nil {
		return nil, fmt.Errorf("analyze %d listings for %q: %w", len(listings), title, err)
	}

	a.logger.Debug("market salary data collected",
		zap.String("title", title),
		zap.String("location", location),
		zap.Int("listings", len(listings)),
		zap.Int("samples", stats.SampleCount),
		zap.Float64("average", stats.Average),
	)

	return stats, nil
}

// Search returns listings from up to MaxPages result pages.
func (a *Adzuna) Search(ctx context.Context, params *SearchParams) ([]Listing, error) {
	if a.appID == "" || a.appKey == "" {
		return nil, errors.New("adzuna credentials are not configured")
	}

	if params.ResultsPerPage == 0 {
		params.ResultsPerPage = resultsPerPage
	}

	q := buildParams(params)
	q.Set("app_id", a.appID)
	q.Set("app_key", a.appKey)

	var items []any
	for page := 1; ; page++ {
		response, err := a.getPage(ctx, page, q)
		if err != nil {
			return nil, err
		}

		items = append(items, response.Results...)

		pages := (response.Count + params.ResultsPerPage - 1) / params.ResultsPerPage
		if page >= pages || page >= a.MaxPages || len(response.Results) == 0 {
			break
		}

		a.logger.Debug("additional request needed", zap.String("reason", fmt.Sprintf(
			"current page (%d) < all page count (%d)", page, pages),
		))
	}

	var listings []Listing
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &listings,
		TagName: "json",
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode adzuna listings: %w", err)
	}

	return listings, nil
}

func (a *Adzuna) getPage(ctx context.Context, page int, q url.Values) (*searchResponse, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d", a.APIURL, a.Country, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", a.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)
	req.URL.RawQuery = q.Encode()

	// Credentials stay out of the logs.
	a.logger.Debug("make request", zap.String("url", endpoint), zap.String("what", q.Get("what")))
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request adzuna page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	var response searchResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode adzuna response: %w", err)
	}

	return &response, nil
}

func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	v := reflect.ValueOf(params).Elem()
	for _, field := range reflect.VisibleFields(v.Type()) {
		key := field.Tag.Get("adzuna")
		if key == "" {
			continue
		}

		switch value := v.FieldByIndex(field.Index).Interface().(type) {
		case string:
			if value != "" {
				q.Set(key, value)
			}
		case int:
			if value != 0 {
				q.Set(key, strconv.Itoa(value))
			}
		}
	}

	return q
}

package language

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wassat/website/internal/i18n"
)

// Fetcher obtains the dictionary for a language.
type Fetcher interface {
	Fetch(ctx context.Context, lang i18n.Language) (*i18n.Dictionary, error)
}

// CatalogFetcher selects dictionaries compiled into the binary or loaded
// at startup.
type CatalogFetcher struct {
	Catalog *i18n.Catalog
}

func (f CatalogFetcher) Fetch(ctx context.Context, lang i18n.Language) (*i18n.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dict, ok := f.Catalog.Get(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %q", i18n.ErrUnknownLanguage, lang)
	}
	return dict, nil
}

// maxDictionarySize bounds a remote dictionary payload.
const maxDictionarySize = 1 << 20

// ErrDictionaryTooLarge is returned for a remote dictionary larger than
// maxDictionarySize.
var ErrDictionaryTooLarge = fmt.Errorf("dictionary exceeds %d bytes", maxDictionarySize)

// HTTPFetcher downloads <BaseURL>/<lang>.json.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher creates a fetcher with a bounded client timeout.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, lang i18n.Language) (*i18n.Dictionary, error) {
	url := fmt.Sprintf("%s/%s.json", f.BaseURL, lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDictionarySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if len(data) > maxDictionarySize {
		return nil, fmt.Errorf("fetching %s: %w", url, ErrDictionaryTooLarge)
	}
	dict, err := i18n.ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return dict, nil
}

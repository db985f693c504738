// Package viewsource implements the view.Loader contract with file, fs.FS,
// and HTTP strategies.
package viewsource

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-uikit/pkg/view"
)

// Loader delegates to a strategy picked from the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ view.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options view.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the raw document bytes for the source and parses them.
func (l *Loader) Load(ctx context.Context, src view.Source) (view.Document, error) {
	if src == nil {
		return view.Document{}, errors.New("viewsource: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case view.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case view.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case view.SourceKindURL:
		if !l.allowHTTP {
			return view.Document{}, errors.New("viewsource: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("viewsource: unsupported source kind")
	}
	if err != nil {
		return view.Document{}, err
	}

	return view.ParseFrom(data, src.Location())
}

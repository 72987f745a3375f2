package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/joefazee/travelsheet/models"
)

// maxDocumentSize bounds the catalog document read from any source.
const maxDocumentSize = 64 << 20

// FileSource reads the catalog document from the local filesystem.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

func (s *FileSource) Load(_ context.Context) (map[string]*models.Country, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.Path, err)
	}
	defer f.Close()

	return DecodeCatalog(io.LimitReader(f, maxDocumentSize))
}

// HTTPSource fetches the catalog document with a single GET.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource uses http.DefaultClient when client is nil.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) Name() string {
	return "http:" + s.URL
}

func (s *HTTPSource) Load(ctx context.Context) (map[string]*models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	return DecodeCatalog(io.LimitReader(resp.Body, maxDocumentSize))
}

// DecodeCatalog parses a document of the form {"PL": {...}, "DE": {...}}.
// A record without iso2 takes its code from the document key.
func DecodeCatalog(r io.Reader) (map[string]*models.Country, error) {
	var raw map[string]*models.Country
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := make(map[string]*models.Country, len(raw))
	for key, rec := range raw {
		if rec == nil {
			continue
		}
		if rec.Code == "" {
			rec.Code = strings.ToUpper(strings.TrimSpace(key))
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("record %q: %w", key, err)
		}
		if _, dup := out[rec.Code]; dup {
			return nil, fmt.Errorf("record %q: %w", key, models.ErrDuplicateCountry)
		}
		out[rec.Code] = rec
	}
	return out, nil
}

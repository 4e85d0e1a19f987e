package vast

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	fetchTimeout = 15 * time.Second
	maxBodySize  = 8 << 20 // VAST responses are small; cap defensively
)

var urlRe = regexp.MustCompile(`(?i)^https?://`)

var ErrBadURL = errors.New("VAST URL must start with http:// or https://")

type MediaFile struct {
	URL    string `json:"url"`
	Type   string `json:"type"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

type Preview struct {
	MediaFiles   []MediaFile `json:"media_files"`
	Impressions  []string    `json:"impressions"`
	ClickThrough string      `json:"click_through,omitempty"`
}

// Client fetches and parses VAST tags.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: fetchTimeout}}
}

// Fetch pulls a VAST document and extracts its media files, impression
// pixels and first click-through. Redirects are followed by the default
// client policy.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Preview, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !urlRe.MatchString(rawURL) {
		return Preview{}, ErrBadURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Preview{}, fmt.Errorf("failed to fetch VAST URL: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Preview{}, fmt.Errorf("failed to fetch VAST URL: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Preview{}, fmt.Errorf("failed to fetch VAST URL: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Preview{}, fmt.Errorf("failed to fetch VAST URL: %w", err)
	}
	return Parse(body)
}

// Parse walks the VAST XML namespace-insensitively: element local names
// only, URLs taken from the element text (usually CDATA). Wrapper chains
// are not followed; the document is reported as served.
func Parse(doc []byte) (Preview, error) {
	p := Preview{MediaFiles: []MediaFile{}, Impressions: []string{}}

	dec := xml.NewDecoder(bytes.NewReader(doc))
	var attrs []xml.Attr
	var text strings.Builder
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Preview{}, fmt.Errorf("invalid VAST XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
			attrs = append(attrs[:0], t.Attr...)
			text.Reset()
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			url := strings.TrimSpace(text.String())
			text.Reset()
			if !strings.HasPrefix(url, "http") {
				continue
			}
			switch t.Name.Local {
			case "MediaFile":
				if !hasMediaURL(p.MediaFiles, url) {
					p.MediaFiles = append(p.MediaFiles, MediaFile{
						URL:    url,
						Type:   attrValue(attrs, "type"),
						Width:  attrValue(attrs, "width"),
						Height: attrValue(attrs, "height"),
					})
				}
			case "Impression":
				if !containsString(p.Impressions, url) {
					p.Impressions = append(p.Impressions, url)
				}
			case "ClickThrough":
				if p.ClickThrough == "" {
					p.ClickThrough = url
				}
			}
		}
	}
	if !sawElement {
		return Preview{}, errors.New("invalid VAST XML: empty document")
	}
	return p, nil
}

func attrValue(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func hasMediaURL(mm []MediaFile, url string) bool {
	for _, m := range mm {
		if m.URL == url {
			return true
		}
	}
	return false
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

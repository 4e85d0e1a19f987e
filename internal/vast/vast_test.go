package vast_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renamer-service/internal/vast"
)

const sampleVAST = `<?xml version="1.0" encoding="UTF-8"?>
<VAST version="3.0" xmlns="http://www.iab.com/VAST">
  <Ad>
    <InLine>
      <Impression><![CDATA[https://track.example.com/imp1]]></Impression>
      <Impression><![CDATA[https://track.example.com/imp1]]></Impression>
      <Creatives>
        <Creative>
          <Linear>
            <VideoClicks>
              <ClickThrough><![CDATA[https://brand.example.com/landing]]></ClickThrough>
            </VideoClicks>
            <MediaFiles>
              <MediaFile type="video/mp4" width="1920" height="1080"><![CDATA[https://cdn.example.com/spot.mp4]]></MediaFile>
              <MediaFile type="video/mp4" width="1920" height="1080"><![CDATA[https://cdn.example.com/spot.mp4]]></MediaFile>
            </MediaFiles>
          </Linear>
        </Creative>
      </Creatives>
    </InLine>
  </Ad>
</VAST>`

func TestParse(t *testing.T) {
	p, err := vast.Parse([]byte(sampleVAST))
	require.NoError(t, err)

	require.Len(t, p.MediaFiles, 1, "duplicate media URLs collapse")
	assert.Equal(t, "https://cdn.example.com/spot.mp4", p.MediaFiles[0].URL)
	assert.Equal(t, "video/mp4", p.MediaFiles[0].Type)
	assert.Equal(t, "1920", p.MediaFiles[0].Width)

	assert.Equal(t, []string{"https://track.example.com/imp1"}, p.Impressions)
	assert.Equal(t, "https://brand.example.com/landing", p.ClickThrough)
}

func TestParseInvalid(t *testing.T) {
	_, err := vast.Parse([]byte("not xml at all <"))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(sampleVAST))
	}))
	defer srv.Close()

	p, err := vast.NewClient().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, p.MediaFiles, 1)
}

func TestFetchRejectsBadScheme(t *testing.T) {
	_, err := vast.NewClient().Fetch(context.Background(), "ftp://example.com/vast.xml")
	assert.ErrorIs(t, err, vast.ErrBadURL)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := vast.NewClient().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

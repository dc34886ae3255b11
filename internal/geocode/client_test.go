package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geocodeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse-geocode-client", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("localityLanguage"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestCityNameFromCity(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"city": "Atlanta", "locality": "Downtown"}`)
	defer srv.Close()

	client := NewClient(NewHTTPClient(srv.URL))
	city, err := client.CityName(context.Background(), 33.749, -84.388)
	require.NoError(t, err)
	assert.Equal(t, "Atlanta", city)
}

func TestCityNameFallsBackToLocality(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"city": "", "locality": "Sandy Springs"}`)
	defer srv.Close()

	client := NewClient(NewHTTPClient(srv.URL))
	city, err := client.CityName(context.Background(), 33.92, -84.37)
	require.NoError(t, err)
	assert.Equal(t, "Sandy Springs", city)
}

func TestCityNameNeitherNamed(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"city": "", "locality": ""}`)
	defer srv.Close()

	client := NewClient(NewHTTPClient(srv.URL))
	_, err := client.CityName(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestCityNameNon2xx(t *testing.T) {
	srv := geocodeServer(t, http.StatusBadGateway, `upstream error`)
	defer srv.Close()

	client := NewClient(NewHTTPClient(srv.URL))
	_, err := client.CityName(context.Background(), 33.749, -84.388)
	assert.Error(t, err)
}

func TestCityNameMalformedBody(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{not json`)
	defer srv.Close()

	client := NewClient(NewHTTPClient(srv.URL))
	_, err := client.CityName(context.Background(), 33.749, -84.388)
	assert.Error(t, err)
}

func TestCityNameTransportError(t *testing.T) {
	client := NewClient(NewHTTPClient("http://127.0.0.1:1"))
	_, err := client.CityName(context.Background(), 33.749, -84.388)
	assert.Error(t, err)
}

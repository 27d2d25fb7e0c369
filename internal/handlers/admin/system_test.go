package admin

import (
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luvera_back_end/internal/database"
)

type closeRecorder struct {
	*strings.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

type staticTransport struct {
	status int
	body   *closeRecorder
}

func (t *staticTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: t.status,
		Header:     http.Header{"X-Elastic-Product": []string{"Elasticsearch"}},
		Body:       t.body,
	}, nil
}

func elasticClientFor(t *testing.T, transport *staticTransport) *elasticsearch.Client {
	t.Helper()
	client, err := elasticsearch.NewClient(elasticsearch.Config{Transport: transport})
	require.NoError(t, err)
	return client
}

func TestElasticStatusClosesBodyOnErrorResponse(t *testing.T) {
	body := &closeRecorder{Reader: strings.NewReader("")}
	database.Elastic = elasticClientFor(t, &staticTransport{status: http.StatusInternalServerError, body: body})

	assert.Equal(t, "down", elasticStatus())
	assert.True(t, body.closed)
}

func TestElasticStatusUp(t *testing.T) {
	body := &closeRecorder{Reader: strings.NewReader("")}
	database.Elastic = elasticClientFor(t, &staticTransport{status: http.StatusOK, body: body})

	assert.Equal(t, "up", elasticStatus())
	assert.True(t, body.closed)
}

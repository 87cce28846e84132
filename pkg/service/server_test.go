package service_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oqlog "github.com/oscquery-protocol/oscquery-go/pkg/log"
	"github.com/oscquery-protocol/oscquery-go/pkg/model"
	"github.com/oscquery-protocol/oscquery-go/pkg/osc"
	"github.com/oscquery-protocol/oscquery-go/pkg/service"
	"github.com/oscquery-protocol/oscquery-go/pkg/unit"
)

type captureLogger struct {
	mu     sync.Mutex
	events []oqlog.Event
}

func (c *captureLogger) Log(event oqlog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func newTestServer(t *testing.T, queryLogger oqlog.Logger) *httptest.Server {
	t.Helper()

	info := model.NewHostInfo("My OSC Server", "127.0.0.1", 9000)
	info.Extensions.Access = true
	info.Extensions.Value = true

	tree := model.New(info)
	require.NoError(t, tree.Insert(model.Parameter{
		Path:        "/endpoint1",
		Value:       osc.Float(0.0),
		Access:      model.AccessReadWrite.Ptr(),
		Unit:        unit.Distance(unit.Centimeter),
		Description: "This is endpoint1",
		Range:       &model.Range{Min: 0, Max: 100},
	}))
	require.NoError(t, tree.Insert(model.Parameter{
		Path:        "/endpoint2",
		Value:       osc.Int(0),
		Access:      model.AccessReadOnly.Ptr(),
		Description: "This is endpoint2",
	}))

	srv, err := service.New(service.Config{QueryLogger: queryLogger}, tree)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServeFullTree(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"FULL_PATH":"/"`)
	assert.Contains(t, body, `"endpoint1"`)
	assert.Contains(t, body, `"endpoint2"`)
	assert.Contains(t, body, `"HOST_INFO"`)
}

func TestServeLeaf(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/endpoint1")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{
		"DESCRIPTION": "This is endpoint1",
		"FULL_PATH":   "/endpoint1",
		"ACCESS":      3,
		"TYPE":        "f",
		"VALUE":       [0.0],
		"RANGE":       [{"MIN": 0.0, "MAX": 100.0}],
		"UNIT":        ["distance.cm"]
	}`, body)
}

func TestServeAttributeFilter(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/endpoint1?VALUE")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"VALUE":[0.0]}`, body)

	// Absent attribute yields an empty object, not an error.
	status, body = get(t, ts.URL+"/endpoint2?RANGE")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "{}", body)

	// Lenient filter parsing.
	status, body = get(t, ts.URL+"/endpoint2?ACCESS=")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ACCESS":1}`, body)
}

func TestServeHostInfoAnywhere(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, path := range []string{"/", "/endpoint1", "/no/such/path"} {
		status, body := get(t, ts.URL+path+"?HOST_INFO")
		assert.Equal(t, http.StatusOK, status, "path %s", path)
		assert.Contains(t, body, `"NAME":"My OSC Server"`, "path %s", path)
		assert.Contains(t, body, `"PATH_CHANGED":false`, "path %s", path)
	}
}

func TestServeNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "error")
}

func TestServeMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/endpoint1", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServePublishesFrozenTree(t *testing.T) {
	tree := model.New(nil)
	require.NoError(t, tree.Insert(model.Parameter{Path: "/a", Value: osc.Float(0)}))

	_, err := service.New(service.Config{}, tree)
	require.NoError(t, err)

	assert.True(t, tree.Frozen())
	assert.ErrorIs(t, tree.Insert(model.Parameter{Path: "/b", Value: osc.Float(0)}), model.ErrFrozen)
}

func TestServeEmitsQueryEvents(t *testing.T) {
	capture := &captureLogger{}
	ts := newTestServer(t, capture)

	get(t, ts.URL+"/endpoint1?VALUE")
	get(t, ts.URL+"/missing")

	capture.mu.Lock()
	defer capture.mu.Unlock()
	require.Len(t, capture.events, 2)

	first := capture.events[0]
	assert.Equal(t, "/endpoint1", first.Path)
	assert.Equal(t, "VALUE", first.Attribute)
	assert.Equal(t, http.StatusOK, first.Status)
	assert.NotEmpty(t, first.RequestID)
	assert.Positive(t, first.BodyBytes)

	second := capture.events[1]
	assert.True(t, second.NotFound())
}

func TestServeConcurrentReads(t *testing.T) {
	ts := newTestServer(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				status, _ := get(t, ts.URL+"/endpoint1?VALUE")
				assert.Equal(t, http.StatusOK, status)
			}
		}()
	}
	wg.Wait()
}

func TestNewRejectsNilTree(t *testing.T) {
	_, err := service.New(service.Config{}, nil)
	assert.Error(t, err)
}

package bdjobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		ListURLTemplate:   srv.URL + "/list?page={page}",
		DetailURLTemplate: srv.URL + "/detail/{job_id}",
	})
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	_, err = NewClient(Config{ListURLTemplate: "http://x/list", DetailURLTemplate: "http://x/d/{job_id}"})
	assert.Error(t, err, "list template without page placeholder must be rejected")

	_, err = NewClient(Config{ListURLTemplate: "http://x/list?p={page}", DetailURLTemplate: "http://x/d"})
	assert.Error(t, err, "detail template without job_id placeholder must be rejected")
}

func TestListPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Equal(t, "https://www.bdjobs.com/", r.Header.Get("Referer"))
		assert.Equal(t, "gateway.bdjobs.com", r.Host)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"Jobid":1367712,"jobTitle":"Accounts Officer","companyName":"Acme Ltd","deadlineDB":"2026-09-14T10:00:00Z"},
			{"Jobid":1367713,"JobTitleBng":"হিসাবরক্ষক","companyName":"Beta Ltd","deadlineDB":"2026-09-20T10:00:00Z"}
		]}`))
	})

	items, err := client.ListPage(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1367712", items[0].Key())
	assert.Equal(t, "Accounts Officer", items[0].Title)
	assert.Equal(t, "হিসাবরক্ষক", items[1].TitleBangla)
}

func TestHostOverride(t *testing.T) {
	// The gateway routes on the Host header, so requests must carry the
	// public hostname even though the templates point elsewhere.
	var gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		ListURLTemplate:   srv.URL + "/list?page={page}",
		DetailURLTemplate: srv.URL + "/detail/{job_id}",
	})
	require.NoError(t, err)

	_, err = client.ListPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "gateway.bdjobs.com", gotHost)

	client, err = NewClient(Config{
		ListURLTemplate:   srv.URL + "/list?page={page}",
		DetailURLTemplate: srv.URL + "/detail/{job_id}",
		Host:              "staging.example.com",
	})
	require.NoError(t, err)

	_, err = client.ListPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "staging.example.com", gotHost)
}

func TestListPagePastEnd(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ListPage(context.Background(), 99)
		assert.True(t, errors.Is(err, ErrNoMorePages), "status %d must map to ErrNoMorePages", status)
	}
}

func TestListPageServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusInternalServerError)
	})

	_, err := client.ListPage(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoMorePages))
	assert.Contains(t, err.Error(), "gateway exploded")
}

func TestDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detail/1367712", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{
			"JobDescription":"<p>Maintain ledgers</p>",
			"experience":"2 years",
			"ApplyEmail":"hr@gmail.com",
			"JobSalaryRange":"Negotiable"
		}]}`))
	})

	detail, err := client.Detail(context.Background(), "1367712")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "<p>Maintain ledgers</p>", detail.JobDescription)
	assert.Equal(t, "2 years", detail.Experience)
	assert.Equal(t, "hr@gmail.com", detail.ApplyEmail)
}

func TestDetailEmptyEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	detail, err := client.Detail(context.Background(), "1367712")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

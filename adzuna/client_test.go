package adzuna

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-id", "test-key", zerolog.Nop(), WithBaseURL(server.URL))
}

const searchPayload = `{
	"count": 2,
	"mean": 114500.5,
	"results": [
		{
			"id": "4321",
			"created": "2024-03-01T12:00:00Z",
			"title": "Senior Go Engineer",
			"description": "Build distributed systems.",
			"redirect_url": "https://example.com/jobs/4321",
			"latitude": 30.2672,
			"longitude": -97.7431,
			"category": {"tag": "it-jobs", "label": "IT Jobs"},
			"location": {"area": ["US", "Texas", "Austin"], "display_name": "Austin, Texas"},
			"salary_min": 120000,
			"salary_max": 160000,
			"salary_is_predicted": "0",
			"company": {"display_name": "Example Corp"},
			"contract_type": "permanent",
			"contract_time": "full_time",
			"adref": "ref-4321"
		},
		{
			"id": "8765",
			"created": "2024-03-02T09:30:00Z",
			"title": "Backend Developer",
			"description": "APIs all day.",
			"redirect_url": "https://example.com/jobs/8765",
			"latitude": 51.5074,
			"longitude": -0.1278,
			"category": {"tag": "it-jobs", "label": "IT Jobs"},
			"location": {"area": ["UK", "London"], "display_name": "London"},
			"salary_min": 60000,
			"salary_max": 80000,
			"salary_is_predicted": "1",
			"company": {"display_name": "Another Ltd"},
			"adref": "ref-8765"
		}
	]
}`

func TestFetchSearchSuccess(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/us/search/1", r.URL.Path)
		assert.Equal(t, "test-id", r.URL.Query().Get("app_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("app_key"))
		assert.Equal(t, "software engineer", r.URL.Query().Get("what"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	})

	results, err := client.Search().What("software engineer").Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, results.Count)
	assert.InDelta(t, 114500.5, results.Mean, 0.001)
	require.Len(t, results.Results, 2)

	job := results.Results[0]
	assert.Equal(t, "4321", job.ID)
	assert.Equal(t, "Senior Go Engineer", job.Title)
	assert.Equal(t, "Example Corp", job.Company.DisplayName)
	assert.Equal(t, ContractTypePermanent, job.ContractType)
	assert.Equal(t, ContractTimeFullTime, job.ContractTime)
	assert.False(t, bool(job.SalaryIsPredicted))
	assert.Equal(t, []string{"US", "Texas", "Austin"}, job.Location.Area)

	assert.True(t, bool(results.Results[1].SalaryIsPredicted))
	assert.Empty(t, results.Results[1].ContractType)
}

func TestFetchStructuredAPIError(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"exception":"AUTH_FAIL","doc":"https://api.adzuna.com/v1/doc","display":"Authorisation failed"}`))
	})

	_, err := client.Search().What("engineer").Fetch(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.NotNil(t, apiErr.Exception)
	assert.Equal(t, "AUTH_FAIL", apiErr.Exception.Exception)
	assert.Equal(t, "Authorisation failed", apiErr.Exception.Display)
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, apiErr.IsRateLimited())
}

func TestFetchUnstructuredAPIError(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.Categories().Fetch(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Nil(t, apiErr.Exception)
	assert.Contains(t, apiErr.Body, "bad gateway")
}

func TestFetchRateLimited(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Histogram().What("excel").Fetch(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsRateLimited())
}

func TestFetchDecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "definitely not json"},
		{name: "wrong shape", body: `{"count": "not-a-number", "results": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.Search().Fetch(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecodeResponse)

			var apiErr *APIError
			assert.False(t, errors.As(err, &apiErr), "decode failure must not be an APIError")
		})
	}
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("id", "key", zerolog.Nop(), WithBaseURL(server.URL))
	server.Close()

	_, err := client.Geodata().Fetch(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure must not be an APIError")
	assert.NotErrorIs(t, err, ErrDecodeResponse)
}

func TestFetchContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Version().Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentFetches(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Echo the what parameter back so each goroutine can verify its
		// own builder's parameters survived.
		resp := JobSearchResults{Count: 1, Results: []Job{{Title: r.URL.Query().Get("what")}}}
		json.NewEncoder(w).Encode(resp)
	})

	queries := []string{"golang", "rust", "python", "java", "zig"}
	var wg sync.WaitGroup

	for _, q := range queries {
		q := q
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := client.Search().What(q).Fetch(context.Background())
			assert.NoError(t, err)
			if err == nil {
				assert.Equal(t, q, results.Results[0].Title)
			}
		}()
	}
	wg.Wait()
}

func TestFetchTopCompanies(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/us/top_companies", r.URL.Path)
		assert.Equal(t, "software engineering", r.URL.Query().Get("what"))
		assert.Equal(t, "US", r.URL.Query().Get("location0"))
		assert.Equal(t, "Texas", r.URL.Query().Get("location1"))

		w.Write([]byte(`{"leaderboard":[{"display_name":"Example Corp","count":42,"average_salary":120000}]}`))
	})

	companies, err := client.TopCompanies().
		What("software engineering").
		Location("US").
		Location("Texas").
		Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, companies.Leaderboard, 1)
	assert.Equal(t, "Example Corp", companies.Leaderboard[0].DisplayName)
	assert.Equal(t, 42, companies.Leaderboard[0].Count)
}

func TestFetchHistogram(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/us/histogram", r.URL.Path)
		w.Write([]byte(`{"histogram":{"20000":1500,"40000":900,"60000":300}}`))
	})

	hist, err := client.Histogram().What("photoshop").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500, hist.Histogram["20000"])
	assert.Len(t, hist.Histogram, 3)
}

func TestFetchHistory(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/gb/history", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("months"))
		w.Write([]byte(`{"month":{"2024-01":41000.5,"2024-02":41250.0}}`))
	})

	history, err := client.History().
		Country(CountryUnitedKingdom).
		Months(12).
		Fetch(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 41000.5, history.Month["2024-01"], 0.001)
}

func TestFetchCategories(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/us/categories", r.URL.Path)
		w.Write([]byte(`{"results":[{"tag":"it-jobs","label":"IT Jobs"},{"tag":"sales-jobs","label":"Sales Jobs"}]}`))
	})

	categories, err := client.Categories().Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, categories.Results, 2)
	assert.Equal(t, "it-jobs", categories.Results[0].Tag)
}

func TestFetchGeodata(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/us/geodata", r.URL.Path)
		w.Write([]byte(`{"locations":[{"count":120,"location":{"area":["US","Texas"],"display_name":"Texas"}}]}`))
	})

	geo, err := client.Geodata().Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, geo.Locations, 1)
	assert.Equal(t, 120, geo.Locations[0].Count)
	require.NotNil(t, geo.Locations[0].Location)
	assert.Equal(t, "Texas", geo.Locations[0].Location.DisplayName)
}

func TestFetchVersion(t *testing.T) {
	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		assert.Equal(t, "test-id", r.URL.Query().Get("app_id"))
		w.Write([]byte(`{"api_version":1,"software_version":"Nemesis 9.1"}`))
	})

	version, err := client.Version().Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version.APIVersion)
	assert.Equal(t, "Nemesis 9.1", version.SoftwareVersion)
}

func TestUserAgentHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "adzuna-go/test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"api_version":1,"software_version":"x"}`))
	}))
	defer server.Close()

	client := NewClient("test-id", "test-key", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithUserAgent("adzuna-go/test"))

	_, err := client.Version().Fetch(context.Background())
	require.NoError(t, err)
}

func TestWithTimeoutOption(t *testing.T) {
	client := NewClient("id", "key", zerolog.Nop(), WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

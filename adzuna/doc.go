// Package adzuna provides a client for the Adzuna job search API.
//
// Adzuna aggregates job advertisements across twenty national markets and
// exposes search, company leaderboard, salary statistics and geographic
// endpoints over HTTPS. This package maps each endpoint onto a typed,
// chainable request builder.
//
// # Usage
//
// Create a client with your application credentials, then configure and
// fetch a request:
//
//	logger := zerolog.New(os.Stdout)
//	client := adzuna.NewClient("app-id", "app-key", logger)
//
//	ctx := context.Background()
//	jobs, err := client.Search().
//		What("software engineer").
//		Where("austin").
//		FullTime().
//		ResultsPerPage(10).
//		Fetch(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Builders are cheap to create and single-use; each Fetch issues exactly
// one GET. A Client is immutable after construction, so builders created
// from the same Client may be fetched concurrently.
//
// # Parameters
//
// Setters record exactly what the caller provides and perform no client
// side validation; the API returns a structured error for unsupported
// parameter combinations. Location is the one repeatable setter: each call
// narrows the filter by one more level of the area hierarchy, transmitted
// as location0 through location7.
//
// # Error Handling
//
// Fetch distinguishes four failure classes:
//
//   - transport failures, returned as wrapped errors from net/http
//   - API failures with a structured body, returned as *APIError with
//     Exception populated
//   - API failures without a structured body, returned as *APIError with
//     Exception nil
//   - undecodable 2xx bodies, returned as errors wrapping ErrDecodeResponse
//
// Classify with the usual tools:
//
//	var apiErr *adzuna.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// bad credentials
//	}
//	if errors.Is(err, adzuna.ErrDecodeResponse) {
//		// API contract drift or client bug, not an API-reported failure
//	}
//
// No failure is retried or swallowed; rate limiting is the API's concern
// and surfaces as an *APIError for which IsRateLimited reports true.
package adzuna

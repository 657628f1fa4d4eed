package adzuna

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// maxLocations is the deepest locationN parameter the API accepts.
const maxLocations = 8

// request is the parameter accumulator shared by every endpoint builder.
// It holds only what the caller explicitly set; no defaults are injected
// beyond the country segment the API requires in its paths.
type request struct {
	client    *Client
	country   Country
	page      int
	params    url.Values
	locations []string
}

func newRequest(c *Client) request {
	return request{
		client:  c,
		country: CountryUnitedStates,
		page:    1,
		params:  url.Values{},
	}
}

func (r *request) set(key, value string) {
	r.params.Set(key, value)
}

func (r *request) setInt(key string, value int) {
	r.params.Set(key, strconv.Itoa(value))
}

func (r *request) addLocation(location string) {
	if len(r.locations) < maxLocations {
		r.locations = append(r.locations, location)
	}
}

// jobsPath builds the country-scoped path for an endpoint.
func (r *request) jobsPath(endpoint string) string {
	return fmt.Sprintf("/jobs/%s/%s", r.country, endpoint)
}

// SearchRequest accumulates parameters for the job search endpoint.
type SearchRequest struct {
	request
}

// What filters by keywords. Multiple terms may be space separated.
func (r *SearchRequest) What(what string) *SearchRequest {
	r.set("what", what)
	return r
}

// WhatAnd filters by keywords which must all be found.
func (r *SearchRequest) WhatAnd(what string) *SearchRequest {
	r.set("what_and", what)
	return r
}

// WhatPhrase filters by an entire phrase which must appear in the title or
// description.
func (r *SearchRequest) WhatPhrase(phrase string) *SearchRequest {
	r.set("what_phrase", phrase)
	return r
}

// WhatOr filters by keywords of which any may be found.
func (r *SearchRequest) WhatOr(what string) *SearchRequest {
	r.set("what_or", what)
	return r
}

// WhatExclude filters out jobs containing the given keywords.
func (r *SearchRequest) WhatExclude(what string) *SearchRequest {
	r.set("what_exclude", what)
	return r
}

// Where filters by a geographic centre. Place names, postal codes and so on
// may be used.
func (r *SearchRequest) Where(where string) *SearchRequest {
	r.set("where", where)
	return r
}

// TitleOnly filters by keywords searched in the title only.
func (r *SearchRequest) TitleOnly(what string) *SearchRequest {
	r.set("title_only", what)
	return r
}

// SalaryIncludeUnknown includes jobs with unknown salaries.
func (r *SearchRequest) SalaryIncludeUnknown() *SearchRequest {
	r.set("salary_include_unknown", "1")
	return r
}

// FullTime restricts results to full time jobs.
func (r *SearchRequest) FullTime() *SearchRequest {
	r.set("full_time", "1")
	return r
}

// PartTime restricts results to part time jobs.
func (r *SearchRequest) PartTime() *SearchRequest {
	r.set("part_time", "1")
	return r
}

// Contract restricts results to contract jobs.
func (r *SearchRequest) Contract() *SearchRequest {
	r.set("contract", "1")
	return r
}

// Permanent restricts results to permanent jobs.
func (r *SearchRequest) Permanent() *SearchRequest {
	r.set("permanent", "1")
	return r
}

// Company filters by the canonical company name, as found in the Company
// object of earlier results. A full list of allowed terms is not published.
func (r *SearchRequest) Company(company string) *SearchRequest {
	r.set("company", company)
	return r
}

// Distance filters by a distance in kilometres from the centre of the place
// given to Where. The API defaults to 5km.
func (r *SearchRequest) Distance(km int) *SearchRequest {
	r.setInt("distance", km)
	return r
}

// ResultsPerPage sets the number of results per page.
func (r *SearchRequest) ResultsPerPage(n int) *SearchRequest {
	if n > 0 {
		r.setInt("results_per_page", n)
	}
	return r
}

// MaxDaysOld sets an upper bound on the age in days of the oldest
// advertisement returned.
func (r *SearchRequest) MaxDaysOld(days int) *SearchRequest {
	r.setInt("max_days_old", days)
	return r
}

// SalaryMin sets the minimum salary to return results for.
func (r *SearchRequest) SalaryMin(salary int) *SearchRequest {
	r.setInt("salary_min", salary)
	return r
}

// SalaryMax sets the maximum salary to return results for.
func (r *SearchRequest) SalaryMax(salary int) *SearchRequest {
	r.setInt("salary_max", salary)
	return r
}

// SortBy specifies the ordering of search results.
func (r *SearchRequest) SortBy(by SortBy) *SearchRequest {
	r.set("sort_by", string(by))
	return r
}

// SortDir specifies the direction search results are ordered in.
func (r *SearchRequest) SortDir(dir SortDirection) *SearchRequest {
	r.set("sort_dir", string(dir))
	return r
}

// Category filters with a category tag, as returned by the categories
// endpoint.
func (r *SearchRequest) Category(tag string) *SearchRequest {
	r.set("category", tag)
	return r
}

// Location filters by a location, in the form returned in a LocationDetail
// area list. Repeated calls narrow the filter one level further each time;
// up to eight levels are transmitted as location0 through location7.
func (r *SearchRequest) Location(location string) *SearchRequest {
	r.addLocation(location)
	return r
}

// Country sets the national job market to search.
func (r *SearchRequest) Country(country Country) *SearchRequest {
	r.country = country
	return r
}

// Page selects the page of search results, starting from 1.
func (r *SearchRequest) Page(page int) *SearchRequest {
	if page > 0 {
		r.page = page
	}
	return r
}

// Fetch executes the search and returns the matching page of results.
func (r *SearchRequest) Fetch(ctx context.Context) (*JobSearchResults, error) {
	return fetch[JobSearchResults](ctx, &r.request, r.jobsPath("search/"+strconv.Itoa(r.page)))
}

// TopCompaniesRequest accumulates parameters for the top_companies endpoint.
type TopCompaniesRequest struct {
	request
}

// What filters by keywords. Multiple terms may be space separated.
func (r *TopCompaniesRequest) What(what string) *TopCompaniesRequest {
	r.set("what", what)
	return r
}

// Location filters by a location, as for SearchRequest.Location.
func (r *TopCompaniesRequest) Location(location string) *TopCompaniesRequest {
	r.addLocation(location)
	return r
}

// Category filters with a category tag.
func (r *TopCompaniesRequest) Category(tag string) *TopCompaniesRequest {
	r.set("category", tag)
	return r
}

// Country sets the national job market to query.
func (r *TopCompaniesRequest) Country(country Country) *TopCompaniesRequest {
	r.country = country
	return r
}

// Fetch executes the query and returns the company leaderboard.
func (r *TopCompaniesRequest) Fetch(ctx context.Context) (*TopCompanies, error) {
	return fetch[TopCompanies](ctx, &r.request, r.jobsPath("top_companies"))
}

// HistogramRequest accumulates parameters for the salary histogram endpoint.
type HistogramRequest struct {
	request
}

// What filters by keywords. Multiple terms may be space separated.
func (r *HistogramRequest) What(what string) *HistogramRequest {
	r.set("what", what)
	return r
}

// Location filters by a location, as for SearchRequest.Location.
func (r *HistogramRequest) Location(location string) *HistogramRequest {
	r.addLocation(location)
	return r
}

// Category filters with a category tag.
func (r *HistogramRequest) Category(tag string) *HistogramRequest {
	r.set("category", tag)
	return r
}

// Country sets the national job market to query.
func (r *HistogramRequest) Country(country Country) *HistogramRequest {
	r.country = country
	return r
}

// Fetch executes the query and returns the salary distribution.
func (r *HistogramRequest) Fetch(ctx context.Context) (*SalaryHistogram, error) {
	return fetch[SalaryHistogram](ctx, &r.request, r.jobsPath("histogram"))
}

// HistoryRequest accumulates parameters for the historical salary endpoint.
type HistoryRequest struct {
	request
}

// Months sets how many months back to retrieve data for.
func (r *HistoryRequest) Months(months int) *HistoryRequest {
	r.setInt("months", months)
	return r
}

// Location filters by a location, as for SearchRequest.Location.
func (r *HistoryRequest) Location(location string) *HistoryRequest {
	r.addLocation(location)
	return r
}

// Category filters with a category tag.
func (r *HistoryRequest) Category(tag string) *HistoryRequest {
	r.set("category", tag)
	return r
}

// Country sets the national job market to query.
func (r *HistoryRequest) Country(country Country) *HistoryRequest {
	r.country = country
	return r
}

// Fetch executes the query and returns average salaries by month.
func (r *HistoryRequest) Fetch(ctx context.Context) (*HistoricalSalary, error) {
	return fetch[HistoricalSalary](ctx, &r.request, r.jobsPath("history"))
}

// CategoriesRequest accumulates parameters for the categories endpoint.
type CategoriesRequest struct {
	request
}

// Country sets the national job market to query.
func (r *CategoriesRequest) Country(country Country) *CategoriesRequest {
	r.country = country
	return r
}

// Fetch executes the query and returns all known categories.
func (r *CategoriesRequest) Fetch(ctx context.Context) (*Categories, error) {
	return fetch[Categories](ctx, &r.request, r.jobsPath("categories"))
}

// GeodataRequest accumulates parameters for the geodata endpoint.
type GeodataRequest struct {
	request
}

// Location filters by a location, as for SearchRequest.Location.
func (r *GeodataRequest) Location(location string) *GeodataRequest {
	r.addLocation(location)
	return r
}

// Category filters with a category tag.
func (r *GeodataRequest) Category(tag string) *GeodataRequest {
	r.set("category", tag)
	return r
}

// Country sets the national job market to query.
func (r *GeodataRequest) Country(country Country) *GeodataRequest {
	r.country = country
	return r
}

// Fetch executes the query and returns job counts by location.
func (r *GeodataRequest) Fetch(ctx context.Context) (*JobGeoData, error) {
	return fetch[JobGeoData](ctx, &r.request, r.jobsPath("geodata"))
}

// VersionRequest fetches the API version. It takes no parameters.
type VersionRequest struct {
	request
}

// Fetch returns the API version information.
func (r *VersionRequest) Fetch(ctx context.Context) (*Version, error) {
	return fetch[Version](ctx, &r.request, "/version")
}

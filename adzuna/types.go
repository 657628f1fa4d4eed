package adzuna

import (
	"encoding/json"
	"fmt"
)

// SortBy selects the ordering applied to search results.
type SortBy string

const (
	SortByDefault   SortBy = "default"
	SortByHybrid    SortBy = "hybrid"
	SortByDate      SortBy = "date"
	SortBySalary    SortBy = "salary"
	SortByRelevance SortBy = "relevance"
)

// SortDirection selects the direction search results are ordered in.
type SortDirection string

const (
	// SortAscending orders results from lowest to highest.
	SortAscending SortDirection = "up"
	// SortDescending orders results from highest to lowest.
	SortDescending SortDirection = "down"
)

// Country identifies one of the national job markets Adzuna indexes.
// The value is the ISO 3166-1 country code used in request paths.
type Country string

const (
	CountryUnitedKingdom Country = "gb"
	CountryUnitedStates  Country = "us"
	CountryAustria       Country = "at"
	CountryAustralia     Country = "au"
	CountryBelgium       Country = "be"
	CountryBrazil        Country = "br"
	CountryCanada        Country = "ca"
	CountrySwitzerland   Country = "ch"
	CountryGermany       Country = "de"
	CountrySpain         Country = "es"
	CountryFrance        Country = "fr"
	CountryIndia         Country = "in"
	CountryItaly         Country = "it"
	CountryMexico        Country = "mx"
	CountryNetherlands   Country = "nl"
	CountryNewZealand    Country = "nz"
	CountryPoland        Country = "pl"
	CountryRussia        Country = "ru"
	CountrySingapore     Country = "sg"
	CountrySouthAfrica   Country = "za"
)

// ContractType distinguishes permanent positions from short-term contracts.
type ContractType string

const (
	ContractTypePermanent ContractType = "permanent"
	ContractTypeContract  ContractType = "contract"
)

// ContractTime distinguishes full-time from part-time positions.
type ContractTime string

const (
	ContractTimeFullTime ContractTime = "full_time"
	ContractTimePartTime ContractTime = "part_time"
)

// PredictedSalary reports whether a job's salary was inferred by Adzuna's
// prediction engine rather than advertised. The API encodes the flag as the
// strings "0" and "1".
type PredictedSalary bool

// UnmarshalJSON implements json.Unmarshaler.
func (p *PredictedSalary) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Some endpoints have been observed returning a bare boolean.
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("salary_is_predicted: expected string or bool, got %s", string(data))
		}
		*p = PredictedSalary(b)
		return nil
	}
	*p = s == "1"
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the API's string encoding.
func (p PredictedSalary) MarshalJSON() ([]byte, error) {
	if p {
		return json.Marshal("1")
	}
	return json.Marshal("0")
}

// Version is returned by the version endpoint.
type Version struct {
	// APIVersion is the major version of the API.
	APIVersion int `json:"api_version"`
	// SoftwareVersion is the version of the software providing the API.
	SoftwareVersion string `json:"software_version"`
}

// Company describes the company attached to an advertisement or a
// statistics leaderboard entry.
type Company struct {
	// DisplayName is the company name as provided by the advertiser.
	// Not always available.
	DisplayName string `json:"display_name,omitempty"`
	// CanonicalName is a normalised company name. When available it can be
	// passed back to the search endpoint as the company parameter.
	CanonicalName string `json:"canonical_name,omitempty"`
	// Count is the total number of advertisements posted by this company.
	// Only provided by statistics queries.
	Count int `json:"count,omitempty"`
	// AverageSalary is the average advertised salary for this company,
	// without a currency symbol. Only provided by statistics queries.
	AverageSalary float64 `json:"average_salary,omitempty"`
}

// TopCompanies is returned by the top_companies endpoint.
type TopCompanies struct {
	// Leaderboard lists companies ordered by the number of advertisements
	// they have in the database.
	Leaderboard []Company `json:"leaderboard,omitempty"`
}

// Category is a job category pairing the machine tag with a display label.
type Category struct {
	// Tag is the value accepted by the category query parameter.
	Tag string `json:"tag"`
	// Label is a display string describing the category.
	Label string `json:"label"`
}

// Categories is returned by the categories endpoint.
type Categories struct {
	Results []Category `json:"results"`
}

// HistoricalSalary is returned by the history endpoint.
type HistoricalSalary struct {
	// Month maps an ISO 8601 year-month (e.g. "2013-09") to the average
	// advertised salary for that month.
	Month map[string]float64 `json:"month,omitempty"`
}

// SalaryHistogram is returned by the histogram endpoint.
type SalaryHistogram struct {
	// Histogram maps the lower bound of each salary bucket to the number of
	// live advertisements whose salary falls in that bucket.
	Histogram map[string]int `json:"histogram,omitempty"`
}

// LocationDetail describes a location as a series of increasingly specific
// area names, e.g. ["UK", "South East England", "Surrey", "Reigate"].
type LocationDetail struct {
	// Area refines the location one level per element, most general first.
	// The elements may be serialised back into locationN request parameters.
	Area []string `json:"area,omitempty"`
	// DisplayName is a human readable name for the location.
	DisplayName string `json:"display_name,omitempty"`
}

// LocationJobs pairs a location with the number of jobs available there.
type LocationJobs struct {
	Count    int             `json:"count,omitempty"`
	Location *LocationDetail `json:"location,omitempty"`
}

// JobGeoData is returned by the geodata endpoint.
type JobGeoData struct {
	Locations []LocationJobs `json:"locations,omitempty"`
}

// Job is a single advertisement returned by the search endpoint.
type Job struct {
	// ID uniquely identifies this advertisement.
	ID string `json:"id"`
	// Created is the ISO 8601 time the ad was created at its original source.
	Created string `json:"created"`
	Title   string `json:"title"`
	// Description holds the ad details, truncated to 500 characters.
	Description string `json:"description"`
	// RedirectURL redirects to the advertisement on the advertiser's site.
	// Sending users through this URL is required by Adzuna's terms.
	RedirectURL string   `json:"redirect_url"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Category    Category `json:"category"`
	// Location is the locality of the advertisement.
	Location LocationDetail `json:"location"`
	// SalaryMin is the bottom of the pay scale in the local currency.
	SalaryMin float64 `json:"salary_min"`
	// SalaryMax is the top of the pay scale in the local currency.
	SalaryMax float64 `json:"salary_max"`
	// SalaryIsPredicted indicates the salary was predicted rather than
	// advertised.
	SalaryIsPredicted PredictedSalary `json:"salary_is_predicted"`
	Company           Company         `json:"company"`
	// ContractType is permanent or contract, when known.
	ContractType ContractType `json:"contract_type,omitempty"`
	// ContractTime is full_time or part_time, when known.
	ContractTime ContractTime `json:"contract_time,omitempty"`
	// AdRef is an opaque reference to the advertisement.
	AdRef string `json:"adref,omitempty"`
}

// JobSearchResults is returned by the search endpoint.
type JobSearchResults struct {
	// Results is one page of matching advertisements.
	Results []Job `json:"results"`
	// Count is the total number of advertisements matched.
	Count int `json:"count"`
	// Mean is the mean salary across all matched advertisements.
	Mean float64 `json:"mean"`
}

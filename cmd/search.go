package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kamui-fin/adzuna-go/adzuna"
	"github.com/kamui-fin/adzuna-go/filter"
)

var (
	searchWhat        string
	searchWhere       string
	searchCountry     string
	searchCategory    string
	searchCompany     string
	searchLocations   []string
	searchDistance    int
	searchSalaryMin   int
	searchSalaryMax   int
	searchMaxDaysOld  int
	searchPerPage     int
	searchPage        int
	searchPages       int
	searchSortBy      string
	searchSortDir     string
	searchFullTime    bool
	searchPartTime    bool
	searchContract    bool
	searchPermanent   bool
	searchFilterExpr  string
	searchUnknownPay  bool
	searchTitleOnly   string
)

// maxConcurrentPages bounds the fan-out when fetching multiple pages.
const maxConcurrentPages = 5

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job advertisements",
	Long: `Search Adzuna job advertisements with keyword, location, salary and
contract filters. Results can be narrowed further with a client-side
--filter expression, e.g.:

  adzuna search --what "software engineer" --where austin --full-time
  adzuna search --what golang --filter 'SalaryMin > 100000'`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchWhat, "what", "w", "", "keywords to search for")
	searchCmd.Flags().StringVar(&searchWhere, "where", "", "geographic centre (place name, postal code)")
	searchCmd.Flags().StringVar(&searchCountry, "country", "", "country code (default from config)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "category tag (see 'adzuna categories')")
	searchCmd.Flags().StringVar(&searchCompany, "company", "", "canonical company name")
	searchCmd.Flags().StringArrayVar(&searchLocations, "location", nil, "location filter, repeatable to narrow further")
	searchCmd.Flags().IntVar(&searchDistance, "distance", 0, "distance in km from --where")
	searchCmd.Flags().IntVar(&searchSalaryMin, "salary-min", 0, "minimum salary")
	searchCmd.Flags().IntVar(&searchSalaryMax, "salary-max", 0, "maximum salary")
	searchCmd.Flags().IntVar(&searchMaxDaysOld, "max-days-old", 0, "maximum age of advertisements in days")
	searchCmd.Flags().IntVar(&searchPerPage, "per-page", 0, "results per page (default from config)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "page of results to fetch")
	searchCmd.Flags().IntVar(&searchPages, "pages", 1, "number of consecutive pages to fetch")
	searchCmd.Flags().StringVar(&searchSortBy, "sort-by", "", "sort field (default|hybrid|date|salary|relevance)")
	searchCmd.Flags().StringVar(&searchSortDir, "sort-dir", "", "sort direction (up|down)")
	searchCmd.Flags().BoolVar(&searchFullTime, "full-time", false, "only full time jobs")
	searchCmd.Flags().BoolVar(&searchPartTime, "part-time", false, "only part time jobs")
	searchCmd.Flags().BoolVar(&searchContract, "contract", false, "only contract jobs")
	searchCmd.Flags().BoolVar(&searchPermanent, "permanent", false, "only permanent jobs")
	searchCmd.Flags().BoolVar(&searchUnknownPay, "include-unknown-salary", false, "include jobs with unknown salaries")
	searchCmd.Flags().StringVar(&searchTitleOnly, "title-only", "", "keywords searched in the title only")
	searchCmd.Flags().StringVarP(&searchFilterExpr, "filter", "f", "", "client-side filter expression")
}

// buildSearchRequest maps the flag set onto a fresh builder for one page.
func buildSearchRequest(page int) *adzuna.SearchRequest {
	req := client.Search().Country(resolveCountry(searchCountry)).Page(page)

	if searchWhat != "" {
		req.What(searchWhat)
	}
	if searchWhere != "" {
		req.Where(searchWhere)
	}
	if searchCategory != "" {
		req.Category(searchCategory)
	}
	if searchCompany != "" {
		req.Company(searchCompany)
	}
	for _, location := range searchLocations {
		req.Location(location)
	}
	if searchDistance > 0 {
		req.Distance(searchDistance)
	}
	if searchSalaryMin > 0 {
		req.SalaryMin(searchSalaryMin)
	}
	if searchSalaryMax > 0 {
		req.SalaryMax(searchSalaryMax)
	}
	if searchMaxDaysOld > 0 {
		req.MaxDaysOld(searchMaxDaysOld)
	}
	perPage := searchPerPage
	if perPage == 0 {
		perPage = cfg.Search.ResultsPerPage
	}
	req.ResultsPerPage(perPage)
	if searchSortBy != "" {
		req.SortBy(adzuna.SortBy(searchSortBy))
	}
	if searchSortDir != "" {
		req.SortDir(adzuna.SortDirection(searchSortDir))
	}
	if searchFullTime {
		req.FullTime()
	}
	if searchPartTime {
		req.PartTime()
	}
	if searchContract {
		req.Contract()
	}
	if searchPermanent {
		req.Permanent()
	}
	if searchUnknownPay {
		req.SalaryIncludeUnknown()
	}
	if searchTitleOnly != "" {
		req.TitleOnly(searchTitleOnly)
	}

	return req
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger.Info().
		Str("what", searchWhat).
		Str("where", searchWhere).
		Int("pages", searchPages).
		Msg("Searching jobs")

	jobs, total, err := fetchSearchPages(ctx, searchPage, searchPages)
	if err != nil {
		return err
	}

	// Apply the client-side filter, if any
	if searchFilterExpr != "" {
		f, err := filter.Compile(searchFilterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		jobs, err = f.Apply(jobs)
		if err != nil {
			return err
		}
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs found matching the criteria.")
		return nil
	}

	fmt.Printf("\nShowing %d of %d matching jobs:\n", len(jobs), total)
	fmt.Println(strings.Repeat("-", 80))

	for _, job := range jobs {
		fmt.Printf("• %s", job.Title)
		if job.Company.DisplayName != "" {
			fmt.Printf(" — %s", job.Company.DisplayName)
		}
		fmt.Println()
		if job.Location.DisplayName != "" {
			fmt.Printf("  Location: %s\n", job.Location.DisplayName)
		}
		if job.SalaryMin > 0 || job.SalaryMax > 0 {
			fmt.Printf("  Salary: %.0f - %.0f", job.SalaryMin, job.SalaryMax)
			if job.SalaryIsPredicted {
				fmt.Printf(" (predicted)")
			}
			fmt.Println()
		}
		if job.ContractTime != "" || job.ContractType != "" {
			fmt.Printf("  Contract: %s %s\n", job.ContractTime, job.ContractType)
		}
		fmt.Printf("  %s\n", job.RedirectURL)
	}

	return nil
}

// fetchSearchPages fetches n consecutive pages starting at first, fanning
// out with bounded concurrency. Page order is preserved in the returned
// slice. The library itself never parallelises; this is purely a CLI
// convenience.
func fetchSearchPages(ctx context.Context, first, n int) ([]adzuna.Job, int, error) {
	if n < 1 {
		n = 1
	}

	pages := make([][]adzuna.Job, n)
	var total int
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPages)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			results, err := buildSearchRequest(first + i).Fetch(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch page %d: %w", first+i, err)
			}

			mu.Lock()
			pages[i] = results.Results
			total = results.Count
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var jobs []adzuna.Job
	for _, page := range pages {
		jobs = append(jobs, page...)
	}
	return jobs, total, nil
}

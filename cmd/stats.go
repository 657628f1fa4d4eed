package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	statsWhat      string
	statsCountry   string
	statsCategory  string
	statsLocations []string
	historyMonths  int
)

// companiesCmd represents the companies command
var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the companies with the most job advertisements",
	RunE:  runCompanies,
}

// histogramCmd represents the histogram command
var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Show the distribution of jobs by salary",
	RunE:  runHistogram,
}

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show average advertised salary by month",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(histogramCmd)
	rootCmd.AddCommand(historyCmd)

	for _, c := range []*cobra.Command{companiesCmd, histogramCmd, historyCmd} {
		c.Flags().StringVar(&statsCountry, "country", "", "country code (default from config)")
		c.Flags().StringVar(&statsCategory, "category", "", "category tag (see 'adzuna categories')")
		c.Flags().StringArrayVar(&statsLocations, "location", nil, "location filter, repeatable to narrow further")
	}
	companiesCmd.Flags().StringVarP(&statsWhat, "what", "w", "", "keywords to filter by")
	histogramCmd.Flags().StringVarP(&statsWhat, "what", "w", "", "keywords to filter by")
	historyCmd.Flags().IntVar(&historyMonths, "months", 0, "number of months back to retrieve")
}

func runCompanies(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := client.TopCompanies().Country(resolveCountry(statsCountry))
	if statsWhat != "" {
		req.What(statsWhat)
	}
	if statsCategory != "" {
		req.Category(statsCategory)
	}
	for _, location := range statsLocations {
		req.Location(location)
	}

	companies, err := req.Fetch(ctx)
	if err != nil {
		return err
	}

	if len(companies.Leaderboard) == 0 {
		fmt.Println("No companies found.")
		return nil
	}

	fmt.Println(strings.Repeat("-", 70))
	fmt.Printf("%-4s %-40s %10s %12s\n", "#", "COMPANY", "ADS", "AVG SALARY")
	fmt.Println(strings.Repeat("-", 70))
	for i, company := range companies.Leaderboard {
		name := company.DisplayName
		if name == "" {
			name = company.CanonicalName
		}
		if len(name) > 38 {
			name = name[:35] + "..."
		}
		fmt.Printf("%-4d %-40s %10d %12.0f\n", i+1, name, company.Count, company.AverageSalary)
	}

	return nil
}

func runHistogram(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := client.Histogram().Country(resolveCountry(statsCountry))
	if statsWhat != "" {
		req.What(statsWhat)
	}
	if statsCategory != "" {
		req.Category(statsCategory)
	}
	for _, location := range statsLocations {
		req.Location(location)
	}

	hist, err := req.Fetch(ctx)
	if err != nil {
		return err
	}

	if len(hist.Histogram) == 0 {
		fmt.Println("No histogram data available.")
		return nil
	}

	// Buckets arrive as map keys; sort numerically for display.
	buckets := make([]string, 0, len(hist.Histogram))
	for bucket := range hist.Histogram {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		a, _ := strconv.Atoi(buckets[i])
		b, _ := strconv.Atoi(buckets[j])
		return a < b
	})

	max := 0
	for _, count := range hist.Histogram {
		if count > max {
			max = count
		}
	}

	for _, bucket := range buckets {
		count := hist.Histogram[bucket]
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", count*40/max)
		}
		fmt.Printf("%10s │ %-40s %d\n", bucket, bar, count)
	}

	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := client.History().Country(resolveCountry(statsCountry))
	if historyMonths > 0 {
		req.Months(historyMonths)
	}
	if statsCategory != "" {
		req.Category(statsCategory)
	}
	for _, location := range statsLocations {
		req.Location(location)
	}

	history, err := req.Fetch(ctx)
	if err != nil {
		return err
	}

	if len(history.Month) == 0 {
		fmt.Println("No salary history available.")
		return nil
	}

	months := make([]string, 0, len(history.Month))
	for month := range history.Month {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		fmt.Printf("%s  %12.2f\n", month, history.Month[month])
	}

	return nil
}

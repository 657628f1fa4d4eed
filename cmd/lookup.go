package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	lookupCountry   string
	lookupCategory  string
	lookupLocations []string
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all job categories the API knows about",
	RunE:  runCategories,
}

// geodataCmd represents the geodata command
var geodataCmd = &cobra.Command{
	Use:   "geodata",
	Short: "Show job counts by location",
	RunE:  runGeodata,
}

// apiVersionCmd represents the api-version command
var apiVersionCmd = &cobra.Command{
	Use:   "api-version",
	Short: "Print the remote API version",
	RunE:  runAPIVersion,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(geodataCmd)
	rootCmd.AddCommand(apiVersionCmd)

	categoriesCmd.Flags().StringVar(&lookupCountry, "country", "", "country code (default from config)")
	geodataCmd.Flags().StringVar(&lookupCountry, "country", "", "country code (default from config)")
	geodataCmd.Flags().StringVar(&lookupCategory, "category", "", "category tag (see 'adzuna categories')")
	geodataCmd.Flags().StringArrayVar(&lookupLocations, "location", nil, "location filter, repeatable to narrow further")
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	categories, err := client.Categories().
		Country(resolveCountry(lookupCountry)).
		Fetch(ctx)
	if err != nil {
		return err
	}

	if len(categories.Results) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	fmt.Printf("%-30s %s\n", "TAG", "LABEL")
	fmt.Println(strings.Repeat("-", 60))
	for _, category := range categories.Results {
		fmt.Printf("%-30s %s\n", category.Tag, category.Label)
	}

	return nil
}

func runGeodata(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := client.Geodata().Country(resolveCountry(lookupCountry))
	if lookupCategory != "" {
		req.Category(lookupCategory)
	}
	for _, location := range lookupLocations {
		req.Location(location)
	}

	geo, err := req.Fetch(ctx)
	if err != nil {
		return err
	}

	if len(geo.Locations) == 0 {
		fmt.Println("No location data found.")
		return nil
	}

	fmt.Printf("%-50s %10s\n", "LOCATION", "JOBS")
	fmt.Println(strings.Repeat("-", 62))
	for _, entry := range geo.Locations {
		name := ""
		if entry.Location != nil {
			name = entry.Location.DisplayName
			if name == "" {
				name = strings.Join(entry.Location.Area, " > ")
			}
		}
		if len(name) > 48 {
			name = name[:45] + "..."
		}
		fmt.Printf("%-50s %10d\n", name, entry.Count)
	}

	return nil
}

func runAPIVersion(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	version, err := client.Version().Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("API version:      %d\n", version.APIVersion)
	fmt.Printf("Software version: %s\n", version.SoftwareVersion)
	return nil
}

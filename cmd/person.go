package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var personAppend []string

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:   "person <id | name>",
	Short: "Show a person, looked up by id or searched by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPerson,
}

func init() {
	rootCmd.AddCommand(personCmd)

	personCmd.Flags().StringSliceVarP(&personAppend, "append", "a", []string{"credits"}, "extra data to embed (credits, images, changes, all)")
}

func runPerson(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appendSet, err := parseAppend(personAppend, personAppendNames)
	if err != nil {
		return err
	}

	id, err := resolvePerson(ctx, args)
	if err != nil {
		return err
	}
	if id == 0 {
		fmt.Println("No person found.")
		return nil
	}

	person, err := client.GetPerson(ctx, id, tmdb.PersonOptions{Append: appendSet})
	if err != nil {
		return fmt.Errorf("failed to get person %d: %w", id, err)
	}
	if person == nil {
		fmt.Println("No person found.")
		return nil
	}

	if jsonOutput {
		return printJSON(person)
	}

	fmt.Printf("%s (ID: %d)\n", person.Name, person.ID)
	if person.KnownForDepartment != "" {
		fmt.Printf("  Known for: %s\n", person.KnownForDepartment)
	}
	if person.Birthday != "" {
		fmt.Printf("  Born: %s", person.Birthday)
		if person.PlaceOfBirth != "" {
			fmt.Printf(" in %s", person.PlaceOfBirth)
		}
		fmt.Println()
	}
	if person.Deathday != "" {
		fmt.Printf("  Died: %s\n", person.Deathday)
	}
	if person.ProfilePath != "" {
		fmt.Printf("  Profile: %s\n", client.ImageURL("w185", person.ProfilePath))
	}

	if person.Credits != nil && len(person.Credits.Cast) > 0 {
		cast := person.Credits.Cast
		sort.Slice(cast, func(i, j int) bool { return cast[i].ReleaseDate > cast[j].ReleaseDate })

		fmt.Println("\nFilmography:")
		for _, c := range cast {
			line := fmt.Sprintf("  %s  %s", year(c.ReleaseDate), c.Title)
			if c.Character != "" {
				line += " as " + c.Character
			}
			fmt.Println(line)
		}
	}
	return nil
}

// resolvePerson returns the id given, or the best match of a name search
func resolvePerson(ctx context.Context, args []string) (int, error) {
	if ids, err := parseIDs(args); err == nil && len(ids) == 1 {
		return ids[0], nil
	}

	name := strings.Join(args, " ")
	results, err := client.SearchPerson(ctx, name, tmdb.SearchPersonOptions{})
	if err != nil {
		return 0, fmt.Errorf("person search failed: %w", err)
	}
	if results == nil || len(results.Results) == 0 {
		return 0, nil
	}

	best := results.Results[0]
	logger.Debug().Str("query", name).Int("id", best.ID).Str("name", best.Name).Msg("Resolved person")
	return best.ID, nil
}

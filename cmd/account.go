package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

const authenticateURL = "https://www.themoviedb.org/authenticate/"

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create a user session",
	Long: `Request a token, ask you to approve it on themoviedb.org and exchange it
for a session id. Store the printed id as tmdb.session_id (or TMDB_SESSION_ID)
to use the account commands.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account [favorites|rated|watchlist|lists]",
	Short: "Show the account of the configured session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAccount,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(accountCmd)

	accountCmd.Flags().IntVar(&listPage, "page", 0, "result page")
	addFilterFlags(accountCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("login needs an interactive terminal")
	}

	ctx := context.Background()
	session, err := client.GetSessionWithoutToken(ctx, promptConsent)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if session == nil {
		fmt.Println("Login cancelled.")
		return nil
	}

	fmt.Printf("\n✓ Session created: %s\n", session.SessionID)

	account, err := client.GetAccount(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to fetch account")
		return nil
	}
	if account != nil {
		fmt.Printf("Logged in as %s (account %d)\n", account.Username, account.ID)
	}
	return nil
}

// promptConsent asks the user to approve the request token in a browser
func promptConsent(ctx context.Context, token *tmdb.Token) (bool, error) {
	fmt.Printf("Open %s%s and approve access.\n", authenticateURL, token.RequestToken)
	if token.ExpiresAt != "" {
		fmt.Printf("The token expires at %s.\n", token.ExpiresAt)
	}
	fmt.Print("Press Enter once approved, or type 'n' to cancel: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer != "n" && answer != "no", nil
}

func runAccount(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if _, err := client.SessionID(); err != nil {
		return fmt.Errorf("no session configured, run 'tmdbkit login' first: %w", err)
	}

	account, err := client.GetAccount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return errors.New("account not available")
	}

	if len(args) == 0 {
		if jsonOutput {
			return printJSON(account)
		}
		fmt.Printf("%s (%s)\n", account.Username, account.Name)
		fmt.Printf("  Account ID: %d\n", account.ID)
		fmt.Printf("  Language: %s  Country: %s\n", account.ISO639_1, account.ISO3166_1)
		return nil
	}

	opts := tmdb.AccountMovieOptions{Page: listPage, Language: language}

	var page *tmdb.SearchContainer[tmdb.MovieResult]
	switch args[0] {
	case "favorites":
		page, err = client.GetAccountFavoriteMovies(ctx, opts)
	case "rated":
		page, err = client.GetAccountRatedMovies(ctx, opts)
	case "watchlist":
		page, err = client.GetAccountWatchlistMovies(ctx, opts)
	case "lists":
		lists, err := client.GetAccountLists(ctx, tmdb.PageOptions{Page: listPage, Language: language})
		if err != nil {
			return fmt.Errorf("failed to get lists: %w", err)
		}
		if jsonOutput || lists == nil {
			return printJSON(lists)
		}
		for _, l := range lists.Results {
			fmt.Printf("  %-12s %-40s %d items\n", l.ID, truncate(l.Name, 38), l.ItemCount)
		}
		return nil
	default:
		return fmt.Errorf("unknown account listing %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", args[0], err)
	}
	return showMoviePage(page)
}

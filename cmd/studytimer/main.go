// Command studytimer is the terminal client for StudyTrack: it logs in,
// runs the study timer and shows records, stats and the leaderboard.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studytrack-backend/internal/client"
	"github.com/heartmarshall/studytrack-backend/internal/tui"
)

const defaultServer = "http://localhost:8080"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globals struct {
	server   string
	credPath string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "studytimer",
		Short:         "StudyTrack terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.server, "server", "", "API base URL (default from saved login, else "+defaultServer+")")
	root.PersistentFlags().StringVar(&g.credPath, "credentials", "", "credentials file (default <user config dir>/studytrack/credentials.yaml)")

	root.AddCommand(
		newLoginCmd(g),
		newRegisterCmd(g),
		newTimerCmd(g),
		newRecordsCmd(g),
		newStatsCmd(g),
		newLeaderboardCmd(g),
	)
	return root
}

func (g *globals) credentialsPath() (string, error) {
	if g.credPath != "" {
		return g.credPath, nil
	}
	return client.DefaultCredentialsPath()
}

func (g *globals) serverURL(saved *client.Credentials) string {
	switch {
	case g.server != "":
		return g.server
	case saved != nil && saved.Server != "":
		return saved.Server
	default:
		return defaultServer
	}
}

// authedClient builds a client from the saved login.
func (g *globals) authedClient() (*client.Client, error) {
	path, err := g.credentialsPath()
	if err != nil {
		return nil, err
	}
	creds, err := client.LoadCredentials(path)
	if err != nil {
		if errors.Is(err, client.ErrNoCredentials) {
			return nil, errors.New("not logged in: run `studytimer login` first")
		}
		return nil, err
	}
	return client.New(g.serverURL(creds), client.WithToken(creds.Token)), nil
}

func (g *globals) saveSession(server, email, token string) error {
	path, err := g.credentialsPath()
	if err != nil {
		return err
	}
	return client.SaveCredentials(path, client.Credentials{Server: server, Email: email, Token: token})
}

func explain(err error) error {
	if client.IsUnauthorized(err) {
		return errors.New("session expired or invalid: run `studytimer login` again")
	}
	return err
}

func readPassword(in io.Reader, out io.Writer, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	_, _ = fmt.Fprint(out, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd(g *globals) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout(), password)
			if err != nil {
				return err
			}
			server := g.serverURL(nil)
			c := client.New(server)
			s, err := c.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			if err := g.saveSession(server, email, s.Token); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", s.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(g *globals) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout(), password)
			if err != nil {
				return err
			}
			server := g.serverURL(nil)
			s, err := client.New(server).Register(cmd.Context(), name, email, pw)
			if err != nil {
				return err
			}
			if err := g.saveSession(server, email, s.Token); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", s.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newTimerCmd(g *globals) *cobra.Command {
	var subject, category string
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the interactive study timer",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := g.authedClient()
			if err != nil {
				return err
			}
			return tui.Run(c, subject, category)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "what you are studying")
	cmd.Flags().StringVar(&category, "category", "", "category (default General)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func newRecordsCmd(g *globals) *cobra.Command {
	var f client.RecordFilter
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List your study records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.authedClient()
			if err != nil {
				return err
			}
			page, err := c.ListRecords(cmd.Context(), f)
			if err != nil {
				return explain(err)
			}
			return printRecords(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVar(&f.From, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "last day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.Category, "category", "", "only this category")
	cmd.Flags().IntVar(&f.Limit, "limit", 20, "page size")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "records to skip")
	return cmd
}

func newStatsCmd(g *globals) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study totals and the daily chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.authedClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			stats, err := c.Stats(ctx, days)
			if err != nil {
				return explain(err)
			}
			score, err := c.Score(ctx)
			if err != nil {
				return explain(err)
			}
			return printStats(cmd.OutOrStdout(), stats, score)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "days in the daily chart")
	return cmd
}

func newLeaderboardCmd(g *globals) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top users by XP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.authedClient()
			if err != nil {
				return err
			}
			entries, err := c.Leaderboard(cmd.Context(), limit)
			if err != nil {
				return explain(err)
			}
			return printLeaderboard(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of users")
	return cmd
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

func printRecords(w io.Writer, page *client.RecordPage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DATE\tMIN\tCATEGORY\tTITLE")
	for _, r := range page.Records {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.Date, r.DurationMinutes, r.Category, r.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d records\n", len(page.Records), page.Total)
	return err
}

const chartWidth = 30

func printStats(w io.Writer, s *client.Stats, score *client.Score) error {
	_, _ = fmt.Fprintf(w, "Total: %d min (~%d h) in %d records over %d active days\n",
		s.TotalMinutes, s.TotalHours, s.RecordCount, s.ActiveDays)
	_, _ = fmt.Fprintf(w, "Level %d, %d XP (%d XP to next level)\n\n", score.Level, score.TotalXP, score.XPToNextLevel)

	maxMinutes := 0
	for _, d := range s.Daily {
		maxMinutes = max(maxMinutes, d.Minutes)
	}
	for _, d := range s.Daily {
		bar := 0
		if maxMinutes > 0 {
			bar = d.Minutes * chartWidth / maxMinutes
		}
		_, _ = fmt.Fprintf(w, "%s %-*s %d\n", d.Date, chartWidth, strings.Repeat("#", bar), d.Minutes)
	}

	if len(s.ByCategory) > 0 {
		_, _ = fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "CATEGORY\tMIN")
		for _, c := range s.ByCategory {
			_, _ = fmt.Fprintf(tw, "%s\t%d\n", c.Category, c.Minutes)
		}
		return tw.Flush()
	}
	return nil
}

func printLeaderboard(w io.Writer, entries []client.LeaderboardEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tNAME\tLEVEL\tXP")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", e.Rank, e.Name, e.Level, e.TotalXP)
	}
	return tw.Flush()
}


package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/halcyonpay/payctl/internal/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the gateway session",
	Long: `Manage the locally cached gateway session.

Authentication uses the OAuth2 client-credentials grant. Client
credentials come from PAYCTL_CLIENT_ID and PAYCTL_CLIENT_SECRET or the
matching flags; they are never written to disk. The resulting access
token is cached per profile and reused until it nears expiry.

Examples:
  payctl auth login
  payctl auth login --client-id merchant-123
  payctl auth status
  payctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with client credentials",
	Long: `Authenticate against the gateway's token endpoint and cache the
resulting access token for subsequent commands.

The client secret is read from PAYCTL_CLIENT_SECRET, the --client-secret
flag, or an interactive prompt when running in a terminal.

Examples:
  payctl auth login
  payctl auth login --client-id merchant-123 --client-secret s3cret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		if clientID == "" {
			clientID = rt.Config.ClientID
		}
		if clientSecret == "" {
			clientSecret = rt.Config.ClientSecret
		}

		if clientSecret == "" && term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprint(cmd.OutOrStdout(), "Client secret: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to read client secret: %w", err)
			}
			clientSecret = strings.TrimSpace(string(raw))
		}

		result, err := rt.Client.Authenticate(cmd.Context(), clientID, clientSecret)
		if err != nil {
			return err
		}

		tok := session.NewToken(result.AccessToken, result.TokenType, time.Now(), result.ExpiresIn)
		if err := rt.Store.Save(tok); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Login successful. Session for profile %q valid until %s.\n",
			rt.Config.Profile, tok.ExpiresAt.Local().Format(time.RFC1123))
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the cached session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}

		if err := rt.Store.Clear(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'payctl auth login' to authenticate again.")
		return nil
	},
}

// SessionStatus is the output of 'payctl auth status'. The access token
// itself is deliberately absent.
type SessionStatus struct {
	Authenticated bool      `json:"authenticated" yaml:"authenticated"`
	Profile       string    `json:"profile" yaml:"profile"`
	TokenType     string    `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	IssuedAt      time.Time `json:"issued_at,omitempty" yaml:"issued_at,omitempty"`
	ExpiresAt     time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`

	// UsableFor is how long the token can still back requests, with the
	// safety margin already subtracted.
	UsableFor string `json:"usable_for,omitempty" yaml:"usable_for,omitempty"`
}

// String renders the status for text output
func (s SessionStatus) String() string {
	if !s.Authenticated {
		return fmt.Sprintf("No valid session for profile %q.\nRun 'payctl auth login' to authenticate.", s.Profile)
	}
	return fmt.Sprintf("Authenticated (profile %q)\nToken type: %s\nIssued at:  %s\nExpires at: %s\nUsable for: %s",
		s.Profile, s.TokenType,
		s.IssuedAt.Local().Format(time.RFC1123),
		s.ExpiresAt.Local().Format(time.RFC1123),
		s.UsableFor)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session status",
	Long: `Show whether a usable session exists for the current profile.

An expired or corrupt session slot reads the same as a missing one:
not authenticated. The access token is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}

		tok, err := rt.Store.Load()
		if err != nil {
			return err
		}

		status := SessionStatus{Profile: rt.Config.Profile}
		if tok != nil {
			status.Authenticated = true
			status.TokenType = tok.TokenType
			status.IssuedAt = tok.IssuedAt
			status.ExpiresAt = tok.ExpiresAt
			status.UsableFor = tok.TTL(time.Now(), session.DefaultSafetyMargin).
				Round(time.Second).String()
		}

		return writeOutput(cmd, cctx.Format, status)
	},
}

func init() {
	authLoginCmd.Flags().String("client-id", "", "OAuth2 client identifier (default PAYCTL_CLIENT_ID)")
	authLoginCmd.Flags().String("client-secret", "", "OAuth2 client secret (default PAYCTL_CLIENT_SECRET)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	rootCmd.AddCommand(authCmd)
}

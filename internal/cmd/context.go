package cmd

import (
	"github.com/spf13/cobra"

	"github.com/halcyonpay/payctl/internal/config"
	"github.com/halcyonpay/payctl/internal/errors"
	"github.com/halcyonpay/payctl/internal/gateway"
	"github.com/halcyonpay/payctl/internal/log"
	"github.com/halcyonpay/payctl/internal/session"
)

// CommandContext holds the persistent flag values for one invocation,
// extracted once so commands never reach back into global state.
type CommandContext struct {
	Format   string
	Verbose  bool
	LogLevel string
	APIURL   string
	Profile  string
}

// NewCommandContext extracts the command context from cobra flags.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}

	profile, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Format:   format,
		Verbose:  verbose,
		LogLevel: logLevel,
		APIURL:   apiURL,
		Profile:  profile,
	}, nil
}

// NewLogger builds the logger for this invocation. --verbose wins over
// --log-level; without either, warnings and errors go to stderr.
func (c *CommandContext) NewLogger() *log.Logger {
	if c.Verbose {
		return log.New(log.VerboseConfig())
	}

	cfg := log.DefaultConfig()
	if c.LogLevel != "" {
		cfg.Level = log.ParseLevel(c.LogLevel)
	}
	return log.New(cfg)
}

// Runtime bundles the collaborators a command needs: resolved config,
// logger, session store, and gateway client.
type Runtime struct {
	Config *config.Config
	Logger *log.Logger
	Store  *session.Store
	Client *gateway.Client
}

// NewRuntime loads configuration, applies flag overrides, and wires the
// store and client. Called at the top of every RunE.
func (c *CommandContext) NewRuntime() (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}
	if c.Profile != "" {
		cfg.Profile = c.Profile
	}

	logger := c.NewLogger()
	log.SetDefaultLogger(logger)

	return &Runtime{
		Config: cfg,
		Logger: logger,
		Store:  session.NewStore(cfg.SessionPath(), logger),
		Client: gateway.NewClient(cfg.APIURL, logger),
	}, nil
}

// RequireSession loads the cached token and primes the gateway client.
// When no usable token exists the command must halt: the user is told to
// run 'payctl auth login' and the command exits non-zero. payctl never
// re-authenticates silently.
func (rt *Runtime) RequireSession() (*session.Token, error) {
	tok, err := rt.Store.Load()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	rt.Client.SetToken(tok.AccessToken)
	return tok, nil
}

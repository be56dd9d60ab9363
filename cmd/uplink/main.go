package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/virtualica/uplink"
	"github.com/virtualica/uplink/lib/config"
	"github.com/virtualica/uplink/lib/logging"
	"github.com/virtualica/uplink/lib/theme"
	"github.com/virtualica/uplink/shell"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2B6CB0"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D69E2E"))
)

// app holds what every subcommand needs, built once in PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "uplink",
		Short: "uplink - the Virtualica web front",
		Long: `uplink serves the Virtualica web front: a fixed route table rendered on
the server, with HTMX swapping only the routed outlet so the navigation bar
and footer persist across navigations.

Configuration is read from $UPLINK_CONFIG or ./uplink.toml, with UPLINK_*
environment overrides (e.g. UPLINK_SERVER_ADDR=:9090).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsConfig(cmd) {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "routes",
			Short: "Print the route table",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.routes(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "render [path]...",
			Short: "Navigate through paths and print each outlet",
			Long: `Starts a session at / and pushes each path in order, printing the
navigation result and the HTML that would be swapped into the outlet.

Example:
  uplink render /login /signUp /nowhere`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.render(cmd.Context(), cmd.OutOrStdout(), args)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "uplink version %s\n", version)
			},
		},
	)
	return root
}

// skipsConfig reports whether cmd runs without configuration: version, help
// and the shell completion commands.
func skipsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func (a *app) newShell() (*shell.Shell, error) {
	opts, err := shell.OptionsFromConfig(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	return shell.New(opts...)
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh, err := a.newShell()
	if err != nil {
		return err
	}
	defer sh.Close()

	srv := &shell.Server{
		Handler:         shell.NewEcho(sh, a.logger),
		ReadTimeout:     a.cfg.Server.ReadTimeout,
		ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
		Logger:          a.logger,
	}
	return srv.Run(ctx, a.cfg.Server.Addr)
}

func (a *app) routes(w io.Writer) error {
	sh, err := a.newShell()
	if err != nil {
		return err
	}
	defer sh.Close()

	router := sh.Router()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("NAME", "PATH", "VIEW", "INDEX")
	for _, r := range router.Table().Routes() {
		index := ""
		if r.Index {
			index = "yes"
		}
		t.Row(r.Name, r.Pattern(), r.View.Title(), index)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(
		"fallback: %s  error route: %s  case-sensitive: %t",
		router.Fallback(), router.ErrorPath(), router.Table().IsCaseSensitive(),
	)))
	return nil
}

func (a *app) render(ctx context.Context, w io.Writer, paths []string) error {
	sh, err := a.newShell()
	if err != nil {
		return err
	}
	defer sh.Close()

	ctx = theme.WithContext(ctx, sh.Theme())
	h := uplink.NewHistory(ctx, sh.Router())

	for _, p := range paths {
		nav, err := h.Push(ctx, p)
		if err != nil && !uplink.IsRouteNotFound(err) {
			return err
		}
		if nav, err = sh.Settle(ctx, nav); err != nil {
			return err
		}

		// Follow a fallback redirect the way a browser would.
		if target := nav.GetRedirect(); target != "" {
			printNavigation(w, nav)
			fmt.Fprintln(w, dimStyle.Render("redirect: "+target))
			if nav, err = h.Replace(ctx, target); err != nil {
				return err
			}
			if nav, err = sh.Settle(ctx, nav); err != nil {
				return err
			}
		}

		printNavigation(w, nav)
		if !nav.HasView() {
			fmt.Fprintln(w, dimStyle.Render("(empty outlet)"))
			continue
		}
		var buf bytes.Buffer
		if err := nav.Route.View.Render(ctx, nav).Render(ctx, &buf); err != nil {
			return fmt.Errorf("render %s: %w", p, err)
		}
		fmt.Fprintln(w, buf.String())
	}
	return nil
}

func printNavigation(w io.Writer, nav uplink.Navigation) {
	status := strconv.Itoa(nav.GetStatus())
	if nav.GetRedirect() != "" {
		status = strconv.Itoa(http.StatusSeeOther)
	}
	route := nav.Route.Name
	if route == "" {
		route = "-"
	}
	line := fmt.Sprintf("%s -> %s  %s  %s", displayPath(nav.From), nav.To, status, route)
	if rnf, ok := uplink.AsRouteNotFound(nav.Err); ok {
		fmt.Fprintln(w, warnStyle.Render(line+"  "+rnf.Error()))
		return
	}
	fmt.Fprintln(w, headerStyle.Render(line))
}

func displayPath(l uplink.Location) string {
	if l.IsZero() {
		return "(start)"
	}
	return l.String()
}

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gotofork-core/internal/app"
	"gotofork-core/internal/application/dto"
	"gotofork-core/internal/config"
	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/infrastructure/credential"
	"gotofork-core/internal/logger"
	"gotofork-core/internal/middleware"
	"gotofork-core/internal/presentation/navigation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

type runner interface {
	Run(ctx context.Context, pageURL string) *dto.AugmentResult
}

// opener builds a pipeline; token overrides the configured credential store
type opener func(ctx context.Context, token string) (runner, *config.Config, func(), error)

func openPipeline(ctx context.Context, token string) (runner, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Init(logger.Config{Env: cfg.Log.Env, Level: cfg.Log.Level})

	closer := func() { _ = logger.Sync() }
	var store fork.CredentialStore
	if token != "" {
		store = credential.NewMemoryStore(map[string]string{fork.CredentialKey: token})
	} else {
		s, db, err := app.OpenCredentialStore(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		store = s
		if db != nil {
			closer = func() {
				_ = db.Close()
				_ = logger.Sync()
			}
		}
	}

	return app.New(cfg, store, nil).Pipeline, cfg, closer, nil
}

func newRootCmd(open opener) *cobra.Command {
	var token string

	root := &cobra.Command{
		Use:           "gotofork",
		Short:         "Upstream and fork shortcuts for GitHub repositories",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&token, "token", "", "GitHub token (default: configured credential store)")

	root.AddCommand(newResolveCmd(open, &token))
	root.AddCommand(newWatchCmd(open, &token))
	root.AddCommand(newSettingsTokenCmd())
	return root
}

func newResolveCmd(open opener, token *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Resolve the upstream and your forks of a repository page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, closeFn, err := open(cmd.Context(), *token)
			if err != nil {
				return err
			}
			defer closeFn()

			result := p.Run(cmd.Context(), args[0])
			return printResult(cmd.OutOrStdout(), result, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newWatchCmd(open opener, token *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Read page URLs from stdin and resolve each location change",
		Long: "Each line on stdin is the page location at one DOM mutation. The first line is the\n" +
			"initial page; every later line that differs from the previous location triggers a new run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, closeFn, err := open(cmd.Context(), *token)
			if err != nil {
				return err
			}
			defer closeFn()

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			run := func(ctx context.Context, url string) {
				result := p.Run(ctx, url)
				mu.Lock()
				defer mu.Unlock()
				_ = printResult(out, result, asJSON)
			}

			return watch(cmd.Context(), cmd.InOrStdin(), cfg.SettleDelay(), run)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON lines")
	return cmd
}

func watch(ctx context.Context, in io.Reader, settle time.Duration, run navigation.RunFunc) error {
	scanner := bufio.NewScanner(in)
	var w *navigation.Watcher
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url == "" {
			continue
		}
		if w == nil {
			w = navigation.NewWatcher(ctx, url, settle, run)
			w.Start()
			continue
		}
		w.Observe(url)
	}
	if w != nil {
		w.Wait()
	}
	return scanner.Err()
}

func newSettingsTokenCmd() *cobra.Command {
	var (
		secret  string
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "settings-token",
		Short: "Issue a token for the settings endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			am, err := middleware.NewAuthMiddleware(secret)
			if err != nil {
				return fmt.Errorf("--secret or SETTINGS_JWT_SECRET is required: %w", err)
			}
			now := time.Now()
			signed, err := am.IssueToken(middleware.SettingsClaims{
				Scope: middleware.SettingsScope,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					IssuedAt:  jwt.NewNumericDate(now),
					ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", envOr("SETTINGS_JWT_SECRET", ""), "Signing secret (env SETTINGS_JWT_SECRET)")
	cmd.Flags().StringVar(&subject, "subject", "settings-ui", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}

func printResult(w io.Writer, result *dto.AugmentResult, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(result)
	}

	if result.Skipped != "" {
		_, err := fmt.Fprintf(w, "%s: skipped (%s)\n", result.URL, result.Skipped)
		return err
	}
	fmt.Fprintf(w, "%s\n", result.URL)
	if result.Upstream != nil {
		fmt.Fprintf(w, "  upstream: %s %s\n", result.Upstream.FullName, result.Upstream.URL)
	}
	if result.OwnRepository {
		fmt.Fprintln(w, "  own repository")
	}
	for _, f := range result.Forks {
		fmt.Fprintf(w, "  fork: %s %s\n", f.FullName, f.URL)
	}
	if !result.HasButtons() && !result.OwnRepository {
		fmt.Fprintln(w, "  no upstream or forks")
	}
	return nil
}

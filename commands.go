package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-menu/bot"
	"restaurant-menu/config"
	"restaurant-menu/db"
	"restaurant-menu/handlers"
	"restaurant-menu/seed"
	"restaurant-menu/services"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg    *config.Config
	dbPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "restaurant-menu",
		Short:         "Browse and edit restaurants and their menus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if opts.dbPath != "" {
				cfg.DB.Driver = "sqlite3"
				cfg.DB.Path = opts.dbPath
				cfg.DB.URL = ""
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "sqlite database file (overrides DB_DRIVER/DATABASE_URL)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))
	cmd.AddCommand(newBotCommand(opts))
	return cmd
}

// openStore connects and, for serve and bot, applies migrations when
// AUTO_MIGRATE is set.
func openStore(ctx context.Context, opts *rootOptions, autoMigrate bool) (*db.DB, error) {
	d, err := db.Open(ctx, opts.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if autoMigrate && config.AutoMigrate() {
		if err := d.Migrate(ctx, false); err != nil {
			d.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return d, nil
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := openStore(ctx, opts, true)
			if err != nil {
				return err
			}
			defer d.Close()

			views, err := handlers.NewViews(opts.cfg.HTTP.SessionSecret)
			if err != nil {
				return fmt.Errorf("templates: %w", err)
			}
			if addr == "" {
				addr = opts.cfg.HTTP.Addr
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           handlers.NewRouter(services.NewRepository(d), views, opts.cfg.HTTP.CORSOrigins),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Server starting on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				log.Println("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from PORT)")
	return cmd
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openStore(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer d.Close()
			return d.Migrate(cmd.Context(), true)
		},
	}
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file.yaml]",
		Short: "Load restaurants and menus from YAML (bundled sample data by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f *seed.File
			var err error
			if len(args) == 1 {
				file, openErr := os.Open(args[0])
				if openErr != nil {
					return openErr
				}
				defer file.Close()
				f, err = seed.Load(file)
			} else {
				f, err = seed.Default()
			}
			if err != nil {
				return err
			}

			d, err := openStore(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := d.Migrate(cmd.Context(), false); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			st, err := seed.Apply(cmd.Context(), services.NewRepository(d), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d restaurants and %d menu items.\n", st.Restaurants, st.MenuItems)
			return nil
		},
	}
}

func newBotCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram menu browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Telegram.Token == "" {
				return errors.New("TOKEN not set")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := openStore(ctx, opts, true)
			if err != nil {
				return err
			}
			defer d.Close()

			b, err := bot.New(opts.cfg.Telegram.Token, services.NewRepository(d))
			if err != nil {
				return fmt.Errorf("bot: %w", err)
			}
			log.Println("Bot started.")
			b.Start(ctx)
			return nil
		},
	}
}

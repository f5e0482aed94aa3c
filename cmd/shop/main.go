package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/internal/app/service"
	"github.com/ikkim/storefront/internal/tui"
	"github.com/ikkim/storefront/pkg/logger"
)

var (
	category        string
	logFile         string
	logLevel        string
	notificationTTL time.Duration
	altScreen       bool
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the storefront catalog in your terminal",
	Long: `shop opens the storefront in the terminal: pick a category, mark favorites
and fill a cart without a server. The cart lives only for this run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns stdout, so logs go to a file or nowhere
		var out io.Writer = io.Discard
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			out = f
		}
		logger.Initialize(logger.Config{
			Level:  logLevel,
			Format: "json",
			Output: out,
		})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShop()
	},
}

// categoriesCmd prints the category tabs
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := newCatalog()
		if err != nil {
			return err
		}
		for _, c := range catalog.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&category, "category", "c", "All", "category tab to open on")
	rootCmd.Flags().DurationVar(&notificationTTL, "notification-ttl", tui.DefaultNotificationTTL, "how long the add-to-cart notice stays up")
	rootCmd.Flags().BoolVar(&altScreen, "alt-screen", true, "run in the terminal's alternate screen")

	rootCmd.AddCommand(categoriesCmd)
}

func newCatalog() (service.CatalogService, error) {
	productRepo, err := repository.NewProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return service.NewCatalogService(productRepo), nil
}

func runShop() error {
	catalog, err := newCatalog()
	if err != nil {
		return err
	}

	m := tui.New(catalog,
		tui.WithCategory(category),
		tui.WithNotificationTTL(notificationTTL),
	)

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("Terminal storefront started", map[string]interface{}{
		"category": category,
	})
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(tui.Model); ok {
		logger.Info("Terminal storefront closed", map[string]interface{}{
			"items":    fm.Cart().TotalCount(),
			"subtotal": fm.Cart().Subtotal(),
		})
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

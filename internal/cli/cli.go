// Package cli provides the Cobra-based CLI for the bestbuy store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/catalog"
	"github.com/elokrypt/bestbuy-2.0/internal/commons"
	"github.com/elokrypt/bestbuy-2.0/internal/config"
	"github.com/elokrypt/bestbuy-2.0/internal/domain"
	"github.com/elokrypt/bestbuy-2.0/internal/infrastructure/logger"
	"github.com/elokrypt/bestbuy-2.0/internal/order"
	"github.com/elokrypt/bestbuy-2.0/internal/product"
	"github.com/elokrypt/bestbuy-2.0/internal/server"
)

const storeMenu = `
   Store Menu
   ----------
1. List all products in store
2. Show total amount in store
3. Make an order
4. Quit
Please choose a number: `

var (
	rootCmd = &cobra.Command{
		Use:   "bestbuy",
		Short: "An in-memory retail store with promotions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests inject the store
			if store != nil {
				return nil
			}

			var err error
			logr, err = logger.NewConsole(viper.GetString("log-level"))
			if err != nil {
				return err
			}

			store, err = commons.LoadCatalog(viper.GetString("seed"), logr)
			return err
		},
	}

	store *catalog.Store
	logr  *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().String("seed", "", "YAML catalog seed file (empty = built-in stock)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level")
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("BESTBUY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all active products in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			printProducts(cmd.OutOrStdout(), store.ListActive())
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// stock
	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Show the total amount of items in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal of %d items in store\n\n", store.TotalStock())
			return nil
		},
	}
	rootCmd.AddCommand(stockCmd)

	// order
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Make an order interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(orderCmd)

	// menu
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive store menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(menuCmd)

	// serve
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the store over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.AddCommand(serveCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func printProducts(out io.Writer, products []*domain.Product) {
	fmt.Fprintln(out, "\n-----")
	for i, p := range products {
		fmt.Fprintf(out, "%d. %s\n", i+1, p.Describe())
	}
	fmt.Fprintln(out, "-----")
}

func runOrder(in io.Reader, out io.Writer) error {
	return orderFlow(bufio.NewReader(in), out)
}

func orderFlow(r *bufio.Reader, out io.Writer) error {
	products := store.ListActive()
	printProducts(out, products)
	fmt.Fprintln(out, "When you want to finish order, enter empty text.")

	lines := readOrderLines(r, out, products)
	if len(lines) == 0 {
		return nil
	}

	result, err := store.SettleOrder(lines)
	if err != nil {
		return err
	}
	for _, f := range result.Failures {
		fmt.Fprintf(out, "\n- %s -\n", f.Detail)
	}
	fmt.Fprintf(out, "********\nOrder made! Total payment $%.2f\n", result.TotalPrice)
	return nil
}

// readOrderLines collects (product, quantity) pairs from the prompt. Indices
// are 1-based as displayed; a blank answer to either prompt ends entry. Bad
// indices and non-positive quantities are reported and skipped, never fatal.
func readOrderLines(r *bufio.Reader, out io.Writer, products []*domain.Product) []catalog.Line {
	var lines []catalog.Line
	for {
		numStr := prompt(r, out, "Which product # do you want? ")
		qtyStr := prompt(r, out, "What amount do you want? ")
		if numStr == "" || qtyStr == "" {
			break
		}

		idx, err := strconv.Atoi(numStr)
		if err != nil || idx < 1 || idx > len(products) {
			fmt.Fprintln(out, "\n- Product-Index # out of bounds ! -")
			continue
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			fmt.Fprintln(out, "\n- Error adding product ! -")
			continue
		}

		lines = append(lines, catalog.Line{Product: products[idx-1], Quantity: qty})
		fmt.Fprintln(out, "\nProduct added to list!")
	}
	return lines
}

func runMenu(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		choice := prompt(r, out, storeMenu)
		switch choice {
		case "1":
			printProducts(out, store.ListActive())
		case "2":
			fmt.Fprintf(out, "\nTotal of %d items in store\n\n", store.TotalStock())
		case "3":
			if err := orderFlow(r, out); err != nil {
				fmt.Fprintf(out, "Error:\n\t%v\n", err)
			}
		case "4", "":
			return nil
		default:
			fmt.Fprintln(out, "Error with your choice! Try again!")
		}
	}
}

// prompt prints the question and reads one trimmed line; EOF reads as empty.
func prompt(r *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	st := store
	if st == nil {
		st, err = commons.LoadCatalog(cfg.Catalog.SeedFile, zapLogger)
		if err != nil {
			return err
		}
	}
	zapLogger.Info("catalog seeded", zap.Int("products", st.Len()))

	productCtrl := product.NewModule(st, zapLogger)
	orderCtrl := order.NewModule(st, zapLogger)

	router := server.NewRouter(productCtrl, orderCtrl, zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-quit:
		zapLogger.Info("received shutdown signal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	zapLogger.Info("server stopped gracefully")
	return nil
}

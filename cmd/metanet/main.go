// Package main provides the metanet retrieval CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/framesight/metanet/internal/config"
	"github.com/framesight/metanet/internal/core"
	"github.com/framesight/metanet/internal/driver"
	"github.com/framesight/metanet/internal/report"
	"github.com/framesight/metanet/internal/server"
)

var version = "0.1.0"

func loadConfig(path string) *config.Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No config file at %s, using defaults", path)
			cfg = config.Default()
		} else {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if envEndpoint := os.Getenv("SPARQL_ENDPOINT"); envEndpoint != "" {
		cfg.Endpoint.URL = envEndpoint
	}
	if envDir := os.Getenv("OUTPUT_DIR"); envDir != "" {
		cfg.Output.Dir = envDir
	}
	return cfg
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "metanet",
		Short: "Retrieve MetaNet metaphor data from Framester into CSV reports",
		Long: `metanet queries the Framester knowledge graph for MetaNet metaphor
mappings, expands frame typing over near-equivalence relations, and computes
frame-element and WordNet synset label overlaps per source/target frame
pair. Results are written as three CSV reports.`,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to TOML config file")

	var remoteMembership bool
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the retrieval pipeline and write the CSV reports",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(cfgPath)

			d := driver.NewSPARQLDriver(cfg.Endpoint.URL, cfg.Timeout())
			p := core.NewPipeline(d, report.NewWriter(cfg.Output.Dir))
			p.RemoteMembership = remoteMembership

			summary, err := p.Run(context.Background(), cfg.Input.Metaphors)
			if err != nil {
				log.Fatalf("Run failed: %v", err)
			}
			printSummary(summary)
		},
	}
	runCmd.Flags().BoolVar(&remoteMembership, "remote-membership", false,
		"Check candidate frame usage with ASK queries against the endpoint instead of this run's results")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve previously generated reports over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(cfgPath)

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			srv := server.NewServer(cfg.Output.Dir)
			r := srv.SetupRouter()

			log.Printf("Serving reports from %s on port %s", cfg.Output.Dir, port)
			if err := r.Run(":" + port); err != nil {
				log.Fatal(err)
			}
		},
	}

	rootCmd.AddCommand(runCmd, serveCmd, &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("metanet " + version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printSummary(s *core.Summary) {
	fmt.Println("\nSummary")
	fmt.Printf("Run ID: %s\n", s.RunID)
	fmt.Printf("Metaphors processed: %d\n", s.Metaphors)
	fmt.Printf("Pairs with frames: %d\n", s.MappingRows)
	if len(s.TopPairs) > 0 {
		fmt.Println("\nTop pairs by surface overlap:")
		for _, row := range s.TopPairs {
			fmt.Printf("- %s vs %s  FE overlap=%d  SYN overlap=%d\n",
				row.SourceFrame, row.TargetFrame,
				len(row.CommonFrameElements), len(row.CommonSynsetLabels))
		}
	}
}

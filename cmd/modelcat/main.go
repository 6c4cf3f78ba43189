// Package main provides the CLI entry point for modelcat.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"modelcat/pkg/modelcat"
	"modelcat/pkg/modelcat/config"
	"modelcat/pkg/modelcat/directory"
	"modelcat/pkg/modelcat/export"
	"modelcat/pkg/modelcat/sciencebase"
)

var (
	configPath string
	verbose    bool

	parentID       string
	containerTitle string

	includeContact  bool
	includeRefLink  bool
	includeSelfLink bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modelcat",
		Short: "Load model metadata spreadsheets into a catalog and export them back",
		Long: `modelcat ingests a spreadsheet of scientific model metadata, enriches
each row with contact-directory lookups, pushes the records into a remote
catalog service, and re-exports the catalog to spreadsheet form.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&parentID, "parent", "", "Parent item ID (default: the session's personal container)")

	loadCmd := &cobra.Command{
		Use:   "load [input.xlsx]",
		Short: "Transform spreadsheet rows and submit them as one batch",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoad,
	}
	loadCmd.Flags().StringVar(&containerTitle, "container", "", "Create records under a fresh container with this title, replacing any same-titled one")

	exportCmd := &cobra.Command{
		Use:   "export [output.xlsx]",
		Short: "Flatten the catalog listing back to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().BoolVar(&includeContact, "contact", true, "Include the Contact column")
	exportCmd.Flags().BoolVar(&includeRefLink, "reference-link", true, "Include the Model Reference Link column")
	exportCmd.Flags().BoolVar(&includeSelfLink, "sciencebase-link", true, "Include the ScienceBase Link column")

	purgeCmd := &cobra.Command{
		Use:   "purge [container-title]",
		Short: "Delete a same-titled container and its children, then recreate it empty",
		Args:  cobra.ExactArgs(1),
		RunE:  runPurge,
	}

	rootCmd.AddCommand(loadCmd, exportCmd, purgeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newPipeline() (*modelcat.Pipeline, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, config.Config{}, err
	}

	session := sciencebase.NewSession(cfg.Catalog.BaseURL, cfg.Catalog.Token)
	catalog := sciencebase.NewClient(session)
	dir := directory.NewClient(cfg.Directory.BaseURL)

	return modelcat.NewPipeline(catalog, dir, logger), cfg, nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runLoad(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	pipeline, cfg, err := newPipeline()
	if err != nil {
		return err
	}

	created, err := pipeline.Load(cmd.Context(), inputPath, modelcat.LoadOptions{
		ParentID:       parentID,
		ContainerTitle: containerTitle,
		PageSize:       cfg.PageSize,
	})
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	fmt.Printf("created %d catalog items\n", len(created))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if parentID == "" {
		return fmt.Errorf("--parent is required for export")
	}

	pipeline, cfg, err := newPipeline()
	if err != nil {
		return err
	}

	opts := export.Options{
		IncludeContact:       includeContact,
		IncludeReferenceLink: includeRefLink,
		IncludeCatalogLink:   includeSelfLink,
		PageSize:             cfg.PageSize,
	}

	n, err := pipeline.ExportFile(cmd.Context(), parentID, args[0], opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("wrote %d rows to %s\n", n, args[0])
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	if parentID == "" {
		return fmt.Errorf("--parent is required for purge")
	}

	pipeline, cfg, err := newPipeline()
	if err != nil {
		return err
	}

	id, err := pipeline.ReplaceContainer(cmd.Context(), parentID, args[0], cfg.PageSize)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	fmt.Printf("container %q recreated as %s\n", args[0], id)
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bizsite_server/config"
	"bizsite_server/internal/agents"
	"bizsite_server/internal/llm"
	"bizsite_server/internal/logger"
	"bizsite_server/internal/pipeline"
	"bizsite_server/internal/site"
	"bizsite_server/internal/templates"
	"bizsite_server/internal/types"
	"bizsite_server/internal/unsplash"
)

func main() {
	root := &cobra.Command{
		Use:   "bizsite",
		Short: "Generate business websites from a short questionnaire",
	}
	root.AddCommand(newGenerateCommand(), newTemplatesCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerateCommand() *cobra.Command {
	var templateID string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Answer the questionnaire and generate a website",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: Error loading .env file: %v", err)
			}
			cfg, err := config.LoadConfig(".")
			if err != nil {
				return err
			}
			zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
			defer zlog.Sync()

			q, err := askQuestionnaire(cmd, templateID)
			if err != nil {
				return err
			}

			var catalog *templates.Catalog
			if cfg.TemplatesDir != "" {
				catalog, err = templates.NewCatalogFromDir(cfg.TemplatesDir, zlog)
			} else {
				catalog, err = templates.NewCatalog(zlog)
			}
			if err != nil {
				return err
			}

			caller := llm.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, zlog)
			var searcher unsplash.Searcher
			if cfg.UnsplashAccessKey != "" {
				searcher = unsplash.NewClient(cfg.UnsplashAccessKey, zlog)
			}

			pipe := pipeline.New(
				agents.NewAnalysisAgent(caller, zlog),
				agents.NewDesignAgent(caller, zlog),
				agents.NewContentAgent(caller, zlog),
				agents.NewImageAgent(searcher, zlog),
				templates.NewRenderer(catalog, zlog),
				zlog,
			)

			color.Cyan("\nGenerating your website, this can take a minute...")
			res, err := pipe.Run(cmd.Context(), q)
			if err != nil {
				return err
			}

			writer := site.NewWriter(cfg.OutputDir, zlog)
			filename, err := writer.Save(q.BusinessName, res.HTML)
			if err != nil {
				return err
			}

			color.Green("\nDone! Your website is ready:")
			fmt.Printf("  %s\n", color.New(color.Bold).Sprint(writer.Dir()+"/"+filename))
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", types.DefaultTemplateID,
		"layout template id (see `bizsite templates`)")
	return cmd
}

// askQuestionnaire collects the required fields interactively.
func askQuestionnaire(cmd *cobra.Command, templateID string) (types.Questionnaire, error) {
	color.New(color.Bold, color.FgCyan).Fprintln(cmd.OutOrStdout(), "Tell us about your business")
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 40))

	reader := bufio.NewReader(cmd.InOrStdin())
	ask := func(prompt string) (string, error) {
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "%s: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	q := types.Questionnaire{TemplateID: templateID}
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Business name", &q.BusinessName},
		{"What does your business do? (one or two sentences)", &q.Description},
		{"Services offered (comma-separated)", &q.Services},
		{"Target audience", &q.TargetAudience},
		{"Color preference", &q.ColorPreference},
		{"Style preference (modern, classic, playful...)", &q.StylePreference},
		{"Contact info (optional, press enter to skip)", &q.ContactInfo},
	}
	for _, f := range fields {
		value, err := ask(f.prompt)
		if err != nil {
			return q, err
		}
		*f.dest = value
	}

	return q, q.Validate()
}

func newTemplatesCommand() *cobra.Command {
	var previewID string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available layout templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := templates.NewCatalog(zap.NewNop())
			if err != nil {
				return err
			}

			if previewID != "" {
				preview, err := catalog.Preview(previewID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), preview)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Description", "Best For"})
			for _, info := range catalog.List() {
				t.AppendRow(table.Row{
					info.ID, info.Name, info.Description, strings.Join(info.BestFor, ", "),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&previewID, "preview", "p", "", "show a detailed preview of one template")
	return cmd
}

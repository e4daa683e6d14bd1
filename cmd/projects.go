package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/collinalitics/go-collinalitics/browse"
	"github.com/collinalitics/go-collinalitics/collinalitics"
)

func newProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse portfolio projects",
	}
	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		tag      string
		industry string
		status   string
		page     int
		facets   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally filtered by tag, industry or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// Tag, industry and status narrow the full project set
			// locally, the way the portfolio page does.
			if tag != "" || industry != "" || status != "" || facets {
				projects, _, err := client.Projects.List(ctx, nil)
				if err != nil {
					return err
				}
				state := browse.FilterState{Page: 1, Tag: tag, Industry: industry, Status: status}
				filtered := browse.FilterProjects(projects, state)
				slog.Debug("filtered projects locally", "total", len(projects), "matching", len(filtered))

				if facets {
					return printFacets(cmd, format, browse.ProjectFacets(projects))
				}
				if format == "json" {
					return printJSON(cmd, filtered)
				}
				printProjectTable(cmd, filtered)
				return nil
			}

			result, _, err := client.Projects.ListPage(ctx, &collinalitics.ProjectListOptions{
				ListOptions: collinalitics.ListOptions{Page: page},
			})
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, result)
			}
			printProjectTable(cmd, result.Items)
			printPageFooter(cmd, result.Page, result.TotalPages, result.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&industry, "industry", "", "filter by industry")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&facets, "facets", false, "show available filter values instead of projects")
	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one project by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			project, _, err := client.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, project)
			}
			printProjectDetail(cmd, project)
			return nil
		},
	}
	return cmd
}

func printProjectTable(cmd *cobra.Command, projects []*collinalitics.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects found")
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	for _, p := range projects {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", cyan(p.Slug), bold(p.Title))
		if len(p.TagsList) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "    tags: %s\n", strings.Join(p.TagsList, ", "))
		}
	}
}

func printProjectDetail(cmd *cobra.Command, p *collinalitics.Project) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(out, bold(p.Title))
	fmt.Fprintf(out, "slug:     %s\n", p.Slug)
	if p.Industry != "" {
		fmt.Fprintf(out, "industry: %s\n", p.Industry)
	}
	if p.Status != "" {
		fmt.Fprintf(out, "status:   %s\n", p.Status)
	}
	if len(p.TagsList) > 0 {
		fmt.Fprintf(out, "tags:     %s\n", strings.Join(p.TagsList, ", "))
	}
	if len(p.ToolsList) > 0 {
		fmt.Fprintf(out, "tools:    %s\n", strings.Join(p.ToolsList, ", "))
	}
	if p.Summary != "" {
		fmt.Fprintf(out, "\n%s\n", p.Summary)
	}
}

func printFacets(cmd *cobra.Command, format string, facets browse.Facets) error {
	if format == "json" {
		return printJSON(cmd, facets)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tags:       %s\n", strings.Join(facets.Tags, ", "))
	fmt.Fprintf(out, "industries: %s\n", strings.Join(facets.Industries, ", "))
	fmt.Fprintf(out, "statuses:   %s\n", strings.Join(facets.Statuses, ", "))
	return nil
}

func printPageFooter(cmd *cobra.Command, page, totalPages, count int) {
	faint := color.New(color.Faint).SprintfFunc()
	fmt.Fprintln(cmd.OutOrStdout(), faint("page %d of %d (%d total)", page, totalPages, count))
}

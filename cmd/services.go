package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/collinalitics/go-collinalitics/collinalitics"
	"github.com/collinalitics/go-collinalitics/config"
)

func newServicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Browse service offerings",
	}
	cmd.AddCommand(newServicesListCommand())
	cmd.AddCommand(newServicesGetCommand())
	cmd.AddCommand(newServicesRelatedCommand())
	return cmd
}

func newServicesListCommand() *cobra.Command {
	var (
		category string
		search   string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service offerings",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			result, _, err := client.Services.ListPage(cmd.Context(), &collinalitics.ServiceListOptions{
				ListOptions: collinalitics.ListOptions{Page: page},
				Category:    category,
				Search:      search,
			})
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, result)
			}
			printServiceTable(cmd, result.Items)
			printPageFooter(cmd, result.Page, result.TotalPages, result.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category slug")
	cmd.Flags().StringVar(&search, "search", "", "search term")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newServicesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one service by slug",
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

			svc, _, err := client.Services.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, svc)
			}
			printServiceDetail(cmd, svc)
			return nil
		},
	}
	return cmd
}

func newServicesRelatedCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "related <slug>",
		Short: "Show services related to the given one by category",
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
			ctx := cmd.Context()

			svc, _, err := client.Services.Get(ctx, args[0])
			if err != nil {
				return err
			}

			related, _, err := client.Services.Related(ctx, collinalitics.RelatedServiceOptions{
				Category:    svc.CategoryKey(),
				ExcludeSlug: svc.Slug,
				Limit:       limit,
			})
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, related)
			}
			printServiceTable(cmd, related)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", config.RelatedLimit(), "maximum number of related services")
	return cmd
}

func printServiceTable(cmd *cobra.Command, services []*collinalitics.Service) {
	if len(services) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No services found")
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	for _, sv := range services {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", cyan(sv.Slug), bold(sv.Title))
		if key := sv.CategoryName; key != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    category: %s\n", key)
		}
	}
}

func printServiceDetail(cmd *cobra.Command, sv *collinalitics.Service) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(out, bold(sv.Title))
	fmt.Fprintf(out, "slug:     %s\n", sv.Slug)
	if sv.CategoryName != "" {
		fmt.Fprintf(out, "category: %s\n", sv.CategoryName)
	}
	if sv.Description != "" {
		fmt.Fprintf(out, "\n%s\n", sv.Description)
	}
	for _, f := range sv.Features {
		fmt.Fprintf(out, "  - %s\n", f.Label)
	}
}

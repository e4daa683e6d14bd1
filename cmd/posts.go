package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/collinalitics/go-collinalitics/collinalitics"
)

func newPostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse blog posts",
	}
	cmd.AddCommand(newPostsListCommand())
	cmd.AddCommand(newPostsGetCommand())
	return cmd
}

func newPostsListCommand() *cobra.Command {
	var (
		q    string
		tag  string
		page int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			result, _, err := client.Posts.ListPage(cmd.Context(), &collinalitics.PostListOptions{
				ListOptions: collinalitics.ListOptions{Page: page},
				Q:           q,
				Tag:         tag,
			})
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, result)
			}
			printPostTable(cmd, result.Items)
			printPageFooter(cmd, result.Page, result.TotalPages, result.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&q, "q", "", "search term")
	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newPostsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one blog post by slug",
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

			post, _, err := client.Posts.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd, post)
			}
			printPostDetail(cmd, post)
			return nil
		},
	}
	return cmd
}

func printPostTable(cmd *cobra.Command, posts []*collinalitics.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No posts found")
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	for _, p := range posts {
		line := fmt.Sprintf("%s  %s", cyan(p.Slug), bold(p.Title))
		if p.Date != nil {
			line += "  " + p.Date.Format("2006-01-02")
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func printPostDetail(cmd *cobra.Command, p *collinalitics.Post) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(out, bold(p.Title))
	if p.Author != "" {
		fmt.Fprintf(out, "author:  %s\n", p.Author)
	}
	if p.Date != nil {
		fmt.Fprintf(out, "date:    %s\n", p.Date.Format("2006-01-02"))
	}
	if p.ReadingTime > 0 {
		fmt.Fprintf(out, "reading: %d min\n", p.ReadingTime)
	}
	if len(p.TagsList) > 0 {
		fmt.Fprintf(out, "tags:    %s\n", strings.Join(p.TagsList, ", "))
	}
	if p.Content != "" {
		fmt.Fprintf(out, "\n%s\n", p.Content)
	} else if p.Excerpt != "" {
		fmt.Fprintf(out, "\n%s\n", p.Excerpt)
	}
}

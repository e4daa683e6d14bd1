package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/collinalitics/go-collinalitics/collinalitics"
)

func newContactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit a contact inquiry",
	}
	cmd.AddCommand(newContactSendCommand())
	return cmd
}

func newContactSendCommand() *cobra.Command {
	var inquiry collinalitics.Inquiry

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a contact inquiry to the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			_, _, err = client.Contacts.Submit(cmd.Context(), &inquiry)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s inquiry %q submitted\n", green("ok:"), inquiry.Subject)
			return nil
		},
	}

	cmd.Flags().StringVar(&inquiry.Name, "name", "", "your name")
	cmd.Flags().StringVar(&inquiry.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&inquiry.Company, "company", "", "company name")
	cmd.Flags().StringVar(&inquiry.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&inquiry.Subject, "subject", "", "inquiry subject")
	cmd.Flags().StringVar(&inquiry.Message, "message", "", "inquiry message")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("message")
	return cmd
}

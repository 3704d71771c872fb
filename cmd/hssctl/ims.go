package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openepc/hssctl"
)

var listIMSSubscribersCmd = &cobra.Command{
	Use:   "list-ims-subscribers",
	Short: "List provisioned IMS subscribers",
	RunE:  runListIMSSubscribers,
}

var addIMSSubscriberCmd = &cobra.Command{
	Use:   "add-ims-subscriber <imsi>",
	Short: "Provision a new IMS subscriber",
	Long: `Provision an IMS subscriber for an existing HSS subscriber.

The first --msisdn is the primary number; further ones become the
additional MSISDN list.

Example:
  hssctl add-ims-subscriber 999420000000012 --msisdn 49151123456 --msisdn 49151123457`,
	Args: cobra.ExactArgs(1),
	RunE: runAddIMSSubscriber,
}

var removeIMSSubscriberCmd = &cobra.Command{
	Use:   "remove-ims-subscriber <imsi>",
	Short: "Remove an IMS subscriber",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveIMSSubscriber,
}

var (
	listIMSSize int
	listIMSPage int

	addIMSMSISDNs []string
)

func init() {
	listIMSSubscribersCmd.Flags().IntVar(&listIMSSize, "limit", 100, "Limit the number of IMS subscribers per page")
	listIMSSubscribersCmd.Flags().IntVar(&listIMSPage, "page", 0, "Page through IMS subscribers")

	addIMSSubscriberCmd.Flags().StringArrayVar(&addIMSMSISDNs, "msisdn", nil, "MSISDN, repeatable; the first is the primary (required)")
	_ = addIMSSubscriberCmd.MarkFlagRequired("msisdn")
}

func runListIMSSubscribers(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	subscribers, err := client.ListIMSSubscribers(context.Background(), hssctl.Page{Size: listIMSSize, Number: listIMSPage})
	if err != nil {
		return err
	}

	return outputIMSSubscribers(cmd, subscribers)
}

func runAddIMSSubscriber(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	sub, err := client.AddIMSSubscriber(context.Background(), hssctl.NewIMSSubscriber{
		IMSI:    args[0],
		MSISDNs: addIMSMSISDNs,
	})
	if err != nil {
		return fmt.Errorf("add ims subscriber %s: %w", args[0], err)
	}

	outputConfirm(cmd, "%s IMS subscriber %s added\n", styled(successStyle, "✓"), sub.IMSI)
	return outputIMSSubscriber(cmd, sub)
}

func runRemoveIMSSubscriber(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.RemoveIMSSubscriber(context.Background(), args[0]); err != nil {
		return fmt.Errorf("remove ims subscriber %s: %w", args[0], err)
	}

	outputText(cmd, "%s IMS subscriber %s removed\n", styled(successStyle, "✓"), args[0])
	return nil
}

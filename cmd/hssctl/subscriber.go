package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openepc/hssctl"
)

var listSubscribersCmd = &cobra.Command{
	Use:   "list-subscribers",
	Short: "List provisioned subscribers",
	Long: `List subscribers provisioned on the HSS.

Example:
  hssctl list-subscribers
  hssctl list-subscribers --imsi 999420000000012
  hssctl list-subscribers --limit 20 --page 2 --json`,
	RunE: runListSubscribers,
}

var addSubscriberCmd = &cobra.Command{
	Use:   "add-subscriber <imsi>",
	Short: "Provision a new subscriber",
	Long: `Provision a subscriber with its SIM authentication keys.

The default APN must already exist on the HSS; the service rejects the
request otherwise.

Example:
  hssctl add-subscriber 999420000000012 --ki 465b5ce8b199b49faa5f0a2ee238a6bc \
      --opc e8ed289deba952e4283b54e88e6183ca --default-apn internet \
      --apn ims --apn sos --msisdn 49151123456`,
	Args: cobra.ExactArgs(1),
	RunE: runAddSubscriber,
}

var removeSubscriberCmd = &cobra.Command{
	Use:   "remove-subscriber <imsi>",
	Short: "Remove a subscriber",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveSubscriber,
}

var (
	listSubIMSI string
	listSubSize int
	listSubPage int

	addSubKi         string
	addSubOPc        string
	addSubMSISDN     string
	addSubDefaultAPN string
	addSubAPNs       []string
)

func init() {
	listSubscribersCmd.Flags().StringVar(&listSubIMSI, "imsi", "", "Show only the subscriber with this IMSI")
	listSubscribersCmd.Flags().IntVar(&listSubSize, "limit", 100, "Limit the number of subscribers per page")
	listSubscribersCmd.Flags().IntVar(&listSubPage, "page", 0, "Page through subscribers")

	addSubscriberCmd.Flags().StringVar(&addSubKi, "ki", "", "Ki as a hex string, usually 16 bytes as 32 characters (required)")
	addSubscriberCmd.Flags().StringVar(&addSubOPc, "opc", "", "OPc as a hex string, usually 16 bytes as 32 characters (required)")
	addSubscriberCmd.Flags().StringVar(&addSubMSISDN, "msisdn", "", "MSISDN of the subscriber")
	addSubscriberCmd.Flags().StringVar(&addSubDefaultAPN, "default-apn", "", "Default APN of the subscriber (required)")
	addSubscriberCmd.Flags().StringArrayVar(&addSubAPNs, "apn", nil, "Additional allowed APN, repeatable")

	_ = addSubscriberCmd.MarkFlagRequired("ki")
	_ = addSubscriberCmd.MarkFlagRequired("opc")
	_ = addSubscriberCmd.MarkFlagRequired("default-apn")
}

func runListSubscribers(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	if listSubIMSI != "" {
		sub, err := client.GetSubscriber(ctx, listSubIMSI)
		if err != nil {
			return err
		}
		return outputSubscribers(cmd, []hssctl.Subscriber{*sub})
	}

	subscribers, err := client.ListSubscribers(ctx, hssctl.Page{Size: listSubSize, Number: listSubPage})
	if err != nil {
		return err
	}

	return outputSubscribers(cmd, subscribers)
}

func runAddSubscriber(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	apns := addSubAPNs
	if apns == nil {
		apns = []string{}
	}

	sub, err := client.AddSubscriber(context.Background(), hssctl.NewSubscriber{
		IMSI:       args[0],
		Ki:         addSubKi,
		OPc:        addSubOPc,
		MSISDN:     addSubMSISDN,
		DefaultAPN: addSubDefaultAPN,
		APNs:       apns,
	})
	if err != nil {
		return fmt.Errorf("add subscriber %s: %w", args[0], err)
	}

	outputConfirm(cmd, "%s Subscriber %s added\n", styled(successStyle, "✓"), sub.IMSI)
	return outputSubscriber(cmd, sub)
}

func runRemoveSubscriber(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.RemoveSubscriber(context.Background(), args[0]); err != nil {
		return fmt.Errorf("remove subscriber %s: %w", args[0], err)
	}

	outputText(cmd, "%s Subscriber %s removed\n", styled(successStyle, "✓"), args[0])
	return nil
}

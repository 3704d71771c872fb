package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openepc/hssctl"
)

var listAPNsCmd = &cobra.Command{
	Use:   "list-apns",
	Short: "List provisioned APNs",
	Long: `List all APNs known to the HSS.

Example:
  hssctl list-apns
  hssctl list-apns --name internet --yaml`,
	RunE: runListAPNs,
}

var addAPNCmd = &cobra.Command{
	Use:   "add-apn <name>",
	Short: "Provision a new APN",
	Long: `Provision an APN with its QoS profile.

Bandwidths accept values like "150mbit", "1 gbit" or a bare bit count.

Example:
  hssctl add-apn internet
  hssctl add-apn ims --dl 10mbit --ul 10mbit --qci 5`,
	Args: cobra.ExactArgs(1),
	RunE: runAddAPN,
}

var removeAPNCmd = &cobra.Command{
	Use:   "remove-apn <name>",
	Short: "Remove an APN",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveAPN,
}

var (
	listAPNName string

	addAPNDownlink       string
	addAPNUplink         string
	addAPNQCI            int
	addAPNARP            int
	addAPNPreemptionCap  bool
	addAPNPreemptionVuln bool
)

func init() {
	listAPNsCmd.Flags().StringVar(&listAPNName, "name", "", "Show only the APN with this name")

	addAPNCmd.Flags().StringVar(&addAPNDownlink, "dl", "150mbit", "Maximum APN downlink bandwidth (AMBR DL)")
	addAPNCmd.Flags().StringVar(&addAPNUplink, "ul", "50mbit", "Maximum APN uplink bandwidth (AMBR UL)")
	addAPNCmd.Flags().IntVar(&addAPNQCI, "qci", 9, "QCI value")
	addAPNCmd.Flags().IntVar(&addAPNARP, "arp", 9, "ARP priority")
	addAPNCmd.Flags().BoolVar(&addAPNPreemptionCap, "preemption-cap", false, "APN may preempt other PDNs for bandwidth")
	addAPNCmd.Flags().BoolVar(&addAPNPreemptionVuln, "preemption-vuln", true, "APN may be preempted by other PDNs")
}

func runListAPNs(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	if listAPNName != "" {
		apn, err := client.GetAPN(ctx, listAPNName)
		if err != nil {
			return err
		}
		return outputAPNs(cmd, []hssctl.APN{*apn})
	}

	apns, err := client.ListAPNs(ctx)
	if err != nil {
		return err
	}

	return outputAPNs(cmd, apns)
}

func runAddAPN(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	apn, err := client.AddAPN(context.Background(), hssctl.NewAPN{
		Name:                    args[0],
		DownlinkBandwidth:       addAPNDownlink,
		UplinkBandwidth:         addAPNUplink,
		QCI:                     addAPNQCI,
		ARPPriority:             addAPNARP,
		PreemptionCapability:    addAPNPreemptionCap,
		PreemptionVulnerability: addAPNPreemptionVuln,
	})
	if err != nil {
		return fmt.Errorf("add apn %s: %w", args[0], err)
	}

	outputConfirm(cmd, "%s APN %s added\n", styled(successStyle, "✓"), apn.Name)
	return outputAPN(cmd, apn)
}

func runRemoveAPN(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.RemoveAPN(context.Background(), args[0]); err != nil {
		return fmt.Errorf("remove apn %s: %w", args[0], err)
	}

	outputText(cmd, "%s APN %s removed\n", styled(successStyle, "✓"), args[0])
	return nil
}

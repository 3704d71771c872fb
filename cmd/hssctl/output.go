package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openepc/hssctl"
)

// outputText prints text to the command's stdout.
func outputText(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// outputConfirm prints a confirmation line, suppressed in machine formats
// so --json and --yaml output stays parseable.
func outputConfirm(cmd *cobra.Command, format string, args ...interface{}) {
	if outputJSON || outputYAML {
		return
	}
	outputText(cmd, format, args...)
}

// outputAsJSON writes any value as formatted JSON to the command's stdout.
func outputAsJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputAsYAML writes any value as YAML to the command's stdout.
func outputAsYAML(cmd *cobra.Command, v interface{}) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}

// outputError prints an error to stderr, ensuring no API keys are leaked.
func outputError(w io.Writer, err error) {
	msg := scrubSensitiveData(err.Error())
	fmt.Fprintf(w, "%s %s\n", styled(errorStyle, "Error:"), msg)
}

// scrubSensitiveData removes the configured API key from error messages.
func scrubSensitiveData(msg string) string {
	if cfgAPIKey != "" && strings.Contains(msg, cfgAPIKey) {
		msg = strings.ReplaceAll(msg, cfgAPIKey, "[REDACTED]")
	}
	return msg
}

func outputSubscribers(cmd *cobra.Command, subscribers []hssctl.Subscriber) error {
	if outputJSON {
		return outputAsJSON(cmd, subscribers)
	}
	if outputYAML {
		return outputAsYAML(cmd, subscribers)
	}

	out := cmd.OutOrStdout()
	if len(subscribers) == 0 {
		fmt.Fprintln(out, "No subscribers found.")
		return nil
	}

	for i := range subscribers {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printSubscriber(out, &subscribers[i])
	}
	return nil
}

func outputSubscriber(cmd *cobra.Command, sub *hssctl.Subscriber) error {
	if outputJSON {
		return outputAsJSON(cmd, sub)
	}
	if outputYAML {
		return outputAsYAML(cmd, sub)
	}

	printSubscriber(cmd.OutOrStdout(), sub)
	return nil
}

func printSubscriber(out io.Writer, sub *hssctl.Subscriber) {
	fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "IMSI:"), sub.IMSI)
	if sub.MSISDN != "" {
		fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "msisdn:"), sub.MSISDN)
	}
	fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "default apn:"), sub.DefaultAPN)
	if len(sub.APNs) > 0 {
		fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "allowed apns:"), strings.Join(sub.APNs, ", "))
	}
	if sub.Enabled != nil {
		fmt.Fprintf(out, "  %s %t\n", styled(mutedStyle, "enabled:"), *sub.Enabled)
	}
}

func outputAPNs(cmd *cobra.Command, apns []hssctl.APN) error {
	if outputJSON {
		return outputAsJSON(cmd, apns)
	}
	if outputYAML {
		return outputAsYAML(cmd, apns)
	}

	out := cmd.OutOrStdout()
	if len(apns) == 0 {
		fmt.Fprintln(out, "No APNs found.")
		return nil
	}

	for i := range apns {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printAPN(out, &apns[i])
	}
	return nil
}

func outputAPN(cmd *cobra.Command, apn *hssctl.APN) error {
	if outputJSON {
		return outputAsJSON(cmd, apn)
	}
	if outputYAML {
		return outputAsYAML(cmd, apn)
	}

	printAPN(cmd.OutOrStdout(), apn)
	return nil
}

func printAPN(out io.Writer, apn *hssctl.APN) {
	fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "APN:"), apn.Name)
	fmt.Fprintf(out, "  %s %s down / %s up\n", styled(mutedStyle, "ambr:"),
		formatBits(apn.AMBRDownlink), formatBits(apn.AMBRUplink))
	fmt.Fprintf(out, "  %s %d\n", styled(mutedStyle, "qci:"), apn.QCI)
	fmt.Fprintf(out, "  %s priority %d, preemption cap %t, vuln %t\n", styled(mutedStyle, "arp:"),
		apn.ARPPriority, apn.PreemptionCapability, apn.PreemptionVulnerability)
}

// formatBits renders a bits/s value in the unit it divides evenly into.
func formatBits(bits int64) string {
	switch {
	case bits >= 1_000_000_000 && bits%1_000_000_000 == 0:
		return fmt.Sprintf("%dgbit", bits/1_000_000_000)
	case bits >= 1_000_000 && bits%1_000_000 == 0:
		return fmt.Sprintf("%dmbit", bits/1_000_000)
	case bits >= 1_000 && bits%1_000 == 0:
		return fmt.Sprintf("%dkbit", bits/1_000)
	default:
		return fmt.Sprintf("%dbit", bits)
	}
}

func outputIMSSubscribers(cmd *cobra.Command, subscribers []hssctl.IMSSubscriber) error {
	if outputJSON {
		return outputAsJSON(cmd, subscribers)
	}
	if outputYAML {
		return outputAsYAML(cmd, subscribers)
	}

	out := cmd.OutOrStdout()
	if len(subscribers) == 0 {
		fmt.Fprintln(out, "No IMS subscribers found.")
		return nil
	}

	for i := range subscribers {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printIMSSubscriber(out, &subscribers[i])
	}
	return nil
}

func outputIMSSubscriber(cmd *cobra.Command, sub *hssctl.IMSSubscriber) error {
	if outputJSON {
		return outputAsJSON(cmd, sub)
	}
	if outputYAML {
		return outputAsYAML(cmd, sub)
	}

	printIMSSubscriber(cmd.OutOrStdout(), sub)
	return nil
}

func printIMSSubscriber(out io.Writer, sub *hssctl.IMSSubscriber) {
	fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "IMSI:"), sub.IMSI)
	fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "msisdn:"), sub.MSISDN)
	if len(sub.MSISDNList) > 0 {
		fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "additional:"), strings.Join(sub.MSISDNList, ", "))
	}
	if sub.PCSCF != "" {
		fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "pcscf:"), sub.PCSCF)
	}
	if sub.SCSCF != "" {
		fmt.Fprintf(out, "  %s %s\n", styled(mutedStyle, "scscf:"), sub.SCSCF)
	}
}

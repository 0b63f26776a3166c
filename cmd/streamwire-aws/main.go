// Command streamwire-aws synthesizes Firehose delivery stream templates
// from declarative stream configurations.
//
// Usage:
//
//	streamwire-aws synth stream.yaml        Generate CloudFormation template
//	streamwire-aws validate stream.yaml     Synthesize and run cfn-lint
//	streamwire-aws graph stream.yaml        Dependency graph (DOT/Mermaid)
//	streamwire-aws watch stream.yaml        Re-synthesize on config changes
//	streamwire-aws version                  Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "streamwire-aws",
		Short: "Synthesize Firehose delivery stream templates",
		Long: `streamwire-aws synthesizes CloudFormation templates for Kinesis Data
Firehose delivery streams with S3 destinations.

Declare a stream in YAML:

    name: Clickstream
    bucket_arn: arn:aws:s3:::clickstream-archive

Then generate CloudFormation JSON:

    streamwire-aws synth stream.yaml`,
	}

	rootCmd.AddCommand(
		newSynthCmd(),
		newValidateCmd(),
		newGraphCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("streamwire-aws %s\n", getVersion())
		},
	}
}

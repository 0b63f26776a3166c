package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	streamwire "github.com/lex00/streamwire-aws-go"
	"github.com/lex00/streamwire-aws-go/synth"
)

func newSynthCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "synth <config>",
		Short: "Generate CloudFormation template from a stream configuration",
		Long: `Synth resolves the configured destination and generates a template.

Examples:
    streamwire-aws synth stream.yaml
    streamwire-aws synth stream.yaml -o template.json
    streamwire-aws synth stream.yaml --format yaml
    streamwire-aws synth stream.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynth(args[0], outputFormat, outputFile, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result envelope as JSON")

	return cmd
}

func runSynth(configPath, format, outputFile string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, err := synthesize(cfg)
	if err != nil {
		return outputSynthResult(streamwire.SynthResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("synthesis failed: %v", err)},
		}, format, outputFile, jsonOutput)
	}

	tmpl, err := ctx.Template()
	if err != nil {
		return outputSynthResult(streamwire.SynthResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("assembling template: %v", err)},
		}, format, outputFile, jsonOutput)
	}

	return outputSynthResult(streamwire.SynthResult{
		Success:   true,
		Template:  tmpl,
		Resources: ctx.IDs(),
	}, format, outputFile, jsonOutput)
}

func outputSynthResult(result streamwire.SynthResult, format, outputFile string, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if !result.Success {
			return fmt.Errorf("synth failed")
		}
		return nil
	}

	// Synthesis failures - output errors to stderr
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("synth failed")
	}

	// Output raw CloudFormation template
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = synth.ToJSON(result.Template)
	case "yaml":
		data, err = synth.ToYAML(result.Template)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0644)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	streamwire "github.com/lex00/streamwire-aws-go"
	"github.com/lex00/streamwire-aws-go/internal/validation"
	"github.com/lex00/streamwire-aws-go/synth"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Synthesize a stream configuration and run cfn-lint on the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}

func runValidate(configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, err := synthesize(cfg)
	if err != nil {
		return outputValidateResult(streamwire.ValidateResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, jsonOutput)
	}

	tmpl, err := ctx.Template()
	if err != nil {
		return outputValidateResult(streamwire.ValidateResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, jsonOutput)
	}

	data, err := synth.ToJSON(tmpl)
	if err != nil {
		return err
	}

	// cfn-lint reads from disk; render to a temp file.
	tmpDir, err := os.MkdirTemp("", "streamwire-validate-")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	tmplPath := filepath.Join(tmpDir, "template.json")
	if err := os.WriteFile(tmplPath, data, 0644); err != nil {
		return err
	}

	lintResult, err := validation.LintTemplate(tmplPath)
	if err != nil {
		return fmt.Errorf("running cfn-lint: %w", err)
	}

	return outputValidateResult(streamwire.ValidateResult{
		Success:   lintResult.Passed,
		Resources: len(tmpl.Resources),
		Errors:    lintResult.Errors,
		Warnings:  lintResult.Warnings,
	}, jsonOutput)
}

func outputValidateResult(result streamwire.ValidateResult, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		if result.Success {
			fmt.Printf("Template valid (%d resources)\n", result.Resources)
		}
	}

	if !result.Success {
		return fmt.Errorf("validation failed")
	}
	return nil
}

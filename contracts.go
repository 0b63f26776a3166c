// Package streamwire_aws provides Go types for synthesizing Kinesis Data
// Firehose delivery streams to CloudFormation.
//
// A delivery stream is declared with a destination configuration and
// resolved into a template in a single synthesis pass:
//
//	ctx := synth.New()
//	stream.New(ctx, "Clickstream", stream.DeliveryStream{
//	    Destination: destinations.S3Destination{
//	        Bucket: destinations.BucketRef{Arn: "arn:aws:s3:::my-archive"},
//	    },
//	})
//	tmpl, _ := ctx.Template()
//
// Resolution registers every implied supporting resource (IAM role, log
// group, log stream, grant policy) alongside the stream itself, and wires
// DependsOn edges so the grant policy exists before the stream is created.
package streamwire_aws

// Resource represents a CloudFormation resource.
// All resource types (s3.Bucket, iam.Role, firehose.DeliveryStream, ...)
// implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::S3::Bucket")
	ResourceType() string
}

// Template represents a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type          string   `json:"Type"`
	Description   string   `json:"Description,omitempty"`
	Default       any      `json:"Default,omitempty"`
	AllowedValues []string `json:"AllowedValues,omitempty"`
}

// Output is a CloudFormation template output.
type Output struct {
	Description string `json:"Description,omitempty"`
	Value       any    `json:"Value"`
	Export      *struct {
		Name string `json:"Name"`
	} `json:"Export,omitempty"`
}

// SynthResult is the JSON output from `streamwire-aws synth`. Template is
// nil when synthesis fails, so failure envelopes carry only the errors.
type SynthResult struct {
	Success   bool      `json:"success"`
	Template  *Template `json:"template,omitempty"`
	Resources []string  `json:"resources,omitempty"`
	Errors    []string  `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `streamwire-aws validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Package destinations resolves delivery stream destination configurations
// into CloudFormation resource graphs.
//
// Resolution is a single deterministic pass: given a destination
// configuration and a synthesis context, it produces the destination block
// for the parent delivery stream, registers every implied supporting
// resource (IAM role, log group, log stream, grant policy), and reports the
// DependsOn edges the parent must declare. The policy must exist before the
// stream is created or deployment fails, so the ordering edge is a
// correctness requirement, not cosmetic.
package destinations

import (
	"errors"
	"fmt"

	"github.com/lex00/streamwire-aws-go/intrinsics"
	"github.com/lex00/streamwire-aws-go/resources/firehose"
	"github.com/lex00/streamwire-aws-go/resources/iam"
	"github.com/lex00/streamwire-aws-go/resources/logs"
	"github.com/lex00/streamwire-aws-go/synth"
)

var (
	// ErrMissingBucket is returned when the destination has no bucket reference.
	ErrMissingBucket = errors.New("s3 destination requires a bucket reference")

	// ErrLoggingConflict is returned when logging is disabled but a log
	// group was supplied. The two options contradict each other; the
	// resolver fails fast rather than silently preferring one.
	ErrLoggingConflict = errors.New("logging is disabled but a log group was supplied")
)

// Action families granted on the destination bucket. Wildcard-suffixed so
// new provider API calls within a family do not break delivery.
var bucketActions = intrinsics.Any(
	"s3:GetObject*",
	"s3:GetBucket*",
	"s3:List*",
	"s3:DeleteObject*",
	"s3:PutObject*",
	"s3:Abort*",
)

var logActions = intrinsics.Any(
	"logs:CreateLogStream",
	"logs:PutLogEvents",
)

// S3Destination configures an S3 destination for a delivery stream.
//
// Only Bucket is required. A missing Role means the resolver creates one
// scoped to the Firehose service principal. Logging defaults to enabled
// with a generated log group and stream; DisableLogging turns the logging
// block off entirely, and LogGroup points delivery logs at an existing
// group instead of creating one. DisableLogging combined with LogGroup is a
// configuration error.
type S3Destination struct {
	Bucket BucketRef

	Role *RoleRef

	DisableLogging bool
	LogGroup       *LogGroupRef

	Prefix            any
	ErrorOutputPrefix any
	CompressionFormat string
	Buffering         *firehose.BufferingHints
}

// ResolvedDestination is the outcome of resolving a destination: the block
// to embed in the parent delivery stream and the logical IDs the parent
// must declare DependsOn edges to.
type ResolvedDestination struct {
	Configuration firehose.ExtendedS3DestinationConfiguration
	DependsOn     []string
}

// Resolve produces the destination block and registers the supporting
// resources the configuration implies. name scopes the logical IDs of
// generated resources (<name>Role, <name>LogGroup, <name>LogStream,
// <name>Policy).
//
// Resolution is deterministic and idempotent: resolving the same
// configuration twice in one context registers nothing twice.
func (d S3Destination) Resolve(ctx *synth.Context, name string) (*ResolvedDestination, error) {
	if d.Bucket.Arn == nil {
		return nil, ErrMissingBucket
	}
	if d.DisableLogging && d.LogGroup != nil {
		return nil, ErrLoggingConflict
	}

	role, err := d.resolveRole(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolving role: %w", err)
	}

	logging, grantArn, err := d.resolveLogging(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolving logging: %w", err)
	}

	policyID, err := d.registerGrants(ctx, name, role, grantArn)
	if err != nil {
		return nil, fmt.Errorf("registering grants: %w", err)
	}

	return &ResolvedDestination{
		Configuration: firehose.ExtendedS3DestinationConfiguration{
			BucketARN:                d.Bucket.Arn,
			RoleARN:                  role.Arn,
			BufferingHints:           d.Buffering,
			CloudWatchLoggingOptions: logging,
			CompressionFormat:        d.CompressionFormat,
			Prefix:                   d.Prefix,
			ErrorOutputPrefix:        d.ErrorOutputPrefix,
		},
		DependsOn: []string{policyID},
	}, nil
}

// resolveRole reuses the configured role or creates one scoped to the
// Firehose service principal.
func (d S3Destination) resolveRole(ctx *synth.Context, name string) (RoleRef, error) {
	if d.Role != nil {
		return *d.Role, nil
	}

	h, err := ctx.Register(ctx.LogicalID(name+"Role"), iam.Role{
		AssumeRolePolicyDocument: intrinsics.NewPolicyDocument(
			intrinsics.PolicyStatement{
				Effect:    "Allow",
				Principal: intrinsics.ServicePrincipal{"firehose.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		),
	})
	if err != nil {
		return RoleRef{}, err
	}
	return RoleFromHandle(h), nil
}

// resolveLogging returns the logging block and the log group ARN expression
// the log grant should cover. Both are nil when logging is disabled: the
// block must be absent from the destination, not present with
// Enabled=false.
func (d S3Destination) resolveLogging(ctx *synth.Context, name string) (*firehose.CloudWatchLoggingOptions, any, error) {
	if d.DisableLogging {
		return nil, nil, nil
	}

	if d.LogGroup != nil {
		arn := d.LogGroup.Arn
		if arn == nil {
			arn = logGroupArn(d.LogGroup.Name)
		}
		return &firehose.CloudWatchLoggingOptions{
			Enabled:       true,
			LogGroupName:  d.LogGroup.Name,
			LogStreamName: d.LogGroup.Stream,
		}, arn, nil
	}

	group, err := ctx.Register(ctx.LogicalID(name+"LogGroup"), logs.LogGroup{})
	if err != nil {
		return nil, nil, err
	}

	stream, err := ctx.Register(ctx.LogicalID(name+"LogStream"), logs.LogStream{
		LogGroupName: group.Ref(),
	})
	if err != nil {
		return nil, nil, err
	}

	return &firehose.CloudWatchLoggingOptions{
		Enabled:       true,
		LogGroupName:  group.Ref(),
		LogStreamName: stream.Ref(),
	}, group.Arn(), nil
}

// registerGrants computes the least-privilege grant statements and registers
// them as one policy attached to the resolved role. Returns the policy's
// logical ID for dependency wiring.
func (d S3Destination) registerGrants(ctx *synth.Context, name string, role RoleRef, logGroupArn any) (string, error) {
	bucketGrant := intrinsics.PolicyStatement{
		Effect: "Allow",
		Action: bucketActions,
		// The bucket itself and every object in it: two distinct
		// resource entries, never a combined pattern.
		Resource: intrinsics.Any(d.Bucket.Arn, objectsArn(d.Bucket.Arn)),
	}

	statements := intrinsics.Any(bucketGrant)
	if logGroupArn != nil {
		statements = append(statements, intrinsics.PolicyStatement{
			Effect:   "Allow",
			Action:   logActions,
			Resource: intrinsics.Any(logGroupArn),
		})
	}

	policyID := ctx.LogicalID(name + "Policy")
	_, err := ctx.Register(policyID, iam.Policy{
		PolicyName:     policyID,
		PolicyDocument: intrinsics.NewPolicyDocument(statements...),
		Roles:          intrinsics.Any(role.Name),
	})
	if err != nil {
		return "", err
	}
	return policyID, nil
}

// Package stream provides the delivery stream construct. It resolves the
// configured destination and registers the AWS::KinesisFirehose::DeliveryStream
// resource with DependsOn edges on every grant policy the resolution
// generated, so permissions exist before the stream is created.
package stream

import (
	"github.com/lex00/streamwire-aws-go/destinations"
	"github.com/lex00/streamwire-aws-go/resources/firehose"
	"github.com/lex00/streamwire-aws-go/synth"
)

// DeliveryStream declares a Firehose delivery stream with an S3 destination.
type DeliveryStream struct {
	// Name is the physical DeliveryStreamName. Optional; CloudFormation
	// generates one when absent.
	Name any

	// Type is the DeliveryStreamType. Defaults to DirectPut.
	Type string

	Destination destinations.S3Destination
}

// New resolves the destination and registers the delivery stream resource
// under the given logical name. The returned handle references the stream.
func New(ctx *synth.Context, logicalName string, s DeliveryStream) (synth.Handle, error) {
	id := ctx.LogicalID(logicalName)

	resolved, err := s.Destination.Resolve(ctx, id)
	if err != nil {
		return synth.Handle{}, err
	}

	streamType := s.Type
	if streamType == "" {
		streamType = "DirectPut"
	}

	cfg := resolved.Configuration
	return ctx.Register(id, firehose.DeliveryStream{
		DeliveryStreamName:                 s.Name,
		DeliveryStreamType:                 streamType,
		ExtendedS3DestinationConfiguration: &cfg,
	}, resolved.DependsOn...)
}

package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/streamwire-aws-go/destinations"
	"github.com/lex00/streamwire-aws-go/synth"
)

func TestNew_SynthesizesFullResourceGraph(t *testing.T) {
	ctx := synth.New()

	h, err := New(ctx, "Clickstream", DeliveryStream{
		Name: "clickstream-ingest",
		Destination: destinations.S3Destination{
			Bucket: destinations.BucketRef{Arn: "arn:aws:s3:::clickstream-archive"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Clickstream", h.LogicalID)

	tmpl, err := ctx.Template()
	require.NoError(t, err)

	// Stream, role, log group, log stream, policy.
	require.Len(t, tmpl.Resources, 5)

	stream := tmpl.Resources["Clickstream"]
	assert.Equal(t, "AWS::KinesisFirehose::DeliveryStream", stream.Type)
	assert.Equal(t, "DirectPut", stream.Properties["DeliveryStreamType"])
	assert.Equal(t, "clickstream-ingest", stream.Properties["DeliveryStreamName"])
}

func TestNew_StreamDependsOnGrantPolicy(t *testing.T) {
	ctx := synth.New()

	_, err := New(ctx, "Clickstream", DeliveryStream{
		Destination: destinations.S3Destination{
			Bucket: destinations.BucketRef{Arn: "arn:aws:s3:::clickstream-archive"},
		},
	})
	require.NoError(t, err)

	tmpl, err := ctx.Template()
	require.NoError(t, err)

	stream := tmpl.Resources["Clickstream"]
	assert.Equal(t, []string{"ClickstreamPolicy"}, stream.DependsOn)
}

func TestNew_DestinationBlockEmbedded(t *testing.T) {
	ctx := synth.New()

	_, err := New(ctx, "Clickstream", DeliveryStream{
		Destination: destinations.S3Destination{
			Bucket:            destinations.BucketRef{Arn: "arn:aws:s3:::clickstream-archive"},
			CompressionFormat: "GZIP",
		},
	})
	require.NoError(t, err)

	tmpl, err := ctx.Template()
	require.NoError(t, err)

	stream := tmpl.Resources["Clickstream"]
	dest := stream.Properties["ExtendedS3DestinationConfiguration"].(map[string]any)
	assert.Equal(t, "arn:aws:s3:::clickstream-archive", dest["BucketARN"])
	assert.Equal(t, "GZIP", dest["CompressionFormat"])

	logging := dest["CloudWatchLoggingOptions"].(map[string]any)
	assert.Equal(t, true, logging["Enabled"])
	assert.Equal(t, map[string]any{"Ref": "ClickstreamLogGroup"}, logging["LogGroupName"])
	assert.Equal(t, map[string]any{"Ref": "ClickstreamLogStream"}, logging["LogStreamName"])
}

func TestNew_DisabledLogging(t *testing.T) {
	ctx := synth.New()

	_, err := New(ctx, "Clickstream", DeliveryStream{
		Destination: destinations.S3Destination{
			Bucket:         destinations.BucketRef{Arn: "arn:aws:s3:::clickstream-archive"},
			DisableLogging: true,
		},
	})
	require.NoError(t, err)

	tmpl, err := ctx.Template()
	require.NoError(t, err)

	// Stream, role, policy. No log infrastructure.
	assert.Len(t, tmpl.Resources, 3)

	dest := tmpl.Resources["Clickstream"].Properties["ExtendedS3DestinationConfiguration"].(map[string]any)
	assert.NotContains(t, dest, "CloudWatchLoggingOptions")
}

func TestNew_PropagatesResolutionErrors(t *testing.T) {
	ctx := synth.New()

	_, err := New(ctx, "Clickstream", DeliveryStream{
		Destination: destinations.S3Destination{},
	})
	require.ErrorIs(t, err, destinations.ErrMissingBucket)
}

func TestNew_TypeDefaultsToDirectPut(t *testing.T) {
	ctx := synth.New()

	_, err := New(ctx, "Clickstream", DeliveryStream{
		Type: "KinesisStreamAsSource",
		Destination: destinations.S3Destination{
			Bucket: destinations.BucketRef{Arn: "arn:aws:s3:::clickstream-archive"},
		},
	})
	require.NoError(t, err)

	tmpl, err := ctx.Template()
	require.NoError(t, err)
	assert.Equal(t, "KinesisStreamAsSource", tmpl.Resources["Clickstream"].Properties["DeliveryStreamType"])
}

package firehose

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamwire "github.com/lex00/streamwire-aws-go"
)

func TestResourceTypes(t *testing.T) {
	tests := []struct {
		name     string
		resource streamwire.Resource
		expected string
	}{
		{"DeliveryStream", DeliveryStream{}, "AWS::KinesisFirehose::DeliveryStream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resource.ResourceType())
		})
	}
}

func TestDeliveryStream_Serialization(t *testing.T) {
	ds := DeliveryStream{
		DeliveryStreamName: "clickstream",
		DeliveryStreamType: "DirectPut",
		ExtendedS3DestinationConfiguration: &ExtendedS3DestinationConfiguration{
			BucketARN: "arn:aws:s3:::archive",
			RoleARN:   "arn:aws:iam::123456789012:role/delivery",
			CloudWatchLoggingOptions: &CloudWatchLoggingOptions{
				Enabled:       true,
				LogGroupName:  "ingest",
				LogStreamName: "s3-delivery",
			},
		},
	}

	data, err := json.Marshal(ds)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	dest := parsed["ExtendedS3DestinationConfiguration"].(map[string]any)
	assert.Equal(t, "arn:aws:s3:::archive", dest["BucketARN"])

	logging := dest["CloudWatchLoggingOptions"].(map[string]any)
	assert.Equal(t, true, logging["Enabled"])
	assert.Equal(t, "ingest", logging["LogGroupName"])
}

func TestDeliveryStream_OmitsLoggingWhenNil(t *testing.T) {
	ds := DeliveryStream{
		ExtendedS3DestinationConfiguration: &ExtendedS3DestinationConfiguration{
			BucketARN: "arn:aws:s3:::archive",
			RoleARN:   "arn:aws:iam::123456789012:role/delivery",
		},
	}

	data, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "CloudWatchLoggingOptions")
}

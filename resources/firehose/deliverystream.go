// Package firehose contains the Kinesis Data Firehose resource types.
package firehose

// DeliveryStream represents an AWS::KinesisFirehose::DeliveryStream resource.
type DeliveryStream struct {
	DeliveryStreamName                 any                                 `json:"DeliveryStreamName,omitempty"`
	DeliveryStreamType                 string                              `json:"DeliveryStreamType,omitempty"`
	ExtendedS3DestinationConfiguration *ExtendedS3DestinationConfiguration `json:"ExtendedS3DestinationConfiguration,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (DeliveryStream) ResourceType() string { return "AWS::KinesisFirehose::DeliveryStream" }

// ExtendedS3DestinationConfiguration is the S3 destination block of a
// delivery stream.
//
// CloudWatchLoggingOptions is a pointer so that a destination with logging
// disabled omits the block entirely; Firehose treats a present-but-disabled
// block differently from an absent one in template diffs.
type ExtendedS3DestinationConfiguration struct {
	BucketARN                any                       `json:"BucketARN"`
	RoleARN                  any                       `json:"RoleARN"`
	BufferingHints           *BufferingHints           `json:"BufferingHints,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
	CompressionFormat        string                    `json:"CompressionFormat,omitempty"`
	Prefix                   any                       `json:"Prefix,omitempty"`
	ErrorOutputPrefix        any                       `json:"ErrorOutputPrefix,omitempty"`
}

// CloudWatchLoggingOptions enables delivery error logging to a log stream.
type CloudWatchLoggingOptions struct {
	Enabled       bool `json:"Enabled,omitempty"`
	LogGroupName  any  `json:"LogGroupName,omitempty"`
	LogStreamName any  `json:"LogStreamName,omitempty"`
}

// BufferingHints controls how Firehose buffers incoming records before
// delivery.
type BufferingHints struct {
	IntervalInSeconds int `json:"IntervalInSeconds,omitempty"`
	SizeInMBs         int `json:"SizeInMBs,omitempty"`
}

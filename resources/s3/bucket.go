// Package s3 contains the S3 resource types used by destination synthesis.
package s3

// Bucket represents an AWS::S3::Bucket resource.
//
// Fields accepting intrinsic expressions are typed any.
type Bucket struct {
	BucketName              any                      `json:"BucketName,omitempty"`
	VersioningConfiguration *VersioningConfiguration `json:"VersioningConfiguration,omitempty"`
	Tags                    []any                    `json:"Tags,omitempty"`
}

// VersioningConfiguration is the bucket versioning block.
type VersioningConfiguration struct {
	Status string `json:"Status"`
}

// ResourceType returns the CloudFormation type.
func (Bucket) ResourceType() string { return "AWS::S3::Bucket" }

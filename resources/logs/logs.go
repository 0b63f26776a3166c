// Package logs contains the CloudWatch Logs resource types used by
// destination synthesis.
package logs

// LogGroup represents an AWS::Logs::LogGroup resource.
type LogGroup struct {
	LogGroupName    any `json:"LogGroupName,omitempty"`
	RetentionInDays int `json:"RetentionInDays,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (LogGroup) ResourceType() string { return "AWS::Logs::LogGroup" }

// LogStream represents an AWS::Logs::LogStream resource.
type LogStream struct {
	LogGroupName  any `json:"LogGroupName"`
	LogStreamName any `json:"LogStreamName,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (LogStream) ResourceType() string { return "AWS::Logs::LogStream" }

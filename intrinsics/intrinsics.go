// Package intrinsics provides the CloudFormation intrinsic functions used
// during destination resolution.
//
// The resolver never observes concrete ARN strings: values that are only
// known once the template deploys are carried as deferred intrinsic
// expressions and rendered by CloudFormation itself.
//
//	Ref{LogicalName: "DeliveryLogGroup"}    → {"Ref": "DeliveryLogGroup"}
//	GetAtt{LogicalName: "DeliveryRole", Attribute: "Arn"}
//	                                        → {"Fn::GetAtt": ["DeliveryRole", "Arn"]}
//	Join{Delimiter: "", Values: []any{bucketArn, "/*"}}
//	                                        → {"Fn::Join": ["", [..., "/*"]]}
//
// Core intrinsic types are re-exported from cloudformation-schema-go; the
// IAM policy document types live in policy.go.
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

// Re-export core intrinsic types from the shared schema package.
type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// SubWithMap is Fn::Sub with a variable map.
	SubWithMap = intrinsics.SubWithMap

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// Split represents a CloudFormation Fn::Split intrinsic function.
	Split = intrinsics.Split

	// ImportValue represents a CloudFormation Fn::ImportValue intrinsic function.
	ImportValue = intrinsics.ImportValue

	// Tag represents a CloudFormation resource tag.
	Tag = intrinsics.Tag
)

// Package intrinsics provides CloudFormation intrinsic functions.
// This file contains IAM policy document types and helpers.
package intrinsics

import (
	"encoding/json"
)

// Json is a shorthand for map[string]any.
// Used for inline JSON objects like Condition blocks.
type Json = map[string]any

// List creates a typed slice from the given items.
// Avoids verbose slice type annotations in struct literals.
func List[T any](items ...T) []T {
	return items
}

// Any creates a []any slice from the given items.
// Use for fields typed as []any that accept mixed types or intrinsics.
func Any(items ...any) []any {
	return items
}

// PolicyDocument represents an IAM policy document.
//
// Example:
//
//	var GrantDocument = PolicyDocument{
//	    Version:   "2012-10-17",
//	    Statement: []any{BucketGrant, LogGrant},
//	}
type PolicyDocument struct {
	Version   string `json:"Version,omitempty"`
	Statement []any  `json:"Statement"`
}

// NewPolicyDocument creates a PolicyDocument with the default version.
func NewPolicyDocument(statements ...any) PolicyDocument {
	return PolicyDocument{Version: "2012-10-17", Statement: statements}
}

// PolicyStatement represents an IAM policy statement.
//
// Example:
//
//	var AssumeRoleStatement = PolicyStatement{
//	    Effect:    "Allow",
//	    Principal: ServicePrincipal{"firehose.amazonaws.com"},
//	    Action:    "sts:AssumeRole",
//	}
type PolicyStatement struct {
	Sid       string `json:"Sid,omitempty"`
	Effect    string `json:"Effect"`
	Principal any    `json:"Principal,omitempty"`
	Action    any    `json:"Action,omitempty"`
	Resource  any    `json:"Resource,omitempty"`
	Condition Json   `json:"Condition,omitempty"`
}

// --- Principal Helpers ---

// ServicePrincipal represents a service principal (e.g., firehose.amazonaws.com).
// Serializes to {"Service": ...} format.
//
// Examples:
//
//	ServicePrincipal{"firehose.amazonaws.com"}
//	ServicePrincipal{"firehose.amazonaws.com", "lambda.amazonaws.com"}
type ServicePrincipal []any

// MarshalJSON serializes to {"Service": ...} format.
func (p ServicePrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"Service": p[0]})
	}
	return json.Marshal(map[string]any{"Service": []any(p)})
}

// AWSPrincipal represents an AWS account/role/user principal.
// Serializes to {"AWS": ...} format.
type AWSPrincipal []any

// MarshalJSON serializes to {"AWS": ...} format.
func (p AWSPrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"AWS": p[0]})
	}
	return json.Marshal(map[string]any{"AWS": []any(p)})
}

// AllPrincipal represents the wildcard principal "*".
const AllPrincipal = "*"

// IAM condition operator constants. Use these as keys in Condition maps
// for typo prevention.
const (
	StringEquals = "StringEquals"
	StringLike   = "StringLike"
	ArnEquals    = "ArnEquals"
	ArnLike      = "ArnLike"
	Bool         = "Bool"
	Null         = "Null"
)

// Package iam contains the IAM resource types used by destination synthesis.
package iam

// Role represents an AWS::IAM::Role resource.
type Role struct {
	RoleName                 any           `json:"RoleName,omitempty"`
	AssumeRolePolicyDocument any           `json:"AssumeRolePolicyDocument,omitempty"`
	ManagedPolicyArns        []any         `json:"ManagedPolicyArns,omitempty"`
	Policies                 []Role_Policy `json:"Policies,omitempty"`
	Path                     any           `json:"Path,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Role) ResourceType() string { return "AWS::IAM::Role" }

// Role_Policy is an inline policy entry for Role.Policies.
type Role_Policy struct {
	PolicyName     any `json:"PolicyName"`
	PolicyDocument any `json:"PolicyDocument"`
}

// Policy represents an AWS::IAM::Policy resource: a standalone policy
// attached to roles by name. Grant statements are registered as Policy
// resources so the parent stream can declare an explicit DependsOn on them.
type Policy struct {
	PolicyName     any   `json:"PolicyName"`
	PolicyDocument any   `json:"PolicyDocument"`
	Roles          []any `json:"Roles,omitempty"`
	Users          []any `json:"Users,omitempty"`
	Groups         []any `json:"Groups,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Policy) ResourceType() string { return "AWS::IAM::Policy" }

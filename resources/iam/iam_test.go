package iam

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/streamwire-aws-go/intrinsics"
)

func TestRole_ResourceType(t *testing.T) {
	assert.Equal(t, "AWS::IAM::Role", Role{}.ResourceType())
	assert.Equal(t, "AWS::IAM::Policy", Policy{}.ResourceType())
}

func TestRole_InlinePolicies(t *testing.T) {
	role := Role{
		AssumeRolePolicyDocument: intrinsics.NewPolicyDocument(
			intrinsics.PolicyStatement{
				Effect:    "Allow",
				Principal: intrinsics.ServicePrincipal{"firehose.amazonaws.com"},
				Action:    "sts:AssumeRole",
			},
		),
		Policies: intrinsics.List(Role_Policy{
			PolicyName: "delivery",
			PolicyDocument: intrinsics.NewPolicyDocument(
				intrinsics.PolicyStatement{
					Effect:   "Allow",
					Action:   "s3:PutObject*",
					Resource: "arn:aws:s3:::archive/*",
				},
			),
		}),
	}

	data, err := json.Marshal(role)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"AssumeRolePolicyDocument": {
			"Version": "2012-10-17",
			"Statement": [{
				"Effect": "Allow",
				"Principal": {"Service": "firehose.amazonaws.com"},
				"Action": "sts:AssumeRole"
			}]
		},
		"Policies": [{
			"PolicyName": "delivery",
			"PolicyDocument": {
				"Version": "2012-10-17",
				"Statement": [{
					"Effect": "Allow",
					"Action": "s3:PutObject*",
					"Resource": "arn:aws:s3:::archive/*"
				}]
			}
		}]
	}`, string(data))
}

func TestPolicy_RoleAttachment(t *testing.T) {
	policy := Policy{
		PolicyName: "IngestPolicy",
		PolicyDocument: intrinsics.NewPolicyDocument(
			intrinsics.PolicyStatement{
				Effect:   "Allow",
				Action:   intrinsics.Any("logs:CreateLogStream", "logs:PutLogEvents"),
				Resource: intrinsics.Any("arn:aws:logs:us-east-1:123456789012:log-group:ingest:*"),
			},
		),
		Roles: intrinsics.Any("delivery"),
	}

	data, err := json.Marshal(policy)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "IngestPolicy", parsed["PolicyName"])
	assert.Equal(t, []any{"delivery"}, parsed["Roles"])
	assert.NotContains(t, parsed, "Users")
	assert.NotContains(t, parsed, "Groups")
}

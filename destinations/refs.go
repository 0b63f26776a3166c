package destinations

import (
	"strings"

	"github.com/lex00/streamwire-aws-go/intrinsics"
	"github.com/lex00/streamwire-aws-go/synth"
)

// BucketRef is an opaque reference to the destination bucket. Arn may be a
// literal ARN string or a deferred intrinsic expression.
type BucketRef struct {
	Arn any
}

// BucketFromHandle references a bucket registered in the same synthesis
// context.
func BucketFromHandle(h synth.Handle) BucketRef {
	return BucketRef{Arn: h.Arn()}
}

// RoleRef is an opaque reference to an IAM principal. Name is required for
// attaching grant policies; Arn is what the destination block references.
type RoleRef struct {
	Name any
	Arn  any
}

// RoleFromHandle references a role registered in the same synthesis context.
func RoleFromHandle(h synth.Handle) RoleRef {
	return RoleRef{Name: h.Ref(), Arn: h.Arn()}
}

// RoleByArn references an existing role by its literal ARN. The role name,
// needed for policy attachment, is derived from the final ARN segment.
func RoleByArn(arn string) RoleRef {
	name := arn
	if idx := strings.LastIndex(arn, "/"); idx >= 0 {
		name = arn[idx+1:]
	}
	return RoleRef{Name: name, Arn: arn}
}

// LogGroupRef is an opaque reference to an existing log group. Supplying one
// tells the resolver to use it directly instead of creating log
// infrastructure. Stream optionally names an existing log stream inside the
// group; when empty the logging block omits LogStreamName. Arn is optional:
// when absent the grant resource is derived from the name via pseudo
// parameters.
type LogGroupRef struct {
	Name   any
	Arn    any
	Stream any
}

// LogGroupFromHandle references a log group registered in the same synthesis
// context.
func LogGroupFromHandle(h synth.Handle) LogGroupRef {
	return LogGroupRef{Name: h.Ref(), Arn: h.Arn()}
}

// logGroupArn assembles a log group ARN expression from a name that may
// itself be deferred: arn:<partition>:logs:<region>:<account>:log-group:<name>:*
func logGroupArn(name any) intrinsics.Join {
	return intrinsics.Join{
		Delimiter: ":",
		Values: []any{
			"arn",
			intrinsics.AWS_PARTITION,
			"logs",
			intrinsics.AWS_REGION,
			intrinsics.AWS_ACCOUNT_ID,
			"log-group",
			name,
			"*",
		},
	}
}

// objectsArn returns the expression for every object in the bucket:
// the bucket ARN with "/*" appended.
func objectsArn(bucketArn any) any {
	if s, ok := bucketArn.(string); ok {
		return s + "/*"
	}
	return intrinsics.Join{Delimiter: "", Values: []any{bucketArn, "/*"}}
}

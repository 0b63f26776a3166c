// Package synth provides the synthesis context: stable logical names,
// idempotent resource registration, dependency edges, and template assembly.
package synth

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	streamwire "github.com/lex00/streamwire-aws-go"
	"github.com/lex00/streamwire-aws-go/internal/serialize"
	"github.com/lex00/streamwire-aws-go/intrinsics"
)

// Handle identifies a registered resource and produces deferred reference
// expressions to it. The concrete ARN is never observed during synthesis;
// CloudFormation resolves the expressions at deploy time.
type Handle struct {
	// LogicalID is the stable template-level name of the resource.
	LogicalID string

	resourceType string
}

// Ref returns a Ref expression to the resource. For most resource types
// this resolves to the physical name.
func (h Handle) Ref() intrinsics.Ref {
	return intrinsics.Ref{LogicalName: h.LogicalID}
}

// Attr returns a GetAtt expression for the named attribute.
func (h Handle) Attr(name string) intrinsics.GetAtt {
	return intrinsics.GetAtt{LogicalName: h.LogicalID, Attribute: name}
}

// Arn returns a GetAtt expression for the Arn attribute.
func (h Handle) Arn() intrinsics.GetAtt {
	return h.Attr("Arn")
}

// ResourceType returns the CloudFormation type the handle was registered with.
func (h Handle) ResourceType() string {
	return h.resourceType
}

type registration struct {
	resource  streamwire.Resource
	dependsOn []string
}

// Context collects resource registrations during a single synthesis pass.
//
// Registration is single-writer and sequential: concurrent resolution of
// multiple destinations sharing one context must serialize their calls.
type Context struct {
	order []string
	defs  map[string]*registration
}

// New creates an empty synthesis context.
func New() *Context {
	return &Context{
		defs: make(map[string]*registration),
	}
}

// LogicalID converts a name hint into a stable CloudFormation logical ID:
// alphanumeric only, leading character upper-cased. The same hint always
// yields the same ID, so repeated synthesis of the same logical tree
// produces identical templates.
func (c *Context) LogicalID(hint string) string {
	var sb strings.Builder
	upperNext := true
	for _, r := range hint {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			sb.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Register adds a resource under the given logical ID and returns a handle
// to it. Registration is idempotent: registering an ID that already holds a
// resource of the same CloudFormation type returns the existing handle
// unchanged, so resolving the same configuration twice never creates
// duplicate resources. Registering an ID held by a different type is a name
// collision error.
func (c *Context) Register(logicalID string, r streamwire.Resource, dependsOn ...string) (Handle, error) {
	if logicalID == "" {
		return Handle{}, errors.New("logical ID must not be empty")
	}

	if existing, ok := c.defs[logicalID]; ok {
		if existing.resource.ResourceType() != r.ResourceType() {
			return Handle{}, fmt.Errorf("logical ID %q already registered as %s, cannot reuse for %s",
				logicalID, existing.resource.ResourceType(), r.ResourceType())
		}
		return Handle{LogicalID: logicalID, resourceType: r.ResourceType()}, nil
	}

	c.order = append(c.order, logicalID)
	c.defs[logicalID] = &registration{
		resource:  r,
		dependsOn: dedupe(dependsOn),
	}
	return Handle{LogicalID: logicalID, resourceType: r.ResourceType()}, nil
}

// AddDependsOn appends explicit ordering edges to an already registered
// resource. Duplicate edges are ignored.
func (c *Context) AddDependsOn(logicalID string, deps ...string) error {
	reg, ok := c.defs[logicalID]
	if !ok {
		return fmt.Errorf("unknown logical ID %q", logicalID)
	}
	reg.dependsOn = dedupe(append(reg.dependsOn, deps...))
	return nil
}

// Has reports whether a resource is registered under the given logical ID.
func (c *Context) Has(logicalID string) bool {
	_, ok := c.defs[logicalID]
	return ok
}

// IDs returns all registered logical IDs in registration order.
func (c *Context) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// TypeOf returns the CloudFormation type registered under the given ID,
// or the empty string if none is.
func (c *Context) TypeOf(logicalID string) string {
	if reg, ok := c.defs[logicalID]; ok {
		return reg.resource.ResourceType()
	}
	return ""
}

// DependsOn returns the explicit ordering edges of the given resource.
func (c *Context) DependsOn(logicalID string) []string {
	reg, ok := c.defs[logicalID]
	if !ok {
		return nil
	}
	deps := make([]string, len(reg.dependsOn))
	copy(deps, reg.dependsOn)
	return deps
}

// Template assembles the CloudFormation template from everything registered
// so far. Resources are processed in dependency order; a DependsOn edge to
// an unregistered resource or a dependency cycle is an error.
func (c *Context) Template() (*streamwire.Template, error) {
	order, err := c.topologicalSort()
	if err != nil {
		return nil, err
	}

	tmpl := &streamwire.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Resources:                make(map[string]streamwire.ResourceDef),
	}

	for _, id := range order {
		reg := c.defs[id]

		props, err := serialize.Properties(reg.resource)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", id, err)
		}

		deps := make([]string, len(reg.dependsOn))
		copy(deps, reg.dependsOn)
		sort.Strings(deps)

		tmpl.Resources[id] = streamwire.ResourceDef{
			Type:       reg.resource.ResourceType(),
			Properties: props,
			DependsOn:  deps,
		}
	}

	return tmpl, nil
}

// topologicalSort returns resources in dependency order using Kahn's
// algorithm, validating DependsOn edges along the way.
func (c *Context) topologicalSort() ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int)

	for id := range c.defs {
		graph[id] = nil
		inDegree[id] = 0
	}

	for id, reg := range c.defs {
		for _, dep := range reg.dependsOn {
			if _, exists := c.defs[dep]; !exists {
				return nil, fmt.Errorf("%s depends on unregistered resource %q", id, dep)
			}
			graph[dep] = append(graph[dep], id)
			inDegree[id]++
		}
	}

	var queue []string
	for id, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue) // Deterministic order

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range graph[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(c.defs) {
		return nil, c.detectCycle()
	}

	return result, nil
}

// detectCycle finds and reports a cycle in the dependency graph.
func (c *Context) detectCycle() error {
	visited := make(map[string]bool)
	path := make(map[string]bool)

	var cycle []string
	var findCycle func(node string) bool
	findCycle = func(node string) bool {
		visited[node] = true
		path[node] = true

		for _, dep := range c.defs[node].dependsOn {
			if _, exists := c.defs[dep]; !exists {
				continue
			}
			if !visited[dep] {
				if findCycle(dep) {
					cycle = append([]string{node}, cycle...)
					return true
				}
			} else if path[dep] {
				cycle = append([]string{dep, node}, cycle...)
				return true
			}
		}

		path[node] = false
		return false
	}

	// Iterate in registration order so the reported cycle is stable.
	for _, id := range c.order {
		if !visited[id] {
			if findCycle(id) {
				break
			}
		}
	}

	if len(cycle) > 0 {
		return fmt.Errorf("circular dependency detected: %s", strings.Join(cycle, " -> "))
	}
	return errors.New("circular dependency detected")
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var result []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

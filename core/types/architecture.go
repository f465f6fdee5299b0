// Package types - Architecture domain types
package types

import (
	"encoding/json"
	"strings"

	"archcost/internal/errors"
)

// Node represents one declared infrastructure component in an architecture
// description. The upstream generator is an LLM, so beyond id/type the field
// set is open-ended: everything that is not a reserved key is kept verbatim
// in Attributes and coerced lazily by the resolvers.
type Node struct {
	// ID uniquely identifies the node within an architecture
	ID string `json:"id"`

	// Type is the service type tag selecting a resolver (e.g. "AmazonEC2")
	Type string `json:"type"`

	// Label is an optional human-readable name
	Label string `json:"label,omitempty"`

	// Region is an AWS region code; empty means the run default applies
	Region string `json:"region,omitempty"`

	// Attributes holds all remaining service-specific fields
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// DisplayLabel returns the label, falling back to the node ID
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Attr returns a raw attribute value. Upstream JSON is inconsistent about
// key casing ("region" vs "Region", "InstanceType" vs "instance_type"), so
// the lookup is case-insensitive with underscores ignored.
func (n Node) Attr(key string) (interface{}, bool) {
	if v, ok := n.Attributes[key]; ok {
		return v, true
	}
	want := canonicalKey(key)
	for k, v := range n.Attributes {
		if canonicalKey(k) == want {
			return v, true
		}
	}
	return nil, false
}

// AttrRaw returns a raw attribute value or nil
func (n Node) AttrRaw(key string) interface{} {
	v, _ := n.Attr(key)
	return v
}

// AttrString returns an attribute as string, or defaultVal if absent
func (n Node) AttrString(key, defaultVal string) string {
	v, ok := n.Attr(key)
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return defaultVal
}

// AttrBool returns an attribute as bool, or defaultVal if absent.
// String forms ("true", "yes", "Multi-AZ") common in generated JSON count as true.
func (n Node) AttrBool(key string, defaultVal bool) bool {
	v, ok := n.Attr(key)
	if !ok {
		return defaultVal
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "yes" || s == "enabled" || s == "multi-az"
	}
	return defaultVal
}

func canonicalKey(k string) string {
	k = strings.ToLower(k)
	k = strings.ReplaceAll(k, "_", "")
	k = strings.ReplaceAll(k, "-", "")
	return k
}

// reservedNodeKeys are unmarshalled into named Node fields, not Attributes
var reservedNodeKeys = map[string]bool{
	"id":     true,
	"type":   true,
	"label":  true,
	"region": true,
}

// UnmarshalJSON decodes a node, capturing unknown fields into Attributes.
// The generators emit service fields at the top level of the node object
// ("InstanceType", "Storage", ...) as well as under a nested "attributes"
// object; both shapes are accepted and merged.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.Attributes = make(map[string]interface{})
	for k, v := range raw {
		if reservedNodeKeys[strings.ToLower(k)] {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				// Non-string id/type/label/region is tolerated as an attribute
				var any interface{}
				_ = json.Unmarshal(v, &any)
				n.Attributes[k] = any
				continue
			}
			switch strings.ToLower(k) {
			case "id":
				n.ID = s
			case "type":
				n.Type = s
			case "label":
				n.Label = s
			case "region":
				n.Region = s
			}
			continue
		}
		if strings.ToLower(k) == "attributes" {
			var nested map[string]interface{}
			if err := json.Unmarshal(v, &nested); err == nil {
				for nk, nv := range nested {
					n.Attributes[nk] = nv
				}
			}
			continue
		}
		var any interface{}
		if err := json.Unmarshal(v, &any); err == nil {
			n.Attributes[k] = any
		}
	}
	return nil
}

// Architecture is a parsed architecture description document
type Architecture struct {
	// Title is an optional project title from the generator
	Title string `json:"title,omitempty"`

	// Nodes is the declared component list, in document order
	Nodes []Node `json:"nodes"`
}

// ParseArchitecture decodes and structurally validates an architecture
// document. A document without a top-level "nodes" list is the one fatal
// input condition; everything else degrades per node.
func ParseArchitecture(data []byte) (*Architecture, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Parsing("invalid architecture document", err)
	}

	rawNodes, ok := probe["nodes"]
	if !ok {
		return nil, errors.Input("architecture document missing 'nodes' list")
	}

	var arch Architecture
	if title, ok := probe["title"]; ok {
		_ = json.Unmarshal(title, &arch.Title)
	}
	if err := json.Unmarshal(rawNodes, &arch.Nodes); err != nil {
		return nil, errors.Parsing("'nodes' is not a list of components", err)
	}
	if arch.Nodes == nil {
		return nil, errors.Input("architecture document missing 'nodes' list")
	}
	return &arch, nil
}

package resolver

import (
	"context"
	"testing"

	"archcost/core/pricing"
	"archcost/core/types"
)

type stubResolver struct {
	name    string
	aliases []string
}

func (s *stubResolver) ServiceType() string { return s.name }
func (s *stubResolver) Aliases() []string   { return s.aliases }
func (s *stubResolver) Resolve(ctx context.Context, req Request, catalog pricing.Catalog) types.Breakdown {
	return types.Breakdown{NodeID: req.Node.ID, ServiceType: s.name}
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubResolver{name: "Lambda", aliases: []string{"lambda", "awslambda"}})
	reg.Register(&stubResolver{name: "EC2", aliases: []string{"ec2", "amazonec2"}})

	cases := []struct {
		nodeType string
		want     string
		found    bool
	}{
		{"lambda", "Lambda", true},
		{"AWSLambda", "Lambda", true},
		{"aws_lambda", "Lambda", true},
		{"AWS Lambda Function", "Lambda", true}, // substring fallback
		{"EC2", "EC2", true},
		{"Amazon-EC2", "EC2", true},
		{"ElastiCache", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		res, ok := reg.Get(tc.nodeType)
		if ok != tc.found {
			t.Errorf("Get(%q) found = %v, want %v", tc.nodeType, ok, tc.found)
			continue
		}
		if ok && res.ServiceType() != tc.want {
			t.Errorf("Get(%q) = %s, want %s", tc.nodeType, res.ServiceType(), tc.want)
		}
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate alias")
		}
	}()

	reg := NewRegistry()
	reg.Register(&stubResolver{name: "A", aliases: []string{"s3"}})
	reg.Register(&stubResolver{name: "B", aliases: []string{"S3"}})
}

func TestNormalizeType(t *testing.T) {
	cases := []struct{ in, want string }{
		{"EC2", "ec2"},
		{"Application_Load-Balancer", "application load balancer"},
		{"  API  Gateway ", "api gateway"},
		{"amazon.s3", "amazon s3"},
	}
	for _, tc := range cases {
		if got := NormalizeType(tc.in); got != tc.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"archcost/core/types"
	"archcost/internal/errors"
)

// QA is one clarifying question and the user's answer
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Designer drives the interactive architecture design flow: a short
// requirements interview followed by generation of an architecture
// document the estimator can price.
type Designer struct {
	provider     Provider
	maxQuestions int
}

// NewDesigner creates a designer on top of a provider (or chain)
func NewDesigner(provider Provider, maxQuestions int) *Designer {
	if maxQuestions <= 0 {
		maxQuestions = 5
	}
	return &Designer{
		provider:     provider,
		maxQuestions: maxQuestions,
	}
}

const interviewSystem = `You are an experienced AWS solutions architect gathering requirements.
Your goal is to collect the technical details needed to size an AWS deployment,
asking one question at a time in a conversational manner. Ask about things that
change cost: traffic volume, data size, availability needs, compute shape.`

const designSystem = `You are an AWS architecture expert. Generate a detailed architecture JSON
document for the described project. Respond with a single JSON object and no
surrounding commentary.`

// architectureTemplate shows the model the node shape the estimator expects
const architectureTemplate = `{
  "title": "Example Web Application",
  "nodes": [
    {"id": "web-1", "type": "EC2", "label": "Web server", "region": "ap-south-1",
     "attributes": {"instance_type": "t3.medium", "count": 2, "storage": "30GB"}},
    {"id": "db-1", "type": "RDS", "label": "Primary database",
     "attributes": {"instance_class": "db.t3.medium", "engine": "MySQL", "storage": "100GB", "multi_az": true}},
    {"id": "assets", "type": "S3", "label": "Static assets", "attributes": {"storage": "500GB"}}
  ]
}`

// NextQuestion returns the next clarifying question, or "" once the
// interview has run its course
func (d *Designer) NextQuestion(ctx context.Context, projectDetails string, history []QA) (string, error) {
	if len(history) >= d.maxQuestions {
		return "", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Project Details: %s\n\n", projectDetails)
	if len(history) > 0 {
		sb.WriteString("Previous Questions and Answers:\n")
		for _, qa := range history {
			fmt.Fprintf(&sb, "Q: %s\nA: %s\n", qa.Question, qa.Answer)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Generate the next most relevant question about the project's technical requirements for AWS cloud architecture. Generate only ONE question.")

	out, err := d.provider.Generate(ctx, interviewSystem, sb.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// GenerateArchitecture produces an architecture document from the project
// description and interview answers. Returns both the parsed form and the
// raw JSON for saving to disk.
func (d *Designer) GenerateArchitecture(ctx context.Context, projectDetails string, history []QA) (*types.Architecture, []byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the following AWS architecture requirements:\n%s\n\n", projectDetails)
	if len(history) > 0 {
		sb.WriteString("Additional requirements gathered:\n")
		for _, qa := range history {
			fmt.Fprintf(&sb, "Q: %s\nA: %s\n", qa.Question, qa.Answer)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Generate an AWS architecture in JSON format, structured like this example:\n%s\n\n", architectureTemplate)
	sb.WriteString("Ensure the architecture is optimized for low latency, high availability, and cost efficiency.")

	out, err := d.provider.Generate(ctx, designSystem, sb.String())
	if err != nil {
		return nil, nil, err
	}

	doc, ok := ExtractJSON(out)
	if !ok {
		return nil, nil, errors.New(errors.TypeProvider, "model response contained no JSON object")
	}

	arch, err := types.ParseArchitecture([]byte(doc))
	if err != nil {
		return nil, nil, errors.Wrap(errors.TypeProvider, "model produced an invalid architecture document", err)
	}
	return arch, []byte(doc), nil
}

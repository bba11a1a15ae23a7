package recommendation

import (
	"fmt"
	"strings"
	"text/template"

	"cogni-recommender/internal/catalog"
	apperrors "cogni-recommender/internal/common/errors"
)

const messagePreamble = "Thank you for providing your details. Based on your responses, " +
	"we recommend the *{{.Package}}* package with {{.Seats}} seats. "

var messageBodies = map[string]string{
	catalog.FreshStart: "This plan offers essential self-guided tools, AI-powered assessments, and a user-friendly dashboard " +
		"to help you launch your mental health services efficiently and affordably. " +
		"[Click here to view your personalized proposal and explore additional options]({{.NextSteps}}).",
	catalog.PracticePlus: "This comprehensive plan delivers full AI-powered assessments, real-time progress dashboards, " +
		"customizable group therapy modules, and advanced analytics to drive better outcomes. " +
		"[Click here to view your personalized proposal and discover exclusive benefits available to your organization]({{.NextSteps}}).",
	catalog.CommunityAccess: "This package provides scalable group support modules, multilingual AI tools, and special volume pricing " +
		"to empower large teams and community organizations. " +
		"[Click here to view your personalized proposal and learn more]({{.NextSteps}}).",
	catalog.EnterpriseCare: "This solution is tailored for public health organizations, offering unlimited user support, robust analytics, " +
		"and dedicated client monitoring to ensure the highest standards of care. " +
		"[Click here to view your personalized proposal and request a customized consultation]({{.NextSteps}}).",
	catalog.EnterpriseAccess: "This package offers API integration, branded self-assessments, employer group modules, " +
		"and unlimited monitoring tools—perfect for insurance providers and EAS programs. " +
		"[Click here to view your personalized proposal and discuss your organization’s unique needs]({{.NextSteps}}).",
}

// keyFeatures is the one-line feature summary quoted in API responses.
var keyFeatures = map[string]string{
	catalog.FreshStart:       "Self-guided tools, AI self-assessment, 1 group session/month, provider dashboard",
	catalog.PracticePlus:     "Full AI suite, group modules, custom reports, real-time analytics, provider dashboard",
	catalog.CommunityAccess:  "Multilingual AI tools, scalable group support, onboarding support, volume discounts",
	catalog.EnterpriseCare:   "Unlimited users, robust analytics, API access, client monitoring & support",
	catalog.EnterpriseAccess: "API integration, branded self-assessments, usage analytics, outcome dashboards",
}

const defaultKeyFeatures = "Comprehensive support and analytics"

// KeyFeatures returns the feature summary for pkg.
func KeyFeatures(pkg string) string {
	if text, ok := keyFeatures[pkg]; ok {
		return text
	}
	return defaultKeyFeatures
}

// MessageData is the template input for a sales message.
type MessageData struct {
	Package   string
	Seats     int
	Price     string
	Features  string
	NextSteps string
}

// Composer renders per-package sales messages.
type Composer struct {
	templates map[string]*template.Template
}

// NewComposer returns a Composer with the built-in message for every package.
func NewComposer() *Composer {
	c, err := NewComposerFrom(messageBodies)
	if err != nil {
		panic(err)
	}
	return c
}

// NewComposerFrom parses one template body per package. Each body is
// prefixed with the shared greeting.
func NewComposerFrom(bodies map[string]string) (*Composer, error) {
	c := &Composer{templates: make(map[string]*template.Template, len(bodies))}
	for pkg, body := range bodies {
		tmpl, err := template.New(pkg).Option("missingkey=error").Parse(messagePreamble + body)
		if err != nil {
			return nil, fmt.Errorf("parse sales message for %q: %w", pkg, err)
		}
		c.templates[pkg] = tmpl
	}
	return c, nil
}

// Compose fills the template registered for data.Package.
func (c *Composer) Compose(data MessageData) (string, error) {
	tmpl, ok := c.templates[data.Package]
	if !ok {
		return "", apperrors.NewTemplateMissingError(data.Package)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", apperrors.NewInternalError(fmt.Errorf("render sales message for %q: %w", data.Package, err))
	}
	return sb.String(), nil
}

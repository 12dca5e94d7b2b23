package services

import "github.com/freedaiy/intake/internal/app/domain"

// CatalogService serves the fixed content catalogs. Each call returns a fresh
// copy, so callers cannot mutate shared state.
type CatalogService struct{}

// NewCatalogService constructs the catalog provider.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// ListPosts returns the blog post teasers.
func (c *CatalogService) ListPosts() []domain.Post {
	return []domain.Post{
		{
			ID:          "post-ai-productivity",
			Title:       "Designing calm, hands-free AI flows",
			Category:    "AI Productivity",
			Preview:     "Principles to build voice-first workflows that reduce clicks and context switching.",
			ReadingTime: "6 min",
		},
		{
			ID:          "post-n8n-make",
			Title:       "Nailing robust automations with n8n + Make.com",
			Category:    "Automations",
			Preview:     "Patterns for reliability, retries, and observability in production workflows.",
			ReadingTime: "7 min",
		},
		{
			ID:          "post-self-hosted-ai",
			Title:       "Private AI: self-hosting strategies",
			Category:    "Self-Hosted AI",
			Preview:     "From LLM gateways to vector stores — what to run and where.",
			ReadingTime: "8 min",
		},
	}
}

// ListProducts returns the workflow products.
func (c *CatalogService) ListProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "n8n-crm-sync",
			Title:       "CRM Sync: Leads → Deals n8n workflow",
			Description: "Auto-creates deals from form leads with enrich + dedupe.",
			Tag:         "CRM",
			Level:       "Intermediate",
		},
		{
			ID:          "ops-daily-digest",
			Title:       "Ops Daily Digest",
			Description: "Slack summary of KPIs, incidents, and tasks across tools.",
			Tag:         "Operations",
			Level:       "Beginner",
		},
		{
			ID:          "marketing-utm-cleaner",
			Title:       "UTM Cleaner + Attribution",
			Description: "Normalize UTM params and attribute signups across sessions.",
			Tag:         "Marketing",
			Level:       "Advanced",
		},
	}
}

// ListResources returns the free resources.
func (c *CatalogService) ListResources() []domain.Resource {
	return []domain.Resource{
		{
			ID:    "wf-n8n-intro",
			Title: "n8n Starter Pack",
			Kind:  "Workflow",
			Blurb: "Five plug-and-play flows to kickstart automation.",
			Tags:  []string{"Workflow", "n8n", "Starter"},
		},
		{
			ID:    "inf-voice-design",
			Title: "Voice UX Principles",
			Kind:  "Infographic",
			Blurb: "Design patterns for voice-first productivity.",
			Tags:  []string{"Infographic", "Voice", "UX"},
		},
		{
			ID:    "tpl-checklist",
			Title: "Automation Readiness Checklist",
			Kind:  "Template",
			Blurb: "Assess your stack before you automate.",
			Tags:  []string{"Template", "Readiness"},
		},
	}
}

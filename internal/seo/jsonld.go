package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
)

const schemaContext = "https://schema.org"

// Application holds the static facts published about the documented tool.
type Application struct {
	Name            string
	Category        string
	OperatingSystem string
	Description     string
	URL             string
	HelpURL         string
	Repository      string
	Price           string
	Currency        string
}

// Offer is the schema.org pricing block of a SoftwareApplication.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// SoftwareApplication is the schema.org descriptor embedded on the home page.
type SoftwareApplication struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	ApplicationCategory string `json:"applicationCategory"`
	OperatingSystem     string `json:"operatingSystem,omitempty"`
	Description         string `json:"description,omitempty"`
	URL                 string `json:"url,omitempty"`
	SoftwareHelp        string `json:"softwareHelp,omitempty"`
	CodeRepository      string `json:"codeRepository"`
	Offers              Offer  `json:"offers"`
}

// NewSoftwareApplication maps app field by field onto a SoftwareApplication.
func NewSoftwareApplication(app Application) SoftwareApplication {
	return SoftwareApplication{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                app.Name,
		ApplicationCategory: app.Category,
		OperatingSystem:     app.OperatingSystem,
		Description:         app.Description,
		URL:                 app.URL,
		SoftwareHelp:        app.HelpURL,
		CodeRepository:      app.Repository,
		Offers: Offer{
			Type:          "Offer",
			Price:         app.Price,
			PriceCurrency: app.Currency,
		},
	}
}

// FAQEntry is one authored question and its answer.
type FAQEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Answer is the schema.org accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Question is one schema.org FAQ main entity.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPage is the schema.org descriptor for a list of questions.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// NewFAQPage emits one Question per entry, in the order given.
func NewFAQPage(entries []FAQEntry) FAQPage {
	questions := make([]Question, len(entries))
	for i, e := range entries {
		questions[i] = Question{
			Type: "Question",
			Name: e.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: e.Answer,
			},
		}
	}
	return FAQPage{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}

// Script serializes descriptor into an application/ld+json script element.
// encoding/json escapes <, > and & so the payload cannot close the element.
func Script(descriptor any) (template.HTML, error) {
	data, err := json.Marshal(descriptor)
	if err != nil {
		return "", fmt.Errorf("encoding structured data: %w", err)
	}
	return template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`), nil
}

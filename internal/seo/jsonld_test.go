package seo

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFAQPagePreservesOrder(t *testing.T) {
	entries := []FAQEntry{
		{Question: "Zeta?", Answer: "last alphabetically"},
		{Question: "Alpha?", Answer: "first alphabetically"},
		{Question: "Alpha?", Answer: "first alphabetically"},
	}

	page := NewFAQPage(entries)

	if len(page.MainEntity) != 3 {
		t.Fatalf("MainEntity length = %d, want 3", len(page.MainEntity))
	}
	for i, q := range page.MainEntity {
		if q.Name != entries[i].Question {
			t.Errorf("MainEntity[%d].Name = %q, want %q", i, q.Name, entries[i].Question)
		}
		if q.AcceptedAnswer.Text != entries[i].Answer {
			t.Errorf("MainEntity[%d].AcceptedAnswer.Text = %q, want %q", i, q.AcceptedAnswer.Text, entries[i].Answer)
		}
		if q.Type != "Question" || q.AcceptedAnswer.Type != "Answer" {
			t.Errorf("MainEntity[%d] types = %q/%q", i, q.Type, q.AcceptedAnswer.Type)
		}
	}
}

func TestNewFAQPageEmpty(t *testing.T) {
	page := NewFAQPage(nil)
	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"mainEntity":[]`) {
		t.Errorf("empty FAQ should serialize an empty list, got %s", data)
	}
}

func TestNewSoftwareApplication(t *testing.T) {
	app := NewSoftwareApplication(WrkrApplication(Default()))

	if app.Context != "https://schema.org" || app.Type != "SoftwareApplication" {
		t.Errorf("context/type = %q/%q", app.Context, app.Type)
	}
	if app.URL != "https://clyra-ai.github.io/wrkr/" {
		t.Errorf("URL = %q", app.URL)
	}
	if app.SoftwareHelp != "https://clyra-ai.github.io/wrkr/docs/" {
		t.Errorf("SoftwareHelp = %q", app.SoftwareHelp)
	}
	if app.CodeRepository != WrkrRepository {
		t.Errorf("CodeRepository = %q", app.CodeRepository)
	}
	if app.Offers.Price != "0" || app.Offers.PriceCurrency != "USD" || app.Offers.Type != "Offer" {
		t.Errorf("Offers = %+v", app.Offers)
	}
}

func TestScript(t *testing.T) {
	page := NewFAQPage([]FAQEntry{{Question: "Is </script> safe?", Answer: "a & b"}})

	out, err := Script(page)
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, `<script type="application/ld+json">`) || !strings.HasSuffix(s, `</script>`) {
		t.Fatalf("unexpected wrapper: %s", s)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, `<script type="application/ld+json">`), `</script>`)
	if strings.Contains(body, "</script>") {
		t.Error("payload must not contain a closing script tag")
	}

	var decoded FAQPage
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if decoded.MainEntity[0].Name != "Is </script> safe?" {
		t.Errorf("decoded question = %q", decoded.MainEntity[0].Name)
	}
}

func TestScriptUnsupportedValue(t *testing.T) {
	if _, err := Script(make(chan int)); err == nil {
		t.Error("expected error for a value JSON cannot encode")
	}
}

func TestWrkrFAQ(t *testing.T) {
	faq := WrkrFAQ()
	if len(faq) != 6 {
		t.Fatalf("WrkrFAQ length = %d, want 6", len(faq))
	}
	if faq[0].Question != "What is Wrkr in one sentence?" {
		t.Errorf("first question = %q", faq[0].Question)
	}
}

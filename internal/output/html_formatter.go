package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/savings-planner/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"pct":      FormatPercentage,
	"scenario": FormatScenario,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlClient struct {
	Name           string
	Records        []domain.ResultRecord
	Recommendation string
}

func (h HTMLFormatter) Format(records []domain.ResultRecord) ([]byte, error) {
	var buf bytes.Buffer

	byClient := make(map[string][]domain.ResultRecord)
	for _, r := range records {
		byClient[r.ClientName] = append(byClient[r.ClientName], r)
	}
	var clients []htmlClient
	for _, rec := range AnalyzeSuggestions(records) {
		clients = append(clients, htmlClient{
			Name:           rec.ClientName,
			Records:        byClient[rec.ClientName],
			Recommendation: describeRecommendation(rec),
		})
	}

	data := struct {
		Clients     []htmlClient
		Records     []domain.ResultRecord
		Assumptions []string
	}{clients, records, GenerateAssumptions(records)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package presenters

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"

	"github.com/mosaiq/go-import-framework/pkg/imports"
	"github.com/mosaiq/go-import-framework/pkg/platform"
)

// RenderError renders a fatal run error with the details worth surfacing.
func RenderError(err error) string {
	badge := errorBadgeStyle.Render("ERROR")
	title := renderBold(err.Error())

	var body []string

	var httpErr *platform.HTTPError
	if errors.As(err, &httpErr) {
		body = append(body, renderDetail("HTTP:", strconv.Itoa(httpErr.StatusCode)))
	}

	var notFoundErr *imports.SourceNotFoundError
	if errors.As(err, &notFoundErr) {
		body = append(body, renderDetail("Path:", notFoundErr.Path))
	}

	output := "\n" + badge + " " + title + "\n"
	if len(body) > 0 {
		output += strings.Join(body, "\n") + "\n"
	}

	return output
}

func renderDetail(label string, value string) string {
	detailLabel := lipgloss.NewStyle().Width(8).Render(label)
	detailValue := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Render(value)
	return lipgloss.JoinHorizontal(lipgloss.Top, detailLabel, detailValue)
}

// RenderFailures lists every skipped image of a run with the reason it was
// skipped. Returns the empty string when nothing failed.
func RenderFailures(result *imports.ImportResult) string {
	failed := result.Failed()
	if len(failed) == 0 {
		return ""
	}

	response := RenderTitle("Skipped Images")
	for _, outcome := range failed {
		response += renderFailure(outcome)
	}

	return response
}

func renderFailure(outcome imports.Outcome) string {
	properties := []failureProperty{
		{Label: "Reason", Value: outcome.Err.Error()},
	}
	if outcome.Item.URL != "" {
		properties = append(properties, failureProperty{Label: "URL", Value: outcome.Item.URL})
	}
	if outcome.Item.Path != "" {
		properties = append(properties, failureProperty{Label: "Path", Value: outcome.Item.Path})
	}

	return strings.Join([]string{
		fmt.Sprintf(" %s %s",
			renderInOutcomeColor("failure", "✗"),
			renderBold(outcome.Item.Name),
		),
		getFormattedProperties(properties),
	}, "\n")
}

type failureProperty struct {
	Label string
	Value string
}

func getFormattedProperties(properties []failureProperty) string {
	formattedProperties := ""
	labelLength := 0

	for _, property := range properties {
		if len(property.Label) > labelLength {
			labelLength = len(property.Label) + 1
		}
	}

	labelAndPropertyFormat := "   %-" + fmt.Sprintf("%d", labelLength) + "s %s\n"

	for _, property := range properties {
		formattedProperties += fmt.Sprintf(labelAndPropertyFormat, property.Label+":", property.Value)
	}

	return formattedProperties
}

func RenderDivider() string {
	return "─────────────────────────────────────────────────────\n"
}

func RenderTitle(str string) string {
	return fmt.Sprintf("\n%s\n\n", renderBold(str))
}

func RenderTip(str string) string {
	return fmt.Sprintf("\n💡 Tip\n\n   %s", str)
}

// RenderImportSummary renders the closing summary box of an import run.
func RenderImportSummary(result *imports.ImportResult, project *platform.ProjectInfo, dataset *platform.DatasetInfo, source string) (string, error) {
	var buff bytes.Buffer
	var summaryTemplate = template.Must(template.New("summary").Parse(`{{ .SummaryTitle }}

  Project:   {{ .Project }}
  Dataset:   {{ .Dataset }}{{ if .Source }}
  Source:    {{ .Source }}{{ end }}

  Total images:    {{ .TotalCount }}{{ if .TotalCount }}
  Imported images: {{ .ImportedCount }}
  Skipped images:  {{ .SkippedCount }}{{ end }}`))

	projectValue := "-"
	if project != nil {
		projectValue = describeEntity(project.Name, project.ID)
	}
	datasetValue := "-"
	if dataset != nil {
		datasetValue = describeEntity(dataset.Name, dataset.ID)
	}

	err := summaryTemplate.Execute(&buff, struct {
		SummaryTitle  string
		Project       string
		Dataset       string
		Source        string
		TotalCount    int
		ImportedCount string
		SkippedCount  string
	}{
		SummaryTitle:  renderBold("Import Summary"),
		Project:       projectValue,
		Dataset:       datasetValue,
		Source:        source,
		TotalCount:    result.Len(),
		ImportedCount: renderInOutcomeColor("success", strconv.Itoa(len(result.Succeeded()))),
		SkippedCount:  renderInOutcomeColor("skipped", strconv.Itoa(len(result.Failed()))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate import summary from template: %w", err)
	}

	return boxStyle.Render(buff.String()), nil
}

func describeEntity(name string, id int) string {
	if name == "" {
		return fmt.Sprintf("id %d", id)
	}
	return fmt.Sprintf("%s (id %d)", name, id)
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"choptimize/internal/analysis"
)

// Section icons for visual scanning.
const (
	iconPrompt          = "📝"
	iconAnalysis        = "📊"
	iconAssessment      = "💭"
	iconRecommendations = "💡"
	iconImproved        = "✨"
)

// RenderReport writes the full analysis report: prompt echo, quality
// analysis, detailed assessment, recommendations (if any), and the improved
// prompt (if any), in that fixed order.
func (c *Console) RenderReport(a *analysis.Analysis, userPrompt string) {
	width := c.Width()

	c.section(iconPrompt, "Your Prompt", width)
	c.println(c.panel(userPrompt, BorderDefault, width), "")

	c.section(iconAnalysis, "Quality Analysis", width)
	quality := fmt.Sprintf("\n%s\n\n%s\n", c.overallScoreLine(a.OverallScore), c.metricsTable(a, width-4))
	c.println(c.panel(quality, BorderAccent, width), "")

	c.section(iconAssessment, "Detailed Assessment", width)
	c.println(c.panel(SafeRenderMarkup(a.OverallAssessment), BorderDefault, width), "")

	if recs := a.RecommendationList(); len(recs) > 0 {
		c.section(iconRecommendations, "Recommendations", width)
		c.println(c.panel(c.numberedList(recs), BorderDefault, width), "")
	}

	if a.ImprovedPrompt != "" {
		c.section(iconImproved, "Improved Prompt", width)
		c.println(c.panel(SafeRenderMarkup(a.ImprovedPrompt), BorderSuccess, width), "")
	}
}

// section prints a left-aligned titled rule.
func (c *Console) section(icon, title string, width int) {
	text := c.styles.Heading.Render(icon + " " + title)
	rest := width - lipgloss.Width(text) - 4
	if rest < 0 {
		rest = 0
	}
	rule := c.styles.Heading.Render("── ") + text + " " + c.styles.Heading.Render(strings.Repeat("─", rest))
	c.println(rule)
}

// panel wraps content in a rounded bordered block of the given total width.
func (c *Console) panel(content string, border lipgloss.Color, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(0, 1).
		Render(content)
}

func (c *Console) overallScoreLine(score float64) string {
	return c.styles.Label.Render("Overall Score: ") +
		c.styles.ScoreStyle(score).Render(FormatScore(score)+"/10") +
		c.styles.Value.Render(" • "+analysis.Assessment(score))
}

// metricsTable renders the five-row quality table in fixed metric order.
func (c *Console) metricsTable(a *analysis.Analysis, width int) string {
	headers := []string{"Metric", "Score", "Assessment"}
	rows := make([][]string, 0, 5)
	for _, m := range a.Metrics() {
		rows = append(rows, []string{
			c.styles.Label.Render(m.Name),
			c.styles.ScoreStyle(m.Metric.Score).Render(FormatScore(m.Metric.Score) + "/10"),
			c.styles.Value.Render(analysis.Assessment(m.Metric.Score)),
		})
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	cell := lipgloss.NewStyle().Padding(0, 1)

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(cell.Width(colWidths[i]).Render(c.styles.TableHeader.Render(h)))
		if i < len(headers)-1 {
			sb.WriteString(c.styles.Muted.Render("│"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	if totalWidth > width && width > 0 {
		totalWidth = width
	}
	sb.WriteString(c.styles.Muted.Render(strings.Repeat("─", totalWidth)))
	sb.WriteString("\n")

	for r, row := range rows {
		for i, col := range row {
			sb.WriteString(cell.Width(colWidths[i]).Render(col))
			if i < len(row)-1 {
				sb.WriteString(c.styles.Muted.Render("│"))
			}
		}
		if r < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// numberedList renders recommendations, markup-interpreted, with a literal
// fallback per item when an item's markup is malformed.
func (c *Console) numberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		line, err := RenderMarkup(fmt.Sprintf("[cyan]%d.[/cyan] %s", i+1, item))
		if err != nil {
			line = fmt.Sprintf("%d. %s", i+1, item)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FormatScore renders a score without trailing zeros: 8.5 -> "8.5", 7 -> "7".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

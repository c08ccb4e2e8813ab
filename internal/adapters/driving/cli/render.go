package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // bright cyan
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))  // cyan
	contentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// renderPoem formats one poem: indented title, then author〔dynasty〕,
// then the content block.
func renderPoem(p domain.Poem) string {
	var b strings.Builder
	b.WriteString("\t" + titleStyle.Render(p.Title) + "\n")
	b.WriteString("\t" + metaStyle.Render(fmt.Sprintf("%s〔%s〕", p.Author, p.Dynasty)) + "\n")
	b.WriteString(contentStyle.Render(p.Content) + "\n")
	return b.String()
}

// renderStat formats the corpus totals and both frequency tables.
func renderStat(stat domain.Stat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "总数：%d\n", stat.Total)
	b.WriteString(headerStyle.Render("朝代：") + "\n")
	for _, vc := range stat.Dynasties {
		fmt.Fprintf(&b, "%7s：%d\n", vc.Value, vc.Count)
	}
	b.WriteString(headerStyle.Render("作者：") + "\n")
	for _, vc := range stat.Authors {
		fmt.Fprintf(&b, "%7s：%d\n", vc.Value, vc.Count)
	}
	return b.String()
}

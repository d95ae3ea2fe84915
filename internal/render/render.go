// Package render formats strategy tables for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/cards"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/config"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/strategy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	standStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	doubleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	splitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func actionStyle(a strategy.Action) lipgloss.Style {
	switch a {
	case strategy.Stand:
		return standStyle
	case strategy.DoubleElseHit, strategy.DoubleElseStand:
		return doubleStyle
	case strategy.Split:
		return splitStyle
	default:
		return hitStyle
	}
}

// Tables renders all three strategy grids with a rules summary header.
func Tables(rules config.Rules, t *strategy.Tables) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(rules.String()))
	b.WriteString("\n\n")

	b.WriteString(grid("Hard Totals", hardLabels(), t.Hard[:]))
	b.WriteString("\n")
	b.WriteString(grid("Soft Totals", softLabels(), t.Soft[:]))
	b.WriteString("\n")
	b.WriteString(grid("Pairs", pairLabels(), t.Pairs[:]))

	return b.String()
}

func hardLabels() []string {
	labels := make([]string, strategy.HardRows)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+4)
	}
	return labels
}

func softLabels() []string {
	labels := make([]string, strategy.SoftRows)
	labels[0] = "A,A"
	for i := 1; i < len(labels); i++ {
		labels[i] = fmt.Sprintf("A,%d", i+1)
	}
	return labels
}

func pairLabels() []string {
	labels := make([]string, strategy.PairRows)
	for i := 0; i < 9; i++ {
		labels[i] = fmt.Sprintf("%d,%d", i+2, i+2)
	}
	labels[9] = "A,A"
	return labels
}

func grid(title string, labels []string, rows [][strategy.Upcards]strategy.Action) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%6s", ""))
	for up := cards.Two; up <= cards.Ace; up++ {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%4s", up.String())))
	}
	b.WriteString("\n")

	for i, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%6s", labels[i])))
		for _, a := range row {
			b.WriteString(actionStyle(a).Render(fmt.Sprintf("%4s", a.String())))
		}
		b.WriteString("\n")
	}
	return b.String()
}

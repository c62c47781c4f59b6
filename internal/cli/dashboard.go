package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wedding-planner/internal/metrics"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"painel"},
		Short:   "Show the wedding overview",
		Run:     runDashboard,
	})
}

func runDashboard(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	d := a.planner.Dashboard()
	if jsonOutput() {
		printJSON(d)
		return
	}
	fmt.Print(renderDashboard(d))
}

func renderDashboard(d metrics.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💍 %s\n", strings.TrimSpace(d.Wedding.Names))
	fmt.Fprintf(&b, "📍 %s  📅 %s", d.Wedding.Location, d.Wedding.Date)
	switch {
	case d.DaysUntil > 0:
		fmt.Fprintf(&b, " (faltam %d dias)\n", d.DaysUntil)
	case d.DaysUntil == 0:
		fmt.Fprint(&b, " (é hoje!)\n")
	default:
		fmt.Fprintf(&b, " (há %d dias)\n", -d.DaysUntil)
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")

	fmt.Fprintf(&b, "Convidados: %d confirmados de %d convites (estimativa de %d pessoas)\n",
		d.ConfirmedGuests, d.GuestCount, d.TotalGuestEstimate)
	fmt.Fprintf(&b, "Orçamento:  R$ %s gastos de R$ %s", d.CurrentSpend.StringFixed(2), d.Wedding.Budget.StringFixed(2))
	if d.OverBudget {
		fmt.Fprintf(&b, " (estourado em R$ %s)\n", d.RemainingBudget.Neg().StringFixed(2))
	} else {
		fmt.Fprintf(&b, " (restam R$ %s)\n", d.RemainingBudget.StringFixed(2))
	}
	fmt.Fprintf(&b, "Tarefas:    %d%% (%d de %d concluídas)\n", d.TaskProgress, d.CompletedTasks, d.TaskCount)

	b.WriteString(strings.Repeat("-", 60) + "\n")
	if len(d.PendingTasks) == 0 {
		b.WriteString("Tudo pronto! Nenhuma tarefa pendente.\n")
		return b.String()
	}
	b.WriteString("Próximas tarefas:\n")
	for _, t := range d.PendingTasks {
		fmt.Fprintf(&b, "  • %s [%s]", t.Title, t.Priority)
		if t.DueDate != "" {
			fmt.Fprintf(&b, " até %s", t.DueDate)
		}
		b.WriteString("\n")
	}
	return b.String()
}

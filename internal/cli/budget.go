package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wedding-planner/internal/editor"
	"wedding-planner/internal/metrics"
	"wedding-planner/internal/models"
)

func init() {
	budget := &cobra.Command{
		Use:     "budget",
		Aliases: []string{"orcamento"},
		Short:   "Track budget line items",
	}

	add := &cobra.Command{Use: "add [category]", Short: "Add a budget line", Args: cobra.ExactArgs(1), Run: runBudgetAdd}
	set := &cobra.Command{Use: "set [id]", Short: "Change amounts of a budget line", Args: cobra.ExactArgs(1), Run: runBudgetSet}
	set.Flags().String("category", "", "Category label")
	for _, c := range []*cobra.Command{add, set} {
		c.Flags().String("estimated", "", "Estimated cost")
		c.Flags().String("actual", "", "Actual cost")
		c.Flags().String("paid", "", "Amount paid")
	}

	budget.AddCommand(
		&cobra.Command{Use: "list", Short: "List budget lines with totals", Run: runBudgetList},
		add,
		set,
		&cobra.Command{Use: "rm [id]", Short: "Remove a budget line", Args: cobra.ExactArgs(1), Run: runBudgetRm},
	)
	RootCmd.AddCommand(budget)
}

type budgetLine struct {
	models.BudgetItem
	Status metrics.ItemStatus `json:"status"`
}

type budgetReport struct {
	Items  []budgetLine         `json:"items"`
	Totals metrics.BudgetTotals `json:"totals"`
}

func runBudgetList(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	items := a.planner.Budget()
	report := budgetReport{Items: make([]budgetLine, 0, len(items)), Totals: metrics.Totals(items)}
	for _, item := range items {
		report.Items = append(report.Items, budgetLine{BudgetItem: item, Status: metrics.StatusOf(item)})
	}
	if jsonOutput() {
		printJSON(report)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tCATEGORIA\tESTIMADO\tREAL\tPAGO\tSTATUS\t")
	for _, line := range report.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", line.ID, line.Category,
			line.EstimatedCost.StringFixed(2), line.ActualCost.StringFixed(2), line.Paid.StringFixed(2), line.Status)
	}
	fmt.Fprintf(w, "\tTOTAL\t%s\t%s\t%s\t\t\n",
		report.Totals.Estimated.StringFixed(2), report.Totals.Actual.StringFixed(2), report.Totals.Paid.StringFixed(2))
	w.Flush()
}

// budgetPatch reads the amount flags that were set.
func budgetPatch(flags *pflag.FlagSet) (editor.BudgetPatch, error) {
	var p editor.BudgetPatch
	amounts := []struct {
		flag   string
		target **decimal.Decimal
	}{
		{"estimated", &p.EstimatedCost},
		{"actual", &p.ActualCost},
		{"paid", &p.Paid},
	}
	for _, a := range amounts {
		if !flags.Changed(a.flag) {
			continue
		}
		v, _ := flags.GetString(a.flag)
		d, err := decimal.NewFromString(v)
		if err != nil {
			return p, fmt.Errorf("--%s: %w", a.flag, err)
		}
		*a.target = &d
	}
	if flags.Lookup("category") != nil && flags.Changed("category") {
		v, _ := flags.GetString("category")
		p.Category = &v
	}
	return p, nil
}

func runBudgetAdd(cmd *cobra.Command, args []string) {
	p, err := budgetPatch(cmd.Flags())
	if err != nil {
		exitErr("budget add", err)
	}

	a := mustOpenApp()
	defer a.Close()

	item, err := a.planner.AddBudgetItem(args[0], p)
	if err != nil {
		exitErr("budget add", err)
	}
	printBudgetItem(item)
}

func runBudgetSet(cmd *cobra.Command, args []string) {
	p, err := budgetPatch(cmd.Flags())
	if err != nil {
		exitErr("budget set", err)
	}

	a := mustOpenApp()
	defer a.Close()

	found, err := a.planner.UpdateBudgetItem(args[0], p)
	if err != nil {
		exitErr("budget set", err)
	}
	if !found {
		notFound("budget set", args[0])
	}
	for _, item := range a.planner.Budget() {
		if item.ID == args[0] {
			printBudgetItem(item)
		}
	}
}

func runBudgetRm(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	found, err := a.planner.RemoveBudgetItem(args[0])
	if err != nil {
		exitErr("budget rm", err)
	}
	if !found {
		notFound("budget rm", args[0])
	}
	if !jsonOutput() {
		fmt.Printf("Item %s removido.\n", args[0])
	}
}

func printBudgetItem(item models.BudgetItem) {
	if jsonOutput() {
		printJSON(budgetLine{BudgetItem: item, Status: metrics.StatusOf(item)})
		return
	}
	fmt.Printf("%s  %s  estimado R$ %s, real R$ %s, pago R$ %s [%s]\n", item.ID, item.Category,
		item.EstimatedCost.StringFixed(2), item.ActualCost.StringFixed(2), item.Paid.StringFixed(2), metrics.StatusOf(item))
}

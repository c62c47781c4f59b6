package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
)

func init() {
	tasks := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"tarefas"},
		Short:   "Manage the planning checklist",
	}

	set := &cobra.Command{Use: "set [id]", Short: "Change task fields", Args: cobra.ExactArgs(1), Run: runTasksSet}
	set.Flags().String("title", "", "Title")
	set.Flags().String("due", "", "Due date (YYYY-MM-DD, empty to clear)")
	set.Flags().String("priority", "", "Priority: high, medium, low")
	set.Flags().Bool("completed", false, "Completion flag")

	tasks.AddCommand(
		&cobra.Command{Use: "list", Short: "List tasks", Run: runTasksList},
		&cobra.Command{Use: "add [title]", Short: "Add a task at the top of the list", Run: runTasksAdd},
		&cobra.Command{Use: "toggle [id]", Short: "Mark a task done or not done", Args: cobra.ExactArgs(1), Run: runTasksToggle},
		set,
		&cobra.Command{Use: "rm [id]", Short: "Remove a task", Args: cobra.ExactArgs(1), Run: runTasksRm},
	)
	RootCmd.AddCommand(tasks)
}

func runTasksList(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	tasks := a.planner.Tasks()
	if jsonOutput() {
		printJSON(tasks)
		return
	}
	for _, t := range tasks {
		printTask(t)
	}
}

func runTasksAdd(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	t, err := a.planner.AddTask(strings.Join(args, " "))
	if err != nil {
		exitErr("tasks add", err)
	}
	printTask(t)
}

func runTasksToggle(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	t, found, err := a.planner.ToggleTask(args[0])
	if err != nil {
		exitErr("tasks toggle", err)
	}
	if !found {
		notFound("tasks toggle", args[0])
	}
	printTask(t)
}

func runTasksSet(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	var p editor.TaskPatch
	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		p.Title = &v
	}
	if flags.Changed("due") {
		v, _ := flags.GetString("due")
		p.DueDate = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		pr, err := models.ParsePriority(v)
		if err != nil {
			exitErr("tasks set", err)
		}
		p.Priority = &pr
	}
	if flags.Changed("completed") {
		v, _ := flags.GetBool("completed")
		p.Completed = &v
	}

	a := mustOpenApp()
	defer a.Close()

	found, err := a.planner.UpdateTask(args[0], p)
	if err != nil {
		exitErr("tasks set", err)
	}
	if !found {
		notFound("tasks set", args[0])
	}
	for _, t := range a.planner.Tasks() {
		if t.ID == args[0] {
			printTask(t)
		}
	}
}

func runTasksRm(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	found, err := a.planner.RemoveTask(args[0])
	if err != nil {
		exitErr("tasks rm", err)
	}
	if !found {
		notFound("tasks rm", args[0])
	}
	if !jsonOutput() {
		fmt.Printf("Tarefa %s removida.\n", args[0])
	}
}

func printTask(t models.Task) {
	if jsonOutput() {
		printJSON(t)
		return
	}
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Printf("%s %s  %s (%s)", box, t.ID, t.Title, t.Priority)
	if t.DueDate != "" {
		fmt.Printf(" até %s", t.DueDate)
	}
	fmt.Println()
}

package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wedding-planner/internal/editor"
	"wedding-planner/internal/metrics"
	"wedding-planner/internal/models"
	"wedding-planner/internal/whatsapp"
)

func init() {
	guests := &cobra.Command{
		Use:     "guests",
		Aliases: []string{"convidados"},
		Short:   "Manage the guest list",
	}

	list := &cobra.Command{Use: "list", Short: "List guests", Run: runGuestsList}
	list.Flags().StringP("status", "s", "", "Filter by status: pending, confirmed, declined")
	list.Flags().StringP("search", "q", "", "Filter by name")

	add := &cobra.Command{Use: "add [name]", Short: "Add a pending guest", Args: cobra.MinimumNArgs(1), Run: runGuestsAdd}
	add.Flags().String("email", "", "Email address")
	add.Flags().String("phone", "", "Phone number for WhatsApp")
	add.Flags().String("category", "", "Category: bride, groom, friends, work, other")
	add.Flags().Bool("plus-one", false, "Guest brings a companion")

	set := &cobra.Command{Use: "set [id]", Short: "Change guest fields", Args: cobra.ExactArgs(1), Run: runGuestsSet}
	set.Flags().String("name", "", "Name")
	set.Flags().String("email", "", "Email address")
	set.Flags().String("phone", "", "Phone number")
	set.Flags().String("category", "", "Category")
	set.Flags().String("status", "", "Status")
	set.Flags().Bool("plus-one", false, "Guest brings a companion")

	guests.AddCommand(
		list,
		add,
		set,
		&cobra.Command{Use: "cycle [id]", Short: "Advance the RSVP status", Args: cobra.ExactArgs(1), Run: runGuestsCycle},
		&cobra.Command{Use: "rm [id]", Short: "Remove a guest", Args: cobra.ExactArgs(1), Run: runGuestsRm},
	)
	RootCmd.AddCommand(guests)
}

func runGuestsList(cmd *cobra.Command, args []string) {
	statusStr, _ := cmd.Flags().GetString("status")
	search, _ := cmd.Flags().GetString("search")

	var status models.GuestStatus
	if statusStr != "" {
		var err error
		if status, err = models.ParseGuestStatus(statusStr); err != nil {
			exitErr("guests list", err)
		}
	}

	a := mustOpenApp()
	defer a.Close()

	guests := metrics.FilterGuests(a.planner.Guests(), status, search)
	if jsonOutput() {
		printJSON(guests)
		return
	}
	if len(guests) == 0 {
		fmt.Println("Nenhum convidado encontrado.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tCATEGORIA\tSTATUS\t+1\tCONTATO")
	for _, g := range guests {
		plusOne := ""
		if g.PlusOne {
			plusOne = "sim"
		}
		contact := strings.TrimSpace(g.Email + " " + g.Phone)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", g.ID, g.Name, g.Category, g.Status, plusOne, contact)
	}
	w.Flush()
}

func runGuestsAdd(cmd *cobra.Command, args []string) {
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	categoryStr, _ := cmd.Flags().GetString("category")
	plusOne, _ := cmd.Flags().GetBool("plus-one")

	n := editor.NewGuest{
		Name:    strings.Join(args, " "),
		Email:   email,
		PlusOne: plusOne,
	}
	if phone != "" {
		n.Phone = whatsapp.NormalizePhoneNumber(phone)
	}
	if categoryStr != "" {
		c, err := models.ParseGuestCategory(categoryStr)
		if err != nil {
			exitErr("guests add", err)
		}
		n.Category = c
	}

	a := mustOpenApp()
	defer a.Close()

	g, err := a.planner.AddGuest(n)
	if err != nil {
		exitErr("guests add", err)
	}
	printGuest(g)
}

func runGuestsSet(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	var p editor.GuestPatch
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		p.Name = &v
	}
	if flags.Changed("email") {
		v, _ := flags.GetString("email")
		p.Email = &v
	}
	if flags.Changed("phone") {
		v, _ := flags.GetString("phone")
		v = whatsapp.NormalizePhoneNumber(v)
		p.Phone = &v
	}
	if flags.Changed("category") {
		v, _ := flags.GetString("category")
		c, err := models.ParseGuestCategory(v)
		if err != nil {
			exitErr("guests set", err)
		}
		p.Category = &c
	}
	if flags.Changed("status") {
		v, _ := flags.GetString("status")
		s, err := models.ParseGuestStatus(v)
		if err != nil {
			exitErr("guests set", err)
		}
		p.Status = &s
	}
	if flags.Changed("plus-one") {
		v, _ := flags.GetBool("plus-one")
		p.PlusOne = &v
	}

	a := mustOpenApp()
	defer a.Close()

	found, err := a.planner.UpdateGuest(args[0], p)
	if err != nil {
		exitErr("guests set", err)
	}
	if !found {
		notFound("guests set", args[0])
	}
	g, _ := a.planner.Guest(args[0])
	printGuest(g)
}

func runGuestsCycle(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	g, found, err := a.planner.CycleGuestStatus(args[0])
	if err != nil {
		exitErr("guests cycle", err)
	}
	if !found {
		notFound("guests cycle", args[0])
	}
	printGuest(g)
}

func runGuestsRm(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	found, err := a.planner.RemoveGuest(args[0])
	if err != nil {
		exitErr("guests rm", err)
	}
	if !found {
		notFound("guests rm", args[0])
	}
	if !jsonOutput() {
		fmt.Printf("Convidado %s removido.\n", args[0])
	}
}

func printGuest(g models.Guest) {
	if jsonOutput() {
		printJSON(g)
		return
	}
	fmt.Printf("%s  %s  [%s, %s]\n", g.ID, g.Name, g.Category, g.Status)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wedding-planner/internal/handler"
	"wedding-planner/internal/whatsapp"
)

func init() {
	wa := &cobra.Command{
		Use:   "whatsapp",
		Short: "Send invitations and collect RSVPs over WhatsApp",
	}
	wa.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Listen for RSVP replies and questions from the couple",
			Long: "Connects to WhatsApp (printing a pairing QR code on first login), records guests' " +
				"SIM/NÃO replies and forwards messages from COUPLE_PHONE to the assistant.",
			Run: runWhatsAppServe,
		},
		&cobra.Command{
			Use:   "invite [guest-id...]",
			Short: "Send the invitation to guests",
			Args:  cobra.MinimumNArgs(1),
			Run:   runWhatsAppInvite,
		},
	)
	RootCmd.AddCommand(wa)
}

// connect builds the WhatsApp service and the message handler on top of a.
func (a *app) connect(ctx context.Context) (*whatsapp.Service, *handler.Handler) {
	svc, err := whatsapp.NewService(ctx, &whatsapp.Config{DataDir: a.cfg.DataDir, QROut: os.Stdout}, a.log)
	if err != nil {
		exitErr("whatsapp", err)
	}
	h := handler.NewHandler(svc, a.planner, a.newSession(), &handler.Config{
		CouplePhone: whatsapp.NormalizePhoneNumber(a.cfg.CouplePhone),
	}, a.log)
	svc.SetMessageHandler(h.HandleMessage)

	fmt.Println("Conectando ao WhatsApp...")
	if err := svc.Connect(ctx); err != nil {
		exitErr("whatsapp connect", err)
	}
	return svc, h
}

func runWhatsAppServe(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, _ := a.connect(ctx)
	fmt.Println("✅ Conectado! Aguardando respostas dos convidados.")

	<-ctx.Done()
	fmt.Println("\nEncerrando...")
	svc.Disconnect()
}

func runWhatsAppInvite(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	ctx := context.Background()
	svc, h := a.connect(ctx)
	defer svc.Disconnect()

	failed := 0
	for _, id := range args {
		if err := h.Invite(ctx, id); err != nil {
			failed++
			fmt.Printf("❌ %s: %v\n", id, err)
			continue
		}
		fmt.Printf("✅ Convite enviado para %s\n", id)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

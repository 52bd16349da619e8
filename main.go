package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zachkp/resume-site/config"
	"github.com/Zachkp/resume-site/site"
	"github.com/Zachkp/resume-site/store"
)

func main() {
	config.LoadEnv()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	var notifiers site.Notifiers
	if cfg.DiscordWebhook != "" {
		notifiers = append(notifiers, site.NewDiscord(cfg.DiscordWebhook))
	}
	if cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		notifiers = append(notifiers, site.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailTo))
	}

	var notifier site.Notifier
	if len(notifiers) > 0 {
		notifier = notifiers
	} else {
		log.Println("No DISCORD_WEBHOOK or SMTP credentials set, contact notifications disabled")
	}

	srv := site.New(cfg, st, notifier)

	httpSrv := &http.Server{
		Addr:              srv.Addr(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go srv.RunCleanup(ctx, 24*time.Hour)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	log.Printf("Server running: http://127.0.0.1%s/", srv.Addr())
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// Command tokengen prints a signed access token for the notify routes.
//
// Usage:
//
//	tokengen -sub billing-service -role sms_sender
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"notify-dispatch/internal/auth"
	"notify-dispatch/internal/config"
	"notify-dispatch/internal/rbac"
	"notify-dispatch/pkg/logger"
)

func main() {
	sub := flag.String("sub", "", "token subject (calling service or operator)")
	role := flag.String("role", rbac.RoleNotifier, "role: admin, notifier, sms_sender or voice_caller")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	// stdout carries only the token so it can be captured by scripts.
	log := logger.NewWithWriter(os.Stderr, cfg.App.Env, cfg.App.LogLevel)

	if !cfg.AuthEnabled() {
		log.Error("AUTH_JWT_SECRET is not set; tokens would not be checked by the api")
		os.Exit(1)
	}
	if !rbac.IsKnown(*role) {
		log.Error("unknown role", "role", *role)
		os.Exit(2)
	}

	m, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", logger.Error(err))
		os.Exit(1)
	}
	tok, err := m.Issue(time.Now(), *sub, *role)
	if err != nil {
		log.Error("token issue failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("token issued", "sub", *sub, "role", *role, "ttl", cfg.Auth.TokenTTL.String())
	fmt.Println(tok)
}

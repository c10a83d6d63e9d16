// Command adduser registers a user directly against the database, bypassing
// the HTTP surface. Useful for bootstrapping the first account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/randx"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"github.com/dmitrijs2005/gatekeeper/internal/server/shared/db"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func getPassword() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func run(ctx context.Context, cfg *config.Config, username string) error {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rm := db.NewPostgresRepositoryManager()
	conn, err := db.Open(ctx, cfg.DatabaseDSN, rm)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer conn.Close()

	password, err := getPassword()
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}
	defer randx.WipeByteArray(password)

	svc := services.NewAuthService(conn, rm, cfg, logger)
	user, err := svc.Register(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("error registering user: %w", err)
	}

	fmt.Printf("registered %s id=%s\n", user.Username, user.ID)
	return nil
}

func parseUsername() string {
	var username string

	args := flagx.FilterArgs(os.Args[1:], []string{"-u"})

	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.StringVar(&username, "u", "", "username to register")
	_ = fs.Parse(args)

	return username
}

func main() {
	cfg := config.LoadConfig()

	username := parseUsername()
	if username == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -u <username> [-d dsn]")
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, username); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

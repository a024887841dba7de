// Command promote turns a registered citizen into a volunteer once an
// operator has verified their qualifications and ID.
//
// Usage:
//
//	promote --email=user@example.com --qualifications="Civil engineer" --id-number=1234-5678-9012 [--skills=roads,water]
//	promote --phone=9876543210 ...
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/user"
	"github.com/gramaconnect/gramaconnect-backend/internal/app"
	"github.com/gramaconnect/gramaconnect-backend/internal/config"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the citizen to promote")
	phone := flag.String("phone", "", "phone of the citizen to promote")
	qualifications := flag.String("qualifications", "", "verified qualifications")
	idNumber := flag.String("id-number", "", "verified Aadhar number")
	skills := flag.String("skills", "", "comma-separated skills")
	flag.Parse()

	if (*email == "") == (*phone == "") {
		fmt.Fprintln(os.Stderr, "Usage: promote (--email=E | --phone=P) --qualifications=Q --id-number=ID [--skills=a,b]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := user.New(pool)

	var u *domain.User
	if *email != "" {
		u, err = users.GetByEmail(ctx, strings.ToLower(*email))
	} else {
		u, err = users.GetByPhone(ctx, *phone)
	}
	if err != nil {
		logger.Error("find user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	v := domain.Volunteer{Qualifications: *qualifications, IDNumber: *idNumber, Skills: splitSkills(*skills)}
	if err := u.PromoteToVolunteer(v, time.Now()); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
			}
			os.Exit(2)
		}
		logger.Error("promote user", slog.String("user_id", u.ID.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := users.UpdateProfile(ctx, u); err != nil {
		logger.Error("update profile", slog.String("user_id", u.ID.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("user promoted to volunteer",
		slog.String("user_id", u.ID.String()),
		slog.String("name", u.Name),
	)
}

func splitSkills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// adminctl creates the bootstrap admin or rotates an admin password from the
// command line, prompting for the password so it never lands in shell history.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/config"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

const bcryptCost = 12

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	email, err := getSimpleText(reader, "Admin email:")
	if err != nil {
		return err
	}
	email = strings.ToLower(email)

	password, err := getPassword("New password:")
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password:")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	repo := rm.Admins(db)
	admin, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return err
		}
		created, err := repo.Create(ctx, &models.Admin{
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.AdminRoleAdmin,
			IsActive:     true,
		})
		if err != nil {
			return err
		}
		fmt.Println("admin created:", created.Email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	if err := repo.UpdatePassword(ctx, admin.ID, string(hash), time.Now()); err != nil {
		return err
	}
	fmt.Println("password updated for", admin.Email)
	return nil
}

func getSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func getPassword(prompt string) (string, error) {
	fmt.Println(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

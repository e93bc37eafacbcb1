// Команда createadmin заводит администратора панели.
// Пароль читается из SPA_ADMIN_PASSWORD или первой строкой из stdin.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SpaBookingService/internal/config"
	"github.com/m04kA/SpaBookingService/internal/domain"
	adminRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/admin"
	"github.com/m04kA/SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SpaBookingService/pkg/logger"
)

const minPasswordLength = 8

func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	username := flag.String("username", "", "administrator login")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	name := strings.TrimSpace(*username)
	if name == "" {
		log.Fatal("Username is required (-username)")
	}

	password, err := readPassword()
	if err != nil {
		log.Fatal("Failed to read password: %v", err)
	}
	if len(password) < minPasswordLength {
		log.Fatal("Password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := adminRepo.NewRepository(dbmetrics.Wrap(db))
	admin, err := repo.Create(ctx, &domain.AdminUser{
		Username:     name,
		PasswordHash: string(hash),
		Status:       domain.AdminActive,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrUsernameTaken) {
			log.Fatal("Administrator %q already exists", name)
		}
		log.Fatal("Failed to create administrator: %v", err)
	}

	log.Info("Administrator %q created with id=%d", admin.Username, admin.ID)
}

func readPassword() (string, error) {
	if p := os.Getenv("SPA_ADMIN_PASSWORD"); p != "" {
		return p, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

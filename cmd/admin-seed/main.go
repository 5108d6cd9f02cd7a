package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"member-hub.backend/internal/config"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	domainrepo "member-hub.backend/internal/domain/repositories"
	"member-hub.backend/internal/infrastructure/repositories"
	"member-hub.backend/pkg/crypto"
	"member-hub.backend/pkg/utils"
	"member-hub.backend/pkg/wallet"
)

var openAdminSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openAdminSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type adminSeedRuntime interface {
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateAdmin(ctx context.Context, email, password string) (*entities.User, error)
	PromoteToAdmin(ctx context.Context, user *entities.User) error
}

type adminSeedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (adminSeedRuntime, io.Closer, error)
	out     io.Writer
}

type adminSeedRuntimeImpl struct {
	userRepo   domainrepo.UserRepository
	memberRepo domainrepo.MemberRepository
	uow        domainrepo.UnitOfWork
}

func (r adminSeedRuntimeImpl) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.userRepo.GetByEmail(ctx, email)
}

func (r adminSeedRuntimeImpl) CreateAdmin(ctx context.Context, email, password string) (*entities.User, error) {
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	walletKey, err := wallet.GeneratePlaceholderKey()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userName := strings.SplitN(email, "@", 2)[0]
	member := &entities.Member{
		ID:        utils.GenerateUUIDv7(),
		FirstName: userName,
		UserName:  userName,
		Email:     email,
		Slug:      userName,
		WalletKey: walletKey,
		IsActive:  true,
		Following: "0",
		Followers: "0",
		JoinedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entities.User{
		ID:            utils.GenerateUUIDv7(),
		Email:         email,
		PasswordHash:  passwordHash,
		Role:          entities.UserRoleAdmin,
		IsActive:      true,
		EmailVerified: true,
		MemberID:      member.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = r.uow.Do(ctx, func(ctx context.Context) error {
		if err := r.memberRepo.Create(ctx, member); err != nil {
			return err
		}
		return r.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r adminSeedRuntimeImpl) PromoteToAdmin(ctx context.Context, user *entities.User) error {
	user.Role = entities.UserRoleAdmin
	user.IsActive = true
	user.UpdatedAt = time.Now()
	return r.userRepo.Update(ctx, user)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultAdminSeedDeps() adminSeedDeps {
	return adminSeedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (adminSeedRuntime, io.Closer, error) {
			db, err := openAdminSeedDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openAdminSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			return adminSeedRuntimeImpl{
				userRepo:   repositories.NewUserRepository(db),
				memberRepo: repositories.NewMemberRepository(db),
				uow:        repositories.NewUnitOfWork(db),
			}, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func parseAdminEmail(email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("--email is required")
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("invalid email: %s", email)
	}
	return email, nil
}

func resolveAdminPassword(input string) (string, bool, error) {
	if input != "" {
		return input, false, nil
	}
	generated, err := crypto.GenerateRandomToken(12)
	if err != nil {
		return "", false, err
	}
	return generated, true, nil
}

func runAdminSeed(args []string, deps adminSeedDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultAdminSeedDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("admin-seed", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "admin account email (required)")
	passwordFlag := fs.String("password", "", "admin password (random when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email, err := parseAdminEmail(*emailFlag)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	existing, err := runtime.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to look up %s: %w", email, err)
	}
	if err == nil {
		if existing.Role == entities.UserRoleAdmin {
			_, _ = fmt.Fprintf(deps.out, "user %s is already an admin\n", email)
			return nil
		}
		if err := runtime.PromoteToAdmin(ctx, existing); err != nil {
			return fmt.Errorf("failed promoting user %s: %w", email, err)
		}
		_, _ = fmt.Fprintf(deps.out, "promoted %s to admin\n", email)
		return nil
	}

	password, generated, err := resolveAdminPassword(*passwordFlag)
	if err != nil {
		return err
	}

	user, err := runtime.CreateAdmin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("failed creating admin %s: %w", email, err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created admin account")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID.String())
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", email)
	if generated {
		_, _ = fmt.Fprintf(deps.out, "password=%s\n", password)
	}
	return nil
}

func main() {
	if err := runAdminSeed(os.Args[1:], defaultAdminSeedDeps()); err != nil {
		log.Fatal(err)
	}
}

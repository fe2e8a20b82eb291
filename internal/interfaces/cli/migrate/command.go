package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gymkeep/internal/application/account"
	"gymkeep/internal/infrastructure/auth"
	"gymkeep/internal/infrastructure/config"
	"gymkeep/internal/infrastructure/database"
	"gymkeep/internal/infrastructure/migration"
	"gymkeep/internal/infrastructure/repository"
	"gymkeep/internal/shared/logger"
)

var (
	env   string
	steps int

	ownerLogin      string
	ownerEmail      string
	ownerPassword   string
	ownerFirstName  string
	ownerLastName   string
	ownerNationalID string
	ownerPhone      string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedOwnerCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

// seed-owner provisions the initial owner account. The system has no
// other path to its first privileged login.
func newSeedOwnerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-owner",
		Short: "Provision the initial owner account",
		RunE:  runSeedOwner,
	}

	cmd.Flags().StringVar(&ownerLogin, "login", "", "Owner login (required)")
	cmd.Flags().StringVar(&ownerEmail, "email", "", "Owner email (required)")
	cmd.Flags().StringVar(&ownerPassword, "password", "", "Owner password (required)")
	cmd.Flags().StringVar(&ownerFirstName, "first-name", "", "Owner first name (required)")
	cmd.Flags().StringVar(&ownerLastName, "last-name", "", "Owner last name (required)")
	cmd.Flags().StringVar(&ownerNationalID, "national-id", "", "Owner national ID, 11 digits (required)")
	cmd.Flags().StringVar(&ownerPhone, "phone", "", "Owner phone number (required)")

	for _, flag := range []string{"login", "email", "password", "first-name", "last-name", "national-id", "phone"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGolangMigrateStrategy()
	if err := strategy.Migrate(database.Get()); err != nil {
		return err
	}

	fmt.Println("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGolangMigrateStrategy().(*migration.GolangMigrateStrategy)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return err
	}

	fmt.Printf("rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGolangMigrateStrategy().(*migration.GolangMigrateStrategy)
	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if version == 0 {
		fmt.Println("no migrations applied")
		return nil
	}

	fmt.Printf("version: %d, dirty: %t\n", version, dirty)
	return nil
}

func runSeedOwner(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	log := logger.NewLogger()
	db := database.Get()

	identityRepo := repository.NewIdentityRepository(db, log)
	personRepo := repository.NewPersonRepository(db, log)
	accountStore := repository.NewAccountStore(db, log)

	hasher := auth.NewArgon2PasswordHasher(
		cfg.Auth.Password.Argon2Time,
		cfg.Auth.Password.Argon2Memory,
		cfg.Auth.Password.Argon2Threads,
	)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RememberExpDays,
	)

	accountService := account.NewService(identityRepo, personRepo, accountStore, hasher, jwtService, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dto, err := accountService.Provision(ctx, account.ProvisionCommand{
		RegisterCommand: account.RegisterCommand{
			Login:       ownerLogin,
			Email:       ownerEmail,
			Password:    ownerPassword,
			FirstName:   ownerFirstName,
			LastName:    ownerLastName,
			NationalID:  ownerNationalID,
			PhoneNumber: ownerPhone,
		},
		Role: "owner",
	})
	if err != nil {
		return fmt.Errorf("failed to seed owner: %w", err)
	}

	fmt.Printf("owner account created: identity %d, person %d\n", dto.IdentityID, dto.PersonID)
	return nil
}

package commands

import (
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/app"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/auth"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DatabaseCommandHandler runs schema and account maintenance.
type DatabaseCommandHandler struct {
	cfg    *config.RestConfig
	db     *gorm.DB
	logger logger.Logger
}

func newDatabaseCommandHandler(cmd *cobra.Command) (*DatabaseCommandHandler, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return &DatabaseCommandHandler{cfg: cfg, db: db, logger: log}, nil
}

func (h *DatabaseCommandHandler) close() {
	if err := persistence.CloseDB(h.db); err != nil {
		h.logger.Warn("failed to close database", "error", err)
	}
}

// MigrateCmd creates or updates every table.
func (h *DatabaseCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) error {
	if err := persistence.AutoMigrate(h.db); err != nil {
		return err
	}
	h.logger.Info("Database migrations completed successfully")
	return nil
}

// CreateAdminCmd migrates the schema and registers an administrator.
func (h *DatabaseCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	phone, err := cmd.Flags().GetString("phone")
	if err != nil {
		return fmt.Errorf("invalid phone flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}

	if err := persistence.AutoMigrate(h.db); err != nil {
		return err
	}
	repo, err := persistence.NewGormUserRepository(h.db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	userService, err := app.NewUserService(repo, auth.NewBcryptHasher(h.cfg.Auth.BcryptCost), h.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	input := &users.CreateInput{
		Name:     name,
		Phone:    phone,
		Password: password,
		Role:     users.RoleAdmin,
	}
	if email != "" {
		input.Email = &email
	}

	user, err := userService.Create(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	h.logger.Info("Administrator created", "id", user.ID, "phone", user.Phone)
	return nil
}

// runWithDatabase opens the database for the duration of run.
func runWithDatabase(run func(*DatabaseCommandHandler, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		handler, err := newDatabaseCommandHandler(cmd)
		if err != nil {
			return err
		}
		defer handler.close()
		return run(handler, cmd, args)
	}
}

// InitDatabaseCommands registers the migrate and create-admin commands.
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  runWithDatabase((*DatabaseCommandHandler).MigrateCmd),
	}
	rootCmd.AddCommand(migrateCmd)

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE:  runWithDatabase((*DatabaseCommandHandler).CreateAdminCmd),
	}
	createAdminCmd.Flags().StringP("name", "", "", "Display name of the administrator")
	createAdminCmd.Flags().StringP("phone", "", "", "Login phone number (01XXXXXXXXX)")
	createAdminCmd.Flags().StringP("password", "", "", "Initial password (6 to 72 characters)")
	createAdminCmd.Flags().StringP("email", "", "", "Optional e-mail address")
	for _, name := range []string{"name", "phone", "password"} {
		if err := createAdminCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s required: %w", name, err)
		}
	}
	rootCmd.AddCommand(createAdminCmd)

	return nil
}

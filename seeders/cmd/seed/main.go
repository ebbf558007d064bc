package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bank-dashboard/internal/repositories"
	"bank-dashboard/migrations"
	"bank-dashboard/pkg/utils"
	"bank-dashboard/pkg/validation"
	"bank-dashboard/seeders"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bankseed",
		Short: "Миграции и тестовые данные банковской схемы",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newSeedCommand(), newMigrateCommand(), newHashPasswordCommand())
	return rootCmd
}

func newSeedCommand() *cobra.Command {
	var seed int64
	var only []string
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Сгенерировать данные и записать их в БД в порядке зависимостей",
		Long: "Группы для --only: " + strings.Join(seeders.Groups, ", ") + ".\n" +
			"Повторный запуск по непустым таблицам завершится ошибкой первичного ключа.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), seed, only, migrate)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed генератора (0 = 1)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "записать только указанные группы")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "применить миграции перед заполнением")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Управление схемой БД",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Применить все новые миграции",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, env *environment) error {
				return migrations.UpFromPool(ctx, env.pool, env.logger)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Показать состояние миграций",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, env *environment) error {
				statuses, err := migrations.ListFromPool(ctx, env.pool)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s %s\n", s.Version, state, s.File)
				}
				return nil
			})
		},
	})
	return cmd
}

// newHashPasswordCommand печатает bcrypt-хеш для ADMIN_PASSWORD_HASH.
func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <пароль>",
		Short: "Сгенерировать значение ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) < 6 {
				return fmt.Errorf("пароль должен быть не короче 6 символов")
			}
			hash, err := utils.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func runSeed(ctx context.Context, seed int64, only []string, migrate bool) error {
	return withDB(ctx, func(ctx context.Context, env *environment) error {
		if migrate {
			if err := migrations.UpFromPool(ctx, env.pool, env.logger); err != nil {
				return err
			}
		}

		env.logger.Info("▶️  Генерация данных", zap.Int64("seed", seed), zap.Strings("only", only))
		ds := seeders.NewGenerator(seed, time.Now(), seeders.DefaultSizes()).Generate()

		s := seeders.NewSeeder(repositories.NewTxManager(env.pool), validation.New(), env.logger)
		if err := s.Run(ctx, ds, only); err != nil {
			env.logger.Error("❌ Ошибка наполнения БД", zap.Error(err))
			return err
		}
		env.logger.Info("✅ Наполнение БД завершено")
		return nil
	})
}

package main

import (
	"context"
	"fmt"
	"os"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/drivers/database"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/core/auth"
	"sehatnama-service/internal/app/services/core/hospitals"
	"sehatnama-service/internal/app/services/core/medicines"
	"sehatnama-service/internal/app/services/core/patients"
	"sehatnama-service/internal/app/services/core/session"
	"sehatnama-service/internal/app/services/core/users"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/app/services/shared/cache"
	"sehatnama-service/internal/app/services/shared/identifier"
	"sehatnama-service/internal/app/services/shared/redis"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newIndexesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the mongo indexes used by the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withToolkit(false, func(ctx context.Context, rt *toolkit) error {
				created, err := database.EnsureIndexes(ctx, rt.db)
				if err != nil {
					return err
				}
				for collection, names := range created {
					rt.out.WithFields(logrus.Fields{
						"collection": collection,
						"indexes":    strings.Join(names, ","),
					}).Info("indexes ensured")
				}
				return nil
			})
		},
	}
}

func newSeedCommand() *cobra.Command {
	var medicinesFile, hospitalsFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert catalog entries from JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if medicinesFile == "" && hospitalsFile == "" {
				return fmt.Errorf("at least one of --medicines or --hospitals is required")
			}
			return withToolkit(true, func(ctx context.Context, rt *toolkit) error {
				catalogCache := cache.NewCatalogCache(
					redis.NewRedisRepository(rt.redis),
					time.Duration(rt.internalConfig.Catalog.CacheTTLInMinutes)*time.Minute,
					rt.log,
				)

				if medicinesFile != "" {
					count, err := seedMedicines(ctx, medicines.NewMedicineMongoRepository(rt.db), medicinesFile)
					if err != nil {
						return err
					}
					if err := catalogCache.Invalidate(ctx, constvars.CatalogMedicines); err != nil {
						rt.out.WithError(err).Warn("failed to invalidate medicine cache")
					}
					rt.out.WithField("count", count).Info("medicines seeded")
				}

				if hospitalsFile != "" {
					count, err := seedHospitals(ctx, hospitals.NewHospitalMongoRepository(rt.db), hospitalsFile)
					if err != nil {
						return err
					}
					if err := catalogCache.Invalidate(ctx, constvars.CatalogHospitals); err != nil {
						rt.out.WithError(err).Warn("failed to invalidate hospital cache")
					}
					rt.out.WithField("count", count).Info("hospitals seeded")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&medicinesFile, "medicines", "", "path to a JSON array of medicines")
	cmd.Flags().StringVar(&hospitalsFile, "hospitals", "", "path to a JSON array of hospitals")
	return cmd
}

func newCreateStaffCommand() *cobra.Command {
	request := new(requests.CreateStaff)

	cmd := &cobra.Command{
		Use:   "create-staff",
		Short: "Create a doctor or admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SanitizeCreateStaffRequest(request)
			if err := utils.ValidateStruct(request); err != nil {
				return err
			}

			return withToolkit(true, func(ctx context.Context, rt *toolkit) error {
				permissionChecker, err := access.NewPermissionChecker(rt.log)
				if err != nil {
					return err
				}
				authUsecase := auth.NewAuthUsecase(
					users.NewUserMongoRepository(rt.db),
					session.NewSessionRepository(redis.NewRedisRepository(rt.redis)),
					permissionChecker,
					rt.internalConfig,
					rt.log,
				)

				operator := &models.Actor{UserID: "maintenance", Role: constvars.RoleAdmin, Name: "maintenance"}
				profile, err := authUsecase.CreateStaff(ctx, operator, request)
				if err != nil {
					return err
				}
				rt.out.WithFields(logrus.Fields{
					"id":    profile.ID,
					"email": profile.Email,
					"role":  profile.Role,
				}).Info("staff account created")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "display name")
	cmd.Flags().StringVar(&request.Email, "email", "", "login email")
	cmd.Flags().StringVar(&request.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&request.Role, "role", constvars.RoleDoctor, "doctor or admin")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSyncCounterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-counter",
		Short: "Move the patient identifier counter past the highest stored identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withToolkit(false, func(ctx context.Context, rt *toolkit) error {
				highest, err := patients.NewPatientMongoRepository(rt.db).FindHighestSequence(ctx)
				if err != nil {
					return err
				}
				err = identifier.NewPatientIDGenerator(rt.db, rt.log).SyncTo(ctx, highest)
				if err != nil {
					return err
				}
				rt.out.WithField("sequence", highest).Info("patient counter synchronized")
				return nil
			})
		},
	}
}

func seedMedicines(ctx context.Context, repository contracts.MedicineRepository, path string) (int, error) {
	var entries []requests.CreateMedicine
	if err := readJSONFile(path, &entries); err != nil {
		return 0, err
	}
	for i := range entries {
		entry := &entries[i]
		utils.SanitizeCreateMedicineRequest(entry)
		if err := utils.ValidateStruct(entry); err != nil {
			return i, fmt.Errorf("medicine #%d: %w", i+1, err)
		}
		err := repository.UpsertByName(ctx, &models.Medicine{
			Name:         entry.Name,
			GenericName:  entry.GenericName,
			Manufacturer: entry.Manufacturer,
			Category:     entry.Category,
			Form:         entry.Form,
			Strength:     entry.Strength,
			Price:        entry.Price,
			Stock:        entry.Stock,
			Description:  entry.Description,
		})
		if err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

func seedHospitals(ctx context.Context, repository contracts.HospitalRepository, path string) (int, error) {
	var entries []requests.CreateHospital
	if err := readJSONFile(path, &entries); err != nil {
		return 0, err
	}
	for i := range entries {
		entry := &entries[i]
		utils.SanitizeCreateHospitalRequest(entry)
		if err := utils.ValidateStruct(entry); err != nil {
			return i, fmt.Errorf("hospital #%d: %w", i+1, err)
		}
		err := repository.UpsertByName(ctx, &models.Hospital{
			Name:        entry.Name,
			Address:     entry.Address,
			City:        entry.City,
			Phone:       entry.Phone,
			Email:       entry.Email,
			Type:        entry.Type,
			Specialties: entry.Specialties,
			Beds:        entry.Beds,
		})
		if err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

func readJSONFile(path string, dest interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, dest)
}

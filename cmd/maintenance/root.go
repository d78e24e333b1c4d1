package main

import (
	"context"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/drivers/database"
	"sehatnama-service/internal/app/drivers/logger"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const commandTimeout = 2 * time.Minute

// toolkit holds the drivers a maintenance command needs. Commands open it
// lazily so that --help works without a database.
type toolkit struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	out            *logrus.Logger
	log            *zap.Logger
	mongoClient    *mongo.Client
	db             *mongo.Database
	redis          *redis.Client
}

func openToolkit(withRedis bool) (*toolkit, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return nil, err
	}

	rt := &toolkit{
		driverConfig:   driverConfig,
		internalConfig: internalConfig,
		out:            logger.NewLogrusLogger(internalConfig),
		log:            logger.NewZapLogger(driverConfig, internalConfig),
	}
	rt.mongoClient = database.NewMongoDB(driverConfig, rt.log)
	rt.db = rt.mongoClient.Database(driverConfig.MongoDB.DbName)
	if withRedis {
		rt.redis = database.NewRedisClient(driverConfig, rt.log)
	}
	return rt, nil
}

func (rt *toolkit) close(ctx context.Context) {
	if rt.redis != nil {
		_ = rt.redis.Close()
	}
	_ = rt.mongoClient.Disconnect(ctx)
	_ = rt.log.Sync()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "maintenance",
		Short:         "Operational tasks for the SehatNama service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newIndexesCommand(),
		newSeedCommand(),
		newCreateStaffCommand(),
		newSyncCounterCommand(),
	)
	return root
}

// withToolkit opens the drivers, runs fn under a bounded context and closes
// everything afterwards.
func withToolkit(withRedis bool, fn func(ctx context.Context, rt *toolkit) error) error {
	rt, err := openToolkit(withRedis)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	defer rt.close(ctx)

	err = fn(ctx, rt)
	if err != nil {
		rt.out.WithError(err).Error("command failed")
	}
	return err
}

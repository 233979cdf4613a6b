package main

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	"github.com/trezcool/darasa/storage/database/seed"
	sqlxrepos "github.com/trezcool/darasa/storage/database/sqlx"
)

var logger core.Logger

func main() {
	conf := core.NewConfig()
	logger = logsvc.NewRollbarLogger("ADMIN", conf)

	if conf.Database.Engine != core.EnginePostgres {
		logger.Fatal("admin commands need the postgres database engine (got " + conf.Database.Engine + ")")
	}

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal("creating database", err)
	}
	sqlDB, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	db := sqlxrepos.NewDB(sqlDB)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	cli := commandLine{
		db:         sqlDB,
		usrSvc:     user.NewService(sqlxrepos.NewUserRepository(db)),
		validate:   validate,
		translator: translator,
		seedFunc: func(ctx context.Context, data seed.Data) error {
			return sqlxrepos.Seed(ctx, db, data)
		},
	}

	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}

// Package digcontainer wires the API dependencies with a dig.Container.
package digcontainer

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/certificate"
	"github.com/trezcool/darasa/core/inventory"
	"github.com/trezcool/darasa/core/sheet"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/teacher"
	"github.com/trezcool/darasa/core/user"
	emailsvc "github.com/trezcool/darasa/services/email"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
	"github.com/trezcool/darasa/storage/database/seed"
	sqlxrepos "github.com/trezcool/darasa/storage/database/sqlx"
)

type (
	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	// StoreCloser releases the resources of the store.
	StoreCloser func() error

	Repositories struct {
		dig.Out
		Users      user.Repository
		Students   student.Repository
		Attendance attendance.Repository
		Teachers   teacher.Repository
		Items      inventory.Repository
		Sheets     sheet.Repository
		Close      StoreCloser
	}

	ServerParams struct {
		dig.In
		Conf           *core.Config
		Logger         core.Logger
		UserSvc        *user.Service
		StudentSvc     *student.Service
		AttendanceSvc  *attendance.Service
		TeacherSvc     *teacher.Service
		InventorySvc   *inventory.Service
		SheetSvc       *sheet.Service
		CertificateSvc *certificate.Service
		Validate       *validator.Validate
		Translator     ut.Translator
	}
)

func newLogger(conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger("API", conf)
}

func newDBLogger(conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger("DB", conf)
}

// newRepositories opens the store selected by the database engine. Both stores start with the sample school.
func newRepositories(conf *core.Config, loggerParam DBLoggerParam) (Repositories, error) {
	logger := loggerParam.Logger

	switch conf.Database.Engine {
	case core.EngineMemory, "":
		logger.Info("using the in-memory store")
		db := inmemdb.NewSeeded()
		return Repositories{
			Users:      inmemdb.NewUserRepository(db),
			Students:   inmemdb.NewStudentRepository(db),
			Attendance: inmemdb.NewAttendanceRepository(db),
			Teachers:   inmemdb.NewTeacherRepository(db),
			Items:      inmemdb.NewItemRepository(db),
			Sheets:     inmemdb.NewSheetRepository(db),
			Close:      func() error { return nil },
		}, nil

	case core.EnginePostgres:
		db, err := setUpDB(conf)
		if err != nil {
			return Repositories{}, errors.Wrap(err, "setting up database")
		}
		xdb := sqlxrepos.NewDB(db)
		if err = sqlxrepos.Seed(context.Background(), xdb, seed.Sample()); err != nil {
			_ = db.Close()
			return Repositories{}, errors.Wrap(err, "seeding database")
		}
		logger.Info(fmt.Sprintf("using the postgres store at %s", conf.Database.Address()))
		return Repositories{
			Users:      sqlxrepos.NewUserRepository(xdb),
			Students:   sqlxrepos.NewStudentRepository(xdb),
			Attendance: sqlxrepos.NewAttendanceRepository(xdb),
			Teachers:   sqlxrepos.NewTeacherRepository(xdb),
			Items:      sqlxrepos.NewItemRepository(xdb),
			Sheets:     sqlxrepos.NewSheetRepository(xdb),
			Close:      db.Close,
		}, nil
	}
	return Repositories{}, errors.Errorf("unknown database engine %q", conf.Database.Engine)
}

func setUpDB(conf *core.Config) (*sql.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

func newHoursCounter(svc *attendance.Service) certificate.HoursCounter {
	return svc
}

func newServer(p ServerParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:           p.Conf,
		Logger:         p.Logger,
		UserSvc:        p.UserSvc,
		StudentSvc:     p.StudentSvc,
		AttendanceSvc:  p.AttendanceSvc,
		TeacherSvc:     p.TeacherSvc,
		InventorySvc:   p.InventorySvc,
		SheetSvc:       p.SheetSvc,
		CertificateSvc: p.CertificateSvc,
		Validate:       p.Validate,
		Translator:     p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New(newConfig func() *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newRepositories))
	must(c.Provide(newEmailService))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))

	must(c.Provide(user.NewService))
	must(c.Provide(student.NewService))
	must(c.Provide(attendance.NewService))
	must(c.Provide(teacher.NewService))
	must(c.Provide(inventory.NewService))
	must(c.Provide(sheet.NewService))
	must(c.Provide(newHoursCounter))
	must(c.Provide(certificate.NewService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}

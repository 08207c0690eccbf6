package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	httpadp "github.com/rifky200804/ez-request-web/internal/adapter/http"
	appmw "github.com/rifky200804/ez-request-web/internal/adapter/middleware"
	"github.com/rifky200804/ez-request-web/internal/adapter/repository/mysql"
	"github.com/rifky200804/ez-request-web/internal/config"
	employeeDomain "github.com/rifky200804/ez-request-web/internal/domain/employee"
	requestDomain "github.com/rifky200804/ez-request-web/internal/domain/request"
	"github.com/rifky200804/ez-request-web/internal/infrastructure/cache"
	"github.com/rifky200804/ez-request-web/internal/infrastructure/db"
	approvalUC "github.com/rifky200804/ez-request-web/internal/usecase/approval"
	employeeUC "github.com/rifky200804/ez-request-web/internal/usecase/employee"
	payrollUC "github.com/rifky200804/ez-request-web/internal/usecase/payroll"
	requestUC "github.com/rifky200804/ez-request-web/internal/usecase/request"
)

func initLogger(level string) {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}
	cfg := config.Load()
	initLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	if err := gdb.AutoMigrate(&employeeDomain.Employee{}, &requestDomain.ServiceRequest{}); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	employees := mysql.NewEmployeeRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	empHandler := httpadp.NewEmployeeHandler(employeeUC.NewUsecase(employees))
	reqHandler := httpadp.NewRequestHandler(requestUC.NewUsecase(requests, employees, uow))
	apprHandler := httpadp.NewApprovalHandler(approvalUC.NewUsecase(employees, requests, uow))
	payHandler := httpadp.NewPayrollHandler(payrollUC.NewUsecase())
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/v1/payroll/simulate", payHandler.Simulate)

	v1 := e.Group("/v1")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Fatal("redis unavailable")
		}
		v1.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	} else {
		log.Warn("REDIS_ADDR not set, idempotency middleware disabled")
	}

	// Directory administration (gateway restricts these to admins)
	v1.POST("/employees", empHandler.CreateEmployee)
	v1.GET("/employees", empHandler.ListEmployees)
	v1.GET("/employees/:employee_id", empHandler.GetEmployee)
	v1.PUT("/employees/:employee_id", empHandler.UpdateEmployee)
	v1.DELETE("/employees/:employee_id", empHandler.DeleteEmployee)

	// Everything below acts on behalf of a known employee
	acting := v1.Group("", appmw.RequireActor())
	acting.POST("/requests", reqHandler.CreateRequest)
	acting.GET("/requests", reqHandler.ListMyRequests)
	acting.GET("/requests/:request_id", reqHandler.GetRequest)
	acting.DELETE("/requests/:request_id", reqHandler.WithdrawRequest)
	acting.POST("/requests/:request_id/decision", apprHandler.Decide)
	acting.GET("/approvals/pending", apprHandler.ListPending)
	acting.GET("/approvals/history", apprHandler.ListHistory)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

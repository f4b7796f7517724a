package router

import (
	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"
	"hrms/backend/internal/middleware"
	"hrms/backend/internal/pkg/repository/postgresql"

	"hrms/backend/internal/repository/postgres/leave"
	"hrms/backend/internal/repository/postgres/measurement"
	"hrms/backend/internal/repository/postgres/task"
	"hrms/backend/internal/repository/postgres/user"

	auth_controller "hrms/backend/internal/controller/http/v1/auth"
	leave_controller "hrms/backend/internal/controller/http/v1/leave"
	measurement_controller "hrms/backend/internal/controller/http/v1/measurement"
	task_controller "hrms/backend/internal/controller/http/v1/task"
	user_controller "hrms/backend/internal/controller/http/v1/user"

	"go.uber.org/zap"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	port       string
	auth       *auth.Auth
	baseURL    string
	logger     *zap.Logger
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	port string,
	auth *auth.Auth,
	baseURL string,
	logger *zap.Logger,
) *Router {
	return &Router{
		app,
		postgresDB,
		port,
		auth,
		baseURL,
		logger,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestLogger(r.logger))
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	taskPostgres := task.NewRepository(r.postgresDB)
	leavePostgres := leave.NewRepository(r.postgresDB)
	measurementPostgres := measurement.NewRepository(r.postgresDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	userController := user_controller.NewController(userPostgres)
	taskController := task_controller.NewController(taskPostgres)
	leaveController := leave_controller.NewController(leavePostgres)
	measurementController := measurement_controller.NewController(measurementPostgres, r.baseURL)

	// #auth
	r.Post("/api/v1/auth/login", authController.Login)
	r.Post("/api/v1/auth/register", authController.Register)
	r.Post("/api/v1/auth/logout", authController.Logout, middleware.Authenticate(r.auth))
	r.Post("/api/v1/auth/refresh", authController.RefreshToken, middleware.Authenticate(r.auth))

	// #user
	r.Get("/api/v1/user/list", userController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/user/profile", userController.GetProfile, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/email/:email", userController.GetDetailByEmail, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/export", userController.ExportEmployee, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/:id", userController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Post("/api/v1/user/create", userController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #task
	r.Get("/api/v1/task/list", taskController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/task/user/:id", taskController.GetListByUserId, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/task/:id", taskController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Post("/api/v1/task/create", taskController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Patch("/api/v1/task/:id", taskController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/task/:id", taskController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))

	// #leave
	r.Get("/api/v1/leave/list", leaveController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/leave/user/:id", leaveController.GetListByUserId, middleware.Authenticate(r.auth))
	r.Get("/api/v1/leave/user/:id/:status", leaveController.GetListByUserId, middleware.Authenticate(r.auth))
	r.Get("/api/v1/leave/:id", leaveController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/leave/create", leaveController.Create, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/leave/:id", leaveController.UpdateColumns, middleware.Authenticate(r.auth))
	r.Delete("/api/v1/leave/:id", leaveController.Delete, middleware.Authenticate(r.auth))

	// #customer-measurement
	r.Get("/api/v1/customer-measurement/list", measurementController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/customer-measurement/trashed", measurementController.GetTrashedList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/customer-measurement/labels", measurementController.LabelSheet, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/customer-measurement/:id", measurementController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/customer-measurement/:id/pdf", measurementController.SlipPDF, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/customer-measurement/:id/qrcode", measurementController.CodeQR, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Post("/api/v1/customer-measurement/create", measurementController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Post("/api/v1/customer-measurement/:id/restore", measurementController.Restore, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Patch("/api/v1/customer-measurement/:id", measurementController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/customer-measurement/:id", measurementController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/customer-measurement/:id/force", measurementController.ForceDelete, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))

	return r.Run(r.port)
}

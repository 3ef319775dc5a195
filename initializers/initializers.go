package initializers

import (
	"context"
	"worktrack-backend/config"
	"worktrack-backend/fiberlog"
	approvalhandler "worktrack-backend/lib/approval"
	authhandler "worktrack-backend/lib/auth"
	departmenthandler "worktrack-backend/lib/department"
	employeehandler "worktrack-backend/lib/employee"
	xlsexport "worktrack-backend/lib/export/xls"
	jobhandler "worktrack-backend/lib/job"
	notificationhandler "worktrack-backend/lib/notification"
	roleshandler "worktrack-backend/lib/roles"
	connectionhub "worktrack-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	departmenthandler.NewHandler()
	roleshandler.NewHandler()
	xlsexport.NewHandler()
	jobhandler.NewHandler()
	approvalhandler.NewHandler()
	notificationhandler.NewHandler()
}

package container

import (
	"database/sql"

	auditLogRepo "assetdesk/internal/auditlog"
	"assetdesk/internal/catalog"
	"assetdesk/internal/issues"
	"assetdesk/internal/ledger"
	"assetdesk/internal/repository"
	"assetdesk/internal/requests"
	"assetdesk/internal/users"
	"assetdesk/pkg/auditlog"
	"assetdesk/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository     *repository.Repository
	AuditLog       *auditlog.Auditlog
	LoginHandler   *security.LoginHandler
	CatalogHandler *catalog.Handler
	RequestHandler *requests.Handler
	LedgerHandler  *ledger.Handler
	IssueHandler   *issues.Handler
	UserHandler    *users.UsersHandler
	AuditHandler   *auditLogRepo.Handler
}

func NewAppContainer(db *sql.DB, logger *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	auditRepo := auditLogRepo.NewRepository(repo)
	auditLog := auditlog.NewAuditLog(auditRepo)

	ledgerRepo := ledger.NewRepository(repo)
	catalogRepo := catalog.NewRepository(repo)
	requestRepo := requests.NewRepository(repo)
	issueRepo := issues.NewRepository(repo)
	userRepo := users.NewRepository(repo)

	catalogService := catalog.NewService(repo, catalogRepo, ledgerRepo, auditLog)
	fulfillmentService := requests.NewFulfillmentService(repo, requestRepo, ledgerRepo, catalogRepo, auditLog, logger)
	issueService := issues.NewService(issueRepo, ledgerRepo)

	return &Container{
		Repository:     repo,
		AuditLog:       auditLog,
		LoginHandler:   security.NewLoginHandler(repo),
		CatalogHandler: catalog.NewHandler(catalogService, catalogRepo),
		RequestHandler: requests.NewHandler(fulfillmentService, requestRepo),
		LedgerHandler:  ledger.NewHandler(ledgerRepo),
		IssueHandler:   issues.NewHandler(issueService, issueRepo),
		UserHandler:    users.NewHandler(userRepo),
		AuditHandler:   auditLogRepo.NewHandler(auditRepo),
	}
}

package services

import (
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(
		repos.CustomerRepo,
		WithOwnedAccountCache(repos.BankAccountRepo, repos.AccountCache),
	)

	container.BankAccount = NewBankAccountService(
		repos.BankAccountRepo,
		repos.CustomerRepo,
		WithAccountCache(repos.AccountCache),
	)

	container.Ledger = NewLedgerService(
		repos.BankAccountRepo,
		repos.OperationRepo,
		WithLedgerCache(repos.AccountCache),
	)

	container.Auth = NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CustomerSvcFacade    = (*customerService)(nil)
	_ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)
	_ portssvc.LedgerSvcFacade      = (*ledgerService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)

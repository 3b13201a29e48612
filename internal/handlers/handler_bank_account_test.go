package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) currentAccount() *domain.BankAccount {
	return &domain.BankAccount{
		ID:        "acc-1",
		Kind:      domain.CurrentAccountKind,
		Balance:   decimal.NewFromInt(1500),
		CreatedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Status:    domain.StatusCreated,
		Customer:  domain.Customer{ID: 1, Name: "Hassan", Email: "hassan@gmail.com"},
		OverDraft: decimal.NewFromInt(9000),
	}
}

func (suite *HandlerTestSuite) TestGetBankAccount() {
	suite.mockBankAccount.On("GetBankAccount", authedCtx, "acc-1").Return(suite.currentAccount(), nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-1", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal(dto.CurrentAccountType, body["type"])
	suite.Equal("acc-1", body["id"])
	suite.Contains(body, "overDraft")
	suite.NotContains(body, "interestRate")
	suite.Equal("Hassan", body["customerDTO"].(map[string]interface{})["name"])
}

func (suite *HandlerTestSuite) TestGetBankAccount_NotFound() {
	suite.mockBankAccount.On("GetBankAccount", authedCtx, "missing").Return(nil, apperrors.ErrAccountNotFound).Once()

	w := suite.do(http.MethodGet, "/accounts/missing", nil, suite.userToken)

	suite.Equal(http.StatusNotFound, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Equal("Bank account not found", body.Error)
}

func (suite *HandlerTestSuite) TestListBankAccounts() {
	suite.mockBankAccount.On("ListBankAccounts", authedCtx).Return([]domain.BankAccount{*suite.currentAccount()}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.BankAccountResponse
	suite.decode(w, &body)
	suite.Len(body, 1)
}

func (suite *HandlerTestSuite) TestAccountHistory() {
	suite.mockLedger.On("AccountHistory", authedCtx, "acc-1").Return([]domain.AccountOperation{
		{ID: 1, Type: domain.Credit, Amount: decimal.NewFromInt(100), BankAccountID: "acc-1"},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-1/operations", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.AccountOperationResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Equal(domain.Credit, body[0].Type)
}

func (suite *HandlerTestSuite) TestPageOperations_Defaults() {
	suite.mockLedger.On("GetAccountHistory", authedCtx, "acc-1", 0, 5).Return(&dto.AccountHistoryResponse{
		AccountID:             "acc-1",
		Balance:               decimal.NewFromInt(1500),
		PageSize:              5,
		TotalPage:             2,
		AccountOperationsDTOS: []dto.AccountOperationResponse{},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-1/pageOperations", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal("acc-1", body["accountId"])
	suite.EqualValues(2, body["totalPage"])
	suite.EqualValues(0, body["currentPage"])
	suite.Contains(body, "accountOperationsDTOS")
}

func (suite *HandlerTestSuite) TestPageOperations_QueryParams() {
	suite.mockLedger.On("GetAccountHistory", authedCtx, "acc-1", 2, 10).Return(&dto.AccountHistoryResponse{AccountID: "acc-1"}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-1/pageOperations?page=2&size=10", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestPageOperations_InvalidPage() {
	suite.mockLedger.On("GetAccountHistory", authedCtx, "acc-1", -1, 5).Return(nil, apperrors.NewValidationError("page must not be negative")).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-1/pageOperations?page=-1", nil, suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPageOperations_NonNumericSize() {
	w := suite.do(http.MethodGet, "/accounts/acc-1/pageOperations?size=big", nil, suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "GetAccountHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSaveOperation() {
	suite.mockLedger.On("SaveOperation", authedCtx, "acc-1", mock.MatchedBy(func(req dto.SaveOperationRequest) bool {
		return req.Type == domain.Debit && req.Amount.Equal(decimal.RequireFromString("12.5")) && req.Description == "coffee"
	})).Return(&domain.AccountOperation{ID: 8, Type: domain.Debit, Amount: decimal.RequireFromString("12.5"), Description: "coffee"}, nil).Once()

	w := suite.do(http.MethodPost, "/accounts/acc-1/operations", map[string]interface{}{
		"type": "DEBIT", "amount": 12.5, "description": "coffee",
	}, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountOperationResponse
	suite.decode(w, &body)
	suite.Equal(int64(8), body.ID)
}

func (suite *HandlerTestSuite) TestSaveOperation_UnknownType() {
	w := suite.do(http.MethodPost, "/accounts/acc-1/operations", map[string]interface{}{"type": "REFUND", "amount": 1}, suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Contains(body.Details, "Type")
}

func (suite *HandlerTestSuite) TestSaveOperation_NonPositiveAmount() {
	suite.mockLedger.On("SaveOperation", authedCtx, "acc-1", mock.AnythingOfType("dto.SaveOperationRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPost, "/accounts/acc-1/operations", map[string]interface{}{"type": "CREDIT", "amount": 0}, suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestTransfer() {
	suite.mockLedger.On("Transfer", authedCtx, "src", "dst", decEq("40"), "rent").Return([]domain.AccountOperation{
		{ID: 1, Type: domain.Debit, Amount: decimal.NewFromInt(40), BankAccountID: "src"},
		{ID: 2, Type: domain.Credit, Amount: decimal.NewFromInt(40), BankAccountID: "dst"},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/accounts/transfer", dto.TransferRequest{
		AccountSource: "src", AccountDestination: "dst", Amount: decimal.NewFromInt(40), Description: "rent",
	}, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransferResponse
	suite.decode(w, &body)
	suite.Equal(domain.Debit, body.Debit.Type)
	suite.Equal(int64(2), body.Credit.ID)
}

func (suite *HandlerTestSuite) TestTransfer_MissingDestination() {
	w := suite.do(http.MethodPost, "/accounts/transfer", map[string]interface{}{"accountSource": "src", "amount": 5}, suite.userToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateCurrentAccount() {
	suite.mockBankAccount.On("SaveCurrentBankAccount", authedCtx, decEq("1500"), decEq("9000"), int64(1)).
		Return(suite.currentAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/accounts/current", map[string]interface{}{
		"initialBalance": 1500, "overDraft": 9000, "customerId": 1,
	}, suite.adminToken)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCurrentAccount_RequiresAdmin() {
	w := suite.do(http.MethodPost, "/accounts/current", map[string]interface{}{"customerId": 1}, suite.userToken)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCreateSavingAccount_UnknownCustomer() {
	suite.mockBankAccount.On("SaveSavingBankAccount", authedCtx, decEq("100"), decEq("5.5"), int64(42)).
		Return(nil, apperrors.ErrCustomerNotFound).Once()

	w := suite.do(http.MethodPost, "/accounts/saving", map[string]interface{}{
		"initialBalance": 100, "interestRate": 5.5, "customerId": 42,
	}, suite.adminToken)

	suite.Equal(http.StatusNotFound, w.Code)
}

package handlers_test

import (
	"net/http"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListCustomers() {
	suite.mockCustomers.On("ListCustomers", authedCtx).Return([]domain.Customer{
		{ID: 1, Name: "Hassan", Email: "hassan@gmail.com"},
		{ID: 2, Name: "Imane", Email: "imane@gmail.com"},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/customers", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CustomerResponse
	suite.decode(w, &body)
	suite.Len(body, 2)
	suite.Equal("Imane", body[1].Name)
}

func (suite *HandlerTestSuite) TestSearchCustomers_WrapsKeyword() {
	suite.mockCustomers.On("SearchCustomers", authedCtx, "%ima%").Return([]domain.Customer{{ID: 2, Name: "Imane"}}, nil).Once()

	w := suite.do(http.MethodGet, "/customers/search?keyword=ima", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestSearchCustomers_EmptyKeywordMatchesAll() {
	suite.mockCustomers.On("SearchCustomers", authedCtx, "%%").Return([]domain.Customer{}, nil).Once()

	w := suite.do(http.MethodGet, "/customers/search", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCustomer() {
	suite.mockCustomers.On("GetCustomerByID", authedCtx, int64(1)).Return(&domain.Customer{ID: 1, Name: "Hassan", Email: "hassan@gmail.com"}, nil).Once()

	w := suite.do(http.MethodGet, "/customers/1", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"id":1,"name":"Hassan","email":"hassan@gmail.com"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCustomer_NotFound() {
	suite.mockCustomers.On("GetCustomerByID", authedCtx, int64(99)).Return(nil, apperrors.ErrCustomerNotFound).Once()

	w := suite.do(http.MethodGet, "/customers/99", nil, suite.userToken)

	suite.Equal(http.StatusNotFound, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Equal("Customer not found", body.Error)
}

func (suite *HandlerTestSuite) TestGetCustomer_InvalidID() {
	w := suite.do(http.MethodGet, "/customers/abc", nil, suite.userToken)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomers.AssertNotCalled(suite.T(), "GetCustomerByID", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListCustomerAccounts() {
	suite.mockBankAccount.On("ListCustomerAccounts", authedCtx, int64(1)).Return([]domain.BankAccount{
		{ID: "acc-1", Kind: domain.SavingAccountKind, Customer: domain.Customer{ID: 1}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/customers/1/accounts", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.BankAccountResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 1)
	suite.Equal(dto.SavingAccountType, body[0].Type)
}

func (suite *HandlerTestSuite) TestSaveCustomer_RequiresAdmin() {
	w := suite.do(http.MethodPost, "/customers", dto.CreateCustomerRequest{Name: "X", Email: "x@y.com"}, suite.userToken)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockCustomers.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSaveCustomer_Admin() {
	req := dto.CreateCustomerRequest{Name: "Mohamed", Email: "mohamed@gmail.com"}
	suite.mockCustomers.On("SaveCustomer", authedCtx, req).Return(&domain.Customer{ID: 3, Name: req.Name, Email: req.Email}, nil).Once()

	w := suite.do(http.MethodPost, "/customers", req, suite.adminToken)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CustomerResponse
	suite.decode(w, &body)
	suite.Equal(int64(3), body.ID)
}

func (suite *HandlerTestSuite) TestSaveCustomer_ValidationDetails() {
	w := suite.do(http.MethodPost, "/customers", map[string]string{"name": "Mohamed", "email": "nope"}, suite.adminToken)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Equal("Validation failed", body.Error)
	suite.Contains(body.Details, "Email")
}

func (suite *HandlerTestSuite) TestUpdateCustomer_PathIDWins() {
	req := dto.UpdateCustomerRequest{Name: "Imane B", Email: "imane@gmail.com"}
	suite.mockCustomers.On("UpdateCustomer", authedCtx, int64(2), req).Return(&domain.Customer{ID: 2, Name: req.Name, Email: req.Email}, nil).Once()

	w := suite.do(http.MethodPatch, "/customers/2", map[string]interface{}{"id": 77, "name": req.Name, "email": req.Email}, suite.adminToken)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CustomerResponse
	suite.decode(w, &body)
	suite.Equal(int64(2), body.ID)
}

func (suite *HandlerTestSuite) TestDeleteCustomer() {
	suite.mockCustomers.On("DeleteCustomer", authedCtx, int64(2)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/customers/2", nil, suite.adminToken)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlerTestSuite) TestDeleteCustomer_NotFound() {
	suite.mockCustomers.On("DeleteCustomer", authedCtx, int64(9)).Return(apperrors.ErrCustomerNotFound).Once()

	w := suite.do(http.MethodDelete, "/customers/9", nil, suite.adminToken)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListCustomers_ServerFaultHidesDetail() {
	suite.mockCustomers.On("ListCustomers", authedCtx).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/customers", nil, suite.userToken)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

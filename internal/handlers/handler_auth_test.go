package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestLogin() {
	req := dto.LoginRequest{Username: "admin", Password: "12345"}
	suite.mockAuth.On("Login", mock.Anything, req).Return(&dto.LoginResponse{AccessToken: "signed.jwt.token", ExpiresAt: time.Now()}, nil).Once()

	w := suite.do(http.MethodPost, "/auth/login", req, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"access-token":"signed.jwt.token"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestLogin_FormEncoded() {
	suite.mockAuth.On("Login", mock.Anything, dto.LoginRequest{Username: "user1", Password: "pw"}).
		Return(&dto.LoginResponse{AccessToken: "t"}, nil).Once()

	form := url.Values{"username": {"user1"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockAuth.On("Login", mock.Anything, mock.AnythingOfType("dto.LoginRequest")).Return(nil, apperrors.ErrAuthenticationFailed).Once()

	w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "wrong"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Contains(body.Error, "Bad credentials")
}

func (suite *HandlerTestSuite) TestLogin_MissingPassword() {
	w := suite.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	cfg := *suite.cfg
	cfg.LoginRateLimit = "1-M"
	router := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(router, &cfg, &portssvc.ServiceContainer{
		Customer:    suite.mockCustomers,
		BankAccount: suite.mockBankAccount,
		Ledger:      suite.mockLedger,
		Auth:        suite.mockAuth,
	}))
	suite.mockAuth.On("Login", mock.Anything, mock.AnythingOfType("dto.LoginRequest")).Return(nil, apperrors.ErrAuthenticationFailed).Once()

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"a","password":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	suite.Equal(http.StatusBadRequest, send())
	suite.Equal(http.StatusTooManyRequests, send())
}

func (suite *HandlerTestSuite) TestRegister() {
	req := dto.RegisterRequest{Username: "new@bank.com", Password: "pw"}
	suite.mockAuth.On("Register", mock.Anything, req).Return(&domain.User{ID: 4, Username: "new@bank.com", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodPost, "/auth/register", req, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"User created successfully","username":"new@bank.com","roles":["ROLE_USER"]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestRegister_Duplicate() {
	suite.mockAuth.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).Return(nil, apperrors.ErrDuplicateUser).Once()

	w := suite.do(http.MethodPost, "/auth/register", dto.RegisterRequest{Username: "admin", Password: "pw"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"User already exists"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestRegister_Unexpected() {
	suite.mockAuth.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "database down", nil)).Once()

	w := suite.do(http.MethodPost, "/auth/register", dto.RegisterRequest{Username: "x", Password: "pw"}, "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to register user"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestProfile() {
	suite.mockAuth.On("Profile", authedCtx, int64(2)).Return(&domain.User{ID: 2, Username: "user1", Email: "user1", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodGet, "/auth/profile", nil, suite.userToken)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ProfileResponse
	suite.decode(w, &body)
	suite.Equal(int64(2), body.UserID)
	suite.Equal("user1", body.Username)
	suite.Equal([]string{"ROLE_USER"}, body.Authorities)
	suite.False(body.ExpiresAt.IsZero())
}

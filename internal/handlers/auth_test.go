package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rampandiyar/Volunteer/internal/auth"
	"github.com/Rampandiyar/Volunteer/internal/constants"
	"github.com/Rampandiyar/Volunteer/internal/database"
	"github.com/Rampandiyar/Volunteer/internal/dto"
	"github.com/Rampandiyar/Volunteer/internal/middleware"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
	"github.com/Rampandiyar/Volunteer/internal/services"
)

const testJWTSecret = "test-secret"

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *AuthHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Assignment{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	userService := services.NewUserService(
		repository.NewUserRepository(suite.db),
		repository.NewAssignmentRepository(suite.db),
	)
	suite.handler = NewAuthHandler(userService, testJWTSecret)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	store := cookie.NewStore([]byte("test-session-key"))
	suite.router.Use(sessions.Sessions(constants.SessionCookieName, store))

	suite.router.POST("/api/auth/signup", suite.handler.Signup)
	suite.router.POST("/api/auth/login", suite.handler.Login)
	suite.router.POST("/api/auth/logout", suite.handler.Logout)
	suite.router.GET("/api/auth/me", middleware.RequireAuth(testJWTSecret), suite.handler.GetCurrentUser)
}

// TearDownTest runs after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthHandlerTestSuite) performJSON(method, url string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) createTestUser(username, password, role string) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		Role:     role,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *AuthHandlerTestSuite) TestSignup_Success() {
	w := suite.performJSON(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"username": "priya",
		"email":    "priya@example.com",
		"password": "Abcdefg1",
		"phone":    "1234567890",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var user dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	suite.Equal("priya", user.Username)
	suite.Equal(constants.DefaultRole, user.Role)

	// Password must never leak through the response
	suite.NotContains(w.Body.String(), "Abcdefg1")
	suite.NotContains(w.Body.String(), "password")

	var stored models.User
	suite.Require().NoError(suite.db.First(&stored, "username = ?", "priya").Error)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Abcdefg1")))
}

func (suite *AuthHandlerTestSuite) TestSignup_DuplicateUsername() {
	suite.createTestUser("priya", "Abcdefg1", "Volunteer")

	w := suite.performJSON(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"username": "priya",
		"email":    "other@example.com",
		"password": "Abcdefg1",
	}, nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestSignup_ShortPassword() {
	w := suite.performJSON(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"username": "priya",
		"email":    "priya@example.com",
		"password": "Abc1",
	}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_IssuesTokenAndUser() {
	created := suite.createTestUser("marco", "Abcdefg1", "Admin")

	w := suite.performJSON(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "marco",
		"password": "Abcdefg1",
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Token string      `json:"token"`
		User  dto.UserDTO `json:"user"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("marco", response.User.Username)
	suite.Equal("Admin", response.User.Role)

	userID, err := auth.ParseToken(response.Token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal(created.ID, userID)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.createTestUser("marco", "Abcdefg1", "Volunteer")

	w := suite.performJSON(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "marco",
		"password": "wrong-password",
	}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownUser() {
	w := suite.performJSON(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "nobody",
		"password": "Abcdefg1",
	}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestGetCurrentUser_WithBearerToken() {
	user := suite.createTestUser("dana", "Abcdefg1", "Volunteer")

	token, err := auth.GenerateToken(user.ID, testJWTSecret)
	suite.Require().NoError(err)

	w := suite.performJSON(http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var me dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &me))
	suite.Equal(user.ID, me.UserID)
}

func (suite *AuthHandlerTestSuite) TestGetCurrentUser_Unauthenticated() {
	w := suite.performJSON(http.MethodGet, "/api/auth/me", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

package controller

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"auth-service/internal/config/database"
	"auth-service/internal/config/env"
	"auth-service/internal/config/validation"
	"auth-service/internal/config/web"
	"auth-service/internal/middleware"
	"auth-service/internal/model"
	"auth-service/internal/repository"
	"auth-service/internal/service"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	model.PasswordCost = bcrypt.MinCost
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testEnvConfig(t *testing.T) *env.Config {
	cfg := &env.Config{}
	cfg.App.Name = "auth-test"
	cfg.JWT.Secret = "access_secret"
	cfg.JWT.AccessTokenExpiration = 60
	cfg.JWT.AccessCookieName = "access_token_cookie"
	cfg.JWT.CsrfCookieName = "csrf_access_token"
	cfg.JWT.CookieSameSite = "Lax"
	cfg.JWT.CsrfProtect = true
	cfg.Media.Root = t.TempDir()
	return cfg
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.RunMigrations(db, testLogger()))
	return db
}

type server struct {
	app *fiber.App
	db  *gorm.DB
	cfg *env.Config
}

// newServer wires the handlers the same way the application bootstrap does.
func newServer(t *testing.T) *server {
	t.Helper()
	cfg := testEnvConfig(t)
	db := newTestDB(t)
	log := testLogger()

	users := repository.NewUserRepository(db)
	roles := repository.NewRoleRepository(db)
	jwtService := service.NewJwtService(log, cfg)
	userService := service.NewUserService(users, service.NewRedisService(nil, log), cfg, log)
	authService := service.NewAuthService(repository.NewUnitOfWork(db), jwtService, users, roles, log)

	authController := NewAuthController(authService, jwtService, userService, cfg, log, validation.NewValidation())
	userController := NewUserController(userService, log)
	roleController := NewRoleController(service.NewRoleService(roles, log), log)
	mediaController := NewMediaController(cfg, log)
	healthController := NewHealthController(db, nil, log)
	auth := middleware.AuthMiddleware(jwtService, userService, cfg, log)

	app := web.NewFiber(log, cfg)
	app.Post("/login", authController.Login)
	app.Post("/signup", authController.Signup)
	app.Post("/logout", authController.Logout)
	app.Get("/me", auth, userController.Me)
	app.Get("/protected", auth, middleware.RoleRequired("ADMINISTRATOR"), userController.Protected)
	app.Get("/roles", auth, middleware.RoleRequired("ADMINISTRATOR"), roleController.List)
	app.Get("/media/*", mediaController.Serve)
	app.Get("/health", healthController.Check)

	for _, name := range []string{"GUEST", "ADMINISTRATOR"} {
		require.NoError(t, roles.Create(context.Background(), &model.Role{Name: name}))
	}
	return &server{app, db, cfg}
}

func (s *server) do(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *server) signup(t *testing.T, email, password string) {
	t.Helper()
	resp, _ := s.do(t, jsonRequest(http.MethodPost, "/signup", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// login returns the identity and CSRF cookies.
func (s *server) login(t *testing.T, email, password string) (*http.Cookie, *http.Cookie) {
	t.Helper()
	resp, _ := s.do(t, jsonRequest(http.MethodPost, "/login", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return findCookie(resp, "access_token_cookie"), findCookie(resp, "csrf_access_token")
}

func (s *server) grant(t *testing.T, email string, roleNames ...string) {
	t.Helper()
	ctx := context.Background()
	user, err := repository.NewUserRepository(s.db).FindByEmail(ctx, email)
	require.NoError(t, err)
	roles, err := repository.NewRoleRepository(s.db).FindByNames(ctx, roleNames...)
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(s.db).AssignRoles(ctx, user, roles...))
}

func writeMedia(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

package handler_test

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/tmplhub/tmplhub/internal/handler"
	"github.com/tmplhub/tmplhub/internal/middleware"
	"github.com/tmplhub/tmplhub/internal/repo"
	"github.com/tmplhub/tmplhub/internal/service"
	"github.com/tmplhub/tmplhub/test/testutil"
)

func setupRouter(t *testing.T, createRateLimit time.Duration) (http.Handler, *sql.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	templateService := service.NewTemplateService(repo.NewTemplateRepo(db))

	deps := handler.RouterDeps{
		Templates:       handler.NewTemplateHandler(templateService),
		Health:          handler.NewHealthHandler(templateService),
		CreateRateLimit: createRateLimit,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, db, cleanup
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/database"
	"github.com/opsboard/intranet-api/internal/dto"
	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
	"github.com/opsboard/intranet-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type credentialTestEnv struct {
	db      *gorm.DB
	handler *CredentialHandler
}

func setupCredentialTestEnv(t *testing.T) credentialTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Credential{})
	require.NoError(t, err)

	database.SetDB(db)

	credRepo := repository.NewCredentialRepository(db)
	credService := services.NewCredentialService(credRepo)
	handler := NewCredentialHandler(credService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return credentialTestEnv{db: db, handler: handler}
}

func TestCredentialHandler_CreateAndList(t *testing.T) {
	env := setupCredentialTestEnv(t)

	c, w := authContext(t, "POST", "/api/cred", map[string]any{
		"username":               "svc-backup",
		"password":               "hunter2",
		"type":                   "ssh",
		"additional_information": "backup server, rotate monthly",
	}, 1)
	env.handler.CreateCredential(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.CredentialDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	c, w = authContext(t, "GET", "/api/cred", nil, 1)
	env.handler.ListCredentials(c)

	require.Equal(t, http.StatusOK, w.Code)

	var listed []dto.CredentialDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "svc-backup", listed[0].Username)
	require.Equal(t, "hunter2", listed[0].Password)
}

func TestCredentialHandler_CreateMissingFields(t *testing.T) {
	env := setupCredentialTestEnv(t)

	c, w := authContext(t, "POST", "/api/cred", map[string]any{
		"username": "svc-backup",
	}, 1)
	env.handler.CreateCredential(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCredentialHandler_BulkDelete_Idempotent(t *testing.T) {
	env := setupCredentialTestEnv(t)

	first := models.Credential{Username: "a", Password: "a"}
	second := models.Credential{Username: "b", Password: "b"}
	require.NoError(t, env.db.Create(&first).Error)
	require.NoError(t, env.db.Create(&second).Error)

	payload := map[string]any{"ids": []uint64{first.ID, second.ID, 9999}}
	for i := 0; i < 2; i++ {
		c, w := authContext(t, "DELETE", "/api/cred", payload, 1)
		env.handler.DeleteCredentials(c)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	env.db.Model(&models.Credential{}).Count(&count)
	require.Zero(t, count)
}

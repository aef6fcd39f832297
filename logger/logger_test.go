package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupark12/job-dashboard/config"
)

func TestNew(t *testing.T) {
	log, cleanup, err := New(&config.Logger{Level: "debug", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, cleanup, err := New(&config.Logger{Level: "info", Output: "file", OutputFile: path})
	require.NoError(t, err)

	log.Info("hello")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, _, err := New(&config.Logger{Level: "loud"})
	assert.Error(t, err)

	_, _, err = New(&config.Logger{Level: "info", Format: "xml"})
	assert.Error(t, err)

	_, _, err = New(&config.Logger{Level: "info", Output: "printer"})
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	r := gin.New()
	r.Use(Middleware(log))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "/ok", hook.LastEntry().Data["path"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, http.StatusInternalServerError, hook.LastEntry().Data["status"])
}

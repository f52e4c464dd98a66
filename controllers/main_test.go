package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"courseadmin/config"
	"courseadmin/routes"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	app *fiber.App
	db  *gorm.DB
)

func TestMain(m *testing.M) {
	setup()
	os.Exit(m.Run())
}

func setup() {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		DBName:     "file::memory:?cache=shared",
		ServerPort: "8080",
		APIBaseURL: "http://localhost:8080",
	}

	var err error
	db, err = utils.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg, utils.InitLogger())
}

// doJSON runs a request with a JSON body against the test app and decodes
// the JSON response into a generic map.
func doJSON(t *testing.T, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var result map[string]interface{}
	data, _ := io.ReadAll(resp.Body)
	if len(data) > 0 {
		json.Unmarshal(data, &result)
	}
	return resp, result
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, method, path string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var result []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

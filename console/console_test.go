package console_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"courseadmin/client"
	"courseadmin/console"
	"courseadmin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newConsoleApp(apiURL string) *fiber.App {
	logger := log.New(io.Discard, "", 0)
	app := fiber.New()
	console.New(client.New(apiURL, logger), logger).Register(app)
	return app
}

func getBody(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	assert.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestCourseListPage(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Course{
			{ID: "c1", Title: "Botany Basics", Category: "Biology"},
			{ID: "c2", Title: "Algebra", Category: "Math"},
		})
	}))
	defer stub.Close()

	app := newConsoleApp(stub.URL)

	status, body := getBody(t, app, "/admin")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Botany Basics")
	assert.Contains(t, body, "Algebra")

	// Search narrows the listing without another shape of fetch
	status, body = getBody(t, app, "/admin?q=botany")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Botany Basics")
	assert.NotContains(t, body, "Algebra")

	// Table view renders the same data
	status, body = getBody(t, app, "/admin?view=table")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<table>")
	assert.Contains(t, body, "Algebra")
}

func TestCourseListPageShowsLoadError(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	stub.Close() // API is down

	app := newConsoleApp(stub.URL)
	status, body := getBody(t, app, "/admin")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Could not load courses")
}

// stubContentAPI serves one course with sections for editor page tests.
func stubContentAPI(sections []models.Section) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Course{ID: "c1", Title: "Botany Basics"})
	})
	mux.HandleFunc("GET /api/sections/course/c1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sections)
	})
	return httptest.NewServer(mux)
}

func TestEditorPageRendersSectionsInOrder(t *testing.T) {
	stub := stubContentAPI([]models.Section{
		{ID: "s2", CourseID: "c1", Title: "Leaves", Order: 2},
		{ID: "s1", CourseID: "c1", Title: "Roots", Order: 1},
	})
	defer stub.Close()

	app := newConsoleApp(stub.URL)
	status, body := getBody(t, app, "/admin/courses/c1")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Less(t, strings.Index(body, "Roots"), strings.Index(body, "Leaves"))
}

func TestEditorPageMarksCorrectOption(t *testing.T) {
	stub := stubContentAPI([]models.Section{{
		ID: "s1", CourseID: "c1", Title: "Quiz", Order: 1,
		Activities: []models.Activity{{
			ID:            "a1",
			Type:          models.ActivityMultipleChoice,
			Question:      "Pick one",
			Options:       []string{"stem", "leaf", "root"},
			CorrectAnswer: float64(2),
		}},
	}})
	defer stub.Close()

	app := newConsoleApp(stub.URL)
	status, body := getBody(t, app, "/admin/courses/c1")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, strings.Count(body, "&#10003;"))
	assert.Contains(t, body, "&#10003; root")
}

func TestSaveSectionCreateGeneratesID(t *testing.T) {
	var received models.CreateSectionInput
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sections", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusCreated, models.Section{ID: received.ID})
	})
	stub := httptest.NewServer(mux)
	defer stub.Close()

	app := newConsoleApp(stub.URL)
	resp := postForm(t, app, "/admin/courses/c1/sections", url.Values{
		"title": {"Roots"},
		"order": {"1"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/courses/c1", resp.Header.Get("Location"))
	assert.NotEmpty(t, received.ID)
	assert.Equal(t, "c1", received.CourseID)
	assert.Equal(t, "Roots", received.Title)
}

func TestSaveSectionEditUpdatesExisting(t *testing.T) {
	var updatedID string
	var received models.CreateSectionInput
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/sections/{id}", func(w http.ResponseWriter, r *http.Request) {
		updatedID = r.PathValue("id")
		json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusOK, models.Section{ID: updatedID})
	})
	stub := httptest.NewServer(mux)
	defer stub.Close()

	app := newConsoleApp(stub.URL)
	resp := postForm(t, app, "/admin/courses/c1/sections", url.Values{
		"id":    {"s1"},
		"title": {"Roots, revised"},
		"order": {"3"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "s1", updatedID)
	assert.Equal(t, 3, received.Order)
}

func TestSaveActivityBuildsTypedPayload(t *testing.T) {
	var received models.CreateActivityInput
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/activities", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusCreated, models.Activity{ID: received.ID})
	})
	stub := httptest.NewServer(mux)
	defer stub.Close()

	app := newConsoleApp(stub.URL)
	resp := postForm(t, app, "/admin/courses/c1/sections/s1/activities", url.Values{
		"type":         {"multiple_choice"},
		"question":     {"Pick one"},
		"options":      {"stem\nleaf\n\nroot"},
		"correctIndex": {"2"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.NotEmpty(t, received.ID)
	assert.Equal(t, "s1", received.SectionID)
	assert.Equal(t, []string{"stem", "leaf", "root"}, received.Options)
	assert.Equal(t, float64(2), received.CorrectAnswer)
}

func TestDeleteSectionRequiresConfirmation(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/sections/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})
	stub := httptest.NewServer(mux)
	defer stub.Close()

	app := newConsoleApp(stub.URL)

	// Without confirmation nothing is deleted
	resp := postForm(t, app, "/admin/courses/c1/sections/s1/delete", url.Values{})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.False(t, deleted)

	resp = postForm(t, app, "/admin/courses/c1/sections/s1/delete", url.Values{
		"confirm": {"yes"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.True(t, deleted)
}

package client_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"courseadmin/client"
	"courseadmin/models"

	"github.com/stretchr/testify/assert"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestListCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/courses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Course{
			{ID: "c1", Title: "Intro", Difficulty: "beginner"},
			{ID: "c2", Title: "Deep dive", Difficulty: "advanced"},
		})
	}))
	defer server.Close()

	api := client.New(server.URL, testLogger())
	courses, err := api.ListCourses()
	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, "Intro", courses[0].Title)
}

func TestGetCoursePropagatesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Course not found"})
	}))
	defer server.Close()

	api := client.New(server.URL, testLogger())
	course, err := api.GetCourse("missing")
	assert.Nil(t, course)
	assert.ErrorContains(t, err, "Course not found")
}

func TestCreateSectionSendsPayload(t *testing.T) {
	var received models.CreateSectionInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/sections", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Section{ID: received.ID, CourseID: received.CourseID, Title: received.Title, Order: received.Order})
	}))
	defer server.Close()

	api := client.New(server.URL, testLogger())
	section, err := api.CreateSection(models.CreateSectionInput{
		ID:       "s1",
		CourseID: "c1",
		Title:    "First",
		Order:    1,
	})
	assert.NoError(t, err)
	assert.Equal(t, "s1", received.ID)
	assert.Equal(t, "c1", received.CourseID)
	assert.Equal(t, "First", section.Title)
}

func TestDeleteSection(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/sections/s1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	api := client.New(server.URL, testLogger())
	assert.NoError(t, api.DeleteSection("s1"))
	assert.True(t, called)
}

func TestTransportFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nobody listening anymore

	api := client.New(server.URL, testLogger())
	_, err := api.ListCourses()
	assert.Error(t, err)
}

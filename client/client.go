// Package client is a thin HTTP wrapper over the course admin REST API.
// Every method performs exactly one request against the configured base URL
// and either returns the decoded body or propagates the failure after
// logging it. There are no retries and no backoff.
package client

import (
	"fmt"
	"log"

	"courseadmin/models"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
	log  *log.Logger
}

func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
		log:  logger,
	}
}

// apiError mirrors the error body the API sends on non-2xx responses.
type apiError struct {
	Error string `json:"error"`
}

// checkResponse folds transport failures and non-2xx statuses into a single
// error to hand back to the caller.
func (c *Client) checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.log.Printf("%s: request failed: %v", op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != "" {
			msg = apiErr.Error
		}
		c.log.Printf("%s: API returned %d: %s", op, resp.StatusCode(), msg)
		return fmt.Errorf("%s: %s", op, msg)
	}
	return nil
}

func (c *Client) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	resp, err := c.http.R().
		SetResult(&courses).
		SetError(&apiError{}).
		Get("/api/courses")
	if err := c.checkResponse("list courses", resp, err); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	resp, err := c.http.R().
		SetResult(&course).
		SetError(&apiError{}).
		Get("/api/courses/" + id)
	if err := c.checkResponse("get course", resp, err); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) CreateCourse(input models.CreateCourseInput) (*models.Course, error) {
	var course models.Course
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&course).
		SetError(&apiError{}).
		Post("/api/courses")
	if err := c.checkResponse("create course", resp, err); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) UpdateCourse(id string, input models.UpdateCourseInput) (*models.Course, error) {
	var course models.Course
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&course).
		SetError(&apiError{}).
		Put("/api/courses/" + id)
	if err := c.checkResponse("update course", resp, err); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) DeleteCourse(id string) error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Delete("/api/courses/" + id)
	return c.checkResponse("delete course", resp, err)
}

// ListSections returns a course's sections with nested activities.
func (c *Client) ListSections(courseID string) ([]models.Section, error) {
	var sections []models.Section
	resp, err := c.http.R().
		SetResult(&sections).
		SetError(&apiError{}).
		Get("/api/sections/course/" + courseID)
	if err := c.checkResponse("list sections", resp, err); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) CreateSection(input models.CreateSectionInput) (*models.Section, error) {
	var section models.Section
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&section).
		SetError(&apiError{}).
		Post("/api/sections")
	if err := c.checkResponse("create section", resp, err); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) UpdateSection(id string, input models.CreateSectionInput) (*models.Section, error) {
	var section models.Section
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&section).
		SetError(&apiError{}).
		Put("/api/sections/" + id)
	if err := c.checkResponse("update section", resp, err); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) DeleteSection(id string) error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Delete("/api/sections/" + id)
	return c.checkResponse("delete section", resp, err)
}

func (c *Client) CreateActivity(input models.CreateActivityInput) (*models.Activity, error) {
	var activity models.Activity
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&activity).
		SetError(&apiError{}).
		Post("/api/activities")
	if err := c.checkResponse("create activity", resp, err); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (c *Client) DeleteActivity(id string) error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Delete("/api/activities/" + id)
	return c.checkResponse("delete activity", resp, err)
}

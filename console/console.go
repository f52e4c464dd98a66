// Package console is the server-rendered admin UI for course content. It
// holds no state of its own: every page load fetches fresh data through the
// API client, and every mutation redirects back to a page that refetches.
package console

import (
	"bytes"
	"html/template"
	"log"
	"strconv"
	"strings"

	"courseadmin/client"
	"courseadmin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Console struct {
	api *client.Client
	log *log.Logger
}

func New(api *client.Client, logger *log.Logger) *Console {
	return &Console{api: api, log: logger}
}

// Register mounts the console routes on the app.
func (con *Console) Register(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Get("/", con.listCourses)
	admin.Get("/courses/new", con.newCourseForm)
	admin.Post("/courses", con.createCourse)
	admin.Post("/courses/:id/delete", con.deleteCourse)
	admin.Get("/courses/:id", con.courseEditor)
	admin.Get("/courses/:id/sections/new", con.newSectionForm)
	admin.Get("/courses/:id/sections/:sectionId/edit", con.editSectionForm)
	admin.Post("/courses/:id/sections", con.saveSection)
	admin.Post("/courses/:id/sections/:sectionId/delete", con.deleteSection)
	admin.Get("/courses/:id/sections/:sectionId/activities/new", con.newActivityForm)
	admin.Post("/courses/:id/sections/:sectionId/activities", con.saveActivity)
	admin.Post("/courses/:id/activities/:activityId/delete", con.deleteActivity)
}

func render(c *fiber.Ctx, tmpl *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func redirect(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusSeeOther)
}

type coursesPageData struct {
	Query   string
	Sort    string
	View    string
	Created bool
	Error   string
	Courses []models.Course
}

func (con *Console) listCourses(c *fiber.Ctx) error {
	data := coursesPageData{
		Query:   c.Query("q"),
		Sort:    c.Query("sort", SortRecent),
		View:    c.Query("view", "cards"),
		Created: c.Query("created") == "1",
	}

	courses, err := con.api.ListCourses()
	if err != nil {
		// Load failures are always visible, list and detail alike.
		data.Error = "Could not load courses"
		return render(c, coursesTmpl, data)
	}

	courses = FilterCourses(courses, data.Query)
	SortCourses(courses, data.Sort)
	data.Courses = courses

	return render(c, coursesTmpl, data)
}

type courseFormData struct {
	Error string
	Form  models.CreateCourseInput
	Tags  string
}

func (con *Console) newCourseForm(c *fiber.Ctx) error {
	return render(c, courseFormTmpl, courseFormData{})
}

func (con *Console) createCourse(c *fiber.Ctx) error {
	threshold, _ := strconv.Atoi(c.FormValue("passingThreshold"))

	input := models.CreateCourseInput{
		ID:               strings.TrimSpace(c.FormValue("id")),
		Title:            c.FormValue("title"),
		Description:      c.FormValue("description"),
		ShortDescription: c.FormValue("shortDescription"),
		ImageURL:         c.FormValue("imageUrl"),
		Category:         c.FormValue("category"),
		Tags:             SplitTags(c.FormValue("tags")),
		Difficulty:       c.FormValue("difficulty"),
		EstimatedTime:    c.FormValue("estimatedTime"),
		PassingThreshold: threshold,
	}

	if _, err := con.api.CreateCourse(input); err != nil {
		con.log.Printf("create course: %v", err)
		return render(c, courseFormTmpl, courseFormData{
			Error: "Could not create course: " + err.Error(),
			Form:  input,
			Tags:  c.FormValue("tags"),
		})
	}

	return redirect(c, "/admin?created=1")
}

func (con *Console) deleteCourse(c *fiber.Ctx) error {
	if c.FormValue("confirm") != "yes" {
		return redirect(c, "/admin")
	}
	if err := con.api.DeleteCourse(c.Params("id")); err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not delete course: " + err.Error()})
	}
	return redirect(c, "/admin")
}

type editorPageData struct {
	Course models.Course
	Cards  []SectionCard
	Error  string
}

func (con *Console) courseEditor(c *fiber.Ctx) error {
	course, err := con.api.GetCourse(c.Params("id"))
	if err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not load course: " + err.Error()})
	}

	data := editorPageData{Course: *course}

	editor := NewSectionEditor(course.ID)
	if err := editor.Load(con.api); err != nil {
		data.Error = "Could not load sections"
		return render(c, editorTmpl, data)
	}

	data.Cards = BuildSectionCards(editor.Sections)
	return render(c, editorTmpl, data)
}

type sectionFormData struct {
	Course  models.Course
	Editing bool
	Error   string
	Form    models.CreateSectionInput
}

func (con *Console) newSectionForm(c *fiber.Ctx) error {
	course, err := con.api.GetCourse(c.Params("id"))
	if err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not load course: " + err.Error()})
	}

	editor := NewSectionEditor(course.ID)
	if err := editor.Load(con.api); err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not load sections"})
	}

	return render(c, sectionFormTmpl, sectionFormData{
		Course: *course,
		Form: models.CreateSectionInput{
			CourseID: course.ID,
			Order:    editor.NextOrder(),
		},
	})
}

func (con *Console) editSectionForm(c *fiber.Ctx) error {
	course, err := con.api.GetCourse(c.Params("id"))
	if err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not load course: " + err.Error()})
	}

	editor := NewSectionEditor(course.ID)
	if err := editor.Load(con.api); err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not load sections"})
	}

	section, ok := editor.SectionByID(c.Params("sectionId"))
	if !ok {
		return render(c, errorTmpl, errorPageData{Error: "Section not found"})
	}

	return render(c, sectionFormTmpl, sectionFormData{
		Course:  *course,
		Editing: true,
		Form: models.CreateSectionInput{
			ID:           section.ID,
			CourseID:     section.CourseID,
			Title:        section.Title,
			VideoURL:     section.VideoURL,
			ThumbnailURL: section.ThumbnailURL,
			Duration:     section.Duration,
			Order:        section.Order,
		},
	})
}

// saveSection creates or fully replaces a section depending on whether the
// form carried an id, then sends the browser back to the reloaded editor.
func (con *Console) saveSection(c *fiber.Ctx) error {
	courseID := c.Params("id")
	order, _ := strconv.Atoi(c.FormValue("order"))

	input := models.CreateSectionInput{
		ID:           strings.TrimSpace(c.FormValue("id")),
		CourseID:     courseID,
		Title:        c.FormValue("title"),
		VideoURL:     c.FormValue("videoUrl"),
		ThumbnailURL: c.FormValue("thumbnailUrl"),
		Duration:     c.FormValue("duration"),
		Order:        order,
	}

	var err error
	if input.ID != "" {
		_, err = con.api.UpdateSection(input.ID, input)
	} else {
		input.ID = uuid.NewString()
		_, err = con.api.CreateSection(input)
	}
	if err != nil {
		course, cerr := con.api.GetCourse(courseID)
		if cerr != nil {
			return render(c, errorTmpl, errorPageData{Error: "Could not save section: " + err.Error()})
		}
		return render(c, sectionFormTmpl, sectionFormData{
			Course:  *course,
			Editing: c.FormValue("id") != "",
			Error:   "Could not save section: " + err.Error(),
			Form:    input,
		})
	}

	return redirect(c, "/admin/courses/"+courseID)
}

func (con *Console) deleteSection(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if c.FormValue("confirm") != "yes" {
		return redirect(c, "/admin/courses/"+courseID)
	}
	if err := con.api.DeleteSection(c.Params("sectionId")); err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not delete section: " + err.Error()})
	}
	return redirect(c, "/admin/courses/"+courseID)
}

type activityFormData struct {
	Course    models.Course
	SectionID string
	Type      string
	Error     string
	Form      ActivityForm
}

func (con *Console) newActivityForm(c *fiber.Ctx) error {
	course, err := con.api.GetCourse(c.Params("id"))
	if err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not load course: " + err.Error()})
	}

	return render(c, activityFormTmpl, activityFormData{
		Course:    *course,
		SectionID: c.Params("sectionId"),
		Type:      c.Query("type"),
	})
}

// saveActivity always creates; there is no activity update path.
func (con *Console) saveActivity(c *fiber.Ctx) error {
	courseID := c.Params("id")
	sectionID := c.Params("sectionId")

	form := ActivityForm{
		Type:           c.FormValue("type"),
		PauseTimestamp: c.FormValue("pauseTimestamp"),
		Question:       c.FormValue("question"),
		CorrectBool:    c.FormValue("correctBool"),
		Options:        c.FormValue("options"),
		CorrectIndex:   c.FormValue("correctIndex"),
		Pages:          c.FormValue("pages"),
	}

	input, err := BuildActivityInput(sectionID, form)
	if err == nil {
		input.ID = uuid.NewString()
		_, err = con.api.CreateActivity(input)
	}
	if err != nil {
		con.log.Printf("save activity for section %s: %v", sectionID, err)
		course, cerr := con.api.GetCourse(courseID)
		if cerr != nil {
			return render(c, errorTmpl, errorPageData{Error: "Could not save activity: " + err.Error()})
		}
		return render(c, activityFormTmpl, activityFormData{
			Course:    *course,
			SectionID: sectionID,
			Type:      form.Type,
			Error:     "Could not save activity: " + err.Error(),
			Form:      form,
		})
	}

	return redirect(c, "/admin/courses/"+courseID)
}

func (con *Console) deleteActivity(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if err := con.api.DeleteActivity(c.Params("activityId")); err != nil {
		return render(c, errorTmpl, errorPageData{Error: "Could not delete activity: " + err.Error()})
	}
	return redirect(c, "/admin/courses/"+courseID)
}

type errorPageData struct {
	Error string
}

// SplitTags splits a comma separated tag list, dropping blanks.
func SplitTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

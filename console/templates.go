package console

import "html/template"

func mustPage(content string) *template.Template {
	return template.Must(template.New("page").Parse(layoutTemplate + content))
}

var (
	coursesTmpl      = mustPage(coursesTemplate)
	courseFormTmpl   = mustPage(courseFormTemplate)
	editorTmpl       = mustPage(editorTemplate)
	sectionFormTmpl  = mustPage(sectionFormTemplate)
	activityFormTmpl = mustPage(activityFormTemplate)
	errorTmpl        = mustPage(errorTemplate)
)

const layoutTemplate = `{{define "page"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Course Admin</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
.card { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin: 0.5rem 0; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 0.5rem; }
.badge { background: #eef; border-radius: 4px; padding: 0 0.4rem; font-size: 0.85em; }
.error { background: #fee; border: 1px solid #c00; padding: 0.5rem 1rem; margin: 1rem 0; }
.notice { background: #efe; border: 1px solid #0a0; padding: 0.5rem 1rem; margin: 1rem 0; }
.muted { color: #777; font-size: 0.9em; }
table { border-collapse: collapse; } td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
form.inline { display: inline; }
label { display: block; margin-top: 0.6rem; }
</style>
</head>
<body>
{{template "content" .}}
</body>
</html>{{end}}`

const coursesTemplate = `{{define "content"}}
<h1>Courses</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
{{if .Created}}<div class="notice">Course created</div>{{end}}
<form method="get" action="/admin">
  <input type="text" name="q" value="{{.Query}}" placeholder="Search courses">
  <select name="sort">
    <option value="recent" {{if eq .Sort "recent"}}selected{{end}}>Newest first</option>
    <option value="oldest" {{if eq .Sort "oldest"}}selected{{end}}>Oldest first</option>
    <option value="name" {{if eq .Sort "name"}}selected{{end}}>Name</option>
    <option value="category" {{if eq .Sort "category"}}selected{{end}}>Category</option>
  </select>
  <input type="hidden" name="view" value="{{.View}}">
  <button type="submit">Apply</button>
</form>
<p>
  <a href="/admin?q={{.Query}}&sort={{.Sort}}&view=cards">Cards</a> |
  <a href="/admin?q={{.Query}}&sort={{.Sort}}&view=table">Table</a> |
  <a href="/admin/courses/new">New course</a>
</p>
{{if eq .View "table"}}
<table>
  <tr><th>Title</th><th>Category</th><th>Difficulty</th><th>Threshold</th><th></th></tr>
  {{range .Courses}}
  <tr>
    <td><a href="/admin/courses/{{.ID}}">{{.Title}}</a></td>
    <td>{{.Category}}</td>
    <td><span class="badge">{{.Difficulty}}</span></td>
    <td>{{.PassingThreshold}}%</td>
    <td>
      <form class="inline" method="post" action="/admin/courses/{{.ID}}/delete"
            onsubmit="return confirm('Delete this course?');">
        <input type="hidden" name="confirm" value="yes">
        <button type="submit">Delete</button>
      </form>
    </td>
  </tr>
  {{end}}
</table>
{{else}}
<div class="cards">
  {{range .Courses}}
  <div class="card">
    <h3><a href="/admin/courses/{{.ID}}">{{.Title}}</a></h3>
    <p><span class="badge">{{.Difficulty}}</span> {{.PassingThreshold}}%</p>
    <p class="muted">{{.ShortDescription}}</p>
    <p class="muted">{{.Category}}{{range .Tags}} · {{.}}{{end}}</p>
    <form class="inline" method="post" action="/admin/courses/{{.ID}}/delete"
          onsubmit="return confirm('Delete this course?');">
      <input type="hidden" name="confirm" value="yes">
      <button type="submit">Delete</button>
    </form>
  </div>
  {{end}}
</div>
{{end}}
{{if not .Courses}}<p class="muted">No courses match.</p>{{end}}
{{end}}`

const courseFormTemplate = `{{define "content"}}
<h1>New course</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<form method="post" action="/admin/courses">
  <label>ID (optional) <input type="text" name="id" value="{{.Form.ID}}"></label>
  <label>Title <input type="text" name="title" value="{{.Form.Title}}" required></label>
  <label>Short description <input type="text" name="shortDescription" value="{{.Form.ShortDescription}}"></label>
  <label>Description <textarea name="description">{{.Form.Description}}</textarea></label>
  <label>Image URL <input type="text" name="imageUrl" value="{{.Form.ImageURL}}"></label>
  <label>Category <input type="text" name="category" value="{{.Form.Category}}"></label>
  <label>Tags (comma separated) <input type="text" name="tags" value="{{.Tags}}"></label>
  <label>Difficulty
    <select name="difficulty">
      <option value="beginner">beginner</option>
      <option value="intermediate">intermediate</option>
      <option value="advanced">advanced</option>
    </select>
  </label>
  <label>Estimated time <input type="text" name="estimatedTime" value="{{.Form.EstimatedTime}}"></label>
  <label>Passing threshold (%) <input type="number" name="passingThreshold" value="{{.Form.PassingThreshold}}" min="0" max="100"></label>
  <p><button type="submit">Create</button> <a href="/admin">Cancel</a></p>
</form>
{{end}}`

const editorTemplate = `{{define "content"}}
<h1>{{.Course.Title}}</h1>
<p class="muted"><a href="/admin">&larr; All courses</a></p>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<p><a href="/admin/courses/{{.Course.ID}}/sections/new">Add section</a></p>
{{range .Cards}}
<div class="card">
  <h3>{{.Section.Order}}. {{.Section.Title}}</h3>
  {{if .Section.VideoURL}}<p class="muted">Video: {{.Section.VideoURL}}</p>{{end}}
  <ul>
    {{range .Activities}}
    <li>
      <span class="badge">{{.Type}}</span>
      {{if .Question}}{{.Question}}{{end}}
      {{if .PauseTimestamp}}<span class="muted">pause at {{.PauseTimestamp}}s</span>{{end}}
      {{if .Options}}
      <ul>
        {{range .Options}}<li>{{if .Correct}}&#10003; {{end}}{{.Text}}</li>{{end}}
      </ul>
      {{end}}
      {{if .CorrectBool}}<span class="muted">answer: {{.CorrectBool}}</span>{{end}}
      {{if .Pages}}<span class="muted">{{len .Pages}} page(s)</span>{{end}}
      <form class="inline" method="post"
            action="/admin/courses/{{$.Course.ID}}/activities/{{.ID}}/delete"
            onsubmit="return confirm('Delete this activity?');">
        <button type="submit">Delete</button>
      </form>
    </li>
    {{end}}
  </ul>
  <p>
    <a href="/admin/courses/{{$.Course.ID}}/sections/{{.Section.ID}}/edit">Edit</a> |
    <a href="/admin/courses/{{$.Course.ID}}/sections/{{.Section.ID}}/activities/new">Add activity</a>
    <form class="inline" method="post"
          action="/admin/courses/{{$.Course.ID}}/sections/{{.Section.ID}}/delete"
          onsubmit="return confirm('Delete this section and all of its activities?');">
      <input type="hidden" name="confirm" value="yes">
      <button type="submit">Delete section</button>
    </form>
  </p>
</div>
{{else}}
<p class="muted">No sections yet.</p>
{{end}}
{{end}}`

const sectionFormTemplate = `{{define "content"}}
<h1>{{if .Editing}}Edit section{{else}}New section{{end}}</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<form method="post" action="/admin/courses/{{.Course.ID}}/sections">
  <input type="hidden" name="id" value="{{.Form.ID}}">
  <label>Title <input type="text" name="title" value="{{.Form.Title}}" required></label>
  <label>Video URL <input type="text" name="videoUrl" value="{{.Form.VideoURL}}"></label>
  <label>Thumbnail URL <input type="text" name="thumbnailUrl" value="{{.Form.ThumbnailURL}}"></label>
  <label>Duration <input type="text" name="duration" value="{{.Form.Duration}}"></label>
  <label>Order <input type="number" name="order" value="{{.Form.Order}}" min="1"></label>
  <p><button type="submit">Save</button> <a href="/admin/courses/{{.Course.ID}}">Cancel</a></p>
</form>
{{end}}`

const activityFormTemplate = `{{define "content"}}
<h1>New activity</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<form method="get" action="/admin/courses/{{.Course.ID}}/sections/{{.SectionID}}/activities/new">
  <label>Type
    <select name="type" onchange="this.form.submit()">
      <option value="" {{if eq .Type ""}}selected{{end}}>choose...</option>
      <option value="video_pause" {{if eq .Type "video_pause"}}selected{{end}}>video_pause</option>
      <option value="true_false" {{if eq .Type "true_false"}}selected{{end}}>true_false</option>
      <option value="multiple_choice" {{if eq .Type "multiple_choice"}}selected{{end}}>multiple_choice</option>
      <option value="text_reading" {{if eq .Type "text_reading"}}selected{{end}}>text_reading</option>
    </select>
  </label>
</form>
{{if .Type}}
<form method="post" action="/admin/courses/{{.Course.ID}}/sections/{{.SectionID}}/activities">
  <input type="hidden" name="type" value="{{.Type}}">
  {{if eq .Type "video_pause"}}
  <label>Pause timestamp (seconds) <input type="text" name="pauseTimestamp" value="{{.Form.PauseTimestamp}}"></label>
  {{end}}
  {{if eq .Type "true_false"}}
  <label>Question <input type="text" name="question" value="{{.Form.Question}}"></label>
  <label>Correct answer
    <select name="correctBool">
      <option value="true">true</option>
      <option value="false">false</option>
    </select>
  </label>
  {{end}}
  {{if eq .Type "multiple_choice"}}
  <label>Question <input type="text" name="question" value="{{.Form.Question}}"></label>
  <label>Options (one per line) <textarea name="options">{{.Form.Options}}</textarea></label>
  <label>Correct option index (zero-based) <input type="number" name="correctIndex" value="{{.Form.CorrectIndex}}" min="0"></label>
  {{end}}
  {{if eq .Type "text_reading"}}
  <label>Pages (one per line) <textarea name="pages">{{.Form.Pages}}</textarea></label>
  {{end}}
  <p><button type="submit">Save</button> <a href="/admin/courses/{{.Course.ID}}">Cancel</a></p>
</form>
{{end}}
{{end}}`

const errorTemplate = `{{define "content"}}
<h1>Something went wrong</h1>
<div class="error">{{.Error}}</div>
<p><a href="/admin">Back to courses</a></p>
{{end}}`

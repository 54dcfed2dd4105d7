package handlers

import "html/template"

// Views are deliberately thin; the interesting surface is the routing and
// the redirects, not the markup.
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "home"}}<!doctype html>
<html><body>
<h1>Coursetrack</h1>
{{if .User}}<p>Signed in as {{.User.DisplayName}} · <a href="/auth/logout">Log out</a></p>
{{else}}<p><a href="/auth/google">Sign in with Google</a> · <a href="/auth/github">Sign in with GitHub</a></p>{{end}}
<p><a href="/assignments">View assignments</a></p>
</body></html>{{end}}

{{define "list"}}<!doctype html>
<html><body>
<h1>Assignments</h1>
{{if .User}}<p><a href="/assignments/add">Add assignment</a></p>{{end}}
<table>
<tr><th>Course</th><th>Title</th><th>Due</th><th>Status</th><th>Priority</th><th>Created by</th></tr>
{{range .Assignments}}<tr>
<td>{{.CourseName}}</td><td>{{.Title}}</td><td>{{.DueDate.Format "2006-01-02"}}</td>
<td>{{.Status}}</td><td>{{.Priority}}</td><td>{{.CreatedBy}}</td>
{{if $.User}}<td><a href="/assignments/edit/{{.ID.Hex}}">Edit</a>
<form method="post" action="/assignments/delete/{{.ID.Hex}}"><button type="submit">Delete</button></form></td>{{end}}
</tr>{{end}}
</table>
<p><a href="/assignments/export">Export spreadsheet</a></p>
</body></html>{{end}}

{{define "add"}}<!doctype html>
<html><body>
<h1>Add assignment</h1>
<form method="post" action="/assignments/add">
<input name="courseName" placeholder="Course"><input name="title" placeholder="Title">
<input name="dueDate" type="date">
<select name="status"><option>Not Started</option><option>In Progress</option><option>Completed</option></select>
<select name="priority"><option>Low</option><option selected>Medium</option><option>High</option></select>
<textarea name="description"></textarea>
<button type="submit">Create</button>
</form>
</body></html>{{end}}

{{define "edit"}}<!doctype html>
<html><body>
<h1>Edit assignment</h1>
<form method="post" action="/assignments/edit/{{.Assignment.ID.Hex}}">
<input name="courseName" value="{{.Assignment.CourseName}}"><input name="title" value="{{.Assignment.Title}}">
<input name="dueDate" type="date" value="{{.Assignment.DueDate.Format "2006-01-02"}}">
<select name="status"><option>Not Started</option><option>In Progress</option><option>Completed</option></select>
<select name="priority"><option>Low</option><option>Medium</option><option>High</option></select>
<textarea name="description">{{.Assignment.Description}}</textarea>
<button type="submit">Save</button>
</form>
</body></html>{{end}}
`))

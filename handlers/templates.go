package handlers

import "html/template"

// pages holds every server-rendered page. The markup is deliberately plain;
// the contract is the text and the handful of markers (usernames rendered as
// @name, the four li.stat counters, the unauthorized message).
var pages = template.Must(template.New("pages").Parse(`
{{define "welcome"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
<h1>What's Happening?</h1>
<p><a href="/signup">Sign up</a> or <a href="/login">Log in</a> to see warbles.</p>
</body></html>{{end}}

{{define "timeline"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
<p>@{{.Viewer.Username}}</p>
<form method="POST" action="/messages/new">
  <input type="text" name="text" maxlength="140">
  <button type="submit">Add my message!</button>
</form>
<ul class="timeline">
{{range .Messages}}  <li class="message"><a href="/users/{{.UserID}}">@{{.User.Username}}</a> {{.Text}}</li>
{{end}}</ul>
<a href="/logout">Log out</a>
</body></html>{{end}}

{{define "users_index"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
<ul class="user-index">
{{range .Users}}  <li class="card"><a href="/users/{{.ID}}">@{{.Username}}</a></li>
{{end}}</ul>
</body></html>{{end}}

{{define "profile"}}<!DOCTYPE html>
<html><head><title>@{{.User.Username}}</title></head>
<body>
<h2>@{{.User.Username}}</h2>
<p>{{.User.Bio}}</p>
<p>{{.User.Location}}</p>
<ul class="user-stats">
  <li class="stat"><p><a href="/users/{{.User.ID}}">Messages</a></p><h4>{{.Stats.Messages}}</h4></li>
  <li class="stat"><p><a href="/users/{{.User.ID}}/following">Following</a></p><h4>{{.Stats.Following}}</h4></li>
  <li class="stat"><p><a href="/users/{{.User.ID}}/followers">Followers</a></p><h4>{{.Stats.Followers}}</h4></li>
  <li class="stat"><p><a href="/users/{{.User.ID}}/likes">Likes</a></p><h4>{{.Stats.Likes}}</h4></li>
</ul>
<ul class="messages">
{{range .Messages}}  <li class="message"><a href="/messages/{{.ID}}">{{.Text}}</a></li>
{{end}}</ul>
</body></html>{{end}}

{{define "follow_list"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head>
<body>
<h2>@{{.User.Username}} — {{.Title}}</h2>
<ul class="user-index">
{{range .Users}}  <li class="card"><a href="/users/{{.ID}}">@{{.Username}}</a></li>
{{end}}</ul>
</body></html>{{end}}

{{define "likes_list"}}<!DOCTYPE html>
<html><head><title>Likes</title></head>
<body>
<h2>@{{.User.Username}} — Likes</h2>
<ul class="messages">
{{range .Messages}}  <li class="message"><a href="/messages/{{.ID}}">@{{.User.Username}} {{.Text}}</a></li>
{{end}}</ul>
</body></html>{{end}}

{{define "message_show"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
<p class="single-message">{{.Message.Text}}</p>
<p><a href="/users/{{.Message.UserID}}">@{{.Message.User.Username}}</a></p>
<p class="like-count">{{.Likes}}</p>
</body></html>{{end}}

{{define "message_form"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/messages/new">
  <input type="text" name="text" maxlength="140">
  <button type="submit">Add my message!</button>
</form>
</body></html>{{end}}

{{define "signup_form"}}<!DOCTYPE html>
<html><head><title>Join Warbler</title></head>
<body>
<h2>Join Warbler today.</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/signup">
  <input type="text" name="username" placeholder="Username">
  <input type="text" name="email" placeholder="E-mail">
  <input type="password" name="password" placeholder="Password">
  <input type="text" name="image_url" placeholder="(Optional) Image URL">
  <button type="submit">Sign me up!</button>
</form>
</body></html>{{end}}

{{define "login_form"}}<!DOCTYPE html>
<html><head><title>Log in</title></head>
<body>
<h2>Welcome back.</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/login">
  <input type="text" name="username" placeholder="Username">
  <input type="password" name="password" placeholder="Password">
  <button type="submit">Log in</button>
</form>
</body></html>{{end}}

{{define "unauthorized"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
<p class="flash-danger">Access unauthorized.</p>
<p><a href="/">Home</a></p>
</body></html>{{end}}

{{define "not_found"}}<!DOCTYPE html>
<html><head><title>Warbler</title></head>
<body>
<p>Not found.</p>
</body></html>{{end}}
`))

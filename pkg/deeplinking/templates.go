// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplinking

import "html/template"

var selectionTemplate = template.Must(template.New("selection").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Select content{{end}}</title>
</head>
<body>
<h1>{{if .Title}}{{.Title}}{{else}}Select content{{end}}</h1>
{{if .Text}}<p>{{.Text}}</p>{{end}}
{{if not .Packages}}
<p class="empty-state">No content packages are available yet.</p>
{{else}}
<ul class="packages">
{{range .Packages}}
<li>
<form method="post" action="{{$.Action}}">
<input type="hidden" name="session" value="{{$.SessionID}}">
<input type="hidden" name="package_id" value="{{.ID}}">
<h2>{{.Name}}</h2>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .AssessmentBotSummary}}<p class="summary">{{.AssessmentBotSummary}}</p>{{end}}
<button type="submit">Select</button>
</form>
</li>
{{end}}
</ul>
{{end}}
</body>
</html>
`))

var autoSubmitTemplate = template.Must(template.New("autosubmit").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Returning to your course</title>
</head>
<body onload="document.forms[0].submit()">
<form method="post" action="{{.ReturnURL}}">
<input type="hidden" name="JWT" value="{{.JWT}}">
<noscript><button type="submit">Continue</button></noscript>
</form>
</body>
</html>
`))

type selectionPage struct {
	Title     string
	Text      string
	Action    string
	SessionID string
	Packages  []ContentPackage
}

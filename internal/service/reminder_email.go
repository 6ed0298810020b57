package service

import (
	"bytes"
	"fmt"
	"html/template"

	"brightforge/internal/domain"
)

var reminderEmailTemplate = template.Must(template.New("reminder").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <p>Hi{{if .FirstName}} {{.FirstName}}{{end}},</p>
  <p>We noticed you have been exploring our <strong>{{.Content.Name}}</strong> package ({{.Content.Price}}).</p>
  <p>{{.Content.Description}}</p>
  <ul>
    {{range .Content.Features}}<li>{{.}}</li>
    {{end}}
  </ul>
  <p><a href="{{.Content.URL}}">{{.Content.CTA}}</a></p>
  <p>— The BrightForge team</p>
</body>
</html>`))

type reminderEmailData struct {
	FirstName string
	Content   domain.ReminderContent
}

func renderReminderEmail(firstName string, content domain.ReminderContent) (subject, body string, err error) {
	var buf bytes.Buffer
	err = reminderEmailTemplate.Execute(&buf, reminderEmailData{
		FirstName: firstName,
		Content:   content,
	})
	if err != nil {
		return "", "", fmt.Errorf("render reminder email: %w", err)
	}
	subject = fmt.Sprintf("Still thinking about %s?", content.Name)
	return subject, buf.String(), nil
}

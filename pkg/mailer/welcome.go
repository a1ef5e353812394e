package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Welcome is the template name for the registration welcome email.
const Welcome = "welcome"

var welcomeHTML = template.Must(template.New(Welcome).Parse(`<html>
<body style="font-family:sans-serif">
  <h2>Welcome to DevConnector, {{.Name}}!</h2>
  <p>Your account is ready. Create your developer profile, share posts and
  connect with other developers.</p>
</body>
</html>`))

// RenderWelcome renders subject, text and HTML bodies for a welcome job.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	name := fmt.Sprintf("%v", data["Name"])
	var buf bytes.Buffer
	if err = welcomeHTML.Execute(&buf, map[string]any{"Name": name}); err != nil {
		return "", "", "", err
	}
	subject = "Welcome to DevConnector"
	text = "Welcome to DevConnector, " + name + "! Your account is ready."
	return subject, text, buf.String(), nil
}

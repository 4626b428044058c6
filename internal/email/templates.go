package email

import (
	"bytes"
	"html/template"
)

// Message builders for the platform's transactional mail. Templates are kept
// inline; there are few of them and they change with the code.

var passwordSetupTmpl = template.Must(template.New("password_setup").Parse(`
<h2>Welcome to {{.AppName}}</h2>
<p>Hello {{.Name}},</p>
<p>Your partner application for <b>{{.OrganizationName}}</b> has been approved and a
solution provider account has been created for you.</p>
<p>Set your password using the link below. The link is valid for 7 days.</p>
<p><a href="{{.ResetURL}}">Set your password</a></p>
<p>If the button does not work, copy this address into your browser:<br>{{.ResetURL}}</p>
`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<h2>Password reset</h2>
<p>Hello {{.Name}},</p>
<p>We received a request to reset your {{.AppName}} password. The link below is valid
for 1 hour.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>If you did not request this, you can safely ignore this message.</p>
`))

var contactRequestTmpl = template.Must(template.New("contact_request").Parse(`
<h2>New contact request</h2>
<p>Hello {{.ProviderName}},</p>
<p><b>{{.SeekerName}}</b> ({{.SeekerEmail}}) has requested to get in touch through
{{.AppName}}.</p>
<p>Requirements:</p>
<blockquote>{{.Requirements}}</blockquote>
<p>Urgency: {{.Urgency}}</p>
`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PasswordSetupEmail is sent to an approved applicant with their one-time
// password-setup link.
func PasswordSetupEmail(appName, to, name, organizationName, resetURL string) (*Email, error) {
	body, err := render(passwordSetupTmpl, map[string]string{
		"AppName":          appName,
		"Name":             name,
		"OrganizationName": organizationName,
		"ResetURL":         resetURL,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		To:       []string{to},
		Subject:  appName + ": your partner application has been approved",
		HTMLBody: body,
	}, nil
}

func PasswordResetEmail(appName, to, name, resetURL string) (*Email, error) {
	body, err := render(passwordResetTmpl, map[string]string{
		"AppName":  appName,
		"Name":     name,
		"ResetURL": resetURL,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		To:       []string{to},
		Subject:  appName + ": password reset",
		HTMLBody: body,
	}, nil
}

type ContactRequestData struct {
	ProviderName string
	SeekerName   string
	SeekerEmail  string
	Requirements string
	Urgency      string
}

func ContactRequestEmail(appName, to string, data ContactRequestData) (*Email, error) {
	payload := map[string]string{
		"AppName":      appName,
		"ProviderName": data.ProviderName,
		"SeekerName":   data.SeekerName,
		"SeekerEmail":  data.SeekerEmail,
		"Requirements": data.Requirements,
		"Urgency":      data.Urgency,
	}
	body, err := render(contactRequestTmpl, payload)
	if err != nil {
		return nil, err
	}
	return &Email{
		To:       []string{to},
		Subject:  appName + ": new contact request",
		HTMLBody: body,
	}, nil
}

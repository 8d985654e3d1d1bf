package notify

import (
	"bytes"
	"html/template"

	"jumatrek/pkg/model"
)

const (
	AdminSubject    = "New Trek Inquiry"
	CustomerSubject = "We received your inquiry - Juma Trek"
)

var adminTemplate = template.Must(template.New("admin").Parse(`
<h2>New Inquiry</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Trek ID:</b> {{.TrekID}}</p>
<p><b>Travelers:</b> {{.Travelers}}</p>
<p><b>Preferred Start:</b> {{.PreferredStart}}</p>
<p><b>Message:</b><br/>{{.Message}}</p>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out to Juma Trek! Our team will get back to you shortly.</p>
<p>Summary of your request:</p>
<ul>
  <li>Trek ID: {{.TrekID}}</li>
  <li>Travelers: {{.Travelers}}</li>
  <li>Preferred Start: {{.PreferredStart}}</li>
</ul>
<p>Juma Trek Team</p>
`))

type inquiryView struct {
	Name           string
	Email          string
	TrekID         string
	Travelers      int
	PreferredStart string
	Message        string
}

func newInquiryView(inq *model.Inquiry) inquiryView {
	v := inquiryView{
		Name:           inq.Name,
		Email:          inq.Email,
		TrekID:         "-",
		Travelers:      inq.TravelerCount(),
		PreferredStart: "-",
		Message:        inq.Message,
	}
	if inq.TrekID != nil && *inq.TrekID != "" {
		v.TrekID = *inq.TrekID
	}
	if inq.PreferredStartDate != nil {
		v.PreferredStart = inq.PreferredStartDate.String()
	}
	return v
}

func render(t *template.Template, inq *model.Inquiry) (string, error) {
	var b bytes.Buffer
	if err := t.Execute(&b, newInquiryView(inq)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func AdminNotification(inq *model.Inquiry) (string, error) {
	return render(adminTemplate, inq)
}

func CustomerAcknowledgement(inq *model.Inquiry) (string, error) {
	return render(customerTemplate, inq)
}

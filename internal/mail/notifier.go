package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/Paurushmuley/Week3-Paurush-Muley/internal/weather"
)

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Notifier sends weather reports as HTML mail over SMTP.
type Notifier struct {
	cfg Config
}

func NewNotifier(cfg Config) *Notifier {
	return &Notifier{cfg: cfg}
}

var reportTmpl = template.Must(template.New("report").Parse(`<table border="1">
  <thead>
    <tr>
      <th>ID</th>
      <th>City</th>
      <th>Country</th>
      <th>Weather</th>
      <th>Longitude</th>
      <th>Latitude</th>
    </tr>
  </thead>
  <tbody>
{{- range . }}
    <tr>
      <td>{{ .ID }}</td>
      <td>{{ .City }}</td>
      <td>{{ .Country }}</td>
      <td>{{ .Weather }}</td>
      <td>{{ .Longitude }}</td>
      <td>{{ .Latitude }}</td>
    </tr>
{{- end }}
  </tbody>
</table>`))

// Send renders the observations into an HTML table and mails it to the
// recipient. Transport failures surface unchanged; there is no retry.
func (n *Notifier) Send(ctx context.Context, to string, observations []weather.Observation) error {
	body, err := renderReport(observations)
	if err != nil {
		return fmt.Errorf("rendering weather report: %w", err)
	}

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n%s\r\n%s", to, "Weather Data", mime, body))

	return smtp.SendMail(addr, auth, n.cfg.Username, []string{to}, msg)
}

func renderReport(observations []weather.Observation) (string, error) {
	var body bytes.Buffer
	if err := reportTmpl.Execute(&body, observations); err != nil {
		return "", err
	}
	return body.String(), nil
}

// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package portal

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/videoventa-mx/videoventa/internal/catalog/client"
	"github.com/videoventa-mx/videoventa/internal/catalog/project"
)

// certificateData feeds the certificate template.
type certificateData struct {
	BusinessName string
	Client       *client.Client
	Projects     []*project.Project
	PortalURL    string
	SupportLink  template.URL
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// spanishMonths maps month numbers to Spanish names for document dates.
var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatSpanishDate renders "2 de enero de 2026".
func formatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

var certificateTemplate = template.Must(template.New("certificate").Funcs(template.FuncMap{
	"spanishDate": formatSpanishDate,
	"upper":       func(t project.Type) string { return strings.ToUpper(string(t)) },
	"inc":         func(i int) int { return i + 1 },
	"emailOrNA": func(email *string) string {
		if email == nil || *email == "" {
			return "N/A"
		}
		return *email
	},
}).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Certificado de Propiedad Intelectual</title>
  <style>
    @page { size: letter; margin: 1in; }
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
    .header { text-align: center; margin-bottom: 40px; border-bottom: 3px solid #ff6b00; padding-bottom: 20px; }
    .logo { font-size: 32px; font-weight: bold; color: #ff6b00; margin-bottom: 10px; }
    h1 { color: #ff6b00; text-align: center; margin-bottom: 30px; }
    .info-row { margin-bottom: 10px; display: flex; }
    .info-label { font-weight: bold; min-width: 150px; }
    .file-list { background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .file-item { padding: 10px 0; border-bottom: 1px solid #ddd; }
    .file-item:last-child { border-bottom: none; }
    h2 { color: #333; font-size: 18px; margin-top: 30px; border-bottom: 2px solid #ff6b00; padding-bottom: 10px; }
    h3 { color: #ff6b00; font-size: 16px; }
    .terms { margin-top: 30px; background: #fafafa; padding: 20px; border-left: 4px solid #ff6b00; }
    .footer { text-align: center; margin-top: 50px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px; }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="header">
    <div class="logo">{{.BusinessName}}</div>
    <h1>CERTIFICADO DE PROPIEDAD INTELECTUAL</h1>
  </div>

  <div class="info-section">
    <div class="info-row"><span class="info-label">Cliente:</span><span>{{.Client.Name}}</span></div>
    <div class="info-row"><span class="info-label">Email:</span><span>{{emailOrNA .Client.Email}}</span></div>
    <div class="info-row"><span class="info-label">Fecha de emisión:</span><span>{{spanishDate .IssuedAt}}</span></div>
  </div>

  <h2>ARCHIVOS INCLUIDOS EN ESTE CERTIFICADO:</h2>
  <div class="file-list">
    {{range $index, $project := .Projects}}
    <div class="file-item">
      <strong>{{inc $index}}. {{$project.Name}}</strong> ({{upper $project.Type}})
      {{range $project.DownloadLinks}}<br>&bull; {{.Title}}{{end}}
    </div>
    {{end}}
  </div>

  <div class="terms">
    <h2>TÉRMINOS Y CONDICIONES:</h2>
    <p>Por medio del presente documento, se certifica que <strong>{{.Client.Name}}</strong> es el propietario intelectual legítimo de los archivos de video y contenido digital listados anteriormente.</p>

    <h3>DERECHOS DE PROPIEDAD:</h3>
    <ul>
      <li>El cliente tiene derechos exclusivos sobre el contenido entregado</li>
      <li>Puede usar, modificar y distribuir el contenido según sus necesidades</li>
      <li>Los archivos son de su propiedad completa tras la entrega</li>
    </ul>

    <h3>ALMACENAMIENTO Y ACCESO:</h3>
    <ul>
      <li>Los archivos estarán disponibles en: <strong>{{.PortalURL}}</strong></li>
      <li>Duración de almacenamiento: <strong>12 meses</strong></li>
      <li>Fecha de vencimiento: <strong>{{spanishDate .ExpiresAt}}</strong></li>
    </ul>

    <h3>RESPONSABILIDADES:</h3>
    <ul>
      <li>{{.BusinessName}} garantiza la originalidad del contenido entregado</li>
      <li>El cliente es responsable del uso apropiado del contenido</li>
      <li>Se recomienda descargar y respaldar todos los archivos antes del vencimiento</li>
    </ul>

    <p><strong>Este certificado es válido y tiene efectos legales.</strong></p>
  </div>

  <div class="footer">
    <p><strong>{{.BusinessName}}</strong><br>
    Portal de Entregas Digitales<br>
    {{if .SupportLink}}<a href="{{.SupportLink}}">Soporte por WhatsApp</a><br>{{end}}
    Generado automáticamente el {{spanishDate .IssuedAt}}</p>
  </div>
</body>
</html>
`))

// renderCertificate executes the template into a byte slice.
func renderCertificate(data certificateData) ([]byte, error) {
	var buffer bytes.Buffer
	if err := certificateTemplate.Execute(&buffer, data); err != nil {
		return nil, fmt.Errorf("portal: failed to render certificate: %w", err)
	}
	return buffer.Bytes(), nil
}

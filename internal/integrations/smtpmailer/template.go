package smtpmailer

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

const subjectFormat = "Confirmación de Prereserva #%s - Prisma Wall"

var confirmationTemplate = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"money":   formatMoney,
	"percent": func(v float64) string { return strconv.FormatFloat(v*100, 'f', 1, 64) },
	"weeks": func(n int) string {
		if n == 1 {
			return "1 semana"
		}
		return fmt.Sprintf("%d semanas", n)
	},
}).Parse(`<div style="font-family:Arial, sans-serif; color:#333; font-size:15px; line-height:1.6;">
<p>Buenas tardes,</p>
<p>Le agradecemos por confiar en nosotros para que su marca llegue al corazón de Cali, el <strong>Bulevar del Río</strong>.</p>
<p>A continuación encontrará los detalles de su <strong style="color:#3B82F6;">pre-reserva #{{.Notice.PreReservationID}}</strong>:</p>
<hr style="border:none; border-top:1px solid #ddd; margin:20px 0;" />
<p>
<strong>Razón Social:</strong> {{.Notice.CompanyName}}<br/>
<strong>NIT:</strong> {{.Notice.TaxID}}<br/>
<strong>Correo:</strong> <a href="mailto:{{.Notice.Recipient}}" style="color:#3B82F6;">{{.Notice.Recipient}}</a><br/>
</p>
<hr style="border:none; border-top:1px solid #ddd; margin:20px 0;" />
<p>
<strong>Fecha:</strong> {{.Notice.StartDate}} - {{.Notice.EndDate}}<br/>
<strong>Categoría:</strong> {{.Notice.Category}}
</p>
<ul>
{{- range .Screens}}
<li style="margin-bottom: 12px;">
<strong>Pantalla {{.Cylinder}}{{.Label}}</strong> - {{weeks $.Notice.Weeks}}<br/>
Valor por semana: ${{money .WeeklyBase}}<br/>
<strong>Subtotal ({{weeks $.Notice.Weeks}}) sin descuento:</strong> ${{money .Subtotal}}<br/>
{{- if gt .Discount 0.0}}
<strong>Total con descuento:</strong> ${{money .Price}}<br/>
<div style="color:#dc2626; font-size:13px;">
Descuento aplicado: -{{percent .Discount}}%<br/>
Ahorro: ${{money .Saving}}
</div>
{{- end}}
</li>
{{- end}}
</ul>
<hr style="border:none; border-top:1px solid #ddd; margin:20px 0;" />
<p style="margin-top: 20px;">
<strong>Subtotal:</strong> ${{money .Notice.Subtotal}}<br/>
<strong>IVA (19%):</strong> ${{money .Notice.VAT}}<br/>
<strong style="font-size: 16px;">Total:</strong> <span style="font-size: 16px; font-weight: bold;">${{money .Notice.Total}}</span>
</p>
<hr style="border:none; border-top:1px solid #ddd; margin:20px 0;" />
<p style="font-size:14px;"><strong>Información adicional:</strong></p>
<p style="font-size:14px;">
Su pre-reserva se encuentra en estado <strong style="color:#dc2626;">pendiente</strong>.
Recuerde que tiene <strong>5 días</strong> para compartir el video de la campaña. Si este aún está en producción, puede compartir una imagen de referencia.
</p>
<p style="font-size:14px;">
Posteriormente, el equipo técnico de <strong>Prisma Wall</strong> evaluará si el video cumple con las normativas de exposición al público de todas las edades y usted será notificado por este mismo medio.
</p>
</div>
`))

type screenLine struct {
	Cylinder   int
	Label      string
	WeeklyBase int64
	Subtotal   int64
	Price      int64
	Discount   float64
	Saving     int64
}

type templateData struct {
	Notice  domain.ConfirmationNotice
	Screens []screenLine
}

// Subject тема письма
func Subject(notice domain.ConfirmationNotice) string {
	return fmt.Sprintf(subjectFormat, notice.PreReservationID)
}

// RenderConfirmation собирает HTML тело письма-подтверждения
func RenderConfirmation(notice domain.ConfirmationNotice) (string, error) {
	data := templateData{Notice: notice, Screens: make([]screenLine, len(notice.Screens))}
	for i, s := range notice.Screens {
		data.Screens[i] = screenLine{
			Cylinder:   s.Cylinder,
			Label:      s.Label,
			WeeklyBase: s.WeeklyBase,
			Subtotal:   s.SubtotalWithoutDiscount(notice.Weeks),
			Price:      s.Price,
			Discount:   s.Discount,
			Saving:     s.Saving(notice.Weeks),
		}
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// formatMoney целое число с разделителем тысяч: 1234567 -> 1,234,567
func formatMoney(v interface{}) string {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case float64:
		n = int64(math.Round(x))
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return sign + string(out)
}

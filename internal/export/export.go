package export

import (
	"html/template"
	"io"
	"time"

	"github.com/noah-isme/backend-quote/internal/booking"
	"github.com/noah-isme/backend-quote/internal/pricing"
	"github.com/noah-isme/backend-quote/internal/sheet"
)

// Page carries everything the export view renders: booking metadata, the
// service table and the formatted grand totals.
type Page struct {
	Title       string
	Booking     booking.Details
	Rows        []sheet.RowView
	Totals      map[string]string
	GeneratedAt time.Time
}

// Renderer produces the standalone HTML quotation page used for printing and
// sharing. Inputs are flattened to plain text; the delete column is omitted.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the built-in quotation template.
func NewRenderer() *Renderer {
	tmpl := template.New("quotation").Funcs(template.FuncMap{"money": pricing.Format})
	return &Renderer{tmpl: template.Must(tmpl.Parse(pageTemplate))}
}

// Render writes the quotation page for the given data.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = "Quotation"
	}
	if p.GeneratedAt.IsZero() {
		p.GeneratedAt = time.Now()
	}
	return r.tmpl.Execute(w, p)
}

const pageTemplate = `<!doctype html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
  *{box-sizing:border-box}
  body{font:14px/1.45 system-ui,-apple-system,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;color:#0f172a;margin:20px;background:#fff}
  .card{border:1px solid #e5e7eb;border-radius:12px;padding:14px;margin-bottom:16px}
  .section-title{font-weight:800;margin-bottom:8px}
  .grid{display:grid;gap:10px;grid-template-columns:1fr 1fr 1fr}
  .field label{display:block;color:#64748b;font-size:12px;margin-bottom:4px}
  .field span{display:block;min-height:36px;padding:8px 12px;border:1px solid #e5e7eb;border-radius:8px}
  table{width:100%;border-collapse:collapse;margin-top:6px}
  th,td{border:1px solid #e5e7eb;padding:8px;text-align:left;vertical-align:top}
  th{background:#f8fafc;font-weight:700}
  .total{text-align:right;white-space:nowrap}
  .totals{display:grid;gap:8px;margin-top:10px}
  .totals>div{display:flex;justify-content:space-between;padding:8px 10px;background:#f8fafc;border:1px solid #e5e7eb;border-radius:8px}
  .totals .grand{background:#eef6ff;border-color:#d6e4ff;font-weight:800}
  .bank-box{background:#fffbeb;border:1px solid #fde68a;border-radius:12px;padding:12px}
  .bank-box .row{display:flex;justify-content:space-between;margin-bottom:6px}
  .bank-box .label{color:#6b7280}
  .meta{color:#64748b;font-size:12px;margin-top:16px}
  @page{size:A4;margin:14mm}
</style>
</head>
<body>
  <h2 style="margin:0 0 12px 0">{{if .Booking.Brand}}{{.Booking.Brand}} — {{end}}고객 예약 내역</h2>

  <section class="card">
    <div class="section-title">예약 정보</div>
    <div class="grid">
      <div class="field"><label>고객명</label><span>{{.Booking.CustomerName}}</span></div>
      <div class="field"><label>연락처</label><span>{{.Booking.Phone}}</span></div>
      <div class="field"><label>이메일</label><span>{{.Booking.Email}}</span></div>
      <div class="field"><label>체크인</label><span>{{.Booking.CheckIn}}</span></div>
      <div class="field"><label>체크아웃</label><span>{{.Booking.CheckOut}}</span></div>
      <div class="field"><label>인원</label><span>{{.Booking.Guests}}</span></div>
    </div>
    {{if .Booking.Note}}<p>{{.Booking.Note}}</p>{{end}}
  </section>

  <section class="card">
    <div class="section-title">서비스 내역</div>
    <table>
      <thead>
        <tr><th>유형</th><th>항목</th><th>단가</th><th>통화</th><th>수량</th><th class="total">총계</th></tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.Icon}} {{.Type}}</td>
          <td>{{.Name}}</td>
          <td>{{money .Currency .UnitPrice}}</td>
          <td>{{.Currency}}</td>
          <td>{{range $i, $f := .Factors}}{{if $i}} × {{end}}{{$f.Label}} {{printf "%g" $f.Value}}{{end}}</td>
          <td class="total">{{.Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div class="totals">
      <div class="grand"><span>총계 (USD)</span><span>{{index .Totals "usd"}}</span></div>
      <div><span>총계 (VND)</span><span>{{index .Totals "vnd"}}</span></div>
      <div><span>총계 (KRW)</span><span>{{index .Totals "krw"}}</span></div>
    </div>
  </section>

  {{if .Booking.BankName}}
  <section class="card bank-box">
    <div class="section-title">입금 안내</div>
    <div class="row"><span class="label">은행</span><span>{{.Booking.BankName}}</span></div>
    <div class="row"><span class="label">예금주</span><span>{{.Booking.BankAccountName}}</span></div>
    <div class="row"><span class="label">계좌번호</span><span>{{.Booking.BankAccountNumber}}</span></div>
    {{if .Booking.BankNote}}<div class="row"><span class="label">참고</span><span>{{.Booking.BankNote}}</span></div>{{end}}
  </section>
  {{end}}

  <p class="meta">{{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
</body>
</html>
`

package printing

// invoiceTemplate is the A4 invoice layout. Labels are in Albanian,
// matching the storefront language.
const invoiceTemplate = `<!DOCTYPE html>
<html lang="sq">
<head>
<meta charset="UTF-8">
<title>Faturë {{.OrderNumber}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #222; font-size: 13px; margin: 0; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #222; padding-bottom: 12px; }
  .header h1 { margin: 0 0 4px 0; font-size: 22px; }
  .seller { text-align: right; font-size: 12px; line-height: 1.5; }
  .meta { margin-top: 16px; line-height: 1.6; }
  table { width: 100%; border-collapse: collapse; margin-top: 18px; }
  th { text-align: left; border-bottom: 1px solid #999; padding: 6px 4px; font-size: 12px; text-transform: uppercase; }
  td { border-bottom: 1px solid #e0e0e0; padding: 6px 4px; }
  .num { text-align: right; }
  .totals { margin-top: 14px; width: 280px; margin-left: auto; }
  .totals td { border: none; padding: 3px 4px; }
  .totals .grand td { border-top: 1px solid #222; font-weight: bold; font-size: 15px; }
  .footer { margin-top: 40px; font-size: 11px; color: #777; }
</style>
</head>
<body>
  <div class="header">
    <div>
      <h1>Pegi &ndash; Faturë</h1>
      <div>Nr: <strong>{{.OrderNumber}}</strong></div>
      <div>Data: {{date .IssuedAt}}</div>
    </div>
    <div class="seller">
      <strong>{{.Seller.Name}}</strong><br>
      {{.Seller.Address}}<br>
      {{.Seller.Email}}{{if .Seller.Phone}}<br>{{.Seller.Phone}}{{end}}
      {{- if .Seller.FiscalID}}<br>NIPT: {{.Seller.FiscalID}}{{end}}
    </div>
  </div>

  <div class="meta">
    <div>Blerësi: <strong>{{.Buyer.Name}}</strong></div>
    <div>Email: {{.Buyer.Email}}</div>
    <div>Adresa: {{.Buyer.Address}}</div>
  </div>

  <table>
    <thead>
      <tr>
        <th>Titulli</th>
        <th class="num">Sasia</th>
        <th class="num">Çmimi</th>
        <th class="num">Totali</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Lines}}
      <tr>
        <td>{{.Title}}</td>
        <td class="num">{{.Qty}}</td>
        <td class="num">{{money .Price}}</td>
        <td class="num">{{money .Total}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>

  <table class="totals">
    <tr><td>Nën-totali</td><td class="num">{{money .Subtotal}}</td></tr>
    <tr><td>TVSH</td><td class="num">{{money .Tax}}</td></tr>
    <tr><td>Dërgesa</td><td class="num">{{money .Shipping}}</td></tr>
    <tr class="grand"><td>Totali</td><td class="num">{{money .Total}}</td></tr>
  </table>

  <div class="footer">Faleminderit që blini te Pegi!</div>
</body>
</html>
`

package report

// GroupInvoiceRows folds header/line join rows into one entry per invoice, in
// the order each invoice first appears. Rows without a line id contribute the
// header only. The input is not modified.
func GroupInvoiceRows(rows []InvoiceRow) []GroupedInvoice {
	out := make([]GroupedInvoice, 0)
	index := make(map[int64]int, len(rows))

	for i := range rows {
		row := &rows[i]
		pos, seen := index[row.InvoiceID]
		if !seen {
			pos = len(out)
			index[row.InvoiceID] = pos
			out = append(out, GroupedInvoice{
				Invoice: invoiceFromRow(row),
				Lines:   make([]InvoiceLine, 0),
			})
		}

		if row.LineID == nil {
			continue
		}
		out[pos].Lines = append(out[pos].Lines, InvoiceLine{
			LineID:   *row.LineID,
			ItemID:   orZeroInt(row.ItemID),
			ItemName: orEmpty(row.ItemName),
			Price:    orZero(row.Price),
			Quantity: orZeroInt(row.Quantity),
			Discount: orZero(row.Discount),
			Tax:      orZero(row.Tax),
			Total:    orZero(row.Total),
		})
	}

	return out
}

// Invoices returns the headers only, for reports that never need lines.
func Invoices(groups []GroupedInvoice) []Invoice {
	out := make([]Invoice, len(groups))
	for i := range groups {
		out[i] = groups[i].Invoice
	}
	return out
}

func invoiceFromRow(row *InvoiceRow) Invoice {
	return Invoice{
		InvoiceID:       row.InvoiceID,
		InvoiceCode:     row.InvoiceCode,
		CreatedDateTime: row.CreatedDateTime,
		IsVoided:        row.IsVoided,
		VoidedBy:        row.VoidedBy,
		VoidedOn:        row.VoidedOn,
		PaymentType:     orEmpty(row.PaymentType),
		SubTotal:        orZero(row.SubTotal),
		TotalTax:        orZero(row.TotalTax),
		GrandTotal:      orZero(row.GrandTotal),
		CoinsDiscount:   orZero(row.CoinsDiscount),
		ChangeAmount:    orZero(row.ChangeAmount),
		UserName:        orEmpty(row.UserName),
		TotalQty:        orZeroInt(row.TotalQty),
	}
}

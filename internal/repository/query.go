package repository

const (
	selectInvoice = `SELECT
		id,
		number,
		issue_date,
		sale_date,
		due_date,
		currency,
		payment_method,
		status,
		is_paid,
		paid_at,
		notes,
		customer_id,
		subtotal,
		vat_amount,
		total,
		deleted_at,
		created_at,
		updated_at
	FROM invoices`

	preferenceNumberFormat = "invoice_number_format"

	constraintInvoiceNumber = "invoices_number_key"
)

var invoiceColumns = []string{
	"id",
	"number",
	"issue_date",
	"sale_date",
	"due_date",
	"currency",
	"payment_method",
	"status",
	"is_paid",
	"paid_at",
	"notes",
	"customer_id",
	"subtotal",
	"vat_amount",
	"total",
	"deleted_at",
	"created_at",
	"updated_at",
}

var itemColumns = []string{
	"id",
	"invoice_id",
	"description",
	"quantity",
	"unit",
	"unit_price",
	"vat_rate",
	"sort_order",
	"line_no",
	"net_amount",
	"vat_amount",
	"gross_amount",
}

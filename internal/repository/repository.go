package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/pkg/postgres"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := sq.Insert("invoices").
			Columns(invoiceColumns...).
			Values(invoiceValues(inv)...).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			if postgres.IsUniqueViolation(err, constraintInvoiceNumber) {
				return fmt.Errorf("invoice number %s: %w", inv.Number, entity.ErrAlreadyExists)
			}

			return err
		}

		return insertItems(ctx, tx, inv.Items)
	})
}

// UpdateInvoice stores the header, totals and lifecycle fields of inv. With replaceItems
// the stored item list is removed and inv.Items is inserted in its place.
func (r *Repository) UpdateInvoice(ctx context.Context, inv entity.Invoice, replaceItems bool) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
		UPDATE invoices SET
			issue_date = $1,
			sale_date = $2,
			due_date = $3,
			currency = $4,
			payment_method = $5,
			status = $6,
			is_paid = $7,
			paid_at = $8,
			notes = $9,
			customer_id = $10,
			subtotal = $11,
			vat_amount = $12,
			total = $13,
			deleted_at = $14,
			updated_at = $15
		WHERE id = $16`

		result, err := tx.Exec(
			ctx,
			q,
			inv.IssueDate,
			inv.SaleDate,
			inv.DueDate,
			inv.Currency,
			inv.PaymentMethod,
			inv.Status,
			inv.IsPaid,
			inv.PaidAt,
			inv.Notes,
			inv.CustomerID,
			inv.Subtotal,
			inv.VatAmount,
			inv.Total,
			inv.DeletedAt,
			inv.UpdatedAt,
			inv.ID,
		)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return entity.ErrNotFound
		}

		if !replaceItems {
			return nil
		}

		_, err = tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, inv.ID)
		if err != nil {
			return err
		}

		return insertItems(ctx, tx, inv.Items)
	})
}

// Invoice returns a non-deleted invoice with its items.
func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1 AND deleted_at IS NULL"

	inv, err := scanInvoice(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Invoice{}, err
	}

	return r.withItems(ctx, inv)
}

func (r *Repository) InvoiceByNumber(ctx context.Context, number string) (entity.Invoice, error) {
	q := selectInvoice + " WHERE number = $1 AND deleted_at IS NULL"

	inv, err := scanInvoice(r.db.QueryRow(ctx, q, number))
	if err != nil {
		return entity.Invoice{}, err
	}

	return r.withItems(ctx, inv)
}

// Invoices returns one page of non-deleted invoices with their items and the total
// number of matching invoices.
func (r *Repository) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	stmt := sq.Select(append(invoiceColumns, "COUNT(*) OVER() AS total_count")...).
		From("invoices").
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy), "id")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var inv entity.Invoice

		err = rows.Scan(append(invoiceDest(&inv), &totalCount)...)
		if err != nil {
			return nil, 0, err
		}

		invoices = append(invoices, inv)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	if len(invoices) == 0 {
		return invoices, totalCount, nil
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}

	items, err := r.itemsByInvoice(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	for i := range invoices {
		invoices[i].Items = items[invoices[i].ID]
	}

	return invoices, totalCount, nil
}

// NextSequenceNumber counts the non-deleted invoices issued in the month and adds one.
func (r *Repository) NextSequenceNumber(ctx context.Context, year, month int) (int, error) {
	const q = `
	SELECT COUNT(*) + 1
	FROM invoices
	WHERE deleted_at IS NULL AND issue_date >= $1 AND issue_date < $2`

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var next int

	err := r.db.QueryRow(ctx, q, from, from.AddDate(0, 1, 0)).Scan(&next)
	if err != nil {
		return 0, err
	}

	return next, nil
}

// ExistsByNumber looks at every invoice, deleted ones included: numbers are never reused.
func (r *Repository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM invoices WHERE number = $1)`

	var exists bool

	err := r.db.QueryRow(ctx, q, number).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// NumberTemplate returns the stored number format, or an empty string when none is set.
func (r *Repository) NumberTemplate(ctx context.Context) (string, error) {
	const q = `SELECT value FROM preferences WHERE key = $1`

	var value string

	err := r.db.QueryRow(ctx, q, preferenceNumberFormat).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}

		return "", err
	}

	return value, nil
}

func (r *Repository) SetNumberTemplate(ctx context.Context, template string) error {
	const q = `
	INSERT INTO preferences (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, q, preferenceNumberFormat, template)

	return err
}

func (r *Repository) withItems(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	items, err := r.itemsByInvoice(ctx, []uuid.UUID{inv.ID})
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.Items = items[inv.ID]

	return inv, nil
}

func (r *Repository) itemsByInvoice(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]entity.InvoiceItem, error) {
	sql, args, err := sq.Select(itemColumns...).
		From("invoice_items").
		Where(sq.Eq{"invoice_id": ids}).
		OrderBy("invoice_id", "sort_order", "line_no").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]entity.InvoiceItem, len(ids))

	for rows.Next() {
		var (
			item   entity.InvoiceItem
			lineNo int
		)

		err = rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.Unit,
			&item.UnitPrice,
			&item.VatRate,
			&item.SortOrder,
			&lineNo,
			&item.NetAmount,
			&item.VatAmount,
			&item.GrossAmount,
		)
		if err != nil {
			return nil, err
		}

		items[item.InvoiceID] = append(items[item.InvoiceID], item)
	}

	return items, rows.Err()
}

func insertItems(ctx context.Context, tx pgx.Tx, items []entity.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}

	stmt := sq.Insert("invoice_items").Columns(itemColumns...).PlaceholderFormat(sq.Dollar)

	for i, item := range items {
		stmt = stmt.Values(
			item.ID,
			item.InvoiceID,
			item.Description,
			item.Quantity,
			item.Unit,
			item.UnitPrice,
			item.VatRate,
			item.SortOrder,
			i,
			item.NetAmount,
			item.VatAmount,
			item.GrossAmount,
		)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)

	return err
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Currency != nil {
		stmt = stmt.Where(sq.Eq{"currency": *f.Currency})
	}

	if f.CustomerID != nil {
		stmt = stmt.Where(sq.Eq{"customer_id": *f.CustomerID})
	}

	if f.IssuedFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"issue_date": *f.IssuedFrom})
	}

	if f.IssuedTo != nil {
		stmt = stmt.Where(sq.LtOrEq{"issue_date": *f.IssuedTo})
	}

	if f.NumberPattern != nil && *f.NumberPattern != "" {
		stmt = stmt.Where(sq.ILike{"number": "%" + *f.NumberPattern + "%"})
	}

	return stmt
}

func invoiceValues(inv entity.Invoice) []any {
	return []any{
		inv.ID,
		inv.Number,
		inv.IssueDate,
		inv.SaleDate,
		inv.DueDate,
		inv.Currency,
		inv.PaymentMethod,
		inv.Status,
		inv.IsPaid,
		inv.PaidAt,
		inv.Notes,
		inv.CustomerID,
		inv.Subtotal,
		inv.VatAmount,
		inv.Total,
		inv.DeletedAt,
		inv.CreatedAt,
		inv.UpdatedAt,
	}
}

func invoiceDest(inv *entity.Invoice) []any {
	return []any{
		&inv.ID,
		&inv.Number,
		&inv.IssueDate,
		&inv.SaleDate,
		&inv.DueDate,
		&inv.Currency,
		&inv.PaymentMethod,
		&inv.Status,
		&inv.IsPaid,
		&inv.PaidAt,
		&inv.Notes,
		&inv.CustomerID,
		&inv.Subtotal,
		&inv.VatAmount,
		&inv.Total,
		&inv.DeletedAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	}
}

func scanInvoice(row pgx.Row) (entity.Invoice, error) {
	var inv entity.Invoice

	err := row.Scan(invoiceDest(&inv)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
)

// PostgresSettingsRepository persists the single shop settings row.
type PostgresSettingsRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresSettingsRepository creates a new Postgres settings repository.
func NewPostgresSettingsRepository(conn postgres.Conn) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var settingsColumns = []string{
	"id", "store_name", "address", "email", "phone", "currency", "logo_url",
	"enable_print", "show_store_details", "show_customer_details",
	"print_format", "print_header", "print_footer", "show_notes",
	"print_token", "created_at", "updated_at",
}

func scanSettings(row pgx.Row) (shopsettings.Settings, error) {
	var s shopsettings.Settings
	var address, email, phone, logoURL, printHeader, printFooter *string
	var printFormat string

	err := row.Scan(
		&s.ID,
		&s.StoreName,
		&address,
		&email,
		&phone,
		&s.Currency,
		&logoURL,
		&s.EnablePrint,
		&s.ShowStoreDetails,
		&s.ShowCustomerDetails,
		&printFormat,
		&printHeader,
		&printFooter,
		&s.ShowNotes,
		&s.PrintToken,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return shopsettings.Settings{}, err
	}

	if address != nil {
		s.Address = *address
	}
	if email != nil {
		s.Email = *email
	}
	if phone != nil {
		s.Phone = *phone
	}
	if logoURL != nil {
		s.LogoURL = *logoURL
	}
	if printHeader != nil {
		s.PrintHeader = *printHeader
	}
	if printFooter != nil {
		s.PrintFooter = *printFooter
	}
	s.PrintFormat = shopsettings.PrintFormat(printFormat)

	return s, nil
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}

// Get retrieves the settings row. Defaults are returned when the shop has
// not saved settings yet.
func (r *PostgresSettingsRepository) Get(ctx context.Context) (shopsettings.Settings, error) {
	sql, args, err := r.sb.
		Select(settingsColumns...).
		From("shop_settings").
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return shopsettings.Settings{}, fmt.Errorf("failed to build query: %w", err)
	}

	settings, err := scanSettings(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shopsettings.Default(), nil
		}

		return shopsettings.Settings{}, fmt.Errorf("failed to query shop settings: %w", err)
	}

	return settings, nil
}

// Upsert writes the settings row, creating it on first save.
func (r *PostgresSettingsRepository) Upsert(ctx context.Context, s shopsettings.Settings) (shopsettings.Settings, error) {
	now := time.Now()

	sql, args, err := r.sb.
		Insert("shop_settings").
		Columns(
			"id", "store_name", "address", "email", "phone", "currency",
			"logo_url", "enable_print", "show_store_details",
			"show_customer_details", "print_format", "print_header",
			"print_footer", "show_notes", "print_token", "created_at", "updated_at",
		).
		Values(
			1, s.StoreName, nullable(s.Address), nullable(s.Email), nullable(s.Phone), s.Currency,
			nullable(s.LogoURL), s.EnablePrint, s.ShowStoreDetails,
			s.ShowCustomerDetails, string(s.PrintFormat), nullable(s.PrintHeader),
			nullable(s.PrintFooter), s.ShowNotes, s.PrintToken, now, now,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			currency = EXCLUDED.currency,
			logo_url = EXCLUDED.logo_url,
			enable_print = EXCLUDED.enable_print,
			show_store_details = EXCLUDED.show_store_details,
			show_customer_details = EXCLUDED.show_customer_details,
			print_format = EXCLUDED.print_format,
			print_header = EXCLUDED.print_header,
			print_footer = EXCLUDED.print_footer,
			show_notes = EXCLUDED.show_notes,
			print_token = EXCLUDED.print_token,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + "id, store_name, address, email, phone, currency, logo_url, enable_print, show_store_details, show_customer_details, print_format, print_header, print_footer, show_notes, print_token, created_at, updated_at").
		ToSql()
	if err != nil {
		return shopsettings.Settings{}, fmt.Errorf("failed to build upsert query: %w", err)
	}

	settings, err := scanSettings(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return shopsettings.Settings{}, fmt.Errorf("failed to upsert shop settings: %w", err)
	}

	return settings, nil
}

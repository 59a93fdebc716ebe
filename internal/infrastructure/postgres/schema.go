package postgres

import (
	"context"
	"fmt"
)

// schema es el esquema completo de la base de datos. Las restricciones CHECK y
// de unicidad replican las reglas del dominio en el almacenamiento:
// tipo de transacción IN/OUT, cantidades positivas, nombres únicos y
// (item_id, variant_name) único por artículo.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           UUID PRIMARY KEY,
    name         VARCHAR(120) NOT NULL UNIQUE,
    category     VARCHAR(50) NOT NULL,
    has_variants BOOLEAN NOT NULL DEFAULT FALSE,
    is_active    BOOLEAN NOT NULL DEFAULT TRUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS item_variants (
    id           UUID PRIMARY KEY,
    item_id      UUID NOT NULL REFERENCES items(id),
    variant_name VARCHAR(20) NOT NULL,
    is_active    BOOLEAN NOT NULL DEFAULT TRUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uq_item_variants_item_id_variant_name UNIQUE (item_id, variant_name)
);

CREATE TABLE IF NOT EXISTS locations (
    id          UUID PRIMARY KEY,
    name        VARCHAR(120) NOT NULL UNIQUE,
    description TEXT,
    is_active   BOOLEAN NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events (
    id          UUID PRIMARY KEY,
    name        VARCHAR(160) NOT NULL,
    event_type  VARCHAR(80) NOT NULL,
    event_date  DATE NOT NULL,
    location_id UUID REFERENCES locations(id),
    notes       TEXT,
    is_active   BOOLEAN NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transactions (
    id               UUID PRIMARY KEY,
    transaction_type VARCHAR(3) NOT NULL,
    item_id          UUID NOT NULL REFERENCES items(id),
    item_variant_id  UUID REFERENCES item_variants(id),
    location_id      UUID NOT NULL REFERENCES locations(id),
    event_id         UUID REFERENCES events(id),
    quantity         BIGINT NOT NULL,
    reason           TEXT NOT NULL,
    created_by       VARCHAR(120) NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT ck_transactions_transaction_type CHECK (transaction_type IN ('IN','OUT')),
    CONSTRAINT ck_transactions_quantity_positive CHECK (quantity > 0)
);

CREATE INDEX IF NOT EXISTS idx_transactions_stock_key
    ON transactions(item_id, location_id, item_variant_id);

CREATE TABLE IF NOT EXISTS low_stock_alerts (
    id              UUID PRIMARY KEY,
    location_id     UUID NOT NULL REFERENCES locations(id),
    item_id         UUID NOT NULL REFERENCES items(id),
    item_variant_id UUID REFERENCES item_variants(id),
    threshold       BIGINT NOT NULL,
    triggered_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    resolved_at     TIMESTAMPTZ,
    CONSTRAINT ck_low_stock_alerts_threshold_not_negative CHECK (threshold >= 0)
);
`

// EnsureSchema crea tablas e índices si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
